package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/waketrace/internal/cli/styles"
	"github.com/bnema/waketrace/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the effective configuration, its JSON schema, or the config file path.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema describing config.toml. With --write the schema is
saved next to the config file as config.schema.json instead.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaWrite bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSchemaCmd, configPathCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json next to the config file")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Println(styles.NewConfigRenderer(app.Theme).Render(app.Config, config.ConfigFile()))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if configSchemaWrite {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	data, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	path := config.ConfigFile()
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}
	fmt.Println(path)
	return nil
}
