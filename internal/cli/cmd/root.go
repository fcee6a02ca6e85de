// Package cmd provides Cobra CLI commands for waketrace.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bnema/waketrace/internal/cli"
	"github.com/bnema/waketrace/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "waketrace",
		Short: "Hold and trace wake locks that keep your machine awake",
		Long: `waketrace keeps the system from sleeping while something important runs,
and records every wake lock it creates, acquires and releases.

Wake locks are backed by the best mechanism the platform offers:
  - systemd-logind inhibitors or the XDG desktop portal on Linux
  - /sys/power/wake_lock on kernels that expose it
  - caffeinate on macOS
  - power requests on Windows

Every lock event is logged at trace level (use --verbose to see them) and
written to a local journal you can inspect with 'waketrace history'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&appOpts.Verbose, "verbose", "v", false, "log every wake lock event at trace level")
	rootCmd.PersistentFlags().StringVar(&appOpts.Backend, "backend", "", "override power.backend for this run")
}

// Execute runs the root command. A child process exit status from
// 'waketrace run' becomes the exit status of waketrace.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// PersistentPostRun is skipped when a command fails.
	if app != nil {
		_ = app.Close()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
