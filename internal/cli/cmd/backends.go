package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/waketrace/internal/cli/styles"
	"github.com/bnema/waketrace/internal/infrastructure/wakelock"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List wake lock backends and whether they work here",
	Long: `Probe every wake lock backend this platform supports and report which
ones can be opened. The memory backend is always available but does not
keep the machine awake.`,
	Args: cobra.NoArgs,
	RunE: runBackends,
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}

func runBackends(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	statuses := wakelock.Probe(app.Ctx())
	fmt.Println(styles.NewBackendsRenderer(app.Theme).Render(statuses, app.Config.Power.Backend))
	return nil
}
