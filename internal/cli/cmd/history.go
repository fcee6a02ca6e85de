package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/waketrace/internal/application/usecase"
	"github.com/bnema/waketrace/internal/cli"
	"github.com/bnema/waketrace/internal/cli/styles"
	"github.com/bnema/waketrace/internal/logging"
)

var historyOpts struct {
	limit int
	purge time.Duration
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded wake lock events",
	Long: `List the most recent wake lock events from the trace journal, newest first.

Events older than journal.retention_days are dropped automatically. Use
--purge to drop events older than a given age right away.

Examples:
  waketrace history
  waketrace history --limit 200
  waketrace history --purge 72h`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyOpts.limit, "limit", "n", usecase.DefaultTraceEventLimit, "maximum number of events to show")
	historyCmd.Flags().DurationVar(&historyOpts.purge, "purge", 0, "delete events older than this age and exit")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewHistoryRenderer(app.Theme)
	if app.Journal == nil {
		fmt.Println(renderer.RenderDisabled())
		return nil
	}

	ctx := app.Ctx()

	if cmd.Flags().Changed("purge") {
		deleted, err := app.PurgeTraceEventsUC.Execute(ctx, historyOpts.purge)
		if err != nil {
			return err
		}
		fmt.Println(renderer.RenderPurged(deleted))
		return nil
	}

	applyRetention(app)

	events, err := app.ListTraceEventsUC.Execute(ctx, historyOpts.limit)
	if err != nil {
		return err
	}
	fmt.Println(renderer.RenderEvents(events))
	return nil
}

// applyRetention drops events past journal.retention_days. Failures only
// get logged so history stays readable.
func applyRetention(app *cli.App) {
	days := app.Config.Journal.RetentionDays
	if days <= 0 {
		return
	}

	ctx := app.Ctx()
	if _, err := app.PurgeTraceEventsUC.Execute(ctx, time.Duration(days)*24*time.Hour); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Int("retention_days", days).Msg("history: retention purge failed")
	}
}
