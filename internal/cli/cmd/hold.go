package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/waketrace/internal/application/usecase"
	"github.com/bnema/waketrace/internal/cli"
	"github.com/bnema/waketrace/internal/cli/model"
	"github.com/bnema/waketrace/internal/cli/styles"
	"github.com/bnema/waketrace/internal/logging"
	"github.com/bnema/waketrace/internal/power"
)

var holdOpts struct {
	tag     string
	timeout time.Duration
	screen  bool
	plain   bool
}

var holdCmd = &cobra.Command{
	Use:   "hold",
	Short: "Keep the system awake until interrupted or a timeout elapses",
	Long: `Acquire a wake lock and hold it until Ctrl-C, q, or --timeout.

Examples:
  waketrace hold                      # hold until interrupted
  waketrace hold --timeout 45m        # hold for at most 45 minutes
  waketrace hold --screen --tag slides`,
	Args: cobra.NoArgs,
	RunE: runHold,
}

func init() {
	rootCmd.AddCommand(holdCmd)
	holdCmd.Flags().StringVarP(&holdOpts.tag, "tag", "t", "", "wake lock tag (default power.default_tag)")
	holdCmd.Flags().DurationVar(&holdOpts.timeout, "timeout", 0, "release automatically after this long (default power.default_timeout)")
	holdCmd.Flags().BoolVar(&holdOpts.screen, "screen", false, "also keep the display on")
	holdCmd.Flags().BoolVar(&holdOpts.plain, "plain", false, "print plain status lines instead of the live view")
}

func runHold(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	input := holdInput(app, holdOpts.tag, holdOpts.timeout, holdOpts.screen, cmd.Flags().Changed("timeout"))
	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "hold"), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.WatchConfig()

	backend := app.PowerManager().Service().Name()

	if holdOpts.plain || appOpts.Verbose {
		return runHoldPlain(ctx, app, input, backend)
	}

	m := model.NewHoldModel(ctx, app.Theme, app.HoldUseCase(), input, backend)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("run hold view: %w", err)
	}
	if hm, ok := final.(model.HoldModel); ok {
		return hm.Err()
	}
	return nil
}

func runHoldPlain(ctx context.Context, app *cli.App, input usecase.HoldInput, backend string) error {
	t := app.Theme
	start := time.Now()

	err := app.HoldUseCase().Execute(ctx, input, func(ctx context.Context, lock *power.TracingWakeLock) error {
		until := "until interrupted"
		if input.Timeout > 0 {
			until = "for up to " + input.Timeout.String()
		}
		fmt.Printf("%s Holding %s %s on %s %s\n",
			t.Highlight.Render(styles.IconLock),
			t.Highlight.Render(lock.Tag()),
			t.MutedBadge(fmt.Sprintf("#%d %s", lock.ID(), lock.Flags())),
			backend,
			t.Subtle.Render(until),
		)
		<-ctx.Done()
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s Released after %s\n", t.SuccessStyle.Render(styles.IconUnlock), styles.HumanDuration(time.Since(start)))
	return nil
}

// holdInput merges flags with the power config section.
func holdInput(app *cli.App, tag string, timeout time.Duration, screen, timeoutSet bool) usecase.HoldInput {
	cfg := app.Config.Power
	if tag == "" {
		tag = cfg.DefaultTag
	}
	if !timeoutSet {
		timeout = cfg.DefaultTimeout
	}
	return usecase.HoldInput{
		Tag:              tag,
		Timeout:          timeout,
		Flags:            app.HoldFlags(screen),
		ReferenceCounted: cfg.ReferenceCounted,
	}
}
