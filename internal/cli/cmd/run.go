package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/waketrace/internal/logging"
	"github.com/bnema/waketrace/internal/power"
)

// childStopGrace is how long a child gets to exit after an interrupt.
const childStopGrace = 10 * time.Second

var runOpts struct {
	tag    string
	screen bool
}

var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Keep the system awake while a command runs",
	Long: `Hold a wake lock for as long as a child command runs, then release it.

The child inherits stdin, stdout and stderr. Its exit status becomes the
exit status of waketrace.

Examples:
  waketrace run -- rsync -a ~/photos nas:/backup
  waketrace run --tag backup -- restic backup ~`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runOpts.tag, "tag", "t", "", "wake lock tag (default: command name)")
	runCmd.Flags().BoolVar(&runOpts.screen, "screen", false, "also keep the display on")
}

func runRun(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	tag := runOpts.tag
	if tag == "" {
		tag = filepath.Base(args[0])
	}
	// A child command is never bounded by power.default_timeout.
	input := holdInput(app, tag, 0, runOpts.screen, true)

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.WatchConfig()

	return app.HoldUseCase().Execute(ctx, input, func(ctx context.Context, lock *power.TracingWakeLock) error {
		return runChild(ctx, lock, args)
	})
}

func runChild(ctx context.Context, lock *power.TracingWakeLock, args []string) error {
	ctx = logging.WithComponent(ctx, "run")
	log := logging.FromContext(ctx)

	child := exec.CommandContext(ctx, args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	child.Cancel = func() error {
		return child.Process.Signal(os.Interrupt)
	}
	child.WaitDelay = childStopGrace

	log.Debug().
		Uint64("lock_id", uint64(lock.ID())).
		Strs("argv", args).
		Msg("run: starting child")

	if err := child.Run(); err != nil {
		log.Debug().Err(err).Msg("run: child failed")
		return err
	}
	return nil
}
