// Package cli wires configuration, logging and use cases for the waketrace commands.
package cli

import (
	"context"
	"sync"

	"github.com/bnema/waketrace/internal/application/port"
	"github.com/bnema/waketrace/internal/application/usecase"
	"github.com/bnema/waketrace/internal/cli/styles"
	"github.com/bnema/waketrace/internal/config"
	"github.com/bnema/waketrace/internal/domain/build"
	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/infrastructure/clock"
	"github.com/bnema/waketrace/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/waketrace/internal/infrastructure/wakelock"
	"github.com/bnema/waketrace/internal/logging"
	"github.com/bnema/waketrace/internal/power"
)

// Options are set from global command line flags.
type Options struct {
	Verbose bool
	Backend string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// Journal is nil when the trace journal is disabled.
	Journal port.TraceEventRepository
	db      *sqlite.LazyDB

	ListTraceEventsUC  *usecase.ListTraceEventsUseCase
	PurgeTraceEventsUC *usecase.PurgeTraceEventsUseCase

	opts    Options
	powerMu sync.Mutex
	manager *power.TracingPowerManager

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	cfg := loadConfig()
	if opts.Backend != "" {
		cfg.Power.Backend = opts.Backend
	}

	level := cfg.Logging.Level
	if opts.Verbose {
		level = "trace"
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Config: cfg,
		Theme:  styles.NewTheme(),
		opts:   opts,
		ctx:    ctx,
	}

	if cfg.Journal.Enabled {
		app.db = sqlite.NewLazyDB(cfg.Journal.Path)
		app.Journal = sqlite.NewTraceEventRepository(app.db)
		app.ListTraceEventsUC = usecase.NewListTraceEventsUseCase(app.Journal)
		app.PurgeTraceEventsUC = usecase.NewPurgeTraceEventsUseCase(app.Journal, clock.System{})
		logger.Debug().Str("path", cfg.Journal.Path).Msg("trace journal configured")
	}

	return app, nil
}

// PowerManager returns the process-wide traced power manager, opening the
// configured backend on first use.
func (a *App) PowerManager() *power.TracingPowerManager {
	a.powerMu.Lock()
	defer a.powerMu.Unlock()

	if a.manager != nil {
		return a.manager
	}

	var opts []power.Option
	if a.Journal != nil {
		opts = append(opts, power.WithTraceSink(a.Journal))
	}

	backend := a.Config.Power.Backend
	a.manager = power.GetOrCreate(a.ctx, func(ctx context.Context) port.PowerService {
		svc, err := wakelock.Open(ctx, backend)
		if err != nil {
			logging.FromContext(ctx).Warn().
				Err(err).
				Str("backend", backend).
				Msg("wake lock backend failed to open, holds are not enforced")
			return wakelock.NewMemoryService(ctx)
		}
		return svc
	}, opts...)
	return a.manager
}

// HoldUseCase builds the hold use case on top of PowerManager.
func (a *App) HoldUseCase() *usecase.HoldWakeLockUseCase {
	return usecase.NewHoldWakeLockUseCase(a.PowerManager())
}

// HoldFlags returns the wake lock flags requested by config and screen.
func (a *App) HoldFlags(screen bool) entity.WakeLockFlags {
	if screen || a.Config.Power.Screen {
		return entity.FullWakeLock | entity.AcquireCausesWakeup
	}
	return entity.PartialWakeLock
}

// Close releases all resources.
func (a *App) Close() error {
	a.powerMu.Lock()
	manager := a.manager
	a.powerMu.Unlock()

	var firstErr error
	if manager != nil {
		if err := manager.Service().Close(); err != nil {
			firstErr = err
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// WatchConfig reports config file edits made while a long hold runs.
// Edits take effect on the next invocation.
func (a *App) WatchConfig() {
	log := logging.FromContext(a.ctx)
	if err := config.Watch(); err != nil {
		log.Debug().Err(err).Msg("config watch unavailable")
		return
	}
	config.OnConfigChange(func(cfg *config.Config) {
		log.Debug().
			Str("backend", cfg.Power.Backend).
			Str("level", cfg.Logging.Level).
			Msg("config file changed, applies to the next run")
	})
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations.
func loadConfig() *config.Config {
	if err := config.Init(); err != nil {
		// The configured logger does not exist yet.
		bootLog := logging.NewFromEnv()
		bootLog.Warn().Err(err).Msg("config: falling back to defaults")
		cfg := config.DefaultConfig()
		if path, pathErr := config.GetJournalFile(); pathErr == nil {
			cfg.Journal.Path = path
		}
		return cfg
	}
	return config.Get()
}
