package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/waketrace/internal/cli"
	"github.com/bnema/waketrace/internal/config"
	"github.com/bnema/waketrace/internal/domain/entity"
)

func TestHoldInput_FallsBackToConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Power.DefaultTag = "nightly"
	cfg.Power.DefaultTimeout = 2 * time.Hour
	app := &cli.App{Config: cfg}

	input := holdInput(app, "", 0, false, false)

	assert.Equal(t, "nightly", input.Tag)
	assert.Equal(t, 2*time.Hour, input.Timeout)
	assert.Equal(t, entity.PartialWakeLock, input.Flags)
	assert.True(t, input.ReferenceCounted)
}

func TestHoldInput_FlagsWin(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Power.DefaultTimeout = 2 * time.Hour
	cfg.Power.ReferenceCounted = false
	app := &cli.App{Config: cfg}

	input := holdInput(app, "slides", 0, true, true)

	assert.Equal(t, "slides", input.Tag)
	assert.Zero(t, input.Timeout, "an explicit --timeout 0 means unbounded")
	assert.True(t, input.Flags.KeepsScreenOn())
	assert.False(t, input.ReferenceCounted)
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"hold", "run", "history", "backends", "config", "about"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
