package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "auto", mgr.viper.GetString("power.backend"))
	assert.True(t, mgr.viper.GetBool("power.reference_counted"))
	assert.True(t, mgr.viper.GetBool("journal.enabled"))
	assert.Equal(t, 30, mgr.viper.GetInt("journal.retention_days"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", appName, "config.toml")
	_, err = os.Stat(configFile)
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, "auto", cfg.Power.Backend)
	assert.Equal(t, filepath.Join(root, "data", appName, journalName), cfg.Journal.Path)
	assert.Equal(t, time.Duration(0), cfg.Power.DefaultTimeout)
}

func TestLoad_ReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	content := `[power]
backend = "memory"
default_tag = "backup"
default_timeout = "30m"

[journal]
path = "/tmp/custom.db"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))
	t.Setenv("WAKETRACE_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "memory", cfg.Power.Backend)
	assert.Equal(t, "backup", cfg.Power.DefaultTag)
	assert.Equal(t, 30*time.Minute, cfg.Power.DefaultTimeout)
	assert.Equal(t, "/tmp/custom.db", cfg.Journal.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Journal.Enabled)
}

func TestLoad_RejectsInvalidBackend(t *testing.T) {
	isolateXDG(t)
	t.Setenv("WAKETRACE_POWER_BACKEND", "hibernate")

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "power.backend")
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr := &Manager{config: DefaultConfig()}

	cfg := mgr.Get()
	cfg.Power.Backend = "memory"

	assert.Equal(t, "auto", mgr.Get().Power.Backend)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Power.DefaultTimeout = -time.Second },
			wantErr: "power.default_timeout",
		},
		{
			name:    "negative retention",
			mutate:  func(c *Config) { c.Journal.RetentionDays = -1 },
			wantErr: "journal.retention_days",
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"power"`)
	assert.Contains(t, string(data), `"retention_days"`)
	assert.Contains(t, string(data), "waketrace configuration")
}
