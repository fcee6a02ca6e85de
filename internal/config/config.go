// Package config provides configuration management for waketrace with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for waketrace.
type Config struct {
	Power   PowerConfig   `mapstructure:"power" json:"power"`
	Journal JournalConfig `mapstructure:"journal" json:"journal"`
	Logging LoggingConfig `mapstructure:"logging" json:"logging"`
}

// PowerConfig controls which platform mechanism backs wake locks and how
// locks are created by the CLI.
type PowerConfig struct {
	// Backend is auto, logind, portal, sysfs, caffeinate, windows or memory.
	Backend string `mapstructure:"backend" json:"backend" jsonschema:"enum=auto,enum=logind,enum=portal,enum=sysfs,enum=caffeinate,enum=windows,enum=memory"`
	// DefaultTag is used when a command is given no --tag.
	DefaultTag string `mapstructure:"default_tag" json:"default_tag"`
	// DefaultTimeout bounds holds started without --timeout. Zero means unbounded.
	DefaultTimeout time.Duration `mapstructure:"default_timeout" json:"default_timeout"`
	// ReferenceCounted is applied to every lock the CLI creates.
	ReferenceCounted bool `mapstructure:"reference_counted" json:"reference_counted"`
	// Screen requests a full wake lock that also keeps the display on.
	Screen bool `mapstructure:"screen" json:"screen"`
}

// JournalConfig controls the sqlite trace event journal.
type JournalConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"`
	// Path defaults to $XDG_DATA_HOME/waketrace/journal.db.
	Path          string `mapstructure:"path" json:"path"`
	RetentionDays int    `mapstructure:"retention_days" json:"retention_days" jsonschema:"minimum=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)

	// WAKETRACE_POWER_BACKEND, WAKETRACE_LOGGING_LEVEL, ...
	v.SetEnvPrefix("WAKETRACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv.
	bindings := map[string]string{
		"logging.level":  "WAKETRACE_LOG_LEVEL",
		"logging.format": "WAKETRACE_LOG_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "WAKETRACE_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables,
// writing a default config file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := m.createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}

		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// decode unmarshals, fills derived paths and validates. Caller holds mu.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Power.Backend = strings.ToLower(strings.TrimSpace(config.Power.Backend))
	if config.Power.Backend == "" {
		config.Power.Backend = "auto"
	}

	if config.Journal.Path == "" {
		path, err := GetJournalFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get journal path: %w", err)
		}
		config.Journal.Path = path
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	applyDefaults(m.viper)
}

func applyDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("power.backend", defaults.Power.Backend)
	v.SetDefault("power.default_tag", defaults.Power.DefaultTag)
	v.SetDefault("power.default_timeout", defaults.Power.DefaultTimeout)
	v.SetDefault("power.reference_counted", defaults.Power.ReferenceCounted)
	v.SetDefault("power.screen", defaults.Power.Screen)

	v.SetDefault("journal.enabled", defaults.Journal.Enabled)
	v.SetDefault("journal.path", defaults.Journal.Path)
	v.SetDefault("journal.retention_days", defaults.Journal.RetentionDays)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}

// createDefaultConfig writes the defaults to a new config file. A separate
// viper instance keeps environment overrides out of the file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	w := viper.New()
	w.SetConfigType("toml")
	applyDefaults(w)
	if err := w.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Global configuration manager instance
var (
	globalManager     *Manager
	globalManagerOnce sync.Once
)

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}

// ConfigFile returns the file the global manager loaded, if any.
func ConfigFile() string {
	if globalManager == nil {
		return ""
	}
	return globalManager.GetConfigFile()
}
