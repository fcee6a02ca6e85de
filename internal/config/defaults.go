package config

const (
	defaultRetentionDays = 30
	defaultTag           = "waketrace"
)

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Power: PowerConfig{
			Backend:          "auto",
			DefaultTag:       defaultTag,
			DefaultTimeout:   0,
			ReferenceCounted: true,
			Screen:           false,
		},
		Journal: JournalConfig{
			Enabled:       true,
			Path:          "",
			RetentionDays: defaultRetentionDays,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
