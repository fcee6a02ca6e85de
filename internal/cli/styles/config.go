package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/waketrace/internal/config"
)

// ConfigRenderer renders the effective configuration.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file location.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	if path == "" {
		path = "(defaults, no config file)"
	}
	return fmt.Sprintf("%s Config %s", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// Render renders every setting grouped by section.
func (r *ConfigRenderer) Render(cfg *config.Config, path string) string {
	timeout := "none"
	if cfg.Power.DefaultTimeout > 0 {
		timeout = cfg.Power.DefaultTimeout.String()
	}

	sections := []struct {
		name   string
		values [][2]string
	}{
		{"power", [][2]string{
			{"backend", cfg.Power.Backend},
			{"default_tag", cfg.Power.DefaultTag},
			{"default_timeout", timeout},
			{"reference_counted", fmt.Sprint(cfg.Power.ReferenceCounted)},
			{"screen", fmt.Sprint(cfg.Power.Screen)},
		}},
		{"journal", [][2]string{
			{"enabled", fmt.Sprint(cfg.Journal.Enabled)},
			{"path", cfg.Journal.Path},
			{"retention_days", fmt.Sprint(cfg.Journal.RetentionDays)},
		}},
		{"logging", [][2]string{
			{"level", cfg.Logging.Level},
			{"format", cfg.Logging.Format},
		}},
	}

	var b strings.Builder
	b.WriteString(r.RenderConfigInfo(path))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n" + r.theme.Subtitle.Render("["+s.name+"]") + "\n")
		for _, kv := range s.values {
			b.WriteString(fmt.Sprintf("  %s = %s\n", r.theme.Highlight.Render(kv[0]), r.theme.Normal.Render(kv[1])))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
