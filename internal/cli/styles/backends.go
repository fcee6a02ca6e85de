package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/waketrace/internal/infrastructure/wakelock"
)

// BackendsRenderer renders the probe results of `waketrace backends`.
type BackendsRenderer struct {
	theme *Theme
}

// NewBackendsRenderer creates a new backends renderer with the given theme.
func NewBackendsRenderer(theme *Theme) *BackendsRenderer {
	return &BackendsRenderer{theme: theme}
}

// Render lists every backend with its availability. configured marks the
// backend selected in the config.
func (r *BackendsRenderer) Render(statuses []wakelock.BackendStatus, configured string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n\n",
		r.theme.Highlight.Render(IconBolt),
		r.theme.Title.Render("Wake lock backends"),
		r.theme.Subtle.Render("(configured: "+configured+")"),
	))

	width := 0
	for _, s := range statuses {
		width = max(width, len(s.Name))
	}

	for _, s := range statuses {
		name := fmt.Sprintf("%-*s", width, s.Name)
		if s.Available {
			b.WriteString(fmt.Sprintf("  %s %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Normal.Render(name)))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Subtle.Render(name)))
		}
		if s.Name == configured {
			b.WriteString(" " + r.theme.Badge.Render("selected"))
		}
		if s.Err != nil {
			b.WriteString("  " + r.theme.Subtle.Render(s.Err.Error()))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
