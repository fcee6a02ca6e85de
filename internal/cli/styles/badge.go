package styles

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/bnema/waketrace/internal/domain/entity"
)

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// KindBadge renders a trace event kind.
func (t *Theme) KindBadge(kind entity.TraceEventKind) string {
	switch kind {
	case entity.TraceEventAcquire:
		return t.StatusBadge(string(kind), t.Background, t.Accent)
	case entity.TraceEventRelease:
		return t.StatusBadge(string(kind), t.Background, t.Warning)
	default:
		return t.MutedBadge(string(kind))
	}
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	if time.Since(tm) < time.Minute {
		return "just now"
	}
	return humanize.Time(tm)
}

// HumanDuration renders d rounded to what a reader cares about.
func HumanDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "0s"
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	case d < time.Hour:
		return d.Round(time.Second).String()
	default:
		return d.Round(time.Minute).String()
	}
}
