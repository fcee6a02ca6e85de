package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/bnema/waketrace/internal/domain/entity"
)

// HistoryRenderer renders trace journal output for `waketrace history`.
type HistoryRenderer struct {
	theme *Theme
}

// NewHistoryRenderer creates a new history renderer with the given theme.
func NewHistoryRenderer(theme *Theme) *HistoryRenderer {
	return &HistoryRenderer{theme: theme}
}

// RenderEmpty renders the message shown for an empty journal.
func (r *HistoryRenderer) RenderEmpty() string {
	return r.theme.Subtle.Render("No wake lock events recorded yet.")
}

// RenderDisabled renders the message shown when the journal is off.
func (r *HistoryRenderer) RenderDisabled() string {
	return fmt.Sprintf("%s %s",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.Subtle.Render("The trace journal is disabled (journal.enabled = false)."),
	)
}

// RenderEvents renders events as a table, newest first as given.
func (r *HistoryRenderer) RenderEvents(events []entity.TraceEvent) string {
	if len(events) == 0 {
		return r.RenderEmpty()
	}

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			RelativeTime(e.OccurredAt),
			string(e.Kind),
			e.Tag,
			strconv.FormatUint(uint64(e.LockID), 10),
			strconv.Itoa(e.PID),
			e.TimeoutString(),
			heldString(e),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(r.theme.Text).Padding(0, 1)
	mutedStyle := cellStyle.Foreground(r.theme.Muted)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("WHEN", "EVENT", "TAG", "LOCK", "PID", "TIMEOUT", "HELD").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 || col == 4:
				return mutedStyle
			case col == 1 && row >= 0 && row < len(rows):
				return cellStyle.Foreground(r.kindColor(entity.TraceEventKind(rows[row][1])))
			default:
				return cellStyle
			}
		})

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		r.theme.Highlight.Render(IconDatabase),
		r.theme.Title.Render("Wake lock history"),
		r.theme.Subtle.Render(fmt.Sprintf("(%s events)", humanize.Comma(int64(len(events))))),
	))
	b.WriteString(t.Render())
	return b.String()
}

// RenderPurged renders the result of a purge.
func (r *HistoryRenderer) RenderPurged(deleted int64) string {
	return fmt.Sprintf("%s Removed %s trace %s.",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Highlight.Render(humanize.Comma(deleted)),
		pluralize(deleted, "event", "events"),
	)
}

// RenderError renders an error line.
func (r *HistoryRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

func (r *HistoryRenderer) kindColor(kind entity.TraceEventKind) lipgloss.Color {
	switch kind {
	case entity.TraceEventAcquire:
		return r.theme.Accent
	case entity.TraceEventRelease:
		return r.theme.Warning
	default:
		return r.theme.Muted
	}
}

func heldString(e entity.TraceEvent) string {
	if e.Kind != entity.TraceEventRelease {
		return ""
	}
	if !e.HasStart {
		return "unknown"
	}
	return HumanDuration(e.Elapsed)
}

func pluralize(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
