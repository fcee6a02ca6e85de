// Package model holds the Bubble Tea models behind interactive commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/bnema/waketrace/internal/application/usecase"
	"github.com/bnema/waketrace/internal/cli/styles"
	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/power"
)

// HoldModel shows a live status line while a wake lock is held.
type HoldModel struct {
	spinner spinner.Model
	theme   *styles.Theme
	holdUC  *usecase.HoldWakeLockUseCase
	input   usecase.HoldInput
	backend string

	ctx      context.Context
	cancel   context.CancelFunc
	acquired chan lockInfo

	lock      *lockInfo
	startedAt time.Time
	elapsed   time.Duration
	now       func() time.Time

	stopping bool
	done     bool
	err      error
}

type lockInfo struct {
	id    entity.WakeLockID
	tag   string
	flags entity.WakeLockFlags
}

type holdAcquiredMsg lockInfo

type holdFinishedMsg struct {
	err error
}

// NewHoldModel creates the hold status model. The hold starts with Init and
// ends on q, ctrl+c, the input timeout or cancellation of ctx.
func NewHoldModel(
	ctx context.Context,
	theme *styles.Theme,
	holdUC *usecase.HoldWakeLockUseCase,
	input usecase.HoldInput,
	backend string,
) HoldModel {
	ctx, cancel := context.WithCancel(ctx)
	return HoldModel{
		spinner:  styles.NewDefaultSpinner(theme),
		theme:    theme,
		holdUC:   holdUC,
		input:    input,
		backend:  backend,
		ctx:      ctx,
		cancel:   cancel,
		acquired: make(chan lockInfo, 1),
		now:      time.Now,
	}
}

// Err returns the error the hold ended with.
func (m HoldModel) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m HoldModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runHold(), m.waitAcquired())
}

func (m HoldModel) runHold() tea.Cmd {
	return func() tea.Msg {
		err := m.holdUC.Execute(m.ctx, m.input, func(ctx context.Context, lock *power.TracingWakeLock) error {
			m.acquired <- lockInfo{id: lock.ID(), tag: lock.Tag(), flags: lock.Flags()}
			<-ctx.Done()
			return nil
		})
		return holdFinishedMsg{err: err}
	}
}

func (m HoldModel) waitAcquired() tea.Cmd {
	return func() tea.Msg {
		select {
		case info := <-m.acquired:
			return holdAcquiredMsg(info)
		case <-m.ctx.Done():
			return nil
		}
	}
}

// Update implements tea.Model.
func (m HoldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case holdAcquiredMsg:
		info := lockInfo(msg)
		m.lock = &info
		m.startedAt = m.now()
		return m, nil

	case holdFinishedMsg:
		if m.lock != nil {
			m.elapsed = m.now().Sub(m.startedAt)
		}
		m.done = true
		m.err = msg.err
		m.cancel()
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if !m.stopping {
				m.stopping = true
				m.cancel()
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m HoldModel) View() string {
	t := m.theme

	if m.done {
		if m.err != nil {
			return fmt.Sprintf("%s %v\n", t.ErrorStyle.Render(styles.IconX), m.err)
		}
		if m.lock == nil {
			return t.Subtle.Render("Hold cancelled before the wake lock was acquired.") + "\n"
		}
		return fmt.Sprintf("%s Released %s after %s\n",
			t.SuccessStyle.Render(styles.IconUnlock),
			t.Highlight.Render(m.lock.tag),
			t.Normal.Render(styles.HumanDuration(m.elapsed)),
		)
	}

	if m.lock == nil {
		return fmt.Sprintf("%s %s\n", m.spinner.View(), t.Subtle.Render("Acquiring wake lock on "+m.backend+"..."))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s %s %s\n",
		m.spinner.View(),
		t.Normal.Render("Holding"),
		t.Highlight.Render(m.lock.tag),
		t.MutedBadge(fmt.Sprintf("#%d %s", m.lock.id, m.lock.flags)),
		t.Subtle.Render("on "+m.backend),
	))

	status := fmt.Sprintf("  %s held for %s", styles.IconClock, styles.HumanDuration(m.now().Sub(m.startedAt)))
	if m.input.Timeout > 0 {
		status += ", releases " + humanize.Time(m.startedAt.Add(m.input.Timeout))
	}
	b.WriteString(t.Subtle.Render(status) + "\n")

	if m.stopping {
		b.WriteString(t.WarningStyle.Render("  releasing...") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n", t.HelpKey.Render("q"), t.HelpDesc.Render("release and quit")))
	}
	return b.String()
}
