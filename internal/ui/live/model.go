package live

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"geoquiz/internal/quiz"
)

// Model renders a quiz session using Bubble Tea.
type Model struct {
	state     quiz.State
	keys      keyMap
	help      help.Model
	progress  table.Model
	styles    styles
	noticeTTL time.Duration
	notice    string
	noticeSeq int
	width     int
	logger    *slog.Logger
}

// Options configures the live UI model.
type Options struct {
	NoColor   bool
	NoticeTTL time.Duration
	AltScreen bool
	Logger    *slog.Logger
}

// NewModel constructs a screen for a fresh session state.
func NewModel(state quiz.State, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows(rowsForState(state)),
		table.WithFocused(false),
		table.WithHeight(state.Total()+1),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	t.SetCursor(state.Index)
	return Model{
		state:     state,
		keys:      defaultKeyMap(),
		help:      help.New(),
		progress:  t,
		styles:    newStyles(opts.NoColor),
		noticeTTL: opts.NoticeTTL,
		logger:    logger,
	}
}

// State returns the current session state.
func (m Model) State() quiz.State {
	return m.state
}

// Notice returns the visible notice text, if any.
func (m Model) Notice() string {
	return m.notice
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses and notice expiry.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(typed, m.keys.Quit):
			m.logger.Debug("quit", "session", m.state.ID, "index", m.state.Index, "finished", m.state.Finished())
			return m, tea.Quit
		case key.Matches(typed, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if action, ok := m.keys.actionFor(typed); ok {
			return m.dispatch(action)
		}
	case noticeExpiredMsg:
		if typed.seq == m.noticeSeq {
			m.notice = ""
		}
	}
	return m, nil
}

// View renders the screen.
func (m Model) View() string {
	view := quiz.CurrentView(m.state)
	return joinNonEmpty(
		renderTitle(m.styles, m.width),
		renderStatement(m.styles, view, m.width),
		renderOptions(m.styles, view),
		renderNext(m.styles, view),
		m.styles.progressHead.Render("Progress"),
		m.progress.View(),
		renderNotice(m.styles, m.notice),
		m.help.View(m.keys),
	)
}

// noticeExpiredMsg hides the notice it was scheduled for.
type noticeExpiredMsg struct {
	seq int
}

// dispatch applies an action and schedules the result notice.
func (m Model) dispatch(action quiz.Action) (tea.Model, tea.Cmd) {
	outcome := quiz.Reduce(m.state, action)
	m.logger.Debug("action",
		"session", m.state.ID,
		"action", action.String(),
		"index", outcome.State.Index,
		"changed", outcome.Changed,
		"correct", outcome.State.Correct,
	)
	m.state = outcome.State
	if !outcome.Changed {
		return m, nil
	}
	m.progress.SetRows(rowsForState(m.state))
	m.progress.SetCursor(m.state.Index)
	if outcome.Summary == nil {
		return m, nil
	}
	m.logger.Info("summary", "session", m.state.ID, "result", outcome.Summary.String())
	m.notice = resultPrefix + outcome.Summary.String()
	m.noticeSeq++
	return m, expireNotice(m.noticeSeq, m.noticeTTL)
}

// expireNotice schedules a notice dismissal; a non-positive ttl keeps it.
func expireNotice(seq int, ttl time.Duration) tea.Cmd {
	if ttl <= 0 {
		return nil
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg { return noticeExpiredMsg{seq: seq} })
}
