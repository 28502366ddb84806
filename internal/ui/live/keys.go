package live

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"geoquiz/internal/quiz"
)

// keyMap holds the screen key bindings.
type keyMap struct {
	True  key.Binding
	False key.Binding
	Next  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// defaultKeyMap returns the standard bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		True: key.NewBinding(
			key.WithKeys("t", "left"),
			key.WithHelp("t/←", "true"),
		),
		False: key.NewBinding(
			key.WithKeys("f", "right"),
			key.WithHelp("f/→", "false"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "enter", " "),
			key.WithHelp("n/enter", "next"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.True, k.False, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.True, k.False},
		{k.Next},
		{k.Help, k.Quit},
	}
}

// actionFor maps a key press to a quiz action.
func (k keyMap) actionFor(msg tea.KeyMsg) (quiz.Action, bool) {
	switch {
	case key.Matches(msg, k.True):
		return quiz.ActionSelectTrue, true
	case key.Matches(msg, k.False):
		return quiz.ActionSelectFalse, true
	case key.Matches(msg, k.Next):
		return quiz.ActionAdvance, true
	default:
		return 0, false
	}
}
