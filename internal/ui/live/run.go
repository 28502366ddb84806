package live

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"geoquiz/internal/quiz"
)

// Run shows the quiz screen until the user quits and returns the last state.
// Cancelling ctx tears the screen down; the session is simply discarded.
func Run(ctx context.Context, state quiz.State, in io.Reader, out io.Writer, opts Options) (quiz.State, error) {
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(NewModel(state, opts), programOpts...)
	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return state, ctx.Err()
		}
		return state, errors.Wrap(err, "run live ui")
	}
	model, ok := final.(Model)
	if !ok {
		return state, errors.Errorf("unexpected model type %T", final)
	}
	return model.State(), nil
}
