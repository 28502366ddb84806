// Package plain renders a quiz session as line-oriented text for terminals
// without cursor control, pipes, and scripted play.
package plain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"geoquiz/internal/quiz"
)

const resultPrefix = "Result: "

// Options configures the plain renderer.
type Options struct {
	JSON   bool
	Logger *slog.Logger
}

// Event is one JSON line emitted in JSON mode.
type Event struct {
	Type    string          `json:"type"`
	Session string          `json:"session"`
	View    *quiz.ViewModel `json:"view,omitempty"`
	Summary *quiz.Summary   `json:"summary,omitempty"`
	Result  string          `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// renderer writes views and summaries in the selected format.
type renderer struct {
	out     io.Writer
	json    bool
	session string
}

// Run reads one action per line from in until the input ends, the user
// quits, or ctx is cancelled. It returns the last session state.
func Run(ctx context.Context, state quiz.State, in io.Reader, out io.Writer, opts Options) (quiz.State, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := renderer{out: out, json: opts.JSON, session: state.ID}
	if err := r.view(quiz.CurrentView(state)); err != nil {
		return state, err
	}

	lines, readErr, stop := readLines(in)
	defer stop()
	for {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		var line string
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case next, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return state, errors.Wrap(err, "read input")
				}
				return state, nil
			}
			line = strings.TrimSpace(next)
		}
		if line == "" {
			continue
		}
		if isQuit(line) {
			logger.Debug("quit", "session", state.ID, "index", state.Index, "finished", state.Finished())
			return state, nil
		}
		action, ok := quiz.ParseAction(line)
		if !ok {
			if err := r.hint(line); err != nil {
				return state, err
			}
			continue
		}

		outcome := quiz.Reduce(state, action)
		logger.Debug("action",
			"session", state.ID,
			"action", action.String(),
			"index", outcome.State.Index,
			"changed", outcome.Changed,
			"correct", outcome.State.Correct,
		)
		state = outcome.State
		if err := r.view(quiz.CurrentView(state)); err != nil {
			return state, err
		}
		if outcome.Summary != nil {
			logger.Info("summary", "session", state.ID, "result", outcome.Summary.String())
			if err := r.summary(*outcome.Summary); err != nil {
				return state, err
			}
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never delays
// cancellation. The lines channel closes at end of input, after the scan
// error is sent on the error channel. Calling stop releases the reader once
// it next produces a line.
func readLines(in io.Reader) (<-chan string, <-chan error, func()) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr, func() { close(done) }
}

// isQuit reports whether a line ends the session.
func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return true
	default:
		return false
	}
}

// view writes the current question.
func (r renderer) view(view quiz.ViewModel) error {
	if r.json {
		return r.emit(Event{Type: "view", Session: r.session, View: &view})
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\nQ%d/%d: %s\n", view.Number, view.Total, view.Statement)
	if view.IsAnswered {
		fmt.Fprintf(&b, "Answered: %s\n", optionLabel(view.Selected))
	} else {
		b.WriteString("Answer [t]rue or [f]alse\n")
	}
	if view.CanAdvance {
		b.WriteString("Type [n]ext to continue\n")
	}
	_, err := io.WriteString(r.out, b.String())
	return errors.Wrap(err, "write view")
}

// summary writes the one-shot result line.
func (r renderer) summary(summary quiz.Summary) error {
	if r.json {
		return r.emit(Event{Type: "summary", Session: r.session, Summary: &summary, Result: summary.String()})
	}
	_, err := fmt.Fprintf(r.out, "\n%s%s\n", resultPrefix, summary)
	return errors.Wrap(err, "write summary")
}

// hint explains unrecognized input without changing state.
func (r renderer) hint(line string) error {
	if r.json {
		return r.emit(Event{Type: "error", Session: r.session, Error: fmt.Sprintf("unknown input %q", line)})
	}
	_, err := fmt.Fprintf(r.out, "Unknown input %q (expected t, f, n, or q)\n", line)
	return errors.Wrap(err, "write hint")
}

// emit writes one JSON event line.
func (r renderer) emit(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}
	data = append(data, '\n')
	_, err = r.out.Write(data)
	return errors.Wrap(err, "write event")
}

// optionLabel renders a selection as True/False.
func optionLabel(choice quiz.Choice) string {
	switch choice {
	case quiz.ChoiceTrue:
		return "True"
	case quiz.ChoiceFalse:
		return "False"
	default:
		return "-"
	}
}
