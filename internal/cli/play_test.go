package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"geoquiz/internal/quiz"
	"geoquiz/internal/ui/live"
)

// chdir changes the working directory for the duration of a test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	original, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(original) })
}

// stubTerminal forces the TTY check for the duration of a test.
func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

// TestPlayPlainFullSession plays the built-in quiz with all answers right.
func TestPlayPlainFullSession(t *testing.T) {
	stubTerminal(t, false)
	chdir(t, t.TempDir())
	input := strings.Join([]string{"t", "n", "t", "n", "f", "n", "f", "n", "t", "n", "t"}, "\n") + "\n"
	var out, errOut bytes.Buffer
	code := Run(nil, strings.NewReader(input), &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut.String())
	}
	if strings.Count(out.String(), "Result: 6 / 6") != 1 {
		t.Fatalf("expected one result line, got:\n%s", out.String())
	}
}

// TestPlayUsesLiveOnTTY verifies the live UI is chosen for terminals.
func TestPlayUsesLiveOnTTY(t *testing.T) {
	stubTerminal(t, true)
	chdir(t, t.TempDir())
	original := runLive
	t.Cleanup(func() { runLive = original })

	var got live.Options
	called := false
	runLive = func(_ context.Context, state quiz.State, _ io.Reader, _ io.Writer, opts live.Options) (quiz.State, error) {
		called = true
		got = opts
		return state, nil
	}
	var out, errOut bytes.Buffer
	code := Run([]string{"--no-color"}, strings.NewReader(""), &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut.String())
	}
	if !called {
		t.Fatalf("expected live UI to run")
	}
	if !got.NoColor {
		t.Fatalf("expected --no-color to reach the live UI")
	}
}

// TestPlayConfigFile verifies config values apply and flags override them.
func TestPlayConfigFile(t *testing.T) {
	stubTerminal(t, true)
	dir := t.TempDir()
	chdir(t, dir)
	logPath := filepath.Join(dir, "logs", "geoquiz.log")
	payload := "ui:\n  mode: plain\nlog:\n  path: " + logPath + "\n  verbose: true\n"
	if err := os.WriteFile(filepath.Join(dir, ".geoquiz.yml"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"play"}, strings.NewReader("t\n"), &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut.String())
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "action=select_true") {
		t.Fatalf("expected verbose action log, got:\n%s", data)
	}
}

// TestPlayInvalidOptions verifies validation failures are usage errors.
func TestPlayInvalidOptions(t *testing.T) {
	stubTerminal(t, false)
	chdir(t, t.TempDir())
	cases := [][]string{
		{"--ui", "fancy"},
		{"--verbose"},
		{"play", "extra"},
	}
	for _, args := range cases {
		var out, errOut bytes.Buffer
		code := Run(args, strings.NewReader(""), &out, &errOut)
		if code != ExitUsage {
			t.Fatalf("%v: expected exit %d, got %d", args, ExitUsage, code)
		}
	}
}

// TestPlayQuestionLoadFailure verifies loader errors are reported.
func TestPlayQuestionLoadFailure(t *testing.T) {
	stubTerminal(t, false)
	chdir(t, t.TempDir())
	original := loadQuestions
	t.Cleanup(func() { loadQuestions = original })
	loadQuestions = func() ([]quiz.Question, error) { return nil, errors.New("boom") }

	var out, errOut bytes.Buffer
	code := Run(nil, strings.NewReader(""), &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Failed to load questions: boom") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}
