package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"geoquiz/internal/config"
	"geoquiz/internal/question"
	"geoquiz/internal/quiz"
	"geoquiz/internal/ui/live"
	"geoquiz/internal/ui/plain"
)

// Test seams for the presentation layers and question source.
var (
	runLive       = live.Run
	runPlain      = plain.Run
	loadQuestions = question.Builtin
)

// playFlags holds command-line overrides for the config file.
type playFlags struct {
	configPath string
	uiMode     string
	noColor    bool
	json       bool
	logPath    string
	verbose    bool
}

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) Handler {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		var flags playFlags
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		fs.StringVar(&flags.configPath, "config", "", "Path to config file (default: search for "+config.FileName+")")
		fs.StringVar(&flags.uiMode, "ui", "", "UI mode: auto, live, or plain")
		fs.BoolVar(&flags.noColor, "no-color", false, "Disable ANSI colors")
		fs.BoolVar(&flags.json, "json", false, "Emit JSON events (implies plain output)")
		fs.StringVar(&flags.logPath, "log", "", "Write structured logs to a file")
		fs.BoolVar(&flags.verbose, "verbose", false, "Log every action")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "Unexpected arguments: %v\n", fs.Args())
			return ExitUsage
		}

		cfg, _, err := config.Resolve(flags.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		applyPlayFlags(fs, flags, &cfg)
		if err := config.Validate(cfg); err != nil {
			fmt.Fprintf(stderr, "Invalid options: %v\n", err)
			return ExitUsage
		}

		decision, err := resolveUIMode(cfg.UI.Mode, flags.json, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, closeLog, err := openLogger(cfg.Log)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
			return ExitError
		}
		defer closeLog()

		questions, err := loadQuestions()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		state, err := quiz.NewState(questions)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start quiz: %v\n", err)
			return ExitError
		}
		logger.Info("session started", "session", state.ID, "questions", state.Total(), "live", decision.useLive)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if decision.useLive {
			state, err = runLive(ctx, state, stdin, stdout, live.Options{
				NoColor:   cfg.UI.NoColor,
				NoticeTTL: cfg.UI.NoticeDuration(),
				AltScreen: cfg.UI.AltScreen,
				Logger:    logger,
			})
		} else {
			state, err = runPlain(ctx, state, stdin, stdout, plain.Options{
				JSON:   flags.json,
				Logger: logger,
			})
		}
		if err != nil && ctx.Err() == nil {
			logger.Error("session failed", "session", state.ID, "error", err)
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		logger.Info("session ended", "session", state.ID, "finished", state.Finished(), "correct", state.Correct)
		return ExitOK
	}
}

// applyPlayFlags overrides config values with explicitly set flags.
func applyPlayFlags(fs *flag.FlagSet, flags playFlags, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ui":
			cfg.UI.Mode = flags.uiMode
		case "no-color":
			cfg.UI.NoColor = flags.noColor
		case "log":
			cfg.Log.Path = flags.logPath
		case "verbose":
			cfg.Log.Verbose = flags.verbose
		}
	})
	config.Normalize(cfg)
}
