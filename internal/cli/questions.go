package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// runQuestions builds the handler for the questions command.
// Answers are never printed.
func runQuestions(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		asJSON := fs.Bool("json", false, "Print statements as a JSON array")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		questions, err := loadQuestions()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		statements := make([]string, 0, len(questions))
		for _, q := range questions {
			statements = append(statements, q.Statement)
		}

		if *asJSON {
			data, err := json.MarshalIndent(statements, "", "  ")
			if err != nil {
				fmt.Fprintf(stderr, "Failed to encode questions: %v\n", err)
				return ExitError
			}
			fmt.Fprintln(stdout, string(data))
			return ExitOK
		}
		for i, statement := range statements {
			fmt.Fprintf(stdout, "%2d. %s\n", i+1, statement)
		}
		return ExitOK
	}
}
