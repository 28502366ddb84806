package question

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// Error formats the issue as "field: message".
func (issue Issue) Error() string {
	return issue.Field + ": " + issue.Message
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
	errs   *multierror.Error
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, issue.Error())
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

// Unwrap exposes the aggregated issues.
func (err *ValidationError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.errs.ErrorOrNil()
}

type issueCollector struct {
	issues []Issue
	errs   *multierror.Error
}

func (collector *issueCollector) add(field, message string) {
	issue := Issue{Field: field, Message: message}
	collector.issues = append(collector.issues, issue)
	collector.errs = multierror.Append(collector.errs, issue)
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues, errs: collector.errs}
}

// Normalize trims whitespace and validates a question bank.
func Normalize(bank Bank) (Bank, error) {
	collector := &issueCollector{}
	if bank.Version == 0 {
		collector.add("version", "is required")
	} else if bank.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", bank.Version))
	}
	if len(bank.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seen := map[string]struct{}{}
	entries := make([]Entry, len(bank.Questions))
	for i, entry := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		entry.Statement = strings.Join(strings.Fields(entry.Statement), " ")
		if entry.Statement == "" {
			collector.add(prefix+".statement", "is required")
		} else {
			key := strings.ToLower(entry.Statement)
			if _, exists := seen[key]; exists {
				collector.add(prefix+".statement", fmt.Sprintf("duplicate statement %q", entry.Statement))
			}
			seen[key] = struct{}{}
		}
		if entry.Answer == nil {
			collector.add(prefix+".answer", "is required")
		}
		entries[i] = entry
	}
	bank.Questions = entries

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return bank, nil
}
