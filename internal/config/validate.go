package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// Error formats the issue as "field: message".
func (issue Issue) Error() string {
	return issue.Field + ": " + issue.Message
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, issue.Error())
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg Config) error {
	var merr *multierror.Error
	switch cfg.UI.Mode {
	case UIModeAuto, UIModeLive, UIModePlain:
	default:
		merr = multierror.Append(merr, Issue{
			Field:   "ui.mode",
			Message: fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI.Mode),
		})
	}
	if cfg.UI.NoticeSeconds < 0 {
		merr = multierror.Append(merr, Issue{Field: "ui.notice_seconds", Message: "must not be negative"})
	}
	if cfg.Log.Verbose && cfg.Log.Path == "" {
		merr = multierror.Append(merr, Issue{Field: "log.path", Message: "is required when log.verbose is set"})
	}
	if merr == nil {
		return nil
	}
	issues := make([]Issue, 0, len(merr.Errors))
	for _, err := range merr.Errors {
		if issue, ok := err.(Issue); ok {
			issues = append(issues, issue)
		}
	}
	return &ValidationError{Issues: issues}
}
