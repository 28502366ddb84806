package quiz

import (
	"errors"
	"strings"
)

// ErrNoQuestions is returned when a session is built without questions.
var ErrNoQuestions = errors.New("quiz has no questions")

// Question is an immutable true/false statement with its ground truth.
type Question struct {
	Statement string
	Answer    bool
}

// Choice is the option selected for the displayed question.
type Choice int

const (
	// ChoiceUnset means no option is selected.
	ChoiceUnset Choice = iota
	// ChoiceTrue means "True" is selected.
	ChoiceTrue
	// ChoiceFalse means "False" is selected.
	ChoiceFalse
)

// ChoiceOf converts a boolean answer into a Choice.
func ChoiceOf(value bool) Choice {
	if value {
		return ChoiceTrue
	}
	return ChoiceFalse
}

// Bool returns the boolean value of a choice and whether it is set.
func (c Choice) Bool() (bool, bool) {
	switch c {
	case ChoiceTrue:
		return true, true
	case ChoiceFalse:
		return false, true
	default:
		return false, false
	}
}

// String returns a display label for a choice.
func (c Choice) String() string {
	switch c {
	case ChoiceTrue:
		return "true"
	case ChoiceFalse:
		return "false"
	default:
		return "unset"
	}
}

// Action is a discrete user input dispatched by a presentation layer.
type Action int

const (
	// ActionSelectTrue answers the current question with true.
	ActionSelectTrue Action = iota + 1
	// ActionSelectFalse answers the current question with false.
	ActionSelectFalse
	// ActionAdvance moves to the next question.
	ActionAdvance
)

// String returns the canonical action name.
func (a Action) String() string {
	switch a {
	case ActionSelectTrue:
		return "select_true"
	case ActionSelectFalse:
		return "select_false"
	case ActionAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// ParseAction maps user text to an action.
func ParseAction(input string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "true", "t", "yes", "y":
		return ActionSelectTrue, true
	case "false", "f", "no":
		return ActionSelectFalse, true
	case "next", "n", "advance", ">":
		return ActionAdvance, true
	default:
		return 0, false
	}
}
