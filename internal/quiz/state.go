package quiz

import "github.com/google/uuid"

// State is one immutable step of a quiz session.
//
// Transition functions never modify a State in place; they return a copy
// with fresh slices for any field they touch.
type State struct {
	ID        string
	Questions []Question
	Index     int
	Answered  []bool
	Submitted []Choice
	Selected  Choice
	Correct   int
}

// NewState builds the initial state for a question list.
func NewState(questions []Question) (State, error) {
	if len(questions) == 0 {
		return State{}, ErrNoQuestions
	}
	owned := make([]Question, len(questions))
	copy(owned, questions)
	return State{
		ID:        uuid.NewString(),
		Questions: owned,
		Answered:  make([]bool, len(owned)),
		Submitted: make([]Choice, len(owned)),
	}, nil
}

// Total returns the number of questions in the session.
func (s State) Total() int {
	return len(s.Questions)
}

// LastIndex returns the index of the final question.
func (s State) LastIndex() int {
	return len(s.Questions) - 1
}

// IsLast reports whether the current question is the final one.
func (s State) IsLast() bool {
	return s.Index == s.LastIndex()
}

// CurrentAnswered reports whether the current question has been answered.
func (s State) CurrentAnswered() bool {
	if s.Index < 0 || s.Index >= len(s.Answered) {
		return false
	}
	return s.Answered[s.Index]
}

// CanAdvance reports whether Advance would move to another question.
func (s State) CanAdvance() bool {
	return s.Index < s.LastIndex() && s.CurrentAnswered()
}

// Finished reports whether the session reached its terminal state.
func (s State) Finished() bool {
	return len(s.Questions) > 0 && s.IsLast() && s.CurrentAnswered()
}

// Summary returns the correct/total count for the session so far.
func (s State) Summary() Summary {
	return Summary{Correct: s.Correct, Total: s.Total()}
}

// Score recomputes the correct count from submitted choices.
func (s State) Score() int {
	score := 0
	for i, answered := range s.Answered {
		if !answered {
			continue
		}
		if value, ok := s.Submitted[i].Bool(); ok && value == s.Questions[i].Answer {
			score++
		}
	}
	return score
}

// AnsweredCount returns how many questions have been answered.
func (s State) AnsweredCount() int {
	count := 0
	for _, answered := range s.Answered {
		if answered {
			count++
		}
	}
	return count
}
