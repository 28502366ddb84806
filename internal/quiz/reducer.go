package quiz

// Outcome is the result of applying one action to a state.
type Outcome struct {
	State   State
	Summary *Summary
	Changed bool
}

// Reduce applies a user action to the session state.
func Reduce(state State, action Action) Outcome {
	switch action {
	case ActionSelectTrue:
		return SubmitAnswer(state, true)
	case ActionSelectFalse:
		return SubmitAnswer(state, false)
	case ActionAdvance:
		return Advance(state)
	default:
		return Outcome{State: state}
	}
}

// SubmitAnswer records an answer for the current question.
//
// Answering an already answered question leaves the state untouched. When
// the final question is answered the outcome carries the session summary.
func SubmitAnswer(state State, choice bool) Outcome {
	if len(state.Questions) == 0 || state.CurrentAnswered() {
		return Outcome{State: state}
	}
	next := state
	next.Answered = cloneBools(state.Answered)
	next.Submitted = cloneChoices(state.Submitted)

	next.Selected = ChoiceOf(choice)
	next.Answered[next.Index] = true
	next.Submitted[next.Index] = next.Selected
	if choice == next.Questions[next.Index].Answer {
		next.Correct++
	}

	outcome := Outcome{State: next, Changed: true}
	if next.IsLast() {
		summary := next.Summary()
		outcome.Summary = &summary
	}
	return outcome
}

// Advance moves to the next question once the current one is answered.
func Advance(state State) Outcome {
	if !state.CanAdvance() {
		return Outcome{State: state}
	}
	next := state
	next.Index++
	next.Selected = ChoiceUnset
	return Outcome{State: next, Changed: true}
}

func cloneBools(values []bool) []bool {
	out := make([]bool, len(values))
	copy(out, values)
	return out
}

func cloneChoices(values []Choice) []Choice {
	out := make([]Choice, len(values))
	copy(out, values)
	return out
}
