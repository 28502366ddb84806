package quiz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, answers ...bool) State {
	t.Helper()
	questions := make([]Question, 0, len(answers))
	for i, answer := range answers {
		questions = append(questions, Question{Statement: "Statement " + string(rune('A'+i)), Answer: answer})
	}
	state, err := NewState(questions)
	require.NoError(t, err)
	return state
}

// TestNewStateRejectsEmpty verifies a session needs at least one question.
func TestNewStateRejectsEmpty(t *testing.T) {
	_, err := NewState(nil)
	require.ErrorIs(t, err, ErrNoQuestions)
}

// TestNewStateInitial verifies the initial state.
func TestNewStateInitial(t *testing.T) {
	state := newTestState(t, true, false)
	require.NotEmpty(t, state.ID)
	require.Equal(t, 0, state.Index)
	require.Equal(t, []bool{false, false}, state.Answered)
	require.Equal(t, ChoiceUnset, state.Selected)
	require.Zero(t, state.Correct)
	require.False(t, state.Finished())
}

// TestSubmitAnswerScoresOnce verifies answers are counted once.
func TestSubmitAnswerScoresOnce(t *testing.T) {
	state := newTestState(t, true, false)
	out := SubmitAnswer(state, true)
	require.True(t, out.Changed)
	require.Nil(t, out.Summary)
	require.Equal(t, 1, out.State.Correct)
	require.Equal(t, ChoiceTrue, out.State.Selected)

	again := SubmitAnswer(out.State, false)
	require.False(t, again.Changed)
	require.Equal(t, out.State.Answered, again.State.Answered)
	require.Equal(t, ChoiceTrue, again.State.Selected)
	require.Equal(t, 1, again.State.Correct)
}

// TestSubmitAnswerDoesNotMutateInput verifies transitions copy their slices.
func TestSubmitAnswerDoesNotMutateInput(t *testing.T) {
	state := newTestState(t, true)
	_ = SubmitAnswer(state, true)
	require.False(t, state.Answered[0])
	require.Equal(t, ChoiceUnset, state.Submitted[0])
	require.Zero(t, state.Correct)
}

// TestAdvanceRequiresAnswer verifies advance is a no-op before answering.
func TestAdvanceRequiresAnswer(t *testing.T) {
	state := newTestState(t, true, true)
	out := Advance(state)
	require.False(t, out.Changed)
	require.Equal(t, 0, out.State.Index)
	require.Equal(t, []bool{false, false}, out.State.Answered)
}

// TestAdvanceResetsSelection verifies the next question starts unanswered.
func TestAdvanceResetsSelection(t *testing.T) {
	state := SubmitAnswer(newTestState(t, true, false), false).State
	out := Advance(state)
	require.True(t, out.Changed)
	require.Equal(t, 1, out.State.Index)
	require.Equal(t, ChoiceUnset, out.State.Selected)
	require.False(t, out.State.CurrentAnswered())
}

// TestAdvanceStopsAtLastQuestion verifies the terminal state is stable.
func TestAdvanceStopsAtLastQuestion(t *testing.T) {
	state := SubmitAnswer(newTestState(t, false), false).State
	require.True(t, state.Finished())
	out := Advance(state)
	require.False(t, out.Changed)
	require.Equal(t, 0, out.State.Index)
}

// TestFourQuestionScenario walks a full session with one wrong answer.
func TestFourQuestionScenario(t *testing.T) {
	state := newTestState(t, true, true, false, false)
	var summary *Summary
	for i, choice := range []bool{true, true, false, true} {
		out := SubmitAnswer(state, choice)
		require.True(t, out.Changed)
		state = out.State
		if i < 3 {
			require.Nil(t, out.Summary)
			state = Advance(state).State
			continue
		}
		summary = out.Summary
	}
	require.Equal(t, 3, state.Correct)
	require.Equal(t, []bool{true, true, true, true}, state.Answered)
	require.NotNil(t, summary)
	require.Equal(t, "3 / 4", summary.String())
}

// TestSingleQuestionSummary verifies the summary fires on the only question.
func TestSingleQuestionSummary(t *testing.T) {
	out := SubmitAnswer(newTestState(t, true), true)
	require.NotNil(t, out.Summary)
	require.Equal(t, "1 / 1", out.Summary.String())
	require.False(t, CurrentView(out.State).CanAdvance)

	repeat := SubmitAnswer(out.State, true)
	require.Nil(t, repeat.Summary)
}

// TestReduceDispatch verifies actions route to the right transition.
func TestReduceDispatch(t *testing.T) {
	state := newTestState(t, false, true)
	state = Reduce(state, ActionSelectFalse).State
	require.Equal(t, 1, state.Correct)
	state = Reduce(state, ActionAdvance).State
	require.Equal(t, 1, state.Index)
	out := Reduce(state, Action(99))
	require.False(t, out.Changed)
}

// TestCorrectMatchesScore drives every action sequence of a short quiz and
// checks the running count against a recomputation.
func TestCorrectMatchesScore(t *testing.T) {
	actions := []Action{ActionSelectTrue, ActionSelectFalse, ActionAdvance}
	var walk func(state State, depth int)
	walk = func(state State, depth int) {
		require.Equal(t, state.Score(), state.Correct)
		require.LessOrEqual(t, state.Correct, state.AnsweredCount())
		if depth == 0 {
			return
		}
		for _, action := range actions {
			walk(Reduce(state, action).State, depth-1)
		}
	}
	walk(newTestState(t, true, false, true), 6)
}

// TestParseAction verifies text input mapping.
func TestParseAction(t *testing.T) {
	cases := map[string]Action{
		"t":      ActionSelectTrue,
		" TRUE ": ActionSelectTrue,
		"no":     ActionSelectFalse,
		"f":      ActionSelectFalse,
		"next":   ActionAdvance,
		"n":      ActionAdvance,
		">":      ActionAdvance,
	}
	for input, want := range cases {
		got, ok := ParseAction(input)
		require.True(t, ok, input)
		require.Equal(t, want, got, input)
	}
	_, ok := ParseAction("maybe")
	require.False(t, ok)
}
