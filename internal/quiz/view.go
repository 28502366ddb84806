package quiz

// ViewModel is the read-only projection rendered after every event.
type ViewModel struct {
	Number         int    `json:"number"`
	Total          int    `json:"total"`
	Statement      string `json:"statement"`
	IsAnswered     bool   `json:"is_answered"`
	Selected       Choice `json:"selected_choice"`
	SelectedLabel  string `json:"selected"`
	CanAdvance     bool   `json:"can_advance"`
	IsLastQuestion bool   `json:"is_last_question"`
}

// CurrentView projects the current question into a view model.
func CurrentView(state State) ViewModel {
	if len(state.Questions) == 0 {
		return ViewModel{SelectedLabel: ChoiceUnset.String()}
	}
	return ViewModel{
		Number:         state.Index + 1,
		Total:          state.Total(),
		Statement:      state.Questions[state.Index].Statement,
		IsAnswered:     state.CurrentAnswered(),
		Selected:       state.Selected,
		SelectedLabel:  state.Selected.String(),
		CanAdvance:     state.CanAdvance(),
		IsLastQuestion: state.IsLast(),
	}
}
