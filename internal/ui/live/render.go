package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geoquiz/internal/quiz"
)

const (
	appTitle     = "GeoQuiz"
	resultPrefix = "Result: "
)

// renderTitle renders the centered title bar.
func renderTitle(s styles, width int) string {
	bar := s.title.Render(appTitle)
	if width <= 0 {
		return bar
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

// renderStatement renders the question counter and statement text.
func renderStatement(s styles, view quiz.ViewModel, width int) string {
	counter := "Question " + fmtInt(view.Number) + " of " + fmtInt(view.Total)
	style := s.statement
	if width > 4 {
		style = style.Width(width).Align(lipgloss.Center)
	}
	return style.Render(counter + "\n\n" + view.Statement)
}

// renderOptions renders the radio options while the question is open.
// Once answered the options are replaced by the recorded selection.
func renderOptions(s styles, view quiz.ViewModel) string {
	if view.IsAnswered {
		return s.answered.Render("Answered: " + optionLabel(view.Selected))
	}
	return s.option.Render(radio(view.Selected == quiz.ChoiceTrue) + " True") +
		"    " +
		s.option.Render(radio(view.Selected == quiz.ChoiceFalse) + " False")
}

// renderNext renders the Next affordance, hidden on the last question.
func renderNext(s styles, view quiz.ViewModel) string {
	if view.IsLastQuestion {
		return ""
	}
	if view.CanAdvance {
		return s.button.Render("Next")
	}
	return s.buttonOff.Render("Next")
}

// renderNotice renders the transient result notice.
func renderNotice(s styles, notice string) string {
	if notice == "" {
		return ""
	}
	return s.notice.Render(notice)
}

// radio renders a radio control.
func radio(selected bool) string {
	if selected {
		return "(•)"
	}
	return "( )"
}

// optionLabel renders a selection as True/False.
func optionLabel(choice quiz.Choice) string {
	switch choice {
	case quiz.ChoiceTrue:
		return "True"
	case quiz.ChoiceFalse:
		return "False"
	default:
		return "-"
	}
}

// joinNonEmpty joins sections vertically, skipping empty ones.
func joinNonEmpty(sections ...string) string {
	kept := make([]string, 0, len(sections))
	for _, section := range sections {
		if strings.TrimSpace(section) == "" {
			continue
		}
		kept = append(kept, section)
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}
