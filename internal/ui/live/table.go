package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"geoquiz/internal/quiz"
)

// Progress statuses shown per question. Correctness is never revealed.
const (
	statusPending  = "pending"
	statusCurrent  = "current"
	statusAnswered = "answered"
)

// defaultColumns returns the progress table columns.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Status", Width: 10},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(colorWhite).Background(colorPrimary).Bold(false)
	return styles
}

// rowsForState converts quiz state into progress rows.
func rowsForState(state quiz.State) []table.Row {
	rows := make([]table.Row, 0, state.Total())
	for i := range state.Questions {
		rows = append(rows, table.Row{formatIndex(i), rowStatus(state, i)})
	}
	return rows
}

// rowStatus reports the progress status of a question.
func rowStatus(state quiz.State, index int) string {
	switch {
	case state.Answered[index]:
		return statusAnswered
	case index == state.Index:
		return statusCurrent
	default:
		return statusPending
	}
}

// formatIndex formats a question index as Q01, Q02, ...
func formatIndex(index int) string {
	number := index + 1
	if number < 10 {
		return "Q0" + fmtInt(number)
	}
	return "Q" + fmtInt(number)
}
