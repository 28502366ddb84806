package live

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary  = lipgloss.Color("21")
	colorMuted    = lipgloss.Color("244")
	colorDisabled = lipgloss.Color("240")
	colorNotice   = lipgloss.Color("252")
	colorWhite    = lipgloss.Color("15")
)

// styles groups the lipgloss styles used by the screen.
type styles struct {
	title        lipgloss.Style
	statement    lipgloss.Style
	option       lipgloss.Style
	answered     lipgloss.Style
	button       lipgloss.Style
	buttonOff    lipgloss.Style
	notice       lipgloss.Style
	progressHead lipgloss.Style
}

// newStyles builds styles, or plain ones when color is disabled.
func newStyles(noColor bool) styles {
	base := lipgloss.NewStyle()
	if noColor {
		return styles{
			title:        base.Bold(true),
			statement:    base.Padding(1, 2),
			option:       base,
			answered:     base,
			button:       base,
			buttonOff:    base,
			notice:       base.Border(lipgloss.NormalBorder()).Padding(0, 1),
			progressHead: base,
		}
	}
	return styles{
		title:        base.Bold(true).Foreground(colorWhite).Background(colorPrimary).Padding(0, 1),
		statement:    base.Padding(1, 2),
		option:       base.Foreground(colorPrimary),
		answered:     base.Foreground(colorMuted),
		button:       base.Foreground(colorWhite).Background(colorPrimary).Padding(0, 2),
		buttonOff:    base.Foreground(colorDisabled).Padding(0, 2),
		notice:       base.Foreground(colorNotice).Background(lipgloss.Color("236")).Padding(0, 1),
		progressHead: base.Foreground(colorMuted),
	}
}
