package viz

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ThemeOcean.Muted).
			Padding(1, 2).
			Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(ThemeOcean.Primary).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(ThemeOcean.Muted).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(ThemeOcean.Text)
	graphStyle  = lipgloss.NewStyle().Foreground(ThemeOcean.Accent).Padding(1, 0)
	statusStyle = lipgloss.NewStyle().Foreground(ThemeOcean.Accent).Bold(true)
	pausedStyle = lipgloss.NewStyle().Foreground(ThemeOcean.Warning).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(ThemeOcean.Error).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(ThemeOcean.Muted).MarginTop(2)
	cursorStyle = lipgloss.NewStyle().Foreground(ThemeOcean.Accent).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(ThemeOcean.Muted)
)

// applyTheme recolors the shared style set. Layout attributes stay fixed;
// only foregrounds move with the theme.
func applyTheme(t Theme) {
	statsStyle = statsStyle.BorderForeground(t.Muted)
	headerStyle = headerStyle.Foreground(t.Primary)
	labelStyle = labelStyle.Foreground(t.Muted)
	valueStyle = valueStyle.Foreground(t.Text)
	graphStyle = graphStyle.Foreground(t.Accent)
	statusStyle = statusStyle.Foreground(t.Accent)
	pausedStyle = pausedStyle.Foreground(t.Warning)
	errorStyle = errorStyle.Foreground(t.Error)
	helpStyle = helpStyle.Foreground(t.Muted)
	cursorStyle = cursorStyle.Foreground(t.Accent)
	dimStyle = dimStyle.Foreground(t.Muted)
}
