package poetry

import "github.com/charmbracelet/lipgloss"

// Style controls the block's rendering.
type Style struct {
	Wrapper       lipgloss.Style
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	ReadOnly    lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Wrapper: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		ReadOnly:      lipgloss.NewStyle().Faint(true),
	}
}
