package console

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used to render each kind of console line.
type Theme struct {
	Prompt  lipgloss.Style
	Tip     lipgloss.Style
	Reveal  lipgloss.Style
	Summary lipgloss.Style
}

// DefaultTheme returns the colored theme used on terminals.
func DefaultTheme() Theme {
	return Theme{
		Prompt:  lipgloss.NewStyle().Bold(true),
		Tip:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),               // yellow
		Reveal:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),     // red
		Summary: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).PaddingTop(1), // green
	}
}

// PlainTheme returns a theme without any styling.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Prompt:  plain,
		Tip:     plain,
		Reveal:  plain,
		Summary: plain,
	}
}
