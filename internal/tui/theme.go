package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used by the TUI.
// Use DarkTheme() or LightTheme() to get a pre-built theme,
// or construct a custom Theme.
type Theme struct {
	Primary        lipgloss.Color // title
	Secondary      lipgloss.Color // selected row text
	Warning        lipgloss.Color // active input line
	Success        lipgloss.Color // completed checkmark
	Text           lipgloss.Color // primary text
	TextMuted      lipgloss.Color // hints, completed items
	BackgroundElem lipgloss.Color // selected row background
	Border         lipgloss.Color // panel borders
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Primary:        lipgloss.Color("#fab283"),
		Secondary:      lipgloss.Color("#5c9cf5"),
		Warning:        lipgloss.Color("#f5a742"),
		Success:        lipgloss.Color("#7fd88f"),
		Text:           lipgloss.Color("#eeeeee"),
		TextMuted:      lipgloss.Color("#808080"),
		BackgroundElem: lipgloss.Color("#1e1e1e"),
		Border:         lipgloss.Color("#484848"),
	}
}

// LightTheme returns a light theme for bright terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Primary:        lipgloss.Color("#b35c00"),
		Secondary:      lipgloss.Color("#0550ae"),
		Warning:        lipgloss.Color("#bf8700"),
		Success:        lipgloss.Color("#116329"),
		Text:           lipgloss.Color("#1f2328"),
		TextMuted:      lipgloss.Color("#656d76"),
		BackgroundElem: lipgloss.Color("#f6f8fa"),
		Border:         lipgloss.Color("#d0d7de"),
	}
}

// ThemeByName returns a theme by name. Defaults to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// styles holds all lipgloss styles derived from a Theme.
// Constructed once from a Theme and stored in tuiModel.
type styles struct {
	title    lipgloss.Style
	hint     lipgloss.Style
	selected lipgloss.Style
	pending  lipgloss.Style
	done     lipgloss.Style
	check    lipgloss.Style
	panel    lipgloss.Style
	inputOn  lipgloss.Style
	inputOff lipgloss.Style
}

// newStyles builds all styles from a theme.
func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		hint:     lipgloss.NewStyle().Foreground(t.TextMuted),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Background(t.BackgroundElem),
		pending:  lipgloss.NewStyle().Foreground(t.Text),
		done:     lipgloss.NewStyle().Foreground(t.TextMuted).Strikethrough(true),
		check:    lipgloss.NewStyle().Foreground(t.Success),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1),
		inputOn:  lipgloss.NewStyle().Foreground(t.Warning),
		inputOff: lipgloss.NewStyle().Foreground(t.TextMuted),
	}
}
