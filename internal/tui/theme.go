package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles for one color scheme. The user can flip
// between the dark and light themes at runtime.
type Theme struct {
	Name string

	Header       lipgloss.Style
	StatusBar    lipgloss.Style
	Notification lipgloss.Style
	ErrorText    lipgloss.Style
	Help         lipgloss.Style

	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	DoneItem     lipgloss.Style
	Checkbox     lipgloss.Style
}

// DarkTheme returns the default dark color scheme.
func DarkTheme() Theme {
	var (
		blue   = lipgloss.Color("#5B9BD5")
		green  = lipgloss.Color("#6BCB77")
		red    = lipgloss.Color("#FF6B6B")
		gray   = lipgloss.Color("#868E96")
		white  = lipgloss.Color("#F8F9FA")
		subtle = lipgloss.Color("#495057")
	)

	return Theme{
		Name: "dark",
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(white).
			Background(blue).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(white).
			Background(subtle).
			Padding(0, 1),
		Notification: lipgloss.NewStyle().
			Foreground(green).
			Bold(true),
		ErrorText: lipgloss.NewStyle().
			Foreground(red).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(gray).
			Italic(true),
		Item: lipgloss.NewStyle().
			PaddingLeft(2),
		SelectedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(blue).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(blue),
		DoneItem: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(gray).
			Strikethrough(true),
		Checkbox: lipgloss.NewStyle().
			Foreground(green),
	}
}

// LightTheme returns the light color scheme.
func LightTheme() Theme {
	var (
		blue   = lipgloss.Color("#2B6CB0")
		green  = lipgloss.Color("#2F855A")
		red    = lipgloss.Color("#C53030")
		gray   = lipgloss.Color("#718096")
		dark   = lipgloss.Color("#1A202C")
		subtle = lipgloss.Color("#CBD5E0")
	)

	return Theme{
		Name: "light",
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(dark).
			Background(subtle).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(dark).
			Background(subtle).
			Padding(0, 1),
		Notification: lipgloss.NewStyle().
			Foreground(green).
			Bold(true),
		ErrorText: lipgloss.NewStyle().
			Foreground(red).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(gray).
			Italic(true),
		Item: lipgloss.NewStyle().
			PaddingLeft(2),
		SelectedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(blue).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(blue),
		DoneItem: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(gray).
			Strikethrough(true),
		Checkbox: lipgloss.NewStyle().
			Foreground(green),
	}
}

// ThemeByName resolves a configured theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
