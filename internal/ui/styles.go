package ui

import (
	"github.com/charmbracelet/lipgloss"

	"syncups/internal/syncup"
)

// Colors used throughout the TUI.
var (
	ColorRed     = lipgloss.Color("#FF0000")
	ColorGreen   = lipgloss.Color("#00FF00")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorBlack   = lipgloss.Color("#000000")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SpeakingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	AlertTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow)

	AlertButtonStyle = lipgloss.NewStyle().
				Foreground(ColorWhite)

	AlertButtonFocusStyle = lipgloss.NewStyle().
				Foreground(ColorBlack).
				Background(ColorYellow).
				Bold(true)

	FocusedFieldStyle = lipgloss.NewStyle().
				Foreground(ColorCyan).
				Bold(true)

	ProgressFilledStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(ColorDimGray)
)

// themeColors maps each sync-up theme to its main color hex. Themes whose
// main color is dark get a white accent, the rest black, matching the
// palette the themes were named for.
var themeColors = map[syncup.Theme]struct {
	main  lipgloss.Color
	light bool
}{
	syncup.ThemeAppIndigo:  {lipgloss.Color("#3A3A6E"), false},
	syncup.ThemeAppMagenta: {lipgloss.Color("#A33B6B"), false},
	syncup.ThemeAppOrange:  {lipgloss.Color("#E86840"), true},
	syncup.ThemeAppPurple:  {lipgloss.Color("#6D3F8C"), false},
	syncup.ThemeAppTeal:    {lipgloss.Color("#3EA3A3"), true},
	syncup.ThemeAppYellow:  {lipgloss.Color("#E8C840"), true},
	syncup.ThemeBubblegum:  {lipgloss.Color("#EE7DA5"), true},
	syncup.ThemeButtercup:  {lipgloss.Color("#FFD55E"), true},
	syncup.ThemeLavender:   {lipgloss.Color("#B99FD6"), true},
	syncup.ThemeNavy:       {lipgloss.Color("#20355C"), false},
	syncup.ThemeOxblood:    {lipgloss.Color("#5C1F23"), false},
	syncup.ThemePeriwinkle: {lipgloss.Color("#8FA4E8"), true},
	syncup.ThemePoppy:      {lipgloss.Color("#E84E4E"), true},
	syncup.ThemeSeafoam:    {lipgloss.Color("#A3E8C5"), true},
	syncup.ThemeSky:        {lipgloss.Color("#8FD2E8"), true},
	syncup.ThemeTan:        {lipgloss.Color("#D6B08F"), true},
}

// ThemeMainColor returns the theme's main color, gray for unknown themes.
func ThemeMainColor(t syncup.Theme) lipgloss.Color {
	if c, ok := themeColors[t]; ok {
		return c.main
	}
	return ColorGray
}

// ThemeBadgeStyle renders a theme name chip in the theme's colors.
func ThemeBadgeStyle(t syncup.Theme) lipgloss.Style {
	c, ok := themeColors[t]
	if !ok {
		return DimStyle
	}
	fg := ColorWhite
	if c.light {
		fg = ColorBlack
	}
	return lipgloss.NewStyle().Foreground(fg).Background(c.main)
}

// ThemeTitleStyle renders a sync-up title tinted by its theme.
func ThemeTitleStyle(t syncup.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ThemeMainColor(t))
}
