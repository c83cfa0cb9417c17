package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases
const (
	colorBrand    = colorPink
	colorAccent   = colorMauve
	colorSelected = colorGreen
	colorSortKey  = colorPeach
	colorError    = colorRed
	colorDisabled = colorOverlay0
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	// Column header row of the table
	columnHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSubtext1).
				Bold(true)

	sortedHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSortKey).
				Bold(true)

	headerRuleStyle = lipgloss.NewStyle().Foreground(colorSurface2)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	cursorRowStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0)

	selectedMarkStyle = lipgloss.NewStyle().Foreground(colorSelected).Bold(true)

	rowStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	pagerStyle         = lipgloss.NewStyle().Foreground(colorSubtext0)
	pagerDisabledStyle = lipgloss.NewStyle().Foreground(colorDisabled)
	pagerActiveStyle   = lipgloss.NewStyle().Foreground(colorBlue)

	searchPromptStyle = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	errorStatusStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0).
				Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
)
