package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
	accentColor            = "#ff9f1c"
	barColor               = "#4c78a8"
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor))

	headerStyle = lipgloss.NewStyle().BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)
	rowStyle         = lipgloss.NewStyle()
	rowSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color(rowSelectedBGColor))

	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	tableStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	redMarker     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	defaultMarker = " " // rows that are not blacklisted
	pillMarker    = "▐"

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			MarginRight(1)
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cardValueStyle = lipgloss.NewStyle().Bold(true)

	chartTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	chartBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(barColor))
	chartDimStyle   = lipgloss.NewStyle().Faint(true)

	dateWindowArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true)
	scrubberFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor))

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))
)
