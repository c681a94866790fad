package main

import "github.com/charmbracelet/lipgloss"

var (
	colorGray   = lipgloss.Color("#888888")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorOrange = lipgloss.Color("#FFA54F")
	colorAccent = lipgloss.Color("#7D56F4")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	doneStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	streakStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	barStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	dayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1).
			Align(lipgloss.Center)

	todayBoxStyle = dayBoxStyle.
			BorderForeground(colorAccent).
			Bold(true)
)
