package main

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output, tuned for dark terminals.
const (
	// ColorPrimary is purple, for titles and primary emphasis.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, for secondary text and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green, for PASS verdicts and positive outcomes.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red, for FAIL verdicts and failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber, for warnings and degraded-part notices.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue, for report keys and file names.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for report headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and placeholder values.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for PASS verdicts and zero-issue outcomes.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for FAIL verdicts and error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// KeyStyle is for report field names and config keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// ValueStyle is for report field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)
