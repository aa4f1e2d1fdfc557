// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#FF6B6B")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor is used for echoed input.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for the banner.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// HeadingStyle is used for "Input N:" and "Output N:" labels.
	HeadingStyle = lipgloss.NewStyle().
			Bold(true)

	// InputStyle formats echoed input lines.
	InputStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// ErrorIcon prefixes error messages.
const ErrorIcon = "✗"

// Presenter decorates driver output around receipts: banners, labels and
// errors. Receipt text is never passed through it and is always written
// verbatim. When Styled is false every method returns its input undecorated.
type Presenter struct {
	Styled bool
}

// Title renders the banner line.
func (p Presenter) Title(text string) string {
	if !p.Styled {
		return text + "\n" + strings.Repeat("=", len(text))
	}
	return TitleStyle.Render(text)
}

// Heading renders a section label.
func (p Presenter) Heading(text string) string {
	if !p.Styled {
		return text
	}
	return HeadingStyle.Render(text)
}

// Input renders an echoed input block.
func (p Presenter) Input(text string) string {
	if !p.Styled {
		return text
	}
	return InputStyle.Render(text)
}

// Error renders an error message.
func (p Presenter) Error(message string) string {
	if !p.Styled {
		return message
	}
	return ErrorStyle.Render(ErrorIcon + " " + message)
}
