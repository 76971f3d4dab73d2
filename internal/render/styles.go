// Package render provides terminal output styling for the setup wizard.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI colors used by the wizard
const (
	ColorCyan   = lipgloss.Color("6")  // Headings, banner
	ColorGreen  = lipgloss.Color("2")  // List items, success indicator
	ColorYellow = lipgloss.Color("3")  // Keys, spinner
	ColorWhite  = lipgloss.Color("7")  // Values, plain text
	ColorRed    = lipgloss.Color("9")  // Error indicator
	ColorGray   = lipgloss.Color("8")  // Code fences, hints, frame
	ColorAccent = lipgloss.Color("14") // Prompt cursor
)

// Symbols
const (
	SymbolIntro   = "┌"
	SymbolBar     = "│"
	SymbolOutro   = "└"
	SymbolActive  = "◆"
	SymbolDone    = "◇"
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolChecked = "◼"
	SymbolBox     = "◻"
	SymbolCursor  = "›"
)

// Style definitions using Lip Gloss. Tab conversion is disabled on the
// formatter styles so styled lines keep their exact text.
var (
	// HeadingStyle is used for "## " lines
	HeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan).TabWidth(lipgloss.NoTabConversion)

	// FenceStyle is used for code fence lines
	FenceStyle = lipgloss.NewStyle().Foreground(ColorGray).TabWidth(lipgloss.NoTabConversion)

	// ListItemStyle is used for "- " lines
	ListItemStyle = lipgloss.NewStyle().Foreground(ColorGreen).TabWidth(lipgloss.NoTabConversion)

	// KeyStyle is used for the part of a line before the first colon
	KeyStyle = lipgloss.NewStyle().Foreground(ColorYellow).TabWidth(lipgloss.NoTabConversion)

	// ValueStyle is used for the part of a line after the first colon
	ValueStyle = lipgloss.NewStyle().Foreground(ColorWhite).TabWidth(lipgloss.NoTabConversion)

	// PlainStyle is used for every other line
	PlainStyle = lipgloss.NewStyle().Foreground(ColorWhite).TabWidth(lipgloss.NoTabConversion)

	// SpinnerStyle is used for the spinner frame
	SpinnerStyle = lipgloss.NewStyle().Foreground(ColorYellow)

	// SuccessStyle is used for success indicators
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen)

	// ErrorStyle is used for error indicators
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed)

	// DimStyle is used for the wizard frame and option hints
	DimStyle = lipgloss.NewStyle().Foreground(ColorGray)

	// TitleStyle is used for the intro banner
	TitleStyle = lipgloss.NewStyle().Background(ColorCyan).Foreground(lipgloss.Color("0")).Padding(0, 1)

	// CursorStyle is used for the highlighted option of a prompt
	CursorStyle = lipgloss.NewStyle().Foreground(ColorAccent)
)

// StyledSymbol returns a symbol with appropriate styling applied
func StyledSymbol(symbol string, success bool) string {
	switch symbol {
	case SymbolActive, SymbolCursor, SymbolChecked:
		return CursorStyle.Render(symbol)
	case SymbolDone, SymbolSuccess:
		if success {
			return SuccessStyle.Render(symbol)
		}
		return ErrorStyle.Render(symbol)
	case SymbolError:
		return ErrorStyle.Render(symbol)
	case SymbolIntro, SymbolBar, SymbolOutro, SymbolBox:
		return DimStyle.Render(symbol)
	default:
		return symbol
	}
}
