package render

import (
	"fmt"
	"io"
	"strings"
)

// RenderIntro prints the banner that opens a run.
func RenderIntro(w io.Writer, title string) {
	fmt.Fprintf(w, "%s  %s\n", StyledSymbol(SymbolIntro, true), TitleStyle.Render(title))
	fmt.Fprintln(w, StyledSymbol(SymbolBar, true))
}

// RenderOutro prints the closing line of a run.
func RenderOutro(w io.Writer, message string) {
	fmt.Fprintln(w, StyledSymbol(SymbolBar, true))
	fmt.Fprintf(w, "%s  %s\n\n", StyledSymbol(SymbolOutro, true), message)
}

// RenderCancel prints the notice shown when the user aborts the wizard.
func RenderCancel(w io.Writer, message string) {
	fmt.Fprintf(w, "%s  %s\n\n", StyledSymbol(SymbolOutro, true), ErrorStyle.Render(message))
}

// RenderAnswer prints the collapsed form of an answered prompt.
func RenderAnswer(w io.Writer, message string, answer string) {
	fmt.Fprintf(w, "%s  %s\n", StyledSymbol(SymbolDone, true), message)
	fmt.Fprintf(w, "%s  %s\n", StyledSymbol(SymbolBar, true), DimStyle.Render(answer))
	fmt.Fprintln(w, StyledSymbol(SymbolBar, true))
}

// SummarizeSelection renders chosen labels for RenderAnswer.
func SummarizeSelection(labels []string) string {
	if len(labels) == 0 {
		return "none"
	}
	return strings.Join(labels, ", ")
}

// SummarizeConfirm renders a yes/no answer for RenderAnswer.
func SummarizeConfirm(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
