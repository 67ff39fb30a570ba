// Package reporter renders lint.Diagnostic results for the CLI, either as
// styled terminal text or as JSON for machine consumption.
package reporter

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the lipgloss renderers used by the text formatter.
type Styles struct {
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	RuleName   lipgloss.Style
	Message    lipgloss.Style
	Detail     lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style
	Dim        lipgloss.Style
	Bold       lipgloss.Style
}

// NewStyles returns color styles when colorEnabled is true, plain
// (zero-value) styles otherwise.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return &Styles{}
	}
	return &Styles{
		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		RuleName:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:    lipgloss.NewStyle(),
		Detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:       lipgloss.NewStyle().Bold(true),
	}
}

// ColorEnabled reports whether w is a terminal that should receive ANSI
// styling, honoring NO_COLOR.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ResolveColor applies the --color flag's mode ("auto", "always", "never")
// on top of ColorEnabled's terminal/NO_COLOR detection. Unrecognized modes
// fall back to "auto".
func ResolveColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return ColorEnabled(w)
	}
}
