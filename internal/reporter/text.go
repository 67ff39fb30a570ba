package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfmengels/elm-lint/pkg/lint"
)

// FileResult pairs one linted file's path and source with the diagnostics
// reported against it, in the order the CLI wants them printed.
type FileResult struct {
	Path        string
	Source      string
	Diagnostics []lint.Diagnostic
}

// RenderText writes a human-readable report of results to w and returns the
// total number of diagnostics printed.
func RenderText(w io.Writer, styles *Styles, results []FileResult) int {
	total := 0
	for _, result := range results {
		if len(result.Diagnostics) == 0 {
			continue
		}
		sourceLines := strings.Split(result.Source, "\n")
		fmt.Fprintln(w, styles.FilePath.Render(result.Path))
		for _, d := range result.Diagnostics {
			total++
			writeDiagnostic(w, styles, d, sourceLines)
		}
		fmt.Fprintln(w)
	}
	return total
}

func writeDiagnostic(w io.Writer, styles *Styles, d lint.Diagnostic, sourceLines []string) {
	rng := d.Range()
	location := fmt.Sprintf("%d:%d", rng.Start.Row, rng.Start.Column)
	ruleLabel := "(" + d.RuleName() + ")"
	if moduleName, ok := d.ModuleName(); ok {
		ruleLabel = "(" + moduleName + " " + d.RuleName() + ")"
	}

	fmt.Fprintf(w, "  %s  %s  %s\n",
		styles.Location.Render(location),
		styles.Message.Render(d.Message()),
		styles.RuleName.Render(ruleLabel),
	)

	for _, detail := range d.Details() {
		fmt.Fprintln(w, "    "+styles.Detail.Render(detail))
	}

	if rng.Start.Row >= 1 && rng.Start.Row <= len(sourceLines) {
		line := sourceLines[rng.Start.Row-1]
		fmt.Fprintln(w, "        "+styles.SourceLine.Render(line))
		if rng.Start.Column > 0 {
			fmt.Fprintln(w, "        "+strings.Repeat(" ", rng.Start.Column-1)+styles.Caret.Render("^"))
		}
	}

	if d.HasFixes() {
		fmt.Fprintln(w, "    "+styles.Dim.Render("fixable"))
	}
}

// Summarize writes a one-line total across every result.
func Summarize(w io.Writer, styles *Styles, filesChecked, issueCount int) {
	verb := "no issues"
	if issueCount > 0 {
		verb = fmt.Sprintf("%d issue(s)", issueCount)
	}
	fmt.Fprintln(w, styles.Bold.Render(fmt.Sprintf("%d file(s) checked, %s found", filesChecked, verb)))
}
