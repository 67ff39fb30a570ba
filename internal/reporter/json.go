package reporter

import (
	"encoding/json"
	"io"
)

// JSONOutput is the top-level machine-readable report.
type JSONOutput struct {
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's diagnostics.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
}

// JSONDiagnostic represents a single reported diagnostic.
type JSONDiagnostic struct {
	RuleName    string   `json:"ruleName"`
	ModuleName  string   `json:"moduleName,omitempty"`
	Message     string   `json:"message"`
	Details     []string `json:"details"`
	StartLine   int      `json:"startLine"`
	StartColumn int      `json:"startColumn"`
	EndLine     int      `json:"endLine"`
	EndColumn   int      `json:"endColumn"`
	Fixable     bool     `json:"fixable"`
}

// JSONSummary contains aggregate counts across every file in the report.
type JSONSummary struct {
	FilesChecked    int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	TotalIssues     int `json:"totalIssues"`
}

// RenderJSON writes results as a single JSON document to w.
func RenderJSON(w io.Writer, results []FileResult) error {
	out := JSONOutput{Summary: JSONSummary{FilesChecked: len(results)}}

	for _, result := range results {
		fileResult := JSONFileResult{Path: result.Path}
		if len(result.Diagnostics) > 0 {
			out.Summary.FilesWithIssues++
		}
		for _, d := range result.Diagnostics {
			out.Summary.TotalIssues++
			rng := d.Range()
			jd := JSONDiagnostic{
				RuleName:    d.RuleName(),
				Message:     d.Message(),
				Details:     d.Details(),
				StartLine:   rng.Start.Row,
				StartColumn: rng.Start.Column,
				EndLine:     rng.End.Row,
				EndColumn:   rng.End.Column,
				Fixable:     d.HasFixes(),
			}
			if moduleName, ok := d.ModuleName(); ok {
				jd.ModuleName = moduleName
			}
			fileResult.Diagnostics = append(fileResult.Diagnostics, jd)
		}
		out.Files = append(out.Files, fileResult)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
