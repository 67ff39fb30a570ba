package lint

import (
	"fmt"
	"sort"

	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/diagnostic"
	"github.com/jfmengels/elm-lint/pkg/project"
	"github.com/jfmengels/elm-lint/pkg/rule"
)

// File is a single unit of source text handed to Lint. No file-system
// access happens inside this package; callers read the bytes themselves.
type File struct {
	Path   string
	Source string
}

// ParseFunc parses source text into a File's AST.
type ParseFunc func(source string) (*ast.File, error)

// PostProcessFunc finalizes operator associativities and resolves name
// shadowing on a freshly parsed file. It runs once, after a successful
// parse and before any rule sees the file.
type PostProcessFunc func(*ast.File) *ast.File

// Lint runs every rule in rules (in order) against file and returns a
// single, rule-and-module-tagged, range-sorted diagnostic list (spec §4.6).
// It never panics on a parse failure and never mutates file or proj.
func Lint(parse ParseFunc, postProcess PostProcessFunc, rules []rule.Rule, proj project.Project, file File) []Diagnostic {
	parsed, err := parse(file.Source)
	if err != nil {
		return []Diagnostic{parsingErrorDiagnostic(file.Path)}
	}

	if postProcess != nil {
		parsed = postProcess(parsed)
	}

	var moduleName *string
	if parsed.Module != nil {
		name := parsed.Module.Name()
		moduleName = &name
	}

	diagnostics := make([]Diagnostic, 0)
	for _, r := range rules {
		for _, d := range r.Analyze(proj, *parsed) {
			diagnostics = append(diagnostics, tag(r.Name(), moduleName, d))
		}
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		return ast.CompareRangeForDiagnostics(diagnostics[i].Range(), diagnostics[j].Range()) < 0
	})

	return diagnostics
}

// LintMultiple runs Lint over a batch of files, returning each file's
// diagnostic list in a map keyed by the file's path. Linting one file is a pure function of
// its inputs, so the batch parallelizes trivially at the caller's
// discretion; this helper itself stays single-threaded, matching the
// framework's non-cooperative scheduling model.
func LintMultiple(parse ParseFunc, postProcess PostProcessFunc, rules []rule.Rule, proj project.Project, files []File) map[string][]Diagnostic {
	results := make(map[string][]Diagnostic, len(files))
	for _, f := range files {
		results[f.Path] = Lint(parse, postProcess, rules, proj, f)
	}
	return results
}

func parsingErrorDiagnostic(path string) Diagnostic {
	zero := ast.Range{}
	d := diagnostic.New(fmt.Sprintf("Could not parse %s as a valid source file", path), []string{
		"This file could not be parsed. No rules were run against it.",
	}, zero)
	return tag(ParsingErrorRuleName, nil, d)
}
