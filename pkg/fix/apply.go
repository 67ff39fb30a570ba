package fix

import (
	"sort"
	"strings"

	"github.com/jfmengels/elm-lint/pkg/ast"
)

// Reparse validates rewritten source text by attempting to parse it again.
// It is the fix engine's only external dependency (see spec §4.5/§6): a
// successful Apply must not hand back text the rest of the pipeline cannot
// consume.
type Reparse func(source string) error

// Apply implements the fix engine's algorithm (spec §4.5):
//
//  1. Compute each fix's range (insertions are zero-length).
//  2. Reject the whole batch if any two ranges collide.
//  3. Apply fixes back-to-front (by start position, descending) so that an
//     applied edit never invalidates the position of one not yet applied.
//  4. Splice lines, rejoin, and compare against the input to detect a
//     no-op.
//  5. Re-parse the result to make sure it is still valid source.
func Apply(fixes []Fix, source string, reparse Reparse) Result {
	if hasCollisions(fixes) {
		return errorResult(HasCollisionsInFixRanges, "")
	}

	ordered := sortFixesByStartDesc(fixes)

	lines := strings.Split(source, "\n")
	for _, f := range ordered {
		lines = spliceFix(lines, f)
	}
	result := strings.Join(lines, "\n")

	if result == source {
		return errorResult(Unchanged, "")
	}

	if reparse != nil {
		if err := reparse(result); err != nil {
			return errorResult(SourceCodeIsNotValid, result)
		}
	}

	return successResult(result)
}

// hasCollisions reports whether any two fixes in the batch have colliding
// ranges.
func hasCollisions(fixes []Fix) bool {
	for i := 0; i < len(fixes); i++ {
		for j := i + 1; j < len(fixes); j++ {
			if ast.Collide(fixes[i].Range(), fixes[j].Range()) {
				return true
			}
		}
	}
	return false
}

// sortFixesByStartDesc returns fixes ordered by start position descending,
// stable for equal starts (reordering non-overlapping fixes never changes
// the applied result; see spec §8).
func sortFixesByStartDesc(fixes []Fix) []Fix {
	out := make([]Fix, len(fixes))
	copy(out, fixes)
	sort.SliceStable(out, func(i, j int) bool {
		return ast.ComparePosition(out[i].Range().Start, out[j].Range().Start) > 0
	})
	return out
}

// spliceFix applies a single fix to a line-split source, returning the new
// line slice.
func spliceFix(lines []string, f Fix) []string {
	rng := f.Range()

	startIdx := rng.Start.Row - 1
	endIdx := rng.End.Row - 1

	linesBefore := lines[:startIdx]
	linesAfter := append([]string(nil), lines[endIdx+1:]...)

	startLine := lines[startIdx]
	endLine := lines[endIdx]

	prefix := takePrefix(startLine, rng.Start.Column-1)
	suffix := takeSuffix(endLine, rng.End.Column-1)

	spliced := strings.Split(prefix+f.ReplacementText()+suffix, "\n")

	out := make([]string, 0, len(linesBefore)+len(spliced)+len(linesAfter))
	out = append(out, linesBefore...)
	out = append(out, spliced...)
	out = append(out, linesAfter...)
	return out
}

// takePrefix returns the first n bytes of s, clamped to len(s).
func takePrefix(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// takeSuffix returns the bytes of s starting at index n, clamped to [0, len(s)].
func takeSuffix(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[n:]
}
