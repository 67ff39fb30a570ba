// Package diagnostic defines the rule-level diagnostic model: a message,
// supporting detail paragraphs, a source range, and an optional list of
// machine-applicable fixes.
package diagnostic

import (
	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/fix"
)

// Diagnostic is a single issue reported by a rule at a source range.
type Diagnostic struct {
	message string
	details []string
	rng     ast.Range
	fixes   []fix.Fix
}

// New builds a diagnostic with no fixes. details must be non-empty: New
// panics when it is empty, so that rule authors get an obvious panic close
// to the mistake rather than a silently malformed diagnostic.
func New(message string, details []string, rng ast.Range) Diagnostic {
	if len(details) == 0 {
		panic("diagnostic: details must be non-empty")
	}
	return Diagnostic{message: message, details: append([]string(nil), details...), rng: rng}
}

// WithFixes returns a copy of d with its fix list replaced. An empty fixes
// slice clears the fix list (normalizing "empty list" to "no fixes").
func (d Diagnostic) WithFixes(fixes []fix.Fix) Diagnostic {
	if len(fixes) == 0 {
		d.fixes = nil
		return d
	}
	d.fixes = append([]fix.Fix(nil), fixes...)
	return d
}

// Message returns the diagnostic's headline message.
func (d Diagnostic) Message() string { return d.message }

// Details returns the diagnostic's supporting paragraphs.
func (d Diagnostic) Details() []string { return d.details }

// Range returns the diagnostic's source range.
func (d Diagnostic) Range() ast.Range { return d.rng }

// Fixes returns the diagnostic's fix list, or nil if it has none.
func (d Diagnostic) Fixes() []fix.Fix { return d.fixes }

// HasFixes reports whether the diagnostic carries any fixes.
func (d Diagnostic) HasFixes() bool { return len(d.fixes) > 0 }
