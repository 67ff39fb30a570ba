// Package fix represents machine-applicable textual edits and the engine
// that applies a batch of them to source text.
package fix

import "github.com/jfmengels/elm-lint/pkg/ast"

// Kind discriminates the Fix sum type.
type Kind int

const (
	// Removal deletes the text covered by Range.
	Removal Kind = iota
	// Replacement replaces the text covered by Range with Replacement.
	Replacement
	// Insertion inserts Replacement at Position (modeled as a zero-length
	// Range when applied).
	Insertion
)

// Fix is a single textual edit: a removal, a replacement, or an insertion.
type Fix struct {
	kind        Kind
	rng         ast.Range
	replacement string
}

// NewRemoval builds a Fix that deletes the given range.
func NewRemoval(rng ast.Range) Fix {
	return Fix{kind: Removal, rng: rng}
}

// NewReplacement builds a Fix that replaces the given range with newText.
func NewReplacement(rng ast.Range, newText string) Fix {
	return Fix{kind: Replacement, rng: rng, replacement: newText}
}

// NewInsertion builds a Fix that inserts newText at pos.
func NewInsertion(pos ast.Position, newText string) Fix {
	return Fix{kind: Insertion, rng: ast.Range{Start: pos, End: pos}, replacement: newText}
}

// Kind returns the fix's variant.
func (f Fix) Kind() Kind { return f.kind }

// Range returns the fix's range. For an insertion this is the zero-length
// range [pos, pos].
func (f Fix) Range() ast.Range { return f.rng }

// ReplacementText returns the text to splice in. A removal's replacement
// text is always empty.
func (f Fix) ReplacementText() string {
	if f.kind == Removal {
		return ""
	}
	return f.replacement
}
