// Package lint runs a configured list of rules over one file and returns a
// sorted, rule-and-module-tagged diagnostic list.
package lint

import (
	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/diagnostic"
	"github.com/jfmengels/elm-lint/pkg/fix"
)

// ParsingErrorRuleName is the synthetic rule name attached to the single
// diagnostic produced when a file fails to parse.
const ParsingErrorRuleName = "ParsingError"

// Diagnostic is a rule diagnostic tagged with the rule and module identity
// the lint engine derived for it.
type Diagnostic struct {
	ruleName   string
	moduleName *string
	inner      diagnostic.Diagnostic
}

func tag(ruleName string, moduleName *string, d diagnostic.Diagnostic) Diagnostic {
	return Diagnostic{ruleName: ruleName, moduleName: moduleName, inner: d}
}

// RuleName returns the name of the rule that produced this diagnostic.
func (d Diagnostic) RuleName() string { return d.ruleName }

// ModuleName returns the declared module name of the file the diagnostic
// belongs to, and whether one could be derived (it cannot for the
// parse-failure synthetic diagnostic).
func (d Diagnostic) ModuleName() (string, bool) {
	if d.moduleName == nil {
		return "", false
	}
	return *d.moduleName, true
}

func (d Diagnostic) Message() string         { return d.inner.Message() }
func (d Diagnostic) Details() []string       { return d.inner.Details() }
func (d Diagnostic) Range() ast.Range        { return d.inner.Range() }
func (d Diagnostic) Fixes() []fix.Fix        { return d.inner.Fixes() }
func (d Diagnostic) HasFixes() bool          { return d.inner.HasFixes() }
