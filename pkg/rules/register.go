package rules

import "github.com/jfmengels/elm-lint/pkg/rule"

// All returns the canonical rule set shipped with this module.
func All() []rule.Rule {
	return []rule.Rule{
		NoDebug(),
		NoUnusedVariables(),
		NoUnusedImports(),
	}
}
