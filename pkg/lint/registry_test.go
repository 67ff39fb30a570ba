package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/diagnostic"
	"github.com/jfmengels/elm-lint/pkg/lint"
	"github.com/jfmengels/elm-lint/pkg/rule"
)

func noopRule(name string) rule.Rule {
	b := rule.WithSimpleExpressionVisitor(rule.NewSchema(name), func(ast.Expression) []diagnostic.Diagnostic {
		return nil
	})
	return rule.FromSchema(b)
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := lint.NewRegistry()
	reg.Register(noopRule("NoDebug"))

	r, ok := reg.Get("NoDebug")
	assert.True(t, ok)
	assert.Equal(t, "NoDebug", r.Name())

	_, ok = reg.Get("Missing")
	assert.False(t, ok)
}

func TestRegistry_RulesSortedByName(t *testing.T) {
	reg := lint.NewRegistry()
	reg.Register(noopRule("NoUnusedVariables"))
	reg.Register(noopRule("NoDebug"))

	names := reg.Names()
	assert.Equal(t, []string{"NoDebug", "NoUnusedVariables"}, names)
}

func TestRegistry_RegisterReplacesExisting(t *testing.T) {
	reg := lint.NewRegistry()
	reg.Register(noopRule("NoDebug"))
	reg.Register(noopRule("NoDebug"))

	assert.Len(t, reg.Rules(), 1)
}
