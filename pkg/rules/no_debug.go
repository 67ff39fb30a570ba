// Package rules collects the canonical rules shipped alongside the engine:
// reference implementations that exercise the schema/traversal contract in
// pkg/rule end to end.
package rules

import (
	"fmt"

	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/diagnostic"
	"github.com/jfmengels/elm-lint/pkg/rule"
)

// NoDebug forbids Debug.log and Debug.todo calls from reaching the declared
// module. It carries no context: a single OnEnter pass over every
// expression is enough to find every occurrence.
func NoDebug() rule.Rule {
	return rule.FromSchema(rule.WithSimpleExpressionVisitor(rule.NewSchema("NoDebug"), noDebugVisitor))
}

func noDebugVisitor(e ast.Expression) []diagnostic.Diagnostic {
	if e.Kind != ast.ExprFunctionOrValue {
		return nil
	}
	if len(e.FunctionOrValueModule) != 1 || e.FunctionOrValueModule[0] != "Debug" {
		return nil
	}
	if e.FunctionOrValueName != "log" && e.FunctionOrValueName != "todo" {
		return nil
	}
	return []diagnostic.Diagnostic{
		diagnostic.New(
			fmt.Sprintf("Forbidden use of `Debug.%s`", e.FunctionOrValueName),
			[]string{"Debug.log and Debug.todo must not reach the compiled output. Remove this call, or replace it with proper error handling, before shipping."},
			e.Range,
		),
	}
}
