package rules

import (
	"fmt"

	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/diagnostic"
	"github.com/jfmengels/elm-lint/pkg/rule"
)

// letFrame tracks the names bound by one let-expression's function bindings
// that have not yet been referenced anywhere in that let's scope.
//
// Destructuring let-bindings are not tracked: ast.Pattern carries only a
// Range, not the names it binds, so there is nothing to key a usage check
// on. Function arguments have the same limitation and are out of scope for
// the same reason.
type letFrame struct {
	unused map[string]ast.Range
}

// scopeState is the mutable, pointer-identity context threaded through
// every expression-visitor call. It is a stack of open let-scopes.
type scopeState struct {
	frames []*letFrame
}

// NoUnusedVariables flags let-bound names that are never read within their
// own let expression (neither by a sibling binding nor by the body).
func NoUnusedVariables() rule.Rule {
	b := rule.WithInitialContext(rule.NewSchema("NoUnusedVariables"), &scopeState{})
	b = b.WithExpressionVisitor(noUnusedVariablesVisitor)
	return rule.FromSchema(b)
}

func noUnusedVariablesVisitor(dir rule.Direction, e ast.Expression, ctx *scopeState) ([]diagnostic.Diagnostic, *scopeState) {
	switch e.Kind {
	case ast.ExprLet:
		if dir == rule.OnEnter {
			f := &letFrame{unused: map[string]ast.Range{}}
			for _, binding := range e.LetBindings {
				if binding.Kind == ast.LetBindingFunction && binding.Function != nil {
					f.unused[binding.Function.Name] = binding.Range
				}
			}
			ctx.frames = append(ctx.frames, f)
			return nil, ctx
		}

		top := ctx.frames[len(ctx.frames)-1]
		ctx.frames = ctx.frames[:len(ctx.frames)-1]
		var diagnostics []diagnostic.Diagnostic
		for _, binding := range e.LetBindings {
			if binding.Kind != ast.LetBindingFunction || binding.Function == nil {
				continue
			}
			rng, stillUnused := top.unused[binding.Function.Name]
			if !stillUnused {
				continue
			}
			diagnostics = append(diagnostics, diagnostic.New(
				fmt.Sprintf("`%s` is not used", binding.Function.Name),
				[]string{"This let-binding is never referenced by a sibling binding or by the let's body. Remove it, or use it."},
				rng,
			))
		}
		return diagnostics, ctx

	case ast.ExprFunctionOrValue:
		if dir == rule.OnEnter && len(e.FunctionOrValueModule) == 0 {
			for i := len(ctx.frames) - 1; i >= 0; i-- {
				if _, bound := ctx.frames[i].unused[e.FunctionOrValueName]; bound {
					delete(ctx.frames[i].unused, e.FunctionOrValueName)
					break
				}
			}
		}
		return nil, ctx

	default:
		return nil, ctx
	}
}
