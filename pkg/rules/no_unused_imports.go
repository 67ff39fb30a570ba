package rules

import (
	"fmt"
	"strings"

	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/diagnostic"
	"github.com/jfmengels/elm-lint/pkg/rule"
)

// declaredImport is one import this file brought into scope, keyed by the
// qualifier a reference to it would use: the alias, if any, otherwise the
// full dotted module name.
type declaredImport struct {
	qualifier string
	rng       ast.Range
}

// importsState is the mutable, pointer-identity context threaded across the
// import and expression visitors.
type importsState struct {
	declared []declaredImport
	used     map[string]bool
}

// NoUnusedImports flags an import whose qualifier is never used to access a
// qualified value or constructor anywhere in the file.
//
// Usage through an unqualified `exposing (...)` name is not tracked:
// matching an unqualified FunctionOrValue reference back to the import that
// exposed it would need each declaration's own module's export list, which
// is outside a single file's AST. This rule only credits qualified access.
func NoUnusedImports() rule.Rule {
	b := rule.WithInitialContext(rule.NewSchema("NoUnusedImports"), &importsState{used: map[string]bool{}})
	b = b.WithImportVisitor(noUnusedImportsImportVisitor)
	b = b.WithExpressionVisitor(noUnusedImportsExpressionVisitor)
	b = b.WithFinalEvaluation(noUnusedImportsFinalEvaluation)
	return rule.FromSchema(b)
}

func noUnusedImportsImportVisitor(imp ast.Import, ctx *importsState) ([]diagnostic.Diagnostic, *importsState) {
	qualifier := imp.Name()
	if imp.Alias != nil {
		qualifier = *imp.Alias
	}
	ctx.declared = append(ctx.declared, declaredImport{qualifier: qualifier, rng: imp.Range})
	return nil, ctx
}

func noUnusedImportsExpressionVisitor(dir rule.Direction, e ast.Expression, ctx *importsState) ([]diagnostic.Diagnostic, *importsState) {
	if dir != rule.OnEnter || e.Kind != ast.ExprFunctionOrValue || len(e.FunctionOrValueModule) == 0 {
		return nil, ctx
	}
	ctx.used[strings.Join(e.FunctionOrValueModule, ".")] = true
	return nil, ctx
}

func noUnusedImportsFinalEvaluation(ctx *importsState) []diagnostic.Diagnostic {
	var diagnostics []diagnostic.Diagnostic
	for _, d := range ctx.declared {
		if ctx.used[d.qualifier] {
			continue
		}
		diagnostics = append(diagnostics, diagnostic.New(
			fmt.Sprintf("Imported module `%s` is never used", d.qualifier),
			[]string{"Remove this import, or use one of its qualified values or constructors."},
			d.rng,
		))
	}
	return diagnostics
}
