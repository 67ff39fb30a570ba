package lint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/diagnostic"
	"github.com/jfmengels/elm-lint/pkg/lint"
	"github.com/jfmengels/elm-lint/pkg/project"
	"github.com/jfmengels/elm-lint/pkg/rule"
)

func forbidDebugRule() rule.Rule {
	b := rule.WithSimpleExpressionVisitor(rule.NewSchema("NoDebug"), func(e ast.Expression) []diagnostic.Diagnostic {
		if e.Kind == ast.ExprFunctionOrValue && e.FunctionOrValueName == "log" &&
			len(e.FunctionOrValueModule) == 1 && e.FunctionOrValueModule[0] == "Debug" {
			return []diagnostic.Diagnostic{
				diagnostic.New("Remove the use of `Debug.log` before shipping to production", []string{
					"`Debug.log` calls are not allowed in production code.",
				}, e.Range),
			}
		}
		return nil
	})
	return rule.FromSchema(b)
}

func moduleNamed(name string) *ast.ModuleDefinition {
	return &ast.ModuleDefinition{ModuleName: []string{name}}
}

func alwaysParses(f *ast.File) lint.ParseFunc {
	return func(string) (*ast.File, error) { return f, nil }
}

func identityPostProcess(f *ast.File) *ast.File { return f }

func TestLint_NoOpOnConformingSource(t *testing.T) {
	file := &ast.File{
		Module: moduleNamed("A"),
		Declarations: []*ast.Declaration{
			{Kind: ast.DeclFunction, Function: &ast.FunctionDeclaration{
				Name:       "a",
				Expression: &ast.Expression{Kind: ast.ExprInteger, IntValue: 1},
			}},
		},
	}

	diags := lint.Lint(alwaysParses(file), identityPostProcess, []rule.Rule{forbidDebugRule()},
		project.New(nil), lint.File{Path: "A.elm", Source: "module A exposing (a)\na = 1\n"})

	assert.Empty(t, diags)
}

func TestLint_ForbiddenCallDetection(t *testing.T) {
	debugCall := &ast.Expression{
		Kind:                  ast.ExprFunctionOrValue,
		FunctionOrValueModule: []string{"Debug"},
		FunctionOrValueName:   "log",
		Range:                 ast.Range{Start: ast.Position{Row: 2, Column: 5}, End: ast.Position{Row: 2, Column: 14}},
	}
	file := &ast.File{
		Module: moduleNamed("A"),
		Declarations: []*ast.Declaration{
			{Kind: ast.DeclFunction, Function: &ast.FunctionDeclaration{Name: "a", Expression: debugCall}},
		},
	}

	diags := lint.Lint(alwaysParses(file), identityPostProcess, []rule.Rule{forbidDebugRule()},
		project.New(nil), lint.File{Path: "A.elm", Source: "module A exposing (a)\na = Debug.log \"x\" x\n"})

	require.Len(t, diags, 1)
	assert.Equal(t, "NoDebug", diags[0].RuleName())
	moduleName, ok := diags[0].ModuleName()
	assert.True(t, ok)
	assert.Equal(t, "A", moduleName)
	assert.Equal(t, debugCall.Range, diags[0].Range())
	assert.False(t, diags[0].HasFixes())
}

func TestLint_ParseFailurePath(t *testing.T) {
	failingParse := func(string) (*ast.File, error) { return nil, errors.New("unexpected end of input") }

	diags := lint.Lint(failingParse, identityPostProcess, []rule.Rule{forbidDebugRule()},
		project.New(nil), lint.File{Path: "A.elm", Source: "module A exposing (a)\na = (\n"})

	require.Len(t, diags, 1)
	assert.Equal(t, lint.ParsingErrorRuleName, diags[0].RuleName())
	_, ok := diags[0].ModuleName()
	assert.False(t, ok)
	assert.Equal(t, ast.Range{}, diags[0].Range())
}

func TestLint_DiagnosticsSortedByRange(t *testing.T) {
	first := &ast.Expression{
		Kind: ast.ExprFunctionOrValue, FunctionOrValueModule: []string{"Debug"}, FunctionOrValueName: "log",
		Range: ast.Range{Start: ast.Position{Row: 5, Column: 1}, End: ast.Position{Row: 5, Column: 10}},
	}
	second := &ast.Expression{
		Kind: ast.ExprFunctionOrValue, FunctionOrValueModule: []string{"Debug"}, FunctionOrValueName: "log",
		Range: ast.Range{Start: ast.Position{Row: 2, Column: 1}, End: ast.Position{Row: 2, Column: 10}},
	}
	file := &ast.File{
		Module: moduleNamed("A"),
		Declarations: []*ast.Declaration{
			{Kind: ast.DeclFunction, Function: &ast.FunctionDeclaration{
				Name:       "a",
				Expression: &ast.Expression{Kind: ast.ExprTupled, Elements: []*ast.Expression{first, second}},
			}},
		},
	}

	diags := lint.Lint(alwaysParses(file), identityPostProcess, []rule.Rule{forbidDebugRule()},
		project.New(nil), lint.File{Path: "A.elm", Source: "module A exposing (a)\n"})

	require.Len(t, diags, 2)
	assert.Equal(t, second.Range, diags[0].Range())
	assert.Equal(t, first.Range, diags[1].Range())
}

func TestLintMultiple_ReturnsOneEntryPerFile(t *testing.T) {
	file := &ast.File{Module: moduleNamed("A")}
	files := []lint.File{
		{Path: "A.elm", Source: "module A exposing (..)\n"},
		{Path: "B.elm", Source: "module B exposing (..)\n"},
	}

	results := lint.LintMultiple(alwaysParses(file), identityPostProcess, []rule.Rule{forbidDebugRule()},
		project.New(nil), files)

	assert.Len(t, results, 2)
	assert.Contains(t, results, "A.elm")
	assert.Contains(t, results, "B.elm")
}
