package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/diagnostic"
	"github.com/jfmengels/elm-lint/pkg/project"
	"github.com/jfmengels/elm-lint/pkg/rule"
)

func leaf(kind ast.ExpressionKind) *ast.Expression {
	return &ast.Expression{Kind: kind}
}

// buildSampleFile builds: module A exposing (a)
//
//	import B
//	a = foo 1 2
func buildSampleFile() ast.File {
	app := &ast.Expression{
		Kind: ast.ExprApplication,
		Operands: []*ast.Expression{
			leaf(ast.ExprFunctionOrValue),
			leaf(ast.ExprInteger),
			leaf(ast.ExprInteger),
		},
	}
	return ast.File{
		Module: &ast.ModuleDefinition{ModuleName: []string{"A"}},
		Imports: []*ast.Import{
			{ModuleName: []string{"B"}},
		},
		Declarations: []*ast.Declaration{
			{
				Kind:     ast.DeclFunction,
				Function: &ast.FunctionDeclaration{Name: "a", Expression: app},
			},
		},
	}
}

func TestTraversal_VisitsEveryNodeOnce(t *testing.T) {
	type counters struct {
		moduleDefs, imports, declEnters, declExits, exprEnters, exprExits int
	}

	b := rule.WithInitialContext(rule.NewSchema("count-visits"), counters{})
	b = b.WithModuleDefinitionVisitor(func(_ ast.ModuleDefinition, c counters) ([]diagnostic.Diagnostic, counters) {
		c.moduleDefs++
		return nil, c
	})
	b = b.WithImportVisitor(func(_ ast.Import, c counters) ([]diagnostic.Diagnostic, counters) {
		c.imports++
		return nil, c
	})
	b = b.WithDeclarationVisitor(func(dir rule.Direction, _ ast.Declaration, c counters) ([]diagnostic.Diagnostic, counters) {
		if dir == rule.OnEnter {
			c.declEnters++
		} else {
			c.declExits++
		}
		return nil, c
	})
	b = b.WithExpressionVisitor(func(dir rule.Direction, _ ast.Expression, c counters) ([]diagnostic.Diagnostic, counters) {
		if dir == rule.OnEnter {
			c.exprEnters++
		} else {
			c.exprExits++
		}
		return nil, c
	})

	var final counters
	b = b.WithFinalEvaluation(func(c counters) []diagnostic.Diagnostic {
		final = c
		return nil
	})

	r := rule.FromSchema(b)
	diags := r.Analyze(project.New(nil), buildSampleFile())

	assert.Empty(t, diags)
	assert.Equal(t, 1, final.moduleDefs)
	assert.Equal(t, 1, final.imports)
	assert.Equal(t, 1, final.declEnters)
	assert.Equal(t, 1, final.declExits)
	// application + 3 leaves = 4 expression nodes, each entered and exited once.
	assert.Equal(t, 4, final.exprEnters)
	assert.Equal(t, 4, final.exprExits)
}

func TestTraversal_OperatorApplicationAssociativityOrdering(t *testing.T) {
	left := leaf(ast.ExprInteger)
	right := leaf(ast.ExprFloat)

	rightAssoc := &ast.Expression{Kind: ast.ExprOperatorApplication, Direction: ast.AssocRight, Left: left, Right: right}
	leftAssoc := &ast.Expression{Kind: ast.ExprOperatorApplication, Direction: ast.AssocLeft, Left: left, Right: right}

	assert.Same(t, right, rightAssoc.Children()[0])
	assert.Same(t, left, rightAssoc.Children()[1])
	assert.Same(t, left, leftAssoc.Children()[0])
	assert.Same(t, right, leftAssoc.Children()[1])
}

func TestTraversal_SimpleExpressionVisitorRunsOnEnterOnly(t *testing.T) {
	var enters int
	b := rule.WithSimpleExpressionVisitor(rule.NewSchema("enter-only"), func(ast.Expression) []diagnostic.Diagnostic {
		enters++
		return nil
	})
	r := rule.FromSchema(b)

	r.Analyze(project.New(nil), buildSampleFile())
	assert.Equal(t, 4, enters)
}

func TestTraversal_DeclarationListVisitorSeesFullOrderedList(t *testing.T) {
	var seenCount int
	b := rule.WithInitialContext(rule.NewSchema("decl-list"), struct{}{})
	b = b.WithDeclarationListVisitor(func(decls []ast.Declaration, c struct{}) ([]diagnostic.Diagnostic, struct{}) {
		seenCount = len(decls)
		return nil, c
	})
	r := rule.FromSchema(b)

	r.Analyze(project.New(nil), buildSampleFile())
	assert.Equal(t, 1, seenCount)
}

func TestTraversal_ElmJSONVisitorReceivesProject(t *testing.T) {
	manifest := &project.ElmProject{Type: project.TypeApplication}
	var gotType project.ElmProjectType

	b := rule.WithInitialContext(rule.NewSchema("elm-json"), struct{}{})
	b = b.WithElmJSONVisitor(func(p project.Project, c struct{}) ([]diagnostic.Diagnostic, struct{}) {
		if ej, ok := p.ElmJSON(); ok {
			gotType = ej.Type
		}
		return nil, c
	})
	r := rule.FromSchema(b)

	r.Analyze(project.New(manifest), buildSampleFile())
	assert.Equal(t, project.TypeApplication, gotType)
}

func TestFromSchema_PanicsWithoutVisitors(t *testing.T) {
	b := rule.WithInitialContext(rule.NewSchema("empty"), struct{}{})
	assert.Panics(t, func() {
		rule.FromSchema(b)
	})
}

func TestTraversal_TwoIndependentAnalysesProduceIdenticalDiagnostics(t *testing.T) {
	b := rule.WithSimpleExpressionVisitor(rule.NewSchema("stable"), func(e ast.Expression) []diagnostic.Diagnostic {
		if e.Kind == ast.ExprInteger {
			return []diagnostic.Diagnostic{diagnostic.New("found an int", []string{"detail"}, e.Range)}
		}
		return nil
	})
	r := rule.FromSchema(b)
	file := buildSampleFile()

	first := r.Analyze(project.New(nil), file)
	second := r.Analyze(project.New(nil), file)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Message(), second[i].Message())
		assert.Equal(t, first[i].Range(), second[i].Range())
	}
}
