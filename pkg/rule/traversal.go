package rule

import (
	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/diagnostic"
	"github.com/jfmengels/elm-lint/pkg/project"
)

// runTraversal implements the fixed traversal pipeline (spec §4.4) for one
// analyzer invocation: elm-json, module definition, imports, declaration
// list, each declaration (and its contained expressions), final evaluation.
func runTraversal[C any](s schema[C], proj project.Project, file ast.File) []diagnostic.Diagnostic {
	t := &traversal[C]{schema: s, context: s.initialContext}

	t.runElmJSON(proj)
	if file.Module != nil {
		t.runModuleDefinition(*file.Module)
	}
	for _, imp := range file.Imports {
		if imp != nil {
			t.runImport(*imp)
		}
	}
	decls := make([]ast.Declaration, 0, len(file.Declarations))
	for _, d := range file.Declarations {
		if d != nil {
			decls = append(decls, *d)
		}
	}
	t.runDeclarationList(decls)
	for _, decl := range decls {
		t.visitDeclaration(decl)
	}
	t.runFinalEvaluation()

	return t.diagnostics
}

// traversal carries the accumulator and current context across one
// analyzer invocation. Diagnostics are appended directly in traversal
// order; the prepend-then-reverse scheme the design notes describe as
// an option is not needed to get that same order.
type traversal[C any] struct {
	schema      schema[C]
	context     C
	diagnostics []diagnostic.Diagnostic
}

func (t *traversal[C]) record(ds []diagnostic.Diagnostic, ctx C) {
	t.diagnostics = append(t.diagnostics, ds...)
	t.context = ctx
}

func (t *traversal[C]) runElmJSON(proj project.Project) {
	if t.schema.elmJSONVisitor == nil {
		return
	}
	t.record(t.schema.elmJSONVisitor(proj, t.context))
}

func (t *traversal[C]) runModuleDefinition(m ast.ModuleDefinition) {
	if t.schema.moduleDefVisitor == nil {
		return
	}
	t.record(t.schema.moduleDefVisitor(m, t.context))
}

func (t *traversal[C]) runImport(imp ast.Import) {
	if t.schema.importVisitor == nil {
		return
	}
	t.record(t.schema.importVisitor(imp, t.context))
}

func (t *traversal[C]) runDeclarationList(decls []ast.Declaration) {
	if t.schema.declListVisitor == nil {
		return
	}
	t.record(t.schema.declListVisitor(decls, t.context))
}

func (t *traversal[C]) visitDeclaration(decl ast.Declaration) {
	if t.schema.declVisitor != nil {
		t.record(t.schema.declVisitor(OnEnter, decl, t.context))
	}

	for _, expr := range declarationExpressions(decl) {
		t.visitExpression(expr)
	}

	if t.schema.declVisitor != nil {
		t.record(t.schema.declVisitor(OnExit, decl, t.context))
	}
}

// declarationExpressions extracts the top-level expressions a declaration
// directly contains (spec §4.4 step 6): a function's body, a
// destructuring's RHS, or none for every other declaration kind.
func declarationExpressions(decl ast.Declaration) []*ast.Expression {
	switch decl.Kind {
	case ast.DeclFunction:
		if decl.Function == nil || decl.Function.Expression == nil {
			return nil
		}
		return []*ast.Expression{decl.Function.Expression}
	case ast.DeclDestructuring:
		if decl.Destructuring == nil || decl.Destructuring.Expression == nil {
			return nil
		}
		return []*ast.Expression{decl.Destructuring.Expression}
	default:
		return nil
	}
}

// visitExpression implements pre-order recursion with matched OnExit (spec
// §4.4 "Expression recursion"): enter, recurse into Children() in the order
// ast.Expression.Children already encodes, then exit.
func (t *traversal[C]) visitExpression(e *ast.Expression) {
	if e == nil {
		return
	}

	if t.schema.exprVisitor != nil {
		t.record(t.schema.exprVisitor(OnEnter, *e, t.context))
	}

	for _, child := range e.Children() {
		t.visitExpression(child)
	}

	if t.schema.exprVisitor != nil {
		t.record(t.schema.exprVisitor(OnExit, *e, t.context))
	}
}

func (t *traversal[C]) runFinalEvaluation() {
	if t.schema.finalEval == nil {
		return
	}
	t.diagnostics = append(t.diagnostics, t.schema.finalEval(t.context)...)
}
