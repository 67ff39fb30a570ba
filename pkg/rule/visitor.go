// Package rule provides the generic schema builder and AST traversal driver
// that turn a set of visitor callbacks into a sealed Rule.
package rule

import (
	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/diagnostic"
	"github.com/jfmengels/elm-lint/pkg/project"
)

// Direction discriminates the two traversal events a node can receive.
type Direction int

const (
	OnEnter Direction = iota
	OnExit
)

// Rule is the sealed, analyzer-bearing output of a schema. Its context type
// is erased: nothing outside the closure built by fromSchema ever observes
// it, which is what lets a heterogeneous list of rules (each built from a
// schema with its own private context type) share one slice type.
type Rule struct {
	name     string
	analyzer func(project.Project, ast.File) []diagnostic.Diagnostic
}

// Name returns the rule's declared name.
func (r Rule) Name() string { return r.name }

// Analyze runs the rule's analyzer against one file.
func (r Rule) Analyze(proj project.Project, file ast.File) []diagnostic.Diagnostic {
	return r.analyzer(proj, file)
}

// withContext pairs diagnostics produced by a visitor call with the
// possibly-updated context to feed into the next call.
type withContext[C any] struct {
	diagnostics []diagnostic.Diagnostic
	context     C
}

// ModuleDefinitionVisitor inspects the file's module-definition node once,
// at the start of traversal.
type ModuleDefinitionVisitor[C any] func(ast.ModuleDefinition, C) ([]diagnostic.Diagnostic, C)

// ImportVisitor inspects one import node, in declaration order.
type ImportVisitor[C any] func(ast.Import, C) ([]diagnostic.Diagnostic, C)

// DeclarationListVisitor inspects the full, ordered list of declarations
// once, before any individual declaration is visited.
type DeclarationListVisitor[C any] func([]ast.Declaration, C) ([]diagnostic.Diagnostic, C)

// DeclarationVisitor inspects one declaration, once on OnEnter and once on
// OnExit (after its contained expressions have been visited).
type DeclarationVisitor[C any] func(Direction, ast.Declaration, C) ([]diagnostic.Diagnostic, C)

// ExpressionVisitor inspects one expression node, once on OnEnter (before
// recursing into children) and once on OnExit (after).
type ExpressionVisitor[C any] func(Direction, ast.Expression, C) ([]diagnostic.Diagnostic, C)

// ElmJSONVisitor inspects the project manifest once, before any AST node.
type ElmJSONVisitor[C any] func(project.Project, C) ([]diagnostic.Diagnostic, C)

// FinalEvaluationFunc runs once, after every node has been visited, against
// the final context.
type FinalEvaluationFunc[C any] func(C) []diagnostic.Diagnostic

// SimpleModuleDefinitionVisitor inspects the module-definition node without
// reading or writing context.
type SimpleModuleDefinitionVisitor func(ast.ModuleDefinition) []diagnostic.Diagnostic

// SimpleImportVisitor inspects one import node without context.
type SimpleImportVisitor func(ast.Import) []diagnostic.Diagnostic

// SimpleDeclarationVisitor inspects one declaration on OnEnter only, without
// context.
type SimpleDeclarationVisitor func(ast.Declaration) []diagnostic.Diagnostic

// SimpleExpressionVisitor inspects one expression on OnEnter only, without
// context.
type SimpleExpressionVisitor func(ast.Expression) []diagnostic.Diagnostic
