package rule

import (
	"github.com/jfmengels/elm-lint/pkg/ast"
	"github.com/jfmengels/elm-lint/pkg/diagnostic"
	"github.com/jfmengels/elm-lint/pkg/project"
)

// schema holds every visitor slot for one rule under construction. All
// slots default to nil ("no-op"); the traversal driver skips a nil slot
// rather than calling through it.
type schema[C any] struct {
	name string

	initialContext C

	elmJSONVisitor   ElmJSONVisitor[C]
	moduleDefVisitor ModuleDefinitionVisitor[C]
	importVisitor    ImportVisitor[C]
	declListVisitor  DeclarationListVisitor[C]
	declVisitor      DeclarationVisitor[C]
	exprVisitor      ExpressionVisitor[C]
	finalEval        FinalEvaluationFunc[C]
}

// EmptySchemaBuilder is the starting point returned by NewSchema. It has no
// context type yet, so it only exposes the operations that can run before
// one is chosen: WithInitialContext and the four context-free simple-visitor
// installers. Once any of those runs, the caller holds a
// PopulatedSchemaBuilder[C] instead, and WithInitialContext is no longer
// reachable — the type system, not a runtime check, enforces the ordering
// rule that an initial context may only be installed immediately after
// NewSchema.
type EmptySchemaBuilder struct {
	name string
}

// NewSchema starts building a rule named name, with all visitors as no-ops
// and no context chosen yet.
func NewSchema(name string) EmptySchemaBuilder {
	return EmptySchemaBuilder{name: name}
}

// PopulatedSchemaBuilder is a schema under construction with its context
// type C fixed. Every visitor-installing operation that does not need to
// change C is a method here; operations that would need to introduce a new
// type parameter (installing the first context-typed visitor from
// EmptySchemaBuilder) are free functions instead, since Go methods cannot
// add type parameters beyond the receiver's.
type PopulatedSchemaBuilder[C any] struct {
	s schema[C]
}

// WithInitialContext installs a typed initial context on a virgin schema.
// It can only be called on an EmptySchemaBuilder, i.e. immediately after
// NewSchema — there is no way to obtain one after any visitor has been
// installed.
func WithInitialContext[C any](b EmptySchemaBuilder, initial C) PopulatedSchemaBuilder[C] {
	return PopulatedSchemaBuilder[C]{s: schema[C]{name: b.name, initialContext: initial}}
}

// unitSchema builds the unit-context schema used by the simple-visitor
// installers available directly from EmptySchemaBuilder.
func unitSchema(b EmptySchemaBuilder) PopulatedSchemaBuilder[struct{}] {
	return PopulatedSchemaBuilder[struct{}]{s: schema[struct{}]{name: b.name}}
}

// WithSimpleModuleDefinitionVisitor installs a context-free module
// visitor on a virgin schema, fixing its context to struct{}.
func WithSimpleModuleDefinitionVisitor(b EmptySchemaBuilder, v SimpleModuleDefinitionVisitor) PopulatedSchemaBuilder[struct{}] {
	return unitSchema(b).WithSimpleModuleDefinitionVisitor(v)
}

// WithSimpleImportVisitor installs a context-free import visitor on a
// virgin schema, fixing its context to struct{}.
func WithSimpleImportVisitor(b EmptySchemaBuilder, v SimpleImportVisitor) PopulatedSchemaBuilder[struct{}] {
	return unitSchema(b).WithSimpleImportVisitor(v)
}

// WithSimpleDeclarationVisitor installs a context-free declaration visitor
// on a virgin schema, fixing its context to struct{}.
func WithSimpleDeclarationVisitor(b EmptySchemaBuilder, v SimpleDeclarationVisitor) PopulatedSchemaBuilder[struct{}] {
	return unitSchema(b).WithSimpleDeclarationVisitor(v)
}

// WithSimpleExpressionVisitor installs a context-free expression visitor on
// a virgin schema, fixing its context to struct{}.
func WithSimpleExpressionVisitor(b EmptySchemaBuilder, v SimpleExpressionVisitor) PopulatedSchemaBuilder[struct{}] {
	return unitSchema(b).WithSimpleExpressionVisitor(v)
}

// WithElmJSONVisitor replaces the elm-json visitor slot.
func (b PopulatedSchemaBuilder[C]) WithElmJSONVisitor(v ElmJSONVisitor[C]) PopulatedSchemaBuilder[C] {
	b.s.elmJSONVisitor = v
	return b
}

// WithModuleDefinitionVisitor replaces the module-definition visitor slot.
func (b PopulatedSchemaBuilder[C]) WithModuleDefinitionVisitor(v ModuleDefinitionVisitor[C]) PopulatedSchemaBuilder[C] {
	b.s.moduleDefVisitor = v
	return b
}

// WithImportVisitor replaces the import visitor slot.
func (b PopulatedSchemaBuilder[C]) WithImportVisitor(v ImportVisitor[C]) PopulatedSchemaBuilder[C] {
	b.s.importVisitor = v
	return b
}

// WithDeclarationListVisitor replaces the declaration-list visitor slot.
func (b PopulatedSchemaBuilder[C]) WithDeclarationListVisitor(v DeclarationListVisitor[C]) PopulatedSchemaBuilder[C] {
	b.s.declListVisitor = v
	return b
}

// WithDeclarationVisitor replaces the declaration visitor slot (OnEnter and
// OnExit).
func (b PopulatedSchemaBuilder[C]) WithDeclarationVisitor(v DeclarationVisitor[C]) PopulatedSchemaBuilder[C] {
	b.s.declVisitor = v
	return b
}

// WithExpressionVisitor replaces the expression visitor slot (OnEnter and
// OnExit).
func (b PopulatedSchemaBuilder[C]) WithExpressionVisitor(v ExpressionVisitor[C]) PopulatedSchemaBuilder[C] {
	b.s.exprVisitor = v
	return b
}

// WithFinalEvaluation replaces the final-evaluation slot.
func (b PopulatedSchemaBuilder[C]) WithFinalEvaluation(v FinalEvaluationFunc[C]) PopulatedSchemaBuilder[C] {
	b.s.finalEval = v
	return b
}

// WithSimpleModuleDefinitionVisitor adapts a context-free module visitor
// into this schema's context-carrying slot, threading context unchanged.
func (b PopulatedSchemaBuilder[C]) WithSimpleModuleDefinitionVisitor(v SimpleModuleDefinitionVisitor) PopulatedSchemaBuilder[C] {
	b.s.moduleDefVisitor = func(m ast.ModuleDefinition, ctx C) ([]diagnostic.Diagnostic, C) {
		return v(m), ctx
	}
	return b
}

// WithSimpleImportVisitor adapts a context-free import visitor into this
// schema's context-carrying slot, threading context unchanged.
func (b PopulatedSchemaBuilder[C]) WithSimpleImportVisitor(v SimpleImportVisitor) PopulatedSchemaBuilder[C] {
	b.s.importVisitor = func(i ast.Import, ctx C) ([]diagnostic.Diagnostic, C) {
		return v(i), ctx
	}
	return b
}

// WithSimpleDeclarationVisitor adapts a context-free declaration visitor
// (OnEnter only) into this schema's context-carrying slot.
func (b PopulatedSchemaBuilder[C]) WithSimpleDeclarationVisitor(v SimpleDeclarationVisitor) PopulatedSchemaBuilder[C] {
	b.s.declVisitor = func(dir Direction, d ast.Declaration, ctx C) ([]diagnostic.Diagnostic, C) {
		if dir != OnEnter {
			return nil, ctx
		}
		return v(d), ctx
	}
	return b
}

// WithSimpleExpressionVisitor adapts a context-free expression visitor
// (OnEnter only) into this schema's context-carrying slot.
func (b PopulatedSchemaBuilder[C]) WithSimpleExpressionVisitor(v SimpleExpressionVisitor) PopulatedSchemaBuilder[C] {
	b.s.exprVisitor = func(dir Direction, e ast.Expression, ctx C) ([]diagnostic.Diagnostic, C) {
		if dir != OnEnter {
			return nil, ctx
		}
		return v(e), ctx
	}
	return b
}

// FromSchema seals b into an immutable Rule whose analyzer closes over the
// schema; C never escapes the closure, which is what lets callers collect
// rules built from schemas with different context types into one []Rule.
//
// WithInitialContext alone reaches PopulatedSchemaBuilder without
// installing any visitor, so the "at least one visitor" invariant still
// needs a runtime check here; Go's type system distinguishes "has a
// context" from "has visitors" no further than this.
func FromSchema[C any](b PopulatedSchemaBuilder[C]) Rule {
	s := b.s
	if s.elmJSONVisitor == nil && s.moduleDefVisitor == nil && s.importVisitor == nil &&
		s.declListVisitor == nil && s.declVisitor == nil && s.exprVisitor == nil && s.finalEval == nil {
		panic("rule: schema " + s.name + " has no visitors installed")
	}
	return Rule{
		name: s.name,
		analyzer: func(proj project.Project, file ast.File) []diagnostic.Diagnostic {
			return runTraversal(s, proj, file)
		},
	}
}
