package ast

// File is the root of a parsed source file: a module header, its ordered
// imports, and its ordered declarations.
type File struct {
	Module       *ModuleDefinition
	Imports      []*Import
	Declarations []*Declaration
}

// ModuleFlavor distinguishes the module header variants. The driver and
// lint engine only need the declared name, regardless of flavor.
type ModuleFlavor int

const (
	ModuleNormal ModuleFlavor = iota
	ModulePort
	ModuleEffect
)

// ModuleDefinition carries the declared module name path, a non-empty
// sequence of identifier segments (e.g. ["Html", "Attributes"]).
type ModuleDefinition struct {
	Flavor     ModuleFlavor
	ModuleName []string
	Exposing   Exposing
	Range      Range
}

// Name returns the module name joined with ".".
func (m *ModuleDefinition) Name() string {
	return joinDotted(m.ModuleName)
}

// Exposing describes an `exposing (...)` clause, shared by module headers
// and imports.
type Exposing struct {
	// All is true for `exposing (..)`.
	All bool
	// Names lists explicit exposed names when All is false.
	Names []string
}

// Import is a single `import` declaration.
type Import struct {
	ModuleName []string
	Alias      *string
	Exposing   *Exposing
	Range      Range
}

// Name returns the imported module name joined with ".".
func (i *Import) Name() string {
	return joinDotted(i.ModuleName)
}

// DeclarationKind classifies a top-level declaration.
type DeclarationKind int

const (
	DeclFunction DeclarationKind = iota
	DeclTypeAlias
	DeclCustomType
	DeclPort
	DeclInfix
	DeclDestructuring
)

// Declaration is one top-level item in a File. Exactly the field matching
// Kind is populated.
type Declaration struct {
	Kind  DeclarationKind
	Range Range

	Function      *FunctionDeclaration
	TypeAlias     *TypeAliasDeclaration
	CustomType    *CustomTypeDeclaration
	Port          *PortDeclaration
	Infix         *InfixDeclaration
	Destructuring *DestructuringDeclaration
}

// FunctionDeclaration is a named function (or constant) declaration. Only
// function declarations and destructuring declarations contain an
// expression reachable by the traversal driver.
type FunctionDeclaration struct {
	Name       string
	Arguments  []Pattern
	Expression *Expression
}

// DestructuringDeclaration binds a pattern to the value of an expression at
// module scope, e.g. `( a, b ) = pair`.
type DestructuringDeclaration struct {
	Pattern    Pattern
	Expression *Expression
}

// TypeAliasDeclaration declares a type alias. It carries no expression.
type TypeAliasDeclaration struct {
	Name string
}

// CustomTypeDeclaration declares a union type. It carries no expression.
type CustomTypeDeclaration struct {
	Name         string
	Constructors []string
}

// PortDeclaration declares a port. It carries no expression.
type PortDeclaration struct {
	Name string
}

// InfixDeclaration declares operator fixity. It carries no expression.
type InfixDeclaration struct {
	Operator string
}

// Pattern is a destructuring pattern. The traversal driver never descends
// into patterns (they are not expression children); only their range is of
// interest to rules that want to report on them.
type Pattern struct {
	Range Range
}

func joinDotted(segments []string) string {
	out := ""
	for i, s := range segments {
		if i > 0 {
			out += "."
		}
		out += s
	}
	return out
}
