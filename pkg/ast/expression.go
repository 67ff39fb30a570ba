package ast

// ExpressionKind discriminates the Expression sum type.
type ExpressionKind int

const (
	ExprApplication ExpressionKind = iota
	ExprIfBlock
	ExprLet
	ExprCase
	ExprLambda
	ExprTupled
	ExprListLiteral
	ExprRecordLiteral
	ExprRecordUpdate
	ExprParenthesized
	ExprOperatorApplication
	ExprRecordAccess
	ExprNegation
	ExprInteger
	ExprFloat
	ExprCharLiteral
	ExprStringLiteral
	ExprUnit
	ExprFunctionOrValue
	ExprHex
	ExprPrefixOperator
	ExprRecordAccessFunction
	ExprGLSL
)

// Associativity controls the child-visit order of an operator-application
// expression. For left-associative operators the driver visits [left,
// right]; for right-associative it visits [right, left]; non-associative
// behaves like left. The asymmetry lets evaluation-order-sensitive rules see
// operands in semantic order.
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
	AssocNon
)

// RecordField is one field of a record literal or one setter of a record
// update.
type RecordField struct {
	Name  string
	Value *Expression
	Range Range
}

// CaseArm is one branch of a case-expression: a pattern (not an expression
// child) and a body expression.
type CaseArm struct {
	Pattern    Pattern
	Expression *Expression
	Range      Range
}

// LetBindingKind discriminates a let-binding.
type LetBindingKind int

const (
	LetBindingFunction LetBindingKind = iota
	LetBindingDestructuring
)

// LetBinding is either a let-function, which carries a body expression, or a
// let-destructuring, which carries a pattern and a right-hand-side
// expression.
type LetBinding struct {
	Kind          LetBindingKind
	Range         Range
	Function      *FunctionDeclaration
	Destructuring *DestructuringDeclaration
}

// expression returns the let-binding's expression child, regardless of kind.
func (b *LetBinding) expression() *Expression {
	switch b.Kind {
	case LetBindingFunction:
		if b.Function == nil {
			return nil
		}
		return b.Function.Expression
	case LetBindingDestructuring:
		if b.Destructuring == nil {
			return nil
		}
		return b.Destructuring.Expression
	default:
		return nil
	}
}

// Expression is the AST's expression sum type. Only the fields relevant to
// Kind are populated; see the ExprXxx constants for which.
type Expression struct {
	Kind  ExpressionKind
	Range Range

	// ExprApplication: ordered operands, including the applied function as
	// the first element.
	Operands []*Expression

	// ExprIfBlock.
	Cond, Then, Else *Expression

	// ExprLet: bindings in source order, then the body.
	LetBindings []*LetBinding
	LetBody     *Expression

	// ExprCase: scrutinee, then arms in source order.
	Scrutinee *Expression
	CaseArms  []*CaseArm

	// ExprLambda.
	LambdaArguments []Pattern
	LambdaBody      *Expression

	// ExprTupled, ExprListLiteral: elements in source order.
	Elements []*Expression

	// ExprRecordLiteral: fields in source order.
	Fields []*RecordField

	// ExprRecordUpdate: the updated-record identifier (not an expression
	// child) plus setter expressions in source order.
	RecordName string
	Setters    []*RecordField

	// ExprParenthesized, ExprNegation, ExprRecordAccess: the inner/record
	// expression. For record access, the field name is not a child.
	Inner     *Expression
	FieldName string

	// ExprOperatorApplication.
	Operator    string
	Direction   Associativity
	Left, Right *Expression

	// Leaves.
	IntValue                  int
	FloatValue                float64
	CharValue                 rune
	StringValue               string
	FunctionOrValueModule     []string
	FunctionOrValueName       string
	HexValue                  int
	PrefixOperatorName        string
	RecordAccessFunctionField string
	GLSLValue                 string
}

// Children returns this expression's direct expression children in the
// order the traversal driver must visit them (see spec §4.4). Patterns,
// field/record names, and applied-function identifiers that are not
// themselves expression children are excluded.
func (e *Expression) Children() []*Expression {
	switch e.Kind {
	case ExprApplication:
		return e.Operands
	case ExprTupled, ExprListLiteral:
		return e.Elements
	case ExprRecordLiteral:
		children := make([]*Expression, 0, len(e.Fields))
		for _, f := range e.Fields {
			children = append(children, f.Value)
		}
		return children
	case ExprRecordUpdate:
		children := make([]*Expression, 0, len(e.Setters))
		for _, f := range e.Setters {
			children = append(children, f.Value)
		}
		return children
	case ExprParenthesized, ExprNegation:
		if e.Inner == nil {
			return nil
		}
		return []*Expression{e.Inner}
	case ExprRecordAccess:
		if e.Inner == nil {
			return nil
		}
		return []*Expression{e.Inner}
	case ExprIfBlock:
		return []*Expression{e.Cond, e.Then, e.Else}
	case ExprLet:
		children := make([]*Expression, 0, len(e.LetBindings)+1)
		for _, b := range e.LetBindings {
			if expr := b.expression(); expr != nil {
				children = append(children, expr)
			}
		}
		if e.LetBody != nil {
			children = append(children, e.LetBody)
		}
		return children
	case ExprCase:
		children := make([]*Expression, 0, len(e.CaseArms)+1)
		if e.Scrutinee != nil {
			children = append(children, e.Scrutinee)
		}
		for _, arm := range e.CaseArms {
			if arm.Expression != nil {
				children = append(children, arm.Expression)
			}
		}
		return children
	case ExprLambda:
		if e.LambdaBody == nil {
			return nil
		}
		return []*Expression{e.LambdaBody}
	case ExprOperatorApplication:
		switch e.Direction {
		case AssocRight:
			return []*Expression{e.Right, e.Left}
		default:
			return []*Expression{e.Left, e.Right}
		}
	default:
		// Leaves: integer, float, hex, char, string, unit, function-or-value,
		// prefix-operator, record-access-function, GLSL-literal.
		return nil
	}
}
