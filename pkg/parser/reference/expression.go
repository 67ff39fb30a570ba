package reference

import (
	"fmt"
	"strconv"

	"github.com/jfmengels/elm-lint/pkg/ast"
)

// continues reports whether the next token is allowed to extend the
// expression currently being parsed, given the indentation boundary set by
// the nearest enclosing let-binding or case-arm. A token at or left of the
// boundary column starts a new binding/arm/declaration instead.
func (c *cursor) continues() bool {
	return !c.atEOF() && c.peek().start.Column > c.boundary
}

func canStartAtom(t token) bool {
	switch t.kind {
	case tokIdent, tokUpperIdent, tokInt, tokFloat, tokString, tokChar,
		tokLParen, tokLBracket, tokLBrace, tokBackslash, tokDot:
		return true
	case tokKeyword:
		return t.text == "if" || t.text == "let" || t.text == "case"
	case tokOperator:
		return t.text == "-"
	default:
		return false
	}
}

func merge(a, b ast.Range) ast.Range { return ast.MergeRanges(a, b) }

// parseExpression parses a full expression, including infix operator
// chains, bounded by the cursor's current indentation boundary.
func (c *cursor) parseExpression() (*ast.Expression, error) {
	return c.parseBinary(0)
}

func (c *cursor) parseBinary(minPrec int) (*ast.Expression, error) {
	left, err := c.parseApplication()
	if err != nil {
		return nil, err
	}

	for c.continues() && c.peek().kind == tokOperator {
		opTok := c.peek()
		info := operatorInfo(opTok.text)
		if info.precedence < minPrec {
			break
		}
		c.advance()

		nextMin := info.precedence + 1
		if info.assoc == ast.AssocRight {
			nextMin = info.precedence
		}
		right, err := c.parseBinary(nextMin)
		if err != nil {
			return nil, err
		}
		left = &ast.Expression{
			Kind:      ast.ExprOperatorApplication,
			Operator:  opTok.text,
			Direction: info.assoc,
			Left:      left,
			Right:     right,
			Range:     merge(left.Range, right.Range),
		}
	}
	return left, nil
}

// parseApplication parses a sequence of juxtaposed atoms: `f x y` is one
// Application over [f, x, y]; a lone atom returns unwrapped.
func (c *cursor) parseApplication() (*ast.Expression, error) {
	first, err := c.parseAtomWithAccess()
	if err != nil {
		return nil, err
	}

	operands := []*ast.Expression{first}
	for c.continues() && canStartAtom(c.peek()) {
		next, err := c.parseAtomWithAccess()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}

	if len(operands) == 1 {
		return operands[0], nil
	}
	return &ast.Expression{
		Kind:     ast.ExprApplication,
		Operands: operands,
		Range:    merge(operands[0].Range, operands[len(operands)-1].Range),
	}, nil
}

// parseAtomWithAccess parses one atom, then any trailing `.field` record
// access chain.
func (c *cursor) parseAtomWithAccess() (*ast.Expression, error) {
	base, err := c.parseAtom()
	if err != nil {
		return nil, err
	}
	for c.peek().kind == tokDot && c.peekAt(1).kind == tokIdent {
		c.advance()
		field := c.advance()
		base = &ast.Expression{
			Kind:      ast.ExprRecordAccess,
			Inner:     base,
			FieldName: field.text,
			Range:     ast.Range{Start: base.Range.Start, End: field.end},
		}
	}
	return base, nil
}

func (c *cursor) parseAtom() (*ast.Expression, error) {
	t := c.peek()

	switch {
	case t.kind == tokOperator && t.text == "-":
		c.advance()
		inner, err := c.parseAtomWithAccess()
		if err != nil {
			return nil, err
		}
		return &ast.Expression{Kind: ast.ExprNegation, Inner: inner, Range: ast.Range{Start: t.start, End: inner.Range.End}}, nil

	case t.kind == tokInt && (len(t.text) > 1 && (t.text[1] == 'x' || t.text[1] == 'X')):
		c.advance()
		v, err := unquoteHex(t.text)
		if err != nil {
			return nil, fmt.Errorf("invalid hex literal %q at %d:%d", t.text, t.start.Row, t.start.Column)
		}
		return &ast.Expression{Kind: ast.ExprHex, HexValue: v, Range: ast.Range{Start: t.start, End: t.end}}, nil

	case t.kind == tokInt:
		c.advance()
		v, err := strconv.Atoi(t.text)
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal %q at %d:%d", t.text, t.start.Row, t.start.Column)
		}
		return &ast.Expression{Kind: ast.ExprInteger, IntValue: v, Range: ast.Range{Start: t.start, End: t.end}}, nil

	case t.kind == tokFloat:
		c.advance()
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal %q at %d:%d", t.text, t.start.Row, t.start.Column)
		}
		return &ast.Expression{Kind: ast.ExprFloat, FloatValue: v, Range: ast.Range{Start: t.start, End: t.end}}, nil

	case t.kind == tokString:
		c.advance()
		return &ast.Expression{Kind: ast.ExprStringLiteral, StringValue: t.text, Range: ast.Range{Start: t.start, End: t.end}}, nil

	case t.kind == tokChar:
		c.advance()
		r := rune(0)
		for _, ch := range t.text {
			r = ch
			break
		}
		return &ast.Expression{Kind: ast.ExprCharLiteral, CharValue: r, Range: ast.Range{Start: t.start, End: t.end}}, nil

	case t.kind == tokDot && c.peekAt(1).kind == tokIdent:
		c.advance()
		field := c.advance()
		return &ast.Expression{Kind: ast.ExprRecordAccessFunction, RecordAccessFunctionField: field.text, Range: ast.Range{Start: t.start, End: field.end}}, nil

	case t.kind == tokUpperIdent:
		return c.parseQualifiedReference()

	case t.kind == tokIdent:
		c.advance()
		return &ast.Expression{Kind: ast.ExprFunctionOrValue, FunctionOrValueName: t.text, Range: ast.Range{Start: t.start, End: t.end}}, nil

	case t.kind == tokLParen:
		return c.parseParenthesized()

	case t.kind == tokLBracket:
		return c.parseListLiteral()

	case t.kind == tokLBrace:
		return c.parseRecord()

	case t.kind == tokBackslash:
		return c.parseLambda()

	case t.kind == tokKeyword && t.text == "if":
		return c.parseIf()

	case t.kind == tokKeyword && t.text == "let":
		return c.parseLet()

	case t.kind == tokKeyword && t.text == "case":
		return c.parseCase()

	default:
		return nil, fmt.Errorf("unexpected token %q at %d:%d", t.text, t.start.Row, t.start.Column)
	}
}

// parseQualifiedReference parses `Module.Sub.value`, `Module.Sub.Constructor`,
// or a bare `Constructor`.
func (c *cursor) parseQualifiedReference() (*ast.Expression, error) {
	first := c.advance()
	start := first.start
	last := first
	segments := []string{first.text}

	for c.peek().kind == tokDot && (c.peekAt(1).kind == tokUpperIdent || c.peekAt(1).kind == tokIdent) {
		c.advance()
		nxt := c.advance()
		last = nxt
		if nxt.kind == tokIdent {
			return &ast.Expression{
				Kind:                  ast.ExprFunctionOrValue,
				FunctionOrValueModule: segments,
				FunctionOrValueName:   nxt.text,
				Range:                 ast.Range{Start: start, End: nxt.end},
			}, nil
		}
		segments = append(segments, nxt.text)
	}

	name := segments[len(segments)-1]
	module := segments[:len(segments)-1]
	return &ast.Expression{
		Kind:                  ast.ExprFunctionOrValue,
		FunctionOrValueModule: module,
		FunctionOrValueName:   name,
		Range:                 ast.Range{Start: start, End: last.end},
	}, nil
}

func (c *cursor) parseParenthesized() (*ast.Expression, error) {
	open := c.advance() // "("
	if c.peek().kind == tokRParen {
		close := c.advance()
		return &ast.Expression{Kind: ast.ExprUnit, Range: ast.Range{Start: open.start, End: close.end}}, nil
	}

	if c.peek().kind == tokOperator && c.peekAt(1).kind == tokRParen {
		op := c.advance()
		close := c.advance()
		return &ast.Expression{Kind: ast.ExprPrefixOperator, PrefixOperatorName: op.text, Range: ast.Range{Start: open.start, End: close.end}}, nil
	}

	savedBoundary := c.boundary
	c.boundary = 0
	first, err := c.parseExpression()
	if err != nil {
		c.boundary = savedBoundary
		return nil, err
	}

	elements := []*ast.Expression{first}
	for c.peek().kind == tokComma {
		c.advance()
		next, err := c.parseExpression()
		if err != nil {
			c.boundary = savedBoundary
			return nil, err
		}
		elements = append(elements, next)
	}
	c.boundary = savedBoundary

	close, err := c.expect(tokRParen, ")")
	if err != nil {
		return nil, err
	}

	if len(elements) == 1 {
		return &ast.Expression{Kind: ast.ExprParenthesized, Inner: elements[0], Range: ast.Range{Start: open.start, End: close.end}}, nil
	}
	return &ast.Expression{Kind: ast.ExprTupled, Elements: elements, Range: ast.Range{Start: open.start, End: close.end}}, nil
}

func (c *cursor) parseListLiteral() (*ast.Expression, error) {
	open := c.advance() // "["
	var elements []*ast.Expression

	savedBoundary := c.boundary
	c.boundary = 0
	for c.peek().kind != tokRBracket {
		elem, err := c.parseExpression()
		if err != nil {
			c.boundary = savedBoundary
			return nil, err
		}
		elements = append(elements, elem)
		if c.peek().kind == tokComma {
			c.advance()
		}
	}
	c.boundary = savedBoundary

	close, err := c.expect(tokRBracket, "]")
	if err != nil {
		return nil, err
	}
	return &ast.Expression{Kind: ast.ExprListLiteral, Elements: elements, Range: ast.Range{Start: open.start, End: close.end}}, nil
}

// parseRecord parses `{ a = 1, b = 2 }` and `{ base | a = 1 }`.
func (c *cursor) parseRecord() (*ast.Expression, error) {
	open := c.advance() // "{"

	if c.peek().kind == tokRBrace {
		close := c.advance()
		return &ast.Expression{Kind: ast.ExprRecordLiteral, Range: ast.Range{Start: open.start, End: close.end}}, nil
	}

	savedBoundary := c.boundary
	c.boundary = 0
	defer func() { c.boundary = savedBoundary }()

	if c.peek().kind == tokIdent && c.peekAt(1).kind == tokPipe {
		recordName := c.advance().text
		c.advance() // "|"
		setters, err := c.parseFieldAssignments(tokRBrace)
		if err != nil {
			return nil, err
		}
		close, err := c.expect(tokRBrace, "}")
		if err != nil {
			return nil, err
		}
		return &ast.Expression{
			Kind:       ast.ExprRecordUpdate,
			RecordName: recordName,
			Setters:    setters,
			Range:      ast.Range{Start: open.start, End: close.end},
		}, nil
	}

	fields, err := c.parseFieldAssignments(tokRBrace)
	if err != nil {
		return nil, err
	}
	close, err := c.expect(tokRBrace, "}")
	if err != nil {
		return nil, err
	}
	return &ast.Expression{Kind: ast.ExprRecordLiteral, Fields: fields, Range: ast.Range{Start: open.start, End: close.end}}, nil
}

func (c *cursor) parseFieldAssignments(terminator tokenKind) ([]*ast.RecordField, error) {
	var fields []*ast.RecordField
	for c.peek().kind != terminator {
		nameTok, err := c.expect(tokIdent, "field name")
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(tokEquals, "="); err != nil {
			return nil, err
		}
		value, err := c.parseExpression()
		if err != nil {
			return nil, err
		}
		fields = append(fields, &ast.RecordField{
			Name:  nameTok.text,
			Value: value,
			Range: ast.Range{Start: nameTok.start, End: value.Range.End},
		})
		if c.peek().kind == tokComma {
			c.advance()
		}
	}
	return fields, nil
}

func (c *cursor) parseLambda() (*ast.Expression, error) {
	start := c.advance().start // "\"

	var args []ast.Pattern
	for c.peek().kind != tokArrow {
		argStart := c.peek().start
		c.advance()
		args = append(args, ast.Pattern{Range: ast.Range{Start: argStart, End: c.peek().start}})
	}
	if _, err := c.expect(tokArrow, "->"); err != nil {
		return nil, err
	}
	body, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Expression{
		Kind:            ast.ExprLambda,
		LambdaArguments: args,
		LambdaBody:      body,
		Range:           ast.Range{Start: start, End: body.Range.End},
	}, nil
}

func (c *cursor) parseIf() (*ast.Expression, error) {
	start := c.advance().start // "if"
	cond, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := c.expectKeyword("then"); err != nil {
		return nil, err
	}
	thenExpr, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := c.expectKeyword("else"); err != nil {
		return nil, err
	}
	elseExpr, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Expression{
		Kind:  ast.ExprIfBlock,
		Cond:  cond,
		Then:  thenExpr,
		Else:  elseExpr,
		Range: ast.Range{Start: start, End: elseExpr.Range.End},
	}, nil
}

func (c *cursor) parseLet() (*ast.Expression, error) {
	start := c.advance().start // "let"

	savedBoundary := c.boundary
	bindCol := c.peek().start.Column
	c.boundary = bindCol

	var bindings []*ast.LetBinding
	for !c.atEOF() && c.peek().start.Column == bindCol && !c.isKeyword("in") {
		binding, err := c.parseLetBinding()
		if err != nil {
			c.boundary = savedBoundary
			return nil, err
		}
		bindings = append(bindings, binding)
	}
	c.boundary = savedBoundary

	if err := c.expectKeyword("in"); err != nil {
		return nil, err
	}
	body, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Expression{
		Kind:        ast.ExprLet,
		LetBindings: bindings,
		LetBody:     body,
		Range:       ast.Range{Start: start, End: body.Range.End},
	}, nil
}

func (c *cursor) parseLetBinding() (*ast.LetBinding, error) {
	start := c.peek().start

	if c.peek().kind == tokLParen {
		patternStart := c.peek().start
		depth := 0
		for {
			t := c.advance()
			if t.kind == tokLParen {
				depth++
			}
			if t.kind == tokRParen {
				depth--
				if depth == 0 {
					break
				}
			}
			if c.atEOF() {
				return nil, fmt.Errorf("unterminated let-destructuring pattern at %d:%d", patternStart.Row, patternStart.Column)
			}
		}
		pattern := ast.Pattern{Range: ast.Range{Start: patternStart, End: c.peek().start}}
		if _, err := c.expect(tokEquals, "="); err != nil {
			return nil, err
		}
		expr, err := c.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.LetBinding{
			Kind:          ast.LetBindingDestructuring,
			Range:         ast.Range{Start: start, End: expr.Range.End},
			Destructuring: &ast.DestructuringDeclaration{Pattern: pattern, Expression: expr},
		}, nil
	}

	name, err := c.expect(tokIdent, "let-bound name")
	if err != nil {
		return nil, err
	}
	var args []ast.Pattern
	for c.peek().kind != tokEquals && c.continues() {
		argStart := c.peek().start
		c.advance()
		args = append(args, ast.Pattern{Range: ast.Range{Start: argStart, End: c.peek().start}})
	}
	if _, err := c.expect(tokEquals, "="); err != nil {
		return nil, err
	}
	expr, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.LetBinding{
		Kind:     ast.LetBindingFunction,
		Range:    ast.Range{Start: start, End: expr.Range.End},
		Function: &ast.FunctionDeclaration{Name: name.text, Arguments: args, Expression: expr},
	}, nil
}

func (c *cursor) parseCase() (*ast.Expression, error) {
	start := c.advance().start // "case"

	savedBoundary := c.boundary
	c.boundary = 0
	scrutinee, err := c.parseExpression()
	c.boundary = savedBoundary
	if err != nil {
		return nil, err
	}

	if err := c.expectKeyword("of"); err != nil {
		return nil, err
	}

	armCol := c.peek().start.Column
	c.boundary = armCol

	var arms []*ast.CaseArm
	for !c.atEOF() && c.peek().start.Column == armCol {
		patStart := c.peek().start
		for c.peek().kind != tokArrow && !c.atEOF() {
			c.advance()
		}
		pattern := ast.Pattern{Range: ast.Range{Start: patStart, End: c.peek().start}}
		if _, err := c.expect(tokArrow, "->"); err != nil {
			c.boundary = savedBoundary
			return nil, err
		}
		body, err := c.parseExpression()
		if err != nil {
			c.boundary = savedBoundary
			return nil, err
		}
		arms = append(arms, &ast.CaseArm{Pattern: pattern, Expression: body, Range: ast.Range{Start: patStart, End: body.Range.End}})
	}
	c.boundary = savedBoundary

	end := start
	if len(arms) > 0 {
		end = arms[len(arms)-1].Range.End
	}
	return &ast.Expression{
		Kind:      ast.ExprCase,
		Scrutinee: scrutinee,
		CaseArms:  arms,
		Range:     ast.Range{Start: start, End: end},
	}, nil
}
