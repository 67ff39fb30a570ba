package reference

import (
	"fmt"

	"github.com/jfmengels/elm-lint/pkg/ast"
)

// parseTopLevelDeclarations groups the remaining tokens into blocks at
// column 1 (Elm's off-side rule: only a new top-level item starts flush
// left) and parses each block independently.
func (c *cursor) parseTopLevelDeclarations() ([]*ast.Declaration, error) {
	var decls []*ast.Declaration

	for !c.atEOF() {
		blockStart := c.pos
		c.advance()
		for !c.atEOF() && !c.atColumn1() {
			c.advance()
		}
		boundary := c.peek()
		block := &cursor{toks: append(append([]token(nil), c.toks[blockStart:c.pos]...),
			token{kind: tokEOF, start: boundary.start, end: boundary.start})}

		decl, err := parseTopLevelBlock(block)
		if err != nil {
			return nil, err
		}
		if decl != nil {
			decls = append(decls, decl)
		}
	}

	return decls, nil
}

// parseTopLevelBlock parses one top-level item. Pure type-annotation
// blocks (`name : Type`, no top-level `=`) carry no AST representation and
// are dropped; the traversal driver never needed them.
func parseTopLevelBlock(b *cursor) (*ast.Declaration, error) {
	start := b.peek().start

	switch {
	case b.isKeyword("type"):
		return parseTypeDeclaration(b, start)
	case b.isKeyword("port"):
		return parsePortDeclaration(b, start)
	case b.isKeyword("infix"):
		return parseInfixDeclaration(b, start)
	}

	if isTypeAnnotationBlock(b) {
		return nil, nil
	}

	if b.peek().kind == tokLParen {
		return parseDestructuringDeclaration(b, start)
	}

	return parseFunctionDeclaration(b, start)
}

// isTypeAnnotationBlock reports whether b is `name : Type...` with no
// top-level `=` (a signature with no accompanying implementation in this
// block — the implementation, if present, is the next block).
func isTypeAnnotationBlock(b *cursor) bool {
	depth := 0
	for i := 0; i < len(b.toks); i++ {
		t := b.toks[i]
		switch t.kind {
		case tokLParen, tokLBracket, tokLBrace:
			depth++
		case tokRParen, tokRBracket, tokRBrace:
			depth--
		case tokEquals:
			if depth == 0 {
				return false
			}
		case tokColon:
			if depth == 0 && i == 1 {
				return true
			}
		case tokEOF:
			return false
		}
	}
	return false
}

func parseTypeDeclaration(b *cursor, start ast.Position) (*ast.Declaration, error) {
	b.advance() // "type"
	if b.isKeyword("alias") {
		b.advance()
		name, err := b.expect(tokUpperIdent, "type alias name")
		if err != nil {
			return nil, err
		}
		return &ast.Declaration{
			Kind:      ast.DeclTypeAlias,
			Range:     ast.Range{Start: start, End: b.peek().start},
			TypeAlias: &ast.TypeAliasDeclaration{Name: name.text},
		}, nil
	}

	name, err := b.expect(tokUpperIdent, "custom type name")
	if err != nil {
		return nil, err
	}

	var constructors []string
	for !b.atEOF() {
		if b.peek().kind == tokUpperIdent && (b.peekAt(-1).kind == tokEquals || b.peekAt(-1).kind == tokPipe) {
			constructors = append(constructors, b.peek().text)
		}
		b.advance()
	}

	return &ast.Declaration{
		Kind:       ast.DeclCustomType,
		Range:      ast.Range{Start: start, End: b.peek().start},
		CustomType: &ast.CustomTypeDeclaration{Name: name.text, Constructors: constructors},
	}, nil
}

func parsePortDeclaration(b *cursor, start ast.Position) (*ast.Declaration, error) {
	b.advance() // "port"
	name, err := b.expect(tokIdent, "port name")
	if err != nil {
		return nil, err
	}
	return &ast.Declaration{
		Kind:  ast.DeclPort,
		Range: ast.Range{Start: start, End: b.peek().start},
		Port:  &ast.PortDeclaration{Name: name.text},
	}, nil
}

func parseInfixDeclaration(b *cursor, start ast.Position) (*ast.Declaration, error) {
	b.advance() // "infix"
	var operator string
	for !b.atEOF() {
		if b.peek().kind == tokOperator {
			operator = b.peek().text
		}
		b.advance()
	}
	return &ast.Declaration{
		Kind:  ast.DeclInfix,
		Range: ast.Range{Start: start, End: b.peek().start},
		Infix: &ast.InfixDeclaration{Operator: operator},
	}, nil
}

func parseDestructuringDeclaration(b *cursor, start ast.Position) (*ast.Declaration, error) {
	patternStart := b.peek().start
	depth := 0
	for {
		t := b.advance()
		if t.kind == tokLParen {
			depth++
		}
		if t.kind == tokRParen {
			depth--
			if depth == 0 {
				break
			}
		}
		if b.atEOF() {
			return nil, fmt.Errorf("unterminated destructuring pattern at %d:%d", patternStart.Row, patternStart.Column)
		}
	}
	pattern := ast.Pattern{Range: ast.Range{Start: patternStart, End: b.peek().start}}

	if _, err := b.expect(tokEquals, "="); err != nil {
		return nil, err
	}
	expr, err := b.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Declaration{
		Kind:  ast.DeclDestructuring,
		Range: ast.Range{Start: start, End: b.peek().start},
		Destructuring: &ast.DestructuringDeclaration{
			Pattern:    pattern,
			Expression: expr,
		},
	}, nil
}

func parseFunctionDeclaration(b *cursor, start ast.Position) (*ast.Declaration, error) {
	name, err := b.expect(tokIdent, "function name")
	if err != nil {
		return nil, err
	}

	var args []ast.Pattern
	for b.peek().kind != tokEquals && !b.atEOF() {
		argStart := b.peek().start
		b.advance()
		args = append(args, ast.Pattern{Range: ast.Range{Start: argStart, End: b.peek().start}})
	}

	if _, err := b.expect(tokEquals, "="); err != nil {
		return nil, err
	}

	expr, err := b.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Declaration{
		Kind:  ast.DeclFunction,
		Range: ast.Range{Start: start, End: b.peek().start},
		Function: &ast.FunctionDeclaration{
			Name:       name.text,
			Arguments:  args,
			Expression: expr,
		},
	}, nil
}
