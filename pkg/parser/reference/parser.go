package reference

import (
	"fmt"

	"github.com/jfmengels/elm-lint/pkg/ast"
)

// Parser is a pkg/parser.Parser implementation over the scoped-down grammar
// this package lexes and parses.
type Parser struct{}

// New returns a reference Parser.
func New() Parser { return Parser{} }

// Parse implements pkg/parser.Parser.
func (Parser) Parse(source string) (*ast.File, error) {
	return Parse(source)
}

// Parse lexes and parses source text into a File.
func Parse(source string) (*ast.File, error) {
	toks, err := lex(source)
	if err != nil {
		return nil, err
	}
	p := &cursor{toks: toks}

	module, err := p.parseModuleHeader()
	if err != nil {
		return nil, err
	}

	var imports []*ast.Import
	for p.atColumn1() && p.peek().kind == tokKeyword && p.peek().text == "import" {
		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}

	decls, err := p.parseTopLevelDeclarations()
	if err != nil {
		return nil, err
	}

	return &ast.File{Module: module, Imports: imports, Declarations: decls}, nil
}

// cursor walks a token stream. boundary is the indentation column at or
// below which the current expression must stop (a new let-binding or
// case-arm starting flush with the prior one, rather than continuing it);
// 0 means "no boundary", i.e. consume to the end of the token stream.
type cursor struct {
	toks     []token
	pos      int
	boundary int
}

func (c *cursor) peek() token {
	if c.pos >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}
	return c.toks[c.pos]
}

func (c *cursor) peekAt(offset int) token {
	idx := c.pos + offset
	if idx < 0 {
		return token{}
	}
	if idx >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}
	return c.toks[idx]
}

func (c *cursor) advance() token {
	t := c.peek()
	if c.pos < len(c.toks)-1 {
		c.pos++
	}
	return t
}

func (c *cursor) atEOF() bool { return c.peek().kind == tokEOF }

func (c *cursor) atColumn1() bool { return !c.atEOF() && c.peek().start.Column == 1 }

func (c *cursor) expect(kind tokenKind, what string) (token, error) {
	if c.peek().kind != kind {
		return token{}, fmt.Errorf("expected %s at %d:%d, got %q", what, c.peek().start.Row, c.peek().start.Column, c.peek().text)
	}
	return c.advance(), nil
}

func (c *cursor) expectKeyword(kw string) error {
	if c.peek().kind != tokKeyword || c.peek().text != kw {
		return fmt.Errorf("expected keyword %q at %d:%d, got %q", kw, c.peek().start.Row, c.peek().start.Column, c.peek().text)
	}
	c.advance()
	return nil
}

func (c *cursor) isKeyword(kw string) bool {
	return c.peek().kind == tokKeyword && c.peek().text == kw
}

// parseModuleHeader parses `module A.B exposing (..)`, `port module A
// exposing (a)`, or `effect module A exposing (..)`.
func (c *cursor) parseModuleHeader() (*ast.ModuleDefinition, error) {
	start := c.peek().start
	flavor := ast.ModuleNormal

	switch {
	case c.isKeyword("port"):
		c.advance()
		flavor = ast.ModulePort
	case c.isKeyword("effect"):
		c.advance()
		flavor = ast.ModuleEffect
	}

	if err := c.expectKeyword("module"); err != nil {
		return nil, err
	}

	name, err := c.parseModuleName()
	if err != nil {
		return nil, err
	}

	if err := c.expectKeyword("exposing"); err != nil {
		return nil, err
	}
	exposing, err := c.parseExposing()
	if err != nil {
		return nil, err
	}

	return &ast.ModuleDefinition{
		Flavor:     flavor,
		ModuleName: name,
		Exposing:   exposing,
		Range:      ast.Range{Start: start, End: c.peek().start},
	}, nil
}

// parseModuleName parses a dotted sequence of capitalized identifiers,
// e.g. Html.Attributes.
func (c *cursor) parseModuleName() ([]string, error) {
	first, err := c.expect(tokUpperIdent, "module name segment")
	if err != nil {
		return nil, err
	}
	segments := []string{first.text}
	for c.peek().kind == tokDot && c.peekAt(1).kind == tokUpperIdent {
		c.advance()
		seg := c.advance()
		segments = append(segments, seg.text)
	}
	return segments, nil
}

// parseExposing parses `(..)` or `(a, b, SomeType(..))`.
func (c *cursor) parseExposing() (ast.Exposing, error) {
	if _, err := c.expect(tokLParen, "("); err != nil {
		return ast.Exposing{}, err
	}

	// The lexer reads ".." as a single operator token.
	if c.peek().kind == tokOperator && c.peek().text == ".." {
		c.advance()
		if _, err := c.expect(tokRParen, ")"); err != nil {
			return ast.Exposing{}, err
		}
		return ast.Exposing{All: true}, nil
	}

	var names []string
	for c.peek().kind != tokRParen {
		name := c.advance()
		names = append(names, name.text)
		if c.peek().kind == tokLParen {
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
			}
		}
		if c.peek().kind == tokComma {
			c.advance()
		}
	}
	if _, err := c.expect(tokRParen, ")"); err != nil {
		return ast.Exposing{}, err
	}
	return ast.Exposing{Names: names}, nil
}

func (c *cursor) parseImport() (*ast.Import, error) {
	start := c.peek().start
	if err := c.expectKeyword("import"); err != nil {
		return nil, err
	}
	name, err := c.parseModuleName()
	if err != nil {
		return nil, err
	}

	imp := &ast.Import{ModuleName: name}

	if c.isKeyword("as") {
		c.advance()
		alias, err := c.expect(tokUpperIdent, "import alias")
		if err != nil {
			return nil, err
		}
		imp.Alias = &alias.text
	}

	if c.isKeyword("exposing") {
		c.advance()
		exposing, err := c.parseExposing()
		if err != nil {
			return nil, err
		}
		imp.Exposing = &exposing
	}

	imp.Range = ast.Range{Start: start, End: c.peek().start}
	return imp, nil
}
