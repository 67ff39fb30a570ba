package reference

import "github.com/jfmengels/elm-lint/pkg/ast"

type opInfo struct {
	precedence int
	assoc      ast.Associativity
}

// knownOperators covers the common infix operators. Anything not listed
// falls back to defaultOperator: left-associative, low precedence. This is
// enough to exercise pkg/ast's operator-application child ordering without
// reimplementing Elm's full fixity-declaration resolution.
var knownOperators = map[string]opInfo{
	"|>": {0, ast.AssocLeft},
	"<|": {0, ast.AssocRight},
	"||": {2, ast.AssocRight},
	"&&": {3, ast.AssocRight},
	"==": {4, ast.AssocNon},
	"/=": {4, ast.AssocNon},
	"<":  {4, ast.AssocNon},
	">":  {4, ast.AssocNon},
	"<=": {4, ast.AssocNon},
	">=": {4, ast.AssocNon},
	"++": {5, ast.AssocRight},
	"::": {5, ast.AssocRight},
	">>": {9, ast.AssocLeft},
	"<<": {9, ast.AssocRight},
	"+":  {6, ast.AssocLeft},
	"-":  {6, ast.AssocLeft},
	"*":  {7, ast.AssocLeft},
	"/":  {7, ast.AssocLeft},
	"//": {7, ast.AssocLeft},
	"^":  {8, ast.AssocRight},
}

var defaultOperator = opInfo{precedence: 1, assoc: ast.AssocLeft}

func operatorInfo(op string) opInfo {
	if info, ok := knownOperators[op]; ok {
		return info
	}
	return defaultOperator
}
