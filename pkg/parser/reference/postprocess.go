package reference

import "github.com/jfmengels/elm-lint/pkg/ast"

// PostProcess implements pkg/parser.PostProcessor. The reference parser
// already resolves operator associativity while building each
// OperatorApplication node (see operators.go), so there is nothing left to
// finalize; name-shadowing resolution is out of scope for this reference
// grammar. PostProcess exists so callers have a real value to pass to
// lint.Lint rather than special-casing a nil PostProcessFunc.
func PostProcess(file *ast.File) *ast.File { return file }
