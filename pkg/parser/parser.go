// Package parser defines the narrow interfaces the lint engine needs from
// an external parser, and nothing else: the core treats parsing as a
// pluggable boundary (spec §6).
package parser

import "github.com/jfmengels/elm-lint/pkg/ast"

// Parser turns source text into a File, or reports why it could not.
// The specific error type is never inspected by the engine — any parse
// error collapses to the lint engine's synthetic ParsingError diagnostic.
type Parser interface {
	Parse(source string) (*ast.File, error)
}

// PostProcessor finalizes a freshly parsed File: resolving operator
// associativities and name shadowing. It runs once, after a successful
// parse, before any rule observes the file.
type PostProcessor interface {
	PostProcess(*ast.File) *ast.File
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(source string) (*ast.File, error)

func (f ParserFunc) Parse(source string) (*ast.File, error) { return f(source) }

// PostProcessorFunc adapts a plain function to the PostProcessor interface.
type PostProcessorFunc func(*ast.File) *ast.File

func (f PostProcessorFunc) PostProcess(file *ast.File) *ast.File { return f(file) }
