package pythoncst

import (
	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

// Comma separates elements in sequences, argument lists, and import lists.
type Comma struct {
	WhitespaceBefore ParenthesizableWhitespace
	WhitespaceAfter  ParenthesizableWhitespace
}

func (c *Comma) codegen(s *codegenState) {
	s.parenWs(c.WhitespaceBefore, "")
	s.write(",")
	s.parenWs(c.WhitespaceAfter, " ")
}

// Semicolon separates small statements on one logical line.
type Semicolon struct {
	WhitespaceBefore ParenthesizableWhitespace
	WhitespaceAfter  ParenthesizableWhitespace
}

func (c *Semicolon) codegen(s *codegenState) {
	s.parenWs(c.WhitespaceBefore, "")
	s.write(";")
	s.parenWs(c.WhitespaceAfter, " ")
}

// Colon is a colon with surrounding whitespace, as used in slices, lambda
// bodies, and dictionary entries.
type Colon struct {
	WhitespaceBefore ParenthesizableWhitespace
	WhitespaceAfter  ParenthesizableWhitespace
}

func (c *Colon) codegen(s *codegenState) {
	s.parenWs(c.WhitespaceBefore, "")
	s.write(":")
	s.parenWs(c.WhitespaceAfter, " ")
}

// Dot is the attribute access or relative import dot.
type Dot struct {
	WhitespaceBefore ParenthesizableWhitespace
	WhitespaceAfter  ParenthesizableWhitespace
}

func (d *Dot) codegen(s *codegenState) {
	s.parenWs(d.WhitespaceBefore, "")
	s.write(".")
	s.parenWs(d.WhitespaceAfter, "")
}

// AssignEqual is the "=" of keyword arguments, parameter defaults, and type
// alias statements. Unlike assignment targets it defaults to no surrounding
// whitespace.
type AssignEqual struct {
	WhitespaceBefore ParenthesizableWhitespace
	WhitespaceAfter  ParenthesizableWhitespace
}

func (e *AssignEqual) codegen(s *codegenState) {
	s.parenWs(e.WhitespaceBefore, "")
	s.write("=")
	s.parenWs(e.WhitespaceAfter, "")
}

// LeftParen is an opening parenthesis together with the whitespace that
// follows it.
type LeftParen struct {
	WhitespaceAfter ParenthesizableWhitespace
}

func (p *LeftParen) codegen(s *codegenState) {
	s.write("(")
	s.parenWs(p.WhitespaceAfter, "")
}

// RightParen is a closing parenthesis together with the whitespace that
// precedes it.
type RightParen struct {
	WhitespaceBefore ParenthesizableWhitespace
}

func (p *RightParen) codegen(s *codegenState) {
	s.parenWs(p.WhitespaceBefore, "")
	s.write(")")
}

type LeftSquareBracket struct {
	WhitespaceAfter ParenthesizableWhitespace
}

func (p *LeftSquareBracket) codegen(s *codegenState) {
	s.write("[")
	s.parenWs(p.WhitespaceAfter, "")
}

type RightSquareBracket struct {
	WhitespaceBefore ParenthesizableWhitespace
}

func (p *RightSquareBracket) codegen(s *codegenState) {
	s.parenWs(p.WhitespaceBefore, "")
	s.write("]")
}

type LeftCurlyBrace struct {
	WhitespaceAfter ParenthesizableWhitespace
}

func (p *LeftCurlyBrace) codegen(s *codegenState) {
	s.write("{")
	s.parenWs(p.WhitespaceAfter, "")
}

type RightCurlyBrace struct {
	WhitespaceBefore ParenthesizableWhitespace
}

func (p *RightCurlyBrace) codegen(s *codegenState) {
	s.parenWs(p.WhitespaceBefore, "")
	s.write("}")
}

// Asynchronous is the "async" keyword prefixing a def, for, or with.
type Asynchronous struct {
	WhitespaceAfter SimpleWhitespace
}

func (a *Asynchronous) codegen(s *codegenState) {
	s.write("async")
	s.spaceIfEmpty(a.WhitespaceAfter)
}

// UnaryOp is a unary operator: Add, Sub, Tilde, or Not.
type UnaryOp struct {
	Tok             pythonscanner.Token
	WhitespaceAfter ParenthesizableWhitespace
}

func (o *UnaryOp) codegen(s *codegenState) {
	s.write(o.Tok.String())
	if o.Tok == pythonscanner.Not {
		s.parenWs(o.WhitespaceAfter, " ")
	} else {
		s.parenWs(o.WhitespaceAfter, "")
	}
}

// BinaryOp is an arithmetic, bitwise, or shift operator between two
// operands.
type BinaryOp struct {
	Tok              pythonscanner.Token
	WhitespaceBefore ParenthesizableWhitespace
	WhitespaceAfter  ParenthesizableWhitespace
}

func (o *BinaryOp) codegen(s *codegenState) {
	s.parenWs(o.WhitespaceBefore, " ")
	s.write(o.Tok.String())
	s.parenWs(o.WhitespaceAfter, " ")
}

// BooleanOp is "and" or "or".
type BooleanOp struct {
	Tok              pythonscanner.Token
	WhitespaceBefore ParenthesizableWhitespace
	WhitespaceAfter  ParenthesizableWhitespace
}

func (o *BooleanOp) codegen(s *codegenState) {
	s.parenWs(o.WhitespaceBefore, " ")
	s.write(o.Tok.String())
	s.parenWs(o.WhitespaceAfter, " ")
}

// CompOp is a comparison operator. Two-word operators ("is not", "not in")
// set Second and the whitespace between the words.
type CompOp struct {
	First             pythonscanner.Token
	Second            pythonscanner.Token
	WhitespaceBefore  ParenthesizableWhitespace
	WhitespaceBetween ParenthesizableWhitespace
	WhitespaceAfter   ParenthesizableWhitespace
}

func (o *CompOp) codegen(s *codegenState) {
	s.parenWs(o.WhitespaceBefore, " ")
	s.write(o.First.String())
	if o.Second != pythonscanner.Illegal {
		s.parenWs(o.WhitespaceBetween, " ")
		s.write(o.Second.String())
	}
	s.parenWs(o.WhitespaceAfter, " ")
}

// AugOp is an augmented assignment operator such as "+=".
type AugOp struct {
	Tok              pythonscanner.Token
	WhitespaceBefore ParenthesizableWhitespace
	WhitespaceAfter  ParenthesizableWhitespace
}

func (o *AugOp) codegen(s *codegenState) {
	s.parenWs(o.WhitespaceBefore, " ")
	s.write(o.Tok.String())
	s.parenWs(o.WhitespaceAfter, " ")
}

// Annotation is a type annotation introduced by ":" or "->". The indicator
// is supplied by the enclosing node at codegen time.
type Annotation struct {
	WhitespaceBeforeIndicator ParenthesizableWhitespace
	WhitespaceAfterIndicator  ParenthesizableWhitespace
	Annotation                Expr
}

func (a *Annotation) codegen(s *codegenState) {
	a.codegenIndicator(s, ":", "", " ")
}

// codegenIndicator emits the annotation with the given indicator text and
// default whitespace on each side of it.
func (a *Annotation) codegenIndicator(s *codegenState, indicator, defBefore, defAfter string) {
	s.parenWs(a.WhitespaceBeforeIndicator, defBefore)
	s.write(indicator)
	s.parenWs(a.WhitespaceAfterIndicator, defAfter)
	a.Annotation.codegen(s)
}

// AsName is an "as" clause: the alias in imports, with items, and except
// handlers. Name is a Name for imports and handlers, and may be a Tuple or
// List target for with items.
type AsName struct {
	WhitespaceBeforeAs ParenthesizableWhitespace
	WhitespaceAfterAs  ParenthesizableWhitespace
	Name               Expr
}

func (a *AsName) codegen(s *codegenState) {
	s.parenWs(a.WhitespaceBeforeAs, " ")
	s.write("as")
	s.parenWs(a.WhitespaceAfterAs, " ")
	a.Name.codegen(s)
}
