package pythoncst

// Node is implemented by every syntax tree node in this package.
type Node interface {
	codegen(s *codegenState)
}

// SimpleWhitespace is a run of whitespace on a single logical line: spaces,
// tabs, form feeds, and backslash continuations. The value is reproduced
// verbatim by codegen.
type SimpleWhitespace struct {
	Value string
}

func (w SimpleWhitespace) codegen(s *codegenState) {
	s.write(w.Value)
}

func (w SimpleWhitespace) isParenWs() {}

// Comment is a single comment, including the leading "#" and excluding the
// line terminator.
type Comment struct {
	Value string
}

func (c *Comment) codegen(s *codegenState) {
	s.write(c.Value)
}

// Newline is a physical line terminator. An empty value is rendered as the
// module's default newline; trees built by the parser store the exact
// terminator that appeared in the source, with the no-newline-at-EOF case
// recorded on Module.HasTrailingNewline.
type Newline struct {
	Value string
}

func (n Newline) codegen(s *codegenState) {
	if n.Value == "" {
		s.write(s.defaultNewline)
		return
	}
	s.write(n.Value)
}

// TrailingWhitespace is everything from the last token of a logical line
// through its terminator: optional whitespace, an optional comment, and the
// newline.
type TrailingWhitespace struct {
	Whitespace SimpleWhitespace
	Comment    *Comment
	Newline    Newline
}

func (t TrailingWhitespace) codegen(s *codegenState) {
	t.Whitespace.codegen(s)
	if t.Comment != nil {
		t.Comment.codegen(s)
	}
	t.Newline.codegen(s)
}

// EmptyLine is a line with no code on it: optionally indented, optionally
// holding a comment. Indent reports whether the line starts at the current
// block indentation; when false, Whitespace holds the line's entire leading
// whitespace verbatim.
type EmptyLine struct {
	Indent     bool
	Whitespace SimpleWhitespace
	Comment    *Comment
	Newline    Newline
}

func (e EmptyLine) codegen(s *codegenState) {
	if e.Indent {
		s.writeIndent()
	}
	e.Whitespace.codegen(s)
	if e.Comment != nil {
		e.Comment.codegen(s)
	}
	e.Newline.codegen(s)
}

// ParenthesizedWhitespace is whitespace that spans one or more line breaks
// inside brackets: the remainder of the current line, any number of empty
// lines, and the leading whitespace of the line the next token sits on.
type ParenthesizedWhitespace struct {
	First      TrailingWhitespace
	EmptyLines []EmptyLine
	Indent     bool
	LastLine   SimpleWhitespace
}

func (p *ParenthesizedWhitespace) codegen(s *codegenState) {
	p.First.codegen(s)
	for _, e := range p.EmptyLines {
		e.codegen(s)
	}
	if p.Indent {
		s.writeIndent()
	}
	p.LastLine.codegen(s)
}

func (p *ParenthesizedWhitespace) isParenWs() {}

// ParenthesizableWhitespace is whitespace at a position where a line break
// is permitted when enclosed in brackets: either SimpleWhitespace or
// *ParenthesizedWhitespace.
type ParenthesizableWhitespace interface {
	Node
	isParenWs()
}
