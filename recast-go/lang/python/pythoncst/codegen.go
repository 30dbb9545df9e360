package pythoncst

import (
	"bytes"
	"strings"
)

// codegenState tracks the output buffer and the indentation stack while a
// tree is serialized back to source text.
type codegenState struct {
	buf            bytes.Buffer
	indents        []string
	indent         string
	defaultIndent  string
	defaultNewline string
}

func (s *codegenState) write(str string) {
	s.buf.WriteString(str)
}

func (s *codegenState) pushIndent(rel string) {
	if rel == "" {
		rel = s.defaultIndent
	}
	s.indents = append(s.indents, rel)
	s.indent += rel
}

func (s *codegenState) popIndent() {
	rel := s.indents[len(s.indents)-1]
	s.indents = s.indents[:len(s.indents)-1]
	s.indent = s.indent[:len(s.indent)-len(rel)]
}

func (s *codegenState) writeIndent() {
	s.buf.WriteString(s.indent)
}

// parenWs emits a parenthesizable whitespace field, or the given default
// text when the field was never populated (e.g. on a manually built tree).
func (s *codegenState) parenWs(ws ParenthesizableWhitespace, def string) {
	if ws == nil {
		s.write(def)
		return
	}
	ws.codegen(s)
}

// spaceIfEmpty emits a simple whitespace field, synthesizing a single space
// when it is empty. It is used at positions where the grammar requires
// separating whitespace, so an empty value can only come from manual
// construction.
func (s *codegenState) spaceIfEmpty(ws SimpleWhitespace) {
	if ws.Value == "" {
		s.write(" ")
		return
	}
	s.write(ws.Value)
}

// Codegen serializes the tree rooted at m back to source text. It is a
// total function over any well-formed tree: for a tree produced by parsing
// an unmodified source buffer the output is byte-identical to the input.
func Codegen(m *Module) string {
	s := &codegenState{
		defaultIndent:  m.DefaultIndent,
		defaultNewline: m.DefaultNewline,
	}
	if s.defaultIndent == "" {
		s.defaultIndent = "    "
	}
	if s.defaultNewline == "" {
		s.defaultNewline = "\n"
	}

	m.codegen(s)

	out := s.buf.String()
	if !m.HasTrailingNewline {
		// the final logical line had no newline in the source; drop the one
		// synthesized for it
		switch {
		case strings.HasSuffix(out, "\r\n"):
			out = out[:len(out)-2]
		case strings.HasSuffix(out, "\n"), strings.HasSuffix(out, "\r"):
			out = out[:len(out)-1]
		}
	}
	return out
}
