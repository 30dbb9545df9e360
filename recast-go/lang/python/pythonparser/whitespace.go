package pythonparser

import (
	"strings"

	"github.com/recastdev/recast/recast-go/lang/python/pythoncst"
	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

// inflater carries the shared state of one inflation pass: the source
// buffer the whitespace text is read from, the NodeID generator, the span
// table being populated, and the absolute indentation stack.
//
// Whitespace attribution works through the cells the lexer threaded
// between tokens: each inter-token gap is one *WhitespaceState shared by
// the token before and the token after it. Inflation visits nodes in
// codegen order, and every whitespace field parse advances its cell's
// offset, so each byte of the gap lands in exactly one field.
type inflater struct {
	src   []byte
	words []pythonscanner.Word
	spans *pythoncst.PositionTable

	lastID  pythoncst.NodeID
	indents []string
	indent  string

	// lineEnds holds the byte offsets of logical line terminators, taken
	// from the lexer's NewLine words. Newlines at other offsets are
	// implicit continuations inside brackets.
	lineEnds map[int]bool

	defaultNewline string
}

func newInflater(src []byte, words []pythonscanner.Word) *inflater {
	x := &inflater{
		src:            src,
		words:          words,
		spans:          pythoncst.NewPositionTable(),
		lineEnds:       make(map[int]bool),
		defaultNewline: "\n",
	}
	for i := range words {
		w := &words[i]
		if w.Token == pythonscanner.NewLine && w.Begin < w.End {
			x.lineEnds[int(w.Begin)] = true
		}
	}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			break
		}
		if src[i] == '\r' {
			if i+1 < len(src) && src[i+1] == '\n' {
				x.defaultNewline = "\r\n"
			} else {
				x.defaultNewline = "\r"
			}
			break
		}
	}
	return x
}

func (x *inflater) nextID() pythoncst.NodeID {
	x.lastID++
	return x.lastID
}

func (x *inflater) pushIndent(rel string) {
	x.indents = append(x.indents, rel)
	x.indent += rel
}

func (x *inflater) popIndent() {
	rel := x.indents[len(x.indents)-1]
	x.indents = x.indents[:len(x.indents)-1]
	x.indent = x.indent[:len(x.indent)-len(rel)]
}

// -- low level scanning over the source buffer

func (x *inflater) byteAt(off int) byte {
	if off >= len(x.src) {
		return 0
	}
	return x.src[off]
}

func isLineWsByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\f' || b == '\v'
}

// scanSimpleWs advances past single-line whitespace starting at off,
// including backslash-newline continuations and no-break spaces, and
// returns the new offset.
func (x *inflater) scanSimpleWs(off int) int {
	for off < len(x.src) {
		b := x.src[off]
		switch {
		case isLineWsByte(b):
			off++
		case b == 0xc2 && x.byteAt(off+1) == 0xa0: // no-break space
			off += 2
		case b == '\\':
			n := x.newlineLen(off + 1)
			if n == 0 {
				return off
			}
			off += 1 + n
		default:
			return off
		}
	}
	return off
}

// newlineLen returns the byte length of the newline at off, or zero.
func (x *inflater) newlineLen(off int) int {
	switch x.byteAt(off) {
	case '\n':
		return 1
	case '\r':
		if x.byteAt(off+1) == '\n' {
			return 2
		}
		return 1
	}
	return 0
}

// -- whitespace node parsing over shared cells

func (x *inflater) simpleWs(st *pythonscanner.WhitespaceState) pythoncst.SimpleWhitespace {
	start := st.Offset
	st.Offset = x.scanSimpleWs(start)
	return pythoncst.SimpleWhitespace{Value: string(x.src[start:st.Offset])}
}

func (x *inflater) comment(st *pythonscanner.WhitespaceState) *pythoncst.Comment {
	if x.byteAt(st.Offset) != '#' {
		return nil
	}
	start := st.Offset
	off := start
	for off < len(x.src) && x.src[off] != '\n' && x.src[off] != '\r' {
		off++
	}
	st.Offset = off
	return &pythoncst.Comment{Value: string(x.src[start:off])}
}

func (x *inflater) newline(st *pythonscanner.WhitespaceState) (pythoncst.Newline, bool) {
	n := x.newlineLen(st.Offset)
	if n == 0 {
		return pythoncst.Newline{}, false
	}
	nl := pythoncst.Newline{Value: string(x.src[st.Offset : st.Offset+n])}
	st.Offset += n
	return nl, true
}

// trailingWs parses the remainder of a logical line: whitespace, an
// optional comment, and the terminator. At end of file the terminator may
// be absent; the empty Newline, combined with Module.HasTrailingNewline,
// reproduces the missing bytes.
func (x *inflater) trailingWs(st *pythonscanner.WhitespaceState) pythoncst.TrailingWhitespace {
	ws := x.simpleWs(st)
	c := x.comment(st)
	nl, _ := x.newline(st)
	return pythoncst.TrailingWhitespace{Whitespace: ws, Comment: c, Newline: nl}
}

// splitIndent divides a line's leading whitespace into the block indent
// prefix and the remainder.
func (x *inflater) splitIndent(lead string) (indented bool, rest string) {
	if strings.HasPrefix(lead, x.indent) {
		return true, lead[len(x.indent):]
	}
	return false, lead
}

// emptyLines consumes whole lines holding no code: blank lines and comment
// lines. It stops at the first line containing a token (whose leading
// indentation it leaves unconsumed). When eofOK is set, a final line with
// content but no terminator is consumed too.
func (x *inflater) emptyLines(st *pythonscanner.WhitespaceState, eofOK bool) []pythoncst.EmptyLine {
	var lines []pythoncst.EmptyLine
	for {
		save := st.Offset
		ws := x.simpleWs(st)
		c := x.comment(st)
		nl, ok := x.newline(st)
		if !ok {
			if eofOK && st.Offset >= len(x.src) && (ws.Value != "" || c != nil) {
				indented, rest := x.splitIndent(ws.Value)
				lines = append(lines, pythoncst.EmptyLine{
					Indent:     indented,
					Whitespace: pythoncst.SimpleWhitespace{Value: rest},
					Comment:    c,
				})
				return lines
			}
			st.Offset = save
			return lines
		}
		indented, rest := x.splitIndent(ws.Value)
		lines = append(lines, pythoncst.EmptyLine{
			Indent:     indented,
			Whitespace: pythoncst.SimpleWhitespace{Value: rest},
			Comment:    c,
			Newline:    nl,
		})
	}
}

// footer consumes the comment lines that close out an indented block: only
// lines carrying a comment and indented at least to the block's level
// belong to it. Blank lines and shallower comments are left for the outer
// block.
func (x *inflater) footer(st *pythonscanner.WhitespaceState) []pythoncst.EmptyLine {
	var lines []pythoncst.EmptyLine
	for {
		save := st.Offset
		ws := x.simpleWs(st)
		c := x.comment(st)
		if c == nil || !strings.HasPrefix(ws.Value, x.indent) {
			st.Offset = save
			return lines
		}
		nl, ok := x.newline(st)
		if !ok && st.Offset < len(x.src) {
			st.Offset = save
			return lines
		}
		lines = append(lines, pythoncst.EmptyLine{
			Indent:     true,
			Whitespace: pythoncst.SimpleWhitespace{Value: ws.Value[len(x.indent):]},
			Comment:    c,
			Newline:    nl,
		})
	}
}

// indentWs consumes a statement's leading indentation. The text itself is
// not stored: codegen reproduces it from the block structure.
func (x *inflater) indentWs(st *pythonscanner.WhitespaceState) {
	for {
		b := x.byteAt(st.Offset)
		if isLineWsByte(b) {
			st.Offset++
		} else if b == 0xc2 && x.byteAt(st.Offset+1) == 0xa0 {
			st.Offset += 2
		} else {
			return
		}
	}
}

// parenWs parses whitespace at a position where a line break is allowed:
// it produces a ParenthesizedWhitespace if the gap runs onto further
// lines and a SimpleWhitespace otherwise. A gap that ends at the logical
// line terminator stays simple; the terminator (and any trailing comment)
// belongs to the enclosing line's trailing whitespace.
func (x *inflater) parenWs(st *pythonscanner.WhitespaceState) pythoncst.ParenthesizableWhitespace {
	save := st.Offset
	ws := x.simpleWs(st)
	if !x.continuesLine(st.Offset) {
		return ws
	}

	st.Offset = save
	first := x.trailingWs(st)
	empty := x.emptyLines(st, false)
	lead := x.simpleWs(st)
	indented, rest := x.splitIndent(lead.Value)
	return &pythoncst.ParenthesizedWhitespace{
		First:      first,
		EmptyLines: empty,
		Indent:     indented,
		LastLine:   pythoncst.SimpleWhitespace{Value: rest},
	}
}

// continuesLine reports whether the gap at off reaches a newline that is
// an implicit continuation rather than the logical line terminator.
func (x *inflater) continuesLine(off int) bool {
	if x.byteAt(off) == '#' {
		for off < len(x.src) && x.src[off] != '\n' && x.src[off] != '\r' {
			off++
		}
	}
	if x.newlineLen(off) == 0 {
		return false
	}
	return !x.lineEnds[off]
}

// -- per-token conveniences

func (x *inflater) wsBefore(w *pythonscanner.Word) pythoncst.ParenthesizableWhitespace {
	return x.parenWs(w.WsBefore)
}

func (x *inflater) wsAfter(w *pythonscanner.Word) pythoncst.ParenthesizableWhitespace {
	return x.parenWs(w.WsAfter)
}

func (x *inflater) simpleAfter(w *pythonscanner.Word) pythoncst.SimpleWhitespace {
	return x.simpleWs(w.WsAfter)
}
