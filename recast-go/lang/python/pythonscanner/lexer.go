package pythonscanner

import (
	"bytes"
	"fmt"
	"go/token"

	"github.com/recastdev/recast/recast-golib/errors"
)

var bomPrefix = []byte{0xEF, 0xBB, 0xBF}

// BomLength returns the length in bytes of the byte order mark prefix of
// buf, or zero if there is none.
func BomLength(buf []byte) int {
	if bytes.HasPrefix(buf, bomPrefix) {
		return len(bomPrefix)
	}
	return 0
}

// Count counts the number of tokens Lex would produce, without allocating
// space for them. It counts EOF, so the output might be one greater than
// what you expect.
// NOTE: the lexer expects `buf` to be UTF8 encoded
func Count(buf []byte) (int, error) {
	var count int

	lexer := newStreamLexer(buf)
	var prev Word
	for prev.Token != EOF {
		prev = lexer.Next()
		count++
	}

	if errs := lexer.errors(); errs != nil {
		return count, errs
	}
	return count, nil
}

// Lex converts a byte array to an array of lexical elements. Comments and
// line continuations are not surfaced as tokens: their text remains in the
// whitespace regions between tokens, where the inflation whitespace parser
// attributes it to tree nodes. Layout tokens (NewLine, Indent, Dedent) are
// synthesized for logical lines outside brackets.
//
// Lexing is all-or-nothing: if the returned error is non-nil the token
// stream must not be parsed.
// NOTE: the lexer expects `buf` to be UTF8 encoded
func Lex(buf []byte) ([]Word, error) {
	// preallocate token slice
	count, _ := Count(buf)
	words := make([]Word, 0, count)

	lexer := newStreamLexer(buf)
	for len(words) == 0 || words[len(words)-1].Token != EOF {
		words = append(words, lexer.Next())
	}
	if errs := lexer.errors(); errs != nil {
		return words, errs
	}
	return words, nil
}

// -

type wordQueue struct {
	ring          []Word
	start, length int
}

func newWordQueue(sz int) *wordQueue {
	var ring []Word
	if sz > 0 {
		ring = make([]Word, sz)
	}
	return &wordQueue{
		ring: ring,
	}
}

func (q *wordQueue) resize() {
	newCapacity := q.length << 1
	if newCapacity == 0 {
		newCapacity = 8 // arbitrary
	}
	newBuf := make([]Word, newCapacity)

	if q.start+q.length <= len(q.ring) {
		copy(newBuf, q.ring[q.start:q.start+q.length])
	} else {
		n := copy(newBuf, q.ring[q.start:])
		copy(newBuf[n:], q.ring[:q.start+q.length-len(q.ring)])
	}

	q.start = 0
	q.ring = newBuf
}

func (q *wordQueue) add(w Word) {
	if q.length == len(q.ring) {
		q.resize()
	}

	idx := q.start + q.length
	if idx >= len(q.ring) {
		idx -= len(q.ring)
	}

	q.ring[idx] = w
	q.length++
}

func (q *wordQueue) remove() Word {
	if q.length == 0 {
		panic("wordQueue: remove called on empty queue")
	}
	w := q.ring[q.start]
	q.length--
	q.start++
	if q.start == len(q.ring) {
		q.start = 0
	}
	return w
}

// indentLevel is one entry of the indentation stack: the tab-expanded level
// together with the exact indent text of the lines at that level. Tracking
// the text makes block indentation reconstructible byte for byte and
// rejects files whose equal-level lines disagree on tabs versus spaces.
type indentLevel struct {
	level int
	text  string
}

type streamLexer struct {
	src     []byte
	scanner *Scanner

	parenDepth int
	indents    []indentLevel
	queue      *wordQueue

	needsNewline   bool
	hasFirst       bool
	lineHasContent bool
	nlBegin, nlEnd token.Pos

	lastCell *WhitespaceState

	errs errors.Errors
}

func newStreamLexer(src []byte) *streamLexer {
	return &streamLexer{
		src: src,
		scanner: NewScanner(src, Options{
			ScanComments: false,
			ScanNewLines: true,
		}),
		queue:    newWordQueue(16),
		lastCell: &WhitespaceState{Offset: BomLength(src)},
	}
}

func (l *streamLexer) error(offs int, msg string) {
	l.errs = errors.Append(l.errs, PosError{token.Pos(offs), msg})
}

// errors collects everything that went wrong during lexing, including
// errors the scanner recorded while producing tokens.
func (l *streamLexer) errors() errors.Errors {
	out := l.scanner.Errs
	if l.errs != nil {
		for _, e := range l.errs.Slice() {
			out = errors.Append(out, e)
		}
	}
	return out
}

// attachCells links a real token into the whitespace cell chain: its
// before-cell is the previous token's after-cell, and a fresh after-cell is
// created at the token's end.
func (l *streamLexer) attachCells(w *Word) {
	w.WsBefore = l.lastCell
	l.lastCell = &WhitespaceState{Offset: int(w.End)}
	w.WsAfter = l.lastCell
}

// synthetic builds a zero-consuming layout token. Its whitespace cells alias
// the current cell so the inflation whitespace parser sees one shared cursor
// per inter-token region.
func (l *streamLexer) synthetic(tok Token, begin, end token.Pos, lit string) Word {
	return Word{
		Token:    tok,
		Begin:    begin,
		End:      end,
		Literal:  lit,
		WsBefore: l.lastCell,
		WsAfter:  l.lastCell,
	}
}

// indentTextBefore returns the whitespace between the start of the line
// containing offset begin and that offset. The scanner guarantees every
// character in the range is whitespace. A byte order mark is not part of
// the first line's indent.
func (l *streamLexer) indentTextBefore(begin token.Pos) string {
	floor := BomLength(l.src)
	i := int(begin)
	for i > floor && l.src[i-1] != '\n' && l.src[i-1] != '\r' {
		i--
	}
	return string(l.src[i:int(begin)])
}

// computeIndentLevel computes an indentation level from an indentation
// string, expanding tabs to multiples of eight as CPython does.
func (l *streamLexer) computeIndentLevel(s string) int {
	var level int
	for _, c := range s {
		// normal space or no break space
		if c == ' ' || c == ' ' {
			level++
		} else if c == '\t' {
			// increase indent to next multiple of eight
			level += 8 - (level % 8)
		} else {
			// treat it as a single whitespace character so that we can
			// keep processing
			level++
			l.error(l.scanner.offset, fmt.Sprintf("invalid character %q within indentation whitespace", c))
		}
	}
	return level
}

func (l *streamLexer) topIndent() indentLevel {
	if len(l.indents) == 0 {
		return indentLevel{} // top-level indent is 0 by definition
	}
	return l.indents[len(l.indents)-1]
}

func (l *streamLexer) processIndent(text string, begin token.Pos) {
	last := l.topIndent()
	cur := l.computeIndentLevel(text)

	switch {
	// Case 1: indentation is unchanged; check textual consistency
	case cur == last.level:
		if text != last.text {
			l.error(int(begin), "inconsistent use of tabs and spaces in indentation")
		}

	// Case 2: indentation has increased; queue an indent carrying the
	// relative indent text of the new block
	case cur > last.level:
		if !hasPrefix(text, last.text) {
			l.error(int(begin), "inconsistent use of tabs and spaces in indentation")
			l.indents = append(l.indents, indentLevel{cur, text})
			l.queue.add(l.synthetic(Indent, begin, begin, ""))
			return
		}
		l.indents = append(l.indents, indentLevel{cur, text})
		l.queue.add(l.synthetic(Indent, begin, begin, text[len(last.text):]))

	// Case 3: indentation has decreased; queue dedents
	default:
		for l.topIndent().level > cur {
			l.indents = l.indents[:len(l.indents)-1]
			l.queue.add(l.synthetic(Dedent, begin, begin, ""))
		}

		// now the top of the stack should match the current line exactly
		top := l.topIndent()
		if top.level != cur {
			l.error(int(begin), "unindent does not match any outer indentation level")
		} else if top.text != text {
			l.error(int(begin), "inconsistent use of tabs and spaces in indentation")
		}
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func (l *streamLexer) Next() Word {
	if l.queue.length > 0 {
		return l.queue.remove()
	}

	for {
		begin, end, tok, lit := l.scanner.Scan()

		// Process open and close brackets. If we get a keyword that cannot
		// appear within a bracketed region then drop out of the brackets
		// and set an error.
		switch tok {
		case Lparen, Lbrace, Lbrack:
			l.parenDepth++
		case Rparen, Rbrace, Rbrack:
			if l.parenDepth > 0 {
				l.parenDepth--
			}
		case Class, Def, Del, Pass, With, Raise, Import,
			Break, Continue, Assert, Except, Finally,
			Global, Try, While, Semicolon, NonLocal:
			if l.parenDepth != 0 {
				l.error(l.scanner.offset, fmt.Sprintf("invalid keyword in bracketed region: %s", tok.String()))
				l.parenDepth = 0
			}
		}

		switch tok {
		case LineContinuation:
			// not surfaced; the backslash-newline text remains in the
			// whitespace region between the surrounding tokens
			continue

		case NewLine:
			if l.parenDepth == 0 && !l.needsNewline {
				// the first physical newline after content terminates the
				// logical line; further newlines belong to the blank lines
				// that follow it
				l.needsNewline = true
				l.nlBegin, l.nlEnd = begin, end
			}
			continue
		}

		word := Word{Token: tok, Begin: begin, End: end, Literal: lit}

		if tok == EOF {
			if l.parenDepth > 0 {
				l.error(int(begin), "unterminated bracket at end of file")
			}
			if l.lineHasContent && !l.needsNewline {
				// the final line has no trailing newline; terminate it with
				// a zero-width logical newline
				l.needsNewline = true
				l.nlBegin, l.nlEnd = begin, begin
			}

			var first *Word
			if l.needsNewline && l.hasFirst {
				nl := l.synthetic(NewLine, l.nlBegin, l.nlEnd, "")
				first = &nl
			}
			for len(l.indents) > 0 {
				l.indents = l.indents[:len(l.indents)-1]
				d := l.synthetic(Dedent, begin, begin, "")
				if first == nil {
					first = &d
				} else {
					l.queue.add(d)
				}
			}

			word.WsBefore = l.lastCell
			word.WsAfter = l.lastCell
			l.needsNewline = false
			if first == nil {
				return word
			}
			l.queue.add(word)
			return *first
		}

		if l.needsNewline && l.hasFirst {
			// we have a newline pending, so emit:
			//    NEWLINE <CURTOKEN>                    if indentation is unchanged
			//    NEWLINE INDENT <CURTOKEN>             if indentation increased
			//    NEWLINE DEDENT ... DEDENT <CURTOKEN>  if indentation decreased
			nl := l.synthetic(NewLine, l.nlBegin, l.nlEnd, "")
			l.processIndent(l.indentTextBefore(begin), begin)
			l.attachCells(&word)
			l.queue.add(word)

			l.needsNewline = false
			l.lineHasContent = true
			return nl
		}

		if !l.hasFirst {
			l.hasFirst = true
			if text := l.indentTextBefore(begin); text != "" {
				l.error(int(begin), "unexpected indent")
			}
		}
		l.needsNewline = false
		l.lineHasContent = true
		l.attachCells(&word)
		return word
	}
}
