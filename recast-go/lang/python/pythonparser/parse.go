package pythonparser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/recastdev/recast/recast-go/lang/python/pythoncst"
	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

// Options controls parsing.
type Options struct {
	// Trace dumps the production call tree to TraceWriter while parsing.
	Trace       bool
	TraceWriter io.Writer
	// Label is the filename used in error messages.
	Label string
	// Newline, when set, is the line terminator recorded for a buffer that
	// contains none of its own. The buffer's own terminators always win.
	Newline string
}

// DefaultOptions are the options used by ParseModule when none are given.
var DefaultOptions = Options{}

// ParsedModule is the result of a successful parse: the tree together with
// the span table populated while building it.
type ParsedModule struct {
	Module    *pythoncst.Module
	Positions *pythoncst.PositionTable
}

// ParseModule lexes and parses a source buffer into a whitespace-preserving
// tree. For any buffer it accepts, generating code from the returned module
// reproduces the buffer byte for byte.
func ParseModule(src []byte, opts Options) (*ParsedModule, error) {
	words, err := pythonscanner.Lex(src)
	if err != nil {
		return nil, err
	}
	return ParseWords(src, words, opts)
}

// ParseWords parses a previously lexed token stream. The words must have
// been produced by pythonscanner.Lex over the same src buffer.
func ParseWords(src []byte, words []pythonscanner.Word, opts Options) (*ParsedModule, error) {
	p := &parser{words: words, opts: opts}
	if p.opts.TraceWriter == nil {
		p.opts.TraceWriter = os.Stderr
	}

	dm, err := p.parseTop()
	if err != nil {
		if opts.Label != "" {
			return nil, fmt.Errorf("%s:%s", opts.Label, err)
		}
		return nil, err
	}

	x := newInflater(src, words)
	if opts.Newline != "" && !bytes.ContainsAny(src, "\r\n") {
		x.defaultNewline = opts.Newline
	}
	mod := dm.inflate(x)
	return &ParsedModule{Module: mod, Positions: x.spans}, nil
}

type parser struct {
	words []pythonscanner.Word
	pos   int
	opts  Options
	depth int
}

func (p *parser) parseTop() (dm *defModule, err error) {
	defer func() {
		if r := recover(); r != nil {
			w, ok := r.(wrongTok)
			if !ok {
				panic(r)
			}
			dm, err = nil, w.err
		}
	}()
	return p.parseModule(), nil
}

// -- token stream helpers

func (p *parser) word() *pythonscanner.Word {
	return &p.words[p.pos]
}

func (p *parser) tok() pythonscanner.Token {
	return p.words[p.pos].Token
}

// peek returns the token n positions ahead, or EOF past the end.
func (p *parser) peek(n int) pythonscanner.Token {
	if p.pos+n >= len(p.words) {
		return pythonscanner.EOF
	}
	return p.words[p.pos+n].Token
}

func (p *parser) prev() *pythonscanner.Word {
	return &p.words[p.pos-1]
}

// next returns the current word and advances, except at EOF.
func (p *parser) next() *pythonscanner.Word {
	w := &p.words[p.pos]
	if w.Token != pythonscanner.EOF {
		p.pos++
	}
	return w
}

func (p *parser) at(toks ...pythonscanner.Token) bool {
	cur := p.tok()
	for _, t := range toks {
		if cur == t {
			return true
		}
	}
	return false
}

// atIdent reports whether the current token is the identifier lit. Soft
// keywords (match, case, type) reach the parser as identifiers.
func (p *parser) atIdent(lit string) bool {
	return p.tok() == pythonscanner.Ident && p.word().Literal == lit
}

func (p *parser) take(tok pythonscanner.Token) *pythonscanner.Word {
	if p.tok() == tok {
		return p.next()
	}
	return nil
}

func (p *parser) expect(tok pythonscanner.Token) *pythonscanner.Word {
	if p.tok() != tok {
		p.fail(tok)
	}
	return p.next()
}

func (p *parser) fail(expected ...pythonscanner.Token) {
	panic(wrongTok{&ParseError{
		Expected: expected,
		Found:    p.tok(),
		Pos:      p.word().Begin,
	}})
}

func (p *parser) failMsg(format string, args ...interface{}) {
	panic(wrongTok{&ParseError{
		Found: p.tok(),
		Pos:   p.word().Begin,
		Msg:   fmt.Sprintf(format, args...),
	}})
}

// -- tracing

func (p *parser) printTrace(a ...interface{}) {
	if !p.opts.Trace {
		return
	}
	fmt.Fprintf(p.opts.TraceWriter, "%5d: %s", p.word().Begin, strings.Repeat(". ", p.depth))
	fmt.Fprintln(p.opts.TraceWriter, a...)
}

func trace(p *parser, msg string) *parser {
	p.printTrace(msg, "(")
	p.depth++
	return p
}

// Usage: defer un(trace(p, "production"))
func un(p *parser) {
	p.depth--
	p.printTrace(")")
}
