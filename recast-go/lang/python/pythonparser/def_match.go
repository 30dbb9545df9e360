package pythonparser

import (
	"fmt"
	"go/token"

	"github.com/recastdev/recast/recast-go/lang/python/pythoncst"
	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

// defPattern is a deflated match pattern.
type defPattern interface {
	inflatePattern(x *inflater) pythoncst.MatchPattern
	matchParens() *defMatchParens
}

// defMatchParens holds the group parentheses around a deflated pattern,
// outermost first.
type defMatchParens struct {
	used bool
	lpar []*pythonscanner.Word
	rpar []*pythonscanner.Word
}

func (d *defMatchParens) matchParens() *defMatchParens { return d }

func (d *defMatchParens) addParen(lp, rp *pythonscanner.Word) {
	d.lpar = append([]*pythonscanner.Word{lp}, d.lpar...)
	d.rpar = append(d.rpar, rp)
}

func (d *defMatchParens) use(kind string) {
	if d.used {
		panic(fmt.Sprintf("pythonparser: deflated %s inflated twice", kind))
	}
	d.used = true
}

func (d *defMatchParens) inflateOpen(x *inflater) []*pythoncst.LeftParen {
	var lps []*pythoncst.LeftParen
	for _, w := range d.lpar {
		lps = append(lps, &pythoncst.LeftParen{WhitespaceAfter: x.wsAfter(w)})
	}
	return lps
}

func (d *defMatchParens) inflateClose(x *inflater) []*pythoncst.RightParen {
	var rps []*pythoncst.RightParen
	for _, w := range d.rpar {
		rps = append(rps, &pythoncst.RightParen{WhitespaceBefore: x.wsBefore(w)})
	}
	return rps
}

// -- patterns

type defMatchValue struct {
	defMatchParens
	value defExpr
}

func (d *defMatchValue) inflatePattern(x *inflater) pythoncst.MatchPattern {
	d.use("MatchValue")
	lp := d.inflateOpen(x)
	p := &pythoncst.MatchValue{Value: d.value.inflateExpr(x)}
	p.LPar, p.RPar = lp, d.inflateClose(x)
	return p
}

type defMatchSingleton struct {
	defMatchParens
	w *pythonscanner.Word
}

func (d *defMatchSingleton) inflatePattern(x *inflater) pythoncst.MatchPattern {
	d.use("MatchSingleton")
	lp := d.inflateOpen(x)
	p := &pythoncst.MatchSingleton{Value: inflateName(d.w)}
	p.LPar, p.RPar = lp, d.inflateClose(x)
	return p
}

// defMatchItem is one element of a deflated sequence pattern.
type defMatchItem interface {
	inflateItem(x *inflater) pythoncst.MatchSequenceItem
}

type defMatchSeqElem struct {
	pat   defPattern
	comma *pythonscanner.Word
}

func (d *defMatchSeqElem) inflateItem(x *inflater) pythoncst.MatchSequenceItem {
	return d.inflateElem(x)
}

func (d *defMatchSeqElem) inflateElem(x *inflater) *pythoncst.MatchSequenceElement {
	return &pythoncst.MatchSequenceElement{
		Value: d.pat.inflatePattern(x),
		Comma: inflateComma(x, d.comma),
	}
}

type defMatchStar struct {
	star  *pythonscanner.Word
	name  *pythonscanner.Word
	comma *pythonscanner.Word
}

func (d *defMatchStar) inflateItem(x *inflater) pythoncst.MatchSequenceItem {
	return &pythoncst.MatchStar{
		WhitespaceAfterStar: x.wsAfter(d.star),
		Name:                inflateName(d.name),
		Comma:               inflateComma(x, d.comma),
	}
}

type defMatchSequence struct {
	defMatchParens
	lbrack *pythonscanner.Word
	items  []defMatchItem
	rbrack *pythonscanner.Word
}

func (d *defMatchSequence) inflatePattern(x *inflater) pythoncst.MatchPattern {
	d.use("MatchSequence")
	lp := d.inflateOpen(x)
	p := &pythoncst.MatchSequence{}
	if d.lbrack != nil {
		p.Lbracket = &pythoncst.LeftSquareBracket{WhitespaceAfter: x.wsAfter(d.lbrack)}
	}
	for _, it := range d.items {
		p.Items = append(p.Items, it.inflateItem(x))
	}
	if d.rbrack != nil {
		p.Rbracket = &pythoncst.RightSquareBracket{WhitespaceBefore: x.wsBefore(d.rbrack)}
	}
	p.LPar, p.RPar = lp, d.inflateClose(x)
	return p
}

type defMatchMapElem struct {
	key   defExpr
	colon *pythonscanner.Word
	pat   defPattern
	comma *pythonscanner.Word
}

type defMatchMapping struct {
	defMatchParens
	lbrace        *pythonscanner.Word
	elems         []*defMatchMapElem
	stars         *pythonscanner.Word
	rest          *pythonscanner.Word
	trailingComma *pythonscanner.Word
	rbrace        *pythonscanner.Word
}

func (d *defMatchMapping) inflatePattern(x *inflater) pythoncst.MatchPattern {
	d.use("MatchMapping")
	lp := d.inflateOpen(x)
	p := &pythoncst.MatchMapping{
		Lbrace: &pythoncst.LeftCurlyBrace{WhitespaceAfter: x.wsAfter(d.lbrace)},
	}
	for _, e := range d.elems {
		me := &pythoncst.MatchMappingElement{Key: e.key.inflateExpr(x)}
		me.WhitespaceBeforeColon = x.wsBefore(e.colon)
		me.WhitespaceAfterColon = x.wsAfter(e.colon)
		me.Pattern = e.pat.inflatePattern(x)
		me.Comma = inflateComma(x, e.comma)
		p.Elements = append(p.Elements, me)
	}
	if d.rest != nil {
		p.WhitespaceAfterStars = x.wsAfter(d.stars)
		p.Rest = inflateName(d.rest)
	}
	p.TrailingComma = inflateComma(x, d.trailingComma)
	p.Rbrace = &pythoncst.RightCurlyBrace{WhitespaceBefore: x.wsBefore(d.rbrace)}
	p.LPar, p.RPar = lp, d.inflateClose(x)
	return p
}

type defMatchKwd struct {
	key   *pythonscanner.Word
	eq    *pythonscanner.Word
	pat   defPattern
	comma *pythonscanner.Word
}

type defMatchClass struct {
	defMatchParens
	cls    defExpr
	lparen *pythonscanner.Word
	pats   []*defMatchSeqElem
	kwds   []*defMatchKwd
	rparen *pythonscanner.Word
}

func (d *defMatchClass) inflatePattern(x *inflater) pythoncst.MatchPattern {
	d.use("MatchClass")
	lp := d.inflateOpen(x)
	p := &pythoncst.MatchClass{Cls: d.cls.inflateExpr(x)}
	p.WhitespaceAfterCls = x.wsBefore(d.lparen)
	p.WhitespaceBeforePatterns = x.wsAfter(d.lparen)
	for _, e := range d.pats {
		p.Patterns = append(p.Patterns, e.inflateElem(x))
	}
	for _, k := range d.kwds {
		ke := &pythoncst.MatchKeywordElement{Key: inflateName(k.key)}
		ke.WhitespaceBeforeEqual = x.wsBefore(k.eq)
		ke.WhitespaceAfterEqual = x.wsAfter(k.eq)
		ke.Pattern = k.pat.inflatePattern(x)
		ke.Comma = inflateComma(x, k.comma)
		p.Kwds = append(p.Kwds, ke)
	}
	p.WhitespaceBeforeRparen = x.wsBefore(d.rparen)
	p.LPar, p.RPar = lp, d.inflateClose(x)
	return p
}

type defMatchAs struct {
	defMatchParens
	pat  defPattern
	asW  *pythonscanner.Word
	name *pythonscanner.Word
}

func (d *defMatchAs) inflatePattern(x *inflater) pythoncst.MatchPattern {
	d.use("MatchAs")
	lp := d.inflateOpen(x)
	p := &pythoncst.MatchAs{}
	if d.pat != nil {
		p.Pattern = d.pat.inflatePattern(x)
		p.WhitespaceBeforeAs = x.wsBefore(d.asW)
		p.WhitespaceAfterAs = x.wsAfter(d.asW)
	}
	if d.name != nil {
		p.Name = inflateName(d.name)
	}
	p.LPar, p.RPar = lp, d.inflateClose(x)
	return p
}

type defMatchOrElem struct {
	pat defPattern
	bar *pythonscanner.Word
}

type defMatchOr struct {
	defMatchParens
	elems []*defMatchOrElem
}

func (d *defMatchOr) inflatePattern(x *inflater) pythoncst.MatchPattern {
	d.use("MatchOr")
	lp := d.inflateOpen(x)
	p := &pythoncst.MatchOr{}
	for _, e := range d.elems {
		oe := &pythoncst.MatchOrElement{Pattern: e.pat.inflatePattern(x)}
		if e.bar != nil {
			oe.WhitespaceBeforeBar = x.wsBefore(e.bar)
			oe.WhitespaceAfterBar = x.wsAfter(e.bar)
		}
		p.Patterns = append(p.Patterns, oe)
	}
	p.LPar, p.RPar = lp, d.inflateClose(x)
	return p
}

// -- the match statement

type defMatchCase struct {
	defStmtBase
	caseW *pythonscanner.Word
	pat   defPattern
	ifW   *pythonscanner.Word
	guard defExpr
	colon *pythonscanner.Word
	suite defSuite
}

func (d *defMatchCase) inflate(x *inflater) *pythoncst.MatchCase {
	d.use("MatchCase")
	lead := stmtLead(x, d.caseW)
	id := x.nextID()
	x.spans.SetBranch(id, span(d.colon.End, d.suite.end()))
	c := &pythoncst.MatchCase{ID: id, LeadingLines: lead}
	c.WhitespaceAfterCase = x.wsAfter(d.caseW)
	c.Pattern = d.pat.inflatePattern(x)
	if d.guard != nil {
		c.WhitespaceBeforeIf = x.wsBefore(d.ifW)
		c.WhitespaceAfterIf = x.wsAfter(d.ifW)
		c.Guard = d.guard.inflateExpr(x)
	}
	c.WhitespaceBeforeColon = x.wsBefore(d.colon)
	c.Body = d.suite.inflateSuite(x, d.colon)
	return c
}

type defMatch struct {
	defStmtBase
	matchW  *pythonscanner.Word
	subject defExpr
	colon   *pythonscanner.Word
	indentW *pythonscanner.Word
	cases   []*defMatchCase
	dedentW *pythonscanner.Word
}

func (d *defMatch) firstWord() *pythonscanner.Word { return d.matchW }

func (d *defMatch) endPos() token.Pos {
	return d.cases[len(d.cases)-1].suite.end()
}

func (d *defMatch) inflateStmt(x *inflater) pythoncst.Stmt {
	d.use("Match")
	lead := stmtLead(x, d.matchW)
	id := x.nextID()
	x.spans.SetLexical(id, span(d.matchW.Begin, d.endPos()))
	x.spans.SetBranch(id, span(d.colon.End, d.endPos()))
	n := &pythoncst.Match{ID: id, LeadingLines: lead}
	n.WhitespaceAfterMatch = x.wsAfter(d.matchW)
	n.Subject = d.subject.inflateExpr(x)
	n.WhitespaceBeforeColon = x.wsBefore(d.colon)
	n.Header = x.trailingWs(d.colon.WsAfter)
	n.Indent = d.indentW.Literal
	x.pushIndent(d.indentW.Literal)
	for _, c := range d.cases {
		n.Cases = append(n.Cases, c.inflate(x))
	}
	n.Footer = x.footer(d.dedentW.WsBefore)
	x.popIndent()
	return n
}
