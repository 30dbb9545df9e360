package pythonparser

import (
	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

// atMatchStmt decides whether the soft keyword "match" begins a match
// statement here. The word must be followed by a subject expression whose
// logical line ends in a colon at bracket depth zero with nothing after
// it; anything else ("match = 5", "match(x).attr", "match[i] += 1") is an
// ordinary use of the name.
func (p *parser) atMatchStmt() bool {
	if !p.atIdent("match") {
		return false
	}
	depth := 0
	for i := p.pos + 1; i < len(p.words); i++ {
		switch p.words[i].Token {
		case pythonscanner.Lparen, pythonscanner.Lbrack, pythonscanner.Lbrace:
			depth++
		case pythonscanner.Rparen, pythonscanner.Rbrack, pythonscanner.Rbrace:
			depth--
		case pythonscanner.Colon:
			if depth == 0 {
				return i+1 < len(p.words) && p.words[i+1].Token == pythonscanner.NewLine
			}
		case pythonscanner.Assign, pythonscanner.Semicolon, pythonscanner.NewLine, pythonscanner.EOF:
			if depth == 0 {
				return false
			}
		}
	}
	return false
}

func (p *parser) parseMatch() defStmt {
	defer un(trace(p, "Match"))
	d := &defMatch{matchW: p.next()}
	d.subject = p.parseTestListStarExpr()
	d.colon = p.expect(pythonscanner.Colon)
	p.expect(pythonscanner.NewLine)
	d.indentW = p.expect(pythonscanner.Indent)
	for p.atIdent("case") {
		d.cases = append(d.cases, p.parseMatchCase())
	}
	if len(d.cases) == 0 {
		p.failMsg("match statement has no case clauses")
	}
	d.dedentW = p.expect(pythonscanner.Dedent)
	return d
}

func (p *parser) parseMatchCase() *defMatchCase {
	defer un(trace(p, "MatchCase"))
	c := &defMatchCase{caseW: p.next()}
	c.pat = p.parseOpenPattern()
	if p.at(pythonscanner.If) {
		c.ifW = p.next()
		c.guard = p.parseNamedTest()
	}
	c.colon = p.expect(pythonscanner.Colon)
	c.suite = p.parseSuite()
	return c
}

// -- patterns

// parseOpenPattern parses the pattern of a case clause, which may be a
// bare comma-separated sequence.
func (p *parser) parseOpenPattern() defPattern {
	if p.at(pythonscanner.Mul) {
		seq := &defMatchSequence{}
		seq.items = p.parseOpenSequenceItems(nil)
		return seq
	}
	first := p.parseAsPattern()
	if !p.at(pythonscanner.Comma) {
		return first
	}
	seq := &defMatchSequence{}
	seq.items = p.parseOpenSequenceItems(&defMatchSeqElem{pat: first})
	return seq
}

// parseOpenSequenceItems parses the tail of an unbracketed sequence
// pattern, stopping before the case clause's guard or colon.
func (p *parser) parseOpenSequenceItems(first defMatchItem) []defMatchItem {
	var items []defMatchItem
	if first != nil {
		items = append(items, first)
	}
	for {
		if len(items) > 0 {
			if !p.at(pythonscanner.Comma) {
				return items
			}
			setItemComma(items[len(items)-1], p.next())
			if p.at(pythonscanner.Colon, pythonscanner.If) {
				return items
			}
		}
		items = append(items, p.parseSequenceItem())
	}
}

func (p *parser) parseSequenceItem() defMatchItem {
	if p.at(pythonscanner.Mul) {
		star := p.next()
		return &defMatchStar{star: star, name: p.expect(pythonscanner.Ident)}
	}
	return &defMatchSeqElem{pat: p.parseAsPattern()}
}

func setItemComma(it defMatchItem, w *pythonscanner.Word) {
	switch e := it.(type) {
	case *defMatchSeqElem:
		e.comma = w
	case *defMatchStar:
		e.comma = w
	}
}

func (p *parser) parseAsPattern() defPattern {
	pat := p.parseOrPattern()
	if !p.at(pythonscanner.As) {
		return pat
	}
	asW := p.next()
	return &defMatchAs{pat: pat, asW: asW, name: p.expect(pythonscanner.Ident)}
}

func (p *parser) parseOrPattern() defPattern {
	first := p.parseClosedPattern()
	if !p.at(pythonscanner.BitOr) {
		return first
	}
	d := &defMatchOr{}
	d.elems = append(d.elems, &defMatchOrElem{pat: first})
	for p.at(pythonscanner.BitOr) {
		d.elems[len(d.elems)-1].bar = p.next()
		d.elems = append(d.elems, &defMatchOrElem{pat: p.parseClosedPattern()})
	}
	return d
}

func (p *parser) parseClosedPattern() defPattern {
	switch p.tok() {
	case pythonscanner.True, pythonscanner.False, pythonscanner.None:
		return &defMatchSingleton{w: p.next()}
	case pythonscanner.Int, pythonscanner.Float, pythonscanner.Imag,
		pythonscanner.String, pythonscanner.Sub:
		// literal pattern, including signed and complex numbers
		return &defMatchValue{value: p.parseArith()}
	case pythonscanner.Ident:
		return p.parseNamePattern()
	case pythonscanner.Lparen:
		return p.parseParenPattern()
	case pythonscanner.Lbrack:
		return p.parseBracketPattern()
	case pythonscanner.Lbrace:
		return p.parseMappingPattern()
	}
	p.failMsg("expected a match pattern, found %s", p.tok())
	return nil
}

// parseNamePattern handles patterns that start with an identifier: the
// wildcard "_", a capture, a dotted value pattern, or a class pattern.
func (p *parser) parseNamePattern() defPattern {
	if p.peek(1) != pythonscanner.Period && p.peek(1) != pythonscanner.Lparen {
		w := p.next()
		if w.Literal == "_" {
			return &defMatchAs{}
		}
		return &defMatchAs{name: w}
	}
	var cls defExpr = &defName{w: p.next()}
	for p.at(pythonscanner.Period) {
		dot := p.next()
		cls = &defAttr{value: cls, dot: dot, attr: p.expect(pythonscanner.Ident)}
	}
	if p.at(pythonscanner.Lparen) {
		return p.parseClassPattern(cls)
	}
	return &defMatchValue{value: cls}
}

func (p *parser) parseClassPattern(cls defExpr) defPattern {
	d := &defMatchClass{cls: cls, lparen: p.next()}
	for !p.at(pythonscanner.Rparen) {
		if p.at(pythonscanner.Ident) && p.peek(1) == pythonscanner.Assign {
			k := &defMatchKwd{key: p.next(), eq: p.next(), pat: p.parseAsPattern()}
			k.comma = p.take(pythonscanner.Comma)
			d.kwds = append(d.kwds, k)
			if k.comma == nil {
				break
			}
			continue
		}
		e := &defMatchSeqElem{pat: p.parseAsPattern()}
		e.comma = p.take(pythonscanner.Comma)
		d.pats = append(d.pats, e)
		if e.comma == nil {
			break
		}
	}
	d.rparen = p.expect(pythonscanner.Rparen)
	return d
}

// parseParenPattern handles "(...)": an empty or parenthesized sequence
// pattern, or grouping parentheses around a single pattern.
func (p *parser) parseParenPattern() defPattern {
	lp := p.next()
	if p.at(pythonscanner.Rparen) {
		seq := &defMatchSequence{}
		seq.addParen(lp, p.next())
		return seq
	}
	if p.at(pythonscanner.Mul) {
		seq := &defMatchSequence{items: p.parseBracketedItems(pythonscanner.Rparen)}
		seq.addParen(lp, p.expect(pythonscanner.Rparen))
		return seq
	}
	first := p.parseAsPattern()
	if p.at(pythonscanner.Comma) {
		el := &defMatchSeqElem{pat: first, comma: p.next()}
		seq := &defMatchSequence{items: []defMatchItem{el}}
		seq.items = append(seq.items, p.parseBracketedItems(pythonscanner.Rparen)...)
		seq.addParen(lp, p.expect(pythonscanner.Rparen))
		return seq
	}
	first.matchParens().addParen(lp, p.expect(pythonscanner.Rparen))
	return first
}

func (p *parser) parseBracketPattern() defPattern {
	seq := &defMatchSequence{lbrack: p.next()}
	seq.items = p.parseBracketedItems(pythonscanner.Rbrack)
	seq.rbrack = p.expect(pythonscanner.Rbrack)
	return seq
}

func (p *parser) parseBracketedItems(end pythonscanner.Token) []defMatchItem {
	var items []defMatchItem
	for !p.at(end) {
		it := p.parseSequenceItem()
		if p.at(pythonscanner.Comma) {
			setItemComma(it, p.next())
			items = append(items, it)
			continue
		}
		items = append(items, it)
		break
	}
	return items
}

func (p *parser) parseMappingPattern() defPattern {
	d := &defMatchMapping{lbrace: p.next()}
	for !p.at(pythonscanner.Rbrace) {
		if p.at(pythonscanner.Pow) {
			d.stars = p.next()
			d.rest = p.expect(pythonscanner.Ident)
			d.trailingComma = p.take(pythonscanner.Comma)
			break
		}
		e := &defMatchMapElem{key: p.parseMappingKey()}
		e.colon = p.expect(pythonscanner.Colon)
		e.pat = p.parseAsPattern()
		if p.at(pythonscanner.Comma) {
			e.comma = p.next()
			d.elems = append(d.elems, e)
			continue
		}
		d.elems = append(d.elems, e)
		break
	}
	d.rbrace = p.expect(pythonscanner.Rbrace)
	return d
}

// parseMappingKey parses a mapping pattern key: a literal, or a dotted
// value reference.
func (p *parser) parseMappingKey() defExpr {
	if p.at(pythonscanner.Ident) {
		var e defExpr = &defName{w: p.next()}
		for p.at(pythonscanner.Period) {
			dot := p.next()
			e = &defAttr{value: e, dot: dot, attr: p.expect(pythonscanner.Ident)}
		}
		return e
	}
	return p.parseArith()
}
