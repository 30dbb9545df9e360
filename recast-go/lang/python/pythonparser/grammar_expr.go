package pythonparser

import (
	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

// atExprStart reports whether the current token can begin an expression.
func (p *parser) atExprStart() bool {
	switch p.tok() {
	case pythonscanner.Ident, pythonscanner.Int, pythonscanner.Float,
		pythonscanner.Imag, pythonscanner.String, pythonscanner.Lparen,
		pythonscanner.Lbrack, pythonscanner.Lbrace, pythonscanner.Ellipsis,
		pythonscanner.True, pythonscanner.False, pythonscanner.None,
		pythonscanner.Not, pythonscanner.Lambda, pythonscanner.Await,
		pythonscanner.Add, pythonscanner.Sub, pythonscanner.BitNot,
		pythonscanner.Mul, pythonscanner.Pow, pythonscanner.Yield:
		return true
	}
	return false
}

// parseNamedTest parses a conditional expression with an optional walrus
// assignment.
func (p *parser) parseNamedTest() defExpr {
	defer un(trace(p, "NamedTest"))
	e := p.parseTest()
	if p.at(pythonscanner.Walrus) {
		w := p.next()
		return &defNamedExpr{target: e, walrus: w, value: p.parseTest()}
	}
	return e
}

// parseTest parses a conditional expression or lambda.
func (p *parser) parseTest() defExpr {
	defer un(trace(p, "Test"))
	if p.at(pythonscanner.Lambda) {
		return p.parseLambda()
	}
	e := p.parseOrTest()
	if p.at(pythonscanner.If) {
		ifW := p.next()
		test := p.parseOrTest()
		elseW := p.expect(pythonscanner.Else)
		return &defIfExp{body: e, ifW: ifW, test: test, elseW: elseW, orelse: p.parseTest()}
	}
	return e
}

func (p *parser) parseLambda() defExpr {
	defer un(trace(p, "Lambda"))
	d := &defLambda{lambdaW: p.expect(pythonscanner.Lambda)}
	d.params = p.parseParams(false, pythonscanner.Colon)
	d.colon = p.expect(pythonscanner.Colon)
	d.body = p.parseTest()
	return d
}

func (p *parser) parseOrTest() defExpr {
	e := p.parseAndTest()
	for p.at(pythonscanner.Or) {
		op := p.next()
		e = &defBool{left: e, op: op, right: p.parseAndTest()}
	}
	return e
}

func (p *parser) parseAndTest() defExpr {
	e := p.parseNotTest()
	for p.at(pythonscanner.And) {
		op := p.next()
		e = &defBool{left: e, op: op, right: p.parseNotTest()}
	}
	return e
}

func (p *parser) parseNotTest() defExpr {
	if p.at(pythonscanner.Not) {
		op := p.next()
		return &defUnary{op: op, operand: p.parseNotTest()}
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() defExpr {
	e := p.parseBitOr()
	var targets []*defCompTarget
	for {
		t := &defCompTarget{}
		switch {
		case p.at(pythonscanner.Lt, pythonscanner.Gt, pythonscanner.Le,
			pythonscanner.Ge, pythonscanner.Eq, pythonscanner.Ne,
			pythonscanner.In):
			t.op1 = p.next()
		case p.at(pythonscanner.Is):
			t.op1 = p.next()
			if p.at(pythonscanner.Not) {
				t.op2 = p.next()
			}
		case p.at(pythonscanner.Not) && p.peek(1) == pythonscanner.In:
			t.op1 = p.next()
			t.op2 = p.next()
		default:
			if len(targets) == 0 {
				return e
			}
			return &defCompare{left: e, targets: targets}
		}
		t.comparator = p.parseBitOr()
		targets = append(targets, t)
	}
}

func (p *parser) parseBitOr() defExpr {
	e := p.parseBitXor()
	for p.at(pythonscanner.BitOr) {
		op := p.next()
		e = &defBinary{left: e, op: op, right: p.parseBitXor()}
	}
	return e
}

func (p *parser) parseBitXor() defExpr {
	e := p.parseBitAnd()
	for p.at(pythonscanner.BitXor) {
		op := p.next()
		e = &defBinary{left: e, op: op, right: p.parseBitAnd()}
	}
	return e
}

func (p *parser) parseBitAnd() defExpr {
	e := p.parseShift()
	for p.at(pythonscanner.BitAnd) {
		op := p.next()
		e = &defBinary{left: e, op: op, right: p.parseShift()}
	}
	return e
}

func (p *parser) parseShift() defExpr {
	e := p.parseArith()
	for p.at(pythonscanner.BitLshift, pythonscanner.BitRshift) {
		op := p.next()
		e = &defBinary{left: e, op: op, right: p.parseArith()}
	}
	return e
}

func (p *parser) parseArith() defExpr {
	e := p.parseTerm()
	for p.at(pythonscanner.Add, pythonscanner.Sub) {
		op := p.next()
		e = &defBinary{left: e, op: op, right: p.parseTerm()}
	}
	return e
}

func (p *parser) parseTerm() defExpr {
	e := p.parseFactor()
	for p.at(pythonscanner.Mul, pythonscanner.At, pythonscanner.Div,
		pythonscanner.Pct, pythonscanner.Truediv) {
		op := p.next()
		e = &defBinary{left: e, op: op, right: p.parseFactor()}
	}
	return e
}

func (p *parser) parseFactor() defExpr {
	if p.at(pythonscanner.Add, pythonscanner.Sub, pythonscanner.BitNot) {
		op := p.next()
		return &defUnary{op: op, operand: p.parseFactor()}
	}
	return p.parsePower()
}

// parsePower parses exponentiation; "**" is right associative and the
// right operand is a full factor.
func (p *parser) parsePower() defExpr {
	e := p.parseAtomExpr()
	if p.at(pythonscanner.Pow) {
		op := p.next()
		return &defBinary{left: e, op: op, right: p.parseFactor()}
	}
	return e
}

// parseAtomExpr parses an optional await prefix, an atom, and its call,
// subscript, and attribute trailers.
func (p *parser) parseAtomExpr() defExpr {
	defer un(trace(p, "AtomExpr"))
	var awaitW *pythonscanner.Word
	if p.at(pythonscanner.Await) {
		awaitW = p.next()
	}
	e := p.parseAtom()
	for {
		switch p.tok() {
		case pythonscanner.Lparen:
			lparen := p.next()
			args := p.parseArgs()
			e = &defCall{fn: e, lparen: lparen, args: args, rparen: p.expect(pythonscanner.Rparen)}
		case pythonscanner.Lbrack:
			e = p.parseSubscriptTrailer(e)
		case pythonscanner.Period:
			dot := p.next()
			e = &defAttr{value: e, dot: dot, attr: p.expect(pythonscanner.Ident)}
		default:
			if awaitW != nil {
				return &defAwait{w: awaitW, operand: e}
			}
			return e
		}
	}
}

func (p *parser) parseSubscriptTrailer(value defExpr) defExpr {
	lbrack := p.next()
	d := &defSubscript{value: value, lbrack: lbrack}
	for !p.at(pythonscanner.Rbrack) {
		el := &defSubscriptElem{slice: p.parseSubscriptItem()}
		if p.at(pythonscanner.Comma) {
			el.comma = p.next()
		} else {
			d.elems = append(d.elems, el)
			break
		}
		d.elems = append(d.elems, el)
	}
	d.rbrack = p.expect(pythonscanner.Rbrack)
	return d
}

// parseSubscriptItem parses one subscript element: an index, a starred
// index, or a slice with optional bounds and stride.
func (p *parser) parseSubscriptItem() defSliceItem {
	if p.at(pythonscanner.Mul) {
		star := p.next()
		return &defIndex{star: star, value: p.parseBitOr()}
	}
	var lower defExpr
	if !p.at(pythonscanner.Colon) {
		lower = p.parseNamedTest()
		if !p.at(pythonscanner.Colon) {
			return &defIndex{value: lower}
		}
	}
	sl := &defSlice{lower: lower, colon1: p.expect(pythonscanner.Colon)}
	if p.atExprStart() {
		sl.upper = p.parseTest()
	}
	if p.at(pythonscanner.Colon) {
		sl.colon2 = p.next()
		if p.atExprStart() {
			sl.step = p.parseTest()
		}
	}
	return sl
}

// parseArgs parses a call argument list up to the closing parenthesis.
func (p *parser) parseArgs() []*defArg {
	var args []*defArg
	for !p.at(pythonscanner.Rparen) {
		a := &defArg{}
		switch {
		case p.at(pythonscanner.Mul, pythonscanner.Pow):
			a.star = p.next()
			a.value = p.parseTest()
		default:
			e := p.parseTest()
			switch {
			case p.at(pythonscanner.Assign) && isBareName(e):
				a.keyword = e.(*defName).w
				a.equal = p.next()
				a.value = p.parseTest()
			case p.at(pythonscanner.Walrus):
				w := p.next()
				a.value = &defNamedExpr{target: e, walrus: w, value: p.parseTest()}
			case p.at(pythonscanner.For) ||
				(p.at(pythonscanner.Async) && p.peek(1) == pythonscanner.For):
				// generator expression as sole argument
				a.value = &defGenExp{elt: e, compFor: p.parseCompFor()}
			default:
				a.value = e
			}
		}
		if p.at(pythonscanner.Comma) {
			a.comma = p.next()
		} else {
			args = append(args, a)
			break
		}
		args = append(args, a)
	}
	return args
}

// isBareName reports whether e is an unparenthesized plain name, which is
// what the keyword of a keyword argument must be.
func isBareName(e defExpr) bool {
	n, ok := e.(*defName)
	return ok && len(n.lpar) == 0 && n.w.Token == pythonscanner.Ident
}

// -- atoms

func (p *parser) parseAtom() defExpr {
	defer un(trace(p, "Atom"))
	switch p.tok() {
	case pythonscanner.Ident, pythonscanner.True, pythonscanner.False, pythonscanner.None:
		return &defName{w: p.next()}
	case pythonscanner.Int, pythonscanner.Float, pythonscanner.Imag:
		return &defNumber{w: p.next()}
	case pythonscanner.String:
		return p.parseStrings()
	case pythonscanner.Ellipsis:
		return &defEllipsis{w: p.next()}
	case pythonscanner.Lparen:
		return p.parseParenAtom()
	case pythonscanner.Lbrack:
		return p.parseListAtom()
	case pythonscanner.Lbrace:
		return p.parseBraceAtom()
	}
	p.failMsg("expected an expression, found %s", p.tok())
	return nil
}

// parseStrings parses a string literal and any implicitly concatenated
// literals after it, nesting to the right.
func (p *parser) parseStrings() defExpr {
	w := p.next()
	if p.at(pythonscanner.String) {
		return &defConcat{left: w, right: p.parseStrings()}
	}
	return &defString{w: w}
}

// parseTestOrStar parses a display or list element: a starred expression
// or a test with optional walrus.
func (p *parser) parseTestOrStar() defExpr {
	if p.at(pythonscanner.Mul) {
		return p.parseStarExpr()
	}
	return p.parseNamedTest()
}

func (p *parser) parseStarExpr() defExpr {
	star := p.expect(pythonscanner.Mul)
	return &defStarred{star: star, value: p.parseBitOr()}
}

func (p *parser) parseParenAtom() defExpr {
	lp := p.next()
	if p.at(pythonscanner.Rparen) {
		t := &defTuple{}
		t.addParen(lp, p.next())
		return t
	}
	if p.at(pythonscanner.Yield) {
		y := p.parseYield()
		y.parens().addParen(lp, p.expect(pythonscanner.Rparen))
		return y
	}
	first := p.parseTestOrStar()
	if p.at(pythonscanner.For) ||
		(p.at(pythonscanner.Async) && p.peek(1) == pythonscanner.For) {
		g := &defGenExp{elt: first, compFor: p.parseCompFor()}
		g.addParen(lp, p.expect(pythonscanner.Rparen))
		return g
	}
	if p.at(pythonscanner.Comma) {
		t := &defTuple{elems: p.parseElementsTail(&defSimpleElement{value: first}, pythonscanner.Rparen, false)}
		t.addParen(lp, p.expect(pythonscanner.Rparen))
		return t
	}
	first.parens().addParen(lp, p.expect(pythonscanner.Rparen))
	return first
}

func (p *parser) parseListAtom() defExpr {
	lbrack := p.next()
	if p.at(pythonscanner.Rbrack) {
		return &defList{lbrack: lbrack, rbrack: p.next()}
	}
	first := p.parseTestOrStar()
	if p.at(pythonscanner.For) ||
		(p.at(pythonscanner.Async) && p.peek(1) == pythonscanner.For) {
		return &defListComp{lbrack: lbrack, elt: first, compFor: p.parseCompFor(), rbrack: p.expect(pythonscanner.Rbrack)}
	}
	return &defList{
		lbrack: lbrack,
		elems:  p.parseElementsTail(&defSimpleElement{value: first}, pythonscanner.Rbrack, false),
		rbrack: p.expect(pythonscanner.Rbrack),
	}
}

func (p *parser) parseBraceAtom() defExpr {
	lbrace := p.next()
	if p.at(pythonscanner.Rbrace) {
		return &defDict{lbrace: lbrace, rbrace: p.next()}
	}
	if p.at(pythonscanner.Pow) {
		stars := p.next()
		first := &defDoubleStarElement{stars: stars, value: p.parseBitOr()}
		return &defDict{
			lbrace: lbrace,
			elems:  p.parseElementsTail(first, pythonscanner.Rbrace, true),
			rbrace: p.expect(pythonscanner.Rbrace),
		}
	}
	if p.at(pythonscanner.Mul) {
		first := &defSimpleElement{value: p.parseStarExpr()}
		return &defSet{
			lbrace: lbrace,
			elems:  p.parseElementsTail(first, pythonscanner.Rbrace, false),
			rbrace: p.expect(pythonscanner.Rbrace),
		}
	}
	key := p.parseNamedTest()
	if p.at(pythonscanner.Colon) {
		colon := p.next()
		value := p.parseTest()
		if p.at(pythonscanner.For) ||
			(p.at(pythonscanner.Async) && p.peek(1) == pythonscanner.For) {
			return &defDictComp{
				lbrace:  lbrace,
				key:     key,
				colon:   colon,
				value:   value,
				compFor: p.parseCompFor(),
				rbrace:  p.expect(pythonscanner.Rbrace),
			}
		}
		first := &defDictElement{key: key, colon: colon, value: value}
		return &defDict{
			lbrace: lbrace,
			elems:  p.parseElementsTail(first, pythonscanner.Rbrace, true),
			rbrace: p.expect(pythonscanner.Rbrace),
		}
	}
	if p.at(pythonscanner.For) ||
		(p.at(pythonscanner.Async) && p.peek(1) == pythonscanner.For) {
		return &defSetComp{lbrace: lbrace, elt: key, compFor: p.parseCompFor(), rbrace: p.expect(pythonscanner.Rbrace)}
	}
	first := &defSimpleElement{value: key}
	return &defSet{
		lbrace: lbrace,
		elems:  p.parseElementsTail(first, pythonscanner.Rbrace, false),
		rbrace: p.expect(pythonscanner.Rbrace),
	}
}

// parseElementsTail collects the remaining comma-separated elements of a
// display after the first one has been parsed. A comma always attaches to
// the element it follows.
func (p *parser) parseElementsTail(first defElement, end pythonscanner.Token, dict bool) []defElement {
	elems := []defElement{first}
	for p.at(pythonscanner.Comma) {
		elems[len(elems)-1].setComma(p.next())
		if p.at(end) {
			break
		}
		elems = append(elems, p.parseDisplayElement(dict))
	}
	return elems
}

func (p *parser) parseDisplayElement(dict bool) defElement {
	if dict {
		if p.at(pythonscanner.Pow) {
			stars := p.next()
			return &defDoubleStarElement{stars: stars, value: p.parseBitOr()}
		}
		key := p.parseNamedTest()
		colon := p.expect(pythonscanner.Colon)
		return &defDictElement{key: key, colon: colon, value: p.parseTest()}
	}
	return &defSimpleElement{value: p.parseTestOrStar()}
}

// -- comprehensions

func (p *parser) parseCompFor() *defCompFor {
	defer un(trace(p, "CompFor"))
	d := &defCompFor{}
	if p.at(pythonscanner.Async) {
		d.async = p.next()
	}
	d.forW = p.expect(pythonscanner.For)
	d.target = p.parseTargetList()
	d.inW = p.expect(pythonscanner.In)
	d.iter = p.parseOrTest()
	for p.at(pythonscanner.If) {
		ifW := p.next()
		d.ifs = append(d.ifs, &defCompIf{ifW: ifW, test: p.parseCompCond()})
	}
	if p.at(pythonscanner.For) ||
		(p.at(pythonscanner.Async) && p.peek(1) == pythonscanner.For) {
		d.inner = p.parseCompFor()
	}
	return d
}

// parseCompCond parses the condition of a comprehension filter, which
// cannot be a bare conditional expression.
func (p *parser) parseCompCond() defExpr {
	if p.at(pythonscanner.Lambda) {
		return p.parseLambda()
	}
	return p.parseOrTest()
}

// parseTargetList parses an assignment or loop target list: one or more
// targets separated by commas, as a single expression or a bare tuple.
func (p *parser) parseTargetList() defExpr {
	first := p.parseTarget()
	if !p.at(pythonscanner.Comma) {
		return first
	}
	elems := []defElement{&defSimpleElement{value: first}}
	for p.at(pythonscanner.Comma) {
		elems[len(elems)-1].setComma(p.next())
		if !p.atExprStart() {
			break
		}
		elems = append(elems, &defSimpleElement{value: p.parseTarget()})
	}
	return &defTuple{elems: elems}
}

func (p *parser) parseTarget() defExpr {
	if p.at(pythonscanner.Mul) {
		return p.parseStarExpr()
	}
	return p.parseBitOr()
}

// parseTestListStarExpr parses the expression list of an expression
// statement, assignment side, or return value.
func (p *parser) parseTestListStarExpr() defExpr {
	defer un(trace(p, "TestListStarExpr"))
	first := p.parseTestOrStar()
	if !p.at(pythonscanner.Comma) {
		return first
	}
	elems := []defElement{&defSimpleElement{value: first}}
	for p.at(pythonscanner.Comma) {
		elems[len(elems)-1].setComma(p.next())
		if !p.atExprStart() {
			break
		}
		elems = append(elems, &defSimpleElement{value: p.parseTestOrStar()})
	}
	return &defTuple{elems: elems}
}

// -- yield

func (p *parser) parseYield() defExpr {
	d := &defYield{yieldW: p.expect(pythonscanner.Yield)}
	if p.at(pythonscanner.From) {
		d.fromW = p.next()
		d.value = p.parseTest()
	} else if p.atExprStart() {
		d.value = p.parseTestListStarExpr()
	}
	return d
}

// -- parameter lists

// parseParams parses the parameter list of a function definition or
// lambda. Annotations are only admitted when typed is set; end is the
// token that closes the list and is left unconsumed.
func (p *parser) parseParams(typed bool, end pythonscanner.Token) *defParameters {
	defer un(trace(p, "Params"))
	d := &defParameters{}
	seenStar := false
	for !p.at(end) {
		switch {
		case p.at(pythonscanner.Div):
			slash := &defParamSlash{slash: p.next()}
			if p.at(pythonscanner.Comma) {
				slash.comma = p.next()
			}
			d.posonly = d.params
			d.params = nil
			d.slash = slash
		case p.at(pythonscanner.Mul):
			star := p.next()
			prm := &defParam{star: star}
			if p.at(pythonscanner.Ident) {
				prm.name = p.next()
				p.parseParamTail(prm, typed)
			}
			if p.at(pythonscanner.Comma) {
				prm.comma = p.next()
			}
			d.star = prm
			seenStar = true
		case p.at(pythonscanner.Pow):
			stars := p.next()
			prm := &defParam{star: stars, name: p.expect(pythonscanner.Ident)}
			p.parseParamTail(prm, typed)
			if p.at(pythonscanner.Comma) {
				prm.comma = p.next()
			}
			d.starstar = prm
		default:
			prm := &defParam{name: p.expect(pythonscanner.Ident)}
			p.parseParamTail(prm, typed)
			if p.at(pythonscanner.Comma) {
				prm.comma = p.next()
			}
			if seenStar {
				d.kwonly = append(d.kwonly, prm)
			} else {
				d.params = append(d.params, prm)
			}
		}
	}
	return d
}

func (p *parser) parseParamTail(prm *defParam, typed bool) {
	if typed && p.at(pythonscanner.Colon) {
		prm.colon = p.next()
		prm.annotation = p.parseTest()
	}
	if p.at(pythonscanner.Assign) {
		prm.equal = p.next()
		prm.dflt = p.parseTest()
	}
}
