package pythonparser

import (
	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

func (p *parser) parseModule() *defModule {
	defer un(trace(p, "Module"))
	dm := &defModule{}
	for !p.at(pythonscanner.EOF) {
		dm.body = append(dm.body, p.parseStatement())
	}
	dm.eof = p.word()
	return dm
}

func (p *parser) parseStatement() defStmt {
	defer un(trace(p, "Statement"))
	switch p.tok() {
	case pythonscanner.If:
		return p.parseIf(false)
	case pythonscanner.While:
		return p.parseWhile()
	case pythonscanner.For:
		return p.parseFor(nil)
	case pythonscanner.Try:
		return p.parseTry()
	case pythonscanner.With:
		return p.parseWith(nil)
	case pythonscanner.Def:
		return p.parseFunctionDef(nil, nil)
	case pythonscanner.Class:
		return p.parseClassDef(nil)
	case pythonscanner.At:
		return p.parseDecorated()
	case pythonscanner.Async:
		switch p.peek(1) {
		case pythonscanner.Def:
			async := p.next()
			return p.parseFunctionDef(nil, async)
		case pythonscanner.For:
			async := p.next()
			return p.parseFor(async)
		case pythonscanner.With:
			async := p.next()
			return p.parseWith(async)
		}
		p.fail(pythonscanner.Def, pythonscanner.For, pythonscanner.With)
	case pythonscanner.Ident:
		if p.atMatchStmt() {
			return p.parseMatch()
		}
	}
	return p.parseSimpleLine()
}

// -- simple statement lines

func (p *parser) parseSimpleLine() defStmt {
	defer un(trace(p, "SimpleStatementLine"))
	line := &defSimpleLine{first: p.word()}
	line.smalls, line.nl = p.parseSmallStmts()
	return line
}

// parseSmallStmts parses one or more semicolon-separated small statements
// and the newline that terminates the logical line.
func (p *parser) parseSmallStmts() ([]defSmall, *pythonscanner.Word) {
	var smalls []defSmall
	for {
		begin := p.word().Begin
		sm := p.parseSmallStmt()
		sm.setExtent(begin, p.prev().End)
		if p.at(pythonscanner.Semicolon) {
			sm.setSemi(p.next())
			smalls = append(smalls, sm)
			if p.at(pythonscanner.NewLine) {
				break
			}
			continue
		}
		smalls = append(smalls, sm)
		break
	}
	return smalls, p.expect(pythonscanner.NewLine)
}

func (p *parser) parseSmallStmt() defSmall {
	switch p.tok() {
	case pythonscanner.Pass:
		p.next()
		return &defPass{}
	case pythonscanner.Break:
		p.next()
		return &defBreak{}
	case pythonscanner.Continue:
		p.next()
		return &defContinue{}
	case pythonscanner.Return:
		d := &defReturn{kw: p.next()}
		if p.atExprStart() {
			d.value = p.parseTestListStarExpr()
		}
		return d
	case pythonscanner.Raise:
		d := &defRaise{kw: p.next()}
		if p.atExprStart() {
			d.exc = p.parseTest()
			if p.at(pythonscanner.From) {
				d.fromW = p.next()
				d.cause = p.parseTest()
			}
		}
		return d
	case pythonscanner.Assert:
		d := &defAssert{kw: p.next(), test: p.parseTest()}
		if p.at(pythonscanner.Comma) {
			d.comma = p.next()
			d.msg = p.parseTest()
		}
		return d
	case pythonscanner.Del:
		return &defDel{kw: p.next(), target: p.parseTargetList()}
	case pythonscanner.Global:
		return &defGlobal{kw: p.next(), names: p.parseNameItems()}
	case pythonscanner.NonLocal:
		return &defNonlocal{kw: p.next(), names: p.parseNameItems()}
	case pythonscanner.Import:
		return p.parseImport()
	case pythonscanner.From:
		return p.parseImportFrom()
	case pythonscanner.Yield:
		return &defExprStmt{value: p.parseYield()}
	case pythonscanner.Ident:
		if p.atTypeAlias() {
			return p.parseTypeAlias()
		}
	}
	return p.parseExprSmallStmt()
}

// parseExprSmallStmt parses an expression statement, or an assignment,
// annotated assignment, or augmented assignment growing from one.
func (p *parser) parseExprSmallStmt() defSmall {
	e := p.parseTestListStarExpr()
	switch {
	case p.at(pythonscanner.Colon):
		d := &defAnnAssign{target: e, colon: p.next(), ann: p.parseTest()}
		if p.at(pythonscanner.Assign) {
			d.eq = p.next()
			d.value = p.parseAssignValue()
		}
		return d
	case p.at(pythonscanner.Assign):
		d := &defAssign{}
		d.targets = append(d.targets, &defAssignTarget{target: e, eq: p.next()})
		for {
			v := p.parseAssignValue()
			if !p.at(pythonscanner.Assign) {
				d.value = v
				return d
			}
			d.targets = append(d.targets, &defAssignTarget{target: v, eq: p.next()})
		}
	case p.atAugAssign():
		return &defAugAssign{target: e, op: p.next(), value: p.parseAssignValue()}
	}
	return &defExprStmt{value: e}
}

func (p *parser) atAugAssign() bool {
	switch p.tok() {
	case pythonscanner.AddAssign, pythonscanner.SubAssign, pythonscanner.MulAssign,
		pythonscanner.PowAssign, pythonscanner.DivAssign, pythonscanner.TruedivAssign,
		pythonscanner.PctAssign, pythonscanner.AtAssign, pythonscanner.BitAndAssign,
		pythonscanner.BitOrAssign, pythonscanner.BitXorAssign,
		pythonscanner.BitLshiftAssign, pythonscanner.BitRshiftAssign:
		return true
	}
	return false
}

func (p *parser) parseAssignValue() defExpr {
	if p.at(pythonscanner.Yield) {
		return p.parseYield()
	}
	return p.parseTestListStarExpr()
}

func (p *parser) parseNameItems() []*defNameItem {
	items := []*defNameItem{{name: p.expect(pythonscanner.Ident)}}
	for p.at(pythonscanner.Comma) {
		items[len(items)-1].comma = p.next()
		items = append(items, &defNameItem{name: p.expect(pythonscanner.Ident)})
	}
	return items
}

// -- imports

// parseDottedName parses "a.b.c" as a name or nested attribute.
func (p *parser) parseDottedName() defExpr {
	var e defExpr = &defName{w: p.expect(pythonscanner.Ident)}
	for p.at(pythonscanner.Period) {
		dot := p.next()
		e = &defAttr{value: e, dot: dot, attr: p.expect(pythonscanner.Ident)}
	}
	return e
}

func (p *parser) parseImport() defSmall {
	d := &defImport{kw: p.next()}
	for {
		a := &defImportAlias{name: p.parseDottedName()}
		if p.at(pythonscanner.As) {
			a.asW = p.next()
			a.alias = p.expect(pythonscanner.Ident)
		}
		if p.at(pythonscanner.Comma) {
			a.comma = p.next()
			d.names = append(d.names, a)
			continue
		}
		d.names = append(d.names, a)
		return d
	}
}

func (p *parser) parseImportFrom() defSmall {
	d := &defImportFrom{fromW: p.expect(pythonscanner.From)}
	for p.at(pythonscanner.Period, pythonscanner.Ellipsis) {
		d.dots = append(d.dots, p.next())
	}
	if p.at(pythonscanner.Ident) {
		d.module = p.parseDottedName()
	} else if len(d.dots) == 0 {
		p.fail(pythonscanner.Ident)
	}
	d.importW = p.expect(pythonscanner.Import)
	if p.at(pythonscanner.Mul) {
		d.starW = p.next()
		return d
	}
	if p.at(pythonscanner.Lparen) {
		d.lparen = p.next()
	}
	for {
		a := &defImportAlias{name: &defName{w: p.expect(pythonscanner.Ident)}}
		if p.at(pythonscanner.As) {
			a.asW = p.next()
			a.alias = p.expect(pythonscanner.Ident)
		}
		if p.at(pythonscanner.Comma) {
			a.comma = p.next()
			d.names = append(d.names, a)
			if d.lparen != nil && p.at(pythonscanner.Rparen) {
				break
			}
			continue
		}
		d.names = append(d.names, a)
		break
	}
	if d.lparen != nil {
		d.rparen = p.expect(pythonscanner.Rparen)
	}
	return d
}

// -- type alias

// atTypeAlias reports whether the soft keyword "type" begins a type alias
// statement here.
func (p *parser) atTypeAlias() bool {
	if !p.atIdent("type") {
		return false
	}
	if p.peek(1) != pythonscanner.Ident {
		return false
	}
	switch p.peek(2) {
	case pythonscanner.Assign, pythonscanner.Lbrack:
		return true
	}
	return false
}

func (p *parser) parseTypeAlias() defSmall {
	d := &defTypeAlias{typeW: p.next(), name: p.expect(pythonscanner.Ident)}
	if p.at(pythonscanner.Lbrack) {
		d.typeParams = p.parseTypeParams()
	}
	d.eq = p.expect(pythonscanner.Assign)
	d.value = p.parseTest()
	return d
}

func (p *parser) parseTypeParams() *defTypeParameters {
	d := &defTypeParameters{lbrack: p.expect(pythonscanner.Lbrack)}
	for !p.at(pythonscanner.Rbrack) {
		tp := &defTypeParam{}
		if p.at(pythonscanner.Mul, pythonscanner.Pow) {
			tp.star = p.next()
		}
		tp.name = p.expect(pythonscanner.Ident)
		if tp.star == nil && p.at(pythonscanner.Colon) {
			tp.colon = p.next()
			tp.bound = p.parseTest()
		}
		if p.at(pythonscanner.Assign) {
			tp.eq = p.next()
			tp.dflt = p.parseTest()
		}
		if p.at(pythonscanner.Comma) {
			tp.comma = p.next()
			d.params = append(d.params, tp)
			continue
		}
		d.params = append(d.params, tp)
		break
	}
	d.rbrack = p.expect(pythonscanner.Rbrack)
	return d
}

// -- suites

// parseSuite parses a compound statement body: the indented block after a
// newline, or small statements on the header line itself.
func (p *parser) parseSuite() defSuite {
	if p.at(pythonscanner.NewLine) {
		p.next()
		b := &defBlock{indentW: p.expect(pythonscanner.Indent)}
		for !p.at(pythonscanner.Dedent) {
			b.body = append(b.body, p.parseStatement())
		}
		b.dedentW = p.expect(pythonscanner.Dedent)
		return b
	}
	su := &defSimpleSuite{}
	su.smalls, su.nl = p.parseSmallStmts()
	return su
}

// -- compound statements

func (p *parser) parseIf(elif bool) *defIf {
	defer un(trace(p, "If"))
	d := &defIf{elif: elif, kw: p.next()}
	d.test = p.parseNamedTest()
	d.colon = p.expect(pythonscanner.Colon)
	d.suite = p.parseSuite()
	switch p.tok() {
	case pythonscanner.Elif:
		d.orelse = p.parseIf(true)
	case pythonscanner.Else:
		d.orelse = p.parseElse()
	}
	return d
}

func (p *parser) parseElse() *defElse {
	d := &defElse{kw: p.expect(pythonscanner.Else)}
	d.colon = p.expect(pythonscanner.Colon)
	d.suite = p.parseSuite()
	return d
}

func (p *parser) parseWhile() defStmt {
	defer un(trace(p, "While"))
	d := &defWhile{kw: p.next()}
	d.test = p.parseNamedTest()
	d.colon = p.expect(pythonscanner.Colon)
	d.suite = p.parseSuite()
	if p.at(pythonscanner.Else) {
		d.orelse = p.parseElse()
	}
	return d
}

func (p *parser) parseFor(async *pythonscanner.Word) defStmt {
	defer un(trace(p, "For"))
	d := &defFor{async: async, forW: p.expect(pythonscanner.For)}
	d.target = p.parseTargetList()
	d.inW = p.expect(pythonscanner.In)
	d.iter = p.parseTestListStarExpr()
	d.colon = p.expect(pythonscanner.Colon)
	d.suite = p.parseSuite()
	if p.at(pythonscanner.Else) {
		d.orelse = p.parseElse()
	}
	return d
}

func (p *parser) parseTry() defStmt {
	defer un(trace(p, "Try"))
	d := &defTry{kw: p.next()}
	d.colon = p.expect(pythonscanner.Colon)
	d.suite = p.parseSuite()
	for p.at(pythonscanner.Except) {
		h := &defExcept{kw: p.next()}
		if p.at(pythonscanner.Mul) {
			h.starW = p.next()
		}
		if p.atExprStart() {
			h.typ = p.parseTest()
			if p.at(pythonscanner.As) {
				h.asW = p.next()
				h.alias = p.expect(pythonscanner.Ident)
			}
		}
		h.colon = p.expect(pythonscanner.Colon)
		h.suite = p.parseSuite()
		d.handlers = append(d.handlers, h)
	}
	if p.at(pythonscanner.Else) {
		d.orelse = p.parseElse()
	}
	if p.at(pythonscanner.Finally) {
		f := &defFinally{kw: p.next()}
		f.colon = p.expect(pythonscanner.Colon)
		f.suite = p.parseSuite()
		d.finally = f
	}
	if len(d.handlers) == 0 && d.finally == nil {
		p.failMsg("try statement has neither except nor finally")
	}
	return d
}

// withParenItems reports whether the parenthesis opening here encloses the
// with statement's item list rather than a parenthesized expression: its
// matching close parenthesis must be followed directly by the colon.
func (p *parser) withParenItems() bool {
	if !p.at(pythonscanner.Lparen) {
		return false
	}
	depth := 0
	for i := p.pos; i < len(p.words); i++ {
		switch p.words[i].Token {
		case pythonscanner.Lparen, pythonscanner.Lbrack, pythonscanner.Lbrace:
			depth++
		case pythonscanner.Rparen, pythonscanner.Rbrack, pythonscanner.Rbrace:
			depth--
			if depth == 0 {
				return i+1 < len(p.words) && p.words[i+1].Token == pythonscanner.Colon
			}
		case pythonscanner.NewLine, pythonscanner.EOF:
			if depth == 0 {
				return false
			}
		}
	}
	return false
}

func (p *parser) parseWith(async *pythonscanner.Word) defStmt {
	defer un(trace(p, "With"))
	d := &defWith{async: async, withW: p.expect(pythonscanner.With)}
	if p.withParenItems() {
		d.lparen = p.next()
		for !p.at(pythonscanner.Rparen) {
			it := p.parseWithItem()
			if p.at(pythonscanner.Comma) {
				it.comma = p.next()
				d.items = append(d.items, it)
				continue
			}
			d.items = append(d.items, it)
			break
		}
		d.rparen = p.expect(pythonscanner.Rparen)
	} else {
		for {
			it := p.parseWithItem()
			if p.at(pythonscanner.Comma) {
				it.comma = p.next()
				d.items = append(d.items, it)
				continue
			}
			d.items = append(d.items, it)
			break
		}
	}
	d.colon = p.expect(pythonscanner.Colon)
	d.suite = p.parseSuite()
	return d
}

func (p *parser) parseWithItem() *defWithItem {
	it := &defWithItem{item: p.parseTest()}
	if p.at(pythonscanner.As) {
		it.asW = p.next()
		it.target = p.parseTarget()
	}
	return it
}

// -- definitions

func (p *parser) parseDecorated() defStmt {
	defer un(trace(p, "Decorated"))
	var decorators []*defDecorator
	for p.at(pythonscanner.At) {
		dec := &defDecorator{at: p.next(), expr: p.parseNamedTest()}
		dec.nl = p.expect(pythonscanner.NewLine)
		decorators = append(decorators, dec)
	}
	switch p.tok() {
	case pythonscanner.Def:
		return p.parseFunctionDef(decorators, nil)
	case pythonscanner.Class:
		return p.parseClassDef(decorators)
	case pythonscanner.Async:
		if p.peek(1) == pythonscanner.Def {
			async := p.next()
			return p.parseFunctionDef(decorators, async)
		}
	}
	p.fail(pythonscanner.Def, pythonscanner.Class, pythonscanner.Async)
	return nil
}

func (p *parser) parseFunctionDef(decorators []*defDecorator, async *pythonscanner.Word) defStmt {
	defer un(trace(p, "FunctionDef"))
	d := &defFunctionDef{decorators: decorators, async: async, defW: p.expect(pythonscanner.Def)}
	d.name = p.expect(pythonscanner.Ident)
	if p.at(pythonscanner.Lbrack) {
		d.typeParams = p.parseTypeParams()
	}
	d.lparen = p.expect(pythonscanner.Lparen)
	d.params = p.parseParams(true, pythonscanner.Rparen)
	d.rparen = p.expect(pythonscanner.Rparen)
	if p.at(pythonscanner.Arrow) {
		d.arrow = p.next()
		d.returns = p.parseTest()
	}
	d.colon = p.expect(pythonscanner.Colon)
	d.suite = p.parseSuite()
	return d
}

func (p *parser) parseClassDef(decorators []*defDecorator) defStmt {
	defer un(trace(p, "ClassDef"))
	d := &defClassDef{decorators: decorators, classW: p.expect(pythonscanner.Class)}
	d.name = p.expect(pythonscanner.Ident)
	if p.at(pythonscanner.Lbrack) {
		d.typeParams = p.parseTypeParams()
	}
	if p.at(pythonscanner.Lparen) {
		d.lparen = p.next()
		d.args = p.parseArgs()
		d.rparen = p.expect(pythonscanner.Rparen)
	}
	d.colon = p.expect(pythonscanner.Colon)
	d.suite = p.parseSuite()
	return d
}
