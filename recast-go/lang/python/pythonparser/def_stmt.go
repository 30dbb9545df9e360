package pythonparser

import (
	"fmt"
	"go/token"

	"github.com/recastdev/recast/recast-go/lang/python/pythoncst"
	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

func span(begin, end token.Pos) pythoncst.Span {
	return pythoncst.Span{Start: int(begin), End: int(end)}
}

// defSmall is a deflated small statement. Extent covers the statement's
// own tokens, excluding any semicolon.
type defSmall interface {
	inflateSmall(x *inflater) pythoncst.SmallStmt
	setExtent(begin, end token.Pos)
	setSemi(w *pythonscanner.Word)
}

type defSmallBase struct {
	used       bool
	semi       *pythonscanner.Word
	begin, end token.Pos
}

func (d *defSmallBase) setExtent(begin, end token.Pos) { d.begin, d.end = begin, end }
func (d *defSmallBase) setSemi(w *pythonscanner.Word)  { d.semi = w }

func (d *defSmallBase) use(kind string) {
	if d.used {
		panic(fmt.Sprintf("pythonparser: deflated %s inflated twice", kind))
	}
	d.used = true
}

// markIdent allocates the statement's NodeID and records its identifier
// span. It runs before any child is inflated.
func (d *defSmallBase) markIdent(x *inflater) pythoncst.NodeID {
	id := x.nextID()
	x.spans.SetIdent(id, span(d.begin, d.end))
	return id
}

func (d *defSmallBase) inflateSemi(x *inflater) *pythoncst.Semicolon {
	if d.semi == nil {
		return nil
	}
	return &pythoncst.Semicolon{
		WhitespaceBefore: x.wsBefore(d.semi),
		WhitespaceAfter:  x.wsAfter(d.semi),
	}
}

// defStmt is a deflated statement at block level.
type defStmt interface {
	inflateStmt(x *inflater) pythoncst.Stmt
	firstWord() *pythonscanner.Word
	endPos() token.Pos
}

type defStmtBase struct {
	used bool
}

func (d *defStmtBase) use(kind string) {
	if d.used {
		panic(fmt.Sprintf("pythonparser: deflated %s inflated twice", kind))
	}
	d.used = true
}

// stmtLead consumes the blank and comment lines preceding a statement,
// then its indentation. The indentation text is not stored: codegen
// reproduces it from the block structure.
func stmtLead(x *inflater, first *pythonscanner.Word) []pythoncst.EmptyLine {
	lead := x.emptyLines(first.WsBefore, false)
	x.indentWs(first.WsBefore)
	return lead
}

// -- suites

type defSuite interface {
	inflateSuite(x *inflater, colon *pythonscanner.Word) pythoncst.Suite
	end() token.Pos
}

// defSimpleSuite is a suite on the header line itself.
type defSimpleSuite struct {
	smalls []defSmall
	nl     *pythonscanner.Word
}

// end excludes the line terminator itself.
func (d *defSimpleSuite) end() token.Pos { return d.nl.Begin }

func (d *defSimpleSuite) inflateSuite(x *inflater, colon *pythonscanner.Word) pythoncst.Suite {
	su := &pythoncst.SimpleStatementSuite{LeadingWhitespace: x.wsAfter(colon)}
	for _, sm := range d.smalls {
		su.Body = append(su.Body, sm.inflateSmall(x))
	}
	su.TrailingWhitespace = x.trailingWs(d.nl.WsBefore)
	return su
}

// defBlock is an indented suite on the following lines.
type defBlock struct {
	indentW *pythonscanner.Word
	body    []defStmt
	dedentW *pythonscanner.Word
}

func (d *defBlock) end() token.Pos {
	return d.body[len(d.body)-1].endPos()
}

func (d *defBlock) inflateSuite(x *inflater, colon *pythonscanner.Word) pythoncst.Suite {
	b := &pythoncst.IndentedBlock{
		Header: x.trailingWs(colon.WsAfter),
		Indent: d.indentW.Literal,
	}
	x.pushIndent(d.indentW.Literal)
	for _, st := range d.body {
		b.Body = append(b.Body, st.inflateStmt(x))
	}
	b.Footer = x.footer(d.dedentW.WsBefore)
	x.popIndent()
	return b
}

// -- module

type defModule struct {
	defStmtBase
	body []defStmt
	eof  *pythonscanner.Word
}

func (dm *defModule) inflate(x *inflater) *pythoncst.Module {
	dm.use("Module")
	m := &pythoncst.Module{
		DefaultIndent:  "    ",
		DefaultNewline: x.defaultNewline,
	}
	if n := pythonscanner.BomLength(x.src); n > 0 {
		m.Bom = string(x.src[:n])
	}
	for i := range x.words {
		if x.words[i].Token == pythonscanner.Indent {
			m.DefaultIndent = x.words[i].Literal
			break
		}
	}
	firstCell := dm.eof.WsBefore
	if len(dm.body) > 0 {
		firstCell = dm.body[0].firstWord().WsBefore
	}
	m.Header = x.emptyLines(firstCell, len(dm.body) == 0)
	for _, st := range dm.body {
		m.Body = append(m.Body, st.inflateStmt(x))
	}
	m.Footer = x.emptyLines(dm.eof.WsBefore, true)
	if n := len(x.src); n > 0 {
		m.HasTrailingNewline = x.src[n-1] == '\n' || x.src[n-1] == '\r'
	}
	return m
}

// -- simple statement lines

type defSimpleLine struct {
	defStmtBase
	first  *pythonscanner.Word
	smalls []defSmall
	nl     *pythonscanner.Word
}

func (d *defSimpleLine) firstWord() *pythonscanner.Word { return d.first }

// endPos excludes the line terminator itself.
func (d *defSimpleLine) endPos() token.Pos { return d.nl.Begin }

func (d *defSimpleLine) inflateStmt(x *inflater) pythoncst.Stmt {
	d.use("SimpleStatementLine")
	l := &pythoncst.SimpleStatementLine{LeadingLines: stmtLead(x, d.first)}
	for _, sm := range d.smalls {
		l.Body = append(l.Body, sm.inflateSmall(x))
	}
	l.TrailingWhitespace = x.trailingWs(d.nl.WsBefore)
	return l
}

// -- small statements

type defPass struct{ defSmallBase }

func (d *defPass) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("Pass")
	n := &pythoncst.Pass{ID: d.markIdent(x)}
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defBreak struct{ defSmallBase }

func (d *defBreak) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("Break")
	n := &pythoncst.Break{ID: d.markIdent(x)}
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defContinue struct{ defSmallBase }

func (d *defContinue) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("Continue")
	n := &pythoncst.Continue{ID: d.markIdent(x)}
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defExprStmt struct {
	defSmallBase
	value defExpr
}

func (d *defExprStmt) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("ExprStmt")
	n := &pythoncst.ExprStmt{ID: d.markIdent(x)}
	n.Value = d.value.inflateExpr(x)
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defReturn struct {
	defSmallBase
	kw    *pythonscanner.Word
	value defExpr
}

func (d *defReturn) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("Return")
	n := &pythoncst.Return{ID: d.markIdent(x)}
	if d.value != nil {
		n.WhitespaceAfterReturn = x.wsAfter(d.kw)
		n.Value = d.value.inflateExpr(x)
	}
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defRaise struct {
	defSmallBase
	kw    *pythonscanner.Word
	exc   defExpr
	fromW *pythonscanner.Word
	cause defExpr
}

func (d *defRaise) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("Raise")
	n := &pythoncst.Raise{ID: d.markIdent(x)}
	if d.exc != nil {
		n.WhitespaceAfterRaise = x.wsAfter(d.kw)
		n.Exc = d.exc.inflateExpr(x)
		if d.fromW != nil {
			n.Cause = &pythoncst.RaiseFrom{
				WhitespaceBeforeFrom: x.wsBefore(d.fromW),
				WhitespaceAfterFrom:  x.wsAfter(d.fromW),
				Item:                 d.cause.inflateExpr(x),
			}
		}
	}
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defAssert struct {
	defSmallBase
	kw    *pythonscanner.Word
	test  defExpr
	comma *pythonscanner.Word
	msg   defExpr
}

func (d *defAssert) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("Assert")
	n := &pythoncst.Assert{ID: d.markIdent(x)}
	n.WhitespaceAfterAssert = x.wsAfter(d.kw)
	n.Test = d.test.inflateExpr(x)
	if d.msg != nil {
		n.Comma = inflateComma(x, d.comma)
		n.Msg = d.msg.inflateExpr(x)
	}
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defDel struct {
	defSmallBase
	kw     *pythonscanner.Word
	target defExpr
}

func (d *defDel) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("Del")
	n := &pythoncst.Del{ID: d.markIdent(x)}
	n.WhitespaceAfterDel = x.wsAfter(d.kw)
	n.Target = d.target.inflateExpr(x)
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defNameItem struct {
	name  *pythonscanner.Word
	comma *pythonscanner.Word
}

func inflateNameItems(x *inflater, items []*defNameItem) []*pythoncst.NameItem {
	var out []*pythoncst.NameItem
	for _, it := range items {
		out = append(out, &pythoncst.NameItem{
			Name:  inflateName(it.name),
			Comma: inflateComma(x, it.comma),
		})
	}
	return out
}

type defGlobal struct {
	defSmallBase
	kw    *pythonscanner.Word
	names []*defNameItem
}

func (d *defGlobal) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("Global")
	n := &pythoncst.Global{ID: d.markIdent(x)}
	n.WhitespaceAfterGlobal = x.wsAfter(d.kw)
	n.Names = inflateNameItems(x, d.names)
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defNonlocal struct {
	defSmallBase
	kw    *pythonscanner.Word
	names []*defNameItem
}

func (d *defNonlocal) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("Nonlocal")
	n := &pythoncst.Nonlocal{ID: d.markIdent(x)}
	n.WhitespaceAfterNonlocal = x.wsAfter(d.kw)
	n.Names = inflateNameItems(x, d.names)
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defImportAlias struct {
	name  defExpr
	asW   *pythonscanner.Word
	alias *pythonscanner.Word
	comma *pythonscanner.Word
}

func (a *defImportAlias) inflate(x *inflater) *pythoncst.ImportAlias {
	out := &pythoncst.ImportAlias{Name: a.name.inflateExpr(x)}
	if a.asW != nil {
		out.AsName = &pythoncst.AsName{
			WhitespaceBeforeAs: x.wsBefore(a.asW),
			WhitespaceAfterAs:  x.wsAfter(a.asW),
			Name:               inflateName(a.alias),
		}
	}
	out.Comma = inflateComma(x, a.comma)
	return out
}

type defImport struct {
	defSmallBase
	kw    *pythonscanner.Word
	names []*defImportAlias
}

func (d *defImport) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("Import")
	n := &pythoncst.Import{ID: d.markIdent(x)}
	n.WhitespaceAfterImport = x.wsAfter(d.kw)
	for _, a := range d.names {
		n.Names = append(n.Names, a.inflate(x))
	}
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defImportFrom struct {
	defSmallBase
	fromW   *pythonscanner.Word
	dots    []*pythonscanner.Word
	module  defExpr
	importW *pythonscanner.Word
	starW   *pythonscanner.Word
	lparen  *pythonscanner.Word
	names   []*defImportAlias
	rparen  *pythonscanner.Word
}

func (d *defImportFrom) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("ImportFrom")
	n := &pythoncst.ImportFrom{ID: d.markIdent(x)}
	n.WhitespaceAfterFrom = x.wsAfter(d.fromW)
	for i, w := range d.dots {
		// the gap after the final dot of a purely relative import is
		// emitted as WhitespaceBeforeImport, so it stays unparsed here
		withAfter := i < len(d.dots)-1 || d.module != nil
		if w.Token == pythonscanner.Ellipsis {
			// "..." lexes as one token but stands for three dots
			n.Relative = append(n.Relative,
				&pythoncst.Dot{WhitespaceBefore: x.wsBefore(w)},
				&pythoncst.Dot{})
			dot := &pythoncst.Dot{}
			if withAfter {
				dot.WhitespaceAfter = x.wsAfter(w)
			}
			n.Relative = append(n.Relative, dot)
			continue
		}
		dot := &pythoncst.Dot{WhitespaceBefore: x.wsBefore(w)}
		if withAfter {
			dot.WhitespaceAfter = x.wsAfter(w)
		}
		n.Relative = append(n.Relative, dot)
	}
	if d.module != nil {
		n.Module = d.module.inflateExpr(x)
	}
	n.WhitespaceBeforeImport = x.wsBefore(d.importW)
	n.WhitespaceAfterImport = x.wsAfter(d.importW)
	if d.starW != nil {
		n.Star = true
		n.Semicolon = d.inflateSemi(x)
		return n
	}
	if d.lparen != nil {
		n.LParen = &pythoncst.LeftParen{WhitespaceAfter: x.wsAfter(d.lparen)}
	}
	for _, a := range d.names {
		n.Names = append(n.Names, a.inflate(x))
	}
	if d.rparen != nil {
		n.RParen = &pythoncst.RightParen{WhitespaceBefore: x.wsBefore(d.rparen)}
	}
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defAssignTarget struct {
	target defExpr
	eq     *pythonscanner.Word
}

type defAssign struct {
	defSmallBase
	targets []*defAssignTarget
	value   defExpr
}

func (d *defAssign) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("Assign")
	n := &pythoncst.Assign{ID: d.markIdent(x)}
	for _, t := range d.targets {
		n.Targets = append(n.Targets, &pythoncst.AssignTarget{
			Target:                t.target.inflateExpr(x),
			WhitespaceBeforeEqual: x.wsBefore(t.eq),
			WhitespaceAfterEqual:  x.wsAfter(t.eq),
		})
	}
	n.Value = d.value.inflateExpr(x)
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defAnnAssign struct {
	defSmallBase
	target defExpr
	colon  *pythonscanner.Word
	ann    defExpr
	eq     *pythonscanner.Word
	value  defExpr
}

func (d *defAnnAssign) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("AnnAssign")
	n := &pythoncst.AnnAssign{ID: d.markIdent(x)}
	n.Target = d.target.inflateExpr(x)
	n.Annotation = &pythoncst.Annotation{
		WhitespaceBeforeIndicator: x.wsBefore(d.colon),
		WhitespaceAfterIndicator:  x.wsAfter(d.colon),
		Annotation:                d.ann.inflateExpr(x),
	}
	if d.value != nil {
		n.Equal = inflateEqual(x, d.eq)
		n.Value = d.value.inflateExpr(x)
	}
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defAugAssign struct {
	defSmallBase
	target defExpr
	op     *pythonscanner.Word
	value  defExpr
}

func (d *defAugAssign) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("AugAssign")
	n := &pythoncst.AugAssign{ID: d.markIdent(x)}
	n.Target = d.target.inflateExpr(x)
	n.Operator = &pythoncst.AugOp{
		Tok:              d.op.Token,
		WhitespaceBefore: x.wsBefore(d.op),
		WhitespaceAfter:  x.wsAfter(d.op),
	}
	n.Value = d.value.inflateExpr(x)
	n.Semicolon = d.inflateSemi(x)
	return n
}

type defTypeAlias struct {
	defSmallBase
	typeW      *pythonscanner.Word
	name       *pythonscanner.Word
	typeParams *defTypeParameters
	eq         *pythonscanner.Word
	value      defExpr
}

func (d *defTypeAlias) inflateSmall(x *inflater) pythoncst.SmallStmt {
	d.use("TypeAlias")
	n := &pythoncst.TypeAlias{ID: d.markIdent(x)}
	n.WhitespaceAfterType = x.wsAfter(d.typeW)
	n.Name = inflateName(d.name)
	n.WhitespaceAfterName = x.wsAfter(d.name)
	if d.typeParams != nil {
		n.TypeParameters = d.typeParams.inflate(x)
	}
	n.Equal = inflateEqual(x, d.eq)
	n.Value = d.value.inflateExpr(x)
	n.Semicolon = d.inflateSemi(x)
	return n
}

// -- type parameter lists

type defTypeParam struct {
	star  *pythonscanner.Word
	name  *pythonscanner.Word
	colon *pythonscanner.Word
	bound defExpr
	eq    *pythonscanner.Word
	dflt  defExpr
	comma *pythonscanner.Word
}

type defTypeParameters struct {
	lbrack *pythonscanner.Word
	params []*defTypeParam
	rbrack *pythonscanner.Word
}

func (d *defTypeParameters) inflate(x *inflater) *pythoncst.TypeParameters {
	t := &pythoncst.TypeParameters{
		Lbracket: &pythoncst.LeftSquareBracket{WhitespaceAfter: x.wsAfter(d.lbrack)},
	}
	for _, dp := range d.params {
		p := &pythoncst.TypeParam{}
		switch {
		case dp.star == nil:
			tv := &pythoncst.TypeVar{Name: inflateName(dp.name)}
			if dp.bound != nil {
				tv.Colon = inflateColon(x, dp.colon)
				tv.Bound = dp.bound.inflateExpr(x)
			}
			p.Param = tv
		case dp.star.Token == pythonscanner.Mul:
			p.Param = &pythoncst.TypeVarTuple{
				WhitespaceAfterStar: x.wsAfter(dp.star),
				Name:                inflateName(dp.name),
			}
		default:
			p.Param = &pythoncst.ParamSpec{
				WhitespaceAfterStars: x.wsAfter(dp.star),
				Name:                 inflateName(dp.name),
			}
		}
		if dp.dflt != nil {
			p.Equal = inflateEqual(x, dp.eq)
			p.Default = dp.dflt.inflateExpr(x)
		}
		p.Comma = inflateComma(x, dp.comma)
		t.Params = append(t.Params, p)
	}
	t.Rbracket = &pythoncst.RightSquareBracket{WhitespaceBefore: x.wsBefore(d.rbrack)}
	return t
}

// -- compound statements

type defIf struct {
	defStmtBase
	elif   bool
	kw     *pythonscanner.Word
	test   defExpr
	colon  *pythonscanner.Word
	suite  defSuite
	orelse defStmt // *defIf with elif set, *defElse, or nil
}

func (d *defIf) firstWord() *pythonscanner.Word { return d.kw }

func (d *defIf) endPos() token.Pos {
	if d.orelse != nil {
		return d.orelse.endPos()
	}
	return d.suite.end()
}

func (d *defIf) inflateStmt(x *inflater) pythoncst.Stmt {
	d.use("If")
	lead := stmtLead(x, d.kw)
	id := x.nextID()
	x.spans.SetLexical(id, span(d.kw.Begin, d.endPos()))
	x.spans.SetBranch(id, span(d.colon.End, d.suite.end()))
	n := &pythoncst.If{ID: id, LeadingLines: lead, Elif: d.elif}
	n.WhitespaceBeforeTest = x.wsAfter(d.kw)
	n.Test = d.test.inflateExpr(x)
	n.WhitespaceAfterTest = x.wsBefore(d.colon)
	n.Body = d.suite.inflateSuite(x, d.colon)
	if d.orelse != nil {
		n.Orelse = d.orelse.inflateStmt(x)
	}
	return n
}

type defElse struct {
	defStmtBase
	kw    *pythonscanner.Word
	colon *pythonscanner.Word
	suite defSuite
}

func (d *defElse) firstWord() *pythonscanner.Word { return d.kw }
func (d *defElse) endPos() token.Pos              { return d.suite.end() }

func (d *defElse) inflateStmt(x *inflater) pythoncst.Stmt {
	return d.inflateElse(x)
}

func (d *defElse) inflateElse(x *inflater) *pythoncst.Else {
	d.use("Else")
	lead := stmtLead(x, d.kw)
	id := x.nextID()
	x.spans.SetBranch(id, span(d.colon.End, d.suite.end()))
	n := &pythoncst.Else{ID: id, LeadingLines: lead}
	n.WhitespaceBeforeColon = x.wsAfter(d.kw)
	n.Body = d.suite.inflateSuite(x, d.colon)
	return n
}

type defWhile struct {
	defStmtBase
	kw     *pythonscanner.Word
	test   defExpr
	colon  *pythonscanner.Word
	suite  defSuite
	orelse *defElse
}

func (d *defWhile) firstWord() *pythonscanner.Word { return d.kw }

func (d *defWhile) endPos() token.Pos {
	if d.orelse != nil {
		return d.orelse.endPos()
	}
	return d.suite.end()
}

func (d *defWhile) inflateStmt(x *inflater) pythoncst.Stmt {
	d.use("While")
	lead := stmtLead(x, d.kw)
	id := x.nextID()
	x.spans.SetLexical(id, span(d.kw.Begin, d.endPos()))
	x.spans.SetBranch(id, span(d.colon.End, d.suite.end()))
	n := &pythoncst.While{ID: id, LeadingLines: lead}
	n.WhitespaceAfterWhile = x.wsAfter(d.kw)
	n.Test = d.test.inflateExpr(x)
	n.WhitespaceBeforeColon = x.wsBefore(d.colon)
	n.Body = d.suite.inflateSuite(x, d.colon)
	if d.orelse != nil {
		n.Orelse = d.orelse.inflateElse(x)
	}
	return n
}

type defFor struct {
	defStmtBase
	async  *pythonscanner.Word
	forW   *pythonscanner.Word
	target defExpr
	inW    *pythonscanner.Word
	iter   defExpr
	colon  *pythonscanner.Word
	suite  defSuite
	orelse *defElse
}

func (d *defFor) firstWord() *pythonscanner.Word {
	if d.async != nil {
		return d.async
	}
	return d.forW
}

func (d *defFor) endPos() token.Pos {
	if d.orelse != nil {
		return d.orelse.endPos()
	}
	return d.suite.end()
}

func (d *defFor) inflateStmt(x *inflater) pythoncst.Stmt {
	d.use("For")
	lead := stmtLead(x, d.firstWord())
	id := x.nextID()
	x.spans.SetLexical(id, span(d.firstWord().Begin, d.endPos()))
	x.spans.SetBranch(id, span(d.colon.End, d.suite.end()))
	n := &pythoncst.For{ID: id, LeadingLines: lead}
	n.Asynchronous = inflateAsync(x, d.async)
	n.WhitespaceAfterFor = x.wsAfter(d.forW)
	n.Target = d.target.inflateExpr(x)
	n.WhitespaceBeforeIn = x.wsBefore(d.inW)
	n.WhitespaceAfterIn = x.wsAfter(d.inW)
	n.Iter = d.iter.inflateExpr(x)
	n.WhitespaceBeforeColon = x.wsBefore(d.colon)
	n.Body = d.suite.inflateSuite(x, d.colon)
	if d.orelse != nil {
		n.Orelse = d.orelse.inflateElse(x)
	}
	return n
}

type defExcept struct {
	defStmtBase
	kw    *pythonscanner.Word
	starW *pythonscanner.Word
	typ   defExpr
	asW   *pythonscanner.Word
	alias *pythonscanner.Word
	colon *pythonscanner.Word
	suite defSuite
}

func (d *defExcept) inflate(x *inflater) *pythoncst.ExceptHandler {
	d.use("ExceptHandler")
	lead := stmtLead(x, d.kw)
	id := x.nextID()
	x.spans.SetBranch(id, span(d.colon.End, d.suite.end()))
	n := &pythoncst.ExceptHandler{ID: id, LeadingLines: lead}
	n.WhitespaceAfterExcept = x.wsAfter(d.kw)
	if d.starW != nil {
		n.Star = true
		if d.typ != nil {
			n.WhitespaceAfterStar = x.wsAfter(d.starW)
		}
	}
	if d.typ != nil {
		n.Type = d.typ.inflateExpr(x)
		if d.asW != nil {
			n.Name = &pythoncst.AsName{
				WhitespaceBeforeAs: x.wsBefore(d.asW),
				WhitespaceAfterAs:  x.wsAfter(d.asW),
				Name:               inflateName(d.alias),
			}
		}
	}
	n.WhitespaceBeforeColon = x.wsBefore(d.colon)
	n.Body = d.suite.inflateSuite(x, d.colon)
	return n
}

type defFinally struct {
	defStmtBase
	kw    *pythonscanner.Word
	colon *pythonscanner.Word
	suite defSuite
}

func (d *defFinally) inflate(x *inflater) *pythoncst.Finally {
	d.use("Finally")
	lead := stmtLead(x, d.kw)
	id := x.nextID()
	x.spans.SetBranch(id, span(d.colon.End, d.suite.end()))
	n := &pythoncst.Finally{ID: id, LeadingLines: lead}
	n.WhitespaceBeforeColon = x.wsAfter(d.kw)
	n.Body = d.suite.inflateSuite(x, d.colon)
	return n
}

type defTry struct {
	defStmtBase
	kw       *pythonscanner.Word
	colon    *pythonscanner.Word
	suite    defSuite
	handlers []*defExcept
	orelse   *defElse
	finally  *defFinally
}

func (d *defTry) firstWord() *pythonscanner.Word { return d.kw }

func (d *defTry) endPos() token.Pos {
	switch {
	case d.finally != nil:
		return d.finally.suite.end()
	case d.orelse != nil:
		return d.orelse.endPos()
	case len(d.handlers) > 0:
		return d.handlers[len(d.handlers)-1].suite.end()
	}
	return d.suite.end()
}

func (d *defTry) inflateStmt(x *inflater) pythoncst.Stmt {
	d.use("Try")
	lead := stmtLead(x, d.kw)
	id := x.nextID()
	x.spans.SetLexical(id, span(d.kw.Begin, d.endPos()))
	x.spans.SetBranch(id, span(d.colon.End, d.suite.end()))
	n := &pythoncst.Try{ID: id, LeadingLines: lead}
	n.WhitespaceBeforeColon = x.wsAfter(d.kw)
	n.Body = d.suite.inflateSuite(x, d.colon)
	for _, h := range d.handlers {
		n.Handlers = append(n.Handlers, h.inflate(x))
	}
	if d.orelse != nil {
		n.Orelse = d.orelse.inflateElse(x)
	}
	if d.finally != nil {
		n.Finalbody = d.finally.inflate(x)
	}
	return n
}

type defWithItem struct {
	item   defExpr
	asW    *pythonscanner.Word
	target defExpr
	comma  *pythonscanner.Word
}

type defWith struct {
	defStmtBase
	async  *pythonscanner.Word
	withW  *pythonscanner.Word
	lparen *pythonscanner.Word
	items  []*defWithItem
	rparen *pythonscanner.Word
	colon  *pythonscanner.Word
	suite  defSuite
}

func (d *defWith) firstWord() *pythonscanner.Word {
	if d.async != nil {
		return d.async
	}
	return d.withW
}

func (d *defWith) endPos() token.Pos { return d.suite.end() }

func (d *defWith) inflateStmt(x *inflater) pythoncst.Stmt {
	d.use("With")
	lead := stmtLead(x, d.firstWord())
	id := x.nextID()
	x.spans.SetLexical(id, span(d.firstWord().Begin, d.suite.end()))
	x.spans.SetBranch(id, span(d.colon.End, d.suite.end()))
	n := &pythoncst.With{ID: id, LeadingLines: lead}
	n.Asynchronous = inflateAsync(x, d.async)
	n.WhitespaceAfterWith = x.wsAfter(d.withW)
	if d.lparen != nil {
		n.LPar = &pythoncst.LeftParen{WhitespaceAfter: x.wsAfter(d.lparen)}
	}
	for _, it := range d.items {
		wi := &pythoncst.WithItem{Item: it.item.inflateExpr(x)}
		if it.asW != nil {
			wi.AsName = &pythoncst.AsName{
				WhitespaceBeforeAs: x.wsBefore(it.asW),
				WhitespaceAfterAs:  x.wsAfter(it.asW),
				Name:               it.target.inflateExpr(x),
			}
		}
		wi.Comma = inflateComma(x, it.comma)
		n.Items = append(n.Items, wi)
	}
	if d.rparen != nil {
		n.RPar = &pythoncst.RightParen{WhitespaceBefore: x.wsBefore(d.rparen)}
	}
	n.WhitespaceBeforeColon = x.wsBefore(d.colon)
	n.Body = d.suite.inflateSuite(x, d.colon)
	return n
}

// -- definitions

type defDecorator struct {
	at   *pythonscanner.Word
	expr defExpr
	nl   *pythonscanner.Word
}

func (d *defDecorator) inflate(x *inflater) *pythoncst.Decorator {
	lead := stmtLead(x, d.at)
	return &pythoncst.Decorator{
		LeadingLines:       lead,
		WhitespaceAfterAt:  x.wsAfter(d.at),
		Decorator:          d.expr.inflateExpr(x),
		TrailingWhitespace: x.trailingWs(d.nl.WsBefore),
	}
}

type defFunctionDef struct {
	defStmtBase
	decorators []*defDecorator
	async      *pythonscanner.Word
	defW       *pythonscanner.Word
	name       *pythonscanner.Word
	typeParams *defTypeParameters
	lparen     *pythonscanner.Word
	params     *defParameters
	rparen     *pythonscanner.Word
	arrow      *pythonscanner.Word
	returns    defExpr
	colon      *pythonscanner.Word
	suite      defSuite
}

func (d *defFunctionDef) firstWord() *pythonscanner.Word {
	if len(d.decorators) > 0 {
		return d.decorators[0].at
	}
	return d.headWord()
}

func (d *defFunctionDef) headWord() *pythonscanner.Word {
	if d.async != nil {
		return d.async
	}
	return d.defW
}

func (d *defFunctionDef) endPos() token.Pos { return d.suite.end() }

func (d *defFunctionDef) inflateStmt(x *inflater) pythoncst.Stmt {
	d.use("FunctionDef")
	lead := stmtLead(x, d.firstWord())
	id := x.nextID()
	x.spans.SetLexical(id, span(d.headWord().Begin, d.suite.end()))
	x.spans.SetDef(id, span(d.firstWord().Begin, d.suite.end()))
	x.spans.SetBranch(id, span(d.colon.End, d.suite.end()))
	n := &pythoncst.FunctionDef{ID: id, LeadingLines: lead}
	for _, dec := range d.decorators {
		n.Decorators = append(n.Decorators, dec.inflate(x))
	}
	if len(d.decorators) > 0 {
		n.LinesAfterDecorators = stmtLead(x, d.headWord())
	}
	n.Asynchronous = inflateAsync(x, d.async)
	n.WhitespaceAfterDef = x.wsAfter(d.defW)
	n.Name = inflateName(d.name)
	n.WhitespaceAfterName = x.wsAfter(d.name)
	if d.typeParams != nil {
		n.TypeParameters = d.typeParams.inflate(x)
		n.WhitespaceAfterTypeParameters = x.wsBefore(d.lparen)
	}
	n.WhitespaceBeforeParams = x.wsAfter(d.lparen)
	n.Params = d.params.inflate(x, d.rparen)
	if d.returns != nil {
		n.Returns = &pythoncst.Annotation{
			WhitespaceBeforeIndicator: x.wsBefore(d.arrow),
			WhitespaceAfterIndicator:  x.wsAfter(d.arrow),
			Annotation:                d.returns.inflateExpr(x),
		}
	}
	n.WhitespaceBeforeColon = x.wsBefore(d.colon)
	n.Body = d.suite.inflateSuite(x, d.colon)
	return n
}

type defClassDef struct {
	defStmtBase
	decorators []*defDecorator
	classW     *pythonscanner.Word
	name       *pythonscanner.Word
	typeParams *defTypeParameters
	lparen     *pythonscanner.Word
	args       []*defArg
	rparen     *pythonscanner.Word
	colon      *pythonscanner.Word
	suite      defSuite
}

func (d *defClassDef) firstWord() *pythonscanner.Word {
	if len(d.decorators) > 0 {
		return d.decorators[0].at
	}
	return d.classW
}

func (d *defClassDef) endPos() token.Pos { return d.suite.end() }

func (d *defClassDef) inflateStmt(x *inflater) pythoncst.Stmt {
	d.use("ClassDef")
	lead := stmtLead(x, d.firstWord())
	id := x.nextID()
	x.spans.SetLexical(id, span(d.classW.Begin, d.suite.end()))
	x.spans.SetDef(id, span(d.firstWord().Begin, d.suite.end()))
	x.spans.SetBranch(id, span(d.colon.End, d.suite.end()))
	n := &pythoncst.ClassDef{ID: id, LeadingLines: lead}
	for _, dec := range d.decorators {
		n.Decorators = append(n.Decorators, dec.inflate(x))
	}
	if len(d.decorators) > 0 {
		n.LinesAfterDecorators = stmtLead(x, d.classW)
	}
	n.WhitespaceAfterClass = x.wsAfter(d.classW)
	n.Name = inflateName(d.name)
	n.WhitespaceAfterName = x.wsAfter(d.name)
	if d.typeParams != nil {
		n.TypeParameters = d.typeParams.inflate(x)
		n.WhitespaceAfterTypeParameters = x.wsBefore(d.nextAfterTypeParams())
	}
	if d.lparen != nil {
		n.LPar = &pythoncst.LeftParen{WhitespaceAfter: x.wsAfter(d.lparen)}
		n.Args = inflateArgs(x, d.args, d.rparen)
		n.RPar = &pythoncst.RightParen{WhitespaceBefore: x.wsBefore(d.rparen)}
	}
	n.WhitespaceBeforeColon = x.wsBefore(d.colon)
	n.Body = d.suite.inflateSuite(x, d.colon)
	return n
}

func (d *defClassDef) nextAfterTypeParams() *pythonscanner.Word {
	if d.lparen != nil {
		return d.lparen
	}
	return d.colon
}
