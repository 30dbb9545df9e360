package pythonparser

import (
	"fmt"

	"github.com/recastdev/recast/recast-go/lang/python/pythoncst"
	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

// The deflated tree mirrors the inflated one but owns no whitespace: every
// node references the tokens it was built from, and all byte attribution
// is deferred to inflation. A deflated node may be inflated exactly once;
// a second attempt is a bug in the caller and panics.

// defExpr is a deflated expression.
type defExpr interface {
	inflateExpr(x *inflater) pythoncst.Expr
	parens() *defParens
}

// defParens holds the enclosing parenthesis tokens of a deflated
// expression, outermost first, plus the consumed flag shared by all
// expression kinds.
type defParens struct {
	used bool
	lpar []*pythonscanner.Word
	rpar []*pythonscanner.Word
}

func (d *defParens) parens() *defParens { return d }

func (d *defParens) addParen(lp, rp *pythonscanner.Word) {
	d.lpar = append([]*pythonscanner.Word{lp}, d.lpar...)
	d.rpar = append(d.rpar, rp)
}

func (d *defParens) use(kind string) {
	if d.used {
		panic(fmt.Sprintf("pythonparser: deflated %s inflated twice", kind))
	}
	d.used = true
}

func (d *defParens) inflateOpen(x *inflater) []*pythoncst.LeftParen {
	var lps []*pythoncst.LeftParen
	for _, w := range d.lpar {
		lps = append(lps, &pythoncst.LeftParen{WhitespaceAfter: x.wsAfter(w)})
	}
	return lps
}

func (d *defParens) inflateClose(x *inflater) []*pythoncst.RightParen {
	var rps []*pythoncst.RightParen
	for _, w := range d.rpar {
		rps = append(rps, &pythoncst.RightParen{WhitespaceBefore: x.wsBefore(w)})
	}
	return rps
}

// wordText returns the source text of a token: its literal when it has
// one, or its fixed spelling for keywords and operators.
func wordText(w *pythonscanner.Word) string {
	if w.Literal != "" {
		return w.Literal
	}
	return w.Token.String()
}

// -- tokens shared by several node kinds

func inflateComma(x *inflater, w *pythonscanner.Word) *pythoncst.Comma {
	if w == nil {
		return nil
	}
	return &pythoncst.Comma{WhitespaceBefore: x.wsBefore(w), WhitespaceAfter: x.wsAfter(w)}
}

func inflateColon(x *inflater, w *pythonscanner.Word) *pythoncst.Colon {
	return &pythoncst.Colon{WhitespaceBefore: x.wsBefore(w), WhitespaceAfter: x.wsAfter(w)}
}

func inflateDot(x *inflater, w *pythonscanner.Word) *pythoncst.Dot {
	return &pythoncst.Dot{WhitespaceBefore: x.wsBefore(w), WhitespaceAfter: x.wsAfter(w)}
}

func inflateEqual(x *inflater, w *pythonscanner.Word) *pythoncst.AssignEqual {
	if w == nil {
		return nil
	}
	return &pythoncst.AssignEqual{WhitespaceBefore: x.wsBefore(w), WhitespaceAfter: x.wsAfter(w)}
}

func inflateAsync(x *inflater, w *pythonscanner.Word) *pythoncst.Asynchronous {
	if w == nil {
		return nil
	}
	return &pythoncst.Asynchronous{WhitespaceAfter: x.simpleAfter(w)}
}

// -- atoms

type defName struct {
	defParens
	w *pythonscanner.Word
}

func (d *defName) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Name")
	lp := d.inflateOpen(x)
	n := &pythoncst.Name{Value: wordText(d.w)}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

// inflateName builds a bare Name from an identifier token with no
// surrounding parentheses, for positions where the grammar admits only a
// name.
func inflateName(w *pythonscanner.Word) *pythoncst.Name {
	return &pythoncst.Name{Value: wordText(w)}
}

type defNumber struct {
	defParens
	w *pythonscanner.Word
}

func (d *defNumber) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Number")
	lp := d.inflateOpen(x)
	var e pythoncst.Expr
	switch d.w.Token {
	case pythonscanner.Int:
		n := &pythoncst.Integer{Value: d.w.Literal}
		n.LPar, n.RPar = lp, d.inflateClose(x)
		e = n
	case pythonscanner.Float:
		n := &pythoncst.Float{Value: d.w.Literal}
		n.LPar, n.RPar = lp, d.inflateClose(x)
		e = n
	default:
		n := &pythoncst.Imaginary{Value: d.w.Literal}
		n.LPar, n.RPar = lp, d.inflateClose(x)
		e = n
	}
	return e
}

type defString struct {
	defParens
	w *pythonscanner.Word
}

func (d *defString) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("String")
	lp := d.inflateOpen(x)
	n := &pythoncst.SimpleString{Value: d.w.Literal}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

// defConcat is an implicit concatenation of adjacent string literals,
// nested to the right.
type defConcat struct {
	defParens
	left  *pythonscanner.Word
	right defExpr
}

func (d *defConcat) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("ConcatenatedString")
	lp := d.inflateOpen(x)
	n := &pythoncst.ConcatenatedString{
		Left:              &pythoncst.SimpleString{Value: d.left.Literal},
		WhitespaceBetween: x.wsAfter(d.left),
		Right:             d.right.inflateExpr(x),
	}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defEllipsis struct {
	defParens
	w *pythonscanner.Word
}

func (d *defEllipsis) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Ellipsis")
	lp := d.inflateOpen(x)
	n := &pythoncst.Ellipsis{}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

// -- operators

type defUnary struct {
	defParens
	op      *pythonscanner.Word
	operand defExpr
}

func (d *defUnary) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("UnaryOperation")
	lp := d.inflateOpen(x)
	n := &pythoncst.UnaryOperation{
		Operator:   &pythoncst.UnaryOp{Tok: d.op.Token, WhitespaceAfter: x.wsAfter(d.op)},
		Expression: d.operand.inflateExpr(x),
	}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defBinary struct {
	defParens
	left  defExpr
	op    *pythonscanner.Word
	right defExpr
}

func (d *defBinary) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("BinaryOperation")
	lp := d.inflateOpen(x)
	n := &pythoncst.BinaryOperation{Left: d.left.inflateExpr(x)}
	n.Operator = &pythoncst.BinaryOp{
		Tok:              d.op.Token,
		WhitespaceBefore: x.wsBefore(d.op),
		WhitespaceAfter:  x.wsAfter(d.op),
	}
	n.Right = d.right.inflateExpr(x)
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defBool struct {
	defParens
	left  defExpr
	op    *pythonscanner.Word
	right defExpr
}

func (d *defBool) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("BooleanOperation")
	lp := d.inflateOpen(x)
	n := &pythoncst.BooleanOperation{Left: d.left.inflateExpr(x)}
	n.Operator = &pythoncst.BooleanOp{
		Tok:              d.op.Token,
		WhitespaceBefore: x.wsBefore(d.op),
		WhitespaceAfter:  x.wsAfter(d.op),
	}
	n.Right = d.right.inflateExpr(x)
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

// defCompTarget is one comparison operator (possibly two words) and its
// right operand.
type defCompTarget struct {
	op1, op2   *pythonscanner.Word
	comparator defExpr
}

type defCompare struct {
	defParens
	left    defExpr
	targets []*defCompTarget
}

func (d *defCompare) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Comparison")
	lp := d.inflateOpen(x)
	n := &pythoncst.Comparison{Left: d.left.inflateExpr(x)}
	for _, t := range d.targets {
		op := &pythoncst.CompOp{
			First:            t.op1.Token,
			WhitespaceBefore: x.wsBefore(t.op1),
		}
		if t.op2 != nil {
			op.Second = t.op2.Token
			op.WhitespaceBetween = x.wsAfter(t.op1)
			op.WhitespaceAfter = x.wsAfter(t.op2)
		} else {
			op.WhitespaceAfter = x.wsAfter(t.op1)
		}
		n.Comparisons = append(n.Comparisons, &pythoncst.ComparisonTarget{
			Operator:   op,
			Comparator: t.comparator.inflateExpr(x),
		})
	}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defNamedExpr struct {
	defParens
	target defExpr
	walrus *pythonscanner.Word
	value  defExpr
}

func (d *defNamedExpr) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("NamedExpr")
	lp := d.inflateOpen(x)
	n := &pythoncst.NamedExpr{Target: d.target.inflateExpr(x)}
	n.WhitespaceBeforeWalrus = x.wsBefore(d.walrus)
	n.WhitespaceAfterWalrus = x.wsAfter(d.walrus)
	n.Value = d.value.inflateExpr(x)
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

// -- trailers

type defAttr struct {
	defParens
	value defExpr
	dot   *pythonscanner.Word
	attr  *pythonscanner.Word
}

func (d *defAttr) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Attribute")
	lp := d.inflateOpen(x)
	n := &pythoncst.Attribute{Value: d.value.inflateExpr(x)}
	n.Dot = inflateDot(x, d.dot)
	n.Attr = inflateName(d.attr)
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

// defSliceItem is the content of one subscript element.
type defSliceItem interface {
	inflateSlice(x *inflater) pythoncst.BaseSlice
}

type defIndex struct {
	star  *pythonscanner.Word
	value defExpr
}

func (d *defIndex) inflateSlice(x *inflater) pythoncst.BaseSlice {
	n := &pythoncst.Index{}
	if d.star != nil {
		n.Star = "*"
		n.WhitespaceAfterStar = x.wsAfter(d.star)
	}
	n.Value = d.value.inflateExpr(x)
	return n
}

type defSlice struct {
	lower  defExpr
	colon1 *pythonscanner.Word
	upper  defExpr
	colon2 *pythonscanner.Word
	step   defExpr
}

func (d *defSlice) inflateSlice(x *inflater) pythoncst.BaseSlice {
	n := &pythoncst.Slice{}
	if d.lower != nil {
		n.Lower = d.lower.inflateExpr(x)
	}
	n.FirstColon = inflateColon(x, d.colon1)
	if d.upper != nil {
		n.Upper = d.upper.inflateExpr(x)
	}
	if d.colon2 != nil {
		n.SecondColon = inflateColon(x, d.colon2)
		if d.step != nil {
			n.Step = d.step.inflateExpr(x)
		}
	}
	return n
}

type defSubscriptElem struct {
	slice defSliceItem
	comma *pythonscanner.Word
}

type defSubscript struct {
	defParens
	value  defExpr
	lbrack *pythonscanner.Word
	elems  []*defSubscriptElem
	rbrack *pythonscanner.Word
}

func (d *defSubscript) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Subscript")
	lp := d.inflateOpen(x)
	n := &pythoncst.Subscript{Value: d.value.inflateExpr(x)}
	n.WhitespaceAfterValue = x.wsBefore(d.lbrack)
	n.Lbracket = &pythoncst.LeftSquareBracket{WhitespaceAfter: x.wsAfter(d.lbrack)}
	for _, el := range d.elems {
		n.Slice = append(n.Slice, &pythoncst.SubscriptElement{
			Slice: el.slice.inflateSlice(x),
			Comma: inflateComma(x, el.comma),
		})
	}
	n.Rbracket = &pythoncst.RightSquareBracket{WhitespaceBefore: x.wsBefore(d.rbrack)}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defArg struct {
	star    *pythonscanner.Word
	keyword *pythonscanner.Word
	equal   *pythonscanner.Word
	value   defExpr
	comma   *pythonscanner.Word
}

func (d *defArg) inflate(x *inflater) *pythoncst.Arg {
	a := &pythoncst.Arg{}
	if d.star != nil {
		a.Star = wordText(d.star)
		a.WhitespaceAfterStar = x.wsAfter(d.star)
	}
	if d.keyword != nil {
		a.Keyword = inflateName(d.keyword)
		a.Equal = inflateEqual(x, d.equal)
	}
	a.Value = d.value.inflateExpr(x)
	a.Comma = inflateComma(x, d.comma)
	return a
}

// inflateArgs inflates a parenthesized argument list. The gap before the
// closing parenthesis belongs to the final argument when it has no
// trailing comma, to that comma when it does, and to the whitespace after
// the opening parenthesis when the list is empty.
func inflateArgs(x *inflater, args []*defArg, rparen *pythonscanner.Word) []*pythoncst.Arg {
	var out []*pythoncst.Arg
	for _, d := range args {
		out = append(out, d.inflate(x))
	}
	if len(out) > 0 && out[len(out)-1].Comma == nil {
		out[len(out)-1].WhitespaceAfterArg = x.wsBefore(rparen)
	}
	return out
}

type defCall struct {
	defParens
	fn     defExpr
	lparen *pythonscanner.Word
	args   []*defArg
	rparen *pythonscanner.Word
}

func (d *defCall) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Call")
	lp := d.inflateOpen(x)
	n := &pythoncst.Call{Func: d.fn.inflateExpr(x)}
	n.WhitespaceAfterFunc = x.wsBefore(d.lparen)
	n.WhitespaceBeforeArgs = x.wsAfter(d.lparen)
	n.Args = inflateArgs(x, d.args, d.rparen)
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

// -- displays

// defElement is one element of a sequence or dict display.
type defElement interface {
	inflateElement(x *inflater) pythoncst.BaseElement
	setComma(w *pythonscanner.Word)
	hasComma() bool
}

type defSimpleElement struct {
	value defExpr
	comma *pythonscanner.Word
}

func (d *defSimpleElement) inflateElement(x *inflater) pythoncst.BaseElement {
	return &pythoncst.Element{Value: d.value.inflateExpr(x), Comma: inflateComma(x, d.comma)}
}

func (d *defSimpleElement) setComma(w *pythonscanner.Word) { d.comma = w }
func (d *defSimpleElement) hasComma() bool                 { return d.comma != nil }

type defDictElement struct {
	key   defExpr
	colon *pythonscanner.Word
	value defExpr
	comma *pythonscanner.Word
}

func (d *defDictElement) inflateElement(x *inflater) pythoncst.BaseElement {
	n := &pythoncst.DictElement{Key: d.key.inflateExpr(x)}
	n.WhitespaceBeforeColon = x.wsBefore(d.colon)
	n.WhitespaceAfterColon = x.wsAfter(d.colon)
	n.Value = d.value.inflateExpr(x)
	n.Comma = inflateComma(x, d.comma)
	return n
}

func (d *defDictElement) setComma(w *pythonscanner.Word) { d.comma = w }
func (d *defDictElement) hasComma() bool                 { return d.comma != nil }

type defDoubleStarElement struct {
	stars *pythonscanner.Word
	value defExpr
	comma *pythonscanner.Word
}

func (d *defDoubleStarElement) inflateElement(x *inflater) pythoncst.BaseElement {
	n := &pythoncst.StarredDictElement{WhitespaceAfterStars: x.wsAfter(d.stars)}
	n.Value = d.value.inflateExpr(x)
	n.Comma = inflateComma(x, d.comma)
	return n
}

func (d *defDoubleStarElement) setComma(w *pythonscanner.Word) { d.comma = w }
func (d *defDoubleStarElement) hasComma() bool                 { return d.comma != nil }

// defStarred is a "*expr": it inflates to a StarredElement, which embeds
// into sequence displays and assignment target lists.
type defStarred struct {
	defParens
	star  *pythonscanner.Word
	value defExpr
}

func (d *defStarred) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("StarredElement")
	lp := d.inflateOpen(x)
	n := &pythoncst.StarredElement{WhitespaceAfterStar: x.wsAfter(d.star)}
	n.Value = d.value.inflateExpr(x)
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

func inflateElements(x *inflater, elems []defElement) []pythoncst.BaseElement {
	var out []pythoncst.BaseElement
	for _, d := range elems {
		out = append(out, d.inflateElement(x))
	}
	return out
}

type defTuple struct {
	defParens
	elems []defElement
}

func (d *defTuple) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Tuple")
	lp := d.inflateOpen(x)
	n := &pythoncst.Tuple{Elements: inflateElements(x, d.elems)}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defList struct {
	defParens
	lbrack *pythonscanner.Word
	elems  []defElement
	rbrack *pythonscanner.Word
}

func (d *defList) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("List")
	lp := d.inflateOpen(x)
	n := &pythoncst.List{}
	n.Lbracket = &pythoncst.LeftSquareBracket{WhitespaceAfter: x.wsAfter(d.lbrack)}
	n.Elements = inflateElements(x, d.elems)
	n.Rbracket = &pythoncst.RightSquareBracket{WhitespaceBefore: x.wsBefore(d.rbrack)}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defSet struct {
	defParens
	lbrace *pythonscanner.Word
	elems  []defElement
	rbrace *pythonscanner.Word
}

func (d *defSet) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Set")
	lp := d.inflateOpen(x)
	n := &pythoncst.Set{}
	n.Lbrace = &pythoncst.LeftCurlyBrace{WhitespaceAfter: x.wsAfter(d.lbrace)}
	n.Elements = inflateElements(x, d.elems)
	n.Rbrace = &pythoncst.RightCurlyBrace{WhitespaceBefore: x.wsBefore(d.rbrace)}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defDict struct {
	defParens
	lbrace *pythonscanner.Word
	elems  []defElement
	rbrace *pythonscanner.Word
}

func (d *defDict) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Dict")
	lp := d.inflateOpen(x)
	n := &pythoncst.Dict{}
	n.Lbrace = &pythoncst.LeftCurlyBrace{WhitespaceAfter: x.wsAfter(d.lbrace)}
	n.Elements = inflateElements(x, d.elems)
	n.Rbrace = &pythoncst.RightCurlyBrace{WhitespaceBefore: x.wsBefore(d.rbrace)}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

// -- comprehensions

type defCompIf struct {
	ifW  *pythonscanner.Word
	test defExpr
}

type defCompFor struct {
	async  *pythonscanner.Word
	forW   *pythonscanner.Word
	target defExpr
	inW    *pythonscanner.Word
	iter   defExpr
	ifs    []*defCompIf
	inner  *defCompFor
}

func (d *defCompFor) inflate(x *inflater) *pythoncst.CompFor {
	n := &pythoncst.CompFor{}
	if d.async != nil {
		n.WhitespaceBefore = x.wsBefore(d.async)
		n.Asynchronous = inflateAsync(x, d.async)
	} else {
		n.WhitespaceBefore = x.wsBefore(d.forW)
	}
	n.WhitespaceAfterFor = x.wsAfter(d.forW)
	n.Target = d.target.inflateExpr(x)
	n.WhitespaceBeforeIn = x.wsBefore(d.inW)
	n.WhitespaceAfterIn = x.wsAfter(d.inW)
	n.Iter = d.iter.inflateExpr(x)
	for _, f := range d.ifs {
		n.Ifs = append(n.Ifs, &pythoncst.CompIf{
			WhitespaceBefore:     x.wsBefore(f.ifW),
			WhitespaceBeforeTest: x.wsAfter(f.ifW),
			Test:                 f.test.inflateExpr(x),
		})
	}
	if d.inner != nil {
		n.InnerFor = d.inner.inflate(x)
	}
	return n
}

type defListComp struct {
	defParens
	lbrack  *pythonscanner.Word
	elt     defExpr
	compFor *defCompFor
	rbrack  *pythonscanner.Word
}

func (d *defListComp) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("ListComp")
	lp := d.inflateOpen(x)
	n := &pythoncst.ListComp{}
	n.Lbracket = &pythoncst.LeftSquareBracket{WhitespaceAfter: x.wsAfter(d.lbrack)}
	n.Elt = d.elt.inflateExpr(x)
	n.For = d.compFor.inflate(x)
	n.Rbracket = &pythoncst.RightSquareBracket{WhitespaceBefore: x.wsBefore(d.rbrack)}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defSetComp struct {
	defParens
	lbrace  *pythonscanner.Word
	elt     defExpr
	compFor *defCompFor
	rbrace  *pythonscanner.Word
}

func (d *defSetComp) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("SetComp")
	lp := d.inflateOpen(x)
	n := &pythoncst.SetComp{}
	n.Lbrace = &pythoncst.LeftCurlyBrace{WhitespaceAfter: x.wsAfter(d.lbrace)}
	n.Elt = d.elt.inflateExpr(x)
	n.For = d.compFor.inflate(x)
	n.Rbrace = &pythoncst.RightCurlyBrace{WhitespaceBefore: x.wsBefore(d.rbrace)}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defDictComp struct {
	defParens
	lbrace  *pythonscanner.Word
	key     defExpr
	colon   *pythonscanner.Word
	value   defExpr
	compFor *defCompFor
	rbrace  *pythonscanner.Word
}

func (d *defDictComp) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("DictComp")
	lp := d.inflateOpen(x)
	n := &pythoncst.DictComp{}
	n.Lbrace = &pythoncst.LeftCurlyBrace{WhitespaceAfter: x.wsAfter(d.lbrace)}
	n.Key = d.key.inflateExpr(x)
	n.WhitespaceBeforeColon = x.wsBefore(d.colon)
	n.WhitespaceAfterColon = x.wsAfter(d.colon)
	n.Value = d.value.inflateExpr(x)
	n.For = d.compFor.inflate(x)
	n.Rbrace = &pythoncst.RightCurlyBrace{WhitespaceBefore: x.wsBefore(d.rbrace)}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defGenExp struct {
	defParens
	elt     defExpr
	compFor *defCompFor
}

func (d *defGenExp) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("GeneratorExp")
	lp := d.inflateOpen(x)
	n := &pythoncst.GeneratorExp{Elt: d.elt.inflateExpr(x)}
	n.For = d.compFor.inflate(x)
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

// -- lambdas and parameters

type defParam struct {
	star       *pythonscanner.Word
	name       *pythonscanner.Word
	colon      *pythonscanner.Word
	annotation defExpr
	equal      *pythonscanner.Word
	dflt       defExpr
	comma      *pythonscanner.Word
}

func (d *defParam) inflate(x *inflater) *pythoncst.Param {
	p := &pythoncst.Param{}
	if d.star != nil {
		p.Star = wordText(d.star)
		p.WhitespaceAfterStar = x.wsAfter(d.star)
	}
	if d.name != nil {
		p.Name = inflateName(d.name)
	}
	if d.colon != nil {
		p.Annotation = &pythoncst.Annotation{
			WhitespaceBeforeIndicator: x.wsBefore(d.colon),
			WhitespaceAfterIndicator:  x.wsAfter(d.colon),
			Annotation:                d.annotation.inflateExpr(x),
		}
	}
	if d.dflt != nil {
		p.Equal = inflateEqual(x, d.equal)
		p.Default = d.dflt.inflateExpr(x)
	}
	p.Comma = inflateComma(x, d.comma)
	return p
}

type defParamSlash struct {
	slash *pythonscanner.Word
	comma *pythonscanner.Word
}

type defParameters struct {
	posonly  []*defParam
	slash    *defParamSlash
	params   []*defParam
	star     *defParam
	kwonly   []*defParam
	starstar *defParam
}

func (d *defParameters) empty() bool {
	return d == nil || (len(d.posonly) == 0 && d.slash == nil && len(d.params) == 0 &&
		d.star == nil && len(d.kwonly) == 0 && d.starstar == nil)
}

// inflate builds the parameter list. When rparen is non-nil the list is
// parenthesized, and the gap before the closing parenthesis belongs to the
// final parameter unless a trailing comma already claimed it. A lambda
// parameter list passes nil: the lambda's colon owns that gap.
func (d *defParameters) inflate(x *inflater, rparen *pythonscanner.Word) *pythoncst.Parameters {
	if d == nil {
		return nil
	}
	p := &pythoncst.Parameters{}
	var lastParam *pythoncst.Param
	var lastSlash *pythoncst.ParamSlash
	param := func(dp *defParam) *pythoncst.Param {
		pr := dp.inflate(x)
		lastParam, lastSlash = pr, nil
		return pr
	}
	for _, pr := range d.posonly {
		p.PosonlyParams = append(p.PosonlyParams, param(pr))
	}
	if d.slash != nil {
		p.PosonlyInd = &pythoncst.ParamSlash{Comma: inflateComma(x, d.slash.comma)}
		lastParam, lastSlash = nil, p.PosonlyInd
	}
	for _, pr := range d.params {
		p.Params = append(p.Params, param(pr))
	}
	if d.star != nil {
		p.StarArg = param(d.star)
	}
	for _, pr := range d.kwonly {
		p.KwonlyParams = append(p.KwonlyParams, param(pr))
	}
	if d.starstar != nil {
		p.StarKwarg = param(d.starstar)
	}
	if rparen != nil {
		if lastParam != nil && lastParam.Comma == nil {
			lastParam.WhitespaceAfterParam = x.wsBefore(rparen)
		} else if lastSlash != nil && lastSlash.Comma == nil {
			lastSlash.WhitespaceAfter = x.wsBefore(rparen)
		}
	}
	return p
}

type defLambda struct {
	defParens
	lambdaW *pythonscanner.Word
	params  *defParameters
	colon   *pythonscanner.Word
	body    defExpr
}

func (d *defLambda) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Lambda")
	lp := d.inflateOpen(x)
	n := &pythoncst.Lambda{WhitespaceAfterLambda: x.wsAfter(d.lambdaW)}
	n.Params = d.params.inflate(x, nil)
	n.Colon = inflateColon(x, d.colon)
	n.Body = d.body.inflateExpr(x)
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

// -- conditional, await, yield

type defIfExp struct {
	defParens
	body   defExpr
	ifW    *pythonscanner.Word
	test   defExpr
	elseW  *pythonscanner.Word
	orelse defExpr
}

func (d *defIfExp) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("IfExp")
	lp := d.inflateOpen(x)
	n := &pythoncst.IfExp{Body: d.body.inflateExpr(x)}
	n.WhitespaceBeforeIf = x.wsBefore(d.ifW)
	n.WhitespaceAfterIf = x.wsAfter(d.ifW)
	n.Test = d.test.inflateExpr(x)
	n.WhitespaceBeforeElse = x.wsBefore(d.elseW)
	n.WhitespaceAfterElse = x.wsAfter(d.elseW)
	n.Orelse = d.orelse.inflateExpr(x)
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defAwait struct {
	defParens
	w       *pythonscanner.Word
	operand defExpr
}

func (d *defAwait) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Await")
	lp := d.inflateOpen(x)
	n := &pythoncst.Await{WhitespaceAfterAwait: x.wsAfter(d.w)}
	n.Expression = d.operand.inflateExpr(x)
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}

type defYield struct {
	defParens
	yieldW *pythonscanner.Word
	fromW  *pythonscanner.Word
	value  defExpr
}

func (d *defYield) inflateExpr(x *inflater) pythoncst.Expr {
	d.use("Yield")
	lp := d.inflateOpen(x)
	n := &pythoncst.Yield{}
	if d.value != nil {
		n.WhitespaceAfterYield = x.wsAfter(d.yieldW)
		if d.fromW != nil {
			n.From = &pythoncst.From{WhitespaceAfterFrom: x.wsAfter(d.fromW)}
		}
		n.Value = d.value.inflateExpr(x)
	}
	n.LPar, n.RPar = lp, d.inflateClose(x)
	return n
}
