package pythoncst

// Expr is implemented by all expression nodes. Every expression carries its
// own enclosing parentheses so that redundant parenthesization survives a
// round trip.
type Expr interface {
	Node
	isExpr()
}

// Parens holds the parentheses enclosing an expression, outermost first.
// It is embedded in every expression type.
type Parens struct {
	LPar []*LeftParen
	RPar []*RightParen
}

func (p *Parens) isExpr() {}

func (p *Parens) open(s *codegenState) {
	for _, lp := range p.LPar {
		lp.codegen(s)
	}
}

func (p *Parens) close(s *codegenState) {
	for _, rp := range p.RPar {
		rp.codegen(s)
	}
}

// AddParens records a new enclosing pair of parentheses, outermost
// relative to any already present.
func (p *Parens) AddParens(lp *LeftParen, rp *RightParen) {
	p.LPar = append([]*LeftParen{lp}, p.LPar...)
	p.RPar = append(p.RPar, rp)
}

// Name is an identifier.
type Name struct {
	Parens
	Value string
}

func (e *Name) codegen(s *codegenState) {
	e.open(s)
	s.write(e.Value)
	e.close(s)
}

// Integer is an integer literal, stored exactly as written.
type Integer struct {
	Parens
	Value string
}

func (e *Integer) codegen(s *codegenState) {
	e.open(s)
	s.write(e.Value)
	e.close(s)
}

// Float is a floating point literal, stored exactly as written.
type Float struct {
	Parens
	Value string
}

func (e *Float) codegen(s *codegenState) {
	e.open(s)
	s.write(e.Value)
	e.close(s)
}

// Imaginary is an imaginary literal, stored exactly as written.
type Imaginary struct {
	Parens
	Value string
}

func (e *Imaginary) codegen(s *codegenState) {
	e.open(s)
	s.write(e.Value)
	e.close(s)
}

// SimpleString is a single string literal, including any prefix and the
// quotes. Formatted strings are stored here verbatim as well.
type SimpleString struct {
	Parens
	Value string
}

func (e *SimpleString) codegen(s *codegenState) {
	e.open(s)
	s.write(e.Value)
	e.close(s)
}

// ConcatenatedString is two adjacent string literals joined implicitly.
// Left is always a SimpleString; Right is a SimpleString or another
// ConcatenatedString, so a chain of literals nests to the right.
type ConcatenatedString struct {
	Parens
	Left              Expr
	WhitespaceBetween ParenthesizableWhitespace
	Right             Expr
}

func (e *ConcatenatedString) codegen(s *codegenState) {
	e.open(s)
	e.Left.codegen(s)
	s.parenWs(e.WhitespaceBetween, " ")
	e.Right.codegen(s)
	e.close(s)
}

// Ellipsis is the "..." literal.
type Ellipsis struct {
	Parens
}

func (e *Ellipsis) codegen(s *codegenState) {
	e.open(s)
	s.write("...")
	e.close(s)
}

// UnaryOperation applies a unary operator to an operand.
type UnaryOperation struct {
	Parens
	Operator   *UnaryOp
	Expression Expr
}

func (e *UnaryOperation) codegen(s *codegenState) {
	e.open(s)
	e.Operator.codegen(s)
	e.Expression.codegen(s)
	e.close(s)
}

// BinaryOperation applies an arithmetic, bitwise, or shift operator.
type BinaryOperation struct {
	Parens
	Left     Expr
	Operator *BinaryOp
	Right    Expr
}

func (e *BinaryOperation) codegen(s *codegenState) {
	e.open(s)
	e.Left.codegen(s)
	e.Operator.codegen(s)
	e.Right.codegen(s)
	e.close(s)
}

// BooleanOperation applies "and" or "or".
type BooleanOperation struct {
	Parens
	Left     Expr
	Operator *BooleanOp
	Right    Expr
}

func (e *BooleanOperation) codegen(s *codegenState) {
	e.open(s)
	e.Left.codegen(s)
	e.Operator.codegen(s)
	e.Right.codegen(s)
	e.close(s)
}

// ComparisonTarget is one operator/operand pair in a comparison chain.
type ComparisonTarget struct {
	Operator   *CompOp
	Comparator Expr
}

func (t *ComparisonTarget) codegen(s *codegenState) {
	t.Operator.codegen(s)
	t.Comparator.codegen(s)
}

// Comparison is a chain of one or more comparisons sharing a left operand,
// such as "a < b <= c".
type Comparison struct {
	Parens
	Left        Expr
	Comparisons []*ComparisonTarget
}

func (e *Comparison) codegen(s *codegenState) {
	e.open(s)
	e.Left.codegen(s)
	for _, t := range e.Comparisons {
		t.codegen(s)
	}
	e.close(s)
}

// Attribute is an attribute access "value.attr".
type Attribute struct {
	Parens
	Value Expr
	Dot   *Dot
	Attr  *Name
}

func (e *Attribute) codegen(s *codegenState) {
	e.open(s)
	e.Value.codegen(s)
	e.Dot.codegen(s)
	e.Attr.codegen(s)
	e.close(s)
}

// BaseSlice is the content of one subscript element: an Index or a Slice.
type BaseSlice interface {
	Node
	isSlice()
}

// Index is a plain subscript value, optionally starred (PEP 646).
type Index struct {
	Star                string
	WhitespaceAfterStar ParenthesizableWhitespace
	Value               Expr
}

func (i *Index) codegen(s *codegenState) {
	if i.Star != "" {
		s.write(i.Star)
		s.parenWs(i.WhitespaceAfterStar, "")
	}
	i.Value.codegen(s)
}

func (i *Index) isSlice() {}

// Slice is an extended subscript "lower:upper:step" where every part is
// optional.
type Slice struct {
	Lower       Expr
	FirstColon  *Colon
	Upper       Expr
	SecondColon *Colon
	Step        Expr
}

func (sl *Slice) codegen(s *codegenState) {
	if sl.Lower != nil {
		sl.Lower.codegen(s)
	}
	sl.FirstColon.codegen(s)
	if sl.Upper != nil {
		sl.Upper.codegen(s)
	}
	if sl.SecondColon != nil {
		sl.SecondColon.codegen(s)
		if sl.Step != nil {
			sl.Step.codegen(s)
		}
	}
}

func (sl *Slice) isSlice() {}

// SubscriptElement is one comma-separated element inside subscript
// brackets.
type SubscriptElement struct {
	Slice BaseSlice
	Comma *Comma
}

// Subscript is a subscript expression "value[...]".
type Subscript struct {
	Parens
	Value                Expr
	WhitespaceAfterValue ParenthesizableWhitespace
	Lbracket             *LeftSquareBracket
	Slice                []*SubscriptElement
	Rbracket             *RightSquareBracket
}

func (e *Subscript) codegen(s *codegenState) {
	e.open(s)
	e.Value.codegen(s)
	s.parenWs(e.WhitespaceAfterValue, "")
	e.Lbracket.codegen(s)
	for i, el := range e.Slice {
		el.Slice.codegen(s)
		if el.Comma != nil {
			el.Comma.codegen(s)
		} else if i < len(e.Slice)-1 {
			s.write(", ")
		}
	}
	e.Rbracket.codegen(s)
	e.close(s)
}

// Arg is a single call argument: positional, keyword, *args, or **kwargs.
type Arg struct {
	Value               Expr
	Keyword             *Name
	Equal               *AssignEqual
	Comma               *Comma
	Star                string
	WhitespaceAfterStar ParenthesizableWhitespace
	WhitespaceAfterArg  ParenthesizableWhitespace
}

func (a *Arg) codegen(s *codegenState) {
	if a.Star != "" {
		s.write(a.Star)
		s.parenWs(a.WhitespaceAfterStar, "")
	}
	if a.Keyword != nil {
		a.Keyword.codegen(s)
		if a.Equal != nil {
			a.Equal.codegen(s)
		} else {
			s.write("=")
		}
	}
	a.Value.codegen(s)
	s.parenWs(a.WhitespaceAfterArg, "")
}

// Call is a function call.
type Call struct {
	Parens
	Func                 Expr
	WhitespaceAfterFunc  ParenthesizableWhitespace
	WhitespaceBeforeArgs ParenthesizableWhitespace
	Args                 []*Arg
}

func (e *Call) codegen(s *codegenState) {
	e.open(s)
	e.Func.codegen(s)
	s.parenWs(e.WhitespaceAfterFunc, "")
	s.write("(")
	s.parenWs(e.WhitespaceBeforeArgs, "")
	for i, a := range e.Args {
		a.codegen(s)
		if a.Comma != nil {
			a.Comma.codegen(s)
		} else if i < len(e.Args)-1 {
			s.write(", ")
		}
	}
	s.write(")")
	e.close(s)
}

// BaseElement is one element of a sequence display: Element or
// StarredElement for lists, sets, and tuples; DictElement or
// StarredDictElement for dicts.
type BaseElement interface {
	Node
	codegenElement(s *codegenState, last bool)
}

// Element is a plain sequence element.
type Element struct {
	Value Expr
	Comma *Comma
}

func (e *Element) codegen(s *codegenState) {
	e.codegenElement(s, true)
}

func (e *Element) codegenElement(s *codegenState, last bool) {
	e.Value.codegen(s)
	if e.Comma != nil {
		e.Comma.codegen(s)
	} else if !last {
		s.write(", ")
	}
}

// StarredElement is a "*value" element in a sequence display or assignment
// target.
type StarredElement struct {
	Parens
	WhitespaceAfterStar ParenthesizableWhitespace
	Value               Expr
	Comma               *Comma
}

func (e *StarredElement) codegen(s *codegenState) {
	e.codegenElement(s, true)
}

func (e *StarredElement) codegenElement(s *codegenState, last bool) {
	e.open(s)
	s.write("*")
	s.parenWs(e.WhitespaceAfterStar, "")
	e.Value.codegen(s)
	e.close(s)
	if e.Comma != nil {
		e.Comma.codegen(s)
	} else if !last {
		s.write(", ")
	}
}

// DictElement is a "key: value" entry.
type DictElement struct {
	Key                   Expr
	WhitespaceBeforeColon ParenthesizableWhitespace
	WhitespaceAfterColon  ParenthesizableWhitespace
	Value                 Expr
	Comma                 *Comma
}

func (e *DictElement) codegen(s *codegenState) {
	e.codegenElement(s, true)
}

func (e *DictElement) codegenElement(s *codegenState, last bool) {
	e.Key.codegen(s)
	s.parenWs(e.WhitespaceBeforeColon, "")
	s.write(":")
	s.parenWs(e.WhitespaceAfterColon, " ")
	e.Value.codegen(s)
	if e.Comma != nil {
		e.Comma.codegen(s)
	} else if !last {
		s.write(", ")
	}
}

// StarredDictElement is a "**value" entry.
type StarredDictElement struct {
	WhitespaceAfterStars ParenthesizableWhitespace
	Value                Expr
	Comma                *Comma
}

func (e *StarredDictElement) codegen(s *codegenState) {
	e.codegenElement(s, true)
}

func (e *StarredDictElement) codegenElement(s *codegenState, last bool) {
	s.write("**")
	s.parenWs(e.WhitespaceAfterStars, "")
	e.Value.codegen(s)
	if e.Comma != nil {
		e.Comma.codegen(s)
	} else if !last {
		s.write(", ")
	}
}

func codegenElements(s *codegenState, elts []BaseElement) {
	for i, e := range elts {
		e.codegenElement(s, i == len(elts)-1)
	}
}

// Tuple is a tuple display. Bare tuples have no parentheses of their own;
// parenthesized tuples record them in the embedded Parens.
type Tuple struct {
	Parens
	Elements []BaseElement
}

func (e *Tuple) codegen(s *codegenState) {
	e.open(s)
	codegenElements(s, e.Elements)
	e.close(s)
}

// List is a list display.
type List struct {
	Parens
	Lbracket *LeftSquareBracket
	Elements []BaseElement
	Rbracket *RightSquareBracket
}

func (e *List) codegen(s *codegenState) {
	e.open(s)
	e.Lbracket.codegen(s)
	codegenElements(s, e.Elements)
	e.Rbracket.codegen(s)
	e.close(s)
}

// Set is a set display.
type Set struct {
	Parens
	Lbrace   *LeftCurlyBrace
	Elements []BaseElement
	Rbrace   *RightCurlyBrace
}

func (e *Set) codegen(s *codegenState) {
	e.open(s)
	e.Lbrace.codegen(s)
	codegenElements(s, e.Elements)
	e.Rbrace.codegen(s)
	e.close(s)
}

// Dict is a dict display.
type Dict struct {
	Parens
	Lbrace   *LeftCurlyBrace
	Elements []BaseElement
	Rbrace   *RightCurlyBrace
}

func (e *Dict) codegen(s *codegenState) {
	e.open(s)
	e.Lbrace.codegen(s)
	codegenElements(s, e.Elements)
	e.Rbrace.codegen(s)
	e.close(s)
}

// CompIf is an "if cond" filter clause of a comprehension.
type CompIf struct {
	WhitespaceBefore     ParenthesizableWhitespace
	WhitespaceBeforeTest ParenthesizableWhitespace
	Test                 Expr
}

func (c *CompIf) codegen(s *codegenState) {
	s.parenWs(c.WhitespaceBefore, " ")
	s.write("if")
	s.parenWs(c.WhitespaceBeforeTest, " ")
	c.Test.codegen(s)
}

// CompFor is a "for target in iter" clause of a comprehension, with its
// filters and any directly nested for clause.
type CompFor struct {
	WhitespaceBefore   ParenthesizableWhitespace
	Asynchronous       *Asynchronous
	WhitespaceAfterFor ParenthesizableWhitespace
	Target             Expr
	WhitespaceBeforeIn ParenthesizableWhitespace
	WhitespaceAfterIn  ParenthesizableWhitespace
	Iter               Expr
	Ifs                []*CompIf
	InnerFor           *CompFor
}

func (c *CompFor) codegen(s *codegenState) {
	s.parenWs(c.WhitespaceBefore, " ")
	if c.Asynchronous != nil {
		c.Asynchronous.codegen(s)
	}
	s.write("for")
	s.parenWs(c.WhitespaceAfterFor, " ")
	c.Target.codegen(s)
	s.parenWs(c.WhitespaceBeforeIn, " ")
	s.write("in")
	s.parenWs(c.WhitespaceAfterIn, " ")
	c.Iter.codegen(s)
	for _, f := range c.Ifs {
		f.codegen(s)
	}
	if c.InnerFor != nil {
		c.InnerFor.codegen(s)
	}
}

// ListComp is a list comprehension.
type ListComp struct {
	Parens
	Lbracket *LeftSquareBracket
	Elt      Expr
	For      *CompFor
	Rbracket *RightSquareBracket
}

func (e *ListComp) codegen(s *codegenState) {
	e.open(s)
	e.Lbracket.codegen(s)
	e.Elt.codegen(s)
	e.For.codegen(s)
	e.Rbracket.codegen(s)
	e.close(s)
}

// SetComp is a set comprehension.
type SetComp struct {
	Parens
	Lbrace *LeftCurlyBrace
	Elt    Expr
	For    *CompFor
	Rbrace *RightCurlyBrace
}

func (e *SetComp) codegen(s *codegenState) {
	e.open(s)
	e.Lbrace.codegen(s)
	e.Elt.codegen(s)
	e.For.codegen(s)
	e.Rbrace.codegen(s)
	e.close(s)
}

// DictComp is a dict comprehension.
type DictComp struct {
	Parens
	Lbrace                *LeftCurlyBrace
	Key                   Expr
	WhitespaceBeforeColon ParenthesizableWhitespace
	WhitespaceAfterColon  ParenthesizableWhitespace
	Value                 Expr
	For                   *CompFor
	Rbrace                *RightCurlyBrace
}

func (e *DictComp) codegen(s *codegenState) {
	e.open(s)
	e.Lbrace.codegen(s)
	e.Key.codegen(s)
	s.parenWs(e.WhitespaceBeforeColon, "")
	s.write(":")
	s.parenWs(e.WhitespaceAfterColon, " ")
	e.Value.codegen(s)
	e.For.codegen(s)
	e.Rbrace.codegen(s)
	e.close(s)
}

// GeneratorExp is a generator expression. Its parentheses, when present,
// live in the embedded Parens; they may be omitted when the expression is
// the sole argument of a call.
type GeneratorExp struct {
	Parens
	Elt Expr
	For *CompFor
}

func (e *GeneratorExp) codegen(s *codegenState) {
	e.open(s)
	e.Elt.codegen(s)
	e.For.codegen(s)
	e.close(s)
}

// Lambda is a lambda expression.
type Lambda struct {
	Parens
	WhitespaceAfterLambda ParenthesizableWhitespace
	Params                *Parameters
	Colon                 *Colon
	Body                  Expr
}

func (e *Lambda) codegen(s *codegenState) {
	e.open(s)
	s.write("lambda")
	if e.Params != nil && !e.Params.empty() {
		s.parenWs(e.WhitespaceAfterLambda, " ")
		e.Params.codegen(s)
	} else {
		s.parenWs(e.WhitespaceAfterLambda, "")
	}
	e.Colon.codegen(s)
	e.Body.codegen(s)
	e.close(s)
}

// IfExp is a conditional expression "body if test else orelse".
type IfExp struct {
	Parens
	Body                 Expr
	WhitespaceBeforeIf   ParenthesizableWhitespace
	WhitespaceAfterIf    ParenthesizableWhitespace
	Test                 Expr
	WhitespaceBeforeElse ParenthesizableWhitespace
	WhitespaceAfterElse  ParenthesizableWhitespace
	Orelse               Expr
}

func (e *IfExp) codegen(s *codegenState) {
	e.open(s)
	e.Body.codegen(s)
	s.parenWs(e.WhitespaceBeforeIf, " ")
	s.write("if")
	s.parenWs(e.WhitespaceAfterIf, " ")
	e.Test.codegen(s)
	s.parenWs(e.WhitespaceBeforeElse, " ")
	s.write("else")
	s.parenWs(e.WhitespaceAfterElse, " ")
	e.Orelse.codegen(s)
	e.close(s)
}

// Await is an "await" expression.
type Await struct {
	Parens
	WhitespaceAfterAwait ParenthesizableWhitespace
	Expression           Expr
}

func (e *Await) codegen(s *codegenState) {
	e.open(s)
	s.write("await")
	s.parenWs(e.WhitespaceAfterAwait, " ")
	e.Expression.codegen(s)
	e.close(s)
}

// From is the "from" part of a "yield from" expression.
type From struct {
	WhitespaceAfterFrom ParenthesizableWhitespace
}

// Yield is a yield expression, with or without a value, optionally
// delegating with "yield from".
type Yield struct {
	Parens
	WhitespaceAfterYield ParenthesizableWhitespace
	From                 *From
	Value                Expr
}

func (e *Yield) codegen(s *codegenState) {
	e.open(s)
	s.write("yield")
	if e.Value != nil {
		s.parenWs(e.WhitespaceAfterYield, " ")
		if e.From != nil {
			s.write("from")
			s.parenWs(e.From.WhitespaceAfterFrom, " ")
		}
		e.Value.codegen(s)
	} else {
		s.parenWs(e.WhitespaceAfterYield, "")
	}
	e.close(s)
}

// NamedExpr is an assignment expression "target := value".
type NamedExpr struct {
	Parens
	Target                 Expr
	WhitespaceBeforeWalrus ParenthesizableWhitespace
	WhitespaceAfterWalrus  ParenthesizableWhitespace
	Value                  Expr
}

func (e *NamedExpr) codegen(s *codegenState) {
	e.open(s)
	e.Target.codegen(s)
	s.parenWs(e.WhitespaceBeforeWalrus, " ")
	s.write(":=")
	s.parenWs(e.WhitespaceAfterWalrus, " ")
	e.Value.codegen(s)
	e.close(s)
}

// Param is a single function or lambda parameter. Star is "", "*", or "**";
// a bare "*" separator is a Param with Star "*" and a nil Name.
type Param struct {
	Star                 string
	WhitespaceAfterStar  ParenthesizableWhitespace
	Name                 *Name
	Annotation           *Annotation
	Equal                *AssignEqual
	Default              Expr
	Comma                *Comma
	WhitespaceAfterParam ParenthesizableWhitespace
}

func (p *Param) codegen(s *codegenState) {
	p.codegenParam(s, true)
}

// codegenParam is codegen with list position: a param that is not last and
// records no comma gets a synthesized ", ".
func (p *Param) codegenParam(s *codegenState, last bool) {
	if p.Star != "" {
		s.write(p.Star)
		s.parenWs(p.WhitespaceAfterStar, "")
	}
	if p.Name != nil {
		p.Name.codegen(s)
	}
	if p.Annotation != nil {
		p.Annotation.codegen(s)
	}
	if p.Default != nil {
		if p.Equal != nil {
			p.Equal.codegen(s)
		} else if p.Annotation != nil {
			s.write(" = ")
		} else {
			s.write("=")
		}
		p.Default.codegen(s)
	}
	if p.Comma != nil {
		p.Comma.codegen(s)
	} else if !last {
		s.write(", ")
	}
	s.parenWs(p.WhitespaceAfterParam, "")
}

// ParamSlash is the "/" positional-only marker.
type ParamSlash struct {
	WhitespaceAfter ParenthesizableWhitespace
	Comma           *Comma
}

func (p *ParamSlash) codegenParam(s *codegenState, last bool) {
	s.write("/")
	s.parenWs(p.WhitespaceAfter, "")
	if p.Comma != nil {
		p.Comma.codegen(s)
	} else if !last {
		s.write(", ")
	}
}

// Parameters is a full parameter list: positional-only parameters, the "/"
// marker, regular parameters, the star parameter or bare "*" separator,
// keyword-only parameters, and "**kwargs".
type Parameters struct {
	PosonlyParams []*Param
	PosonlyInd    *ParamSlash
	Params        []*Param
	StarArg       *Param
	KwonlyParams  []*Param
	StarKwarg     *Param
}

func (p *Parameters) empty() bool {
	return p == nil || (len(p.PosonlyParams) == 0 && p.PosonlyInd == nil &&
		len(p.Params) == 0 && p.StarArg == nil &&
		len(p.KwonlyParams) == 0 && p.StarKwarg == nil)
}

func (p *Parameters) codegen(s *codegenState) {
	n := len(p.PosonlyParams) + len(p.Params) + len(p.KwonlyParams)
	if p.PosonlyInd != nil {
		n++
	}
	if p.StarArg != nil {
		n++
	}
	if p.StarKwarg != nil {
		n++
	}
	i := 0
	emit := func(gen func(last bool)) {
		i++
		gen(i == n)
	}
	for _, pr := range p.PosonlyParams {
		pr := pr
		emit(func(last bool) { pr.codegenParam(s, last) })
	}
	if p.PosonlyInd != nil {
		emit(func(last bool) { p.PosonlyInd.codegenParam(s, last) })
	}
	for _, pr := range p.Params {
		pr := pr
		emit(func(last bool) { pr.codegenParam(s, last) })
	}
	if p.StarArg != nil {
		emit(func(last bool) { p.StarArg.codegenParam(s, last) })
	}
	for _, pr := range p.KwonlyParams {
		pr := pr
		emit(func(last bool) { pr.codegenParam(s, last) })
	}
	if p.StarKwarg != nil {
		emit(func(last bool) { p.StarKwarg.codegenParam(s, last) })
	}
}
