package pythoncst

// VisitResult controls traversal after visiting a node.
type VisitResult int

const (
	// VisitContinue descends into the node's children.
	VisitContinue VisitResult = iota
	// VisitSkipChildren moves on to the next sibling without descending.
	VisitSkipChildren
	// VisitStop aborts the entire traversal.
	VisitStop
)

// Visitor is invoked for each node in source order.
type Visitor interface {
	Visit(n Node) VisitResult
}

// Leaver is an optional extension of Visitor: Leave is invoked after a
// node's children have been walked, and also when the children were
// skipped with VisitSkipChildren. It is not invoked once the traversal has
// been stopped.
type Leaver interface {
	Leave(n Node)
}

// Walk traverses the tree rooted at n in depth-first source order,
// invoking v for every syntax node. Punctuation and whitespace nodes are
// not visited. It reports whether the traversal ran to completion.
func Walk(v Visitor, n Node) bool {
	w := &walker{v: v}
	if l, ok := v.(Leaver); ok {
		w.l = l
	}
	w.walk(n)
	return !w.stopped
}

type walker struct {
	v       Visitor
	l       Leaver
	stopped bool
}

func (w *walker) walk(n Node) {
	if w.stopped || n == nil {
		return
	}
	switch w.v.Visit(n) {
	case VisitStop:
		w.stopped = true
		return
	case VisitSkipChildren:
		if w.l != nil {
			w.l.Leave(n)
		}
		return
	}
	w.children(n)
	if w.stopped {
		return
	}
	if w.l != nil {
		w.l.Leave(n)
	}
}

func (w *walker) walkExpr(e Expr) {
	if e != nil {
		w.walk(e)
	}
}

func (w *walker) walkStmts(body []Stmt) {
	for _, st := range body {
		w.walk(st)
	}
}

func (w *walker) walkSmallStmts(body []SmallStmt) {
	for _, st := range body {
		w.walk(st)
	}
}

func (w *walker) walkElements(elts []BaseElement) {
	for _, e := range elts {
		switch e := e.(type) {
		case *Element:
			w.walkExpr(e.Value)
		case *StarredElement:
			w.walk(e)
		case *DictElement:
			w.walkExpr(e.Key)
			w.walkExpr(e.Value)
		case *StarredDictElement:
			w.walkExpr(e.Value)
		}
	}
}

func (w *walker) walkParams(p *Parameters) {
	if p == nil {
		return
	}
	for _, pr := range p.PosonlyParams {
		w.walk(pr)
	}
	for _, pr := range p.Params {
		w.walk(pr)
	}
	if p.StarArg != nil {
		w.walk(p.StarArg)
	}
	for _, pr := range p.KwonlyParams {
		w.walk(pr)
	}
	if p.StarKwarg != nil {
		w.walk(p.StarKwarg)
	}
}

func (w *walker) walkArgs(args []*Arg) {
	for _, a := range args {
		w.walk(a)
	}
}

func (w *walker) walkAliases(names []*ImportAlias) {
	for _, a := range names {
		w.walk(a)
	}
}

func (w *walker) walkCompFor(c *CompFor) {
	w.walk(c)
}

func (w *walker) walkTypeParameters(t *TypeParameters) {
	if t == nil {
		return
	}
	for _, p := range t.Params {
		switch tv := p.Param.(type) {
		case *TypeVar:
			w.walk(tv.Name)
			w.walkExpr(tv.Bound)
		case *TypeVarTuple:
			w.walk(tv.Name)
		case *ParamSpec:
			w.walk(tv.Name)
		}
		w.walkExpr(p.Default)
	}
}

func (w *walker) children(n Node) {
	switch n := n.(type) {
	case *Module:
		w.walkStmts(n.Body)

	// suites
	case *SimpleStatementLine:
		w.walkSmallStmts(n.Body)
	case *SimpleStatementSuite:
		w.walkSmallStmts(n.Body)
	case *IndentedBlock:
		w.walkStmts(n.Body)

	// small statements
	case *Pass, *Break, *Continue:
	case *ExprStmt:
		w.walkExpr(n.Value)
	case *Return:
		w.walkExpr(n.Value)
	case *Raise:
		w.walkExpr(n.Exc)
		if n.Cause != nil {
			w.walkExpr(n.Cause.Item)
		}
	case *Assert:
		w.walkExpr(n.Test)
		w.walkExpr(n.Msg)
	case *Del:
		w.walkExpr(n.Target)
	case *Global:
		for _, it := range n.Names {
			w.walk(it.Name)
		}
	case *Nonlocal:
		for _, it := range n.Names {
			w.walk(it.Name)
		}
	case *Import:
		w.walkAliases(n.Names)
	case *ImportFrom:
		if n.Module != nil {
			w.walkExpr(n.Module)
		}
		w.walkAliases(n.Names)
	case *ImportAlias:
		w.walkExpr(n.Name)
		if n.AsName != nil {
			w.walkExpr(n.AsName.Name)
		}
	case *Assign:
		for _, t := range n.Targets {
			w.walkExpr(t.Target)
		}
		w.walkExpr(n.Value)
	case *AnnAssign:
		w.walkExpr(n.Target)
		w.walkExpr(n.Annotation.Annotation)
		w.walkExpr(n.Value)
	case *AugAssign:
		w.walkExpr(n.Target)
		w.walkExpr(n.Value)
	case *TypeAlias:
		w.walk(n.Name)
		w.walkTypeParameters(n.TypeParameters)
		w.walkExpr(n.Value)

	// compound statements
	case *FunctionDef:
		for _, d := range n.Decorators {
			w.walk(d)
		}
		w.walk(n.Name)
		w.walkTypeParameters(n.TypeParameters)
		w.walkParams(n.Params)
		if n.Returns != nil {
			w.walkExpr(n.Returns.Annotation)
		}
		w.walk(n.Body)
	case *ClassDef:
		for _, d := range n.Decorators {
			w.walk(d)
		}
		w.walk(n.Name)
		w.walkTypeParameters(n.TypeParameters)
		w.walkArgs(n.Args)
		w.walk(n.Body)
	case *Decorator:
		w.walkExpr(n.Decorator)
	case *If:
		w.walkExpr(n.Test)
		w.walk(n.Body)
		if n.Orelse != nil {
			w.walk(n.Orelse)
		}
	case *Else:
		w.walk(n.Body)
	case *While:
		w.walkExpr(n.Test)
		w.walk(n.Body)
		if n.Orelse != nil {
			w.walk(n.Orelse)
		}
	case *For:
		w.walkExpr(n.Target)
		w.walkExpr(n.Iter)
		w.walk(n.Body)
		if n.Orelse != nil {
			w.walk(n.Orelse)
		}
	case *Try:
		w.walk(n.Body)
		for _, h := range n.Handlers {
			w.walk(h)
		}
		if n.Orelse != nil {
			w.walk(n.Orelse)
		}
		if n.Finalbody != nil {
			w.walk(n.Finalbody)
		}
	case *ExceptHandler:
		w.walkExpr(n.Type)
		if n.Name != nil {
			w.walkExpr(n.Name.Name)
		}
		w.walk(n.Body)
	case *Finally:
		w.walk(n.Body)
	case *With:
		for _, it := range n.Items {
			w.walk(it)
		}
		w.walk(n.Body)
	case *WithItem:
		w.walkExpr(n.Item)
		if n.AsName != nil {
			w.walkExpr(n.AsName.Name)
		}
	case *Match:
		w.walkExpr(n.Subject)
		for _, c := range n.Cases {
			w.walk(c)
		}
	case *MatchCase:
		w.walk(n.Pattern)
		w.walkExpr(n.Guard)
		w.walk(n.Body)

	// expressions
	case *Name, *Integer, *Float, *Imaginary, *SimpleString, *Ellipsis:
	case *ConcatenatedString:
		w.walkExpr(n.Left)
		w.walkExpr(n.Right)
	case *UnaryOperation:
		w.walkExpr(n.Expression)
	case *BinaryOperation:
		w.walkExpr(n.Left)
		w.walkExpr(n.Right)
	case *BooleanOperation:
		w.walkExpr(n.Left)
		w.walkExpr(n.Right)
	case *Comparison:
		w.walkExpr(n.Left)
		for _, t := range n.Comparisons {
			w.walkExpr(t.Comparator)
		}
	case *Attribute:
		w.walkExpr(n.Value)
		w.walk(n.Attr)
	case *Subscript:
		w.walkExpr(n.Value)
		for _, el := range n.Slice {
			switch sl := el.Slice.(type) {
			case *Index:
				w.walkExpr(sl.Value)
			case *Slice:
				w.walkExpr(sl.Lower)
				w.walkExpr(sl.Upper)
				w.walkExpr(sl.Step)
			}
		}
	case *Call:
		w.walkExpr(n.Func)
		w.walkArgs(n.Args)
	case *Arg:
		if n.Keyword != nil {
			w.walk(n.Keyword)
		}
		w.walkExpr(n.Value)
	case *Tuple:
		w.walkElements(n.Elements)
	case *List:
		w.walkElements(n.Elements)
	case *Set:
		w.walkElements(n.Elements)
	case *Dict:
		w.walkElements(n.Elements)
	case *StarredElement:
		w.walkExpr(n.Value)
	case *ListComp:
		w.walkExpr(n.Elt)
		w.walkCompFor(n.For)
	case *SetComp:
		w.walkExpr(n.Elt)
		w.walkCompFor(n.For)
	case *DictComp:
		w.walkExpr(n.Key)
		w.walkExpr(n.Value)
		w.walkCompFor(n.For)
	case *GeneratorExp:
		w.walkExpr(n.Elt)
		w.walkCompFor(n.For)
	case *CompFor:
		w.walkExpr(n.Target)
		w.walkExpr(n.Iter)
		for _, f := range n.Ifs {
			w.walk(f)
		}
		if n.InnerFor != nil {
			w.walk(n.InnerFor)
		}
	case *CompIf:
		w.walkExpr(n.Test)
	case *Lambda:
		w.walkParams(n.Params)
		w.walkExpr(n.Body)
	case *Param:
		if n.Name != nil {
			w.walk(n.Name)
		}
		if n.Annotation != nil {
			w.walkExpr(n.Annotation.Annotation)
		}
		w.walkExpr(n.Default)
	case *IfExp:
		w.walkExpr(n.Body)
		w.walkExpr(n.Test)
		w.walkExpr(n.Orelse)
	case *Await:
		w.walkExpr(n.Expression)
	case *Yield:
		w.walkExpr(n.Value)
	case *NamedExpr:
		w.walkExpr(n.Target)
		w.walkExpr(n.Value)

	// match patterns
	case *MatchValue:
		w.walkExpr(n.Value)
	case *MatchSingleton:
		w.walk(n.Value)
	case *MatchSequence:
		for _, it := range n.Items {
			switch it := it.(type) {
			case *MatchSequenceElement:
				w.walk(it.Value)
			case *MatchStar:
				if it.Name != nil {
					w.walk(it.Name)
				}
			}
		}
	case *MatchMapping:
		for _, e := range n.Elements {
			w.walkExpr(e.Key)
			w.walk(e.Pattern)
		}
		if n.Rest != nil {
			w.walk(n.Rest)
		}
	case *MatchClass:
		w.walkExpr(n.Cls)
		for _, e := range n.Patterns {
			w.walk(e.Value)
		}
		for _, e := range n.Kwds {
			w.walk(e.Key)
			w.walk(e.Pattern)
		}
	case *MatchAs:
		if n.Pattern != nil {
			w.walk(n.Pattern)
		}
		if n.Name != nil {
			w.walk(n.Name)
		}
	case *MatchOr:
		for _, e := range n.Patterns {
			w.walk(e.Pattern)
		}
	}
}
