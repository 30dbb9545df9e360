package pythonscope

import (
	"bytes"
	"fmt"

	"github.com/recastdev/recast/recast-go/lang/python/pythoncst"
)

// Kind classifies a lexical scope.
type Kind int

const (
	Module Kind = iota
	Class
	Function
	Lambda
	Comprehension
)

var kindNames = [...]string{
	Module:        "Module",
	Class:         "Class",
	Function:      "Function",
	Lambda:        "Lambda",
	Comprehension: "Comprehension",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ScopeInfo describes one lexical scope found in a module. Scopes are
// identified by the string "scope_N", where N counts scopes in the order
// they open during a preorder walk.
type ScopeInfo struct {
	ID   string
	Kind Kind
	// Name is the defined name for function and class scopes, and empty
	// for module, lambda, and comprehension scopes.
	Name string
	// Parent is the ID of the enclosing scope. It is empty exactly for
	// the module scope, which always comes first.
	Parent string
	// Span is the byte range of the scope in the source, when one could
	// be determined.
	Span *pythoncst.Span
	// Globals and Nonlocals are the names declared global or nonlocal
	// directly inside this scope, in declaration order.
	Globals   []string
	Nonlocals []string
}

// Collect walks the module and returns its lexical scopes in opening
// order. Function and class spans come from the position table recorded
// while parsing; lambda and comprehension expressions carry no recorded
// span, so their positions are approximated by scanning src forward for
// the introducing keyword or bracket.
func Collect(module *pythoncst.Module, positions *pythoncst.PositionTable, src []byte) []*ScopeInfo {
	c := &collector{
		positions: positions,
		src:       src,
		opened:    make(map[pythoncst.Node]bool),
	}
	pythoncst.Walk(c, module)
	return c.out
}

type collector struct {
	positions *pythoncst.PositionTable
	src       []byte
	cursor    int
	nextID    int
	stack     []*ScopeInfo
	out       []*ScopeInfo
	opened    map[pythoncst.Node]bool
}

func (c *collector) Visit(n pythoncst.Node) pythoncst.VisitResult {
	switch n := n.(type) {
	case *pythoncst.Module:
		c.open(n, Module, "", &pythoncst.Span{Start: 0, End: len(c.src)})
	case *pythoncst.FunctionDef:
		c.open(n, Function, n.Name.Value, c.lexicalSpan(n.ID, "def"))
	case *pythoncst.ClassDef:
		c.open(n, Class, n.Name.Value, c.lexicalSpan(n.ID, "class"))
	case *pythoncst.Lambda:
		c.open(n, Lambda, "", c.scanSpan("lambda"))
	case *pythoncst.ListComp:
		c.open(n, Comprehension, "", c.scanSpan("["))
	case *pythoncst.SetComp, *pythoncst.DictComp:
		c.open(n, Comprehension, "", c.scanSpan("{"))
	case *pythoncst.GeneratorExp:
		c.open(n, Comprehension, "", c.scanSpan("("))
	case *pythoncst.Global:
		top := c.top()
		for _, it := range n.Names {
			top.Globals = append(top.Globals, it.Name.Value)
		}
		return pythoncst.VisitSkipChildren
	case *pythoncst.Nonlocal:
		top := c.top()
		for _, it := range n.Names {
			top.Nonlocals = append(top.Nonlocals, it.Name.Value)
		}
		return pythoncst.VisitSkipChildren
	}
	return pythoncst.VisitContinue
}

func (c *collector) Leave(n pythoncst.Node) {
	if c.opened[n] {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

func (c *collector) top() *ScopeInfo {
	return c.stack[len(c.stack)-1]
}

func (c *collector) open(n pythoncst.Node, kind Kind, name string, sp *pythoncst.Span) {
	info := &ScopeInfo{
		ID:   fmt.Sprintf("scope_%d", c.nextID),
		Kind: kind,
		Name: name,
		Span: sp,
	}
	c.nextID++
	if len(c.stack) > 0 {
		info.Parent = c.top().ID
	}
	c.stack = append(c.stack, info)
	c.out = append(c.out, info)
	c.opened[n] = true
}

// lexicalSpan looks up the span recorded for a statement, falling back
// to a keyword scan for trees built by hand rather than by the parser.
func (c *collector) lexicalSpan(id pythoncst.NodeID, keyword string) *pythoncst.Span {
	if id != 0 && c.positions != nil {
		if sp := c.positions.Get(id); sp != nil && sp.Lexical != nil {
			if sp.Lexical.Start > c.cursor {
				c.cursor = sp.Lexical.Start
			}
			return sp.Lexical
		}
	}
	return c.scanSpan(keyword)
}

// scanSpan finds the next occurrence of sub at or after the cursor and
// moves the cursor past it. The result covers just the matched text; it
// can land inside a string literal that happens to contain sub, which is
// accepted as an approximation.
func (c *collector) scanSpan(sub string) *pythoncst.Span {
	if c.cursor >= len(c.src) {
		return nil
	}
	i := bytes.Index(c.src[c.cursor:], []byte(sub))
	if i < 0 {
		return nil
	}
	start := c.cursor + i
	c.cursor = start + len(sub)
	return &pythoncst.Span{Start: start, End: c.cursor}
}
