package pythoncst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcVisitor adapts plain functions to the Visitor and Leaver interfaces.
type funcVisitor struct {
	visit func(n Node) VisitResult
	leave func(n Node)
}

func (v *funcVisitor) Visit(n Node) VisitResult { return v.visit(n) }
func (v *funcVisitor) Leave(n Node) {
	if v.leave != nil {
		v.leave(n)
	}
}

func walkModule() *Module {
	return &Module{
		Body: []Stmt{
			&SimpleStatementLine{Body: []SmallStmt{&Assign{
				Targets: []*AssignTarget{{Target: &Name{Value: "x"}}},
				Value:   &Integer{Value: "1"},
			}}},
			&FunctionDef{
				Name: &Name{Value: "f"},
				Params: &Parameters{
					Params: []*Param{{Name: &Name{Value: "a"}}},
				},
				Body: &IndentedBlock{Body: []Stmt{
					&SimpleStatementLine{Body: []SmallStmt{&Return{
						Value: &Name{Value: "a"},
					}}},
				}},
			},
		},
	}
}

func TestWalk_VisitsEveryNode(t *testing.T) {
	var names []string
	done := Walk(&funcVisitor{
		visit: func(n Node) VisitResult {
			if name, ok := n.(*Name); ok {
				names = append(names, name.Value)
			}
			return VisitContinue
		},
	}, walkModule())

	assert.True(t, done)
	assert.Equal(t, []string{"x", "f", "a", "a"}, names)
}

func TestWalk_SourceOrder(t *testing.T) {
	var kinds []string
	Walk(&funcVisitor{
		visit: func(n Node) VisitResult {
			switch n.(type) {
			case *Assign, *FunctionDef, *Return:
				kinds = append(kinds, describe(n))
			}
			return VisitContinue
		},
	}, walkModule())

	assert.Equal(t, []string{"Assign", "FunctionDef", "Return"}, kinds)
}

func TestWalk_SkipChildren(t *testing.T) {
	var names []string
	var left []Node
	done := Walk(&funcVisitor{
		visit: func(n Node) VisitResult {
			if _, ok := n.(*FunctionDef); ok {
				return VisitSkipChildren
			}
			if name, ok := n.(*Name); ok {
				names = append(names, name.Value)
			}
			return VisitContinue
		},
		leave: func(n Node) { left = append(left, n) },
	}, walkModule())

	assert.True(t, done)
	// nothing under the function was visited
	assert.Equal(t, []string{"x"}, names)

	// but the skipped node itself is still left
	var leftFn bool
	for _, n := range left {
		if _, ok := n.(*FunctionDef); ok {
			leftFn = true
		}
	}
	assert.True(t, leftFn)
}

func TestWalk_Stop(t *testing.T) {
	var count int
	var left []Node
	done := Walk(&funcVisitor{
		visit: func(n Node) VisitResult {
			count++
			if _, ok := n.(*FunctionDef); ok {
				return VisitStop
			}
			return VisitContinue
		},
		leave: func(n Node) { left = append(left, n) },
	}, walkModule())

	assert.False(t, done)
	require.NotZero(t, count)
	// once stopped, no further leave calls are made
	for _, n := range left {
		_, isFn := n.(*FunctionDef)
		_, isMod := n.(*Module)
		assert.False(t, isFn || isMod)
	}
}

func TestWalk_LeaveMirrorsVisit(t *testing.T) {
	entered := make(map[Node]int)
	var depth int
	maxSeen := 0
	Walk(&funcVisitor{
		visit: func(n Node) VisitResult {
			entered[n]++
			depth++
			if depth > maxSeen {
				maxSeen = depth
			}
			return VisitContinue
		},
		leave: func(n Node) {
			entered[n]--
			depth--
		},
	}, walkModule())

	assert.Zero(t, depth)
	assert.Greater(t, maxSeen, 2)
	for n, c := range entered {
		assert.Zero(t, c, "unbalanced enter/leave for %T", n)
	}
}

func TestString_Describe(t *testing.T) {
	out := String(walkModule())
	assert.Contains(t, out, "FunctionDef")
	assert.Contains(t, out, "Name")
	// hand-built nodes carry no ids, so none are printed
	assert.NotContains(t, out, "#")

	withID := &FunctionDef{
		ID:     7,
		Name:   &Name{Value: "g"},
		Params: &Parameters{},
		Body: &IndentedBlock{Body: []Stmt{
			&SimpleStatementLine{Body: []SmallStmt{&Pass{}}},
		}},
	}
	assert.Contains(t, String(withID), "FunctionDef#7")
}

var (
	_ Node = (*Param)(nil)
	_ Node = (*ImportAlias)(nil)
	_ Node = (*WithItem)(nil)
)

func TestWalk_ImportAndWithItems(t *testing.T) {
	mod := &Module{Body: []Stmt{
		&SimpleStatementLine{Body: []SmallStmt{&Import{
			Names: []*ImportAlias{
				{Name: &Name{Value: "os"}},
				{Name: &Name{Value: "sys"}},
			},
		}}},
		&With{
			Items: []*WithItem{{Item: &Call{Func: &Name{Value: "open"}}}},
			Body: &IndentedBlock{Body: []Stmt{
				&SimpleStatementLine{Body: []SmallStmt{&Pass{}}},
			}},
		},
	}}

	var aliases, items int
	Walk(&funcVisitor{
		visit: func(n Node) VisitResult {
			switch n.(type) {
			case *ImportAlias:
				aliases++
			case *WithItem:
				items++
			}
			return VisitContinue
		},
	}, mod)

	assert.Equal(t, 2, aliases)
	assert.Equal(t, 1, items)
}
