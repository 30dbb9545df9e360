package pythonscope

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recastdev/recast/recast-go/lang/python/pythoncst"
	"github.com/recastdev/recast/recast-go/lang/python/pythonparser"
)

func collect(t *testing.T, src string) []*ScopeInfo {
	t.Helper()
	mod, err := pythonparser.ParseModule([]byte(src), pythonparser.DefaultOptions)
	require.NoError(t, err)
	return Collect(mod.Module, mod.Positions, []byte(src))
}

func TestCollect_FunctionScope(t *testing.T) {
	src := "def foo():\n    pass\n"
	expected := []*ScopeInfo{
		{
			ID:   "scope_0",
			Kind: Module,
			Span: &pythoncst.Span{Start: 0, End: len(src)},
		},
		{
			ID:     "scope_1",
			Kind:   Function,
			Name:   "foo",
			Parent: "scope_0",
			Span:   &pythoncst.Span{Start: 0, End: 19},
		},
	}
	scopes := collect(t, src)
	if diff := cmp.Diff(expected, scopes); diff != "" {
		t.Errorf("scopes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "def foo():\n    pass", src[scopes[1].Span.Start:scopes[1].Span.End])
}

func TestCollect_Comprehension(t *testing.T) {
	src := "x = [i for i in range(10)]\n"
	scopes := collect(t, src)
	require.Len(t, scopes, 2)
	comp := scopes[1]
	assert.Equal(t, Comprehension, comp.Kind)
	assert.Empty(t, comp.Name)
	assert.Equal(t, "scope_0", comp.Parent)
	require.NotNil(t, comp.Span)
	assert.Equal(t, "[", src[comp.Span.Start:comp.Span.End])
}

func TestCollect_Globals(t *testing.T) {
	src := "x = 1\ndef foo():\n    global x\n    x = 2\n"
	scopes := collect(t, src)
	require.Len(t, scopes, 2)
	assert.Empty(t, scopes[0].Globals)
	assert.Equal(t, []string{"x"}, scopes[1].Globals)
	assert.Empty(t, scopes[1].Nonlocals)
}

func TestCollect_Nonlocal(t *testing.T) {
	src := "def outer():\n    x = 1\n    def inner():\n        nonlocal x\n        x = 2\n"
	scopes := collect(t, src)
	require.Len(t, scopes, 3)
	assert.Equal(t, "outer", scopes[1].Name)
	assert.Equal(t, "inner", scopes[2].Name)
	assert.Equal(t, scopes[1].ID, scopes[2].Parent)
	assert.Empty(t, scopes[1].Nonlocals)
	assert.Equal(t, []string{"x"}, scopes[2].Nonlocals)
}

func TestCollect_Lambda(t *testing.T) {
	src := "f = lambda a: a\n"
	scopes := collect(t, src)
	require.Len(t, scopes, 2)
	assert.Equal(t, Lambda, scopes[1].Kind)
	require.NotNil(t, scopes[1].Span)
	assert.Equal(t, "lambda", src[scopes[1].Span.Start:scopes[1].Span.End])
}

func TestCollect_NestedScopes(t *testing.T) {
	src := "class C:\n" +
		"    def m(self):\n" +
		"        return [x for x in self.items]\n" +
		"\n" +
		"g = lambda: C()\n"
	scopes := collect(t, src)
	require.Len(t, scopes, 5)

	assert.Equal(t, Module, scopes[0].Kind)
	assert.Equal(t, Class, scopes[1].Kind)
	assert.Equal(t, "C", scopes[1].Name)
	assert.Equal(t, Function, scopes[2].Kind)
	assert.Equal(t, "m", scopes[2].Name)
	assert.Equal(t, Comprehension, scopes[3].Kind)
	assert.Equal(t, Lambda, scopes[4].Kind)

	assert.Equal(t, "scope_0", scopes[1].Parent)
	assert.Equal(t, "scope_1", scopes[2].Parent)
	assert.Equal(t, "scope_2", scopes[3].Parent)
	// the lambda hangs off the module, not the class
	assert.Equal(t, "scope_0", scopes[4].Parent)
}

func TestCollect_DeclaredNameOrder(t *testing.T) {
	src := "def f():\n    global a, b\n    global c\n"
	scopes := collect(t, src)
	require.Len(t, scopes, 2)
	assert.Equal(t, []string{"a", "b", "c"}, scopes[1].Globals)
}

func TestCollect_ClassSpanFromTable(t *testing.T) {
	src := "x = 1\n\n@decorated\nclass C:\n    pass\n"
	scopes := collect(t, src)
	require.Len(t, scopes, 2)
	cls := scopes[1]
	require.NotNil(t, cls.Span)
	// the lexical span starts at the class keyword, past the decorator
	assert.Equal(t, "class C:\n    pass", src[cls.Span.Start:cls.Span.End])
}

func TestCollect_WellFormed(t *testing.T) {
	src := "import os\n" +
		"\n" +
		"def area(r):\n" +
		"    pi = 3.14159\n" +
		"    return pi * r ** 2\n" +
		"\n" +
		"class Shape:\n" +
		"    sides = {n: n * 2 for n in range(4)}\n" +
		"\n" +
		"    def describe(self):\n" +
		"        names = (s.upper() for s in self.labels)\n" +
		"        return sorted(names, key=lambda s: len(s))\n"
	scopes := collect(t, src)
	require.NotEmpty(t, scopes)

	seen := map[string]bool{}
	for i, sc := range scopes {
		assert.Equal(t, fmt.Sprintf("scope_%d", i), sc.ID)
		if i == 0 {
			assert.Equal(t, Module, sc.Kind)
			assert.Empty(t, sc.Parent)
		} else {
			assert.True(t, seen[sc.Parent], "parent of %s must open earlier", sc.ID)
		}
		seen[sc.ID] = true
		if sc.Span != nil {
			assert.GreaterOrEqual(t, sc.Span.Start, 0)
			assert.LessOrEqual(t, sc.Span.End, len(src))
			assert.LessOrEqual(t, sc.Span.Start, sc.Span.End)
		}
	}
}

func TestCollect_HandBuiltTree(t *testing.T) {
	src := "def f():\n    pass\n"
	mod := &pythoncst.Module{
		Body: []pythoncst.Stmt{
			&pythoncst.FunctionDef{
				Name:   &pythoncst.Name{Value: "f"},
				Params: &pythoncst.Parameters{},
				Body: &pythoncst.IndentedBlock{Body: []pythoncst.Stmt{
					&pythoncst.SimpleStatementLine{Body: []pythoncst.SmallStmt{&pythoncst.Pass{}}},
				}},
			},
		},
	}
	scopes := Collect(mod, nil, []byte(src))
	require.Len(t, scopes, 2)
	fn := scopes[1]
	assert.Equal(t, "f", fn.Name)
	// without a position table the span falls back to the keyword itself
	require.NotNil(t, fn.Span)
	assert.Equal(t, "def", src[fn.Span.Start:fn.Span.End])
}
