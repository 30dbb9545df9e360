package pythonparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recastdev/recast/recast-go/lang/python/pythoncst"
)

func TestSpans_SimpleStatements(t *testing.T) {
	src := "x = 1\ny = 2\n"
	mod := parseSrc(t, src)

	sp := mod.Positions.Get(1)
	require.NotNil(t, sp)
	require.NotNil(t, sp.Ident)
	assert.Equal(t, pythoncst.Span{Start: 0, End: 5}, *sp.Ident)
	assert.Equal(t, "x = 1", src[sp.Ident.Start:sp.Ident.End])

	sp = mod.Positions.Get(2)
	require.NotNil(t, sp)
	require.NotNil(t, sp.Ident)
	assert.Equal(t, "y = 2", src[sp.Ident.Start:sp.Ident.End])
}

func TestSpans_SemicolonExcluded(t *testing.T) {
	src := "a = 1; b = 2\n"
	mod := parseSrc(t, src)

	sp := mod.Positions.Get(1)
	require.NotNil(t, sp.Ident)
	assert.Equal(t, "a = 1", src[sp.Ident.Start:sp.Ident.End])

	sp = mod.Positions.Get(2)
	require.NotNil(t, sp.Ident)
	assert.Equal(t, "b = 2", src[sp.Ident.Start:sp.Ident.End])
}

func TestSpans_DecoratedFunction(t *testing.T) {
	src := "@d\ndef f(): pass"
	mod := parseSrc(t, src)

	sp := mod.Positions.Get(1)
	require.NotNil(t, sp)
	require.NotNil(t, sp.Lexical)
	require.NotNil(t, sp.Def)
	assert.Equal(t, 0, sp.Def.Start)
	assert.Equal(t, 3, sp.Lexical.Start)
	assert.Equal(t, sp.Lexical.End, sp.Def.End)
}

func TestSpans_UndecoratedDefEqualsLexical(t *testing.T) {
	mod := parseSrc(t, "def f():\n    pass\n")
	sp := mod.Positions.Get(1)
	require.NotNil(t, sp.Lexical)
	require.NotNil(t, sp.Def)
	assert.Equal(t, *sp.Lexical, *sp.Def)
}

func TestSpans_FunctionBody(t *testing.T) {
	src := "@deco\ndef f():\n    pass\n"
	mod := parseSrc(t, src)

	sp := mod.Positions.Get(1)
	require.NotNil(t, sp)
	assert.Equal(t, "def f():\n    pass", src[sp.Lexical.Start:sp.Lexical.End])
	assert.Equal(t, "@deco\ndef f():\n    pass", src[sp.Def.Start:sp.Def.End])
	require.NotNil(t, sp.Branch)
	assert.Equal(t, "\n    pass", src[sp.Branch.Start:sp.Branch.End])
}

func TestSpans_TrailingBlankLinesExcluded(t *testing.T) {
	src := "def f():\n    pass\n\n\nx = 1\n"
	mod := parseSrc(t, src)

	sp := mod.Positions.Get(1)
	require.NotNil(t, sp.Lexical)
	assert.Equal(t, "def f():\n    pass", src[sp.Lexical.Start:sp.Lexical.End])
}

func TestSpans_IfElse(t *testing.T) {
	src := "if a:\n    x = 1\nelse:\n    y = 2\n"
	mod := parseSrc(t, src)

	// preorder: if, assign x, else, assign y
	ifSp := mod.Positions.Get(1)
	require.NotNil(t, ifSp.Lexical)
	assert.Equal(t, src[:len(src)-1], src[ifSp.Lexical.Start:ifSp.Lexical.End])
	require.NotNil(t, ifSp.Branch)
	assert.Equal(t, "\n    x = 1", src[ifSp.Branch.Start:ifSp.Branch.End])

	xSp := mod.Positions.Get(2)
	require.NotNil(t, xSp.Ident)
	assert.Equal(t, "x = 1", src[xSp.Ident.Start:xSp.Ident.End])

	elseSp := mod.Positions.Get(3)
	assert.Nil(t, elseSp.Lexical)
	require.NotNil(t, elseSp.Branch)
	assert.Equal(t, "\n    y = 2", src[elseSp.Branch.Start:elseSp.Branch.End])

	ySp := mod.Positions.Get(4)
	require.NotNil(t, ySp.Ident)
	assert.Equal(t, "y = 2", src[ySp.Ident.Start:ySp.Ident.End])
}

func TestSpans_TryFinallyExtent(t *testing.T) {
	src := "try:\n    a()\nexcept E:\n    b()\nfinally:\n    c()\n"
	mod := parseSrc(t, src)

	sp := mod.Positions.Get(1)
	require.NotNil(t, sp.Lexical)
	// the try's lexical span runs through the end of the finally suite
	assert.Equal(t, src[:len(src)-1], src[sp.Lexical.Start:sp.Lexical.End])
	require.NotNil(t, sp.Branch)
	assert.Equal(t, "\n    a()", src[sp.Branch.Start:sp.Branch.End])
}

func TestSpans_MatchCase(t *testing.T) {
	src := "match x:\n    case 1:\n        pass\n"
	mod := parseSrc(t, src)

	matchSp := mod.Positions.Get(1)
	require.NotNil(t, matchSp.Lexical)
	assert.Equal(t, src[:len(src)-1], src[matchSp.Lexical.Start:matchSp.Lexical.End])

	caseSp := mod.Positions.Get(2)
	assert.Nil(t, caseSp.Lexical)
	require.NotNil(t, caseSp.Branch)
	assert.Equal(t, "\n        pass", src[caseSp.Branch.Start:caseSp.Branch.End])
}

func TestSpans_AsyncIncluded(t *testing.T) {
	src := "async def f():\n    pass\n"
	mod := parseSrc(t, src)

	sp := mod.Positions.Get(1)
	require.NotNil(t, sp.Lexical)
	assert.Equal(t, 0, sp.Lexical.Start)
}

func TestSpans_Invariants(t *testing.T) {
	src := `import os


@deco
class A:
    x = 1

    def m(self, a=1):
        if a:
            return a
        return None


try:
    A().m()
except Exception as e:
    pass
finally:
    del e
`
	mod := parseSrc(t, src)
	require.NotZero(t, mod.Positions.Len())

	for _, id := range mod.Positions.IDs() {
		sp := mod.Positions.Get(id)
		for _, s := range []*pythoncst.Span{sp.Ident, sp.Lexical, sp.Def, sp.Branch} {
			if s == nil {
				continue
			}
			assert.LessOrEqual(t, s.Start, s.End, "node %d", id)
			assert.GreaterOrEqual(t, s.Start, 0, "node %d", id)
			assert.LessOrEqual(t, s.End, len(src), "node %d", id)
		}
		if sp.Def != nil {
			require.NotNil(t, sp.Lexical, "node %d has a def span but no lexical span", id)
			assert.LessOrEqual(t, sp.Def.Start, sp.Lexical.Start, "node %d", id)
			assert.Equal(t, sp.Lexical.End, sp.Def.End, "node %d", id)
		}
		if sp.Branch != nil && sp.Lexical != nil {
			assert.GreaterOrEqual(t, sp.Branch.Start, sp.Lexical.Start, "node %d", id)
			assert.LessOrEqual(t, sp.Branch.End, sp.Lexical.End, "node %d", id)
		}
	}
}

func TestSpans_PreorderAssignment(t *testing.T) {
	src := "def f():\n    x = 1\n    y = 2\n"
	mod := parseSrc(t, src)

	// the function is numbered before the statements of its body
	fnSp := mod.Positions.Get(1)
	require.NotNil(t, fnSp.Lexical)

	xSp := mod.Positions.Get(2)
	require.NotNil(t, xSp.Ident)
	ySp := mod.Positions.Get(3)
	require.NotNil(t, ySp.Ident)
	assert.Less(t, xSp.Ident.Start, ySp.Ident.Start)
}
