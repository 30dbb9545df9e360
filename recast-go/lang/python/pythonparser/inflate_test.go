package pythonparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

func deflate(t *testing.T, src string) (*defModule, []pythonscanner.Word) {
	t.Helper()
	words, err := pythonscanner.Lex([]byte(src))
	require.NoError(t, err)
	p := &parser{words: words}
	dm, err := p.parseTop()
	require.NoError(t, err)
	return dm, words
}

func TestInflate_ConsumedOnce(t *testing.T) {
	src := "x = 1\n"
	dm, words := deflate(t, src)

	dm.inflate(newInflater([]byte(src), words))
	assert.Panics(t, func() {
		dm.inflate(newInflater([]byte(src), words))
	})
}

func TestInflate_StatementConsumedOnce(t *testing.T) {
	src := "def f():\n    pass\n"
	dm, words := deflate(t, src)

	x := newInflater([]byte(src), words)
	st := dm.body[0]
	st.inflateStmt(x)
	assert.Panics(t, func() {
		st.inflateStmt(x)
	})
}

func TestInflate_NodeIDsDense(t *testing.T) {
	src := "x = 1\nif x:\n    y = 2\n"
	mod := parseSrc(t, src)

	ids := mod.Positions.IDs()
	require.NotEmpty(t, ids)
	for i, id := range ids {
		assert.EqualValues(t, i+1, id)
	}
}

func TestInflate_IndependentParsesShareNothing(t *testing.T) {
	src := "x = 1\n"
	a := parseSrc(t, src)
	b := parseSrc(t, src)

	// node numbering restarts for every parse
	assert.Equal(t, a.Positions.IDs(), b.Positions.IDs())
	assert.NotSame(t, a.Module, b.Module)
}
