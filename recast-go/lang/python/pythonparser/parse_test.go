package pythonparser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recastdev/recast/recast-go/lang/python/pythoncst"
	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

func parseSrc(t *testing.T, src string) *ParsedModule {
	t.Helper()
	mod, err := ParseModule([]byte(src), DefaultOptions)
	require.NoError(t, err, "parse failed for %q", src)
	return mod
}

func firstSmall(t *testing.T, src string) pythoncst.SmallStmt {
	t.Helper()
	mod := parseSrc(t, src)
	require.NotEmpty(t, mod.Module.Body)
	line, ok := mod.Module.Body[0].(*pythoncst.SimpleStatementLine)
	require.True(t, ok, "statement is %T, not a simple line", mod.Module.Body[0])
	require.NotEmpty(t, line.Body)
	return line.Body[0]
}

func TestParse_Precedence(t *testing.T) {
	st := firstSmall(t, "x = a + b * c\n").(*pythoncst.Assign)
	sum := st.Value.(*pythoncst.BinaryOperation)
	assert.IsType(t, &pythoncst.Name{}, sum.Left)
	prod := sum.Right.(*pythoncst.BinaryOperation)
	assert.Equal(t, "b", prod.Left.(*pythoncst.Name).Value)
	assert.Equal(t, "c", prod.Right.(*pythoncst.Name).Value)
}

func TestParse_PowerRightAssociative(t *testing.T) {
	st := firstSmall(t, "x = a ** b ** c\n").(*pythoncst.Assign)
	outer := st.Value.(*pythoncst.BinaryOperation)
	assert.IsType(t, &pythoncst.Name{}, outer.Left)
	assert.IsType(t, &pythoncst.BinaryOperation{}, outer.Right)
}

func TestParse_ComparisonChain(t *testing.T) {
	st := firstSmall(t, "x = a < b <= c\n").(*pythoncst.Assign)
	cmp := st.Value.(*pythoncst.Comparison)
	assert.Len(t, cmp.Comparisons, 2)
}

func TestParse_KeywordArgument(t *testing.T) {
	st := firstSmall(t, "f(a, b=1, *rest, **kw)\n").(*pythoncst.ExprStmt)
	call := st.Value.(*pythoncst.Call)
	require.Len(t, call.Args, 4)
	assert.Nil(t, call.Args[0].Keyword)
	require.NotNil(t, call.Args[1].Keyword)
	assert.Equal(t, "b", call.Args[1].Keyword.Value)
	assert.Equal(t, "*", call.Args[2].Star)
	assert.Equal(t, "**", call.Args[3].Star)
}

func TestParse_ParamGroups(t *testing.T) {
	mod := parseSrc(t, "def f(a, /, b, *args, c, **kw): pass\n")
	fn := mod.Module.Body[0].(*pythoncst.FunctionDef)
	require.Len(t, fn.Params.PosonlyParams, 1)
	require.Len(t, fn.Params.Params, 1)
	require.NotNil(t, fn.Params.StarArg)
	require.Len(t, fn.Params.KwonlyParams, 1)
	require.NotNil(t, fn.Params.StarKwarg)
	assert.Equal(t, "a", fn.Params.PosonlyParams[0].Name.Value)
	assert.Equal(t, "c", fn.Params.KwonlyParams[0].Name.Value)
}

func TestParse_ElifChain(t *testing.T) {
	mod := parseSrc(t, "if a:\n    pass\nelif b:\n    pass\nelse:\n    pass\n")
	outer := mod.Module.Body[0].(*pythoncst.If)
	assert.False(t, outer.Elif)
	inner := outer.Orelse.(*pythoncst.If)
	assert.True(t, inner.Elif)
	assert.IsType(t, &pythoncst.Else{}, inner.Orelse)
}

func TestParse_SoftKeywordMatch(t *testing.T) {
	mod := parseSrc(t, "match x:\n    case 1:\n        pass\n")
	m := mod.Module.Body[0].(*pythoncst.Match)
	require.Len(t, m.Cases, 1)

	// ordinary uses of the name stay ordinary statements
	assert.IsType(t, &pythoncst.Assign{}, firstSmall(t, "match = 5\n"))
	assert.IsType(t, &pythoncst.ExprStmt{}, firstSmall(t, "match(x)\n"))
	assert.IsType(t, &pythoncst.Assign{}, firstSmall(t, "match[0] = 1\n"))
	assert.IsType(t, &pythoncst.ExprStmt{}, firstSmall(t, "match.group(1)\n"))
	assert.IsType(t, &pythoncst.Assign{}, firstSmall(t, "match, y = a, b\n"))

	// dict colons sit at bracket depth and do not end the subject
	mod = parseSrc(t, "match Point(x={1: 2}), y:\n    case 1:\n        pass\n")
	assert.IsType(t, &pythoncst.Match{}, mod.Module.Body[0])
}

func TestParse_SoftKeywordType(t *testing.T) {
	assert.IsType(t, &pythoncst.TypeAlias{}, firstSmall(t, "type X = int\n"))
	assert.IsType(t, &pythoncst.TypeAlias{}, firstSmall(t, "type X[T] = T\n"))
	assert.IsType(t, &pythoncst.Assign{}, firstSmall(t, "type = 5\n"))
	assert.IsType(t, &pythoncst.ExprStmt{}, firstSmall(t, "type(x)\n"))
}

func TestParse_RelativeImportDots(t *testing.T) {
	st := firstSmall(t, "from ...pkg import z\n").(*pythoncst.ImportFrom)
	// "..." lexes as a single token but counts as three dots
	assert.Len(t, st.Relative, 3)

	st = firstSmall(t, "from .. import y\n").(*pythoncst.ImportFrom)
	assert.Len(t, st.Relative, 2)
}

func TestParse_Errors(t *testing.T) {
	for _, src := range []string{
		"def f(:\n    pass\n",
		"x = \n",
		"x = )\n",
		"if a\n    pass\n",
		"try:\n    pass\n",
		"match x:\n    pass\n",
		"else:\n    pass\n",
		"x = 1 +\n",
		"import\n",
		"from import x\n",
	} {
		_, err := ParseModule([]byte(src), DefaultOptions)
		assert.Error(t, err, "expected a parse error for %q", src)
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := ParseModule([]byte("x = )\n"), Options{Label: "bad.py"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.py:")
}

func TestParse_Trace(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseModule([]byte("x = f(1)\n"), Options{Trace: true, TraceWriter: &buf})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Module")
	assert.Contains(t, buf.String(), "Atom")
}

func TestParse_LexErrorSurfaces(t *testing.T) {
	_, err := ParseModule([]byte("x = 'unterminated\n"), DefaultOptions)
	assert.Error(t, err)
}

func TestParseWords(t *testing.T) {
	src := []byte("x = 1\n")
	words, err := pythonscanner.Lex(src)
	require.NoError(t, err)
	mod, err := ParseWords(src, words, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, string(src), pythoncst.Codegen(mod.Module))
}

func TestParse_NewlineOption(t *testing.T) {
	mod, err := ParseModule([]byte("pass"), Options{Newline: "\r\n"})
	require.NoError(t, err)
	assert.Equal(t, "\r\n", mod.Module.DefaultNewline)

	// a terminator in the buffer overrides the hint
	mod, err = ParseModule([]byte("pass\n"), Options{Newline: "\r\n"})
	require.NoError(t, err)
	assert.Equal(t, "\n", mod.Module.DefaultNewline)
}

func TestParse_ParamDefaults(t *testing.T) {
	mod := parseSrc(t, "def f(a=1, b: int = 2):\n    pass\n")
	fn := mod.Module.Body[0].(*pythoncst.FunctionDef)
	params := fn.Params.Params
	require.Len(t, params, 2)
	require.NotNil(t, params[0].Equal)
	require.NotNil(t, params[0].Default)
	assert.Equal(t, "1", params[0].Default.(*pythoncst.Integer).Value)
	require.NotNil(t, params[1].Annotation)
	require.NotNil(t, params[1].Default)
}
