package pythonscanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexTokens(t *testing.T, src string) []Token {
	words, err := Lex([]byte(src))
	require.NoError(t, err)
	toks := make([]Token, 0, len(words))
	for _, w := range words {
		toks = append(toks, w.Token)
	}
	return toks
}

func TestLex_SimpleAssignment(t *testing.T) {
	assert.Equal(t,
		[]Token{Ident, Assign, Int, NewLine, EOF},
		lexTokens(t, "x = 1\n"))
}

func TestLex_EmptySource(t *testing.T) {
	assert.Equal(t, []Token{EOF}, lexTokens(t, ""))
}

func TestLex_IndentDedent(t *testing.T) {
	assert.Equal(t,
		[]Token{If, Ident, Colon, NewLine, Indent, Pass, NewLine, Dedent, EOF},
		lexTokens(t, "if x:\n    pass\n"))
}

func TestLex_NestedBlocks(t *testing.T) {
	src := "def f():\n    if x:\n        pass\n"
	assert.Equal(t,
		[]Token{
			Def, Ident, Lparen, Rparen, Colon, NewLine,
			Indent, If, Ident, Colon, NewLine,
			Indent, Pass, NewLine,
			Dedent, Dedent, EOF,
		},
		lexTokens(t, src))
}

func TestLex_BracketsSuppressLayout(t *testing.T) {
	// newlines inside brackets do not terminate the logical line
	assert.Equal(t,
		[]Token{Ident, Lparen, Int, Comma, Int, Rparen, NewLine, EOF},
		lexTokens(t, "f(1,\n  2)\n"))
}

func TestLex_BlankAndCommentLines(t *testing.T) {
	// blank lines and comment-only lines produce no layout tokens; their
	// bytes stay in the whitespace region between the surrounding tokens
	assert.Equal(t,
		[]Token{Ident, Assign, Int, NewLine, Ident, Assign, Int, NewLine, EOF},
		lexTokens(t, "x = 1\n\n# comment\ny = 2\n"))
}

func TestLex_LeadingCommentLines(t *testing.T) {
	assert.Equal(t,
		[]Token{Ident, Assign, Int, NewLine, EOF},
		lexTokens(t, "# header\n\nx = 1\n"))
}

func TestLex_LineContinuation(t *testing.T) {
	assert.Equal(t,
		[]Token{Ident, Assign, Int, Add, Int, NewLine, EOF},
		lexTokens(t, "x = 1 + \\\n    2\n"))
}

func TestLex_MissingTrailingNewline(t *testing.T) {
	words, err := Lex([]byte("x = 1"))
	require.NoError(t, err)
	require.Len(t, words, 5)
	nl := words[3]
	assert.Equal(t, NewLine, nl.Token)
	// synthesized at end of file, covering no bytes
	assert.Equal(t, nl.Begin, nl.End)
	assert.EqualValues(t, 5, nl.Begin)
}

func TestLex_IndentLiteralIsRelative(t *testing.T) {
	src := "if a:\n  if b:\n      pass\n"
	words, err := Lex([]byte(src))
	require.NoError(t, err)

	var indents []string
	for _, w := range words {
		if w.Token == Indent {
			indents = append(indents, w.Literal)
		}
	}
	// the inner block records only the indent added beyond the outer one
	assert.Equal(t, []string{"  ", "    "}, indents)
}

func TestLex_DedentPosition(t *testing.T) {
	src := "if a:\n    pass\n\ny\n"
	words, err := Lex([]byte(src))
	require.NoError(t, err)

	var dedent, y *Word
	for i := range words {
		switch {
		case words[i].Token == Dedent:
			dedent = &words[i]
		case words[i].Token == Ident && words[i].Literal == "y":
			y = &words[i]
		}
	}
	require.NotNil(t, dedent)
	require.NotNil(t, y)
	// a dedent is positioned at the token that closes the block, past the
	// blank lines before it
	assert.Equal(t, y.Begin, dedent.Begin)
}

func TestLex_WhitespaceCellsChain(t *testing.T) {
	words, err := Lex([]byte("x = 1\ny = 2\n"))
	require.NoError(t, err)

	var prev *Word
	for i := range words {
		w := &words[i]
		require.NotNil(t, w.WsBefore, "token %s has no before cell", w.Token)
		require.NotNil(t, w.WsAfter, "token %s has no after cell", w.Token)
		if w.Token.IsWhitespace() || w.Token == EOF {
			// layout tokens alias the cell they sit inside
			assert.Same(t, w.WsBefore, w.WsAfter)
			continue
		}
		if prev != nil {
			assert.Same(t, prev.WsAfter, w.WsBefore)
			assert.EqualValues(t, prev.End, w.WsBefore.Offset)
		}
		prev = w
	}
}

func TestLex_BomStartsFirstCell(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x = 1\n")...)
	require.Equal(t, 3, BomLength(src))

	words, err := Lex(src)
	require.NoError(t, err)
	assert.Equal(t, Ident, words[0].Token)
	assert.Equal(t, 3, words[0].WsBefore.Offset)
}

func TestLex_Operators(t *testing.T) {
	assert.Equal(t,
		[]Token{Ident, Walrus, Int, NewLine, EOF},
		lexTokens(t, "x := 1\n"))
	assert.Equal(t,
		[]Token{Def, Ident, Lparen, Rparen, Arrow, None, Colon, Pass, NewLine, EOF},
		lexTokens(t, "def f() -> None: pass\n"))
	assert.Equal(t,
		[]Token{Ident, Assign, Ellipsis, NewLine, EOF},
		lexTokens(t, "x = ...\n"))
	assert.Equal(t,
		[]Token{Ident, PowAssign, Int, NewLine, EOF},
		lexTokens(t, "x **= 2\n"))
}

func TestLex_Keywords(t *testing.T) {
	words, err := Lex([]byte("async def f():\n    await g()\n"))
	require.NoError(t, err)
	assert.Equal(t, Async, words[0].Token)
	assert.Equal(t, Def, words[1].Token)

	// keywords carry no literal: their spelling comes from the token
	assert.Equal(t, "", words[0].Literal)
	assert.Equal(t, "async", words[0].Token.String())
}

func TestLex_Strings(t *testing.T) {
	words, err := Lex([]byte(`x = rb"abc" f'{y}'` + "\n"))
	require.NoError(t, err)
	assert.Equal(t,
		[]Token{Ident, Assign, String, String, NewLine, EOF},
		lexTokens(t, `x = rb"abc" f'{y}'`+"\n"))
	assert.Equal(t, `rb"abc"`, words[2].Literal)
	assert.Equal(t, `f'{y}'`, words[3].Literal)
}

func TestLex_Numbers(t *testing.T) {
	words, err := Lex([]byte("a = 0x1f; b = 1_000.5e3; c = 2j\n"))
	require.NoError(t, err)

	var lits []string
	var toks []Token
	for _, w := range words {
		switch w.Token {
		case Int, Float, Imag:
			lits = append(lits, w.Literal)
			toks = append(toks, w.Token)
		}
	}
	assert.Equal(t, []string{"0x1f", "1_000.5e3", "2j"}, lits)
	assert.Equal(t, []Token{Int, Float, Imag}, toks)
}

func TestLex_UnterminatedBracket(t *testing.T) {
	_, err := Lex([]byte("f(1, 2\n"))
	assert.Error(t, err)
}

func TestLex_StatementKeywordInBrackets(t *testing.T) {
	_, err := Lex([]byte("f(pass)\n"))
	assert.Error(t, err)
}

func TestLex_BadDedent(t *testing.T) {
	_, err := Lex([]byte("if a:\n    pass\n  b\n"))
	assert.Error(t, err)
}

func TestLex_InconsistentIndentText(t *testing.T) {
	_, err := Lex([]byte("if a:\n\tpass\n        b\n"))
	assert.Error(t, err)
}

func TestLex_UnexpectedIndent(t *testing.T) {
	_, err := Lex([]byte("    x = 1\n"))
	assert.Error(t, err)
}

func TestLex_UnterminatedString(t *testing.T) {
	_, err := Lex([]byte("x = 'abc\n"))
	assert.Error(t, err)
}

func TestCount(t *testing.T) {
	src := []byte("x = 1\ny = 2\n")
	words, err := Lex(src)
	require.NoError(t, err)

	n, err := Count(src)
	require.NoError(t, err)
	assert.Equal(t, len(words), n)
}

func TestIsValidIdent(t *testing.T) {
	for _, good := range []string{"x", "_private", "name2", "übung"} {
		assert.True(t, IsValidIdent(good), good)
	}
	for _, bad := range []string{"", "2x", "for", "lambda", "a-b", "a b"} {
		assert.False(t, IsValidIdent(bad), bad)
	}
}

func TestLex_BomDoesNotIndentFirstLine(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x = 1\n")...)
	words, err := Lex(src)
	require.NoError(t, err)
	assert.Equal(t, Ident, words[0].Token)

	// real leading whitespace after the mark is still an indent error
	src = append([]byte{0xEF, 0xBB, 0xBF}, []byte("  x = 1\n")...)
	_, err = Lex(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected indent")
}
