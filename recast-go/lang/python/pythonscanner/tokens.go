package pythonscanner

import "strconv"

// Token is the set of lexical tokens for python source
type Token int

// The list of tokens.
const (
	Illegal Token = iota
	EOF
	NewLine
	Indent
	Dedent
	Comment
	LineContinuation

	literalBeg
	Ident
	Int
	Float
	Imag
	String
	literalEnd

	operatorBeg
	Add     // +
	Sub     // -
	Mul     // *
	Pow     // **
	Div     // /
	Truediv // //
	Pct     // %
	At      // @
	BitAnd  // &
	BitOr   // |
	BitXor  // ^
	BitNot  // ~
	BitLshift
	BitRshift

	Lt // <
	Gt // >
	Le // <=
	Ge // >=
	Eq // ==
	Ne // !=

	Assign // =
	Walrus // :=
	Arrow  // ->

	AddAssign
	SubAssign
	MulAssign
	PowAssign
	DivAssign
	TruedivAssign
	PctAssign
	AtAssign
	BitAndAssign
	BitOrAssign
	BitXorAssign
	BitLshiftAssign
	BitRshiftAssign

	Lparen
	Rparen
	Lbrack
	Rbrack
	Lbrace
	Rbrace
	Comma
	Colon
	Semicolon
	Period
	Ellipsis // ...
	operatorEnd

	keywordBeg
	And
	As
	Assert
	Async
	Await
	Break
	Class
	Continue
	Def
	Del
	Elif
	Else
	Except
	False
	Finally
	For
	From
	Global
	If
	Import
	In
	Is
	Lambda
	None
	NonLocal
	Not
	Or
	Pass
	Raise
	Return
	True
	Try
	While
	With
	Yield
	keywordEnd
)

var tokens = [...]string{
	Illegal:          "Illegal",
	EOF:              "EOF",
	NewLine:          "NewLine",
	Indent:           "Indent",
	Dedent:           "Dedent",
	Comment:          "Comment",
	LineContinuation: "LineContinuation",

	Ident:  "Ident",
	Int:    "Int",
	Float:  "Float",
	Imag:   "Imag",
	String: "String",

	Add:       "+",
	Sub:       "-",
	Mul:       "*",
	Pow:       "**",
	Div:       "/",
	Truediv:   "//",
	Pct:       "%",
	At:        "@",
	BitAnd:    "&",
	BitOr:     "|",
	BitXor:    "^",
	BitNot:    "~",
	BitLshift: "<<",
	BitRshift: ">>",

	Lt: "<",
	Gt: ">",
	Le: "<=",
	Ge: ">=",
	Eq: "==",
	Ne: "!=",

	Assign: "=",
	Walrus: ":=",
	Arrow:  "->",

	AddAssign:       "+=",
	SubAssign:       "-=",
	MulAssign:       "*=",
	PowAssign:       "**=",
	DivAssign:       "/=",
	TruedivAssign:   "//=",
	PctAssign:       "%=",
	AtAssign:        "@=",
	BitAndAssign:    "&=",
	BitOrAssign:     "|=",
	BitXorAssign:    "^=",
	BitLshiftAssign: "<<=",
	BitRshiftAssign: ">>=",

	Lparen:    "(",
	Rparen:    ")",
	Lbrack:    "[",
	Rbrack:    "]",
	Lbrace:    "{",
	Rbrace:    "}",
	Comma:     ",",
	Colon:     ":",
	Semicolon: ";",
	Period:    ".",
	Ellipsis:  "...",

	And:      "and",
	As:       "as",
	Assert:   "assert",
	Async:    "async",
	Await:    "await",
	Break:    "break",
	Class:    "class",
	Continue: "continue",
	Def:      "def",
	Del:      "del",
	Elif:     "elif",
	Else:     "else",
	Except:   "except",
	False:    "False",
	Finally:  "finally",
	For:      "for",
	From:     "from",
	Global:   "global",
	If:       "if",
	Import:   "import",
	In:       "in",
	Is:       "is",
	Lambda:   "lambda",
	None:     "None",
	NonLocal: "nonlocal",
	Not:      "not",
	Or:       "or",
	Pass:     "pass",
	Raise:    "raise",
	Return:   "return",
	True:     "True",
	Try:      "try",
	While:    "while",
	With:     "with",
	Yield:    "yield",
}

// String returns the string corresponding to the token tok.
// For operators and keywords the string is the actual token character
// sequence (e.g. for the token Add, the string is "+"). For all other
// tokens the string corresponds to the token constant name.
func (tok Token) String() string {
	s := ""
	if 0 <= tok && tok < Token(len(tokens)) {
		s = tokens[tok]
	}
	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}
	return s
}

// Keywords maps each python keyword to its token.
var Keywords map[string]Token

func init() {
	Keywords = make(map[string]Token)
	for tok := keywordBeg + 1; tok < keywordEnd; tok++ {
		Keywords[tokens[tok]] = tok
	}
}

// Lookup maps an identifier to its keyword token or to Ident if it is not a
// keyword. The soft keywords "match", "case" and "type" always map to Ident;
// resolving them is the parser's job.
func Lookup(ident string) Token {
	if tok, ok := Keywords[ident]; ok {
		return tok
	}
	return Ident
}

// IsLiteral returns true for tokens corresponding to identifiers and literals
func (tok Token) IsLiteral() bool {
	return literalBeg < tok && tok < literalEnd
}

// IsOperator returns true for tokens corresponding to operators and delimiters
func (tok Token) IsOperator() bool {
	return operatorBeg < tok && tok < operatorEnd
}

// IsKeyword returns true for tokens corresponding to keywords
func (tok Token) IsKeyword() bool {
	return keywordBeg < tok && tok < keywordEnd
}

// IsWhitespace returns true for the layout tokens synthesized by the lexer
func (tok Token) IsWhitespace() bool {
	switch tok {
	case NewLine, Indent, Dedent:
		return true
	}
	return false
}

// IsValidIdent returns true if name is a valid python identifier and not a
// keyword.
func IsValidIdent(name string) bool {
	if name == "" || Lookup(name) != Ident {
		return false
	}
	for i, ch := range name {
		if !IsLetter(ch) && (i == 0 || !IsDigit(ch)) {
			return false
		}
	}
	return true
}
