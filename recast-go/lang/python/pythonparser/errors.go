package pythonparser

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/recastdev/recast/recast-go/lang/python/pythonscanner"
)

// ParseError describes the first point at which the token stream stopped
// matching the grammar. Parsing is all-or-nothing: there is no recovery.
type ParseError struct {
	Expected []pythonscanner.Token
	Found    pythonscanner.Token
	Pos      token.Pos
	Msg      string
}

func (e *ParseError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%d: %s", e.Pos, e.Msg)
	}
	var want []string
	for _, t := range e.Expected {
		want = append(want, t.String())
	}
	return fmt.Sprintf("%d: expected %s, found %s", e.Pos, strings.Join(want, " or "), e.Found)
}

// wrongTok carries a ParseError up through the recursive descent; it is
// recovered at the Parse boundary and never escapes the package.
type wrongTok struct {
	err *ParseError
}
