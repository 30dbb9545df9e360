package pythonscanner

import (
	"fmt"
	"go/token"
)

// PosError is an error annotated with a byte offset into the source buffer.
type PosError struct {
	Pos token.Pos
	Msg string
}

// Error implements the error interface
func (e PosError) Error() string {
	return fmt.Sprintf("%d: %s", e.Pos, e.Msg)
}
