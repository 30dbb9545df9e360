package pythoncst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Hand-built trees record no whitespace; codegen falls back to canonical
// spacing, one statement per line, four-space indents.

func TestCodegen_HandBuiltAssign(t *testing.T) {
	m := &Module{
		Body: []Stmt{
			&SimpleStatementLine{Body: []SmallStmt{&Assign{
				Targets: []*AssignTarget{{Target: &Name{Value: "x"}}},
				Value:   &Integer{Value: "1"},
			}}},
		},
		HasTrailingNewline: true,
	}
	assert.Equal(t, "x = 1\n", Codegen(m))
}

func TestCodegen_HandBuiltBlock(t *testing.T) {
	m := &Module{
		Body: []Stmt{
			&If{
				Test: &Name{Value: "x"},
				Body: &IndentedBlock{Body: []Stmt{
					&SimpleStatementLine{Body: []SmallStmt{&Pass{}}},
				}},
			},
		},
		HasTrailingNewline: true,
	}
	assert.Equal(t, "if x:\n    pass\n", Codegen(m))
}

func TestCodegen_HandBuiltCall(t *testing.T) {
	m := &Module{
		Body: []Stmt{
			&SimpleStatementLine{Body: []SmallStmt{&ExprStmt{
				Value: &Call{
					Func: &Name{Value: "f"},
					Args: []*Arg{
						{Value: &Integer{Value: "1"}},
						{Keyword: &Name{Value: "b"}, Value: &Integer{Value: "2"}},
					},
				},
			}}},
		},
		HasTrailingNewline: true,
	}
	assert.Equal(t, "f(1, b=2)\n", Codegen(m))
}

func TestCodegen_HandBuiltSemicolons(t *testing.T) {
	m := &Module{
		Body: []Stmt{
			&SimpleStatementLine{Body: []SmallStmt{
				&ExprStmt{Value: &Name{Value: "a"}},
				&ExprStmt{Value: &Name{Value: "b"}},
			}},
		},
		HasTrailingNewline: true,
	}
	assert.Equal(t, "a; b\n", Codegen(m))
}

func TestCodegen_DefaultIndent(t *testing.T) {
	m := &Module{
		Body: []Stmt{
			&While{
				Test: &Name{Value: "x"},
				Body: &IndentedBlock{Body: []Stmt{
					&SimpleStatementLine{Body: []SmallStmt{&Break{}}},
				}},
			},
		},
		DefaultIndent:      "\t",
		HasTrailingNewline: true,
	}
	assert.Equal(t, "while x:\n\tbreak\n", Codegen(m))
}

func TestCodegen_NoTrailingNewline(t *testing.T) {
	m := &Module{
		Body: []Stmt{
			&SimpleStatementLine{Body: []SmallStmt{&Pass{}}},
		},
	}
	assert.Equal(t, "pass", Codegen(m))
}

func TestCodegen_EmptyModule(t *testing.T) {
	assert.Equal(t, "", Codegen(&Module{}))
}
