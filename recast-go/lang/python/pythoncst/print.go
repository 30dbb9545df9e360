package pythoncst

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Fprint writes a debug rendering of the tree to w, one node per line,
// children indented beneath their parent.
func Fprint(w io.Writer, n Node) {
	p := &printer{w: w}
	Walk(p, n)
}

// String returns the debug rendering of the tree as a string.
func String(n Node) string {
	var buf bytes.Buffer
	Fprint(&buf, n)
	return buf.String()
}

type printer struct {
	w     io.Writer
	depth int
}

func (p *printer) Visit(n Node) VisitResult {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.depth), describe(n))
	p.depth++
	return VisitContinue
}

func (p *printer) Leave(n Node) {
	p.depth--
}

func describe(n Node) string {
	name := reflect.TypeOf(n).Elem().Name()
	switch n := n.(type) {
	case *Name:
		return fmt.Sprintf("%s(%s)", name, n.Value)
	case *Integer:
		return fmt.Sprintf("%s(%s)", name, n.Value)
	case *Float:
		return fmt.Sprintf("%s(%s)", name, n.Value)
	case *Imaginary:
		return fmt.Sprintf("%s(%s)", name, n.Value)
	case *SimpleString:
		return fmt.Sprintf("%s(%s)", name, n.Value)
	case *UnaryOperation:
		return fmt.Sprintf("%s[%s]", name, n.Operator.Tok)
	case *BinaryOperation:
		return fmt.Sprintf("%s[%s]", name, n.Operator.Tok)
	case *BooleanOperation:
		return fmt.Sprintf("%s[%s]", name, n.Operator.Tok)
	case *AugAssign:
		return fmt.Sprintf("%s[%s]", name, n.Operator.Tok)
	}
	if id := statementID(n); id != 0 {
		return fmt.Sprintf("%s#%d", name, id)
	}
	return name
}

// statementID returns the NodeID carried by a statement-level node, or
// zero for nodes that carry none.
func statementID(n Node) NodeID {
	v := reflect.ValueOf(n)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return 0
	}
	f := v.Elem().FieldByName("ID")
	if !f.IsValid() || f.Type() != reflect.TypeOf(NodeID(0)) {
		return 0
	}
	return NodeID(f.Int())
}
