package pythoncst

// TypeVarLike is one kind of type parameter: TypeVar, TypeVarTuple, or
// ParamSpec.
type TypeVarLike interface {
	Node
	isTypeVarLike()
}

// TypeVar is a plain type parameter, optionally bounded: "T" or "T: bound".
type TypeVar struct {
	Name  *Name
	Colon *Colon
	Bound Expr
}

func (t *TypeVar) codegen(s *codegenState) {
	t.Name.codegen(s)
	if t.Bound != nil {
		if t.Colon != nil {
			t.Colon.codegen(s)
		} else {
			s.write(": ")
		}
		t.Bound.codegen(s)
	}
}

func (t *TypeVar) isTypeVarLike() {}

// TypeVarTuple is a "*Ts" type parameter.
type TypeVarTuple struct {
	WhitespaceAfterStar ParenthesizableWhitespace
	Name                *Name
}

func (t *TypeVarTuple) codegen(s *codegenState) {
	s.write("*")
	s.parenWs(t.WhitespaceAfterStar, "")
	t.Name.codegen(s)
}

func (t *TypeVarTuple) isTypeVarLike() {}

// ParamSpec is a "**P" type parameter.
type ParamSpec struct {
	WhitespaceAfterStars ParenthesizableWhitespace
	Name                 *Name
}

func (t *ParamSpec) codegen(s *codegenState) {
	s.write("**")
	s.parenWs(t.WhitespaceAfterStars, "")
	t.Name.codegen(s)
}

func (t *ParamSpec) isTypeVarLike() {}

// TypeParam is one element of a type parameter list, optionally carrying a
// default.
type TypeParam struct {
	Param   TypeVarLike
	Equal   *AssignEqual
	Default Expr
	Comma   *Comma
}

// TypeParameters is the "[T, *Ts, **P]" parameter list of a generic class,
// function, or type alias.
type TypeParameters struct {
	Lbracket *LeftSquareBracket
	Params   []*TypeParam
	Rbracket *RightSquareBracket
}

func (t *TypeParameters) codegen(s *codegenState) {
	t.Lbracket.codegen(s)
	for i, p := range t.Params {
		p.Param.codegen(s)
		if p.Default != nil {
			if p.Equal != nil {
				p.Equal.codegen(s)
			} else {
				s.write(" = ")
			}
			p.Default.codegen(s)
		}
		if p.Comma != nil {
			p.Comma.codegen(s)
		} else if i < len(t.Params)-1 {
			s.write(", ")
		}
	}
	t.Rbracket.codegen(s)
}
