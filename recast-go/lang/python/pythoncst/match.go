package pythoncst

// MatchPattern is implemented by every pattern that can appear in a case
// clause.
type MatchPattern interface {
	Node
	isMatchPattern()
}

// MatchParens holds the optional group parentheses around a pattern,
// outermost first. It is embedded in every pattern type.
type MatchParens struct {
	LPar []*LeftParen
	RPar []*RightParen
}

func (p *MatchParens) isMatchPattern() {}

func (p *MatchParens) open(s *codegenState) {
	for _, lp := range p.LPar {
		lp.codegen(s)
	}
}

func (p *MatchParens) close(s *codegenState) {
	for _, rp := range p.RPar {
		rp.codegen(s)
	}
}

// Match is the "match" statement. Indent is the case block's indentation
// relative to the match line; Footer holds the comment lines that close
// the block.
type Match struct {
	ID                    NodeID
	LeadingLines          []EmptyLine
	WhitespaceAfterMatch  ParenthesizableWhitespace
	Subject               Expr
	WhitespaceBeforeColon ParenthesizableWhitespace
	Header                TrailingWhitespace
	Indent                string
	Cases                 []*MatchCase
	Footer                []EmptyLine
}

func (st *Match) codegen(s *codegenState) {
	for _, l := range st.LeadingLines {
		l.codegen(s)
	}
	s.writeIndent()
	s.write("match")
	s.parenWs(st.WhitespaceAfterMatch, " ")
	st.Subject.codegen(s)
	s.parenWs(st.WhitespaceBeforeColon, "")
	s.write(":")
	st.Header.codegen(s)
	s.pushIndent(st.Indent)
	for _, c := range st.Cases {
		c.codegen(s)
	}
	for _, l := range st.Footer {
		l.codegen(s)
	}
	s.popIndent()
}
func (st *Match) isStmt() {}

// MatchCase is one "case pattern [if guard]:" clause.
type MatchCase struct {
	ID                    NodeID
	LeadingLines          []EmptyLine
	WhitespaceAfterCase   ParenthesizableWhitespace
	Pattern               MatchPattern
	WhitespaceBeforeIf    ParenthesizableWhitespace
	WhitespaceAfterIf     ParenthesizableWhitespace
	Guard                 Expr
	WhitespaceBeforeColon ParenthesizableWhitespace
	Body                  Suite
}

func (c *MatchCase) codegen(s *codegenState) {
	for _, l := range c.LeadingLines {
		l.codegen(s)
	}
	s.writeIndent()
	s.write("case")
	s.parenWs(c.WhitespaceAfterCase, " ")
	c.Pattern.codegen(s)
	if c.Guard != nil {
		s.parenWs(c.WhitespaceBeforeIf, " ")
		s.write("if")
		s.parenWs(c.WhitespaceAfterIf, " ")
		c.Guard.codegen(s)
	}
	s.parenWs(c.WhitespaceBeforeColon, "")
	s.write(":")
	c.Body.codegen(s)
}

// MatchValue matches by equality against a literal or dotted name.
type MatchValue struct {
	MatchParens
	Value Expr
}

func (p *MatchValue) codegen(s *codegenState) {
	p.open(s)
	p.Value.codegen(s)
	p.close(s)
}

// MatchSingleton matches None, True, or False by identity.
type MatchSingleton struct {
	MatchParens
	Value *Name
}

func (p *MatchSingleton) codegen(s *codegenState) {
	p.open(s)
	p.Value.codegen(s)
	p.close(s)
}

// MatchSequenceItem is one element of a sequence pattern: either a
// MatchSequenceElement or a MatchStar.
type MatchSequenceItem interface {
	Node
	codegenItem(s *codegenState, last bool)
}

// MatchSequenceElement wraps a pattern appearing inside a sequence or
// class pattern.
type MatchSequenceElement struct {
	Value MatchPattern
	Comma *Comma
}

func (e *MatchSequenceElement) codegen(s *codegenState) {
	e.codegenItem(s, true)
}

func (e *MatchSequenceElement) codegenItem(s *codegenState, last bool) {
	e.Value.codegen(s)
	if e.Comma != nil {
		e.Comma.codegen(s)
	} else if !last {
		s.write(", ")
	}
}

// MatchStar is a "*name" or "*_" element of a sequence pattern.
type MatchStar struct {
	WhitespaceAfterStar ParenthesizableWhitespace
	Name                *Name
	Comma               *Comma
}

func (e *MatchStar) codegen(s *codegenState) {
	e.codegenItem(s, true)
}

func (e *MatchStar) codegenItem(s *codegenState, last bool) {
	s.write("*")
	s.parenWs(e.WhitespaceAfterStar, "")
	if e.Name != nil {
		e.Name.codegen(s)
	} else {
		s.write("_")
	}
	if e.Comma != nil {
		e.Comma.codegen(s)
	} else if !last {
		s.write(", ")
	}
}

// MatchSequence is a sequence pattern. The bracket fields are set for the
// "[...]" form; the parenthesized and bare tuple forms use the embedded
// MatchParens (or nothing).
type MatchSequence struct {
	MatchParens
	Lbracket *LeftSquareBracket
	Items    []MatchSequenceItem
	Rbracket *RightSquareBracket
}

func (p *MatchSequence) codegen(s *codegenState) {
	p.open(s)
	if p.Lbracket != nil {
		p.Lbracket.codegen(s)
	}
	for i, it := range p.Items {
		it.codegenItem(s, i == len(p.Items)-1)
	}
	if p.Rbracket != nil {
		p.Rbracket.codegen(s)
	}
	p.close(s)
}

// MatchMappingElement is one "key: pattern" entry of a mapping pattern.
type MatchMappingElement struct {
	Key                   Expr
	WhitespaceBeforeColon ParenthesizableWhitespace
	WhitespaceAfterColon  ParenthesizableWhitespace
	Pattern               MatchPattern
	Comma                 *Comma
}

func (e *MatchMappingElement) codegen(s *codegenState) {
	e.Key.codegen(s)
	s.parenWs(e.WhitespaceBeforeColon, "")
	s.write(":")
	s.parenWs(e.WhitespaceAfterColon, " ")
	e.Pattern.codegen(s)
}

// MatchMapping is a mapping pattern "{key: pat, **rest}".
type MatchMapping struct {
	MatchParens
	Lbrace               *LeftCurlyBrace
	Elements             []*MatchMappingElement
	WhitespaceAfterStars ParenthesizableWhitespace
	Rest                 *Name
	TrailingComma        *Comma
	Rbrace               *RightCurlyBrace
}

func (p *MatchMapping) codegen(s *codegenState) {
	p.open(s)
	p.Lbrace.codegen(s)
	for i, e := range p.Elements {
		e.codegen(s)
		if e.Comma != nil {
			e.Comma.codegen(s)
		} else if i < len(p.Elements)-1 || p.Rest != nil {
			s.write(", ")
		}
	}
	if p.Rest != nil {
		s.write("**")
		s.parenWs(p.WhitespaceAfterStars, "")
		p.Rest.codegen(s)
	}
	if p.TrailingComma != nil {
		p.TrailingComma.codegen(s)
	}
	p.Rbrace.codegen(s)
	p.close(s)
}

// MatchKeywordElement is one "name=pattern" argument of a class pattern.
type MatchKeywordElement struct {
	Key                   *Name
	WhitespaceBeforeEqual ParenthesizableWhitespace
	WhitespaceAfterEqual  ParenthesizableWhitespace
	Pattern               MatchPattern
	Comma                 *Comma
}

func (e *MatchKeywordElement) codegen(s *codegenState) {
	e.Key.codegen(s)
	s.parenWs(e.WhitespaceBeforeEqual, "")
	s.write("=")
	s.parenWs(e.WhitespaceAfterEqual, "")
	e.Pattern.codegen(s)
}

// MatchClass is a class pattern "Cls(pat, ..., name=pat, ...)".
type MatchClass struct {
	MatchParens
	Cls                      Expr
	WhitespaceAfterCls       ParenthesizableWhitespace
	WhitespaceBeforePatterns ParenthesizableWhitespace
	Patterns                 []*MatchSequenceElement
	Kwds                     []*MatchKeywordElement
	WhitespaceBeforeRparen   ParenthesizableWhitespace
}

func (p *MatchClass) codegen(s *codegenState) {
	p.open(s)
	p.Cls.codegen(s)
	s.parenWs(p.WhitespaceAfterCls, "")
	s.write("(")
	s.parenWs(p.WhitespaceBeforePatterns, "")
	n := len(p.Patterns) + len(p.Kwds)
	i := 0
	for _, e := range p.Patterns {
		i++
		e.codegenItem(s, i == n)
	}
	for _, e := range p.Kwds {
		i++
		e.codegen(s)
		if e.Comma != nil {
			e.Comma.codegen(s)
		} else if i < n {
			s.write(", ")
		}
	}
	s.parenWs(p.WhitespaceBeforeRparen, "")
	s.write(")")
	p.close(s)
}

// MatchAs is a capture, wildcard, or as-pattern. With neither Pattern nor
// Name it renders the wildcard "_".
type MatchAs struct {
	MatchParens
	Pattern            MatchPattern
	WhitespaceBeforeAs ParenthesizableWhitespace
	WhitespaceAfterAs  ParenthesizableWhitespace
	Name               *Name
}

func (p *MatchAs) codegen(s *codegenState) {
	p.open(s)
	switch {
	case p.Pattern != nil:
		p.Pattern.codegen(s)
		s.parenWs(p.WhitespaceBeforeAs, " ")
		s.write("as")
		s.parenWs(p.WhitespaceAfterAs, " ")
		p.Name.codegen(s)
	case p.Name != nil:
		p.Name.codegen(s)
	default:
		s.write("_")
	}
	p.close(s)
}

// MatchOrElement is one alternative of an or-pattern, with the "|" that
// follows it when it is not the last.
type MatchOrElement struct {
	Pattern             MatchPattern
	WhitespaceBeforeBar ParenthesizableWhitespace
	WhitespaceAfterBar  ParenthesizableWhitespace
}

// MatchOr is an or-pattern "a | b | c".
type MatchOr struct {
	MatchParens
	Patterns []*MatchOrElement
}

func (p *MatchOr) codegen(s *codegenState) {
	p.open(s)
	for i, e := range p.Patterns {
		e.Pattern.codegen(s)
		if i < len(p.Patterns)-1 {
			s.parenWs(e.WhitespaceBeforeBar, " ")
			s.write("|")
			s.parenWs(e.WhitespaceAfterBar, " ")
		}
	}
	p.close(s)
}
