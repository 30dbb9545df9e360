package pythoncst

// Stmt is implemented by every statement that can appear in a statement
// block: simple statement lines and compound statements.
type Stmt interface {
	Node
	isStmt()
}

// SmallStmt is implemented by statements that fit on one logical line and
// may be chained with semicolons.
type SmallStmt interface {
	Node
	isSmallStmt()
	semi() *Semicolon
}

// Suite is the body of a compound statement: either small statements on
// the header line or an indented block.
type Suite interface {
	Node
	isSuite()
}

// Module is the root of a parsed file.
type Module struct {
	Body   []Stmt
	Header []EmptyLine
	Footer []EmptyLine

	// Bom is the byte order mark prefix of the source, or empty.
	Bom string
	// DefaultIndent is the indent used when generating code for blocks
	// that do not record their own.
	DefaultIndent string
	// DefaultNewline is the terminator used for newlines with no recorded
	// text.
	DefaultNewline string
	// HasTrailingNewline records whether the source ended with a newline.
	HasTrailingNewline bool
}

func (m *Module) codegen(s *codegenState) {
	s.write(m.Bom)
	for _, l := range m.Header {
		l.codegen(s)
	}
	for _, st := range m.Body {
		st.codegen(s)
	}
	for _, l := range m.Footer {
		l.codegen(s)
	}
}

func codegenSmallStmts(s *codegenState, body []SmallStmt) {
	for i, st := range body {
		st.codegen(s)
		if sc := st.semi(); sc != nil {
			sc.codegen(s)
		} else if i < len(body)-1 {
			s.write("; ")
		}
	}
}

// SimpleStatementLine is a logical line of one or more small statements at
// block level.
type SimpleStatementLine struct {
	LeadingLines       []EmptyLine
	Body               []SmallStmt
	TrailingWhitespace TrailingWhitespace
}

func (l *SimpleStatementLine) codegen(s *codegenState) {
	for _, el := range l.LeadingLines {
		el.codegen(s)
	}
	s.writeIndent()
	codegenSmallStmts(s, l.Body)
	l.TrailingWhitespace.codegen(s)
}

func (l *SimpleStatementLine) isStmt() {}

// SimpleStatementSuite is a compound statement body that sits on the
// header line, e.g. "if x: pass".
type SimpleStatementSuite struct {
	LeadingWhitespace  ParenthesizableWhitespace
	Body               []SmallStmt
	TrailingWhitespace TrailingWhitespace
}

func (l *SimpleStatementSuite) codegen(s *codegenState) {
	s.parenWs(l.LeadingWhitespace, " ")
	codegenSmallStmts(s, l.Body)
	l.TrailingWhitespace.codegen(s)
}

func (l *SimpleStatementSuite) isSuite() {}

// IndentedBlock is a compound statement body on the following lines.
// Indent is the block's indentation relative to its parent, exactly as it
// appeared in the source; empty means the module default.
type IndentedBlock struct {
	Header TrailingWhitespace
	Indent string
	Body   []Stmt
	Footer []EmptyLine
}

func (b *IndentedBlock) codegen(s *codegenState) {
	b.Header.codegen(s)
	s.pushIndent(b.Indent)
	if len(b.Body) == 0 {
		// a hand-built empty block still has to produce a valid suite
		s.writeIndent()
		s.write("pass")
		s.write(s.defaultNewline)
	}
	for _, st := range b.Body {
		st.codegen(s)
	}
	for _, l := range b.Footer {
		l.codegen(s)
	}
	s.popIndent()
}

func (b *IndentedBlock) isSuite() {}

// Pass is the "pass" statement.
type Pass struct {
	ID        NodeID
	Semicolon *Semicolon
}

func (st *Pass) codegen(s *codegenState) { s.write("pass") }
func (st *Pass) isSmallStmt()            {}
func (st *Pass) semi() *Semicolon        { return st.Semicolon }

// Break is the "break" statement.
type Break struct {
	ID        NodeID
	Semicolon *Semicolon
}

func (st *Break) codegen(s *codegenState) { s.write("break") }
func (st *Break) isSmallStmt()            {}
func (st *Break) semi() *Semicolon        { return st.Semicolon }

// Continue is the "continue" statement.
type Continue struct {
	ID        NodeID
	Semicolon *Semicolon
}

func (st *Continue) codegen(s *codegenState) { s.write("continue") }
func (st *Continue) isSmallStmt()            {}
func (st *Continue) semi() *Semicolon        { return st.Semicolon }

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	ID        NodeID
	Value     Expr
	Semicolon *Semicolon
}

func (st *ExprStmt) codegen(s *codegenState) { st.Value.codegen(s) }
func (st *ExprStmt) isSmallStmt()            {}
func (st *ExprStmt) semi() *Semicolon        { return st.Semicolon }

// Return is the "return" statement.
type Return struct {
	ID                    NodeID
	WhitespaceAfterReturn ParenthesizableWhitespace
	Value                 Expr
	Semicolon             *Semicolon
}

func (st *Return) codegen(s *codegenState) {
	s.write("return")
	if st.Value != nil {
		s.parenWs(st.WhitespaceAfterReturn, " ")
		st.Value.codegen(s)
	}
}
func (st *Return) isSmallStmt()     {}
func (st *Return) semi() *Semicolon { return st.Semicolon }

// RaiseFrom is the "from cause" part of a raise statement.
type RaiseFrom struct {
	WhitespaceBeforeFrom ParenthesizableWhitespace
	WhitespaceAfterFrom  ParenthesizableWhitespace
	Item                 Expr
}

func (f *RaiseFrom) codegen(s *codegenState) {
	s.parenWs(f.WhitespaceBeforeFrom, " ")
	s.write("from")
	s.parenWs(f.WhitespaceAfterFrom, " ")
	f.Item.codegen(s)
}

// Raise is the "raise" statement.
type Raise struct {
	ID                   NodeID
	WhitespaceAfterRaise ParenthesizableWhitespace
	Exc                  Expr
	Cause                *RaiseFrom
	Semicolon            *Semicolon
}

func (st *Raise) codegen(s *codegenState) {
	s.write("raise")
	if st.Exc != nil {
		s.parenWs(st.WhitespaceAfterRaise, " ")
		st.Exc.codegen(s)
		if st.Cause != nil {
			st.Cause.codegen(s)
		}
	}
}
func (st *Raise) isSmallStmt()     {}
func (st *Raise) semi() *Semicolon { return st.Semicolon }

// Assert is the "assert" statement.
type Assert struct {
	ID                    NodeID
	WhitespaceAfterAssert ParenthesizableWhitespace
	Test                  Expr
	Comma                 *Comma
	Msg                   Expr
	Semicolon             *Semicolon
}

func (st *Assert) codegen(s *codegenState) {
	s.write("assert")
	s.parenWs(st.WhitespaceAfterAssert, " ")
	st.Test.codegen(s)
	if st.Msg != nil {
		if st.Comma != nil {
			st.Comma.codegen(s)
		} else {
			s.write(", ")
		}
		st.Msg.codegen(s)
	}
}
func (st *Assert) isSmallStmt()     {}
func (st *Assert) semi() *Semicolon { return st.Semicolon }

// Del is the "del" statement.
type Del struct {
	ID                 NodeID
	WhitespaceAfterDel ParenthesizableWhitespace
	Target             Expr
	Semicolon          *Semicolon
}

func (st *Del) codegen(s *codegenState) {
	s.write("del")
	s.parenWs(st.WhitespaceAfterDel, " ")
	st.Target.codegen(s)
}
func (st *Del) isSmallStmt()     {}
func (st *Del) semi() *Semicolon { return st.Semicolon }

// NameItem is one name in a global or nonlocal declaration.
type NameItem struct {
	Name  *Name
	Comma *Comma
}

func codegenNameItems(s *codegenState, items []*NameItem) {
	for i, it := range items {
		it.Name.codegen(s)
		if it.Comma != nil {
			it.Comma.codegen(s)
		} else if i < len(items)-1 {
			s.write(", ")
		}
	}
}

// Global is the "global" declaration.
type Global struct {
	ID                    NodeID
	WhitespaceAfterGlobal ParenthesizableWhitespace
	Names                 []*NameItem
	Semicolon             *Semicolon
}

func (st *Global) codegen(s *codegenState) {
	s.write("global")
	s.parenWs(st.WhitespaceAfterGlobal, " ")
	codegenNameItems(s, st.Names)
}
func (st *Global) isSmallStmt()     {}
func (st *Global) semi() *Semicolon { return st.Semicolon }

// Nonlocal is the "nonlocal" declaration.
type Nonlocal struct {
	ID                      NodeID
	WhitespaceAfterNonlocal ParenthesizableWhitespace
	Names                   []*NameItem
	Semicolon               *Semicolon
}

func (st *Nonlocal) codegen(s *codegenState) {
	s.write("nonlocal")
	s.parenWs(st.WhitespaceAfterNonlocal, " ")
	codegenNameItems(s, st.Names)
}
func (st *Nonlocal) isSmallStmt()     {}
func (st *Nonlocal) semi() *Semicolon { return st.Semicolon }

// ImportAlias is one imported name with its optional alias.
type ImportAlias struct {
	Name   Expr
	AsName *AsName
	Comma  *Comma
}

func (a *ImportAlias) codegen(s *codegenState) {
	a.Name.codegen(s)
	if a.AsName != nil {
		a.AsName.codegen(s)
	}
	if a.Comma != nil {
		a.Comma.codegen(s)
	}
}

func codegenImportAliases(s *codegenState, names []*ImportAlias) {
	for i, a := range names {
		a.codegen(s)
		if a.Comma == nil && i < len(names)-1 {
			s.write(", ")
		}
	}
}

// Import is the "import" statement.
type Import struct {
	ID                    NodeID
	WhitespaceAfterImport ParenthesizableWhitespace
	Names                 []*ImportAlias
	Semicolon             *Semicolon
}

func (st *Import) codegen(s *codegenState) {
	s.write("import")
	s.parenWs(st.WhitespaceAfterImport, " ")
	codegenImportAliases(s, st.Names)
}
func (st *Import) isSmallStmt()     {}
func (st *Import) semi() *Semicolon { return st.Semicolon }

// ImportFrom is the "from ... import ..." statement. Relative holds one Dot
// per leading dot; Module is nil for purely relative imports; Star reports
// a wildcard import.
type ImportFrom struct {
	ID                     NodeID
	WhitespaceAfterFrom    ParenthesizableWhitespace
	Relative               []*Dot
	Module                 Expr
	WhitespaceBeforeImport ParenthesizableWhitespace
	WhitespaceAfterImport  ParenthesizableWhitespace
	LParen                 *LeftParen
	Star                   bool
	Names                  []*ImportAlias
	RParen                 *RightParen
	Semicolon              *Semicolon
}

func (st *ImportFrom) codegen(s *codegenState) {
	s.write("from")
	s.parenWs(st.WhitespaceAfterFrom, " ")
	for _, d := range st.Relative {
		d.codegen(s)
	}
	if st.Module != nil {
		st.Module.codegen(s)
	}
	s.parenWs(st.WhitespaceBeforeImport, " ")
	s.write("import")
	s.parenWs(st.WhitespaceAfterImport, " ")
	if st.Star {
		s.write("*")
		return
	}
	if st.LParen != nil {
		st.LParen.codegen(s)
	}
	codegenImportAliases(s, st.Names)
	if st.RParen != nil {
		st.RParen.codegen(s)
	}
}
func (st *ImportFrom) isSmallStmt()     {}
func (st *ImportFrom) semi() *Semicolon { return st.Semicolon }

// AssignTarget is one "target =" of a (possibly chained) assignment.
type AssignTarget struct {
	Target                Expr
	WhitespaceBeforeEqual ParenthesizableWhitespace
	WhitespaceAfterEqual  ParenthesizableWhitespace
}

func (t *AssignTarget) codegen(s *codegenState) {
	t.Target.codegen(s)
	s.parenWs(t.WhitespaceBeforeEqual, " ")
	s.write("=")
	s.parenWs(t.WhitespaceAfterEqual, " ")
}

// Assign is an assignment statement "a = b = value".
type Assign struct {
	ID        NodeID
	Targets   []*AssignTarget
	Value     Expr
	Semicolon *Semicolon
}

func (st *Assign) codegen(s *codegenState) {
	for _, t := range st.Targets {
		t.codegen(s)
	}
	st.Value.codegen(s)
}
func (st *Assign) isSmallStmt()     {}
func (st *Assign) semi() *Semicolon { return st.Semicolon }

// AnnAssign is an annotated assignment "target: ann = value"; the value is
// optional.
type AnnAssign struct {
	ID         NodeID
	Target     Expr
	Annotation *Annotation
	Equal      *AssignEqual
	Value      Expr
	Semicolon  *Semicolon
}

func (st *AnnAssign) codegen(s *codegenState) {
	st.Target.codegen(s)
	st.Annotation.codegenIndicator(s, ":", "", " ")
	if st.Value != nil {
		if st.Equal != nil {
			st.Equal.codegen(s)
		} else {
			s.write(" = ")
		}
		st.Value.codegen(s)
	}
}
func (st *AnnAssign) isSmallStmt()     {}
func (st *AnnAssign) semi() *Semicolon { return st.Semicolon }

// AugAssign is an augmented assignment such as "x += 1".
type AugAssign struct {
	ID        NodeID
	Target    Expr
	Operator  *AugOp
	Value     Expr
	Semicolon *Semicolon
}

func (st *AugAssign) codegen(s *codegenState) {
	st.Target.codegen(s)
	st.Operator.codegen(s)
	st.Value.codegen(s)
}
func (st *AugAssign) isSmallStmt()     {}
func (st *AugAssign) semi() *Semicolon { return st.Semicolon }

// TypeAlias is a "type X = ..." statement.
type TypeAlias struct {
	ID                  NodeID
	WhitespaceAfterType ParenthesizableWhitespace
	Name                *Name
	WhitespaceAfterName ParenthesizableWhitespace
	TypeParameters      *TypeParameters
	Equal               *AssignEqual
	Value               Expr
	Semicolon           *Semicolon
}

func (st *TypeAlias) codegen(s *codegenState) {
	s.write("type")
	s.parenWs(st.WhitespaceAfterType, " ")
	st.Name.codegen(s)
	s.parenWs(st.WhitespaceAfterName, "")
	if st.TypeParameters != nil {
		st.TypeParameters.codegen(s)
	}
	if st.Equal != nil {
		st.Equal.codegen(s)
	} else {
		s.write(" = ")
	}
	st.Value.codegen(s)
}
func (st *TypeAlias) isSmallStmt()     {}
func (st *TypeAlias) semi() *Semicolon { return st.Semicolon }

// Decorator is one "@expr" line above a def or class.
type Decorator struct {
	LeadingLines       []EmptyLine
	WhitespaceAfterAt  ParenthesizableWhitespace
	Decorator          Expr
	TrailingWhitespace TrailingWhitespace
}

func (d *Decorator) codegen(s *codegenState) {
	for _, l := range d.LeadingLines {
		l.codegen(s)
	}
	s.writeIndent()
	s.write("@")
	s.parenWs(d.WhitespaceAfterAt, "")
	d.Decorator.codegen(s)
	d.TrailingWhitespace.codegen(s)
}

// FunctionDef is a function definition, decorated or not, sync or async.
type FunctionDef struct {
	ID                            NodeID
	LeadingLines                  []EmptyLine
	Decorators                    []*Decorator
	LinesAfterDecorators          []EmptyLine
	Asynchronous                  *Asynchronous
	WhitespaceAfterDef            ParenthesizableWhitespace
	Name                          *Name
	TypeParameters                *TypeParameters
	WhitespaceAfterTypeParameters ParenthesizableWhitespace
	WhitespaceAfterName           ParenthesizableWhitespace
	WhitespaceBeforeParams        ParenthesizableWhitespace
	Params                        *Parameters
	Returns                       *Annotation
	WhitespaceBeforeColon         ParenthesizableWhitespace
	Body                          Suite
}

func (st *FunctionDef) codegen(s *codegenState) {
	for _, l := range st.LeadingLines {
		l.codegen(s)
	}
	for _, d := range st.Decorators {
		d.codegen(s)
	}
	for _, l := range st.LinesAfterDecorators {
		l.codegen(s)
	}
	s.writeIndent()
	if st.Asynchronous != nil {
		st.Asynchronous.codegen(s)
	}
	s.write("def")
	s.parenWs(st.WhitespaceAfterDef, " ")
	st.Name.codegen(s)
	s.parenWs(st.WhitespaceAfterName, "")
	if st.TypeParameters != nil {
		st.TypeParameters.codegen(s)
		s.parenWs(st.WhitespaceAfterTypeParameters, "")
	}
	s.write("(")
	s.parenWs(st.WhitespaceBeforeParams, "")
	if st.Params != nil {
		st.Params.codegen(s)
	}
	s.write(")")
	if st.Returns != nil {
		st.Returns.codegenIndicator(s, "->", " ", " ")
	}
	s.parenWs(st.WhitespaceBeforeColon, "")
	s.write(":")
	st.Body.codegen(s)
}
func (st *FunctionDef) isStmt() {}

// ClassDef is a class definition. Args holds base classes and keyword
// arguments in source order; LPar and RPar are nil when the class has no
// argument list at all.
type ClassDef struct {
	ID                            NodeID
	LeadingLines                  []EmptyLine
	Decorators                    []*Decorator
	LinesAfterDecorators          []EmptyLine
	WhitespaceAfterClass          ParenthesizableWhitespace
	Name                          *Name
	TypeParameters                *TypeParameters
	WhitespaceAfterTypeParameters ParenthesizableWhitespace
	WhitespaceAfterName           ParenthesizableWhitespace
	LPar                          *LeftParen
	Args                          []*Arg
	RPar                          *RightParen
	WhitespaceBeforeColon         ParenthesizableWhitespace
	Body                          Suite
}

func (st *ClassDef) codegen(s *codegenState) {
	for _, l := range st.LeadingLines {
		l.codegen(s)
	}
	for _, d := range st.Decorators {
		d.codegen(s)
	}
	for _, l := range st.LinesAfterDecorators {
		l.codegen(s)
	}
	s.writeIndent()
	s.write("class")
	s.parenWs(st.WhitespaceAfterClass, " ")
	st.Name.codegen(s)
	s.parenWs(st.WhitespaceAfterName, "")
	if st.TypeParameters != nil {
		st.TypeParameters.codegen(s)
		s.parenWs(st.WhitespaceAfterTypeParameters, "")
	}
	if st.LPar != nil {
		st.LPar.codegen(s)
	}
	for i, a := range st.Args {
		a.codegen(s)
		if a.Comma != nil {
			a.Comma.codegen(s)
		} else if i < len(st.Args)-1 {
			s.write(", ")
		}
	}
	if st.RPar != nil {
		st.RPar.codegen(s)
	}
	s.parenWs(st.WhitespaceBeforeColon, "")
	s.write(":")
	st.Body.codegen(s)
}
func (st *ClassDef) isStmt() {}

// If is an if or elif statement; Elif selects the keyword emitted. Orelse
// is nil, an *If with Elif set, or an *Else.
type If struct {
	ID                   NodeID
	LeadingLines         []EmptyLine
	Elif                 bool
	WhitespaceBeforeTest ParenthesizableWhitespace
	Test                 Expr
	WhitespaceAfterTest  ParenthesizableWhitespace
	Body                 Suite
	Orelse               Stmt
}

func (st *If) codegen(s *codegenState) {
	for _, l := range st.LeadingLines {
		l.codegen(s)
	}
	s.writeIndent()
	if st.Elif {
		s.write("elif")
	} else {
		s.write("if")
	}
	s.parenWs(st.WhitespaceBeforeTest, " ")
	st.Test.codegen(s)
	s.parenWs(st.WhitespaceAfterTest, "")
	s.write(":")
	st.Body.codegen(s)
	if st.Orelse != nil {
		st.Orelse.codegen(s)
	}
}
func (st *If) isStmt() {}

// Else is the "else" clause of an if, for, while, or try statement.
type Else struct {
	ID                    NodeID
	LeadingLines          []EmptyLine
	WhitespaceBeforeColon ParenthesizableWhitespace
	Body                  Suite
}

func (st *Else) codegen(s *codegenState) {
	for _, l := range st.LeadingLines {
		l.codegen(s)
	}
	s.writeIndent()
	s.write("else")
	s.parenWs(st.WhitespaceBeforeColon, "")
	s.write(":")
	st.Body.codegen(s)
}
func (st *Else) isStmt() {}

// While is the "while" loop.
type While struct {
	ID                    NodeID
	LeadingLines          []EmptyLine
	WhitespaceAfterWhile  ParenthesizableWhitespace
	Test                  Expr
	WhitespaceBeforeColon ParenthesizableWhitespace
	Body                  Suite
	Orelse                *Else
}

func (st *While) codegen(s *codegenState) {
	for _, l := range st.LeadingLines {
		l.codegen(s)
	}
	s.writeIndent()
	s.write("while")
	s.parenWs(st.WhitespaceAfterWhile, " ")
	st.Test.codegen(s)
	s.parenWs(st.WhitespaceBeforeColon, "")
	s.write(":")
	st.Body.codegen(s)
	if st.Orelse != nil {
		st.Orelse.codegen(s)
	}
}
func (st *While) isStmt() {}

// For is the "for" loop, sync or async.
type For struct {
	ID                    NodeID
	LeadingLines          []EmptyLine
	Asynchronous          *Asynchronous
	WhitespaceAfterFor    ParenthesizableWhitespace
	Target                Expr
	WhitespaceBeforeIn    ParenthesizableWhitespace
	WhitespaceAfterIn     ParenthesizableWhitespace
	Iter                  Expr
	WhitespaceBeforeColon ParenthesizableWhitespace
	Body                  Suite
	Orelse                *Else
}

func (st *For) codegen(s *codegenState) {
	for _, l := range st.LeadingLines {
		l.codegen(s)
	}
	s.writeIndent()
	if st.Asynchronous != nil {
		st.Asynchronous.codegen(s)
	}
	s.write("for")
	s.parenWs(st.WhitespaceAfterFor, " ")
	st.Target.codegen(s)
	s.parenWs(st.WhitespaceBeforeIn, " ")
	s.write("in")
	s.parenWs(st.WhitespaceAfterIn, " ")
	st.Iter.codegen(s)
	s.parenWs(st.WhitespaceBeforeColon, "")
	s.write(":")
	st.Body.codegen(s)
	if st.Orelse != nil {
		st.Orelse.codegen(s)
	}
}
func (st *For) isStmt() {}

// ExceptHandler is one "except" or "except*" clause.
type ExceptHandler struct {
	ID                    NodeID
	LeadingLines          []EmptyLine
	WhitespaceAfterExcept ParenthesizableWhitespace
	Star                  bool
	WhitespaceAfterStar   ParenthesizableWhitespace
	Type                  Expr
	Name                  *AsName
	WhitespaceBeforeColon ParenthesizableWhitespace
	Body                  Suite
}

func (st *ExceptHandler) codegen(s *codegenState) {
	for _, l := range st.LeadingLines {
		l.codegen(s)
	}
	s.writeIndent()
	s.write("except")
	if st.Star {
		s.parenWs(st.WhitespaceAfterExcept, "")
		s.write("*")
		if st.Type != nil {
			s.parenWs(st.WhitespaceAfterStar, " ")
		}
	} else if st.Type != nil {
		s.parenWs(st.WhitespaceAfterExcept, " ")
	} else {
		s.parenWs(st.WhitespaceAfterExcept, "")
	}
	if st.Type != nil {
		st.Type.codegen(s)
		if st.Name != nil {
			st.Name.codegen(s)
		}
	}
	s.parenWs(st.WhitespaceBeforeColon, "")
	s.write(":")
	st.Body.codegen(s)
}
func (st *ExceptHandler) isStmt() {}

// Finally is the "finally" clause of a try statement.
type Finally struct {
	ID                    NodeID
	LeadingLines          []EmptyLine
	WhitespaceBeforeColon ParenthesizableWhitespace
	Body                  Suite
}

func (st *Finally) codegen(s *codegenState) {
	for _, l := range st.LeadingLines {
		l.codegen(s)
	}
	s.writeIndent()
	s.write("finally")
	s.parenWs(st.WhitespaceBeforeColon, "")
	s.write(":")
	st.Body.codegen(s)
}
func (st *Finally) isStmt() {}

// Try is a try statement. Handlers are all plain "except" or all
// "except*"; the grammar forbids mixing the two.
type Try struct {
	ID                    NodeID
	LeadingLines          []EmptyLine
	WhitespaceBeforeColon ParenthesizableWhitespace
	Body                  Suite
	Handlers              []*ExceptHandler
	Orelse                *Else
	Finalbody             *Finally
}

func (st *Try) codegen(s *codegenState) {
	for _, l := range st.LeadingLines {
		l.codegen(s)
	}
	s.writeIndent()
	s.write("try")
	s.parenWs(st.WhitespaceBeforeColon, "")
	s.write(":")
	st.Body.codegen(s)
	for _, h := range st.Handlers {
		h.codegen(s)
	}
	if st.Orelse != nil {
		st.Orelse.codegen(s)
	}
	if st.Finalbody != nil {
		st.Finalbody.codegen(s)
	}
}
func (st *Try) isStmt() {}

// WithItem is one context manager of a with statement.
type WithItem struct {
	Item   Expr
	AsName *AsName
	Comma  *Comma
}

func (it *WithItem) codegen(s *codegenState) {
	it.Item.codegen(s)
	if it.AsName != nil {
		it.AsName.codegen(s)
	}
	if it.Comma != nil {
		it.Comma.codegen(s)
	}
}

// With is the "with" statement, sync or async. LPar and RPar hold the
// optional parentheses around the item list.
type With struct {
	ID                    NodeID
	LeadingLines          []EmptyLine
	Asynchronous          *Asynchronous
	WhitespaceAfterWith   ParenthesizableWhitespace
	LPar                  *LeftParen
	Items                 []*WithItem
	RPar                  *RightParen
	WhitespaceBeforeColon ParenthesizableWhitespace
	Body                  Suite
}

func (st *With) codegen(s *codegenState) {
	for _, l := range st.LeadingLines {
		l.codegen(s)
	}
	s.writeIndent()
	if st.Asynchronous != nil {
		st.Asynchronous.codegen(s)
	}
	s.write("with")
	s.parenWs(st.WhitespaceAfterWith, " ")
	if st.LPar != nil {
		st.LPar.codegen(s)
	}
	for i, it := range st.Items {
		it.codegen(s)
		if it.Comma == nil && i < len(st.Items)-1 {
			s.write(", ")
		}
	}
	if st.RPar != nil {
		st.RPar.codegen(s)
	}
	s.parenWs(st.WhitespaceBeforeColon, "")
	s.write(":")
	st.Body.codegen(s)
}
func (st *With) isStmt() {}
