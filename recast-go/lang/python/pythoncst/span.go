package pythoncst

import (
	"sort"
)

// NodeID identifies a statement-level node within one parsed module. IDs
// are assigned in preorder starting at 1; zero means the node carries no
// ID (it was built by hand rather than by the parser).
type NodeID int

// Span is a half-open byte range [Start, End) into the source buffer the
// module was parsed from.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(off int) bool {
	return off >= s.Start && off < s.End
}

// Spans holds the byte ranges recorded for one statement-level node.
//
//   - Ident covers a simple statement, from its first token through the
//     end of its value or last target.
//   - Lexical covers a compound statement, from its introducing keyword
//     (or "async") through the end of its body, excluding leading
//     indentation and trailing blank lines.
//   - Def is Lexical pulled back to the first decorator's "@" when the
//     def or class is decorated.
//   - Branch covers a dependent clause (elif/else/except/finally/case),
//     from just after the clause's colon through the end of its suite.
type Spans struct {
	Ident   *Span
	Lexical *Span
	Def     *Span
	Branch  *Span
}

// PositionTable maps NodeIDs to the spans recorded while parsing. It is
// populated once during tree construction and read-only afterwards.
type PositionTable struct {
	spans map[NodeID]*Spans
}

func NewPositionTable() *PositionTable {
	return &PositionTable{spans: make(map[NodeID]*Spans)}
}

// Get returns the spans for the given node, or nil if none were recorded.
func (t *PositionTable) Get(id NodeID) *Spans {
	return t.spans[id]
}

func (t *PositionTable) entry(id NodeID) *Spans {
	sp := t.spans[id]
	if sp == nil {
		sp = &Spans{}
		t.spans[id] = sp
	}
	return sp
}

// SetIdent records the identifier span for a node.
func (t *PositionTable) SetIdent(id NodeID, sp Span) {
	t.entry(id).Ident = &sp
}

// SetLexical records the lexical span for a node.
func (t *PositionTable) SetLexical(id NodeID, sp Span) {
	t.entry(id).Lexical = &sp
}

// SetDef records the definition header span for a node.
func (t *PositionTable) SetDef(id NodeID, sp Span) {
	t.entry(id).Def = &sp
}

// SetBranch records the branch span for a node.
func (t *PositionTable) SetBranch(id NodeID, sp Span) {
	t.entry(id).Branch = &sp
}

// Len returns the number of nodes with recorded spans.
func (t *PositionTable) Len() int {
	return len(t.spans)
}

// IDs returns all recorded NodeIDs in increasing order.
func (t *PositionTable) IDs() []NodeID {
	ids := make([]NodeID, 0, len(t.spans))
	for id := range t.spans {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
