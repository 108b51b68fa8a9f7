// Package ast defines the immutable term and declaration model shared by
// the evaluator and the xfunctionalizer: expressions, (co)match bodies,
// and top-level data/codata/def/codef declarations.
package ast

import "fmt"

// Pos is a single point in source, expressed both as line/column (for
// human-facing diagnostics) and as a byte offset (for span arithmetic).
type Pos struct {
	File   string
	Line   int
	Column int
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span is a half-open, 0-based byte range [Start.Offset, End.Offset) into
// a source module. Every term carries an optional Span; Spans are how the
// xfunctionalizer addresses surgical text edits.
type Span struct {
	Start Pos
	End   Pos
}

// Len reports the byte length of the span.
func (s Span) Len() int { return s.End.Offset - s.Start.Offset }

// Overlaps reports whether two spans share any byte offset.
func (s Span) Overlaps(o Span) bool {
	return s.Start.Offset < o.End.Offset && o.Start.Offset < s.End.Offset
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.Start, s.End.Line, s.End.Column)
}
