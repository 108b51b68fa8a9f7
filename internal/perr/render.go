package perr

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// visualWidth reports the monospace display width of s: most runes
// count for one column, East Asian wide/fullwidth runes for two. s is
// NFC-normalized first so a combining-mark sequence with a precomposed
// form measures as a single column (any other combining mark counts as
// a column of its own), mirroring
// the teacher's golang.org/x/text/unicode/norm identifier normalization
// in internal/lexer/normalize.go — repurposed here for diagnostic
// alignment rather than lexing, since this core has no lexer (§1
// Non-goal).
func visualWidth(s string) int {
	w := 0
	for _, r := range norm.NFC.String(s) {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// Render formats r as a diagnostic suitable for a monospace terminal:
// the code/message line, then one caret line per label, indented to
// align under the report's code so a label's text lines up regardless
// of how wide the identifiers in Message are.
func Render(r *Report) string {
	var b strings.Builder
	b.WriteString(r.Error())
	indent := visualWidth(r.Code) + 2
	for _, l := range r.Labels {
		if l.Text == "" {
			continue
		}
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", indent))
		b.WriteString("^ ")
		b.WriteString(l.Text)
	}
	return b.String()
}
