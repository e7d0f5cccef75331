package diag

import "strings"

// List collects diagnostics from a stage that can report more than one
// failure before giving up (the parser, per spec.md §7: "the parser is
// free to continue after syntax errors").
type List []*Diagnostic

func (l List) Error() string {
	var b strings.Builder
	for i, d := range l {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(d.Error())
	}
	return b.String()
}

func (l List) HasErrors() bool {
	return len(l) > 0
}
