package grammar

import (
	"fmt"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

// String renders the declarations as a tree. Aliases and constants that
// follow a label are nested under it.
func (o *Outline) String() string {
	var b strings.Builder

	level := 0
	for _, d := range o.Declarations() {
		if d.Kind == "label" {
			b.WriteString(d.StringWithIndent(0))
			level = 1
			continue
		}
		b.WriteString(d.StringWithIndent(level))
	}

	return b.String()
}

func (d Declaration) String() string {
	s := fmt.Sprintf("%-5s %s", d.Kind, d.Name)
	if d.Detail != "" {
		s += " " + d.Detail
	}
	return s
}

func (d Declaration) StringWithIndent(level int) string {
	return fmt.Sprintf("%s%s  (%d:%d)\n", indent(level), d.String(), d.Pos.Line, d.Pos.Column)
}
