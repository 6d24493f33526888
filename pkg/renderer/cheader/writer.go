// Package cheader holds the text fragments shared by the C header renderers.
package cheader

import (
	"fmt"
	"strings"

	ast "github.com/honeybbq/syscallgen/pkg/ast/cheader"
)

// WriteProvenance writes the license line and the generated-file comment.
func WriteProvenance(b *strings.Builder, p ast.Provenance) {
	fmt.Fprintf(b, "/* %s */\n", p.License)
	b.WriteString("\n")
	fmt.Fprintf(b, "/* This header was generated by %s.\n", p.Generator)
	b.WriteString(" *\n")
	fmt.Fprintf(b, " * To add a system call number, edit %s\n", p.Descriptor)
	b.WriteString(" *\n")
	b.WriteString(" */\n")
}

// WriteEnumGroups writes one "    <prefix><name> = <value>," line per member,
// wrapping groups that carry a condition in #if / #endif.
func WriteEnumGroups(b *strings.Builder, prefix string, groups []ast.EnumGroup) {
	for _, g := range groups {
		if g.Condition != "" {
			fmt.Fprintf(b, "#if %s\n", g.Condition)
		}
		for _, m := range g.Members {
			fmt.Fprintf(b, "    %s%s = %d,\n", prefix, m.Name, m.Value)
		}
		if g.Condition != "" {
			fmt.Fprintf(b, "#endif /* %s */\n", g.Condition)
		}
	}
}
