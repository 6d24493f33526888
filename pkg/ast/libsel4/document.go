package libsel4

import "github.com/honeybbq/syscallgen/pkg/ast/cheader"

// Document 表示 libsel4 的公共 syscall ID 头文件。
type Document struct {
	Provenance cheader.Provenance
	Guard      string
	Includes   []string

	// TypeName names the typedef'd enum and its SEL4_FORCE_LONG_ENUM sentinel.
	TypeName     string
	MemberPrefix string
	Enum         []cheader.EnumGroup

	// ClosingComment is the text of the comment after the final #endif.
	ClosingComment string
}
