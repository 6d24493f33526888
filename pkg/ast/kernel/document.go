package kernel

import "github.com/honeybbq/syscallgen/pkg/ast/cheader"

// Document 表示完整的内核 syscall 头文件。
type Document struct {
	Provenance cheader.Provenance
	Guard      string

	// Defines are emitted inside the __ASSEMBLER__ block.
	Defines []Define
	Max     int
	Min     int

	// MemberPrefix is prepended to every enum member name.
	MemberPrefix string
	Enum         []cheader.EnumGroup

	// Names populate syscall_names[] under CONFIG_DEBUG_BUILD.
	Names []NameEntry
}

// Define 对应 "#define NAME (VALUE)"。
type Define struct {
	Name  string
	Value int
}

// NameEntry 对应名字表中的 "[Index] = "Name"," 一行。
type NameEntry struct {
	Index int
	Name  string
}
