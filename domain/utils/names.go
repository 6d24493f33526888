package utils

import (
	"regexp"
	"strings"
)

// assemblerWord matches one word of a mixed-case identifier: one or two
// upper-case letters followed by any non upper-case run.
var assemblerWord = regexp.MustCompile(`[A-Z][A-Z]?[^A-Z]*`)

var upperSnake = regexp.MustCompile(`^[A-Z0-9_]+$`)

// AssemblerName converts a syscall name into the suffix of its SYSCALL_
// macro, e.g. "NBSend" -> "NB_SEND". Names that are already upper snake case
// are returned unchanged. Anything before the first upper-case letter is
// dropped.
func AssemblerName(name string) string {
	if upperSnake.MatchString(name) {
		return name
	}
	words := assemblerWord.FindAllString(name, -1)
	return strings.ToUpper(strings.Join(words, "_"))
}

// MacroName returns the full assembler macro for name.
func MacroName(name string) string {
	return "SYSCALL_" + AssemblerName(name)
}
