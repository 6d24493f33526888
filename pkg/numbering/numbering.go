// Package numbering assigns system call numbers to descriptor groups.
//
// Every pass starts its own counter at -1 and decrements it once per name,
// walking the given group lists in order. Kernel and library headers each run
// independent passes; they must never share a counter.
package numbering

import "github.com/honeybbq/syscallgen/pkg/descriptor"

// Max is the number given to the first syscall of every pass.
const Max = -1

// Syscall is a single numbered system call.
type Syscall struct {
	Name      string
	Number    int
	Condition string
}

// Group is a numbered descriptor group.
type Group struct {
	Condition string
	Syscalls  []Syscall
}

// NameEntry maps a positive table index to a syscall name.
type NameEntry struct {
	Index int
	Name  string
}

// Assign runs one numbering pass over the concatenation of lists.
func Assign(lists ...[]descriptor.Group) []Group {
	next := Max
	var out []Group
	for _, groups := range lists {
		for _, g := range groups {
			ng := Group{
				Condition: g.Condition,
				Syscalls:  make([]Syscall, 0, len(g.Names)),
			}
			for _, name := range g.Names {
				ng.Syscalls = append(ng.Syscalls, Syscall{
					Name:      name,
					Number:    next,
					Condition: g.Condition,
				})
				next--
			}
			out = append(out, ng)
		}
	}
	return out
}

// Flatten returns the syscalls of groups in order.
func Flatten(groups []Group) []Syscall {
	var out []Syscall
	for _, g := range groups {
		out = append(out, g.Syscalls...)
	}
	return out
}

// Bounds returns the SYSCALL_MIN and SYSCALL_MAX values for a pass over
// groups. hi is always Max; lo is the last assigned number, or Max+1 when
// groups is empty.
func Bounds(groups []Group) (lo, hi int) {
	next := Max
	for _, g := range groups {
		next -= len(g.Syscalls)
	}
	return next + 1, Max
}

// NameTable indexes the syscalls of groups from 1 upwards, in order.
func NameTable(groups []Group) []NameEntry {
	index := 1
	var out []NameEntry
	for _, g := range groups {
		for _, sc := range g.Syscalls {
			out = append(out, NameEntry{Index: index, Name: sc.Name})
			index++
		}
	}
	return out
}
