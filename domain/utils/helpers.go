package utils

import (
	"github.com/honeybbq/syscallgen/pkg/ast/cheader"
	"github.com/honeybbq/syscallgen/pkg/numbering"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

// Provenance builds the header comment for license, filling unset
// generator and descriptor paths with their defaults.
func Provenance(license string, opts syscallgen.RenderOptions) cheader.Provenance {
	p := cheader.Provenance{
		License:    license,
		Generator:  opts.GenerationTag,
		Descriptor: opts.Descriptor,
	}
	if p.Generator == "" {
		p.Generator = cheader.DefaultGenerator
	}
	if p.Descriptor == "" {
		p.Descriptor = cheader.DefaultDescriptor
	}
	return p
}

// EnumGroups converts numbered groups into enum groups, keeping raw names.
func EnumGroups(groups []numbering.Group) []cheader.EnumGroup {
	out := make([]cheader.EnumGroup, 0, len(groups))
	for _, g := range groups {
		eg := cheader.EnumGroup{
			Condition: g.Condition,
			Members:   make([]cheader.EnumMember, 0, len(g.Syscalls)),
		}
		for _, sc := range g.Syscalls {
			eg.Members = append(eg.Members, cheader.EnumMember{Name: sc.Name, Value: sc.Number})
		}
		out = append(out, eg)
	}
	return out
}
