package kernel

import (
	"github.com/pkg/errors"

	"github.com/honeybbq/syscallgen/domain/utils"
	ast "github.com/honeybbq/syscallgen/pkg/ast/kernel"
	"github.com/honeybbq/syscallgen/pkg/descriptor"
	"github.com/honeybbq/syscallgen/pkg/numbering"
	"github.com/honeybbq/syscallgen/pkg/scerrors"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

const (
	License      = "@LICENSE(OKL_CORE)"
	Guard        = "__ARCH_API_SYSCALL_H"
	MemberPrefix = "Sys"
)

// Config 表示内核头文件的领域模型。
type Config struct {
	Catalog *descriptor.Catalog
}

func FromCatalog(cat *descriptor.Catalog) (*Config, error) {
	if cat == nil {
		return nil, scerrors.New(scerrors.KindInternal, errors.New("catalog is nil"))
	}
	if cat.APICount() == 0 {
		return nil, scerrors.New(scerrors.KindEmpty, scerrors.ErrEmptyCatalog)
	}
	return &Config{Catalog: cat}, nil
}

// ToAST runs the two kernel numbering passes. The api-only pass feeds the
// assembler defines, the bounds and the name table; the api+debug pass feeds
// the enum.
func (c *Config) ToAST(opts syscallgen.RenderOptions) (*ast.Document, error) {
	if c == nil || c.Catalog == nil {
		return nil, scerrors.New(scerrors.KindInternal, errors.New("config is nil"))
	}

	apiPass := numbering.Assign(c.Catalog.API)
	enumPass := numbering.Assign(c.Catalog.API, c.Catalog.Debug)
	lo, hi := numbering.Bounds(apiPass)

	doc := &ast.Document{
		Provenance:   utils.Provenance(License, opts),
		Guard:        Guard,
		Max:          hi,
		Min:          lo,
		MemberPrefix: MemberPrefix,
		Enum:         utils.EnumGroups(enumPass),
	}
	for _, sc := range numbering.Flatten(apiPass) {
		doc.Defines = append(doc.Defines, ast.Define{
			Name:  utils.MacroName(sc.Name),
			Value: sc.Number,
		})
	}
	for _, entry := range numbering.NameTable(apiPass) {
		doc.Names = append(doc.Names, ast.NameEntry{Index: entry.Index, Name: entry.Name})
	}
	return doc, nil
}
