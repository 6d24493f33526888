package libsel4

import (
	"github.com/pkg/errors"

	"github.com/honeybbq/syscallgen/domain/utils"
	ast "github.com/honeybbq/syscallgen/pkg/ast/libsel4"
	"github.com/honeybbq/syscallgen/pkg/descriptor"
	"github.com/honeybbq/syscallgen/pkg/numbering"
	"github.com/honeybbq/syscallgen/pkg/scerrors"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

const (
	License      = "@LICENSE(NICTA)"
	Guard        = "__LIBSEL4_SYSCALL_H"
	TypeName     = "seL4_Syscall_ID"
	MemberPrefix = "seL4_Sys"

	// closingComment is what existing headers carry after their last
	// #endif; it does not match Guard.
	closingComment = "__ARCH_API_SYSCALL_H"
)

// Config 表示 libsel4 头文件的领域模型。
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

// ToAST runs the library numbering pass over api then debug groups.
func (c *Config) ToAST(opts syscallgen.RenderOptions) (*ast.Document, error) {
	if c == nil || c.Catalog == nil {
		return nil, scerrors.New(scerrors.KindInternal, errors.New("config is nil"))
	}
	pass := numbering.Assign(c.Catalog.API, c.Catalog.Debug)
	return &ast.Document{
		Provenance:     utils.Provenance(License, opts),
		Guard:          Guard,
		Includes:       []string{"autoconf.h"},
		TypeName:       TypeName,
		MemberPrefix:   MemberPrefix,
		Enum:           utils.EnumGroups(pass),
		ClosingComment: closingComment,
	}, nil
}
