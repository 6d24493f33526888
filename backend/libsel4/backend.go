package libsel4

import (
	"context"

	domain "github.com/honeybbq/syscallgen/domain/libsel4"
	ast "github.com/honeybbq/syscallgen/pkg/ast/libsel4"
	"github.com/honeybbq/syscallgen/pkg/descriptor"
	"github.com/honeybbq/syscallgen/pkg/renderer"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

// Backend 实现 descriptor → libsel4 头文件的转换。
type Backend struct {
	renderer renderer.Renderer[*ast.Document]
}

// New 构造 Backend。
func New(r renderer.Renderer[*ast.Document]) *Backend {
	return &Backend{renderer: r}
}

// Name 实现 Backend 接口。
func (b *Backend) Name() string {
	return "libsel4"
}

// ToNative 实现前向转换。
func (b *Backend) ToNative(ctx context.Context, cat *descriptor.Catalog, opts syscallgen.RenderOptions) (*syscallgen.Bundle, error) {
	ctx, cancel := syscallgen.WithTimeout(ctx, opts)
	defer cancel()

	cfg, err := domain.FromCatalog(cat)
	if err != nil {
		return nil, err
	}
	doc, err := cfg.ToAST(opts)
	if err != nil {
		return nil, err
	}
	return b.renderer.Render(ctx, doc, opts)
}
