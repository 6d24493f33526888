package manifest

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/honeybbq/syscallgen/domain/manifest"
	"github.com/honeybbq/syscallgen/pkg/descriptor"
	"github.com/honeybbq/syscallgen/pkg/renderer"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

type Backend struct {
	renderer renderer.Renderer[*structpb.Struct]
}

func New(r renderer.Renderer[*structpb.Struct]) *Backend {
	return &Backend{renderer: r}
}

func (b *Backend) Name() string {
	return "manifest"
}

func (b *Backend) ToNative(ctx context.Context, cat *descriptor.Catalog, opts syscallgen.RenderOptions) (*syscallgen.Bundle, error) {
	ctx, cancel := syscallgen.WithTimeout(ctx, opts)
	defer cancel()

	cfg, err := domain.FromCatalog(cat)
	if err != nil {
		return nil, err
	}
	msg, err := cfg.ToProto(opts)
	if err != nil {
		return nil, err
	}
	return b.renderer.Render(ctx, msg, opts)
}
