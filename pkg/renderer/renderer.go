package renderer

import (
	"context"

	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

// Renderer 定义渲染接口，使用泛型约束文档类型。
type Renderer[T any] interface {
	Render(ctx context.Context, doc T, opts syscallgen.RenderOptions) (*syscallgen.Bundle, error)
}

// CheckContext returns ctx's error if it is already done.
func CheckContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
