package syscallgen

import (
	"context"
	"time"
)

// RenderOptions controls the rendering process (descriptor → header).
type RenderOptions struct {
	GenerationTag string        // Generator path named in the provenance comment; empty uses the default
	Descriptor    string        // Descriptor path named in the provenance comment; empty uses the default
	Timeout       time.Duration // Maximum time allowed for rendering, zero for no limit
}

// WithTimeout derives a context bounded by opts.Timeout. The returned cancel
// function must always be called.
func WithTimeout(ctx context.Context, opts RenderOptions) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, opts.Timeout)
}
