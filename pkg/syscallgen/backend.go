package syscallgen

import (
	"context"

	"github.com/honeybbq/syscallgen/pkg/descriptor"
)

// Backend defines the interface every output format must follow.
// Each backend runs its own numbering pass over the catalog; backends never
// share numbering state.
type Backend interface {
	// Name returns the backend identifier (e.g., "kernel", "libsel4").
	Name() string

	// ToNative renders the catalog into the backend's output format.
	ToNative(ctx context.Context, cat *descriptor.Catalog, opts RenderOptions) (*Bundle, error)
}
