package syscallgen

import (
	"time"
)

// Package represents a single generated file.
// Every backend currently produces exactly one package per render.
type Package struct {
	Name    string // Package name (e.g., "syscall.h")
	Content []byte // Complete file content
}

// Metadata stores information about how and when the output was generated.
type Metadata struct {
	Format    string            // Format identifier ("c-header", "json")
	Backend   string            // Backend name that generated this bundle
	Generated time.Time         // Timestamp when the bundle was created
	Version   string            // Optional version tag
	Custom    map[string]string // Extensible metadata for backend-specific information
}

// Bundle represents the complete output of a render operation.
// Rendering happens entirely in memory; a Bundle is only returned once the
// whole output has been produced.
type Bundle struct {
	Packages []Package // Generated files
	Metadata Metadata  // Generation metadata
}

// NewBundle creates an empty Bundle with initialized metadata.
// The Generated timestamp is set to the current time.
func NewBundle(format, backend string) *Bundle {
	return &Bundle{
		Packages: make([]Package, 0),
		Metadata: Metadata{
			Format:    format,
			Backend:   backend,
			Generated: time.Now(),
			Custom:    make(map[string]string),
		},
	}
}

// Main returns the content of the first package, or nil for an empty bundle.
func (b *Bundle) Main() []byte {
	if b == nil || len(b.Packages) == 0 {
		return nil
	}
	return b.Packages[0].Content
}
