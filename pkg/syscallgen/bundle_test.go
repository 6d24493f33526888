package syscallgen

import (
	"context"
	"testing"
	"time"
)

func TestNewBundle(t *testing.T) {
	b := NewBundle("c-header", "kernel")
	if b.Main() != nil {
		t.Fatal("empty bundle must have no main content")
	}
	if b.Metadata.Format != "c-header" || b.Metadata.Backend != "kernel" {
		t.Fatalf("unexpected metadata %+v", b.Metadata)
	}
	if b.Metadata.Generated.IsZero() || b.Metadata.Custom == nil {
		t.Fatal("metadata not initialized")
	}

	b.Packages = append(b.Packages, Package{Name: "syscall.h", Content: []byte("x")})
	if string(b.Main()) != "x" {
		t.Fatalf("Main() = %q", b.Main())
	}

	var nilBundle *Bundle
	if nilBundle.Main() != nil {
		t.Fatal("nil bundle must have no main content")
	}
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), RenderOptions{})
	if _, ok := ctx.Deadline(); ok {
		t.Fatal("zero timeout must not set a deadline")
	}
	cancel()
	if ctx.Err() == nil {
		t.Fatal("cancel must cancel the derived context")
	}

	ctx, cancel = WithTimeout(context.Background(), RenderOptions{Timeout: time.Minute})
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("expected deadline")
	}
}
