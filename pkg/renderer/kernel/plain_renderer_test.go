package kernel

import (
	"context"
	"strings"
	"testing"

	"github.com/honeybbq/syscallgen/pkg/ast/cheader"
	ast "github.com/honeybbq/syscallgen/pkg/ast/kernel"
	"github.com/honeybbq/syscallgen/pkg/scerrors"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

func TestRenderRejectsIncompleteDocuments(t *testing.T) {
	r := NewPlainTextRenderer()
	for name, doc := range map[string]*ast.Document{
		"nil":      nil,
		"no guard": {Defines: []ast.Define{{Name: "SYSCALL_CALL", Value: -1}}},
		"empty":    {Guard: "__G"},
	} {
		t.Run(name, func(t *testing.T) {
			bundle, err := r.Render(context.Background(), doc, syscallgen.RenderOptions{})
			if !scerrors.IsKind(err, scerrors.KindRender) {
				t.Fatalf("expected render error, got %v", err)
			}
			if bundle != nil {
				t.Fatal("no bundle may be returned on failure")
			}
		})
	}
}

func TestRenderEmptyNameTable(t *testing.T) {
	doc := &ast.Document{
		Provenance:   cheader.Provenance{License: "L", Generator: "G", Descriptor: "D"},
		Guard:        "__G",
		Defines:      []ast.Define{{Name: "SYSCALL_CALL", Value: -1}},
		Max:          -1,
		Min:          -1,
		MemberPrefix: "Sys",
		Enum:         []cheader.EnumGroup{{Members: []cheader.EnumMember{{Name: "Call", Value: -1}}}},
	}
	bundle, err := NewPlainTextRenderer().Render(context.Background(), doc, syscallgen.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := string(bundle.Main())
	if !strings.Contains(got, "static char *syscall_names[] UNUSED = {\n};\n") {
		t.Fatalf("expected empty name table:\n%s", got)
	}
	if !strings.HasSuffix(got, "#endif /* __G */\n") {
		t.Fatalf("unexpected trailer:\n%s", got)
	}
	if bundle.Packages[0].Name != FileName {
		t.Fatalf("unexpected package name %q", bundle.Packages[0].Name)
	}
}
