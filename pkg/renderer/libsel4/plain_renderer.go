package libsel4

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	ast "github.com/honeybbq/syscallgen/pkg/ast/libsel4"
	"github.com/honeybbq/syscallgen/pkg/renderer"
	"github.com/honeybbq/syscallgen/pkg/renderer/cheader"
	"github.com/honeybbq/syscallgen/pkg/scerrors"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

// FileName is the package name of the rendered libsel4 header.
const FileName = "syscall.h"

// PlainTextRenderer 渲染 libsel4 syscall ID 头文件。
type PlainTextRenderer struct{}

func NewPlainTextRenderer() *PlainTextRenderer {
	return &PlainTextRenderer{}
}

func (r *PlainTextRenderer) Render(ctx context.Context, doc *ast.Document, opts syscallgen.RenderOptions) (*syscallgen.Bundle, error) {
	if err := renderer.CheckContext(ctx); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, scerrors.New(scerrors.KindRender, errors.New("libsel4 document is nil"))
	}
	if doc.Guard == "" || doc.TypeName == "" {
		return nil, scerrors.New(scerrors.KindRender, errors.New("libsel4 document is missing guard or type name"))
	}

	closing := doc.ClosingComment
	if closing == "" {
		closing = doc.Guard
	}

	var b strings.Builder
	cheader.WriteProvenance(&b, doc.Provenance)
	fmt.Fprintf(&b, "#ifndef %s\n", doc.Guard)
	fmt.Fprintf(&b, "#define %s\n", doc.Guard)
	b.WriteString("\n")
	for _, inc := range doc.Includes {
		fmt.Fprintf(&b, "#include <%s>\n", inc)
	}
	if len(doc.Includes) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("typedef enum {\n")
	cheader.WriteEnumGroups(&b, doc.MemberPrefix, doc.Enum)
	fmt.Fprintf(&b, "    SEL4_FORCE_LONG_ENUM(%s)\n", doc.TypeName)
	fmt.Fprintf(&b, "} %s;\n", doc.TypeName)
	b.WriteString("\n")
	fmt.Fprintf(&b, "#endif /* %s */\n", closing)

	if err := renderer.CheckContext(ctx); err != nil {
		return nil, err
	}

	bundle := syscallgen.NewBundle("c-header", "libsel4")
	bundle.Packages = append(bundle.Packages, syscallgen.Package{
		Name:    FileName,
		Content: []byte(b.String()),
	})
	return bundle, nil
}
