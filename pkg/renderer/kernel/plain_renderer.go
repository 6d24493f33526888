package kernel

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	ast "github.com/honeybbq/syscallgen/pkg/ast/kernel"
	"github.com/honeybbq/syscallgen/pkg/renderer"
	"github.com/honeybbq/syscallgen/pkg/renderer/cheader"
	"github.com/honeybbq/syscallgen/pkg/scerrors"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

// FileName is the package name of the rendered kernel header.
const FileName = "syscall.h"

// PlainTextRenderer 渲染内核 syscall 头文件。
type PlainTextRenderer struct{}

func NewPlainTextRenderer() *PlainTextRenderer {
	return &PlainTextRenderer{}
}

// Render 实现 renderer.Renderer。
func (r *PlainTextRenderer) Render(ctx context.Context, doc *ast.Document, opts syscallgen.RenderOptions) (*syscallgen.Bundle, error) {
	if err := renderer.CheckContext(ctx); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, scerrors.New(scerrors.KindRender, errors.New("kernel document is nil"))
	}
	if doc.Guard == "" {
		return nil, scerrors.New(scerrors.KindRender, errors.New("kernel document has no include guard"))
	}
	if len(doc.Defines) == 0 {
		return nil, scerrors.New(scerrors.KindRender, errors.New("kernel document has no syscalls"))
	}

	var b strings.Builder
	cheader.WriteProvenance(&b, doc.Provenance)
	fmt.Fprintf(&b, "#ifndef %s\n", doc.Guard)
	fmt.Fprintf(&b, "#define %s\n", doc.Guard)
	b.WriteString("\n")

	// 汇编可见的宏定义
	b.WriteString("#ifdef __ASSEMBLER__\n")
	b.WriteString("\n")
	b.WriteString("/* System Calls */\n")
	for _, d := range doc.Defines {
		fmt.Fprintf(&b, "#define %s (%d)\n", d.Name, d.Value)
	}
	b.WriteString("\n")
	b.WriteString("#endif\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "#define SYSCALL_MAX (%d)\n", doc.Max)
	fmt.Fprintf(&b, "#define SYSCALL_MIN (%d)\n", doc.Min)
	b.WriteString("\n")

	b.WriteString("#ifndef __ASSEMBLER__\n")
	b.WriteString("\n")
	b.WriteString("enum syscall {\n")
	cheader.WriteEnumGroups(&b, doc.MemberPrefix, doc.Enum)
	b.WriteString("};\n")
	b.WriteString("typedef word_t syscall_t;\n")
	b.WriteString("\n")

	// 名字表只在调试构建中编译
	b.WriteString("/* System call names */\n")
	b.WriteString("#ifdef CONFIG_DEBUG_BUILD\n")
	b.WriteString("static char *syscall_names[] UNUSED = {\n")
	for _, entry := range doc.Names {
		fmt.Fprintf(&b, "         [%d] = \"%s\",\n", entry.Index, entry.Name)
	}
	b.WriteString("};\n")
	b.WriteString("#endif /* CONFIG_DEBUG_BUILD */\n")
	b.WriteString("#endif\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "#endif /* %s */\n", doc.Guard)

	if err := renderer.CheckContext(ctx); err != nil {
		return nil, err
	}

	bundle := syscallgen.NewBundle("c-header", "kernel")
	bundle.Packages = append(bundle.Packages, syscallgen.Package{
		Name:    FileName,
		Content: []byte(b.String()),
	})
	bundle.Metadata.Custom["syscall_min"] = strconv.Itoa(doc.Min)
	bundle.Metadata.Custom["syscall_max"] = strconv.Itoa(doc.Max)
	return bundle, nil
}
