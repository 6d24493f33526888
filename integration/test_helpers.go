package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/honeybbq/syscallgen/pkg/descriptor"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

// loadCatalog 读取 testdata 下的描述文件
func loadCatalog(t *testing.T, name string) *descriptor.Catalog {
	t.Helper()
	cat, err := descriptor.LoadFile(filepath.Join("..", "testdata", name))
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return cat
}

// readGolden 读取期望输出
func readGolden(t *testing.T, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{"..", "testdata"}, parts...)...)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	return string(data)
}

// bundleToText 返回 bundle 的主文件内容
func bundleToText(bundle *syscallgen.Bundle) string {
	return string(bundle.Main())
}

// formatHeaderDiff 格式化头文件差异信息。头文件必须逐字节一致，这里不做任何标准化。
func formatHeaderDiff(got, want string) string {
	if got == want {
		return "headers match"
	}

	gotLines := strings.Split(got, "\n")
	wantLines := strings.Split(want, "\n")

	var b strings.Builder
	fmt.Fprintf(&b, "header mismatch (got %d lines, want %d lines)\n", len(gotLines), len(wantLines))
	fmt.Fprintf(&b, "--- got ---\n%s\n", got)
	fmt.Fprintf(&b, "--- want ---\n%s\n", want)

	// 逐行比较找出差异
	maxLines := len(gotLines)
	if len(wantLines) > maxLines {
		maxLines = len(wantLines)
	}

	fmt.Fprintf(&b, "--- line-by-line diff ---\n")
	for i := 0; i < maxLines; i++ {
		var gotLine, wantLine string
		if i < len(gotLines) {
			gotLine = gotLines[i]
		}
		if i < len(wantLines) {
			wantLine = wantLines[i]
		}

		if gotLine != wantLine {
			fmt.Fprintf(&b, "Line %d differs:\n", i+1)
			fmt.Fprintf(&b, "  got:  %q\n", gotLine)
			fmt.Fprintf(&b, "  want: %q\n", wantLine)
		}
	}

	return b.String()
}
