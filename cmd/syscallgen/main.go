package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	kernelbackend "github.com/honeybbq/syscallgen/backend/kernel"
	libsel4backend "github.com/honeybbq/syscallgen/backend/libsel4"
	manifestbackend "github.com/honeybbq/syscallgen/backend/manifest"
	"github.com/honeybbq/syscallgen/pkg/descriptor"
	kernelrenderer "github.com/honeybbq/syscallgen/pkg/renderer/kernel"
	libsel4renderer "github.com/honeybbq/syscallgen/pkg/renderer/libsel4"
	manifestrenderer "github.com/honeybbq/syscallgen/pkg/renderer/manifest"
	"github.com/honeybbq/syscallgen/pkg/scerrors"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

const (
	exitOK      = 0
	exitFailure = 1
)

const helpText = `Usage: syscallgen --xml <path> [--kernel_header <path>] [--libsel4_header <path>] [--manifest <path>]

At least one of --kernel_header and --libsel4_header is required.

Generate seL4 syscall API constants and associated header files.

`

type options struct {
	xmlPath       string
	kernelHeader  string
	libsel4Header string
	manifest      string
	generationTag string
	verbose       bool
}

// target is one requested output file.
type target struct {
	path    string
	backend syscallgen.Backend
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := pflag.NewFlagSet("syscallgen", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, helpText)
		fmt.Fprint(stderr, fs.FlagUsages())
	}

	opts, err := parseArgs(fs, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		var se *scerrors.Error
		if errors.As(err, &se) && se.Kind == scerrors.KindUsage {
			fmt.Fprintln(stderr, "Error:", se.Err)
			fs.Usage()
		} else {
			fmt.Fprintln(stderr, "error:", err)
		}
		return exitFailure
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := generate(context.Background(), logger, opts); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitFailure
	}
	return exitOK
}

// parseArgs 解析命令行参数；用法错误统一返回 KindUsage。
func parseArgs(fs *pflag.FlagSet, args []string) (options, error) {
	var opts options
	fs.StringVar(&opts.xmlPath, "xml", "", "Name of xml file with syscall name definitions (required)")
	fs.StringVar(&opts.kernelHeader, "kernel_header", "", "Name of file to generate for kernel")
	fs.StringVar(&opts.libsel4Header, "libsel4_header", "", "Name of file to generate for libsel4")
	fs.StringVar(&opts.manifest, "manifest", "", "Name of JSON file describing the assigned syscall numbers")
	fs.StringVar(&opts.generationTag, "generation_tag", "", "Generator path named in the header comment")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log each generation step to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return opts, err
		}
		return opts, scerrors.New(scerrors.KindUsage, err)
	}
	// manifest 只是附加输出，至少需要一个头文件
	if opts.kernelHeader == "" && opts.libsel4Header == "" {
		return opts, scerrors.New(scerrors.KindUsage, errors.New("must provide either kernel_header or libsel4_header"))
	}
	if opts.xmlPath == "" {
		return opts, scerrors.New(scerrors.KindUsage, errors.New("--xml is required"))
	}
	return opts, nil
}

func generate(ctx context.Context, logger *slog.Logger, opts options) error {
	cat, err := descriptor.LoadFile(opts.xmlPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded descriptor",
		"path", opts.xmlPath,
		"api", cat.APICount(),
		"debug", cat.DebugCount(),
	)

	renderOpts := syscallgen.RenderOptions{GenerationTag: opts.generationTag}

	var targets []target
	if opts.kernelHeader != "" {
		targets = append(targets, target{
			path:    opts.kernelHeader,
			backend: kernelbackend.New(kernelrenderer.NewPlainTextRenderer()),
		})
	}
	if opts.libsel4Header != "" {
		targets = append(targets, target{
			path:    opts.libsel4Header,
			backend: libsel4backend.New(libsel4renderer.NewPlainTextRenderer()),
		})
	}
	if opts.manifest != "" {
		targets = append(targets, target{
			path:    opts.manifest,
			backend: manifestbackend.New(manifestrenderer.NewJSONRenderer()),
		})
	}

	// 全部渲染成功后才写文件
	bundles := make([]*syscallgen.Bundle, len(targets))
	for i, t := range targets {
		bundle, err := t.backend.ToNative(ctx, cat, renderOpts)
		if err != nil {
			return errors.Wrapf(err, "render %s", t.backend.Name())
		}
		bundles[i] = bundle
	}

	for i, t := range targets {
		content := bundles[i].Main()
		if err := os.WriteFile(t.path, content, 0o644); err != nil {
			return scerrors.New(scerrors.KindIO, errors.Wrapf(err, "write %s output %q", t.backend.Name(), t.path))
		}
		logger.Debug("wrote output",
			"backend", t.backend.Name(),
			"path", t.path,
			"bytes", len(content),
		)
	}
	return nil
}
