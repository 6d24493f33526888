package manifest

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/honeybbq/syscallgen/pkg/renderer"
	"github.com/honeybbq/syscallgen/pkg/scerrors"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

// FileName is the package name of the rendered manifest.
const FileName = "syscalls.json"

// JSONRenderer 将编号清单渲染为 JSON。
type JSONRenderer struct {
	marshal protojson.MarshalOptions
}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{
		marshal: protojson.MarshalOptions{
			Multiline: true,
			Indent:    "  ",
		},
	}
}

func (r *JSONRenderer) Render(ctx context.Context, doc *structpb.Struct, opts syscallgen.RenderOptions) (*syscallgen.Bundle, error) {
	if err := renderer.CheckContext(ctx); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, scerrors.New(scerrors.KindRender, errors.New("manifest is nil"))
	}
	payload, err := r.marshal.Marshal(doc)
	if err != nil {
		return nil, scerrors.New(scerrors.KindRender, errors.Wrap(err, "encode manifest"))
	}
	if len(payload) == 0 || payload[len(payload)-1] != '\n' {
		payload = append(payload, '\n')
	}

	bundle := syscallgen.NewBundle("json", "manifest")
	bundle.Packages = append(bundle.Packages, syscallgen.Package{
		Name:    FileName,
		Content: payload,
	})
	return bundle, nil
}
