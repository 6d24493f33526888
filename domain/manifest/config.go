package manifest

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/honeybbq/syscallgen/domain/utils"
	"github.com/honeybbq/syscallgen/pkg/descriptor"
	"github.com/honeybbq/syscallgen/pkg/numbering"
	"github.com/honeybbq/syscallgen/pkg/scerrors"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

// Config 表示编号清单的领域模型。
type Config struct {
	Catalog *descriptor.Catalog
}

func FromCatalog(cat *descriptor.Catalog) (*Config, error) {
	if cat == nil {
		return nil, scerrors.New(scerrors.KindInternal, errors.New("catalog is nil"))
	}
	if cat.APICount() == 0 {
		return nil, scerrors.New(scerrors.KindEmpty, scerrors.ErrEmptyCatalog)
	}
	return &Config{Catalog: cat}, nil
}

// ToProto describes the numbering the headers are generated from as a
// google.protobuf.Struct.
func (c *Config) ToProto(opts syscallgen.RenderOptions) (*structpb.Struct, error) {
	if c == nil || c.Catalog == nil {
		return nil, scerrors.New(scerrors.KindInternal, errors.New("config is nil"))
	}

	apiPass := numbering.Assign(c.Catalog.API)
	lo, hi := numbering.Bounds(apiPass)

	api := make([]any, 0, c.Catalog.APICount())
	for _, sc := range numbering.Flatten(apiPass) {
		api = append(api, map[string]any{
			"name":      sc.Name,
			"number":    sc.Number,
			"condition": sc.Condition,
			"macro":     utils.MacroName(sc.Name),
		})
	}

	// debug 编号接在 api 之后
	combined := numbering.Flatten(numbering.Assign(c.Catalog.API, c.Catalog.Debug))
	debug := make([]any, 0, c.Catalog.DebugCount())
	for _, sc := range combined[len(api):] {
		debug = append(debug, map[string]any{
			"name":      sc.Name,
			"number":    sc.Number,
			"condition": sc.Condition,
		})
	}

	names := make([]any, 0, len(api))
	for _, entry := range numbering.NameTable(apiPass) {
		names = append(names, map[string]any{
			"index": entry.Index,
			"name":  entry.Name,
		})
	}

	st, err := structpb.NewStruct(map[string]any{
		"generator":  utils.Provenance("", opts).Generator,
		"syscallMax": hi,
		"syscallMin": lo,
		"api":        api,
		"debug":      debug,
		"names":      names,
	})
	if err != nil {
		return nil, scerrors.New(scerrors.KindInternal, errors.Wrap(err, "build manifest"))
	}
	return st, nil
}
