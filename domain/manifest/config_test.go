package manifest

import (
	"testing"

	"github.com/honeybbq/syscallgen/pkg/descriptor"
	"github.com/honeybbq/syscallgen/pkg/syscallgen"
)

func TestToProto(t *testing.T) {
	cat := &descriptor.Catalog{
		API: []descriptor.Group{
			{Names: []string{"Yield", "NBSend"}},
		},
		Debug: []descriptor.Group{
			{Condition: "CONFIG_DEBUG_BUILD", Names: []string{"DebugPutChar"}},
		},
	}
	cfg, err := FromCatalog(cat)
	if err != nil {
		t.Fatalf("FromCatalog: %v", err)
	}
	st, err := cfg.ToProto(syscallgen.RenderOptions{})
	if err != nil {
		t.Fatalf("ToProto: %v", err)
	}

	fields := st.GetFields()
	if got := fields["syscallMin"].GetNumberValue(); got != -2 {
		t.Fatalf("syscallMin = %v, want -2", got)
	}
	if got := fields["syscallMax"].GetNumberValue(); got != -1 {
		t.Fatalf("syscallMax = %v, want -1", got)
	}

	api := fields["api"].GetListValue().GetValues()
	if len(api) != 2 {
		t.Fatalf("expected 2 api entries, got %d", len(api))
	}
	second := api[1].GetStructValue().GetFields()
	if second["macro"].GetStringValue() != "SYSCALL_NB_SEND" || second["number"].GetNumberValue() != -2 {
		t.Fatalf("unexpected api entry %v", second)
	}

	debug := fields["debug"].GetListValue().GetValues()
	if len(debug) != 1 {
		t.Fatalf("expected 1 debug entry, got %d", len(debug))
	}
	entry := debug[0].GetStructValue().GetFields()
	if entry["number"].GetNumberValue() != -3 || entry["condition"].GetStringValue() != "CONFIG_DEBUG_BUILD" {
		t.Fatalf("unexpected debug entry %v", entry)
	}

	names := fields["names"].GetListValue().GetValues()
	if len(names) != 2 || names[0].GetStructValue().GetFields()["index"].GetNumberValue() != 1 {
		t.Fatalf("unexpected name table %v", names)
	}
	if fields["generator"].GetStringValue() == "" {
		t.Fatal("generator must default when no tag is set")
	}
}
