package numbering

import (
	"reflect"
	"testing"

	"github.com/honeybbq/syscallgen/pkg/descriptor"
)

func sampleCatalog() *descriptor.Catalog {
	return &descriptor.Catalog{
		API: []descriptor.Group{
			{Names: []string{"Yield", "Send"}},
			{Condition: "CONFIG_X", Names: []string{"Call"}},
		},
		Debug: []descriptor.Group{
			{Names: []string{"DebugPutChar"}},
			{Condition: "defined CONFIG_DEBUG_BUILD", Names: []string{"DebugHalt", "DebugSnapshot"}},
		},
	}
}

func TestAssignAPIOnly(t *testing.T) {
	cat := sampleCatalog()
	got := Assign(cat.API)
	want := []Group{
		{Syscalls: []Syscall{
			{Name: "Yield", Number: -1},
			{Name: "Send", Number: -2},
		}},
		{Condition: "CONFIG_X", Syscalls: []Syscall{
			{Name: "Call", Number: -3, Condition: "CONFIG_X"},
		}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Assign = %#v, want %#v", got, want)
	}
}

func TestAssignPassesAgreeOnAPI(t *testing.T) {
	cat := sampleCatalog()
	apiOnly := Flatten(Assign(cat.API))
	combined := Flatten(Assign(cat.API, cat.Debug))

	if len(combined) != cat.APICount()+cat.DebugCount() {
		t.Fatalf("combined pass has %d syscalls", len(combined))
	}
	for i, sc := range apiOnly {
		if combined[i] != sc {
			t.Fatalf("syscall %d differs between passes: %+v vs %+v", i, sc, combined[i])
		}
	}
	if last := combined[len(combined)-1]; last.Name != "DebugSnapshot" || last.Number != -6 {
		t.Fatalf("unexpected last syscall %+v", last)
	}
}

func TestAssignIsContiguous(t *testing.T) {
	cat := sampleCatalog()
	all := Flatten(Assign(cat.All()))
	seen := make(map[int]bool, len(all))
	for i, sc := range all {
		if sc.Number != -(i + 1) {
			t.Fatalf("syscall %s numbered %d, want %d", sc.Name, sc.Number, -(i + 1))
		}
		if seen[sc.Number] {
			t.Fatalf("number %d assigned twice", sc.Number)
		}
		seen[sc.Number] = true
	}
}

func TestAssignRestartsPerPass(t *testing.T) {
	cat := sampleCatalog()
	first := Flatten(Assign(cat.API))
	second := Flatten(Assign(cat.API))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("passes differ: %+v vs %+v", first, second)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name    string
		groups  []descriptor.Group
		wantMin int
	}{
		{name: "single", groups: []descriptor.Group{{Names: []string{"Call"}}}, wantMin: -1},
		{name: "sample", groups: sampleCatalog().API, wantMin: -3},
		{name: "empty", groups: nil, wantMin: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := Bounds(Assign(tt.groups))
			if hi != -1 {
				t.Fatalf("max = %d, want -1", hi)
			}
			if lo != tt.wantMin {
				t.Fatalf("min = %d, want %d", lo, tt.wantMin)
			}
		})
	}
}

func TestNameTableMirrorsAPI(t *testing.T) {
	cat := sampleCatalog()
	groups := Assign(cat.API)
	table := NameTable(groups)
	flat := Flatten(groups)

	if len(table) != len(flat) {
		t.Fatalf("table has %d entries, want %d", len(table), len(flat))
	}
	for i, entry := range table {
		if entry.Index != -flat[i].Number {
			t.Fatalf("entry %d index %d does not mirror number %d", i, entry.Index, flat[i].Number)
		}
		if entry.Name != flat[i].Name {
			t.Fatalf("entry %d name %q, want %q", i, entry.Name, flat[i].Name)
		}
	}
}
