package catalog

import (
	"path/filepath"
	"testing"

	"hexapath/internal/hexagram"
	"hexapath/internal/operator"
)

// #region test-builtin
func TestBuiltinCoversAllCodes(t *testing.T) {
	cat := Builtin()
	if cat.Len() != 64 {
		t.Fatalf("expected 64 entries, got %d", cat.Len())
	}

	seenNumbers := map[int]hexagram.Code{}
	for _, code := range hexagram.All() {
		e, ok := cat.Lookup(code)
		if !ok {
			t.Fatalf("missing entry for %s", code)
		}
		if e.Number < 1 || e.Number > 64 {
			t.Fatalf("%s: number %d out of range", code, e.Number)
		}
		if prev, dup := seenNumbers[e.Number]; dup {
			t.Fatalf("number %d assigned to both %s and %s", e.Number, prev, code)
		}
		seenNumbers[e.Number] = code
		if e.Name == "" {
			t.Errorf("%s: empty name", code)
		}
		if e.Glyph < 0x4DC0 || e.Glyph > 0x4DFF {
			t.Errorf("%s: glyph %q outside hexagram block", code, e.Glyph)
		}
	}
}

func TestBuiltinAnchors(t *testing.T) {
	cat := Builtin()
	// Hexagram 1 is all yang, hexagram 2 all yin, and 63/64 are the
	// alternating codes starting yang/yin from the bottom.
	anchors := []struct {
		code   string
		number int
	}{
		{"111111", 1},
		{"000000", 2},
		{"101010", 63},
		{"010101", 64},
	}
	for _, a := range anchors {
		e, ok := cat.Lookup(hexagram.Code(a.code))
		if !ok {
			t.Fatalf("missing %s", a.code)
		}
		if e.Number != a.number {
			t.Errorf("%s: number = %d, want %d", a.code, e.Number, a.number)
		}
	}
}

// #endregion test-builtin

// #region test-closure
func TestCatalogClosedUnderOperators(t *testing.T) {
	cat := Builtin()
	for _, code := range cat.Codes() {
		for _, id := range operator.IDs() {
			out := operator.Apply(id, code)
			if !cat.Contains(out) {
				t.Fatalf("%s(%s) = %s not in catalog", id, code, out)
			}
		}
	}
}

// #endregion test-closure

// #region test-codes-order
func TestCodesKingWenOrder(t *testing.T) {
	cat := Builtin()
	codes := cat.Codes()
	if len(codes) != 64 {
		t.Fatalf("expected 64 codes, got %d", len(codes))
	}
	for i, c := range codes {
		e, _ := cat.Lookup(c)
		if e.Number != i+1 {
			t.Fatalf("codes[%d] has number %d", i, e.Number)
		}
	}
}

// #endregion test-codes-order

// #region test-store
func TestStoreSeedAndReload(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	store, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer store.Close()

	if len(store.Codes()) != 0 {
		t.Fatalf("fresh store should be empty, got %d codes", len(store.Codes()))
	}

	builtin := Builtin()
	var entries []Entry
	for _, code := range builtin.Codes() {
		e, _ := builtin.Lookup(code)
		entries = append(entries, e)
	}
	if err := store.Seed(entries); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if len(store.Codes()) != 64 {
		t.Fatalf("expected 64 codes after seed, got %d", len(store.Codes()))
	}
	e, ok := store.Lookup(hexagram.Code("111111"))
	if !ok || e.Number != 1 {
		t.Fatalf("lookup 111111: ok=%v entry=%+v", ok, e)
	}

	// Judgement text survives a re-seed that carries none.
	e.Judgement = "The Creative works sublime success."
	if err := store.Seed([]Entry{e}); err != nil {
		t.Fatalf("seed judgement: %v", err)
	}
	e.Judgement = ""
	if err := store.Seed([]Entry{e}); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	got, _ := store.Lookup(hexagram.Code("111111"))
	if got.Judgement != "The Creative works sublime success." {
		t.Fatalf("judgement lost on re-seed: %q", got.Judgement)
	}
}

// #endregion test-store
