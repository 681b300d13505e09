package reach

import (
	"testing"

	"hexapath/internal/catalog"
	"hexapath/internal/hexagram"
	"hexapath/internal/operator"
)

// #region test-identity
func TestShortestPathIdentity(t *testing.T) {
	cat := catalog.Builtin()
	for _, code := range cat.Codes() {
		res := ShortestPath(code, code, operator.IDs(), cat)
		if !res.Reachable || res.Distance != 0 {
			t.Fatalf("%s→%s: got %+v, want distance 0", code, code, res)
		}
		if len(res.FirstMoves) != 0 {
			t.Fatalf("%s→%s: first moves should be empty, got %v", code, code, res.FirstMoves)
		}
	}
}

// #endregion test-identity

// #region test-no-operators
func TestShortestPathNoOperators(t *testing.T) {
	cat := catalog.Builtin()
	res := ShortestPath("000000", "111111", nil, cat)
	if res.Reachable {
		t.Fatalf("expected unreachable with no operators, got %+v", res)
	}
	if len(res.FirstMoves) != 0 {
		t.Fatalf("expected empty first moves, got %v", res.FirstMoves)
	}
}

// #endregion test-no-operators

// #region test-single-hop
func TestShortestPathSingleHop(t *testing.T) {
	cat := catalog.Builtin()
	res := ShortestPath("000000", "111111", []operator.ID{operator.Invert}, cat)
	if !res.Reachable || res.Distance != 1 {
		t.Fatalf("invert hop: got %+v", res)
	}
	if len(res.FirstMoves) != 1 || !res.FirstMoves[operator.Invert] {
		t.Fatalf("expected first moves {invert}, got %v", res.FirstMoves)
	}
}

// #endregion test-single-hop

// #region test-ties
func TestShortestPathCollectsAllTies(t *testing.T) {
	cat := catalog.Builtin()
	// From 101010 three distinct operators land on 101101 in one move:
	// mirror-upper, copy-upper, and invert-upper all send the upper trigram
	// to 101. No other operator reaches it in one.
	res := ShortestPath("101010", "101101", operator.IDs(), cat)
	if !res.Reachable || res.Distance != 1 {
		t.Fatalf("got %+v, want distance 1", res)
	}
	want := []operator.ID{operator.MirrorUpper, operator.CopyUpper, operator.InvertUpper}
	if len(res.FirstMoves) != len(want) {
		t.Fatalf("expected %d tied first moves, got %v", len(want), res.FirstMoves)
	}
	for _, id := range want {
		if !res.FirstMoves[id] {
			t.Errorf("missing tied first move %s", id)
		}
	}
}

func TestShortestPathOrderIndependent(t *testing.T) {
	cat := catalog.Builtin()
	forward := operator.IDs()
	backward := make([]operator.ID, len(forward))
	for i, id := range forward {
		backward[len(forward)-1-i] = id
	}

	codes := cat.Codes()
	for _, start := range codes[:8] {
		for _, goal := range codes[:8] {
			a := ShortestPath(start, goal, forward, cat)
			b := ShortestPath(start, goal, backward, cat)
			if a.Reachable != b.Reachable || (a.Reachable && a.Distance != b.Distance) {
				t.Fatalf("%s→%s: distance differs by order: %+v vs %+v", start, goal, a, b)
			}
			if len(a.FirstMoves) != len(b.FirstMoves) {
				t.Fatalf("%s→%s: tie set differs by order: %v vs %v", start, goal, a.FirstMoves, b.FirstMoves)
			}
			for id := range a.FirstMoves {
				if !b.FirstMoves[id] {
					t.Fatalf("%s→%s: %s missing under reversed order", start, goal, id)
				}
			}
		}
	}
}

// #endregion test-ties

// #region test-monotonic
func TestMoreOperatorsNeverHurt(t *testing.T) {
	cat := catalog.Builtin()
	free := []operator.ID{operator.Shift, operator.InvertLower, operator.MirrorUpper}
	all := operator.IDs()

	for _, start := range cat.Codes() {
		for _, goal := range cat.Codes() {
			narrow := ShortestPath(start, goal, free, cat)
			wide := ShortestPath(start, goal, all, cat)
			if narrow.Reachable && !wide.Reachable {
				t.Fatalf("%s→%s: reachable with fewer operators only", start, goal)
			}
			if narrow.Reachable && wide.Reachable && wide.Distance > narrow.Distance {
				t.Fatalf("%s→%s: distance grew from %d to %d with more operators",
					start, goal, narrow.Distance, wide.Distance)
			}
		}
	}
}

// #endregion test-monotonic

// #region test-dead-catalog
func TestIncompleteCatalogBlocksPaths(t *testing.T) {
	// A catalog missing the complement of 000000 makes invert a dead end.
	var entries []catalog.Entry
	full := catalog.Builtin()
	for _, code := range full.Codes() {
		if code == hexagram.Code("111111") {
			continue
		}
		e, _ := full.Lookup(code)
		entries = append(entries, e)
	}
	cat := catalog.NewMemory(entries)

	res := ShortestPath("000000", "111111", []operator.ID{operator.Invert}, cat)
	if res.Reachable {
		t.Fatalf("expected unreachable through missing catalog entry, got %+v", res)
	}
}

// #endregion test-dead-catalog
