package progress

import (
	"testing"

	"hexapath/internal/hexagram"
)

// #region tests

func TestCandidatesExcludeUsedAndSkip(t *testing.T) {
	tr := NewTracker()
	pool := []hexagram.Code{"000000", "000001", "000010", "000011"}

	tr.MarkUsed("000001")

	got := tr.Candidates(pool, "000011")
	want := []hexagram.Code{"000000", "000010"}
	if len(got) != len(want) {
		t.Fatalf("Candidates returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestUsedSurvivesWithoutCollect(t *testing.T) {
	tr := NewTracker()
	tr.MarkUsed("101010")

	if !tr.Used("101010") {
		t.Error("MarkUsed did not register")
	}
	if tr.Collected("101010") {
		t.Error("a drawn goal must not count as collected")
	}
	if tr.CollectedCount() != 0 {
		t.Errorf("CollectedCount = %d, want 0", tr.CollectedCount())
	}
}

func TestCollectIsIdempotent(t *testing.T) {
	tr := NewTracker()

	if !tr.Collect("111000") {
		t.Fatal("first Collect returned false")
	}
	if tr.Collect("111000") {
		t.Error("second Collect of the same code returned true")
	}
	if tr.CollectedCount() != 1 {
		t.Errorf("CollectedCount = %d, want 1", tr.CollectedCount())
	}
}

func TestCollectedCodesSorted(t *testing.T) {
	tr := NewTracker()
	for _, c := range []hexagram.Code{"111111", "000000", "010101"} {
		tr.Collect(c)
	}

	got := tr.CollectedCodes()
	want := []hexagram.Code{"000000", "010101", "111111"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("CollectedCodes = %v, want %v", got, want)
		}
	}
}

func TestComplete(t *testing.T) {
	tr := NewTracker()
	tr.Collect("000000")
	tr.Collect("111111")

	if tr.Complete(3) {
		t.Error("Complete(3) with 2 collected should be false")
	}
	if !tr.Complete(2) {
		t.Error("Complete(2) with 2 collected should be true")
	}
}

// #endregion tests
