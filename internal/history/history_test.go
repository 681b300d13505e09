package history

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// #region test-round-trip
func TestRecordAndRecent(t *testing.T) {
	rec, err := NewRecorder(setupTestDB(t))
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}

	runID := uuid.NewString()
	optimal := 3
	entry := RoundRecord{
		RunID:        runID,
		RoundID:      uuid.NewString(),
		StartCode:    "000000",
		GoalCode:     "111000",
		Outcome:      "success",
		Moves:        3,
		Optimal:      &optimal,
		HintsUsed:    1,
		Gained:       3,
		BalanceAfter: 3,
		Streak:       0,
	}
	if err := rec.Record(entry); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := rec.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	r := got[0]
	if r.RunID != runID || r.GoalCode != "111000" || r.Outcome != "success" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.Optimal == nil || *r.Optimal != 3 {
		t.Fatalf("optimal = %v, want 3", r.Optimal)
	}
	if r.CreatedAt.IsZero() {
		t.Fatal("created_at should default to now")
	}
}

// #endregion test-round-trip

// #region test-null-optimal
func TestNullOptimalSurvives(t *testing.T) {
	rec, err := NewRecorder(setupTestDB(t))
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}

	entry := RoundRecord{
		RunID:     uuid.NewString(),
		RoundID:   uuid.NewString(),
		StartCode: "000000",
		GoalCode:  "111111",
		Outcome:   "failure",
		Moves:     11,
	}
	if err := rec.Record(entry); err != nil {
		t.Fatalf("record: %v", err)
	}
	got, err := rec.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if got[0].Optimal != nil {
		t.Fatalf("optimal should be nil, got %v", *got[0].Optimal)
	}
}

// #endregion test-null-optimal

// #region test-for-run
func TestForRunOrdersOldestFirst(t *testing.T) {
	rec, err := NewRecorder(setupTestDB(t))
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}

	runID := uuid.NewString()
	for i, outcome := range []string{"failure", "success", "success"} {
		err := rec.Record(RoundRecord{
			RunID:     runID,
			RoundID:   uuid.NewString(),
			StartCode: "000000",
			GoalCode:  "111000",
			Outcome:   outcome,
			Moves:     i + 1,
		})
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	// A record from another run must not leak in.
	if err := rec.Record(RoundRecord{RunID: uuid.NewString(), RoundID: uuid.NewString(),
		StartCode: "000000", GoalCode: "010101", Outcome: "success", Moves: 1}); err != nil {
		t.Fatalf("record other run: %v", err)
	}

	got, err := rec.ForRun(runID)
	if err != nil {
		t.Fatalf("for run: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, r := range got {
		if r.Moves != i+1 {
			t.Fatalf("record %d out of order: moves=%d", i, r.Moves)
		}
	}
}

// #endregion test-for-run
