package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"hexapath/internal/catalog"
	"hexapath/internal/engine"
	"hexapath/internal/operator"
)

// #region test-run
func TestRunWinningScript(t *testing.T) {
	script := Script{
		Start: "000000",
		Goal:  "111111",
		Steps: []Step{
			{Action: "move", Operator: operator.InvertLower},
			{Action: "move", Operator: operator.MirrorUpper},
		},
	}

	results, summary, err := Run(catalog.Builtin(), engine.DefaultConfig(), script)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 step results, got %d", len(results))
	}
	if results[0].Tip != "111000" || results[1].Tip != "111111" {
		t.Fatalf("unexpected tips: %s, %s", results[0].Tip, results[1].Tip)
	}
	if summary.Outcome != engine.OutcomeSuccess {
		t.Fatalf("outcome = %s, want success", summary.Outcome)
	}
	if summary.Moves != 2 || summary.Collected != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	// optimal 2, moves 2: base 2, +1 optimal, +1 streak = 4.
	if summary.Gained != 4 {
		t.Fatalf("gained = %d, want 4", summary.Gained)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	script := Script{
		Start:   "000000",
		Goal:    "111111",
		Balance: 10,
		Steps: []Step{
			{Action: "hint"},
			{Action: "unlock", Operator: operator.Invert},
			{Action: "move", Operator: operator.Invert},
		},
	}

	_, first, err := Run(catalog.Builtin(), engine.DefaultConfig(), script)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	_, second, err := Run(catalog.Builtin(), engine.DefaultConfig(), script)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first != second {
		t.Fatalf("replay diverged: %+v vs %+v", first, second)
	}
	if first.Outcome != engine.OutcomeSuccess || first.HintsUsed != 1 {
		t.Fatalf("summary = %+v", first)
	}
}

func TestRejectedStepsAreRecorded(t *testing.T) {
	script := Script{
		Start: "000000",
		Goal:  "111111",
		Steps: []Step{
			{Action: "move", Operator: operator.Flip},        // locked operator
			{Action: "unlock", Operator: operator.Flip},      // unaffordable
			{Action: "move", Operator: operator.InvertLower}, // fine
		},
	}

	results, _, err := Run(catalog.Builtin(), engine.DefaultConfig(), script)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if results[0].Applied || results[1].Applied {
		t.Fatalf("rejected steps marked applied: %+v", results[:2])
	}
	if !results[2].Applied || results[2].Moves != 1 {
		t.Fatalf("valid step not applied: %+v", results[2])
	}
}

// #endregion test-run

// #region test-load
func TestLoadScriptValidates(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, s Script) string {
		t.Helper()
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		return path
	}

	good := write("good.json", Script{
		Start: "000000",
		Goal:  "111000",
		Steps: []Step{{Action: "move", Operator: operator.InvertLower}},
	})
	if _, err := LoadScript(good); err != nil {
		t.Fatalf("load good script: %v", err)
	}

	badCode := write("badcode.json", Script{Start: "00000", Goal: "111000"})
	if _, err := LoadScript(badCode); err == nil {
		t.Fatal("expected error for 5-char code")
	}

	badOp := write("badop.json", Script{
		Start: "000000",
		Goal:  "111000",
		Steps: []Step{{Action: "move", Operator: "teleport"}},
	})
	if _, err := LoadScript(badOp); err == nil {
		t.Fatal("expected error for unknown operator")
	}

	badAction := write("badaction.json", Script{
		Start: "000000",
		Goal:  "111000",
		Steps: []Step{{Action: "dance"}},
	})
	if _, err := LoadScript(badAction); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

// #endregion test-load
