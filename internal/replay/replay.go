// Package replay runs recorded command scripts through a fresh engine.
//
// Scripts give deterministic end-to-end fixtures: fixed round endpoints, a
// seeded balance, and an ordered list of commands. Tests and cmd/replay use
// them to pin down round lifecycle behavior.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"hexapath/internal/catalog"
	"hexapath/internal/engine"
	"hexapath/internal/hexagram"
	"hexapath/internal/operator"
)

// #region script-types

// Step is one recorded command.
type Step struct {
	Action   string      `json:"action"` // "move" | "hint" | "unlock"
	Operator operator.ID `json:"operator,omitempty"`
}

// Script is the top-level JSON structure for a replay run.
type Script struct {
	Description string `json:"description"`
	Start       string `json:"start"`
	Goal        string `json:"goal"`
	Balance     int    `json:"balance"` // starting insight balance
	Steps       []Step `json:"steps"`
}

// #endregion script-types

// #region result-types

// StepResult captures the engine state right after one step.
type StepResult struct {
	Index    int
	Action   string
	Operator operator.ID
	Applied  bool
	Tip      hexagram.Code
	Moves    int
}

// Summary aggregates the state after the full script.
type Summary struct {
	Outcome   engine.Outcome
	Moves     int
	Gained    int
	Balance   int
	HintsUsed int
	Collected int
}

// #endregion result-types

// #region load

// LoadScript reads and validates a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	if _, err := hexagram.Parse(s.Start); err != nil {
		return Script{}, fmt.Errorf("script start: %w", err)
	}
	if _, err := hexagram.Parse(s.Goal); err != nil {
		return Script{}, fmt.Errorf("script goal: %w", err)
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "move", "unlock":
			if _, ok := operator.Lookup(st.Operator); !ok {
				return Script{}, fmt.Errorf("step %d: unknown operator %q", i, st.Operator)
			}
		case "hint":
		default:
			return Script{}, fmt.Errorf("step %d: unknown action %q", i, st.Action)
		}
	}
	return s, nil
}

// #endregion load

// #region run

// Run replays script against a fresh engine and returns per-step results
// plus the final summary.
func Run(cat catalog.Catalog, cfg engine.Config, script Script) ([]StepResult, Summary, error) {
	cfg.DevTools = true // fixed endpoints need the dev hook
	eng := engine.New(cat, cfg, 0)
	if err := eng.StartRoundAt(hexagram.Code(script.Start), hexagram.Code(script.Goal)); err != nil {
		return nil, Summary{}, fmt.Errorf("start round: %w", err)
	}
	eng.SeedBalance(script.Balance)

	results := make([]StepResult, 0, len(script.Steps))
	for i, step := range script.Steps {
		var applied bool
		switch step.Action {
		case "move":
			applied = eng.ApplyMove(step.Operator)
		case "hint":
			applied = eng.PurchaseHint()
		case "unlock":
			applied = eng.PurchaseUnlock(step.Operator)
		}

		snap, _ := eng.Round()
		results = append(results, StepResult{
			Index:    i,
			Action:   step.Action,
			Operator: step.Operator,
			Applied:  applied,
			Tip:      snap.Chain[len(snap.Chain)-1],
			Moves:    snap.Moves,
		})
	}

	snap, _ := eng.Round()
	run := eng.Run()
	summary := Summary{
		Outcome:   snap.Outcome,
		Moves:     snap.Moves,
		Balance:   run.Balance,
		HintsUsed: snap.HintsUsed,
		Collected: len(run.Collected),
	}
	if snap.Award != nil {
		summary.Gained = snap.Award.Gained
	}
	return results, summary, nil
}

// #endregion run
