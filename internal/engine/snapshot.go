package engine

// #region imports
import (
	"hexapath/internal/economy"
	"hexapath/internal/hexagram"
	"hexapath/internal/operator"
)

// #endregion

// #region round-snapshot

// RoundSnapshot is a read-only copy of the active round for renderers.
type RoundSnapshot struct {
	ID        string
	Start     hexagram.Code
	Goal      hexagram.Code
	Chain     []hexagram.Code
	Moves     int
	MoveLimit int

	Locked    bool
	Outcome   Outcome
	HintArmed bool
	HintsUsed int

	StaticOptimal      int
	StaticOptimalKnown bool
	LiveDistance       int
	LiveReachable      bool
	OptimalFirstMoves  map[operator.ID]bool

	Award *economy.Award
}

// Round returns a snapshot of the active round, or false when no round has
// been started. The copy shares nothing mutable with the engine.
func (e *Engine) Round() (RoundSnapshot, bool) {
	r := e.round
	if r == nil {
		return RoundSnapshot{}, false
	}
	snap := RoundSnapshot{
		ID:                 r.id,
		Start:              r.start,
		Goal:               r.goal,
		Chain:              append([]hexagram.Code(nil), r.chain...),
		Moves:              r.moves(),
		MoveLimit:          e.cfg.MoveLimit,
		Locked:             r.locked,
		Outcome:            r.outcome,
		HintArmed:          r.hintArmed,
		HintsUsed:          r.hintsUsed,
		StaticOptimal:      r.staticOptimal,
		StaticOptimalKnown: r.staticOptimalKnown,
		LiveDistance:       r.liveDistance,
		LiveReachable:      r.liveReachable,
		OptimalFirstMoves:  make(map[operator.ID]bool, len(r.firstMoves)),
	}
	for id := range r.firstMoves {
		snap.OptimalFirstMoves[id] = true
	}
	if r.award != nil {
		a := *r.award
		snap.Award = &a
	}
	return snap, true
}

// #endregion

// #region run-snapshot

// RunSnapshot is a read-only copy of the run-wide state.
type RunSnapshot struct {
	RunID string

	Balance        int
	NextUnlockCost int
	HintCost       int

	StreakCurrent int
	StreakBest    int

	TotalMoves        int
	TotalOptimalMoves int
	TotalEarned       int
	TotalSpent        int
	HintsThisRun      int

	Unlocked  []operator.ID
	Collected []hexagram.Code
	Complete  bool
}

// Run returns a snapshot of the run-wide state.
func (e *Engine) Run() RunSnapshot {
	return RunSnapshot{
		RunID:             e.runID,
		Balance:           e.ledger.Balance,
		NextUnlockCost:    e.ledger.NextUnlockCost,
		HintCost:          e.ledger.HintCost(),
		StreakCurrent:     e.ledger.StreakCurrent,
		StreakBest:        e.ledger.StreakBest,
		TotalMoves:        e.ledger.TotalMoves,
		TotalOptimalMoves: e.ledger.TotalOptimalMoves,
		TotalEarned:       e.ledger.TotalEarned,
		TotalSpent:        e.ledger.TotalSpent,
		HintsThisRun:      e.ledger.HintsThisRun,
		Unlocked:          e.unlockedIDs(),
		Collected:         e.progress.CollectedCodes(),
		Complete:          e.progress.Complete(len(e.cat.Codes())),
	}
}

// Unlocked reports whether a single operator is currently unlocked.
func (e *Engine) Unlocked(id operator.ID) bool {
	return e.unlocked[id]
}

// #endregion
