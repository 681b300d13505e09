// Package economy tracks insight points: the balance, purchase costs, award
// arithmetic, and the hintless-optimal streak.
package economy

// #region config

// Config holds the tunable knobs of the insight economy.
type Config struct {
	HintCost        int // debit per one-move hint
	UnlockStartCost int // cost of the first operator purchase in a run
	UnlockCostStep  int // increase after each purchase
	OptimalBonus    int // bonus when the round was solved in the optimum
	HintPenalty     int // penalty per hint used in the round
	SuccessFloor    int // minimum award for any successful round
}

// DefaultConfig returns the shipped economy tuning.
func DefaultConfig() Config {
	return Config{
		HintCost:        1,
		UnlockStartCost: 6,
		UnlockCostStep:  6,
		OptimalBonus:    1,
		HintPenalty:     1,
		SuccessFloor:    1,
	}
}

// #endregion config

// #region ledger

// Ledger is the per-run insight account. Single writer; the engine owns it.
type Ledger struct {
	cfg Config

	Balance        int
	NextUnlockCost int

	StreakCurrent int // consecutive hintless optimal successes
	StreakBest    int

	TotalEarned       int
	TotalSpent        int
	TotalMoves        int
	TotalOptimalMoves int
	HintsThisRun      int
}

// NewLedger creates a zeroed ledger with the first unlock at the start cost.
func NewLedger(cfg Config) *Ledger {
	return &Ledger{cfg: cfg, NextUnlockCost: cfg.UnlockStartCost}
}

// HintCost returns the configured hint price.
func (l *Ledger) HintCost() int {
	return l.cfg.HintCost
}

// #endregion ledger

// #region spend

// SpendHint debits one hint if affordable. Returns false without any state
// change when the balance is short.
func (l *Ledger) SpendHint() bool {
	if l.Balance < l.cfg.HintCost {
		return false
	}
	l.Balance -= l.cfg.HintCost
	l.TotalSpent += l.cfg.HintCost
	l.HintsThisRun++
	return true
}

// SpendUnlock debits the current unlock cost and escalates the next one.
// Returns false without any state change when the balance is short.
func (l *Ledger) SpendUnlock() bool {
	if l.Balance < l.NextUnlockCost {
		return false
	}
	l.Balance -= l.NextUnlockCost
	l.TotalSpent += l.NextUnlockCost
	l.NextUnlockCost += l.cfg.UnlockCostStep
	return true
}

// #endregion spend

// #region award

// RoundFacts are the inputs to award resolution, frozen at round end.
type RoundFacts struct {
	Success      bool
	MovesMade    int
	OptimalKnown bool // false when the static optimal distance was null
	Optimal      int
	HintsUsed    int
}

// Award is the itemized outcome of resolving one round.
type Award struct {
	Base         int
	OptimalBonus int
	StreakBonus  int
	HintPenalty  int
	Gained       int
	WasOptimal   bool
}

// Resolve applies the award formula for a finished round and updates the
// ledger totals. The caller guarantees exactly one call per round.
func (l *Ledger) Resolve(f RoundFacts) Award {
	optimal := f.Optimal
	if !f.OptimalKnown {
		optimal = f.MovesMade
	}
	wasOptimal := f.MovesMade == optimal
	hintless := f.HintsUsed == 0

	if f.Success && hintless && wasOptimal {
		l.StreakCurrent++
		if l.StreakCurrent > l.StreakBest {
			l.StreakBest = l.StreakCurrent
		}
	} else {
		l.StreakCurrent = 0
	}

	award := Award{WasOptimal: wasOptimal}
	if f.Success {
		award.Base = max(l.cfg.SuccessFloor, optimal*2-f.MovesMade)
		if wasOptimal {
			award.OptimalBonus = l.cfg.OptimalBonus
		}
		award.StreakBonus = l.StreakCurrent
		award.HintPenalty = l.cfg.HintPenalty * f.HintsUsed
		award.Gained = max(l.cfg.SuccessFloor,
			award.Base+award.OptimalBonus+award.StreakBonus-award.HintPenalty)
	}

	l.Balance += award.Gained
	l.TotalEarned += award.Gained
	l.TotalMoves += f.MovesMade
	l.TotalOptimalMoves += optimal
	return award
}

// #endregion award
