// Package engine owns the round state machine, the insight economy, and the
// run progress of the hexagram puzzle.
//
// The engine is a pure state container plus query functions: synchronous
// commands, no background work, no clocks, no drawing. Expected gameplay
// conditions (locked round, unaffordable purchase, catalog miss) are no-ops
// or boolean results; only an unknown operator ID panics.
package engine

// #region imports
import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"hexapath/internal/catalog"
	"hexapath/internal/economy"
	"hexapath/internal/hexagram"
	"hexapath/internal/operator"
	"hexapath/internal/progress"
)

// #endregion

// #region engine-struct

// Engine is the single-writer game core. Not safe for concurrent use; the
// caller's event loop is the one writer.
type Engine struct {
	cfg Config
	cat catalog.Catalog
	rng *rand.Rand

	runID    string
	round    *round
	ledger   *economy.Ledger
	progress *progress.Tracker
	unlocked map[operator.ID]bool

	awardsGranted bool
}

// #endregion

// #region constructor

// New creates an engine over the given catalog. The seed drives start/goal
// draws only; pass a fixed seed for reproducible runs.
func New(cat catalog.Catalog, cfg Config, seed int64) *Engine {
	e := &Engine{
		cfg: cfg,
		cat: cat,
		rng: rand.New(rand.NewSource(seed)),
	}
	e.resetRun()
	return e
}

func (e *Engine) resetRun() {
	e.runID = uuid.NewString()
	e.ledger = economy.NewLedger(e.cfg.Economy)
	e.progress = progress.NewTracker()
	e.unlocked = operator.FreeSet()
	e.round = nil
	e.awardsGranted = false
}

// #endregion

// #region start-round

// StartRound begins a new round. With fullReset it discards the whole run
// first. Returns ErrRoundExhausted when every catalog code has already been
// drawn as a goal this run.
func (e *Engine) StartRound(fullReset bool) error {
	if fullReset {
		e.resetRun()
	}

	codes := e.cat.Codes()
	if len(codes) == 0 {
		return ErrRoundExhausted
	}
	start := codes[e.rng.Intn(len(codes))]

	candidates := e.progress.Candidates(codes, start)
	if len(candidates) == 0 {
		return ErrRoundExhausted
	}
	goal := candidates[e.rng.Intn(len(candidates))]

	e.startWith(start, goal)
	return nil
}

// startWith installs a round with the given endpoints. The goal is burned
// immediately on draw so a later failure never returns it to the pool.
func (e *Engine) startWith(start, goal hexagram.Code) {
	e.progress.MarkUsed(goal)
	e.round = &round{
		id:      uuid.NewString(),
		start:   start,
		goal:    goal,
		chain:   []hexagram.Code{start},
		outcome: OutcomeNone,
	}
	e.awardsGranted = false
	e.recomputeStatic(start)
	e.recomputeLive()
}

// #endregion

// #region apply-move

// ApplyMove applies one operator to the chain tip. It reports whether the
// move was applied; locked rounds, locked operators, and transforms landing
// outside the catalog are silently rejected. An unknown operator ID panics.
func (e *Engine) ApplyMove(id operator.ID) bool {
	mustKnow(id)
	if e.round == nil || e.round.locked {
		return false
	}
	if !e.unlocked[id] {
		return false
	}

	next := operator.Apply(id, e.round.tip())
	if !e.cat.Contains(next) {
		return false
	}

	e.round.chain = append(e.round.chain, next)
	// A hint is consumed by the next move whether or not it was followed.
	e.round.hintArmed = false
	e.recomputeLive()

	if next == e.round.goal {
		e.round.locked = true
		e.round.outcome = OutcomeSuccess
		e.resolveRound()
	} else if e.round.moves() > e.cfg.MoveLimit {
		// The (limit+1)-th move that misses the goal is the one that fails
		// the round: overshoot without winning, not running out of moves.
		e.round.locked = true
		e.round.outcome = OutcomeFailure
		e.resolveRound()
	}
	return true
}

// PreviewMove returns the code id would produce from the chain tip, and
// whether the move would be accepted. Pure query, no state change.
func (e *Engine) PreviewMove(id operator.ID) (hexagram.Code, bool) {
	mustKnow(id)
	if e.round == nil || e.round.locked || !e.unlocked[id] {
		return "", false
	}
	next := operator.Apply(id, e.round.tip())
	return next, e.cat.Contains(next)
}

// #endregion

// #region purchases

// PurchaseHint arms a one-move hint. Rejected (false, no state change) when
// no round is in progress, a hint is already armed, or the balance is short.
func (e *Engine) PurchaseHint() bool {
	if e.round == nil || e.round.locked || e.round.hintArmed {
		return false
	}
	if !e.ledger.SpendHint() {
		return false
	}
	e.round.hintArmed = true
	e.round.hintsUsed++
	return true
}

// PurchaseUnlock buys a locked operator for the current unlock cost.
// Rejected when the operator is already unlocked, no round is in progress,
// or the balance is short. On success the static optimal is re-anchored at
// the current chain tip so the cheaper path shows up immediately.
func (e *Engine) PurchaseUnlock(id operator.ID) bool {
	mustKnow(id)
	if e.unlocked[id] {
		return false
	}
	if e.round == nil || e.round.locked {
		return false
	}
	if !e.ledger.SpendUnlock() {
		return false
	}
	e.unlocked[id] = true
	e.recomputeStatic(e.round.tip())
	e.recomputeLive()
	return true
}

// #endregion

// #region resolve

// resolveRound fires the award accounting exactly once per round, however
// often the caller polls after the terminal move.
func (e *Engine) resolveRound() {
	if e.awardsGranted {
		return
	}
	e.awardsGranted = true

	r := e.round
	award := e.ledger.Resolve(economy.RoundFacts{
		Success:      r.outcome == OutcomeSuccess,
		MovesMade:    r.moves(),
		OptimalKnown: r.staticOptimalKnown,
		Optimal:      r.staticOptimal,
		HintsUsed:    r.hintsUsed,
	})
	r.award = &award

	if r.outcome == OutcomeSuccess {
		e.progress.Collect(r.goal)
	}
}

// #endregion

// #region dev-tools

// StartRoundAt begins a round with fixed endpoints instead of random draws.
// DevTools only; the replay harness and tests use it for reproducibility.
func (e *Engine) StartRoundAt(start, goal hexagram.Code) error {
	if !e.cfg.DevTools {
		return errors.New("dev tools disabled")
	}
	if !e.cat.Contains(start) || !e.cat.Contains(goal) {
		return fmt.Errorf("codes %s, %s not both in catalog", start, goal)
	}
	if start == goal {
		return errors.New("goal must differ from start")
	}
	e.startWith(start, goal)
	return nil
}

// SeedBalance overwrites the insight balance. DevTools only; reports
// whether it applied.
func (e *Engine) SeedBalance(balance int) bool {
	if !e.cfg.DevTools || balance < 0 {
		return false
	}
	e.ledger.Balance = balance
	return true
}

// ArmEndgameTest prefills the run so that the current round's goal is the
// only one left to collect. Requires DevTools in the config and an active
// round; reports whether it armed.
func (e *Engine) ArmEndgameTest() bool {
	if !e.cfg.DevTools || e.round == nil || e.round.locked {
		return false
	}
	for _, code := range e.cat.Codes() {
		if code == e.round.goal {
			continue
		}
		e.progress.MarkUsed(code)
		e.progress.Collect(code)
	}
	return true
}

// #endregion

// #region helpers

func mustKnow(id operator.ID) {
	if _, ok := operator.Lookup(id); !ok {
		panic("engine: unknown operator id " + string(id))
	}
}

// unlockedIDs returns the unlocked operators in display order, so guidance
// queries are deterministic.
func (e *Engine) unlockedIDs() []operator.ID {
	var ids []operator.ID
	for _, id := range operator.IDs() {
		if e.unlocked[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// #endregion
