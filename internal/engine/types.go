package engine

// #region imports
import (
	"errors"

	"hexapath/internal/economy"
	"hexapath/internal/hexagram"
	"hexapath/internal/operator"
)

// #endregion

// #region outcome

// Outcome is the resolution state of a round.
type Outcome string

const (
	OutcomeNone    Outcome = "none"
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// #endregion

// #region errors

// ErrRoundExhausted signals that no unused goal codes remain; only a full
// reset can start another round.
var ErrRoundExhausted = errors.New("no unused goal codes remain")

// #endregion

// #region config

// Config holds the engine's explicit tuning. Nothing is read from ambient
// globals; the presentation layer passes everything in.
type Config struct {
	MoveLimit int
	Economy   economy.Config
	DevTools  bool // enables the endgame test hook
}

// DefaultConfig returns the shipped game tuning.
func DefaultConfig() Config {
	return Config{
		MoveLimit: 10,
		Economy:   economy.DefaultConfig(),
	}
}

// #endregion

// #region round

// round is the engine-private state of the active round.
type round struct {
	id    string
	start hexagram.Code
	goal  hexagram.Code
	chain []hexagram.Code

	locked    bool
	outcome   Outcome
	hintArmed bool
	hintsUsed int

	// Static optimal: anchored at round start, re-anchored at the chain tip
	// on unlock purchase. Display and scoring only.
	staticOptimal      int
	staticOptimalKnown bool

	// Live guidance: anchored at the chain tip, refreshed after every
	// applied move and unlock purchase.
	liveDistance  int
	liveReachable bool
	firstMoves    map[operator.ID]bool

	award *economy.Award // set exactly once, at resolution
}

func (r *round) tip() hexagram.Code {
	return r.chain[len(r.chain)-1]
}

func (r *round) moves() int {
	return len(r.chain) - 1
}

// #endregion
