package engine

// #region imports
import (
	"hexapath/internal/hexagram"
	"hexapath/internal/reach"
)

// #endregion

// #region guidance

// recomputeStatic refreshes the static optimal distance from anchor to the
// goal. Called at round start (anchor = start code) and after an unlock
// purchase (anchor = current chain tip); never on ordinary moves.
func (e *Engine) recomputeStatic(anchor hexagram.Code) {
	res := reach.ShortestPath(anchor, e.round.goal, e.unlockedIDs(), e.cat)
	e.round.staticOptimal = res.Distance
	e.round.staticOptimalKnown = res.Reachable
}

// recomputeLive refreshes the chain-tip distance and the optimal-first-move
// set that drives hint highlighting. Called after every applied move and
// every unlock purchase.
func (e *Engine) recomputeLive() {
	res := reach.ShortestPath(e.round.tip(), e.round.goal, e.unlockedIDs(), e.cat)
	e.round.liveDistance = res.Distance
	e.round.liveReachable = res.Reachable
	e.round.firstMoves = res.FirstMoves
}

// #endregion
