// Package progress tracks goal collection across the rounds of one run.
package progress

import (
	"sort"

	"hexapath/internal/hexagram"
)

// #region tracker

// Tracker owns the two per-run goal sets: goals drawn (never redrawn, even
// after a failed round) and goals actually collected by winning.
type Tracker struct {
	used      map[hexagram.Code]bool
	collected map[hexagram.Code]bool
}

// NewTracker returns an empty tracker for a fresh run.
func NewTracker() *Tracker {
	return &Tracker{
		used:      make(map[hexagram.Code]bool),
		collected: make(map[hexagram.Code]bool),
	}
}

// #endregion tracker

// #region used

// MarkUsed records a goal draw. Draws are without replacement for the run.
func (t *Tracker) MarkUsed(code hexagram.Code) {
	t.used[code] = true
}

// Used reports whether code has been drawn as a goal this run.
func (t *Tracker) Used(code hexagram.Code) bool {
	return t.used[code]
}

// Candidates filters codes down to those not yet drawn, excluding skip.
func (t *Tracker) Candidates(codes []hexagram.Code, skip hexagram.Code) []hexagram.Code {
	var out []hexagram.Code
	for _, c := range codes {
		if c == skip || t.used[c] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// #endregion used

// #region collected

// Collect adds a won goal. Returns false if it was already collected.
func (t *Tracker) Collect(code hexagram.Code) bool {
	if t.collected[code] {
		return false
	}
	t.collected[code] = true
	return true
}

// Collected reports whether code has been won this run.
func (t *Tracker) Collected(code hexagram.Code) bool {
	return t.collected[code]
}

// CollectedCount returns the number of distinct collected goals.
func (t *Tracker) CollectedCount() int {
	return len(t.collected)
}

// CollectedCodes returns the collected goals in lexical order.
func (t *Tracker) CollectedCodes() []hexagram.Code {
	out := make([]hexagram.Code, 0, len(t.collected))
	for c := range t.collected {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Complete reports whether every one of total goals has been collected.
func (t *Tracker) Complete(total int) bool {
	return len(t.collected) >= total
}

// #endregion collected
