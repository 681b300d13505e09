// Package reach computes shortest paths over the hexagram transform graph.
//
// Nodes are catalog codes, edges are single applications of an allowed
// operator. The graph has at most 64 nodes and 11 edges per node, so a plain
// BFS is always fast enough to run synchronously inside a command.
package reach

import (
	"hexapath/internal/catalog"
	"hexapath/internal/hexagram"
	"hexapath/internal/operator"
)

// #region result

// Result is the output of a shortest-path query.
type Result struct {
	// Distance is the fewest operator applications from start to goal.
	// Meaningful only when Reachable is true.
	Distance int
	// Reachable is false when no allowed-operator path reaches the goal.
	Reachable bool
	// FirstMoves holds every operator that begins some minimum-length path.
	// Ties are all included; the set never depends on iteration order.
	FirstMoves map[operator.ID]bool
}

// #endregion result

// #region shortest-path

// ShortestPath runs a BFS from start toward goal using only the allowed
// operators, restricted to codes present in cat. Transform results outside
// the catalog are dead ends and are never expanded.
//
// First moves are tracked as a set per node: the set of opening operators
// that begin some shortest path to that node. Because edges are unweighted
// and BFS discovers nodes in non-decreasing depth order, a node's set is
// complete before the node itself is expanded — every same-depth parent is
// dequeued first, so all merges land in time. Expansion stops at the depth
// where the goal was first found.
func ShortestPath(start, goal hexagram.Code, allowed []operator.ID, cat catalog.Catalog) Result {
	if start == goal {
		return Result{Distance: 0, Reachable: true, FirstMoves: map[operator.ID]bool{}}
	}

	dist := map[hexagram.Code]int{start: 0}
	opening := map[hexagram.Code]map[operator.ID]bool{}
	queue := []hexagram.Code{start}

	best := -1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]

		// Layers at or past the goal depth cannot start a shorter path.
		if best >= 0 && d >= best {
			continue
		}

		for _, id := range allowed {
			next := operator.Apply(id, cur)
			if !cat.Contains(next) {
				continue
			}

			// The opening set carried across this edge: the operator itself
			// on the first hop, the parent's set afterwards.
			var carried map[operator.ID]bool
			if cur == start {
				carried = map[operator.ID]bool{id: true}
			} else {
				carried = opening[cur]
			}

			if seen, ok := dist[next]; !ok {
				dist[next] = d + 1
				opening[next] = cloneSet(carried)
				if next == goal && best < 0 {
					best = d + 1
				}
				if best < 0 || d+1 <= best {
					queue = append(queue, next)
				}
			} else if seen == d+1 {
				// Another shortest route to next; merge its openings so ties
				// survive regardless of operator order.
				mergeSet(opening[next], carried)
			}
		}
	}

	if best < 0 {
		return Result{Reachable: false, FirstMoves: map[operator.ID]bool{}}
	}
	return Result{Distance: best, Reachable: true, FirstMoves: cloneSet(opening[goal])}
}

// #endregion shortest-path

// #region set-helpers

func cloneSet(s map[operator.ID]bool) map[operator.ID]bool {
	out := make(map[operator.ID]bool, len(s))
	for id := range s {
		out[id] = true
	}
	return out
}

func mergeSet(dst, src map[operator.ID]bool) {
	for id := range src {
		dst[id] = true
	}
}

// #endregion set-helpers
