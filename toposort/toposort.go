// Package toposort topologically orders a directed acyclic graph using Kahn's
// algorithm over a min-first priority map of in-degrees: the next node to emit
// is always one whose in-degree has dropped to zero, found in O(1).
package toposort

import (
	"errors"

	prioritymap "github.com/wilderfield/priority-map"
)

// ErrCycle is returned when the graph contains a cycle and no topological
// order exists.
var ErrCycle = errors.New("toposort: graph contains a cycle")

// Sort returns the nodes of the graph in a topological order: for every edge
// u -> v in edges, u appears before v. Nodes mentioned only in edges are
// included. Which of several valid orders is returned is unspecified.
func Sort[N comparable](nodes []N, edges map[N][]N) ([]N, error) {
	deg := prioritymap.NewMin[N, int]()
	for _, n := range nodes {
		deg.Access(n)
	}
	for u, vs := range edges {
		deg.Access(u)
		for _, v := range vs {
			deg.Inc(v)
		}
	}

	order := make([]N, 0, deg.Len())
	for !deg.Empty() {
		n, d, _ := deg.Pop()
		if d != 0 {
			return nil, ErrCycle
		}
		order = append(order, n)
		for _, v := range edges[n] {
			if deg.Contains(v) {
				deg.Dec(v)
			}
		}
	}
	return order, nil
}
