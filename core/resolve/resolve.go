// Package resolve implements the Dependency Resolver: it turns a change
// set plus both snapshots into a total order safe to execute against
// PostgreSQL, failing loudly with a CyclicDependencyError when no such
// order exists rather than emitting a best-effort guess.
package resolve

import (
	"log/slog"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
	"github.com/stokaro/catalogdiff/core/errs"
)

// Resolve orders changes so that applying them in sequence leaves the
// database valid at every intermediate state. It returns a new slice;
// the input is never mutated.
func Resolve(changes []change.Change, master, branch *catalog.Snapshot) ([]change.Change, error) {
	if len(changes) == 0 {
		return nil, nil
	}

	seeds := make([]string, len(changes))
	for i, c := range changes {
		seeds[i] = c.StableID()
	}

	edges := relevantEdges(seeds, master, branch)
	constraints := generateConstraints(changes, edges)

	if len(constraints) == 0 {
		slog.Debug("dependency resolver: no ordering constraints generated", "changes", len(changes))
	}

	order, err := topoSort(seeds, constraints)
	if err != nil {
		return nil, err
	}

	ordered := make([]change.Change, len(order))
	for i, idx := range order {
		ordered[i] = changes[idx]
	}
	return ordered, nil
}

// topoSort runs Kahn's algorithm over one node per entry of ids (the stable
// id of the change at that index) and the given before-edges.
// Ties among simultaneously-ready nodes are broken by ascending index, so
// the result is a deterministic total order, not merely *a* valid one.
func topoSort(ids []string, constraints []orderingEdge) ([]int, error) {
	n := len(ids)
	adjacency := make([][]int, n)
	indegree := make([]int, n)
	for _, e := range constraints {
		adjacency[e.from] = append(adjacency[e.from], e.to)
		indegree[e.to]++
	}

	ready := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	var order []int
	for len(ready) > 0 {
		minIdx := 0
		for i, v := range ready {
			if v < ready[minIdx] {
				minIdx = i
			}
		}
		node := ready[minIdx]
		ready = append(ready[:minIdx], ready[minIdx+1:]...)

		order = append(order, node)
		for _, next := range adjacency[node] {
			indegree[next]--
			if indegree[next] == 0 {
				ready = append(ready, next)
			}
		}
	}

	if len(order) == n {
		return order, nil
	}

	placed := make([]bool, n)
	for _, idx := range order {
		placed[idx] = true
	}

	var remaining []int
	for i := 0; i < n; i++ {
		if !placed[i] {
			remaining = append(remaining, i)
		}
	}

	remainingSet := map[int]bool{}
	for _, i := range remaining {
		remainingSet[i] = true
	}

	var cycleEdges []errs.CycleEdge
	var remainingIDs []string
	for _, i := range remaining {
		remainingIDs = append(remainingIDs, ids[i])
	}
	for _, e := range constraints {
		if remainingSet[e.from] && remainingSet[e.to] {
			cycleEdges = append(cycleEdges, errs.CycleEdge{
				From:   ids[e.from],
				To:     ids[e.to],
				Reason: e.reason,
			})
		}
	}

	return nil, errs.NewCyclicDependencyError(remainingIDs, cycleEdges)
}
