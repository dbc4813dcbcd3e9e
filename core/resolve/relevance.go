package resolve

import "github.com/stokaro/catalogdiff/core/catalog"

// edgeKey is the (dependent, referenced) pair used to deduplicate edges
// once their source tag no longer matters for constraint generation.
type edgeKey struct {
	dependent  string
	referenced string
}

// relevantEdges returns every resolved dependency edge from both
// snapshots whose endpoints both lie within the relevance frontier seeded
// by the change set's stable ids, expanded to depth 2 in both directions.
// This mirrors DependencyExtractor.extract_for_changeset in the model
// this package is ported from: a changeset rarely touches more than a
// handful of objects, and pulling in the entire catalog's dependency graph
// would make constraint generation quadratic in catalog size instead of
// changeset size.
func relevantEdges(seeds []string, master, branch *catalog.Snapshot) map[edgeKey]bool {
	all := append(append([]catalog.DependEdge{}, master.Depends...), branch.Depends...)

	adjacency := map[string]map[string]bool{}
	addAdj := func(a, b string) {
		if adjacency[a] == nil {
			adjacency[a] = map[string]bool{}
		}
		adjacency[a][b] = true
	}
	for _, e := range all {
		if !e.IsResolved() {
			continue
		}
		addAdj(e.Dependent, e.Referenced)
		addAdj(e.Referenced, e.Dependent)
	}

	relevant := map[string]bool{}
	frontier := map[string]bool{}
	for _, s := range seeds {
		relevant[s] = true
		frontier[s] = true
	}

	const maxDepth = 2
	for depth := 0; depth < maxDepth; depth++ {
		next := map[string]bool{}
		for node := range frontier {
			for neighbor := range adjacency[node] {
				if !relevant[neighbor] {
					relevant[neighbor] = true
					next[neighbor] = true
				}
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	retained := map[edgeKey]bool{}
	for _, e := range all {
		if !e.IsResolved() {
			continue
		}
		if relevant[e.Dependent] && relevant[e.Referenced] {
			retained[edgeKey{dependent: e.Dependent, referenced: e.Referenced}] = true
		}
	}
	return retained
}
