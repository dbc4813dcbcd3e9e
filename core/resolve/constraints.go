package resolve

import (
	"strings"

	"github.com/stokaro/catalogdiff/core/change"
)

// orderingEdge is a "before(from, to)" ordering constraint between two
// change indices, kept with a human-readable reason for diagnostics.
type orderingEdge struct {
	from, to int
	reason   string
}

// generateConstraints applies the pairwise semantic rules of spec §4.4 to
// every ordered pair of changes, plus the same-object operation-priority
// rule, and returns the resulting "before" edges.
//
// The dead cross-catalog branch present in the system this package is
// ported from - keyed on a dependency source value that extraction never
// actually produces - has been dropped rather than reimplemented; edges
// are consulted across both snapshots regardless of their source tag,
// which is what that branch seems to have been reaching for.
func generateConstraints(changes []change.Change, edges map[edgeKey]bool) []orderingEdge {
	var out []orderingEdge

	depends := func(dependent, referenced string) bool {
		return edges[edgeKey{dependent: dependent, referenced: referenced}]
	}

	for i, a := range changes {
		for j, b := range changes {
			if i == j {
				continue
			}
			if edge, ok := pairwiseConstraint(i, a, j, b, depends); ok {
				out = append(out, edge)
			}
		}
	}

	out = append(out, sameObjectConstraints(changes)...)
	return out
}

// pairwiseConstraint implements the "first match wins" rule table of
// spec §4.4 for one ordered pair (a at index i, b at index j).
func pairwiseConstraint(i int, a change.Change, j int, b change.Change, depends func(dependent, referenced string) bool) (orderingEdge, bool) {
	aID, bID := a.StableID(), b.StableID()

	// Sequence/table inversion: CREATE sequence A, CREATE table B, A
	// depends on B (sequence OWNED BY table) ⇒ A before B. PostgreSQL
	// reports the sequence as the dependent of its owning table, but a
	// SERIAL column's table definition needs the sequence to already
	// exist, so CREATE ordering here is the reverse of the general rule.
	if isSequence(aID) && change.IsCreate(a) && isTable(bID) && change.IsCreate(b) && depends(aID, bID) {
		return orderingEdge{from: i, to: j, reason: "sequence must exist before owning table"}, true
	}

	if change.IsDrop(a) && change.IsDrop(b) && depends(aID, bID) {
		return orderingEdge{from: i, to: j, reason: "drop dependents before dependencies"}, true
	}

	if change.IsCreate(a) && change.IsCreate(b) && depends(aID, bID) {
		return orderingEdge{from: j, to: i, reason: "create dependencies before dependents"}, true
	}

	if isMutating(a) && isMutating(b) && depends(aID, bID) {
		return orderingEdge{from: j, to: i, reason: "install dependencies before dependents"}, true
	}

	if isMutating(a) && change.IsDrop(b) && depends(aID, bID) {
		return orderingEdge{from: j, to: i, reason: "clear old objects before installing replacements"}, true
	}

	return orderingEdge{}, false
}

// sameObjectConstraints orders changes that target the same stable id by
// operation-kind priority: DROP < CREATE < ALTER < REPLACE.
func sameObjectConstraints(changes []change.Change) []orderingEdge {
	byID := map[string][]int{}
	for i, c := range changes {
		byID[c.StableID()] = append(byID[c.StableID()], i)
	}

	var out []orderingEdge
	for _, idxs := range byID {
		if len(idxs) < 2 {
			continue
		}
		for _, i := range idxs {
			for _, j := range idxs {
				if i == j {
					continue
				}
				if changes[i].Op() < changes[j].Op() {
					out = append(out, orderingEdge{from: i, to: j, reason: "same object: operation priority"})
				}
			}
		}
	}
	return out
}

func isMutating(c change.Change) bool {
	return change.IsCreate(c) || change.IsAlter(c) || change.IsReplace(c)
}

func isSequence(stableID string) bool {
	return strings.HasPrefix(stableID, "S:")
}

func isTable(stableID string) bool {
	return strings.HasPrefix(stableID, "r:")
}
