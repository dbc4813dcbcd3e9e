// Package diff implements the Differ: given two catalog snapshots, it
// returns an unordered change set that would transform the master into a
// catalog semantically equal to the branch. Ordering is the Dependency
// Resolver's job, not this package's.
package diff

import (
	"log/slog"
	"sort"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
)

// Diff compares master against branch and returns every change needed to
// bring master to semantic parity with branch. The returned slice has no
// guaranteed order; callers that need an executable order must pass the
// result through core/resolve.
func Diff(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change

	changes = append(changes, diffSchemas(master, branch)...)
	changes = append(changes, diffTables(master, branch)...)
	changes = append(changes, diffViews(master, branch)...)
	changes = append(changes, diffMaterializedViews(master, branch)...)
	changes = append(changes, diffSequences(master, branch)...)
	changes = append(changes, diffIndexes(master, branch)...)
	changes = append(changes, diffConstraints(master, branch)...)
	changes = append(changes, diffFunctions(master, branch)...)
	changes = append(changes, diffTriggers(master, branch)...)
	changes = append(changes, diffTypes(master, branch)...)
	changes = append(changes, diffPolicies(master, branch)...)

	return changes
}

func diffSchemas(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change
	for id, m := range master.Namespaces {
		if _, ok := branch.Namespaces[id]; !ok {
			changes = append(changes, change.DropSchema{Name: m.Name})
		}
	}
	for id, b := range branch.Namespaces {
		if _, ok := master.Namespaces[id]; !ok {
			if b.Name == "public" {
				// public always exists implicitly; never created explicitly.
				continue
			}
			changes = append(changes, change.CreateSchema{Name: b.Name})
		}
	}
	for id, m := range master.Namespaces {
		if b, ok := branch.Namespaces[id]; ok && !m.SemanticallyEqual(b) {
			slog.Warn("schema modification is not supported", "schema", id)
		}
	}
	return sortByStableID(changes)
}

func diffViews(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change
	for id, m := range master.Views {
		if _, ok := branch.Views[id]; !ok {
			changes = append(changes, change.DropView{View: m})
		}
	}
	for id, b := range branch.Views {
		if _, ok := master.Views[id]; !ok {
			changes = append(changes, change.CreateView{View: b})
		}
	}
	for id, m := range master.Views {
		if b, ok := branch.Views[id]; ok && !m.SemanticallyEqual(b) {
			changes = append(changes, change.ReplaceView{View: b})
		}
	}
	return sortByStableID(changes)
}

func diffMaterializedViews(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change
	for id, m := range master.MaterializedViews {
		if _, ok := branch.MaterializedViews[id]; !ok {
			changes = append(changes, change.DropMaterializedView{MaterializedView: m})
		}
	}
	for id, b := range branch.MaterializedViews {
		if _, ok := master.MaterializedViews[id]; !ok {
			changes = append(changes, change.CreateMaterializedView{MaterializedView: b})
		}
	}
	for id, m := range master.MaterializedViews {
		if b, ok := branch.MaterializedViews[id]; ok && !m.SemanticallyEqual(b) {
			changes = append(changes, change.ReplaceMaterializedView{MaterializedView: b})
		}
	}
	return sortByStableID(changes)
}

func diffFunctions(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change
	for id, m := range master.Functions {
		if _, ok := branch.Functions[id]; !ok {
			changes = append(changes, change.DropFunction{Function: m})
		}
	}
	for id, b := range branch.Functions {
		if _, ok := master.Functions[id]; !ok {
			changes = append(changes, change.CreateFunction{Function: b})
		}
	}
	for id, m := range master.Functions {
		if b, ok := branch.Functions[id]; ok && !m.SemanticallyEqual(b) {
			changes = append(changes, change.ReplaceFunction{Function: b})
		}
	}
	return sortByStableID(changes)
}

func diffTriggers(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change
	for id, m := range master.Triggers {
		if _, ok := branch.Triggers[id]; !ok {
			changes = append(changes, change.DropTrigger{Trigger: m})
		}
	}
	for id, b := range branch.Triggers {
		if _, ok := master.Triggers[id]; !ok {
			changes = append(changes, change.CreateTrigger{Trigger: b})
		}
	}
	for id, m := range master.Triggers {
		if b, ok := branch.Triggers[id]; ok && !m.SemanticallyEqual(b) {
			changes = append(changes, change.DropTrigger{Trigger: m}, change.CreateTrigger{Trigger: b})
		}
	}
	return sortByStableID(changes)
}

// sortByStableID orders a change slice deterministically for testing and
// for stable iteration before the Resolver imposes the order that actually
// matters.
func sortByStableID(changes []change.Change) []change.Change {
	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].StableID() != changes[j].StableID() {
			return changes[i].StableID() < changes[j].StableID()
		}
		return changes[i].Op() < changes[j].Op()
	})
	return changes
}
