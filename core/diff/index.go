package diff

import (
	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
)

// diffIndexes skips constraint-backed indexes on either side: their
// lifecycle is driven by the owning constraint, so diffing them would
// produce redundant DDL.
func diffIndexes(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change

	for id, m := range master.Indexes {
		if m.ConstraintBacked {
			continue
		}
		if _, ok := branch.Indexes[id]; !ok {
			changes = append(changes, change.DropIndex{Index: m})
		}
	}

	for id, b := range branch.Indexes {
		if b.ConstraintBacked {
			continue
		}
		if _, ok := master.Indexes[id]; !ok {
			changes = append(changes, change.CreateIndex{Index: b})
		}
	}

	for id, m := range master.Indexes {
		if m.ConstraintBacked {
			continue
		}
		b, ok := branch.Indexes[id]
		if !ok || b.ConstraintBacked || m.SemanticallyEqual(b) {
			continue
		}
		// A changed index is always drop+create: AlterIndex exists only
		// as an explicit, never-produced, unsupported-operation marker
		// (spec's rename-only branch is unreachable since the index name
		// is embedded in the stable id).
		changes = append(changes, change.DropIndex{Index: m}, change.CreateIndex{Index: b})
	}

	return sortByStableID(changes)
}

func diffConstraints(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change

	for id, m := range master.Constraints {
		if _, ok := branch.Constraints[id]; !ok {
			changes = append(changes, change.DropConstraint{Constraint: m})
		}
	}

	for id, b := range branch.Constraints {
		if _, ok := master.Constraints[id]; !ok {
			changes = append(changes, change.CreateConstraint{Constraint: b})
		}
	}

	for id, m := range master.Constraints {
		b, ok := branch.Constraints[id]
		if !ok || m.SemanticallyEqual(b) {
			continue
		}
		if m.OnlyDeferrabilityDiffers(b) {
			changes = append(changes, change.AlterConstraint{
				Constraint:        b,
				Deferrable:        b.Deferrable,
				InitiallyDeferred: b.InitiallyDeferred,
			})
			continue
		}
		changes = append(changes, change.DropConstraint{Constraint: m}, change.CreateConstraint{Constraint: b})
	}

	return sortByStableID(changes)
}
