package diff

import (
	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
)

func diffSequences(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change

	for id, m := range master.Sequences {
		if _, ok := branch.Sequences[id]; !ok {
			changes = append(changes, change.DropSequence{Sequence: m})
		}
	}

	for id, b := range branch.Sequences {
		if _, ok := master.Sequences[id]; !ok {
			changes = append(changes, change.CreateSequence{Sequence: b})
		}
	}

	for id, m := range master.Sequences {
		b, ok := branch.Sequences[id]
		if !ok || m.SemanticallyEqual(b) {
			continue
		}

		alter := change.AlterSequence{Schema: b.Schema, Name: b.Name}
		if m.DataType != b.DataType {
			alter.NewDataType = &b.DataType
		}
		if m.IncrementBy != b.IncrementBy {
			alter.NewIncrementBy = &b.IncrementBy
		}
		if m.MinValue != b.MinValue {
			alter.NewMinValue = &b.MinValue
		}
		if m.MaxValue != b.MaxValue {
			alter.NewMaxValue = &b.MaxValue
		}
		if m.StartValue != b.StartValue {
			alter.NewStartValue = &b.StartValue
		}
		if m.CacheSize != b.CacheSize {
			alter.NewCacheSize = &b.CacheSize
		}
		if m.Cycle != b.Cycle {
			alter.NewCycle = &b.Cycle
		}
		if m.OwnedBySchema != b.OwnedBySchema || m.OwnedByTable != b.OwnedByTable || m.OwnedByColumn != b.OwnedByColumn {
			alter.OwnershipChanged = true
			alter.NewOwnerSchema = b.OwnedBySchema
			alter.NewOwnerTable = b.OwnedByTable
			alter.NewOwnerColumn = b.OwnedByColumn
		}

		changes = append(changes, alter)
	}

	return sortByStableID(changes)
}
