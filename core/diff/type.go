package diff

import (
	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
)

// diffTypes realizes every semantic difference as drop+create rather than
// ALTER TYPE, per spec §4.2.3. Multirange types are never independently
// created: PostgreSQL creates them automatically alongside their range
// type, so a CreateType for a multirange is filtered out here before it
// ever reaches the resolver or emitter.
func diffTypes(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change

	for id, m := range master.Types {
		if _, ok := branch.Types[id]; !ok {
			changes = append(changes, change.DropType{Type: m})
		}
	}

	for id, b := range branch.Types {
		if _, ok := master.Types[id]; !ok {
			if b.Kind == catalog.TypeMultirange {
				continue
			}
			changes = append(changes, change.CreateType{Type: b})
		}
	}

	for id, m := range master.Types {
		b, ok := branch.Types[id]
		if !ok || m.SemanticallyEqual(b) {
			continue
		}
		changes = append(changes, change.DropType{Type: m})
		if b.Kind != catalog.TypeMultirange {
			changes = append(changes, change.CreateType{Type: b})
		}
	}

	return sortByStableID(changes)
}
