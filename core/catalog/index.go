package catalog

// Index is a relation index. Like View, its Definition is the verbatim
// pg_get_indexdef output, reused unchanged by the emitter. Indexes backing
// a constraint (primary key, unique) are still extracted so the stable-id
// map stays complete, but ConstraintBacked tells the differ to skip them:
// their lifecycle is driven by the owning constraint.
type Index struct {
	Schema string // identity
	Name   string // identity

	Table string // data, owning relation name

	Definition string // data, pg_get_indexdef output

	ConstraintBacked bool // internal: true if a constraint owns this index
}

// StableID implements Entity.
func (i Index) StableID() string {
	return IndexStableID(i.Schema, i.Name)
}

// SemanticallyEqual compares two indexes by their rendered definitions.
func (i Index) SemanticallyEqual(other Index) bool {
	return i.Table == other.Table && i.Definition == other.Definition
}
