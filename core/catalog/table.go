package catalog

// Table is a relation of kind 'r'. Its columns live separately as Column
// entities; Table itself carries the relation-level data needed to emit
// CREATE TABLE and the ROW LEVEL SECURITY toggle.
type Table struct {
	Schema string // identity
	Name   string // identity

	RLSEnabled bool              // data
	Inherits   []string          // data, fully-qualified parent table names
	Options    map[string]string // data, storage parameters (WITH (k=v, ...))
	Comment    string            // data
}

// StableID implements Entity.
func (t Table) StableID() string {
	return TableStableID(t.Schema, t.Name)
}

// SemanticallyEqual compares the data fields of two tables. Columns are
// diffed independently; they never participate here.
func (t Table) SemanticallyEqual(other Table) bool {
	if t.RLSEnabled != other.RLSEnabled {
		return false
	}
	if !stringSliceEqual(t.Inherits, other.Inherits) {
		return false
	}
	if !stringMapEqual(t.Options, other.Options) {
		return false
	}
	return t.Comment == other.Comment
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func stringMapEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
