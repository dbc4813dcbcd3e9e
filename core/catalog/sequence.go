package catalog

// Sequence mirrors pg_sequence joined with pg_class/pg_depend for its
// OWNED BY relationship. Every field maps directly onto a CREATE SEQUENCE
// clause in spec's SQL surface.
type Sequence struct {
	Schema string // identity
	Name   string // identity

	DataType    string // data, "AS <type>", e.g. "bigint"
	IncrementBy int64  // data
	MinValue    int64  // data
	MaxValue    int64  // data
	StartValue  int64  // data
	CacheSize   int64  // data
	Cycle       bool   // data

	OwnedBySchema string // data, empty if not OWNED BY any column
	OwnedByTable  string // data, empty if not OWNED BY any column
	OwnedByColumn string // data
}

// IsOwned reports whether the sequence is tied to a column via OWNED BY.
func (s Sequence) IsOwned() bool {
	return s.OwnedByTable != "" && s.OwnedByColumn != ""
}

// StableID implements Entity.
func (s Sequence) StableID() string {
	return SequenceStableID(s.Schema, s.Name)
}

// SemanticallyEqual compares two sequences field by field.
func (s Sequence) SemanticallyEqual(other Sequence) bool {
	return s.DataType == other.DataType &&
		s.IncrementBy == other.IncrementBy &&
		s.MinValue == other.MinValue &&
		s.MaxValue == other.MaxValue &&
		s.StartValue == other.StartValue &&
		s.CacheSize == other.CacheSize &&
		s.Cycle == other.Cycle &&
		s.OwnedBySchema == other.OwnedBySchema &&
		s.OwnedByTable == other.OwnedByTable &&
		s.OwnedByColumn == other.OwnedByColumn
}
