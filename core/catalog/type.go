package catalog

// TypType is a pg_type.typtype code. Only the kinds a catalog-only differ
// can safely recreate are extracted: enum, domain, composite and range.
// Multirange ('m') has a code here but is not read by extraction. Base
// types ('b') require C-level I/O functions and are never extracted.
type TypType string

const (
	TypeEnum       TypType = "e"
	TypeDomain     TypType = "d"
	TypeComposite  TypType = "c"
	TypeRange      TypType = "r"
	TypeMultirange TypType = "m"
)

// CompositeAttribute is one field of a composite type.
type CompositeAttribute struct {
	Name string
	Type string
}

// Type is a user-defined type: enum, domain, composite or range. Any
// semantic difference is realized by the differ as drop+create rather than
// ALTER TYPE, so this entity carries no partial-update affordances.
type Type struct {
	Schema string  // identity
	Name   string  // identity
	Kind   TypType // identity: a table and type sharing a name already
	// can't collide (different stable-id prefix), but Kind further
	// distinguishes CREATE TYPE forms sharing the same name is not
	// possible in PostgreSQL; kept here for extraction completeness.

	EnumValues []string // data, Kind == TypeEnum, in declared order

	DomainBaseType   string // data, Kind == TypeDomain
	DomainConstraint string // data, Kind == TypeDomain, empty if none
	DomainNotNull    bool   // data, Kind == TypeDomain
	DomainDefault    string // data, Kind == TypeDomain, empty if none

	CompositeAttrs []CompositeAttribute // data, Kind == TypeComposite

	RangeSubtype string // data, Kind == TypeRange
}

// StableID implements Entity.
func (t Type) StableID() string {
	return TypeStableID(t.Schema, t.Name)
}

// SemanticallyEqual compares two types of the same kind field by field.
// Types of different kinds sharing a stable id cannot occur in practice
// (PostgreSQL type names are unique per schema regardless of typtype) but
// are treated as unequal defensively.
func (t Type) SemanticallyEqual(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TypeEnum:
		return stringSliceEqual(t.EnumValues, other.EnumValues)
	case TypeDomain:
		return t.DomainBaseType == other.DomainBaseType &&
			t.DomainConstraint == other.DomainConstraint &&
			t.DomainNotNull == other.DomainNotNull &&
			t.DomainDefault == other.DomainDefault
	case TypeComposite:
		if len(t.CompositeAttrs) != len(other.CompositeAttrs) {
			return false
		}
		for i := range t.CompositeAttrs {
			if t.CompositeAttrs[i] != other.CompositeAttrs[i] {
				return false
			}
		}
		return true
	case TypeRange:
		return t.RangeSubtype == other.RangeSubtype
	case TypeMultirange:
		// Multirange types are lifecycle-coupled to their range type and
		// are never independently created; equality is irrelevant but
		// defined for completeness.
		return t.RangeSubtype == other.RangeSubtype
	default:
		return false
	}
}
