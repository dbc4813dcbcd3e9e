// Package change defines the Change sum type produced by the Differ,
// reordered by the Dependency Resolver and consumed by the DDL Emitter.
// Changes are value types: once built they carry every field the Emitter
// needs, so the Emitter never re-reads either snapshot.
package change

// OpKind is the operation-kind discriminator used by the resolver's
// same-object ordering rule: DROP < CREATE < ALTER < REPLACE.
type OpKind int

const (
	OpDrop OpKind = iota
	OpCreate
	OpAlter
	OpReplace
)

func (k OpKind) String() string {
	switch k {
	case OpDrop:
		return "DROP"
	case OpCreate:
		return "CREATE"
	case OpAlter:
		return "ALTER"
	case OpReplace:
		return "REPLACE"
	default:
		return "UNKNOWN"
	}
}

// Change is implemented by every concrete change variant. StableID names
// the entity the change targets; Op classifies it for the resolver's
// same-object priority rule. The Dispatcher in core/emit performs a type
// switch over these variants — adding a variant here without a matching
// emit case still compiles, and the switch's default branch then returns
// an InvariantViolation error for it.
type Change interface {
	StableID() string
	Op() OpKind
}

// IsCreate reports whether c is a CREATE-family change.
func IsCreate(c Change) bool { return c.Op() == OpCreate }

// IsDrop reports whether c is a DROP-family change.
func IsDrop(c Change) bool { return c.Op() == OpDrop }

// IsAlter reports whether c is an ALTER-family change.
func IsAlter(c Change) bool { return c.Op() == OpAlter }

// IsReplace reports whether c is a REPLACE-family change.
func IsReplace(c Change) bool { return c.Op() == OpReplace }
