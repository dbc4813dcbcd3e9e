package catalog

// ConstraintType enumerates the pg_constraint.contype values this differ
// understands.
type ConstraintType string

const (
	ConstraintPrimaryKey ConstraintType = "p"
	ConstraintUnique     ConstraintType = "u"
	ConstraintCheck      ConstraintType = "c"
	ConstraintForeignKey ConstraintType = "f"
)

// ForeignKeyAction is one of pg_constraint's confupdtype/confdeltype codes.
type ForeignKeyAction string

const (
	FKActionNoAction   ForeignKeyAction = "a"
	FKActionRestrict   ForeignKeyAction = "r"
	FKActionCascade    ForeignKeyAction = "c"
	FKActionSetNull    ForeignKeyAction = "n"
	FKActionSetDefault ForeignKeyAction = "d"
)

// Constraint is a table constraint: primary key, unique, check or foreign
// key. Index- and trigger-backed enforcement is the database's concern;
// this entity only carries what is needed to compose the DDL.
type Constraint struct {
	Schema string // identity
	Table  string // identity
	Name   string // identity

	Type ConstraintType // data

	Columns []string // data, local key columns, in key order

	CheckExpr string // data, only for Type == ConstraintCheck

	RefSchema  string   // data, only for Type == ConstraintForeignKey
	RefTable   string   // data
	RefColumns []string // data

	OnUpdate ForeignKeyAction // data, FK only
	OnDelete ForeignKeyAction // data, FK only

	Deferrable        bool // data, FK only
	InitiallyDeferred bool // data, FK only
}

// StableID implements Entity.
func (c Constraint) StableID() string {
	return ConstraintStableID(c.Schema, c.Table, c.Name)
}

// SemanticallyEqual compares two constraints sharing a stable id field by
// field.
func (c Constraint) SemanticallyEqual(other Constraint) bool {
	if c.Type != other.Type {
		return false
	}
	if !stringSliceEqual(c.Columns, other.Columns) {
		return false
	}
	switch c.Type {
	case ConstraintCheck:
		return c.CheckExpr == other.CheckExpr
	case ConstraintForeignKey:
		return c.RefSchema == other.RefSchema &&
			c.RefTable == other.RefTable &&
			stringSliceEqual(c.RefColumns, other.RefColumns) &&
			c.OnUpdate == other.OnUpdate &&
			c.OnDelete == other.OnDelete &&
			c.Deferrable == other.Deferrable &&
			c.InitiallyDeferred == other.InitiallyDeferred
	default:
		return true
	}
}

// OnlyDeferrabilityDiffers reports whether c and other are both foreign
// keys differing solely in their deferrability settings, which is the one
// constraint modification the differ realizes as ALTER instead of
// drop+create.
func (c Constraint) OnlyDeferrabilityDiffers(other Constraint) bool {
	if c.Type != ConstraintForeignKey || other.Type != ConstraintForeignKey {
		return false
	}
	sameShape := stringSliceEqual(c.Columns, other.Columns) &&
		c.RefSchema == other.RefSchema &&
		c.RefTable == other.RefTable &&
		stringSliceEqual(c.RefColumns, other.RefColumns) &&
		c.OnUpdate == other.OnUpdate &&
		c.OnDelete == other.OnDelete
	if !sameShape {
		return false
	}
	return c.Deferrable != other.Deferrable || c.InitiallyDeferred != other.InitiallyDeferred
}
