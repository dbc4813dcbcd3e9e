package change

import "github.com/stokaro/catalogdiff/core/catalog"

// CreateConstraint requests ALTER TABLE ... ADD CONSTRAINT.
type CreateConstraint struct {
	Constraint catalog.Constraint
}

func (c CreateConstraint) StableID() string { return c.Constraint.StableID() }
func (c CreateConstraint) Op() OpKind       { return OpCreate }

// DropConstraint requests ALTER TABLE ... DROP CONSTRAINT.
type DropConstraint struct {
	Constraint catalog.Constraint
}

func (c DropConstraint) StableID() string { return c.Constraint.StableID() }
func (c DropConstraint) Op() OpKind       { return OpDrop }

// AlterConstraint requests ALTER TABLE ... ALTER CONSTRAINT, the one
// foreign-key-only modification the differ allows in place: a change to
// deferrability without any change to key columns or referenced table.
type AlterConstraint struct {
	Constraint        catalog.Constraint
	Deferrable        bool
	InitiallyDeferred bool
}

func (c AlterConstraint) StableID() string { return c.Constraint.StableID() }
func (c AlterConstraint) Op() OpKind       { return OpAlter }
