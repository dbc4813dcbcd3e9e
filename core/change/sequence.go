package change

import "github.com/stokaro/catalogdiff/core/catalog"

// CreateSequence requests a fully-formed CREATE SEQUENCE.
type CreateSequence struct {
	Sequence catalog.Sequence
}

func (c CreateSequence) StableID() string { return c.Sequence.StableID() }
func (c CreateSequence) Op() OpKind       { return OpCreate }

// DropSequence requests DROP SEQUENCE "<s>"."<n>";
type DropSequence struct {
	Sequence catalog.Sequence
}

func (c DropSequence) StableID() string { return c.Sequence.StableID() }
func (c DropSequence) Op() OpKind       { return OpDrop }

// AlterSequence carries the branch's new field values for every property
// that differs from master; nil pointers mean "unchanged". The emitter
// may render this as up to two joined statements: one ALTER SEQUENCE for
// the changed properties, and a second for OWNED BY when ownership
// changed.
type AlterSequence struct {
	Schema string
	Name   string

	NewDataType    *string
	NewIncrementBy *int64
	NewMinValue    *int64
	NewMaxValue    *int64
	NewStartValue  *int64
	NewCacheSize   *int64
	NewCycle       *bool

	// OwnershipChanged distinguishes "no change" from "changed to
	// unowned" (new owner fields left blank means OWNED BY NONE).
	OwnershipChanged bool
	NewOwnerSchema   string
	NewOwnerTable    string
	NewOwnerColumn   string
}

func (c AlterSequence) StableID() string { return catalog.SequenceStableID(c.Schema, c.Name) }
func (c AlterSequence) Op() OpKind       { return OpAlter }
