package change

import "github.com/stokaro/catalogdiff/core/catalog"

// CreateType requests the appropriate CREATE TYPE / CREATE DOMAIN form
// for the entity's Kind.
type CreateType struct {
	Type catalog.Type
}

func (c CreateType) StableID() string { return c.Type.StableID() }
func (c CreateType) Op() OpKind       { return OpCreate }

// DropType requests DROP TYPE "<s>"."<n>"; (or DROP DOMAIN for domains).
// Any semantic difference in a type is realized as drop+create rather
// than ALTER TYPE.
type DropType struct {
	Type catalog.Type
}

func (c DropType) StableID() string { return c.Type.StableID() }
func (c DropType) Op() OpKind       { return OpDrop }
