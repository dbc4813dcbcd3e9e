package change

import "github.com/stokaro/catalogdiff/core/catalog"

// CreateIndex requests CREATE INDEX, reusing the stored pg_get_indexdef
// output verbatim.
type CreateIndex struct {
	Index catalog.Index
}

func (c CreateIndex) StableID() string { return c.Index.StableID() }
func (c CreateIndex) Op() OpKind       { return OpCreate }

// DropIndex requests DROP INDEX "<s>"."<i>";
type DropIndex struct {
	Index catalog.Index
}

func (c DropIndex) StableID() string { return c.Index.StableID() }
func (c DropIndex) Op() OpKind       { return OpDrop }

// AlterIndex is never produced by the Differ: a renamed index has a
// different stable id and is realized as drop+create like any other
// renamed entity. It is kept as an explicit variant, per spec, so that
// the emitter has a named case to reject with UnsupportedOperation rather
// than silently falling through if it is ever constructed.
type AlterIndex struct {
	Schema string
	Name   string
}

func (c AlterIndex) StableID() string { return catalog.IndexStableID(c.Schema, c.Name) }
func (c AlterIndex) Op() OpKind       { return OpAlter }
