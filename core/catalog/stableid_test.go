package catalog_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/catalogdiff/core/catalog"
)

func TestStableID_KindsDoNotCollide(t *testing.T) {
	c := qt.New(t)

	// A table and a view named identically in the same schema must never
	// produce the same stable id.
	ids := []string{
		catalog.TableStableID("public", "widgets"),
		catalog.ViewStableID("public", "widgets"),
		catalog.MaterializedViewStableID("public", "widgets"),
		catalog.IndexStableID("public", "widgets"),
		catalog.SequenceStableID("public", "widgets"),
		catalog.TypeStableID("public", "widgets"),
	}

	seen := map[string]bool{}
	for _, id := range ids {
		c.Assert(seen[id], qt.IsFalse, qt.Commentf("duplicate stable id %q", id))
		seen[id] = true
	}
}

func TestFunctionStableID_OverloadsDoNotCollide(t *testing.T) {
	c := qt.New(t)

	one := catalog.FunctionStableID("public", "area", []string{"integer"})
	two := catalog.FunctionStableID("public", "area", []string{"integer", "integer"})
	c.Assert(one, qt.Not(qt.Equals), two)

	same := catalog.FunctionStableID("public", "area", []string{"integer"})
	c.Assert(one, qt.Equals, same)
}

func TestColumnStableID_ScopedToRelation(t *testing.T) {
	c := qt.New(t)

	a := catalog.ColumnStableID("public", "users", "id")
	b := catalog.ColumnStableID("public", "accounts", "id")
	c.Assert(a, qt.Not(qt.Equals), b)
}
