package catalog_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/catalogdiff/core/catalog"
)

func TestNewSnapshot_AllMapsReady(t *testing.T) {
	c := qt.New(t)

	snap := catalog.NewSnapshot()
	c.Assert(snap.Namespaces, qt.IsNotNil)
	c.Assert(snap.Tables, qt.IsNotNil)
	c.Assert(snap.Views, qt.IsNotNil)
	c.Assert(snap.MaterializedViews, qt.IsNotNil)
	c.Assert(snap.Columns, qt.IsNotNil)
	c.Assert(snap.Constraints, qt.IsNotNil)
	c.Assert(snap.Indexes, qt.IsNotNil)
	c.Assert(snap.Sequences, qt.IsNotNil)
	c.Assert(snap.Policies, qt.IsNotNil)
	c.Assert(snap.Functions, qt.IsNotNil)
	c.Assert(snap.Triggers, qt.IsNotNil)
	c.Assert(snap.Types, qt.IsNotNil)
}

func TestSnapshot_ColumnsOf_OrderedByOrdinal(t *testing.T) {
	c := qt.New(t)

	snap := catalog.NewSnapshot()
	snap.Columns["public.users.name"] = catalog.Column{Schema: "public", Table: "users", Name: "name", Num: 2}
	snap.Columns["public.users.id"] = catalog.Column{Schema: "public", Table: "users", Name: "id", Num: 1}
	snap.Columns["public.other.id"] = catalog.Column{Schema: "public", Table: "other", Name: "id", Num: 1}

	cols := snap.ColumnsOf("public", "users")
	c.Assert(cols, qt.HasLen, 2)
	c.Assert(cols[0].Name, qt.Equals, "id")
	c.Assert(cols[1].Name, qt.Equals, "name")
}

func TestSnapshot_SemanticallyEquals(t *testing.T) {
	c := qt.New(t)

	a := catalog.NewSnapshot()
	a.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users", RLSEnabled: true}

	b := catalog.NewSnapshot()
	b.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users", RLSEnabled: true}

	c.Assert(a.SemanticallyEquals(b), qt.IsTrue)

	b.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users", RLSEnabled: false}
	c.Assert(a.SemanticallyEquals(b), qt.IsFalse)
}

func TestSnapshot_SemanticallyEquals_DifferentKeySets(t *testing.T) {
	c := qt.New(t)

	a := catalog.NewSnapshot()
	a.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users"}

	b := catalog.NewSnapshot()
	b.Tables[catalog.TableStableID("public", "accounts")] = catalog.Table{Schema: "public", Name: "accounts"}

	c.Assert(a.SemanticallyEquals(b), qt.IsFalse)
}

func TestSnapshot_SemanticallyEquals_Empty(t *testing.T) {
	c := qt.New(t)

	c.Assert(catalog.NewSnapshot().SemanticallyEquals(catalog.NewSnapshot()), qt.IsTrue)
}
