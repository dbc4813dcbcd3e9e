package catalogdiff_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	catalogdiff "github.com/stokaro/catalogdiff"
	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
)

func TestDiff_NoChanges(t *testing.T) {
	c := qt.New(t)

	snap := catalog.NewSnapshot()
	changes, err := catalogdiff.Diff(snap, snap)
	c.Assert(err, qt.IsNil)
	c.Assert(changes, qt.HasLen, 0)
}

func TestDiff_CreateTable_ReturnsOrderedChange(t *testing.T) {
	c := qt.New(t)

	master := catalog.NewSnapshot()
	branch := catalog.NewSnapshot()
	branch.Tables[catalog.TableStableID("public", "widgets")] = catalog.Table{Schema: "public", Name: "widgets"}

	changes, err := catalogdiff.Diff(master, branch)
	c.Assert(err, qt.IsNil)
	c.Assert(changes, qt.HasLen, 1)
	c.Assert(changes[0].Op(), qt.Equals, change.OpCreate)
}

func TestEmit_RendersStatement(t *testing.T) {
	c := qt.New(t)

	stmt, err := catalogdiff.Emit(change.DropTable{Table: catalog.Table{Schema: "public", Name: "widgets"}})
	c.Assert(err, qt.IsNil)
	c.Assert(stmt, qt.Equals, `DROP TABLE "public"."widgets";`)
}

func TestEmitAll_PreservesOrder(t *testing.T) {
	c := qt.New(t)

	changes := []change.Change{
		change.DropTable{Table: catalog.Table{Schema: "public", Name: "a"}},
		change.DropTable{Table: catalog.Table{Schema: "public", Name: "b"}},
	}

	stmts, err := catalogdiff.EmitAll(changes)
	c.Assert(err, qt.IsNil)
	c.Assert(stmts, qt.HasLen, 2)
	c.Assert(stmts[0], qt.Contains, `"a"`)
	c.Assert(stmts[1], qt.Contains, `"b"`)
}

func TestEmitAll_AbortsOnFirstError(t *testing.T) {
	c := qt.New(t)

	changes := []change.Change{
		change.DropTable{Table: catalog.Table{Schema: "public", Name: "a"}},
		change.AlterIndex{Schema: "public", Name: "idx_x"},
	}

	_, err := catalogdiff.EmitAll(changes)
	c.Assert(err, qt.IsNotNil)
}

func TestSideConstants(t *testing.T) {
	c := qt.New(t)

	c.Assert(catalogdiff.Master, qt.Equals, catalogdiff.Side(catalog.SourceMaster))
	c.Assert(catalogdiff.Branch, qt.Equals, catalogdiff.Side(catalog.SourceBranch))
}
