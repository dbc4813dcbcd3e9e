package diff_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
	"github.com/stokaro/catalogdiff/core/diff"
)

func TestDiff_NoDifferences_IsIdempotent(t *testing.T) {
	c := qt.New(t)

	snap := catalog.NewSnapshot()
	snap.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users"}
	snap.Columns[catalog.ColumnStableID("public", "users", "id")] = catalog.Column{
		Schema: "public", Table: "users", Name: "id", Num: 1, FormattedType: "integer",
	}

	changes := diff.Diff(snap, snap)
	c.Assert(changes, qt.HasLen, 0)
}

func TestDiff_CreateTable(t *testing.T) {
	c := qt.New(t)

	master := catalog.NewSnapshot()
	branch := catalog.NewSnapshot()
	branch.Tables[catalog.TableStableID("public", "widgets")] = catalog.Table{Schema: "public", Name: "widgets"}
	branch.Columns[catalog.ColumnStableID("public", "widgets", "id")] = catalog.Column{
		Schema: "public", Table: "widgets", Name: "id", Num: 1, FormattedType: "integer",
	}

	changes := diff.Diff(master, branch)
	c.Assert(changes, qt.HasLen, 1)

	created, ok := changes[0].(change.CreateTable)
	c.Assert(ok, qt.IsTrue)
	c.Assert(created.Table.Name, qt.Equals, "widgets")
	c.Assert(created.Columns, qt.HasLen, 1)
}

func TestDiff_DropTable(t *testing.T) {
	c := qt.New(t)

	master := catalog.NewSnapshot()
	master.Tables[catalog.TableStableID("public", "widgets")] = catalog.Table{Schema: "public", Name: "widgets"}
	branch := catalog.NewSnapshot()

	changes := diff.Diff(master, branch)
	c.Assert(changes, qt.HasLen, 1)
	c.Assert(changes[0].Op(), qt.Equals, change.OpDrop)
}

func TestDiff_CreateTable_RLSEnabledEmitsAlter(t *testing.T) {
	c := qt.New(t)

	master := catalog.NewSnapshot()
	branch := catalog.NewSnapshot()
	branch.Tables[catalog.TableStableID("public", "secrets")] = catalog.Table{Schema: "public", Name: "secrets", RLSEnabled: true}

	changes := diff.Diff(master, branch)
	c.Assert(changes, qt.HasLen, 2)

	var sawCreate, sawAlter bool
	for _, ch := range changes {
		switch v := ch.(type) {
		case change.CreateTable:
			sawCreate = true
		case change.AlterTable:
			sawAlter = true
			_, ok := v.Operation.(change.EnableRowLevelSecurity)
			c.Assert(ok, qt.IsTrue)
		}
	}
	c.Assert(sawCreate, qt.IsTrue)
	c.Assert(sawAlter, qt.IsTrue)
}

func TestDiff_ColumnTypeChange(t *testing.T) {
	c := qt.New(t)

	master := catalog.NewSnapshot()
	master.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users"}
	master.Columns[catalog.ColumnStableID("public", "users", "age")] = catalog.Column{
		Schema: "public", Table: "users", Name: "age", Num: 1, FormattedType: "integer",
	}

	branch := catalog.NewSnapshot()
	branch.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users"}
	branch.Columns[catalog.ColumnStableID("public", "users", "age")] = catalog.Column{
		Schema: "public", Table: "users", Name: "age", Num: 1, FormattedType: "bigint",
	}

	changes := diff.Diff(master, branch)
	c.Assert(changes, qt.HasLen, 1)

	alter, ok := changes[0].(change.AlterTable)
	c.Assert(ok, qt.IsTrue)
	op, ok := alter.Operation.(change.AlterColumnType)
	c.Assert(ok, qt.IsTrue)
	c.Assert(op.NewType, qt.Equals, "bigint")
}

func TestDiff_ColumnDropAndAdd(t *testing.T) {
	c := qt.New(t)

	master := catalog.NewSnapshot()
	master.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users"}
	master.Columns[catalog.ColumnStableID("public", "users", "legacy")] = catalog.Column{
		Schema: "public", Table: "users", Name: "legacy", Num: 1, FormattedType: "text",
	}

	branch := catalog.NewSnapshot()
	branch.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users"}
	branch.Columns[catalog.ColumnStableID("public", "users", "current")] = catalog.Column{
		Schema: "public", Table: "users", Name: "current", Num: 1, FormattedType: "text",
	}

	changes := diff.Diff(master, branch)
	c.Assert(changes, qt.HasLen, 2)

	var sawDrop, sawAdd bool
	for _, ch := range changes {
		alter := ch.(change.AlterTable)
		switch op := alter.Operation.(type) {
		case change.DropColumn:
			sawDrop = true
			c.Assert(op.Column.Name, qt.Equals, "legacy")
		case change.AddColumn:
			sawAdd = true
			c.Assert(op.Column.Name, qt.Equals, "current")
		}
	}
	c.Assert(sawDrop, qt.IsTrue)
	c.Assert(sawAdd, qt.IsTrue)
}

func TestDiff_GeneratedColumnTransition_IsDropAndAdd(t *testing.T) {
	c := qt.New(t)

	master := catalog.NewSnapshot()
	master.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users"}
	master.Columns[catalog.ColumnStableID("public", "users", "full_name")] = catalog.Column{
		Schema: "public", Table: "users", Name: "full_name", Num: 1, FormattedType: "text",
	}

	branch := catalog.NewSnapshot()
	branch.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users"}
	branch.Columns[catalog.ColumnStableID("public", "users", "full_name")] = catalog.Column{
		Schema: "public", Table: "users", Name: "full_name", Num: 1, FormattedType: "text",
		Generated: true, GeneratedExpr: "first || ' ' || last",
	}

	changes := diff.Diff(master, branch)
	c.Assert(changes, qt.HasLen, 2)
	_, dropOK := changes[0].(change.AlterTable).Operation.(change.DropColumn)
	_, addOK := changes[1].(change.AlterTable).Operation.(change.AddColumn)
	c.Assert(dropOK, qt.IsTrue)
	c.Assert(addOK, qt.IsTrue)
}

func TestDiff_ViewBodyChange_IsReplace(t *testing.T) {
	c := qt.New(t)

	master := catalog.NewSnapshot()
	master.Views[catalog.ViewStableID("public", "active_users")] = catalog.View{
		Schema: "public", Name: "active_users", Definition: "SELECT 1",
	}
	branch := catalog.NewSnapshot()
	branch.Views[catalog.ViewStableID("public", "active_users")] = catalog.View{
		Schema: "public", Name: "active_users", Definition: "SELECT 2",
	}

	changes := diff.Diff(master, branch)
	c.Assert(changes, qt.HasLen, 1)
	c.Assert(changes[0].Op(), qt.Equals, change.OpReplace)
}

func TestDiff_SchemaCreate_PublicNeverExplicit(t *testing.T) {
	c := qt.New(t)

	master := catalog.NewSnapshot()
	branch := catalog.NewSnapshot()
	branch.Namespaces["public"] = catalog.Namespace{Name: "public"}
	branch.Namespaces["billing"] = catalog.Namespace{Name: "billing"}

	changes := diff.Diff(master, branch)
	c.Assert(changes, qt.HasLen, 1)
	created, ok := changes[0].(change.CreateSchema)
	c.Assert(ok, qt.IsTrue)
	c.Assert(created.Name, qt.Equals, "billing")
}
