package resolve_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
	"github.com/stokaro/catalogdiff/core/errs"
	"github.com/stokaro/catalogdiff/core/resolve"
)

func TestResolve_Empty(t *testing.T) {
	c := qt.New(t)

	ordered, err := resolve.Resolve(nil, catalog.NewSnapshot(), catalog.NewSnapshot())
	c.Assert(err, qt.IsNil)
	c.Assert(ordered, qt.HasLen, 0)
}

func TestResolve_DependencyBeforeDependent(t *testing.T) {
	c := qt.New(t)

	// orders table creation so the referenced table is created before the
	// table that depends on it.
	refTable := catalog.Table{Schema: "public", Name: "accounts"}
	depTable := catalog.Table{Schema: "public", Name: "invoices"}

	changes := []change.Change{
		change.CreateTable{Table: depTable},
		change.CreateTable{Table: refTable},
	}

	master := catalog.NewSnapshot()
	branch := catalog.NewSnapshot()
	branch.Depends = append(branch.Depends, catalog.DependEdge{
		Dependent:  depTable.StableID(),
		Referenced: refTable.StableID(),
	})

	ordered, err := resolve.Resolve(changes, master, branch)
	c.Assert(err, qt.IsNil)
	c.Assert(ordered, qt.HasLen, 2)
	c.Assert(ordered[0].StableID(), qt.Equals, refTable.StableID())
	c.Assert(ordered[1].StableID(), qt.Equals, depTable.StableID())
}

func TestResolve_DropOrder_DependentsBeforeDependencies(t *testing.T) {
	c := qt.New(t)

	refTable := catalog.Table{Schema: "public", Name: "accounts"}
	depTable := catalog.Table{Schema: "public", Name: "invoices"}

	changes := []change.Change{
		change.DropTable{Table: refTable},
		change.DropTable{Table: depTable},
	}

	master := catalog.NewSnapshot()
	master.Depends = append(master.Depends, catalog.DependEdge{
		Dependent:  depTable.StableID(),
		Referenced: refTable.StableID(),
	})
	branch := catalog.NewSnapshot()

	ordered, err := resolve.Resolve(changes, master, branch)
	c.Assert(err, qt.IsNil)
	c.Assert(ordered, qt.HasLen, 2)
	c.Assert(ordered[0].StableID(), qt.Equals, depTable.StableID())
	c.Assert(ordered[1].StableID(), qt.Equals, refTable.StableID())
}

func TestResolve_SequenceBeforeOwningTable(t *testing.T) {
	c := qt.New(t)

	seq := catalog.Sequence{Schema: "public", Name: "users_id_seq"}
	tbl := catalog.Table{Schema: "public", Name: "users"}

	changes := []change.Change{
		change.CreateTable{Table: tbl},
		change.CreateSequence{Sequence: seq},
	}

	master := catalog.NewSnapshot()
	branch := catalog.NewSnapshot()
	branch.Depends = append(branch.Depends, catalog.DependEdge{
		Dependent:  seq.StableID(),
		Referenced: tbl.StableID(),
	})

	ordered, err := resolve.Resolve(changes, master, branch)
	c.Assert(err, qt.IsNil)
	c.Assert(ordered[0].StableID(), qt.Equals, seq.StableID())
	c.Assert(ordered[1].StableID(), qt.Equals, tbl.StableID())
}

func TestResolve_SameObjectOperationPriority(t *testing.T) {
	c := qt.New(t)

	tbl := catalog.Table{Schema: "public", Name: "users"}
	changes := []change.Change{
		change.AlterTable{Schema: "public", Name: "users", Operation: change.AddColumn{Column: catalog.Column{Name: "x"}}},
		change.DropTable{Table: tbl},
	}

	ordered, err := resolve.Resolve(changes, catalog.NewSnapshot(), catalog.NewSnapshot())
	c.Assert(err, qt.IsNil)
	c.Assert(ordered[0].Op(), qt.Equals, change.OpDrop)
}

func TestResolve_CyclicDependency_ReturnsError(t *testing.T) {
	c := qt.New(t)

	a := catalog.Table{Schema: "public", Name: "a"}
	b := catalog.Table{Schema: "public", Name: "b"}

	changes := []change.Change{
		change.CreateTable{Table: a},
		change.CreateTable{Table: b},
	}

	master := catalog.NewSnapshot()
	branch := catalog.NewSnapshot()
	branch.Depends = append(branch.Depends,
		catalog.DependEdge{Dependent: a.StableID(), Referenced: b.StableID()},
		catalog.DependEdge{Dependent: b.StableID(), Referenced: a.StableID()},
	)

	_, err := resolve.Resolve(changes, master, branch)
	c.Assert(err, qt.IsNotNil)
	c.Assert(errors.Is(err, errs.ErrCyclicDependency), qt.IsTrue)

	var cyclic *errs.CyclicDependencyErr
	c.Assert(errors.As(err, &cyclic), qt.IsTrue)
	c.Assert(cyclic.Remaining, qt.HasLen, 2)
}

func TestResolve_UnresolvedEdgesIgnored(t *testing.T) {
	c := qt.New(t)

	a := catalog.Table{Schema: "public", Name: "a"}
	b := catalog.Table{Schema: "public", Name: "b"}

	changes := []change.Change{
		change.CreateTable{Table: a},
		change.CreateTable{Table: b},
	}

	branch := catalog.NewSnapshot()
	branch.Depends = append(branch.Depends, catalog.DependEdge{
		Dependent:  a.StableID(),
		Referenced: catalog.UnknownPrefix + "123",
	})

	ordered, err := resolve.Resolve(changes, catalog.NewSnapshot(), branch)
	c.Assert(err, qt.IsNil)
	c.Assert(ordered, qt.HasLen, 2)
}
