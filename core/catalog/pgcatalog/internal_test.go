package pgcatalog

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

func TestExtractCheckExpr(t *testing.T) {
	c := qt.New(t)

	c.Assert(extractCheckExpr("CHECK ((age > 0))"), qt.Equals, "(age > 0)")
	c.Assert(extractCheckExpr("CHECK ((price >= 0.0)) NOT VALID"), qt.Equals, "(price >= 0.0)) NOT VALID")
}

func TestExtractCheckExpr_NoPrefixReturnsInput(t *testing.T) {
	c := qt.New(t)

	c.Assert(extractCheckExpr("UNIQUE (id)"), qt.Equals, "UNIQUE (id)")
}

func TestOIDIndex_RecordAndResolve(t *testing.T) {
	c := qt.New(t)

	idx := &oidIndex{
		classOIDByName:      map[string]uint32{"pg_class": 1259},
		stableByClassAndOID: map[uint32]map[uint32]string{},
	}

	idx.record("pg_class", 16400, "r:public.users")
	c.Assert(idx.resolve(1259, 16400), qt.Equals, "r:public.users")
}

func TestOIDIndex_UnknownClassFallsBack(t *testing.T) {
	c := qt.New(t)

	idx := &oidIndex{
		classOIDByName:      map[string]uint32{},
		stableByClassAndOID: map[uint32]map[uint32]string{},
	}
	c.Assert(idx.resolve(9999, 1), qt.Equals, catalog.UnknownPrefix+"catalog")
}

func TestOIDIndex_UnknownObjectFallsBack(t *testing.T) {
	c := qt.New(t)

	idx := &oidIndex{
		classOIDByName:      map[string]uint32{"pg_class": 1259},
		stableByClassAndOID: map[uint32]map[uint32]string{1259: {}},
	}
	idx.record("pg_class", 1, "r:public.a")
	c.Assert(idx.resolve(1259, 2), qt.Equals, catalog.UnknownPrefix+"object")
}

func TestOIDIndex_RecordIgnoresUnknownCatalogName(t *testing.T) {
	c := qt.New(t)

	idx := &oidIndex{
		classOIDByName:      map[string]uint32{},
		stableByClassAndOID: map[uint32]map[uint32]string{},
	}
	idx.record("pg_nonexistent", 1, "whatever")
	c.Assert(idx.stableByClassAndOID, qt.HasLen, 0)
}

func TestErrOrNil(t *testing.T) {
	c := qt.New(t)

	c.Assert(errOrNil(nil, "enum values"), qt.IsNil)

	cause := errors.New("boom")
	err := errOrNil(cause, "enum values")
	c.Assert(err, qt.IsNotNil)
	c.Assert(errors.Is(err, errs.ErrExtraction), qt.IsTrue)
}
