package emit_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
	"github.com/stokaro/catalogdiff/core/emit"
)

func TestEmit_CreateSequence_AscendingDefaults(t *testing.T) {
	c := qt.New(t)

	stmt, err := emit.Emit(change.CreateSequence{Sequence: catalog.Sequence{
		Schema: "public", Name: "widgets_id_seq",
		DataType: "bigint", IncrementBy: 1,
		MinValue: 1, MaxValue: 9223372036854775807,
		StartValue: 1, CacheSize: 1,
	}})
	c.Assert(err, qt.IsNil)
	c.Assert(stmt, qt.Equals, `CREATE SEQUENCE "public"."widgets_id_seq" NO MINVALUE NO MAXVALUE NO CYCLE;`)
}

func TestEmit_CreateSequence_ExplicitBounds(t *testing.T) {
	c := qt.New(t)

	stmt, err := emit.Emit(change.CreateSequence{Sequence: catalog.Sequence{
		Schema: "public", Name: "quota_seq",
		DataType: "bigint", IncrementBy: 1,
		MinValue: 0, MaxValue: 100,
		StartValue: 1, CacheSize: 1,
	}})
	c.Assert(err, qt.IsNil)
	c.Assert(stmt, qt.Equals, `CREATE SEQUENCE "public"."quota_seq" MINVALUE 0 MAXVALUE 100 NO CYCLE;`)
}

func TestEmit_AlterSequence_OwnershipRemoved(t *testing.T) {
	c := qt.New(t)

	stmt, err := emit.Emit(change.AlterSequence{
		Schema: "public", Name: "widgets_id_seq",
		OwnershipChanged: true,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(stmt, qt.Equals, `ALTER SEQUENCE "public"."widgets_id_seq" OWNED BY NONE;`)
}
