// Package emit implements the DDL Emitter: a pure function from a single
// Change to the SQL text that realizes it. Emitters never consult either
// snapshot; every field they need travels on the Change itself.
package emit

import (
	"github.com/stokaro/catalogdiff/core/change"
	"github.com/stokaro/catalogdiff/core/errs"
)

// Emit dispatches a single change to its SQL-rendering function. The
// switch is exhaustive over every variant core/change defines; an
// unmatched variant is a programming error and returns an
// InvariantViolation rather than silently producing nothing; a buildable
// switch statement is not the same as a behaviorally-exhaustive one in
// Go, so the default case exists to make that gap loud.
func Emit(c change.Change) (string, error) {
	switch v := c.(type) {
	case change.CreateSchema:
		return emitCreateSchema(v)
	case change.DropSchema:
		return emitDropSchema(v)

	case change.CreateTable:
		return emitCreateTable(v)
	case change.DropTable:
		return emitDropTable(v)
	case change.AlterTable:
		return emitAlterTable(v)

	case change.CreateView:
		return emitCreateView(v)
	case change.DropView:
		return emitDropView(v)
	case change.ReplaceView:
		return emitReplaceView(v)
	case change.CreateMaterializedView:
		return emitCreateMaterializedView(v)
	case change.DropMaterializedView:
		return emitDropMaterializedView(v)
	case change.ReplaceMaterializedView:
		return emitReplaceMaterializedView(v)

	case change.CreateSequence:
		return emitCreateSequence(v)
	case change.DropSequence:
		return emitDropSequence(v)
	case change.AlterSequence:
		return emitAlterSequence(v)

	case change.CreateIndex:
		return emitCreateIndex(v)
	case change.DropIndex:
		return emitDropIndex(v)
	case change.AlterIndex:
		return "", errs.UnsupportedOperation("index %q: renaming an index in place is not supported", v.StableID())

	case change.CreateConstraint:
		return emitCreateConstraint(v)
	case change.DropConstraint:
		return emitDropConstraint(v)
	case change.AlterConstraint:
		return emitAlterConstraint(v)

	case change.CreateFunction:
		return emitCreateFunction(v)
	case change.DropFunction:
		return emitDropFunction(v)
	case change.ReplaceFunction:
		return emitReplaceFunction(v)

	case change.CreateTrigger:
		return emitCreateTrigger(v)
	case change.DropTrigger:
		return emitDropTrigger(v)

	case change.CreateType:
		return emitCreateType(v)
	case change.DropType:
		return emitDropType(v)

	case change.CreatePolicy:
		return emitCreatePolicy(v)
	case change.DropPolicy:
		return emitDropPolicy(v)
	case change.RenamePolicyTo:
		return emitRenamePolicyTo(v)
	case change.AlterPolicy:
		return emitAlterPolicy(v)

	default:
		return "", errs.InvariantViolation("emit: unhandled change variant %T", c)
	}
}
