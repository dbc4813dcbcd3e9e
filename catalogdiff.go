// Package catalogdiff is the public entry point of the pipeline: Extract
// reads a live PostgreSQL session into a Snapshot, Diff compares two
// snapshots into a dependency-ordered Change set, and Emit renders a
// single Change as executable DDL. Each stage is also importable on its
// own (core/catalog/pgcatalog, core/diff, core/resolve, core/emit) for a
// caller that wants finer-grained control, e.g. diffing without
// re-extracting, or inspecting the unordered change set before
// resolution.
package catalogdiff

import (
	"context"
	"log/slog"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/catalog/pgcatalog"
	"github.com/stokaro/catalogdiff/core/change"
	"github.com/stokaro/catalogdiff/core/diff"
	"github.com/stokaro/catalogdiff/core/emit"
	"github.com/stokaro/catalogdiff/core/resolve"
)

// Side names which database a Snapshot was extracted from, for diagnostic
// provenance on the dependency edges it carries.
type Side = catalog.Source

const (
	Master Side = catalog.SourceMaster
	Branch Side = catalog.SourceBranch
)

// Extract reads the full non-system catalog visible through q into a
// Snapshot. side should be Master or Branch depending on which end of the
// comparison this connection represents.
func Extract(ctx context.Context, q pgcatalog.Querier, side Side) (*catalog.Snapshot, error) {
	return pgcatalog.Extract(ctx, q, side)
}

// Diff compares master against branch and returns the changes needed to
// bring master to branch's state, in an order safe to execute against
// PostgreSQL. This combines the Differ (core/diff.Diff) with the
// Dependency Resolver (core/resolve.Resolve); callers that only want the
// unordered change set can call core/diff.Diff directly.
func Diff(master, branch *catalog.Snapshot) ([]change.Change, error) {
	unordered := diff.Diff(master, branch)
	if len(unordered) == 0 {
		slog.Debug("catalogdiff: no differences found")
		return nil, nil
	}
	return resolve.Resolve(unordered, master, branch)
}

// Emit renders a single Change as one or more executable SQL statements.
func Emit(c change.Change) (string, error) {
	return emit.Emit(c)
}

// EmitAll renders every change in order, in the sequence Diff returned
// them. A failure on any one change aborts the whole render: partial DDL
// output is not a usable migration script.
func EmitAll(changes []change.Change) ([]string, error) {
	out := make([]string, 0, len(changes))
	for _, c := range changes {
		stmt, err := Emit(c)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
	return out, nil
}
