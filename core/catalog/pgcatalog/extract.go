package pgcatalog

import (
	"context"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

// Extract reads the full non-system catalog visible to q and assembles it
// into a catalog.Snapshot. source tags which side of a comparison this
// snapshot represents; it is carried on each extracted DependEdge purely
// for diagnostic provenance; the resolver consults edges from both sides
// regardless of this tag. Any read failure aborts the whole extraction;
// there is no partial-snapshot fallback.
func Extract(ctx context.Context, q Querier, source catalog.Source) (*catalog.Snapshot, error) {
	if err := setEmptySearchPath(ctx, q); err != nil {
		return nil, errs.Extraction("search_path", err)
	}

	snap := catalog.NewSnapshot()

	oids, err := readOIDIndex(ctx, q)
	if err != nil {
		return nil, err
	}

	if err := readNamespaces(ctx, q, snap); err != nil {
		return nil, err
	}
	if err := readRelations(ctx, q, snap, oids); err != nil {
		return nil, err
	}
	if err := readColumns(ctx, q, snap); err != nil {
		return nil, err
	}
	if err := readConstraints(ctx, q, snap, oids); err != nil {
		return nil, err
	}
	if err := readIndexes(ctx, q, snap); err != nil {
		return nil, err
	}
	if err := readSequences(ctx, q, snap); err != nil {
		return nil, err
	}
	if err := readPolicies(ctx, q, snap); err != nil {
		return nil, err
	}
	if err := readFunctions(ctx, q, snap, oids); err != nil {
		return nil, err
	}
	if err := readTriggers(ctx, q, snap, oids); err != nil {
		return nil, err
	}
	if err := readTypes(ctx, q, snap, oids); err != nil {
		return nil, err
	}
	if err := readDepends(ctx, q, snap, oids, source); err != nil {
		return nil, err
	}

	return snap, nil
}
