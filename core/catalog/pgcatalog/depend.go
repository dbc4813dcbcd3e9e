package pgcatalog

import (
	"context"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

// readDepends reads pg_depend's normal ('n') and auto ('a') dependency
// rows plus the synthetic view/matview-to-relation edges pg_rewrite
// implies, resolving every oid pair through idx. Endpoints idx cannot
// resolve (extension-owned objects, kinds this extractor never reads)
// are kept as unknown-prefixed sentinels rather than dropped, so a caller
// inspecting Depends can still see that an edge existed.
func readDepends(ctx context.Context, q Querier, snap *catalog.Snapshot, idx *oidIndex, source catalog.Source) error {
	rows, err := q.Query(ctx, `
		SELECT d.classid, d.objid, d.refclassid, d.refobjid
		FROM pg_catalog.pg_depend d
		WHERE d.deptype IN ('n', 'a')
	`)
	if err != nil {
		return errs.Extraction("depends", err)
	}
	defer rows.Close()

	for rows.Next() {
		var classid, objid, refclassid, refobjid uint32
		if err := rows.Scan(&classid, &objid, &refclassid, &refobjid); err != nil {
			return errs.Extraction("depend row", err)
		}

		dependent := idx.resolve(classid, objid)
		referenced := idx.resolve(refclassid, refobjid)
		if dependent == referenced {
			continue
		}
		snap.Depends = append(snap.Depends, catalog.DependEdge{
			Dependent:  dependent,
			Referenced: referenced,
			Source:     source,
		})
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("depend rows", err)
	}

	if err := readRewriteDepends(ctx, q, snap, idx, source); err != nil {
		return err
	}

	return nil
}

// readRewriteDepends augments the dependency graph with view/matview ->
// underlying-relation edges. pg_depend alone records a view's dependency
// on the columns/types its query touches, which is enough for cascade
// safety but not always a clean "view depends on relation" edge for the
// resolver's ordering purposes, so pg_rewrite's action targets are mined
// directly.
func readRewriteDepends(ctx context.Context, q Querier, snap *catalog.Snapshot, idx *oidIndex, source catalog.Source) error {
	rows, err := q.Query(ctx, `
		SELECT DISTINCT r.ev_class, d.refobjid
		FROM pg_catalog.pg_rewrite r
		JOIN pg_catalog.pg_depend d ON d.objid = r.oid
		                            AND d.classid = 'pg_catalog.pg_rewrite'::regclass
		                            AND d.refclassid = 'pg_catalog.pg_class'::regclass
		WHERE r.ev_class != d.refobjid
	`)
	if err != nil {
		return errs.Extraction("rewrite depends", err)
	}
	defer rows.Close()

	classOID := idx.classOIDByName["pg_class"]
	for rows.Next() {
		var viewOID, refOID uint32
		if err := rows.Scan(&viewOID, &refOID); err != nil {
			return errs.Extraction("rewrite depend row", err)
		}
		dependent := idx.resolve(classOID, viewOID)
		referenced := idx.resolve(classOID, refOID)
		if dependent == referenced {
			continue
		}
		snap.Depends = append(snap.Depends, catalog.DependEdge{
			Dependent:  dependent,
			Referenced: referenced,
			Source:     source,
		})
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("rewrite depend rows", err)
	}
	return nil
}
