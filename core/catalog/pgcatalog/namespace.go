package pgcatalog

import (
	"context"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

func readNamespaces(ctx context.Context, q Querier, snap *catalog.Snapshot) error {
	rows, err := q.Query(ctx, `
		SELECT n.nspname
		FROM pg_catalog.pg_namespace n
		WHERE `+systemSchemaFilter+`
		ORDER BY n.nspname
	`)
	if err != nil {
		return errs.Extraction("namespaces", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return errs.Extraction("namespace row", err)
		}
		ns := catalog.Namespace{Name: name}
		snap.Namespaces[ns.StableID()] = ns
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("namespace rows", err)
	}
	return nil
}
