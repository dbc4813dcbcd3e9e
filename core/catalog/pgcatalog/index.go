package pgcatalog

import (
	"context"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

func readIndexes(ctx context.Context, q Querier, snap *catalog.Snapshot) error {
	rows, err := q.Query(ctx, `
		SELECT n.nspname, ic.relname, tc.relname,
		       pg_catalog.pg_get_indexdef(i.indexrelid),
		       EXISTS (
		           SELECT 1 FROM pg_catalog.pg_constraint con
		           WHERE con.conindid = i.indexrelid
		       )
		FROM pg_catalog.pg_index i
		JOIN pg_catalog.pg_class ic ON ic.oid = i.indexrelid
		JOIN pg_catalog.pg_class tc ON tc.oid = i.indrelid
		JOIN pg_catalog.pg_namespace n ON n.oid = ic.relnamespace
		WHERE `+systemSchemaFilter+`
		ORDER BY n.nspname, ic.relname
	`)
	if err != nil {
		return errs.Extraction("indexes", err)
	}
	defer rows.Close()

	for rows.Next() {
		var schema, indexName, tableName, def string
		var constraintBacked bool
		if err := rows.Scan(&schema, &indexName, &tableName, &def, &constraintBacked); err != nil {
			return errs.Extraction("index row", err)
		}
		idxEnt := catalog.Index{
			Schema:           schema,
			Name:             indexName,
			Table:            tableName,
			Definition:       def + ";",
			ConstraintBacked: constraintBacked,
		}
		snap.Indexes[idxEnt.StableID()] = idxEnt
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("index rows", err)
	}
	return nil
}
