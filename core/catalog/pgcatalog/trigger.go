package pgcatalog

import (
	"context"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

func readTriggers(ctx context.Context, q Querier, snap *catalog.Snapshot, idx *oidIndex) error {
	rows, err := q.Query(ctx, `
		SELECT t.oid, n.nspname, c.relname, t.tgname,
		       pg_catalog.pg_get_triggerdef(t.oid)
		FROM pg_catalog.pg_trigger t
		JOIN pg_catalog.pg_class c ON c.oid = t.tgrelid
		JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
		WHERE NOT t.tgisinternal
		  AND `+systemSchemaFilter+`
		ORDER BY n.nspname, c.relname, t.tgname
	`)
	if err != nil {
		return errs.Extraction("triggers", err)
	}
	defer rows.Close()

	for rows.Next() {
		var oid uint32
		var schema, table, name, def string
		if err := rows.Scan(&oid, &schema, &table, &name, &def); err != nil {
			return errs.Extraction("trigger row", err)
		}
		tg := catalog.Trigger{Schema: schema, Table: table, Name: name, Definition: def + ";"}
		snap.Triggers[tg.StableID()] = tg
		idx.record("pg_trigger", oid, tg.StableID())
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("trigger rows", err)
	}
	return nil
}
