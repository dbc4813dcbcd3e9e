package pgcatalog

import (
	"context"
	"strings"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

func readFunctions(ctx context.Context, q Querier, snap *catalog.Snapshot, idx *oidIndex) error {
	rows, err := q.Query(ctx, `
		SELECT p.oid, n.nspname, p.proname,
		       pg_catalog.pg_get_function_identity_arguments(p.oid),
		       pg_catalog.pg_get_functiondef(p.oid)
		FROM pg_catalog.pg_proc p
		JOIN pg_catalog.pg_namespace n ON n.oid = p.pronamespace
		WHERE `+systemSchemaFilter+`
		ORDER BY n.nspname, p.proname
	`)
	if err != nil {
		return errs.Extraction("functions", err)
	}
	defer rows.Close()

	for rows.Next() {
		var oid uint32
		var schema, name, argList, def string
		if err := rows.Scan(&oid, &schema, &name, &argList, &def); err != nil {
			return errs.Extraction("function row", err)
		}

		var argTypes []string
		if argList != "" {
			for _, a := range strings.Split(argList, ", ") {
				argTypes = append(argTypes, strings.TrimSpace(a))
			}
		}

		fn := catalog.Function{
			Schema:     schema,
			Name:       name,
			ArgTypes:   argTypes,
			Definition: def + ";",
		}
		snap.Functions[fn.StableID()] = fn
		idx.record("pg_proc", oid, fn.StableID())
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("function rows", err)
	}
	return nil
}
