package pgcatalog

import (
	"context"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

func readPolicies(ctx context.Context, q Querier, snap *catalog.Snapshot) error {
	rows, err := q.Query(ctx, `
		SELECT n.nspname, c.relname, p.polname, p.polpermissive, p.polcmd,
		       pg_catalog.pg_get_expr(p.polqual, p.polrelid),
		       pg_catalog.pg_get_expr(p.polwithcheck, p.polrelid),
		       ARRAY(
		           SELECT CASE WHEN r = 0 THEN 'public' ELSE pg_catalog.pg_get_userbyid(r) END
		           FROM unnest(p.polroles) AS r
		       )
		FROM pg_catalog.pg_policy p
		JOIN pg_catalog.pg_class c ON c.oid = p.polrelid
		JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
		WHERE `+systemSchemaFilter+`
		ORDER BY n.nspname, c.relname, p.polname
	`)
	if err != nil {
		return errs.Extraction("policies", err)
	}
	defer rows.Close()

	for rows.Next() {
		var schema, table, name string
		var permissive bool
		var cmd string
		var usingExpr, withCheckExpr *string
		var roles []string

		if err := rows.Scan(&schema, &table, &name, &permissive, &cmd, &usingExpr, &withCheckExpr, &roles); err != nil {
			return errs.Extraction("policy row", err)
		}

		p := catalog.Policy{
			Schema:        schema,
			Table:         table,
			Name:          name,
			Permissive:    permissive,
			Command:       catalog.PolicyCommand(cmd),
			Roles:         roles,
			UsingExpr:     usingExpr,
			WithCheckExpr: withCheckExpr,
		}
		snap.Policies[p.StableID()] = p
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("policy rows", err)
	}
	return nil
}
