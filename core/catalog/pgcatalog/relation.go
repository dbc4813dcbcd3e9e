package pgcatalog

import (
	"fmt"

	"context"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

// readRelations reads tables, views and materialized views in one pass
// over pg_class, since all three share the same namespace/name/comment
// plumbing and differ only in relkind-specific follow-up reads.
func readRelations(ctx context.Context, q Querier, snap *catalog.Snapshot, idx *oidIndex) error {
	rows, err := q.Query(ctx, `
		SELECT c.oid, n.nspname, c.relname, c.relkind, c.relrowsecurity,
		       obj_description(c.oid, 'pg_class')
		FROM pg_catalog.pg_class c
		JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
		WHERE c.relkind IN ('r', 'p', 'v', 'm')
		  AND `+systemSchemaFilter+`
		ORDER BY n.nspname, c.relname
	`)
	if err != nil {
		return errs.Extraction("relations", err)
	}
	defer rows.Close()

	type relRow struct {
		oid        uint32
		schema     string
		name       string
		kind       string
		rls        bool
		comment    *string
	}
	var relations []relRow

	for rows.Next() {
		var r relRow
		if err := rows.Scan(&r.oid, &r.schema, &r.name, &r.kind, &r.rls, &r.comment); err != nil {
			return errs.Extraction("relation row", err)
		}
		relations = append(relations, r)
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("relation rows", err)
	}

	for _, r := range relations {
		comment := ""
		if r.comment != nil {
			comment = *r.comment
		}

		switch r.kind {
		case "r", "p":
			t := catalog.Table{Schema: r.schema, Name: r.name, RLSEnabled: r.rls, Comment: comment}

			t.Inherits, err = readInherits(ctx, q, r.oid)
			if err != nil {
				return err
			}
			t.Options, err = readReloptions(ctx, q, r.oid)
			if err != nil {
				return err
			}

			snap.Tables[t.StableID()] = t
			idx.record("pg_class", r.oid, t.StableID())

		case "v":
			def, err := readViewDef(ctx, q, r.oid)
			if err != nil {
				return err
			}
			qualified, err := quoteQualifiedPlain(r.schema, r.name)
			if err != nil {
				return err
			}
			v := catalog.View{
				Schema:     r.schema,
				Name:       r.name,
				Definition: fmt.Sprintf("CREATE VIEW %s AS\n%s", qualified, def),
				Comment:    comment,
			}
			snap.Views[v.StableID()] = v
			idx.record("pg_class", r.oid, v.StableID())

		case "m":
			def, err := readViewDef(ctx, q, r.oid)
			if err != nil {
				return err
			}
			qualified, err := quoteQualifiedPlain(r.schema, r.name)
			if err != nil {
				return err
			}
			mv := catalog.MaterializedView{
				Schema:     r.schema,
				Name:       r.name,
				Definition: fmt.Sprintf("CREATE MATERIALIZED VIEW %s AS\n%s", qualified, def),
				Comment:    comment,
			}
			snap.MaterializedViews[mv.StableID()] = mv
			idx.record("pg_class", r.oid, mv.StableID())
		}
	}

	return nil
}

func readInherits(ctx context.Context, q Querier, oid uint32) ([]string, error) {
	rows, err := q.Query(ctx, `
		SELECT pn.nspname, pc.relname
		FROM pg_catalog.pg_inherits i
		JOIN pg_catalog.pg_class pc ON pc.oid = i.inhparent
		JOIN pg_catalog.pg_namespace pn ON pn.oid = pc.relnamespace
		WHERE i.inhrelid = $1
		ORDER BY i.inhseqno
	`, oid)
	if err != nil {
		return nil, errs.Extraction("inherits", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var schema, name string
		if err := rows.Scan(&schema, &name); err != nil {
			return nil, errs.Extraction("inherits row", err)
		}
		out = append(out, schema+"."+name)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Extraction("inherits rows", err)
	}
	return out, nil
}

func readReloptions(ctx context.Context, q Querier, oid uint32) (map[string]string, error) {
	var opts []string
	err := q.QueryRow(ctx, `SELECT COALESCE(c.reloptions, '{}') FROM pg_catalog.pg_class c WHERE c.oid = $1`, oid).Scan(&opts)
	if err != nil {
		return nil, errs.Extraction("reloptions", err)
	}
	if len(opts) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(opts))
	for _, kv := range opts {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				out[kv[:i]] = kv[i+1:]
				break
			}
		}
	}
	return out, nil
}

func readViewDef(ctx context.Context, q Querier, oid uint32) (string, error) {
	var def string
	err := q.QueryRow(ctx, `SELECT pg_catalog.pg_get_viewdef($1::oid, true)`, oid).Scan(&def)
	if err != nil {
		return "", errs.Extraction("view definition", err)
	}
	return def, nil
}

// quoteQualifiedPlain renders a schema-qualified identifier without going
// through the emitter's invariant checks: extraction trusts catalog names
// the server itself already accepted.
func quoteQualifiedPlain(schema, name string) (string, error) {
	return fmt.Sprintf(`"%s"."%s"`, schema, name), nil
}
