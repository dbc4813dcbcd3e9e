package pgcatalog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

func readConstraints(ctx context.Context, q Querier, snap *catalog.Snapshot, idx *oidIndex) error {
	rows, err := q.Query(ctx, `
		SELECT con.oid, n.nspname, c.relname, con.conname, con.contype,
		       con.condeferrable, con.condeferred,
		       pg_catalog.pg_get_constraintdef(con.oid, true),
		       rn.nspname, rc.relname,
		       con.confupdtype, con.confdeltype
		FROM pg_catalog.pg_constraint con
		JOIN pg_catalog.pg_class c ON c.oid = con.conrelid
		JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
		LEFT JOIN pg_catalog.pg_class rc ON rc.oid = con.confrelid
		LEFT JOIN pg_catalog.pg_namespace rn ON rn.oid = rc.relnamespace
		WHERE con.contype IN ('p', 'u', 'c', 'f')
		  AND `+systemSchemaFilter+`
		ORDER BY n.nspname, c.relname, con.conname
	`)
	if err != nil {
		return errs.Extraction("constraints", err)
	}
	defer rows.Close()

	for rows.Next() {
		var oid uint32
		var schema, table, name string
		var contype string
		var deferrable, deferred bool
		var def string
		var refSchema, refTable *string
		var onUpdate, onDelete *string

		if err := rows.Scan(&oid, &schema, &table, &name, &contype, &deferrable, &deferred, &def, &refSchema, &refTable, &onUpdate, &onDelete); err != nil {
			return errs.Extraction("constraint row", err)
		}

		con := catalog.Constraint{
			Schema:            schema,
			Table:             table,
			Name:              name,
			Type:              catalog.ConstraintType(contype),
			Deferrable:        deferrable,
			InitiallyDeferred: deferred,
		}

		cols, err := readConstraintColumns(ctx, q, oid, false)
		if err != nil {
			return err
		}
		con.Columns = cols

		switch con.Type {
		case catalog.ConstraintCheck:
			con.CheckExpr = extractCheckExpr(def)
		case catalog.ConstraintForeignKey:
			if refSchema != nil {
				con.RefSchema = *refSchema
			}
			if refTable != nil {
				con.RefTable = *refTable
			}
			refCols, err := readConstraintColumns(ctx, q, oid, true)
			if err != nil {
				return err
			}
			con.RefColumns = refCols
			if onUpdate != nil {
				con.OnUpdate = catalog.ForeignKeyAction(*onUpdate)
			}
			if onDelete != nil {
				con.OnDelete = catalog.ForeignKeyAction(*onDelete)
			}
		}

		snap.Constraints[con.StableID()] = con
		idx.record("pg_constraint", oid, con.StableID())
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("constraint rows", err)
	}
	return nil
}

// readConstraintColumns reads the local (conkey) or referenced (confkey)
// key columns of a constraint, in key order.
func readConstraintColumns(ctx context.Context, q Querier, conOID uint32, referenced bool) ([]string, error) {
	keyExpr := "con.conkey"
	relExpr := "con.conrelid"
	if referenced {
		keyExpr = "con.confkey"
		relExpr = "con.confrelid"
	}

	var rows pgx.Rows
	var err error
	rows, err = q.Query(ctx, `
		SELECT a.attname
		FROM pg_catalog.pg_constraint con
		JOIN LATERAL unnest(`+keyExpr+`) WITH ORDINALITY AS k(attnum, ord) ON true
		JOIN pg_catalog.pg_attribute a ON a.attrelid = `+relExpr+` AND a.attnum = k.attnum
		WHERE con.oid = $1
		ORDER BY k.ord
	`, conOID)
	if err != nil {
		return nil, errs.Extraction("constraint columns", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errs.Extraction("constraint column row", err)
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Extraction("constraint column rows", err)
	}
	return out, nil
}

// extractCheckExpr pulls the expression out of pg_get_constraintdef's
// "CHECK (<expr>)" rendering, since catalog.Constraint stores only the
// expression itself and the emitter composes the surrounding CHECK (...).
func extractCheckExpr(def string) string {
	const prefix = "CHECK ("
	start := -1
	for i := 0; i+len(prefix) <= len(def); i++ {
		if def[i:i+len(prefix)] == prefix {
			start = i + len(prefix)
			break
		}
	}
	if start < 0 || start >= len(def) {
		return def
	}
	end := len(def)
	if def[end-1] == ')' {
		end--
	}
	if end <= start {
		return def
	}
	return def[start:end]
}
