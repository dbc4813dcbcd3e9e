package pgcatalog

import (
	"context"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

func readColumns(ctx context.Context, q Querier, snap *catalog.Snapshot) error {
	rows, err := q.Query(ctx, `
		SELECT n.nspname, c.relname, a.attname, a.attnum,
		       pg_catalog.format_type(a.atttypid, a.atttypmod),
		       a.attnotnull,
		       pg_catalog.pg_get_expr(ad.adbin, ad.adrelid),
		       a.attgenerated = 's',
		       CASE WHEN a.attgenerated = 's' THEN pg_catalog.pg_get_expr(ad.adbin, ad.adrelid) ELSE NULL END
		FROM pg_catalog.pg_attribute a
		JOIN pg_catalog.pg_class c ON c.oid = a.attrelid
		JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
		LEFT JOIN pg_catalog.pg_attrdef ad ON ad.adrelid = a.attrelid AND ad.adnum = a.attnum
		WHERE c.relkind IN ('r', 'p')
		  AND a.attnum > 0
		  AND NOT a.attisdropped
		  AND `+systemSchemaFilter+`
		ORDER BY n.nspname, c.relname, a.attnum
	`)
	if err != nil {
		return errs.Extraction("columns", err)
	}
	defer rows.Close()

	for rows.Next() {
		var schema, table, name string
		var num int32
		var formattedType string
		var notNull bool
		var defaultExpr *string
		var generated bool
		var generatedExpr *string

		if err := rows.Scan(&schema, &table, &name, &num, &formattedType, &notNull, &defaultExpr, &generated, &generatedExpr); err != nil {
			return errs.Extraction("column row", err)
		}

		col := catalog.Column{
			Schema:        schema,
			Table:         table,
			Name:          name,
			Num:           int(num),
			FormattedType: formattedType,
			NotNull:       notNull,
			Generated:     generated,
		}
		if generated && generatedExpr != nil {
			col.GeneratedExpr = *generatedExpr
		} else if !generated {
			col.Default = defaultExpr
		}
		snap.Columns[col.StableID()] = col
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("column rows", err)
	}
	return nil
}
