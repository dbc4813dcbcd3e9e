package pgcatalog

import (
	"context"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

func readTypes(ctx context.Context, q Querier, snap *catalog.Snapshot, idx *oidIndex) error {
	rows, err := q.Query(ctx, `
		SELECT t.oid, n.nspname, t.typname, t.typtype
		FROM pg_catalog.pg_type t
		JOIN pg_catalog.pg_namespace n ON n.oid = t.typnamespace
		WHERE t.typtype IN ('e', 'd', 'c', 'r')
		  AND (t.typtype != 'c' OR EXISTS (
		      SELECT 1 FROM pg_catalog.pg_class rc
		      WHERE rc.oid = t.typrelid AND rc.relkind = 'c'
		  ))
		  AND `+systemSchemaFilter+`
		ORDER BY n.nspname, t.typname
	`)
	if err != nil {
		return errs.Extraction("types", err)
	}
	defer rows.Close()

	type typeRow struct {
		oid    uint32
		schema string
		name   string
		kind   string
	}
	var typeRows []typeRow
	for rows.Next() {
		var r typeRow
		if err := rows.Scan(&r.oid, &r.schema, &r.name, &r.kind); err != nil {
			return errs.Extraction("type row", err)
		}
		typeRows = append(typeRows, r)
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("type rows", err)
	}

	for _, r := range typeRows {
		t := catalog.Type{Schema: r.schema, Name: r.name, Kind: catalog.TypType(r.kind)}

		switch t.Kind {
		case catalog.TypeEnum:
			values, err := readEnumValues(ctx, q, r.oid)
			if err != nil {
				return err
			}
			t.EnumValues = values

		case catalog.TypeDomain:
			if err := fillDomain(ctx, q, r.oid, &t); err != nil {
				return err
			}

		case catalog.TypeComposite:
			attrs, err := readCompositeAttrs(ctx, q, r.oid)
			if err != nil {
				return err
			}
			t.CompositeAttrs = attrs

		case catalog.TypeRange:
			subtype, err := readRangeSubtype(ctx, q, r.oid, false)
			if err != nil {
				return err
			}
			t.RangeSubtype = subtype

		case catalog.TypeMultirange:
			subtype, err := readRangeSubtype(ctx, q, r.oid, true)
			if err != nil {
				return err
			}
			t.RangeSubtype = subtype
		}

		snap.Types[t.StableID()] = t
		idx.record("pg_type", r.oid, t.StableID())
	}

	return nil
}

func readEnumValues(ctx context.Context, q Querier, oid uint32) ([]string, error) {
	rows, err := q.Query(ctx, `
		SELECT e.enumlabel
		FROM pg_catalog.pg_enum e
		WHERE e.enumtypid = $1
		ORDER BY e.enumsortorder
	`, oid)
	if err != nil {
		return nil, errs.Extraction("enum values", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, errs.Extraction("enum value row", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Extraction("enum value rows", err)
	}
	return out, nil
}

func fillDomain(ctx context.Context, q Querier, oid uint32, t *catalog.Type) error {
	var baseType string
	var notNull bool
	var defaultExpr *string
	err := q.QueryRow(ctx, `
		SELECT pg_catalog.format_type(t.typbasetype, t.typtypmod), t.typnotnull,
		       pg_catalog.pg_get_expr(t.typdefaultbin, 0)
		FROM pg_catalog.pg_type t
		WHERE t.oid = $1
	`, oid).Scan(&baseType, &notNull, &defaultExpr)
	if err != nil {
		return errs.Extraction("domain base", err)
	}
	t.DomainBaseType = baseType
	t.DomainNotNull = notNull
	if defaultExpr != nil {
		t.DomainDefault = *defaultExpr
	}

	rows, err := q.Query(ctx, `
		SELECT pg_catalog.pg_get_constraintdef(c.oid, true)
		FROM pg_catalog.pg_constraint c
		WHERE c.contypid = $1
		ORDER BY c.oid
	`, oid)
	if err != nil {
		return errs.Extraction("domain constraints", err)
	}
	defer rows.Close()

	for rows.Next() {
		var def string
		if err := rows.Scan(&def); err != nil {
			return errs.Extraction("domain constraint row", err)
		}
		if t.DomainConstraint == "" {
			t.DomainConstraint = def
		} else {
			t.DomainConstraint += " " + def
		}
	}
	return errOrNil(rows.Err(), "domain constraint rows")
}

func readCompositeAttrs(ctx context.Context, q Querier, oid uint32) ([]catalog.CompositeAttribute, error) {
	rows, err := q.Query(ctx, `
		SELECT a.attname, pg_catalog.format_type(a.atttypid, a.atttypmod)
		FROM pg_catalog.pg_type t
		JOIN pg_catalog.pg_attribute a ON a.attrelid = t.typrelid
		WHERE t.oid = $1 AND a.attnum > 0 AND NOT a.attisdropped
		ORDER BY a.attnum
	`, oid)
	if err != nil {
		return nil, errs.Extraction("composite attrs", err)
	}
	defer rows.Close()

	var out []catalog.CompositeAttribute
	for rows.Next() {
		var attr catalog.CompositeAttribute
		if err := rows.Scan(&attr.Name, &attr.Type); err != nil {
			return nil, errs.Extraction("composite attr row", err)
		}
		out = append(out, attr)
	}
	return out, errOrNil(rows.Err(), "composite attr rows")
}

func readRangeSubtype(ctx context.Context, q Querier, oid uint32, multirange bool) (string, error) {
	col := "rngtypid"
	if multirange {
		col = "rngmultitypid"
	}
	var subtype string
	err := q.QueryRow(ctx, `
		SELECT pg_catalog.format_type(r.rngsubtype, NULL)
		FROM pg_catalog.pg_range r
		WHERE r.`+col+` = $1
	`, oid).Scan(&subtype)
	if err != nil {
		return "", errs.Extraction("range subtype", err)
	}
	return subtype, nil
}

func errOrNil(err error, kind string) error {
	if err == nil {
		return nil
	}
	return errs.Extraction(kind, err)
}
