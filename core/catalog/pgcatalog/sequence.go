package pgcatalog

import (
	"context"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

func readSequences(ctx context.Context, q Querier, snap *catalog.Snapshot) error {
	rows, err := q.Query(ctx, `
		SELECT n.nspname, c.relname,
		       pg_catalog.format_type(s.seqtypid, NULL),
		       s.seqincrement, s.seqmin, s.seqmax, s.seqstart, s.seqcache, s.seqcycle,
		       ownns.nspname, own.relname, owncol.attname
		FROM pg_catalog.pg_sequence s
		JOIN pg_catalog.pg_class c ON c.oid = s.seqrelid
		JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
		LEFT JOIN pg_catalog.pg_depend d ON d.objid = s.seqrelid
		                                 AND d.classid = 'pg_catalog.pg_class'::regclass
		                                 AND d.refclassid = 'pg_catalog.pg_class'::regclass
		                                 AND d.deptype = 'a'
		LEFT JOIN pg_catalog.pg_class own ON own.oid = d.refobjid
		LEFT JOIN pg_catalog.pg_namespace ownns ON ownns.oid = own.relnamespace
		LEFT JOIN pg_catalog.pg_attribute owncol ON owncol.attrelid = d.refobjid AND owncol.attnum = d.refobjsubid
		WHERE `+systemSchemaFilter+`
		ORDER BY n.nspname, c.relname
	`)
	if err != nil {
		return errs.Extraction("sequences", err)
	}
	defer rows.Close()

	for rows.Next() {
		var schema, name, dataType string
		var increment, min, max, start, cache int64
		var cycle bool
		var ownedSchema, ownedTable, ownedColumn *string

		if err := rows.Scan(&schema, &name, &dataType, &increment, &min, &max, &start, &cache, &cycle, &ownedSchema, &ownedTable, &ownedColumn); err != nil {
			return errs.Extraction("sequence row", err)
		}

		seq := catalog.Sequence{
			Schema:      schema,
			Name:        name,
			DataType:    dataType,
			IncrementBy: increment,
			MinValue:    min,
			MaxValue:    max,
			StartValue:  start,
			CacheSize:   cache,
			Cycle:       cycle,
		}
		if ownedSchema != nil {
			seq.OwnedBySchema = *ownedSchema
		}
		if ownedTable != nil {
			seq.OwnedByTable = *ownedTable
		}
		if ownedColumn != nil {
			seq.OwnedByColumn = *ownedColumn
		}
		snap.Sequences[seq.StableID()] = seq
	}
	if err := rows.Err(); err != nil {
		return errs.Extraction("sequence rows", err)
	}
	return nil
}
