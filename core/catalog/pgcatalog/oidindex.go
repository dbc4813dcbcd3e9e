package pgcatalog

import (
	"context"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/errs"
)

// oidIndex maps pg_depend's (classid, objid) pairs back to stable ids.
// pg_depend tags each endpoint with the oid of the system catalog row that
// describes it (pg_class, pg_proc, pg_type, pg_constraint, pg_trigger,
// pg_rewrite), so resolving an edge first requires knowing which of those
// catalogs classid names, then looking up objid within it.
type oidIndex struct {
	classOIDByName      map[string]uint32
	stableByClassAndOID map[uint32]map[uint32]string
}

// readOIDIndex resolves the oids of the system catalogs pg_depend can
// reference. The index is populated incrementally as each per-kind read
// discovers its own rows' oids.
func readOIDIndex(ctx context.Context, q Querier) (*oidIndex, error) {
	idx := &oidIndex{
		classOIDByName:      make(map[string]uint32),
		stableByClassAndOID: make(map[uint32]map[uint32]string),
	}

	rows, err := q.Query(ctx, `
		SELECT c.relname, c.oid
		FROM pg_catalog.pg_class c
		WHERE c.relnamespace = 'pg_catalog'::regnamespace
		  AND c.relname = ANY($1)
	`, []string{"pg_class", "pg_proc", "pg_type", "pg_constraint", "pg_trigger", "pg_rewrite"})
	if err != nil {
		return nil, errs.Extraction("oid index", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var oid uint32
		if err := rows.Scan(&name, &oid); err != nil {
			return nil, errs.Extraction("oid index row", err)
		}
		idx.classOIDByName[name] = oid
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Extraction("oid index rows", err)
	}

	return idx, nil
}

// record tags objid as describing stableID within the catalog named
// catalogName (e.g. "pg_class"). A catalogName this session never saw an
// oid for is silently ignored: it cannot appear as a classid either.
func (idx *oidIndex) record(catalogName string, objid uint32, stableID string) {
	classid, ok := idx.classOIDByName[catalogName]
	if !ok {
		return
	}
	m, ok := idx.stableByClassAndOID[classid]
	if !ok {
		m = make(map[uint32]string)
		idx.stableByClassAndOID[classid] = m
	}
	m[objid] = stableID
}

// resolve looks up the stable id of the object pg_depend describes as
// (classid, objid). Unresolvable references (extensions, system objects,
// object kinds this extractor never reads) fall back to the unknown
// sentinel rather than aborting extraction.
func (idx *oidIndex) resolve(classid, objid uint32) string {
	m, ok := idx.stableByClassAndOID[classid]
	if !ok {
		return catalog.UnknownPrefix + "catalog"
	}
	id, ok := m[objid]
	if !ok {
		return catalog.UnknownPrefix + "object"
	}
	return id
}
