// Package pgcatalog is the Extraction Adapter: it reads a live PostgreSQL
// session through pgx and builds a catalog.Snapshot. Every per-kind read
// is an independent query; a failure here is always fatal to the whole
// extraction, never partially returned.
package pgcatalog

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is satisfied by both *pgx.Conn and *pgxpool.Pool. The core
// never opens, closes, commits or rolls back the session it is given;
// that is the caller's responsibility per spec's collaborator contract.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgx.CommandTag, error)
}

// setEmptySearchPath clears the session's search_path so that
// pg_get_viewdef, pg_get_functiondef, pg_get_indexdef, pg_get_triggerdef,
// pg_get_expr and format_type all render fully schema-qualified output.
// This is a correctness requirement: without it, fragments rendered while
// a non-empty search_path is active can omit schema qualification for
// objects that happen to resolve unqualified in that session, producing
// DDL that is only valid by accident.
func setEmptySearchPath(ctx context.Context, q Querier) error {
	_, err := q.Exec(ctx, `SET search_path = ''`)
	return err
}

// systemSchemaFilter is the predicate fragment excluding system schemas
// from every per-kind read.
const systemSchemaFilter = `
	n.nspname NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
	AND n.nspname NOT LIKE 'pg_temp_%'
	AND n.nspname NOT LIKE 'pg_toast_temp_%'
`
