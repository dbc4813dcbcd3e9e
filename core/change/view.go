package change

import "github.com/stokaro/catalogdiff/core/catalog"

// CreateView requests CREATE VIEW, reusing the stored pg_get_viewdef
// output verbatim.
type CreateView struct {
	View catalog.View
}

func (c CreateView) StableID() string { return c.View.StableID() }
func (c CreateView) Op() OpKind       { return OpCreate }

// DropView requests DROP VIEW "<s>"."<v>";
type DropView struct {
	View catalog.View
}

func (c DropView) StableID() string { return c.View.StableID() }
func (c DropView) Op() OpKind       { return OpDrop }

// ReplaceView requests CREATE OR REPLACE VIEW, substituting the branch's
// verbatim definition.
type ReplaceView struct {
	View catalog.View
}

func (c ReplaceView) StableID() string { return c.View.StableID() }
func (c ReplaceView) Op() OpKind       { return OpReplace }

// CreateMaterializedView requests CREATE MATERIALIZED VIEW ... WITH NO
// DATA;
type CreateMaterializedView struct {
	MaterializedView catalog.MaterializedView
}

func (c CreateMaterializedView) StableID() string { return c.MaterializedView.StableID() }
func (c CreateMaterializedView) Op() OpKind       { return OpCreate }

// DropMaterializedView requests DROP MATERIALIZED VIEW "<s>"."<m>";
type DropMaterializedView struct {
	MaterializedView catalog.MaterializedView
}

func (c DropMaterializedView) StableID() string { return c.MaterializedView.StableID() }
func (c DropMaterializedView) Op() OpKind       { return OpDrop }

// ReplaceMaterializedView holds the branch's new definition; matviews
// cannot be CREATE OR REPLACE'd, so the emitter renders this as a DROP
// followed by a CREATE ... WITH NO DATA on the next line.
type ReplaceMaterializedView struct {
	MaterializedView catalog.MaterializedView
}

func (c ReplaceMaterializedView) StableID() string { return c.MaterializedView.StableID() }
func (c ReplaceMaterializedView) Op() OpKind       { return OpReplace }
