package catalog

// View is a relation of kind 'v'. Definition is the verbatim output of
// pg_get_viewdef; the emitter reuses it unchanged rather than recomposing
// the SELECT, per the "verbatim" emitter family.
type View struct {
	Schema string // identity
	Name   string // identity

	Definition string // data, pg_get_viewdef output, already "CREATE VIEW ..."
	Comment    string // data
}

// StableID implements Entity.
func (v View) StableID() string {
	return ViewStableID(v.Schema, v.Name)
}

// SemanticallyEqual compares two views by their rendered definitions.
func (v View) SemanticallyEqual(other View) bool {
	return v.Definition == other.Definition && v.Comment == other.Comment
}

// MaterializedView is a relation of kind 'm'. Like View it stores a
// verbatim definition, but materialized views cannot be CREATE OR REPLACE'd,
// so a changed definition is always realized as drop+create by the differ.
type MaterializedView struct {
	Schema string // identity
	Name   string // identity

	Definition string // data, pg_get_viewdef output
	Comment    string // data
}

// StableID implements Entity.
func (m MaterializedView) StableID() string {
	return MaterializedViewStableID(m.Schema, m.Name)
}

// SemanticallyEqual compares two materialized views by their rendered
// definitions.
func (m MaterializedView) SemanticallyEqual(other MaterializedView) bool {
	return m.Definition == other.Definition && m.Comment == other.Comment
}
