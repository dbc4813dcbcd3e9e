package catalog

// Function is a stored function or procedure. ArgTypes is part of the
// stable id so overloaded functions coexist. Definition is the verbatim
// pg_get_functiondef output.
type Function struct {
	Schema   string   // identity
	Name     string   // identity
	ArgTypes []string // identity

	Definition string // data, pg_get_functiondef output
}

// StableID implements Entity.
func (f Function) StableID() string {
	return FunctionStableID(f.Schema, f.Name, f.ArgTypes)
}

// SemanticallyEqual compares two functions by their rendered definitions.
func (f Function) SemanticallyEqual(other Function) bool {
	return f.Definition == other.Definition
}

// Trigger fires a function on table events. Definition is the verbatim
// pg_get_triggerdef output; triggers have no CREATE OR REPLACE form, so a
// changed trigger is always dropped and recreated.
type Trigger struct {
	Schema string // identity
	Table  string // identity
	Name   string // identity

	Definition string // data, pg_get_triggerdef output
}

// StableID implements Entity.
func (t Trigger) StableID() string {
	return TriggerStableID(t.Schema, t.Table, t.Name)
}

// SemanticallyEqual compares two triggers by their rendered definitions.
func (t Trigger) SemanticallyEqual(other Trigger) bool {
	return t.Definition == other.Definition
}
