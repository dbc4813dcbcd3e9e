// Package config provides configuration options for the catalogdiff
// pipeline.
//
// This package provides a simple, programmatic API for configuring schema
// comparison behavior when using catalogdiff as a library. It focuses on
// clean Go APIs rather than external configuration file management.
package config

import "github.com/stokaro/catalogdiff/core/catalog"

// DiffOptions contains configuration options for schema comparison
// operations. These options control which schemas participate in the diff
// at all.
type DiffOptions struct {
	// IgnoredSchemas is a list of PostgreSQL schema names that should be
	// excluded from comparison entirely. Objects living in these schemas
	// will:
	// - Never be reported as missing, even if absent from the other side
	// - Be excluded from every per-kind diff
	// - Be treated as if they don't exist for comparison purposes
	//
	// Common schemas to ignore include ones owned by extensions this
	// differ does not manage, e.g. "topology" (PostGIS) or "tiger"
	// (address standardizer).
	IgnoredSchemas []string
}

// DefaultDiffOptions returns comparison options with no schemas ignored.
func DefaultDiffOptions() *DiffOptions {
	return &DiffOptions{}
}

// WithIgnoredSchemas returns a new DiffOptions with the specified ignored
// schemas. This completely replaces any previously configured list.
//
// Example:
//
//	opts := config.WithIgnoredSchemas("topology", "tiger")
func WithIgnoredSchemas(schemas ...string) *DiffOptions {
	return &DiffOptions{IgnoredSchemas: schemas}
}

// WithAdditionalIgnoredSchemas returns a new DiffOptions that includes the
// default (empty) ignore list plus the additional schemas specified.
func WithAdditionalIgnoredSchemas(schemas ...string) *DiffOptions {
	defaults := DefaultDiffOptions()
	all := make([]string, len(defaults.IgnoredSchemas)+len(schemas))
	copy(all, defaults.IgnoredSchemas)
	copy(all[len(defaults.IgnoredSchemas):], schemas)
	return &DiffOptions{IgnoredSchemas: all}
}

// IsSchemaIgnored checks if the given schema name should be excluded from
// comparison based on the current configuration.
func (o *DiffOptions) IsSchemaIgnored(schemaName string) bool {
	for _, ignored := range o.IgnoredSchemas {
		if ignored == schemaName {
			return true
		}
	}
	return false
}

// ApplyTo returns a new Snapshot containing only the entities of snap
// whose owning schema is not ignored. snap itself is left untouched.
func (o *DiffOptions) ApplyTo(snap *catalog.Snapshot) *catalog.Snapshot {
	if len(o.IgnoredSchemas) == 0 {
		return snap
	}

	out := catalog.NewSnapshot()
	for id, ns := range snap.Namespaces {
		if !o.IsSchemaIgnored(ns.Name) {
			out.Namespaces[id] = ns
		}
	}
	for id, v := range snap.Tables {
		if !o.IsSchemaIgnored(v.Schema) {
			out.Tables[id] = v
		}
	}
	for id, v := range snap.Views {
		if !o.IsSchemaIgnored(v.Schema) {
			out.Views[id] = v
		}
	}
	for id, v := range snap.MaterializedViews {
		if !o.IsSchemaIgnored(v.Schema) {
			out.MaterializedViews[id] = v
		}
	}
	for id, v := range snap.Columns {
		if !o.IsSchemaIgnored(v.Schema) {
			out.Columns[id] = v
		}
	}
	for id, v := range snap.Constraints {
		if !o.IsSchemaIgnored(v.Schema) {
			out.Constraints[id] = v
		}
	}
	for id, v := range snap.Indexes {
		if !o.IsSchemaIgnored(v.Schema) {
			out.Indexes[id] = v
		}
	}
	for id, v := range snap.Sequences {
		if !o.IsSchemaIgnored(v.Schema) {
			out.Sequences[id] = v
		}
	}
	for id, v := range snap.Policies {
		if !o.IsSchemaIgnored(v.Schema) {
			out.Policies[id] = v
		}
	}
	for id, v := range snap.Functions {
		if !o.IsSchemaIgnored(v.Schema) {
			out.Functions[id] = v
		}
	}
	for id, v := range snap.Triggers {
		if !o.IsSchemaIgnored(v.Schema) {
			out.Triggers[id] = v
		}
	}
	for id, v := range snap.Types {
		if !o.IsSchemaIgnored(v.Schema) {
			out.Types[id] = v
		}
	}

	for _, edge := range snap.Depends {
		out.Depends = append(out.Depends, edge)
	}

	return out
}
