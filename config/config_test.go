package config_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/catalogdiff/config"
	"github.com/stokaro/catalogdiff/core/catalog"
)

func TestDefaultDiffOptions(t *testing.T) {
	c := qt.New(t)

	opts := config.DefaultDiffOptions()

	c.Assert(opts, qt.IsNotNil)
	c.Assert(opts.IgnoredSchemas, qt.HasLen, 0)
}

func TestWithIgnoredSchemas(t *testing.T) {
	tests := []struct {
		name     string
		schemas  []string
		expected []string
	}{
		{
			name:     "single schema",
			schemas:  []string{"topology"},
			expected: []string{"topology"},
		},
		{
			name:     "multiple schemas",
			schemas:  []string{"topology", "tiger"},
			expected: []string{"topology", "tiger"},
		},
		{
			name:     "empty list",
			schemas:  []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			opts := config.WithIgnoredSchemas(tt.schemas...)
			c.Assert(opts.IgnoredSchemas, qt.DeepEquals, tt.expected)
		})
	}
}

func TestWithAdditionalIgnoredSchemas(t *testing.T) {
	c := qt.New(t)

	opts := config.WithAdditionalIgnoredSchemas("tiger")
	c.Assert(opts.IgnoredSchemas, qt.DeepEquals, []string{"tiger"})
}

func TestDiffOptions_IsSchemaIgnored(t *testing.T) {
	tests := []struct {
		name     string
		ignored  []string
		schema   string
		expected bool
	}{
		{name: "schema is ignored", ignored: []string{"topology", "tiger"}, schema: "topology", expected: true},
		{name: "schema is not ignored", ignored: []string{"topology"}, schema: "public", expected: false},
		{name: "empty ignore list", ignored: []string{}, schema: "public", expected: false},
		{name: "case sensitive matching", ignored: []string{"topology"}, schema: "TOPOLOGY", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			opts := &config.DiffOptions{IgnoredSchemas: tt.ignored}
			c.Assert(opts.IsSchemaIgnored(tt.schema), qt.Equals, tt.expected)
		})
	}
}

func TestDiffOptions_ApplyTo(t *testing.T) {
	c := qt.New(t)

	snap := catalog.NewSnapshot()
	snap.Namespaces["public"] = catalog.Namespace{Name: "public"}
	snap.Namespaces["topology"] = catalog.Namespace{Name: "topology"}
	snap.Tables[catalog.TableStableID("public", "users")] = catalog.Table{Schema: "public", Name: "users"}
	snap.Tables[catalog.TableStableID("topology", "layer")] = catalog.Table{Schema: "topology", Name: "layer"}

	opts := config.WithIgnoredSchemas("topology")
	filtered := opts.ApplyTo(snap)

	c.Assert(filtered.Namespaces, qt.HasLen, 1)
	c.Assert(filtered.Tables, qt.HasLen, 1)
	_, ok := filtered.Tables[catalog.TableStableID("public", "users")]
	c.Assert(ok, qt.IsTrue)
	_, ok = filtered.Tables[catalog.TableStableID("topology", "layer")]
	c.Assert(ok, qt.IsFalse)

	// The input snapshot itself is left untouched.
	c.Assert(snap.Tables, qt.HasLen, 2)
}

func TestDiffOptions_ApplyTo_NoIgnoredSchemas(t *testing.T) {
	c := qt.New(t)

	snap := catalog.NewSnapshot()
	snap.Namespaces["public"] = catalog.Namespace{Name: "public"}

	opts := config.DefaultDiffOptions()
	filtered := opts.ApplyTo(snap)

	c.Assert(filtered, qt.Equals, snap)
}
