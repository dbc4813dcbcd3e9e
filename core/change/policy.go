package change

import "github.com/stokaro/catalogdiff/core/catalog"

// CreatePolicy requests CREATE POLICY.
type CreatePolicy struct {
	Policy catalog.Policy
}

func (c CreatePolicy) StableID() string { return c.Policy.StableID() }
func (c CreatePolicy) Op() OpKind       { return OpCreate }

// DropPolicy requests DROP POLICY "<n>" ON "<s>"."<t>";
type DropPolicy struct {
	Policy catalog.Policy
}

func (c DropPolicy) StableID() string { return c.Policy.StableID() }
func (c DropPolicy) Op() OpKind       { return OpDrop }

// RenamePolicyTo requests ALTER POLICY ... RENAME TO, emitted when two
// policies at the same (schema, table) agree on every data field but
// their names.
type RenamePolicyTo struct {
	Schema  string
	Table   string
	OldName string
	NewName string
}

func (c RenamePolicyTo) StableID() string {
	return catalog.PolicyStableID(c.Schema, c.Table, c.OldName)
}
func (c RenamePolicyTo) Op() OpKind { return OpAlter }

// AlterPolicy folds roles/USING/WITH CHECK changes into one ALTER POLICY.
// A nil pointer/slice means "unchanged"; for NewUsing/NewWithCheck a
// pointer to the empty string is an explicit request to remove that
// clause, distinct from nil ("leave as-is") per the Differ contract.
type AlterPolicy struct {
	Schema string
	Table  string
	Name   string

	NewRoles    []string // nil = unchanged
	NewUsing    *string  // nil = unchanged, &"" = remove
	NewWithCheck *string // nil = unchanged, &"" = remove
}

func (c AlterPolicy) StableID() string { return catalog.PolicyStableID(c.Schema, c.Table, c.Name) }
func (c AlterPolicy) Op() OpKind       { return OpAlter }
