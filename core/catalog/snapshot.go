package catalog

import "sort"

// Snapshot is an immutable, fully-materialized view of one PostgreSQL
// catalog: one map from stable id to entity per kind, plus the raw
// dependency edges extraction discovered. Once built it is never mutated;
// the Differ and Resolver only ever read it.
//
// # Example Usage
//
//	snap := catalog.NewSnapshot()
//	snap.Tables[catalog.TableStableID("public", "users")] = catalog.Table{...}
//	changes := diff.Diff(master, snap)
type Snapshot struct {
	Namespaces        map[string]Namespace
	Tables            map[string]Table
	Views             map[string]View
	MaterializedViews map[string]MaterializedView
	Columns           map[string]Column
	Constraints       map[string]Constraint
	Indexes           map[string]Index
	Sequences         map[string]Sequence
	Policies          map[string]Policy
	Functions         map[string]Function
	Triggers          map[string]Trigger
	Types             map[string]Type

	Depends []DependEdge
}

// NewSnapshot returns an empty, ready-to-populate Snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Namespaces:        map[string]Namespace{},
		Tables:            map[string]Table{},
		Views:             map[string]View{},
		MaterializedViews: map[string]MaterializedView{},
		Columns:           map[string]Column{},
		Constraints:       map[string]Constraint{},
		Indexes:           map[string]Index{},
		Sequences:         map[string]Sequence{},
		Policies:          map[string]Policy{},
		Functions:         map[string]Function{},
		Triggers:          map[string]Trigger{},
		Types:             map[string]Type{},
	}
}

// ColumnsOf returns the columns owned by the relation with the given schema
// and name, ordered by ordinal position. This ordering is what the Differ
// uses to make per-column emission deterministic; it is not a claim about
// semantic equality.
func (s *Snapshot) ColumnsOf(schema, table string) []Column {
	var out []Column
	for _, col := range s.Columns {
		if col.Schema == schema && col.Table == table {
			out = append(out, col)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Num < out[j].Num })
	return out
}

// SemanticallyEquals performs a full-catalog comparison: every stable id
// present in either snapshot must be present in both and semantically
// equal under its kind's equality method. Used by the verification
// harness collaborator, not by the core pipeline itself.
func (s *Snapshot) SemanticallyEquals(other *Snapshot) bool {
	return mapsEqual(s.Namespaces, other.Namespaces, Namespace.SemanticallyEqual) &&
		mapsEqual(s.Tables, other.Tables, Table.SemanticallyEqual) &&
		mapsEqual(s.Views, other.Views, View.SemanticallyEqual) &&
		mapsEqual(s.MaterializedViews, other.MaterializedViews, MaterializedView.SemanticallyEqual) &&
		mapsEqual(s.Columns, other.Columns, Column.SemanticallyEqual) &&
		mapsEqual(s.Constraints, other.Constraints, Constraint.SemanticallyEqual) &&
		mapsEqual(s.Indexes, other.Indexes, Index.SemanticallyEqual) &&
		mapsEqual(s.Sequences, other.Sequences, Sequence.SemanticallyEqual) &&
		mapsEqual(s.Policies, other.Policies, Policy.SemanticallyEqual) &&
		mapsEqual(s.Functions, other.Functions, Function.SemanticallyEqual) &&
		mapsEqual(s.Triggers, other.Triggers, Trigger.SemanticallyEqual) &&
		mapsEqual(s.Types, other.Types, Type.SemanticallyEqual)
}

// mapsEqual is the full-outer-join comparison shared by every kind in
// SemanticallyEquals: same key set, and eq holds for every pair.
func mapsEqual[T any](a, b map[string]T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		ov, ok := b[k]
		if !ok || !eq(v, ov) {
			return false
		}
	}
	return true
}
