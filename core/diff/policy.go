package diff

import (
	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
)

// diffPolicies implements spec §4.2.2. Because a policy's name is part of
// its stable id, a plain three-way set diff on stable ids would treat a
// rename as drop+create; renames are detected first, on a per-(schema,
// table) basis, and removed from the master-only/branch-only sets before
// the ordinary diff runs.
func diffPolicies(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change

	masterOnly := map[string]catalog.Policy{}
	for id, m := range master.Policies {
		if _, ok := branch.Policies[id]; !ok {
			masterOnly[id] = m
		}
	}
	branchOnly := map[string]catalog.Policy{}
	for id, b := range branch.Policies {
		if _, ok := master.Policies[id]; !ok {
			branchOnly[id] = b
		}
	}

	renamedMaster := map[string]bool{}
	renamedBranch := map[string]bool{}
	for mid, m := range masterOnly {
		for bid, b := range branchOnly {
			if renamedBranch[bid] {
				continue
			}
			if m.Schema == b.Schema && m.Table == b.Table && m.Name != b.Name && m.EqualExceptName(b) {
				changes = append(changes, change.RenamePolicyTo{
					Schema: m.Schema, Table: m.Table, OldName: m.Name, NewName: b.Name,
				})
				renamedMaster[mid] = true
				renamedBranch[bid] = true
				break
			}
		}
	}

	for id, m := range masterOnly {
		if !renamedMaster[id] {
			changes = append(changes, change.DropPolicy{Policy: m})
		}
	}
	for id, b := range branchOnly {
		if !renamedBranch[id] {
			changes = append(changes, change.CreatePolicy{Policy: b})
		}
	}

	for id, m := range master.Policies {
		b, ok := branch.Policies[id]
		if !ok || m.SemanticallyEqual(b) {
			continue
		}
		if !m.EqualExceptFineGrained(b) {
			changes = append(changes, change.DropPolicy{Policy: m}, change.CreatePolicy{Policy: b})
			continue
		}

		alter := change.AlterPolicy{Schema: b.Schema, Table: b.Table, Name: b.Name}
		if !stringSliceEqualPolicy(m.Roles, b.Roles) {
			alter.NewRoles = b.Roles
		}
		if !stringPtrEqualPolicy(m.UsingExpr, b.UsingExpr) {
			alter.NewUsing = policyClauseOrEmpty(b.UsingExpr)
		}
		if !stringPtrEqualPolicy(m.WithCheckExpr, b.WithCheckExpr) {
			alter.NewWithCheck = policyClauseOrEmpty(b.WithCheckExpr)
		}
		changes = append(changes, alter)
	}

	return sortByStableID(changes)
}

// policyClauseOrEmpty returns a pointer suitable for AlterPolicy's
// New*-clause fields: the branch's clause verbatim, or a pointer to the
// empty string when the branch has none, signaling an explicit removal.
func policyClauseOrEmpty(expr *string) *string {
	if expr == nil {
		empty := ""
		return &empty
	}
	return expr
}

func stringSliceEqualPolicy(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func stringPtrEqualPolicy(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
