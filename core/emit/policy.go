package emit

import (
	"fmt"
	"strings"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
)

func policyCommand(cmd catalog.PolicyCommand) string {
	switch cmd {
	case catalog.PolicyCommandSelect:
		return "SELECT"
	case catalog.PolicyCommandInsert:
		return "INSERT"
	case catalog.PolicyCommandUpdate:
		return "UPDATE"
	case catalog.PolicyCommandDelete:
		return "DELETE"
	default:
		return "ALL"
	}
}

// roleRef renders a TO-clause role reference. The three pseudo-roles are
// keywords, not identifiers, and must not be quoted.
func roleRef(role string) (string, error) {
	switch strings.ToLower(role) {
	case "public", "current_user", "session_user":
		return strings.ToLower(role), nil
	default:
		return quoteIdent(role)
	}
}

func roleList(roles []string) (string, error) {
	if len(roles) == 0 {
		return "public", nil
	}
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		q, err := roleRef(r)
		if err != nil {
			return "", err
		}
		out = append(out, q)
	}
	return strings.Join(out, ", "), nil
}

func emitCreatePolicy(c change.CreatePolicy) (string, error) {
	p := c.Policy
	name, err := quoteIdent(p.Name)
	if err != nil {
		return "", err
	}
	table, err := quoteQualified(p.Schema, p.Table)
	if err != nil {
		return "", err
	}
	roles, err := roleList(p.Roles)
	if err != nil {
		return "", err
	}

	kind := "PERMISSIVE"
	if !p.Permissive {
		kind = "RESTRICTIVE"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE POLICY %s ON %s AS %s FOR %s TO %s", name, table, kind, policyCommand(p.Command), roles)
	if p.UsingExpr != nil {
		fmt.Fprintf(&b, " USING (%s)", *p.UsingExpr)
	}
	if p.WithCheckExpr != nil {
		fmt.Fprintf(&b, " WITH CHECK (%s)", *p.WithCheckExpr)
	}
	b.WriteString(";")
	return b.String(), nil
}

func emitDropPolicy(c change.DropPolicy) (string, error) {
	name, err := quoteIdent(c.Policy.Name)
	if err != nil {
		return "", err
	}
	table, err := quoteQualified(c.Policy.Schema, c.Policy.Table)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("DROP POLICY %s ON %s;", name, table), nil
}

func emitRenamePolicyTo(c change.RenamePolicyTo) (string, error) {
	oldName, err := quoteIdent(c.OldName)
	if err != nil {
		return "", err
	}
	newName, err := quoteIdent(c.NewName)
	if err != nil {
		return "", err
	}
	table, err := quoteQualified(c.Schema, c.Table)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ALTER POLICY %s ON %s RENAME TO %s;", oldName, table, newName), nil
}

// emitAlterPolicy folds roles/USING/WITH CHECK changes into one ALTER
// POLICY. A clause pointing at the empty string is an explicit removal
// request; since PostgreSQL's ALTER POLICY has no syntax to drop just one
// clause, removal is rendered as neutralizing it (USING (true) / WITH
// CHECK (true)) rather than silently doing nothing, which is the
// nearest a single statement can get to "no longer restricts".
func emitAlterPolicy(c change.AlterPolicy) (string, error) {
	name, err := quoteIdent(c.Name)
	if err != nil {
		return "", err
	}
	table, err := quoteQualified(c.Schema, c.Table)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ALTER POLICY %s ON %s", name, table)

	if c.NewRoles != nil {
		roles, err := roleList(c.NewRoles)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, " TO %s", roles)
	}
	if c.NewUsing != nil {
		expr := *c.NewUsing
		if expr == "" {
			expr = "true"
		}
		fmt.Fprintf(&b, " USING (%s)", expr)
	}
	if c.NewWithCheck != nil {
		expr := *c.NewWithCheck
		if expr == "" {
			expr = "true"
		}
		fmt.Fprintf(&b, " WITH CHECK (%s)", expr)
	}

	b.WriteString(";")
	return b.String(), nil
}
