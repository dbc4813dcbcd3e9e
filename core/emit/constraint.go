package emit

import (
	"fmt"
	"strings"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
	"github.com/stokaro/catalogdiff/core/errs"
)

func fkAction(a catalog.ForeignKeyAction) string {
	switch a {
	case catalog.FKActionNoAction:
		return "NO ACTION"
	case catalog.FKActionRestrict:
		return "RESTRICT"
	case catalog.FKActionCascade:
		return "CASCADE"
	case catalog.FKActionSetNull:
		return "SET NULL"
	case catalog.FKActionSetDefault:
		return "SET DEFAULT"
	default:
		return "NO ACTION"
	}
}

func quoteColumnList(cols []string) (string, error) {
	quoted := make([]string, 0, len(cols))
	for _, c := range cols {
		q, err := quoteIdent(c)
		if err != nil {
			return "", err
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, ", "), nil
}

func emitCreateConstraint(c change.CreateConstraint) (string, error) {
	con := c.Constraint
	table, err := quoteQualified(con.Schema, con.Table)
	if err != nil {
		return "", err
	}
	name, err := quoteIdent(con.Name)
	if err != nil {
		return "", err
	}

	var clause string
	switch con.Type {
	case catalog.ConstraintPrimaryKey:
		cols, err := quoteColumnList(con.Columns)
		if err != nil {
			return "", err
		}
		clause = fmt.Sprintf("PRIMARY KEY (%s)", cols)

	case catalog.ConstraintUnique:
		cols, err := quoteColumnList(con.Columns)
		if err != nil {
			return "", err
		}
		clause = fmt.Sprintf("UNIQUE (%s)", cols)

	case catalog.ConstraintCheck:
		clause = fmt.Sprintf("CHECK (%s)", con.CheckExpr)

	case catalog.ConstraintForeignKey:
		cols, err := quoteColumnList(con.Columns)
		if err != nil {
			return "", err
		}
		refTable, err := quoteQualified(con.RefSchema, con.RefTable)
		if err != nil {
			return "", err
		}
		refCols, err := quoteColumnList(con.RefColumns)
		if err != nil {
			return "", err
		}
		clause = fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)", cols, refTable, refCols)
		if con.OnUpdate != "" {
			clause += fmt.Sprintf(" ON UPDATE %s", fkAction(con.OnUpdate))
		}
		if con.OnDelete != "" {
			clause += fmt.Sprintf(" ON DELETE %s", fkAction(con.OnDelete))
		}
		if con.Deferrable {
			clause += " DEFERRABLE"
			if con.InitiallyDeferred {
				clause += " INITIALLY DEFERRED"
			} else {
				clause += " INITIALLY IMMEDIATE"
			}
		}

	default:
		return "", errs.InvariantViolation("emit: unknown constraint type %q", con.Type)
	}

	return fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s;", table, name, clause), nil
}

func emitDropConstraint(c change.DropConstraint) (string, error) {
	con := c.Constraint
	table, err := quoteQualified(con.Schema, con.Table)
	if err != nil {
		return "", err
	}
	name, err := quoteIdent(con.Name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT %s;", table, name), nil
}

// emitAlterConstraint handles the one in-place constraint modification the
// differ allows: foreign-key deferrability.
func emitAlterConstraint(c change.AlterConstraint) (string, error) {
	con := c.Constraint
	table, err := quoteQualified(con.Schema, con.Table)
	if err != nil {
		return "", err
	}
	name, err := quoteIdent(con.Name)
	if err != nil {
		return "", err
	}

	clause := "NOT DEFERRABLE"
	if c.Deferrable {
		clause = "DEFERRABLE"
		if c.InitiallyDeferred {
			clause += " INITIALLY DEFERRED"
		} else {
			clause += " INITIALLY IMMEDIATE"
		}
	}

	return fmt.Sprintf("ALTER TABLE %s ALTER CONSTRAINT %s %s;", table, name, clause), nil
}
