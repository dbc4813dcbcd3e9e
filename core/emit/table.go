package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
	"github.com/stokaro/catalogdiff/core/errs"
)

func emitCreateTable(c change.CreateTable) (string, error) {
	qualified, err := quoteQualified(c.Table.Schema, c.Table.Name)
	if err != nil {
		return "", err
	}

	cols := make([]string, 0, len(c.Columns))
	for _, col := range c.Columns {
		def, err := renderColumnCreateTable(col)
		if err != nil {
			return "", err
		}
		cols = append(cols, "  "+def)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n%s\n)", qualified, strings.Join(cols, ",\n"))

	if len(c.Table.Inherits) > 0 {
		fmt.Fprintf(&b, " INHERITS (%s)", strings.Join(c.Table.Inherits, ", "))
	}

	if len(c.Table.Options) > 0 {
		keys := make([]string, 0, len(c.Table.Options))
		for k := range c.Table.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		opts := make([]string, 0, len(keys))
		for _, k := range keys {
			opts = append(opts, fmt.Sprintf("%s=%s", k, c.Table.Options[k]))
		}
		fmt.Fprintf(&b, " WITH (%s)", strings.Join(opts, ","))
	}

	b.WriteString(";")
	return b.String(), nil
}

func renderColumnCreateTable(col catalog.Column) (string, error) {
	name, err := quoteIdent(col.Name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", name, col.FormattedType)
	if col.NotNull {
		b.WriteString(" NOT NULL")
	}
	if col.Default != nil {
		fmt.Fprintf(&b, " DEFAULT %s", *col.Default)
	}
	if col.Generated {
		fmt.Fprintf(&b, " GENERATED ALWAYS AS (%s) STORED", col.GeneratedExpr)
	}
	return b.String(), nil
}

func renderColumnAddColumn(col catalog.Column) (string, error) {
	name, err := quoteIdent(col.Name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", name, col.FormattedType)
	if col.Generated {
		fmt.Fprintf(&b, " GENERATED ALWAYS AS (%s) STORED", col.GeneratedExpr)
	}
	if col.NotNull {
		b.WriteString(" NOT NULL")
	}
	if col.Default != nil {
		fmt.Fprintf(&b, " DEFAULT %s", *col.Default)
	}
	return b.String(), nil
}

func emitDropTable(c change.DropTable) (string, error) {
	qualified, err := quoteQualified(c.Table.Schema, c.Table.Name)
	if err != nil {
		return "", err
	}
	return "DROP TABLE " + qualified + ";", nil
}

func emitAlterTable(c change.AlterTable) (string, error) {
	qualified, err := quoteQualified(c.Schema, c.Name)
	if err != nil {
		return "", err
	}

	clause, err := renderTableOperation(c.Operation)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("ALTER TABLE %s %s;", qualified, clause), nil
}

func renderTableOperation(op change.TableOperation) (string, error) {
	switch o := op.(type) {
	case change.AddColumn:
		def, err := renderColumnAddColumn(o.Column)
		if err != nil {
			return "", err
		}
		return "ADD COLUMN " + def, nil

	case change.DropColumn:
		name, err := quoteIdent(o.Column.Name)
		if err != nil {
			return "", err
		}
		return "DROP COLUMN " + name, nil

	case change.AlterColumnType:
		name, err := quoteIdent(o.ColumnName)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ALTER COLUMN %s TYPE %s", name, o.NewType), nil

	case change.AlterColumnSetDefault:
		name, err := quoteIdent(o.ColumnName)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ALTER COLUMN %s SET DEFAULT %s", name, o.Default), nil

	case change.AlterColumnDropDefault:
		name, err := quoteIdent(o.ColumnName)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ALTER COLUMN %s DROP DEFAULT", name), nil

	case change.AlterColumnSetNotNull:
		name, err := quoteIdent(o.ColumnName)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ALTER COLUMN %s SET NOT NULL", name), nil

	case change.AlterColumnDropNotNull:
		name, err := quoteIdent(o.ColumnName)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ALTER COLUMN %s DROP NOT NULL", name), nil

	case change.EnableRowLevelSecurity:
		return "ENABLE ROW LEVEL SECURITY", nil

	case change.DisableRowLevelSecurity:
		return "DISABLE ROW LEVEL SECURITY", nil

	default:
		return "", errs.InvariantViolation("emit: unhandled table operation %T", op)
	}
}
