package emit

import (
	"fmt"
	"strings"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
)

const (
	ascendingDefaultMin int64 = 1
	ascendingDefaultMax int64 = 9223372036854775807
	descendingDefaultMin int64 = -9223372036854775808
	descendingDefaultMax int64 = -1
)

func emitCreateSequence(c change.CreateSequence) (string, error) {
	qualified, err := quoteQualified(c.Sequence.Schema, c.Sequence.Name)
	if err != nil {
		return "", err
	}

	s := c.Sequence
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE SEQUENCE %s", qualified)

	if s.DataType != "" && s.DataType != "bigint" {
		fmt.Fprintf(&b, " AS %s", s.DataType)
	}
	if s.IncrementBy != 1 {
		fmt.Fprintf(&b, " INCREMENT BY %d", s.IncrementBy)
	}

	if isDefaultMin(s) {
		b.WriteString(" NO MINVALUE")
	} else {
		fmt.Fprintf(&b, " MINVALUE %d", s.MinValue)
	}
	if isDefaultMax(s) {
		b.WriteString(" NO MAXVALUE")
	} else {
		fmt.Fprintf(&b, " MAXVALUE %d", s.MaxValue)
	}

	if s.StartValue != 1 {
		fmt.Fprintf(&b, " START WITH %d", s.StartValue)
	}
	if s.CacheSize != 1 {
		fmt.Fprintf(&b, " CACHE %d", s.CacheSize)
	}
	if s.Cycle {
		b.WriteString(" CYCLE")
	} else {
		b.WriteString(" NO CYCLE")
	}

	b.WriteString(";")
	return b.String(), nil
}

func isDefaultMin(s catalog.Sequence) bool {
	if s.IncrementBy < 0 {
		return s.MinValue == descendingDefaultMin
	}
	return s.MinValue == ascendingDefaultMin
}

func isDefaultMax(s catalog.Sequence) bool {
	if s.IncrementBy < 0 {
		return s.MaxValue == descendingDefaultMax
	}
	return s.MaxValue == ascendingDefaultMax
}

func emitDropSequence(c change.DropSequence) (string, error) {
	qualified, err := quoteQualified(c.Sequence.Schema, c.Sequence.Name)
	if err != nil {
		return "", err
	}
	return "DROP SEQUENCE " + qualified + ";", nil
}

// emitAlterSequence renders up to two statements: one ALTER SEQUENCE for
// the changed scalar properties, and a second, independent one for OWNED
// BY when ownership changed.
func emitAlterSequence(c change.AlterSequence) (string, error) {
	qualified, err := quoteQualified(c.Schema, c.Name)
	if err != nil {
		return "", err
	}

	var statements []string

	var clauses []string
	if c.NewDataType != nil {
		clauses = append(clauses, fmt.Sprintf("AS %s", *c.NewDataType))
	}
	if c.NewIncrementBy != nil {
		clauses = append(clauses, fmt.Sprintf("INCREMENT BY %d", *c.NewIncrementBy))
	}
	if c.NewMinValue != nil {
		clauses = append(clauses, fmt.Sprintf("MINVALUE %d", *c.NewMinValue))
	}
	if c.NewMaxValue != nil {
		clauses = append(clauses, fmt.Sprintf("MAXVALUE %d", *c.NewMaxValue))
	}
	if c.NewStartValue != nil {
		clauses = append(clauses, fmt.Sprintf("RESTART WITH %d", *c.NewStartValue))
	}
	if c.NewCacheSize != nil {
		clauses = append(clauses, fmt.Sprintf("CACHE %d", *c.NewCacheSize))
	}
	if c.NewCycle != nil {
		if *c.NewCycle {
			clauses = append(clauses, "CYCLE")
		} else {
			clauses = append(clauses, "NO CYCLE")
		}
	}
	if len(clauses) > 0 {
		statements = append(statements, fmt.Sprintf("ALTER SEQUENCE %s %s;", qualified, strings.Join(clauses, " ")))
	}

	if c.OwnershipChanged {
		if c.NewOwnerTable == "" {
			statements = append(statements, fmt.Sprintf("ALTER SEQUENCE %s OWNED BY NONE;", qualified))
		} else {
			owner, err := quoteColumnRef(c.NewOwnerSchema, c.NewOwnerTable, c.NewOwnerColumn)
			if err != nil {
				return "", err
			}
			statements = append(statements, fmt.Sprintf("ALTER SEQUENCE %s OWNED BY %s;", qualified, owner))
		}
	}

	return strings.Join(statements, "\n"), nil
}
