package emit

import (
	"fmt"
	"strings"

	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
	"github.com/stokaro/catalogdiff/core/errs"
)

func emitCreateType(c change.CreateType) (string, error) {
	t := c.Type
	qualified, err := quoteQualified(t.Schema, t.Name)
	if err != nil {
		return "", err
	}

	switch t.Kind {
	case catalog.TypeEnum:
		values := make([]string, 0, len(t.EnumValues))
		for _, v := range t.EnumValues {
			values = append(values, "'"+strings.ReplaceAll(v, "'", "''")+"'")
		}
		return fmt.Sprintf("CREATE TYPE %s AS ENUM (%s);", qualified, strings.Join(values, ", ")), nil

	case catalog.TypeDomain:
		var b strings.Builder
		fmt.Fprintf(&b, "CREATE DOMAIN %s AS %s", qualified, t.DomainBaseType)
		if t.DomainDefault != "" {
			fmt.Fprintf(&b, " DEFAULT %s", t.DomainDefault)
		}
		if t.DomainNotNull {
			b.WriteString(" NOT NULL")
		}
		if t.DomainConstraint != "" {
			fmt.Fprintf(&b, " %s", t.DomainConstraint)
		}
		b.WriteString(";")
		return b.String(), nil

	case catalog.TypeComposite:
		attrs := make([]string, 0, len(t.CompositeAttrs))
		for _, a := range t.CompositeAttrs {
			name, err := quoteIdent(a.Name)
			if err != nil {
				return "", err
			}
			attrs = append(attrs, fmt.Sprintf("%s %s", name, a.Type))
		}
		return fmt.Sprintf("CREATE TYPE %s AS (%s);", qualified, strings.Join(attrs, ", ")), nil

	case catalog.TypeRange:
		return fmt.Sprintf("CREATE TYPE %s AS RANGE (subtype = %s);", qualified, t.RangeSubtype), nil

	default:
		return "", errs.InvariantViolation("emit: unsupported type kind %q for %s", t.Kind, t.StableID())
	}
}

func emitDropType(c change.DropType) (string, error) {
	t := c.Type
	qualified, err := quoteQualified(t.Schema, t.Name)
	if err != nil {
		return "", err
	}
	if t.Kind == catalog.TypeDomain {
		return "DROP DOMAIN " + qualified + ";", nil
	}
	return "DROP TYPE " + qualified + ";", nil
}
