package emit

import (
	"golang.org/x/text/width"

	"github.com/stokaro/catalogdiff/core/errs"
)

// quoteIdent wraps name in ASCII double quotes. It does not escape
// embedded double quotes (spec leaves that behavior undefined; this
// implementation rejects rather than silently producing broken SQL) and
// rejects fullwidth/east-asian-wide characters that render as
// near-indistinguishable from their ASCII counterparts, a defensive check
// against confusable identifiers.
func quoteIdent(name string) (string, error) {
	for _, r := range name {
		if r == '"' {
			return "", errs.InvariantViolation("identifier %q contains an embedded double quote", name)
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			return "", errs.InvariantViolation("identifier %q contains a fullwidth character indistinguishable from its ASCII form", name)
		}
	}
	return `"` + name + `"`, nil
}

// quoteQualified renders "<schema>"."<name>".
func quoteQualified(schema, name string) (string, error) {
	qs, err := quoteIdent(schema)
	if err != nil {
		return "", err
	}
	qn, err := quoteIdent(name)
	if err != nil {
		return "", err
	}
	return qs + "." + qn, nil
}

// quoteColumnRef renders "<schema>"."<table>"."<column>", used by OWNED BY
// clauses where the referenced column must be qualified independently of
// search_path rather than resolved against it.
func quoteColumnRef(schema, table, column string) (string, error) {
	qualified, err := quoteQualified(schema, table)
	if err != nil {
		return "", err
	}
	qc, err := quoteIdent(column)
	if err != nil {
		return "", err
	}
	return qualified + "." + qc, nil
}
