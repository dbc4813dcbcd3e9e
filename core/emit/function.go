package emit

import (
	"fmt"

	"github.com/stokaro/catalogdiff/core/change"
)

func emitCreateFunction(c change.CreateFunction) (string, error) {
	return c.Function.Definition, nil
}

func emitDropFunction(c change.DropFunction) (string, error) {
	name, err := quoteQualified(c.Function.Schema, c.Function.Name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("DROP FUNCTION %s(%s);", name, joinArgTypes(c.Function.ArgTypes)), nil
}

func emitReplaceFunction(c change.ReplaceFunction) (string, error) {
	return substituteCreateOrReplace(c.Function.Definition), nil
}

func joinArgTypes(types []string) string {
	out := ""
	for i, t := range types {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}

func emitCreateTrigger(c change.CreateTrigger) (string, error) {
	return c.Trigger.Definition, nil
}

func emitDropTrigger(c change.DropTrigger) (string, error) {
	name, err := quoteIdent(c.Trigger.Name)
	if err != nil {
		return "", err
	}
	table, err := quoteQualified(c.Trigger.Schema, c.Trigger.Table)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("DROP TRIGGER %s ON %s;", name, table), nil
}
