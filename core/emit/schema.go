package emit

import "github.com/stokaro/catalogdiff/core/change"

func emitCreateSchema(c change.CreateSchema) (string, error) {
	name, err := quoteIdent(c.Name)
	if err != nil {
		return "", err
	}
	return "CREATE SCHEMA " + name + ";", nil
}

func emitDropSchema(c change.DropSchema) (string, error) {
	name, err := quoteIdent(c.Name)
	if err != nil {
		return "", err
	}
	return "DROP SCHEMA " + name + ";", nil
}
