package emit

import "github.com/stokaro/catalogdiff/core/change"

// emitCreateIndex reuses the stored pg_get_indexdef output verbatim.
func emitCreateIndex(c change.CreateIndex) (string, error) {
	return c.Index.Definition, nil
}

func emitDropIndex(c change.DropIndex) (string, error) {
	qualified, err := quoteQualified(c.Index.Schema, c.Index.Name)
	if err != nil {
		return "", err
	}
	return "DROP INDEX " + qualified + ";", nil
}
