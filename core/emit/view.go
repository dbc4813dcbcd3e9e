package emit

import (
	"strings"

	"github.com/stokaro/catalogdiff/core/change"
)

// emitCreateView reuses the stored pg_get_viewdef output verbatim, per
// spec's "Verbatim" emitter family.
func emitCreateView(c change.CreateView) (string, error) {
	return c.View.Definition, nil
}

func emitDropView(c change.DropView) (string, error) {
	qualified, err := quoteQualified(c.View.Schema, c.View.Name)
	if err != nil {
		return "", err
	}
	return "DROP VIEW " + qualified + ";", nil
}

// emitReplaceView substitutes CREATE with CREATE OR REPLACE in the stored
// definition.
func emitReplaceView(c change.ReplaceView) (string, error) {
	return substituteCreateOrReplace(c.View.Definition), nil
}

func substituteCreateOrReplace(def string) string {
	const prefix = "CREATE "
	if strings.HasPrefix(strings.ToUpper(def), "CREATE OR REPLACE ") {
		return def
	}
	if strings.HasPrefix(strings.ToUpper(def), prefix) {
		return "CREATE OR REPLACE " + def[len(prefix):]
	}
	return def
}

func emitCreateMaterializedView(c change.CreateMaterializedView) (string, error) {
	return appendWithNoData(c.MaterializedView.Definition), nil
}

func appendWithNoData(def string) string {
	trimmed := strings.TrimSuffix(strings.TrimRight(def, " \n\t"), ";")
	return trimmed + " WITH NO DATA;"
}

func emitDropMaterializedView(c change.DropMaterializedView) (string, error) {
	qualified, err := quoteQualified(c.MaterializedView.Schema, c.MaterializedView.Name)
	if err != nil {
		return "", err
	}
	return "DROP MATERIALIZED VIEW " + qualified + ";", nil
}

// emitReplaceMaterializedView renders a DROP followed by a CREATE ... WITH
// NO DATA on the next line: materialized views have no CREATE OR REPLACE
// form.
func emitReplaceMaterializedView(c change.ReplaceMaterializedView) (string, error) {
	qualified, err := quoteQualified(c.MaterializedView.Schema, c.MaterializedView.Name)
	if err != nil {
		return "", err
	}
	drop := "DROP MATERIALIZED VIEW " + qualified + ";"
	create := appendWithNoData(c.MaterializedView.Definition)
	return drop + "\n" + create, nil
}
