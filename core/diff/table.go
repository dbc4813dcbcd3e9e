package diff

import (
	"github.com/stokaro/catalogdiff/core/catalog"
	"github.com/stokaro/catalogdiff/core/change"
)

func diffTables(master, branch *catalog.Snapshot) []change.Change {
	var changes []change.Change

	for id, m := range master.Tables {
		if _, ok := branch.Tables[id]; !ok {
			changes = append(changes, change.DropTable{Table: m})
		}
	}

	for id, b := range branch.Tables {
		if _, ok := master.Tables[id]; !ok {
			changes = append(changes, change.CreateTable{
				Table:   b,
				Columns: branch.ColumnsOf(b.Schema, b.Name),
			})
			if b.RLSEnabled {
				changes = append(changes, change.AlterTable{
					Schema: b.Schema, Name: b.Name,
					Operation: change.EnableRowLevelSecurity{},
				})
			}
		}
	}

	for id, m := range master.Tables {
		b, ok := branch.Tables[id]
		if !ok {
			continue
		}
		changes = append(changes, diffColumns(m, master.ColumnsOf(m.Schema, m.Name), b, branch.ColumnsOf(b.Schema, b.Name))...)
		if m.RLSEnabled != b.RLSEnabled {
			var op change.TableOperation
			if b.RLSEnabled {
				op = change.EnableRowLevelSecurity{}
			} else {
				op = change.DisableRowLevelSecurity{}
			}
			changes = append(changes, change.AlterTable{Schema: b.Schema, Name: b.Name, Operation: op})
		}
	}

	return sortByStableID(changes)
}

// diffColumns implements the per-column table diff of spec §4.2.1.
// Columns are enumerated by branch ordinal position for a deterministic
// emission order.
func diffColumns(masterTable catalog.Table, masterCols []catalog.Column, branchTable catalog.Table, branchCols []catalog.Column) []change.Change {
	var changes []change.Change

	masterByName := make(map[string]catalog.Column, len(masterCols))
	for _, c := range masterCols {
		masterByName[c.Name] = c
	}
	branchByName := make(map[string]catalog.Column, len(branchCols))
	for _, c := range branchCols {
		branchByName[c.Name] = c
	}

	schema, table := branchTable.Schema, branchTable.Name

	for _, bc := range branchCols {
		mc, present := masterByName[bc.Name]
		if !present {
			changes = append(changes, change.AlterTable{
				Schema:    schema,
				Name:      table,
				Operation: change.AddColumn{Column: bc},
			})
			continue
		}

		if mc.Generated != bc.Generated || (bc.Generated && mc.GeneratedExpr != bc.GeneratedExpr) {
			changes = append(changes,
				change.AlterTable{Schema: schema, Name: table, Operation: change.DropColumn{Column: mc}},
				change.AlterTable{Schema: schema, Name: table, Operation: change.AddColumn{Column: bc}},
			)
			continue
		}

		if mc.FormattedType != bc.FormattedType {
			changes = append(changes, change.AlterTable{
				Schema: schema, Name: table,
				Operation: change.AlterColumnType{ColumnName: bc.Name, NewType: bc.FormattedType},
			})
		}

		if !bc.Generated {
			switch {
			case mc.Default == nil && bc.Default != nil:
				changes = append(changes, change.AlterTable{
					Schema: schema, Name: table,
					Operation: change.AlterColumnSetDefault{ColumnName: bc.Name, Default: *bc.Default},
				})
			case mc.Default != nil && bc.Default == nil:
				changes = append(changes, change.AlterTable{
					Schema: schema, Name: table,
					Operation: change.AlterColumnDropDefault{ColumnName: bc.Name},
				})
			case mc.Default != nil && bc.Default != nil && *mc.Default != *bc.Default:
				changes = append(changes, change.AlterTable{
					Schema: schema, Name: table,
					Operation: change.AlterColumnSetDefault{ColumnName: bc.Name, Default: *bc.Default},
				})
			}
		}

		if mc.NotNull != bc.NotNull {
			var op change.TableOperation
			if bc.NotNull {
				op = change.AlterColumnSetNotNull{ColumnName: bc.Name}
			} else {
				op = change.AlterColumnDropNotNull{ColumnName: bc.Name}
			}
			changes = append(changes, change.AlterTable{Schema: schema, Name: table, Operation: op})
		}
	}

	for _, mc := range masterCols {
		if _, present := branchByName[mc.Name]; !present {
			changes = append(changes, change.AlterTable{
				Schema:    schema,
				Name:      table,
				Operation: change.DropColumn{Column: mc},
			})
		}
	}

	return changes
}
