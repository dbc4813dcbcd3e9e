package change

import "github.com/stokaro/catalogdiff/core/catalog"

// CreateTable requests a fully-formed CREATE TABLE, with its columns
// embedded so the emitter never needs to re-read the snapshot. If the
// branch table has row-level security on, the Differ emits a separate
// AlterTable{EnableRowLevelSecurity} change alongside this one; the two
// statements are ordered by the resolver's same-object priority rule
// since CREATE precedes ALTER.
type CreateTable struct {
	Table   catalog.Table
	Columns []catalog.Column
}

func (c CreateTable) StableID() string { return c.Table.StableID() }
func (c CreateTable) Op() OpKind       { return OpCreate }

// DropTable requests DROP TABLE "<s>"."<t>";
type DropTable struct {
	Table catalog.Table
}

func (c DropTable) StableID() string { return c.Table.StableID() }
func (c DropTable) Op() OpKind       { return OpDrop }

// TableOperation is one clause of an ALTER TABLE statement. Exactly one
// operation travels per AlterTable change, mirroring the source model:
// bundling changes to a single table into one change instance would force
// the resolver to reason about partial application of a single change,
// which the per-clause model avoids.
type TableOperation interface {
	isTableOperation()
}

// AddColumn appends ADD COLUMN "<c>" <type> ... to an ALTER TABLE.
type AddColumn struct {
	Column catalog.Column
}

func (AddColumn) isTableOperation() {}

// DropColumn appends DROP COLUMN "<c>" to an ALTER TABLE.
type DropColumn struct {
	Column catalog.Column
}

func (DropColumn) isTableOperation() {}

// AlterColumnType appends ALTER COLUMN "<c>" TYPE <type> to an ALTER
// TABLE. No USING clause is synthesized; the branch type string is
// emitted verbatim.
type AlterColumnType struct {
	ColumnName string
	NewType    string
}

func (AlterColumnType) isTableOperation() {}

// AlterColumnSetDefault appends ALTER COLUMN "<c>" SET DEFAULT <expr>.
type AlterColumnSetDefault struct {
	ColumnName string
	Default    string
}

func (AlterColumnSetDefault) isTableOperation() {}

// AlterColumnDropDefault appends ALTER COLUMN "<c>" DROP DEFAULT.
type AlterColumnDropDefault struct {
	ColumnName string
}

func (AlterColumnDropDefault) isTableOperation() {}

// AlterColumnSetNotNull appends ALTER COLUMN "<c>" SET NOT NULL.
type AlterColumnSetNotNull struct {
	ColumnName string
}

func (AlterColumnSetNotNull) isTableOperation() {}

// AlterColumnDropNotNull appends ALTER COLUMN "<c>" DROP NOT NULL.
type AlterColumnDropNotNull struct {
	ColumnName string
}

func (AlterColumnDropNotNull) isTableOperation() {}

// EnableRowLevelSecurity appends ENABLE ROW LEVEL SECURITY.
type EnableRowLevelSecurity struct{}

func (EnableRowLevelSecurity) isTableOperation() {}

// DisableRowLevelSecurity appends DISABLE ROW LEVEL SECURITY.
type DisableRowLevelSecurity struct{}

func (DisableRowLevelSecurity) isTableOperation() {}

// AlterTable carries a single clause to apply to an existing table.
type AlterTable struct {
	Schema    string
	Name      string
	Operation TableOperation
}

func (c AlterTable) StableID() string { return catalog.TableStableID(c.Schema, c.Name) }
func (c AlterTable) Op() OpKind       { return OpAlter }
