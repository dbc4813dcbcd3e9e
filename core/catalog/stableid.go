// Package catalog defines the entity model extracted from a PostgreSQL
// catalog: one Go struct per entity kind, each exposing a stable identifier
// and a handwritten semantic-equality method, plus the Snapshot container
// that aggregates them.
package catalog

import "fmt"

// Kind discriminates entity kinds so that, e.g., a table and a view sharing
// a name never collide on stable id.
type Kind string

const (
	KindSchema           Kind = "schema"
	KindTable            Kind = "table"
	KindView             Kind = "view"
	KindMaterializedView Kind = "matview"
	KindColumn           Kind = "column"
	KindConstraint       Kind = "constraint"
	KindIndex            Kind = "index"
	KindSequence         Kind = "sequence"
	KindPolicy           Kind = "policy"
	KindFunction         Kind = "function"
	KindTrigger          Kind = "trigger"
	KindType             Kind = "type"
)

// SchemaStableID returns the stable id of a schema: just its name.
func SchemaStableID(schema string) string {
	return schema
}

// TableStableID returns the stable id of a table.
func TableStableID(schema, name string) string {
	return fmt.Sprintf("r:%s.%s", schema, name)
}

// ViewStableID returns the stable id of a view.
func ViewStableID(schema, name string) string {
	return fmt.Sprintf("v:%s.%s", schema, name)
}

// MaterializedViewStableID returns the stable id of a materialized view.
func MaterializedViewStableID(schema, name string) string {
	return fmt.Sprintf("m:%s.%s", schema, name)
}

// ColumnStableID returns the stable id of a column, scoped to its owning
// relation.
func ColumnStableID(schema, table, column string) string {
	return fmt.Sprintf("%s.%s.%s", schema, table, column)
}

// ConstraintStableID returns the stable id of a constraint.
func ConstraintStableID(schema, table, name string) string {
	return fmt.Sprintf("%s.%s.%s", schema, table, name)
}

// IndexStableID returns the stable id of an index.
func IndexStableID(schema, name string) string {
	return fmt.Sprintf("i:%s.%s", schema, name)
}

// SequenceStableID returns the stable id of a sequence.
func SequenceStableID(schema, name string) string {
	return fmt.Sprintf("S:%s.%s", schema, name)
}

// PolicyStableID returns the stable id of a row-level-security policy.
func PolicyStableID(schema, table, name string) string {
	return fmt.Sprintf("P:%s.%s.%s", schema, table, name)
}

// FunctionStableID returns the stable id of a function, including its
// argument types so overloads do not collide.
func FunctionStableID(schema, name string, argTypes []string) string {
	return fmt.Sprintf("function:%s.%s(%s)", schema, name, joinTypes(argTypes))
}

// TriggerStableID returns the stable id of a trigger.
func TriggerStableID(schema, table, name string) string {
	return fmt.Sprintf("trigger:%s.%s.%s", schema, table, name)
}

// TypeStableID returns the stable id of a composite/enum/domain/range type.
func TypeStableID(schema, name string) string {
	return fmt.Sprintf("type:%s.%s", schema, name)
}

func joinTypes(types []string) string {
	out := ""
	for i, t := range types {
		if i > 0 {
			out += ","
		}
		out += t
	}
	return out
}
