package catalog

// Namespace is a PostgreSQL schema. Its only identity field is its name;
// it carries no data fields, so two namespaces with the same name are
// always semantically equal.
type Namespace struct {
	Name string // identity
}

// StableID implements Entity.
func (n Namespace) StableID() string {
	return SchemaStableID(n.Name)
}

// SemanticallyEqual reports whether n and other describe the same schema.
// Namespaces carry no data fields, so this reduces to identity comparison.
func (n Namespace) SemanticallyEqual(other Namespace) bool {
	return n.Name == other.Name
}
