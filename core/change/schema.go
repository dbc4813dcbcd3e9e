package change

// CreateSchema requests CREATE SCHEMA "<name>";
type CreateSchema struct {
	Name string
}

func (c CreateSchema) StableID() string { return c.Name }
func (c CreateSchema) Op() OpKind       { return OpCreate }

// DropSchema requests DROP SCHEMA "<name>";
type DropSchema struct {
	Name string
}

func (c DropSchema) StableID() string { return c.Name }
func (c DropSchema) Op() OpKind       { return OpDrop }
