package catalog

// PolicyCommand is a pg_policy.polcmd code.
type PolicyCommand string

const (
	PolicyCommandSelect PolicyCommand = "r"
	PolicyCommandInsert PolicyCommand = "a"
	PolicyCommandUpdate PolicyCommand = "w"
	PolicyCommandDelete PolicyCommand = "d"
	PolicyCommandAll    PolicyCommand = "*"
)

// Policy is a row-level-security policy.
type Policy struct {
	Schema string // identity
	Table  string // identity
	Name   string // identity

	Permissive bool          // data
	Command    PolicyCommand // data
	Roles      []string      // data

	UsingExpr    *string // data, nil = no USING clause
	WithCheckExpr *string // data, nil = no WITH CHECK clause
}

// StableID implements Entity.
func (p Policy) StableID() string {
	return PolicyStableID(p.Schema, p.Table, p.Name)
}

// SemanticallyEqual compares two policies field by field, including Name:
// a rename is a data difference the differ surfaces as RenamePolicyTo
// rather than drop+create, so Name participates in equality here even
// though it is also embedded in the stable id's owning scope.
func (p Policy) SemanticallyEqual(other Policy) bool {
	return p.Name == other.Name &&
		p.Permissive == other.Permissive &&
		p.Command == other.Command &&
		stringSliceEqual(p.Roles, other.Roles) &&
		stringPtrEqual(p.UsingExpr, other.UsingExpr) &&
		stringPtrEqual(p.WithCheckExpr, other.WithCheckExpr)
}

// EqualExceptName reports whether p and other agree on every data field
// except Name, i.e. whether they are candidates for RenamePolicyTo.
func (p Policy) EqualExceptName(other Policy) bool {
	return p.Permissive == other.Permissive &&
		p.Command == other.Command &&
		stringSliceEqual(p.Roles, other.Roles) &&
		stringPtrEqual(p.UsingExpr, other.UsingExpr) &&
		stringPtrEqual(p.WithCheckExpr, other.WithCheckExpr)
}

// EqualExceptFineGrained reports whether p and other share the same
// command and permissive flag, which must match for an AlterPolicy to be
// viable; roles/USING/WITH CHECK differences are folded into the alter.
func (p Policy) EqualExceptFineGrained(other Policy) bool {
	return p.Command == other.Command && p.Permissive == other.Permissive
}
