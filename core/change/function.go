package change

import "github.com/stokaro/catalogdiff/core/catalog"

// CreateFunction requests CREATE FUNCTION, reusing the stored
// pg_get_functiondef output verbatim.
type CreateFunction struct {
	Function catalog.Function
}

func (c CreateFunction) StableID() string { return c.Function.StableID() }
func (c CreateFunction) Op() OpKind       { return OpCreate }

// DropFunction requests DROP FUNCTION "<s>"."<n>"(<argtypes>);
type DropFunction struct {
	Function catalog.Function
}

func (c DropFunction) StableID() string { return c.Function.StableID() }
func (c DropFunction) Op() OpKind       { return OpDrop }

// ReplaceFunction requests CREATE OR REPLACE FUNCTION.
type ReplaceFunction struct {
	Function catalog.Function
}

func (c ReplaceFunction) StableID() string { return c.Function.StableID() }
func (c ReplaceFunction) Op() OpKind       { return OpReplace }

// CreateTrigger requests CREATE TRIGGER, reusing the stored
// pg_get_triggerdef output verbatim.
type CreateTrigger struct {
	Trigger catalog.Trigger
}

func (c CreateTrigger) StableID() string { return c.Trigger.StableID() }
func (c CreateTrigger) Op() OpKind       { return OpCreate }

// DropTrigger requests DROP TRIGGER "<n>" ON "<s>"."<t>";
type DropTrigger struct {
	Trigger catalog.Trigger
}

func (c DropTrigger) StableID() string { return c.Trigger.StableID() }
func (c DropTrigger) Op() OpKind       { return OpDrop }
