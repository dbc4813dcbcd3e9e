package errs_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/catalogdiff/core/errs"
)

func TestExtraction_WrapsSentinel(t *testing.T) {
	c := qt.New(t)

	cause := errors.New("connection refused")
	err := errs.Extraction("namespace rows", cause)

	c.Assert(errors.Is(err, errs.ErrExtraction), qt.IsTrue)
	c.Assert(errors.Is(err, cause), qt.IsTrue)
	c.Assert(err.Error(), qt.Contains, "namespace rows")
}

func TestInvariantViolation_WrapsSentinel(t *testing.T) {
	c := qt.New(t)

	err := errs.InvariantViolation("unhandled variant %T", 42)
	c.Assert(errors.Is(err, errs.ErrInvariantViolation), qt.IsTrue)
	c.Assert(err.Error(), qt.Contains, "unhandled variant int")
}

func TestUnsupportedOperation_WrapsSentinel(t *testing.T) {
	c := qt.New(t)

	err := errs.UnsupportedOperation("index %q: rename in place", "idx_x")
	c.Assert(errors.Is(err, errs.ErrUnsupportedOperation), qt.IsTrue)
}

func TestCyclicDependencyErr(t *testing.T) {
	c := qt.New(t)

	err := errs.NewCyclicDependencyError(
		[]string{"r:public.a", "r:public.b"},
		[]errs.CycleEdge{{From: "r:public.a", To: "r:public.b", Reason: "fk cycle"}},
	)

	c.Assert(errors.Is(err, errs.ErrCyclicDependency), qt.IsTrue)
	c.Assert(err.CorrelationID, qt.Not(qt.Equals), "")
	c.Assert(err.Error(), qt.Contains, "r:public.a before r:public.b")

	var other *errs.CyclicDependencyErr
	c.Assert(errors.As(err, &other), qt.IsTrue)
}
