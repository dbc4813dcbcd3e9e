// Package errs defines the error taxonomy shared by every pipeline stage:
// extraction, diffing, dependency resolution and emission.
package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors for errors.Is matching across the pipeline.
var (
	// ErrExtraction marks a database I/O failure or malformed catalog row
	// encountered while building a Snapshot. Fatal to the current diff; no
	// partial snapshot is ever returned.
	ErrExtraction = errors.New("extraction error")

	// ErrInvariantViolation marks a programming bug: an emitter reached an
	// unknown change variant, or a constraint referenced a missing column.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrCyclicDependency marks a resolver failure to find a total order
	// over a change set.
	ErrCyclicDependency = errors.New("cyclic dependency")

	// ErrUnsupportedOperation marks a diff that would require a DDL form
	// deliberately outside scope, e.g. renaming an index in place.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Extraction wraps a failure surfaced while reading PostgreSQL catalogs.
func Extraction(kind string, err error) error {
	return fmt.Errorf("%w: reading %s: %w", ErrExtraction, kind, err)
}

// InvariantViolation reports a condition the pipeline assumes can never
// happen. Callers are expected to treat this as fatal.
func InvariantViolation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}

// UnsupportedOperation reports a diff that would require DDL deliberately
// left out of scope.
func UnsupportedOperation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, fmt.Sprintf(format, args...))
}

// CycleEdge is one edge of the unresolved subgraph reported alongside a
// CyclicDependencyError, named by the stable ids of the two changes it
// connects.
type CycleEdge struct {
	From   string
	To     string
	Reason string
}

// CyclicDependencyErr carries the still-unordered remainder of the
// constraint graph so a caller can print it for diagnosis, plus a
// correlation id so repeated occurrences can be grepped across retries.
type CyclicDependencyErr struct {
	CorrelationID string
	Remaining     []string
	Edges         []CycleEdge
}

// NewCyclicDependencyError builds a CyclicDependencyErr for the given
// leftover node ids (stable ids of changes that Kahn's algorithm could not
// place) and the edges among them.
func NewCyclicDependencyError(remaining []string, edges []CycleEdge) *CyclicDependencyErr {
	return &CyclicDependencyErr{
		CorrelationID: uuid.NewString(),
		Remaining:     remaining,
		Edges:         edges,
	}
}

func (e *CyclicDependencyErr) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: no total order exists for %d change(s) [correlation=%s]", ErrCyclicDependency, len(e.Remaining), e.CorrelationID)
	for _, edge := range e.Edges {
		fmt.Fprintf(&b, "\n  %s before %s (%s)", edge.From, edge.To, edge.Reason)
	}
	return b.String()
}

func (e *CyclicDependencyErr) Unwrap() error {
	return ErrCyclicDependency
}
