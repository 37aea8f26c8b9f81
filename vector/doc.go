// Package vector implements finite-dimensional real-vector arithmetic:
// construction, addition and subtraction, scalar multiplication, magnitude,
// normalization, dot and cross products, projections, angles, and
// tolerance-aware predicates (zero, equality, parallel, orthogonal).
//
// Vectors are immutable values. Every operation returns a new Vector and
// never mutates its operands, so vectors may be shared freely across
// goroutines without coordination.
//
// Operations that are undefined for degenerate input (normalizing the zero
// vector, projecting onto the zero vector, cross products outside three
// dimensions) trace a warning and return a named error (ErrZeroVector,
// ErrDimensionMismatch) alongside an unchanged operand, so callers can
// either branch on the error or keep going with the degenerate value.
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vecspace.vector'.
func tracer() tracing.Trace {
	return tracing.Select("vecspace.vector")
}
