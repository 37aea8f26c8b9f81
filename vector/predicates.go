package vector

import "math"

// IsZero reports whether v's magnitude is below DefaultTolerance.
func (v Vector) IsZero() bool { return v.IsZeroWithin(DefaultTolerance) }

// IsZeroWithin reports whether v's magnitude is below tolerance.
func (v Vector) IsZeroWithin(tolerance float64) bool {
	return v.Magnitude() < tolerance
}

// Equal reports whether v and other agree within DefaultTolerance.
func (v Vector) Equal(other Vector) bool {
	return v.EqualWithin(other, DefaultTolerance)
}

// EqualWithin reports whether every coordinate of v and other differs by at
// most tolerance, padding the shorter operand with zeros. A vector is thus
// equal to itself extended by trailing zeros.
func (v Vector) EqualWithin(other Vector, tolerance float64) bool {
	n := len(v.coords)
	if len(other.coords) > n {
		n = len(other.coords)
	}
	for i := 0; i < n; i++ {
		if math.Abs(v.At(i)-other.At(i)) > tolerance {
			return false
		}
	}
	return true
}

// Parallel reports whether v and other point along the same line. The zero
// vector is trivially parallel to every vector. Otherwise other is scaled
// by the coordinate ratio taken at the first index where other exceeds
// tolerance, and the result compared against v.
func (v Vector) Parallel(other Vector) bool {
	if v.IsZero() || other.IsZero() {
		return true
	}
	pivot := -1
	for i := 0; i < len(other.coords); i++ {
		if math.Abs(other.coords[i]) > DefaultTolerance {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return true
	}
	scalar := v.At(pivot) / other.coords[pivot]
	return other.TimesScalar(scalar).Equal(v)
}

// Orthogonal reports whether v and other are perpendicular within
// DefaultTolerance.
func (v Vector) Orthogonal(other Vector) bool {
	return v.OrthogonalWithin(other, DefaultTolerance)
}

// OrthogonalWithin reports whether the dot product of v and other is below
// tolerance in absolute value. The zero vector is trivially orthogonal to
// every vector.
func (v Vector) OrthogonalWithin(other Vector, tolerance float64) bool {
	if v.IsZero() || other.IsZero() {
		return true
	}
	return math.Abs(v.Dot(other)) < tolerance
}
