package vector

import (
	"fmt"
	"math"
)

// Magnitude returns the Euclidean norm of v: the square root of the sum of
// the squares of all coordinates. The zero-dimensional vector has magnitude
// 0.
func (v Vector) Magnitude() float64 {
	var sum float64
	for _, c := range v.coords {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// Normalize returns the unit vector pointing in v's direction. The
// direction of the zero vector is undefined: a warning is traced and v is
// returned unchanged together with ErrZeroVector.
func (v Vector) Normalize() (Vector, error) {
	if v.IsZero() {
		tracer().Infof("cannot normalize the zero vector")
		return v, fmt.Errorf("vector: cannot normalize the zero vector: %w", ErrZeroVector)
	}
	return v.TimesScalar(1 / v.Magnitude()), nil
}

// Dot returns the dot product of v and other. Coordinates are paired by
// matching index; indices missing from the shorter operand contribute 0.
func (v Vector) Dot(other Vector) float64 {
	n := len(v.coords)
	if len(other.coords) < n {
		n = len(other.coords)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += v.coords[i] * other.coords[i]
	}
	return sum
}

// Angle is an angle between two vectors, carried in both radian and degree
// measure.
type Angle struct {
	Radians float64
	Degrees float64
}

// AngleBetween returns the angle between a and b, computed as the
// arccosine of the dot product of their unit vectors. The angle is
// undefined when either operand is the zero vector; ErrZeroVector is
// returned in that case. The cosine is clamped to [-1, 1] before the
// arccosine so floating-point drift cannot push it out of domain.
func AngleBetween(a, b Vector) (Angle, error) {
	ua, err := a.Normalize()
	if err != nil {
		return Angle{}, err
	}
	ub, err := b.Normalize()
	if err != nil {
		return Angle{}, err
	}
	cos := ua.Dot(ub)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	rad := math.Acos(cos)
	return Angle{Radians: rad, Degrees: rad * 180 / math.Pi}, nil
}

// ScalarProject returns the scalar projection of v onto base:
// Dot(v, base) / |base|. A zero base has no direction to project onto; a
// warning is traced and 0 is returned together with ErrZeroVector.
func (v Vector) ScalarProject(base Vector) (float64, error) {
	if base.IsZero() {
		tracer().Infof("cannot project onto the zero vector")
		return 0, fmt.Errorf("vector: cannot project onto the zero vector: %w", ErrZeroVector)
	}
	return v.Dot(base) / base.Magnitude(), nil
}

// Project returns the vector projection of v onto base: the unit vector of
// base scaled by the scalar projection of v. A zero base is returned
// unchanged together with ErrZeroVector.
func (v Vector) Project(base Vector) (Vector, error) {
	unit, err := base.Normalize()
	if err != nil {
		return base, err
	}
	return unit.TimesScalar(v.Dot(unit)), nil
}

// Cross returns the cross product of v and other, defined only when both
// operands have dimension exactly 3. Any other dimension traces a warning
// and returns the receiver unchanged together with ErrDimensionMismatch.
func (v Vector) Cross(other Vector) (Vector, error) {
	if len(v.coords) != 3 || len(other.coords) != 3 {
		tracer().Infof("cross product requires three dimensions, got %d and %d",
			len(v.coords), len(other.coords))
		return v, fmt.Errorf("vector: cross product requires three dimensions, got %d and %d: %w",
			len(v.coords), len(other.coords), ErrDimensionMismatch)
	}
	a, b := v.coords, other.coords
	return New(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	), nil
}

// Distance returns the Euclidean (L2) distance between v and other, with
// the usual zero padding for operands of unequal dimension.
func (v Vector) Distance(other Vector) float64 {
	return v.Minus(other).Magnitude()
}

// CosineSimilarity computes the cosine of the angle between a and b. It
// returns ErrZeroVector if either operand has magnitude below
// DefaultTolerance.
func CosineSimilarity(a, b Vector) (float64, error) {
	ma, mb := a.Magnitude(), b.Magnitude()
	if ma < DefaultTolerance || mb < DefaultTolerance {
		return 0, fmt.Errorf("vector: cosine similarity with zero-magnitude vector: %w", ErrZeroVector)
	}
	return a.Dot(b) / (ma * mb), nil
}
