package vector

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultTolerance is the threshold below which floating-point quantities
// are treated as zero or equal.
const DefaultTolerance = 1e-10

var (
	// ErrZeroVector reports an operation that is undefined for the zero
	// vector, such as normalization or projection onto it.
	ErrZeroVector = errors.New("vector: zero vector")

	// ErrDimensionMismatch reports operands whose dimensions do not fit the
	// requested operation.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)

// Vector is an immutable point in real coordinate space. Coordinates are
// dense from index 0 to Dimension()-1; there are never holes in the index
// range. The zero value is the zero-dimensional vector.
type Vector struct {
	coords []float64
}

// New builds a Vector from an ordered sequence of coordinates; the position
// of each element becomes its index. An empty sequence yields a
// zero-dimensional vector, which is valid input to every operation.
func New(coords ...float64) Vector {
	if len(coords) == 0 {
		return Vector{}
	}
	return Vector{coords: append([]float64(nil), coords...)}
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int { return len(v.coords) }

// At returns the coordinate at index i. Indices outside [0, Dimension())
// read as 0.0; this is the padding rule applied when combining vectors of
// unequal dimension.
func (v Vector) At(i int) float64 {
	if i < 0 || i >= len(v.coords) {
		return 0
	}
	return v.coords[i]
}

// Coordinates returns a copy of the coordinate slice, so callers cannot
// reach through it to mutate the vector.
func (v Vector) Coordinates() []float64 {
	return append([]float64(nil), v.coords...)
}

// String renders the vector as "Vector: [c0, c1, ...]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector: [")
	for i, c := range v.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
