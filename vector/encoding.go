package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeCoordinates encodes a vector's coordinates into a BLOB suitable for
// storage in SQLite. The encoding is a little-endian sequence of IEEE 754
// float64 values without a length prefix; the dimension is derived from the
// BLOB size on decode. The zero-dimensional vector encodes to nil.
func EncodeCoordinates(v Vector) ([]byte, error) {
	if len(v.coords) == 0 {
		return nil, nil
	}
	b := make([]byte, len(v.coords)*8)
	for i, c := range v.coords {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(c))
	}
	return b, nil
}

// DecodeCoordinates decodes a BLOB produced by EncodeCoordinates back into
// a Vector.
func DecodeCoordinates(b []byte) (Vector, error) {
	if len(b) == 0 {
		return Vector{}, nil
	}
	if len(b)%8 != 0 {
		return Vector{}, fmt.Errorf("vector: invalid coordinate blob length %d (not multiple of 8)", len(b))
	}
	n := len(b) / 8
	coords := make([]float64, n)
	for i := 0; i < n; i++ {
		coords[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return Vector{coords: coords}, nil
}
