package vector

// Plus returns the coordinate-wise sum of v and other. Coordinates are
// merged by index; an index present in only one operand keeps that
// operand's value, the missing side contributing an implicit zero. The
// result is dense up to max(v.Dimension(), other.Dimension()).
func (v Vector) Plus(other Vector) Vector {
	n := len(v.coords)
	if len(other.coords) > n {
		n = len(other.coords)
	}
	if n == 0 {
		return Vector{}
	}
	sum := make([]float64, n)
	for i := range sum {
		sum[i] = v.At(i) + other.At(i)
	}
	return Vector{coords: sum}
}

// Minus returns v - other, with the same implicit-zero padding as Plus.
func (v Vector) Minus(other Vector) Vector {
	return v.Plus(other.TimesScalar(-1))
}

// TimesScalar scales every coordinate of v by s. The dimension is
// unchanged.
func (v Vector) TimesScalar(s float64) Vector {
	if len(v.coords) == 0 {
		return Vector{}
	}
	scaled := make([]float64, len(v.coords))
	for i, c := range v.coords {
		scaled[i] = c * s
	}
	return Vector{coords: scaled}
}
