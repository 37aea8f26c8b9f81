package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	sqlite "modernc.org/sqlite"

	"github.com/dglmartins/vecspace/vector"
)

// RegisterVectorFunctions registers vec_magnitude, vec_dot, vec_distance
// and vec_cosine with the driver so they are available on new connections
// opened after this call.
// Note: existing open connections will not see new functions.
func RegisterVectorFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("vec_magnitude", 1, vecMagnitudeImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_dot", 2, vecDotImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_distance", 2, vecDistanceImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_cosine", 2, vecCosineImpl)
	return nil
}

func asVector(arg driver.Value) (vector.Vector, bool, error) {
	switch v := arg.(type) {
	case nil:
		return vector.Vector{}, false, nil
	case []byte:
		vec, err := vector.DecodeCoordinates(v)
		if err != nil {
			return vector.Vector{}, false, err
		}
		return vec, true, nil
	default:
		return vector.Vector{}, false, fmt.Errorf("engine: unsupported argument type %T for vector; want BLOB", arg)
	}
}

func vecMagnitudeImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("vec_magnitude: expected 1 argument, got %d", len(args))
	}
	v, ok, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return v.Magnitude(), nil
}

func vecDotImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok, err := twoVectors("vec_dot", args)
	if err != nil || !ok {
		return nil, err
	}
	return a.Dot(b), nil
}

func vecDistanceImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok, err := twoVectors("vec_distance", args)
	if err != nil || !ok {
		return nil, err
	}
	return a.Distance(b), nil
}

func vecCosineImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok, err := twoVectors("vec_cosine", args)
	if err != nil || !ok {
		return nil, err
	}
	sim, err := vector.CosineSimilarity(a, b)
	if err != nil {
		return nil, err
	}
	return sim, nil
}

func twoVectors(fn string, args []driver.Value) (vector.Vector, vector.Vector, bool, error) {
	if len(args) != 2 {
		return vector.Vector{}, vector.Vector{}, false, fmt.Errorf("%s: expected 2 arguments, got %d", fn, len(args))
	}
	a, okA, err := asVector(args[0])
	if err != nil {
		return vector.Vector{}, vector.Vector{}, false, err
	}
	b, okB, err := asVector(args[1])
	if err != nil {
		return vector.Vector{}, vector.Vector{}, false, err
	}
	return a, b, okA && okB, nil
}
