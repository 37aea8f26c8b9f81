package engine

import (
	"math"
	"testing"

	"github.com/dglmartins/vecspace/vector"
)

func TestRegisterVectorFunctionsAndUse(t *testing.T) {
	// Register globally before first connection so functions are available.
	if err := RegisterVectorFunctions(nil); err != nil {
		t.Fatalf("RegisterVectorFunctions failed: %v", err)
	}
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	encode := func(v vector.Vector) []byte {
		blob, err := vector.EncodeCoordinates(v)
		if err != nil {
			t.Fatalf("EncodeCoordinates(%v) failed: %v", v, err)
		}
		return blob
	}

	aBlob := encode(vector.New(1, 0))
	bBlob := encode(vector.New(0, 1))
	cBlob := encode(vector.New(1, 0))

	// vec_cosine orthogonal -> 0
	var sim float64
	if err := db.QueryRow(`SELECT vec_cosine(?, ?)`, aBlob, bBlob).Scan(&sim); err != nil {
		t.Fatalf("vec_cosine(a,b) query failed: %v", err)
	}
	if sim != 0 {
		t.Fatalf("vec_cosine(a,b) = %v, want 0", sim)
	}

	// vec_cosine identical -> 1
	if err := db.QueryRow(`SELECT vec_cosine(?, ?)`, aBlob, cBlob).Scan(&sim); err != nil {
		t.Fatalf("vec_cosine(a,c) query failed: %v", err)
	}
	if math.Abs(sim-1) > 1e-9 {
		t.Fatalf("vec_cosine(a,c) = %v, want 1", sim)
	}

	// vec_magnitude of (2,5,7) -> sqrt(78)
	var mag float64
	if err := db.QueryRow(`SELECT vec_magnitude(?)`, encode(vector.New(2, 5, 7))).Scan(&mag); err != nil {
		t.Fatalf("vec_magnitude query failed: %v", err)
	}
	if math.Abs(mag-math.Sqrt(78)) > 1e-9 {
		t.Fatalf("vec_magnitude = %v, want %v", mag, math.Sqrt(78))
	}

	// vec_dot of (1,2,3) and (4,5,6.5) -> 33.5
	var dot float64
	dBlob := encode(vector.New(1, 2, 3))
	eBlob := encode(vector.New(4, 5, 6.5))
	if err := db.QueryRow(`SELECT vec_dot(?, ?)`, dBlob, eBlob).Scan(&dot); err != nil {
		t.Fatalf("vec_dot query failed: %v", err)
	}
	if dot != 33.5 {
		t.Fatalf("vec_dot = %v, want 33.5", dot)
	}

	// vec_distance between (0,0) and (3,4) -> 5
	var dist float64
	if err := db.QueryRow(`SELECT vec_distance(?, ?)`, encode(vector.New(0, 0)), encode(vector.New(3, 4))).Scan(&dist); err != nil {
		t.Fatalf("vec_distance query failed: %v", err)
	}
	if math.Abs(dist-5) > 1e-9 {
		t.Fatalf("vec_distance = %v, want 5", dist)
	}
}
