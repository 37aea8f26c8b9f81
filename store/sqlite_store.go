package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/dglmartins/vecspace/vector"
)

// ErrNotFound reports that no vector is stored under the requested name.
var ErrNotFound = errors.New("store: vector not found")

// Match pairs a stored vector's name with its cosine similarity to the
// query vector.
type Match struct {
	Name       string
	Similarity float64
}

// Store defines the durable named-vector API.
type Store interface {
	// Save inserts or replaces the vector stored under name.
	Save(ctx context.Context, name string, v vector.Vector) error

	// Load returns the vector stored under name, or ErrNotFound.
	Load(ctx context.Context, name string) (vector.Vector, error)

	// List returns the names of all stored vectors in lexical order.
	List(ctx context.Context) ([]string, error)

	// Remove deletes the vector stored under name. Removing a name that is
	// not present is not an error.
	Remove(ctx context.Context, name string) error

	// Nearest returns up to k stored vectors ranked by cosine similarity
	// to the query, most similar first. Zero-magnitude rows are skipped.
	Nearest(ctx context.Context, query vector.Vector, k int) ([]Match, error)
}

// SQLiteStore is a Store backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLite-backed Store, ensuring the vectors
// schema exists in the provided database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Save inserts or replaces the vector stored under name.
func (s *SQLiteStore) Save(ctx context.Context, name string, v vector.Vector) error {
	if name == "" {
		return fmt.Errorf("store: Save called with empty name")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	blob, err := vector.EncodeCoordinates(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO vectors(name, dim, coords) VALUES(?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  dim = excluded.dim,
  coords = excluded.coords`, name, v.Dimension(), blob)
	return err
}

// Load returns the vector stored under name.
func (s *SQLiteStore) Load(ctx context.Context, name string) (vector.Vector, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var dim int
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT dim, coords FROM vectors WHERE name = ?`, name).Scan(&dim, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return vector.Vector{}, fmt.Errorf("store: no vector named %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return vector.Vector{}, err
	}
	v, err := vector.DecodeCoordinates(blob)
	if err != nil {
		return vector.Vector{}, err
	}
	if v.Dimension() != dim {
		return vector.Vector{}, fmt.Errorf("store: corrupt row %q: dim column %d, blob holds %d coordinates", name, dim, v.Dimension())
	}
	return v, nil
}

// List returns the names of all stored vectors in lexical order.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM vectors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Remove deletes the vector stored under name.
func (s *SQLiteStore) Remove(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("store: Remove called with empty name")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM vectors WHERE name = ?`, name)
	return err
}

// Nearest scans every stored vector and ranks it by cosine similarity to
// the query, most similar first. Rows with zero magnitude are skipped, as
// is everything when the query itself has zero magnitude.
func (s *SQLiteStore) Nearest(ctx context.Context, query vector.Vector, k int) ([]Match, error) {
	if k <= 0 || query.IsZero() {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT name, coords FROM vectors`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var name string
		var blob []byte
		if err := rows.Scan(&name, &blob); err != nil {
			return nil, err
		}
		v, err := vector.DecodeCoordinates(blob)
		if err != nil {
			return nil, fmt.Errorf("store: row %q: %w", name, err)
		}
		sim, err := vector.CosineSimilarity(query, v)
		if err != nil {
			// Zero-magnitude row; it has no direction to compare.
			continue
		}
		matches = append(matches, Match{Name: name, Similarity: sim})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Name < matches[j].Name
	})
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
