package store

import (
	"database/sql"
)

const vectorsSchema = `
CREATE TABLE IF NOT EXISTS vectors (
    name TEXT PRIMARY KEY,
    dim INTEGER NOT NULL,
    coords BLOB
);
`

// EnsureSchema creates the vectors table in the provided database if it
// does not already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(vectorsSchema)
	return err
}
