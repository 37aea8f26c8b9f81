// Package store persists named vectors in SQLite. Coordinates are encoded
// as little-endian float64 BLOBs (see the vector package) in a single
// vectors table, and Nearest performs a brute-force cosine scan over the
// stored rows. It is intended for small to mid-size collections; there is
// deliberately no approximate index.
package store
