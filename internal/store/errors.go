package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPostNotFound is returned when a query or mutation targets a post
	// identifier that does not exist in the database.
	ErrPostNotFound = errors.New("post was not found")

	// ErrPostNotOwned is returned when a conditional mutation matched an
	// existing post whose owner differs from the caller's identity.
	ErrPostNotOwned = errors.New("post is owned by a different user")

	// ErrPostAlreadyExists is returned when an INSERT collides with an
	// existing post identifier (unique violation on the primary key).
	ErrPostAlreadyExists = errors.New("post already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan post row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan post rows")
)
