package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when inserting a user violates the
	// UNIQUE constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostOwnerNotFound is returned when a post references a user that
	// does not exist (foreign key violation on posts.user_id).
	ErrPostOwnerNotFound = errors.New("post owner was not found")

	// ErrUnsupportedDialect is returned by [NewDB] for a DSN it cannot route.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason other than a known constraint violation.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrAcquiringConnection is returned when no connection can be checked
	// out of the pool.
	ErrAcquiringConnection = errors.New("failed to acquire database connection")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
