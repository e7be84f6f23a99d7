package store

import "errors"

// Sentinel errors returned by the stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnknownKind is returned when a kind is not one of the synchronized
	// collections. Kind names double as table names, so nothing reaches SQL
	// without passing this check.
	ErrUnknownKind = errors.New("unknown entity kind")

	// ErrRecordNotFound is returned when a local update or delete targets an
	// identity that does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrDocumentNotFound is returned when a remote document lookup or merge
	// targets a key that does not exist for the tenant.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrInvalidPayload is returned when a payload cannot be encoded to or
	// decoded from its JSON column.
	ErrInvalidPayload = errors.New("invalid record payload")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails mid-way.
	ErrScanningRows = errors.New("failed to scan rows")
)
