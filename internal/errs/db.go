package errs

import (
	"errors"
	"fmt"
)

// DbErrorKind is the closed set of failure classes a repository can report.
//
// Every repository operation surfaces exactly one kind per failure path,
// independent of the driver error that caused it.
type DbErrorKind int

const (
	// Creation means an insert statement failed (including an unavailable connection).
	Creation DbErrorKind = iota + 1

	// NotFound means the targeted row does not exist, or a single-row fetch failed.
	NotFound

	// InvalidUUID means a caller supplied identifier did not parse.
	// It carries a static message instead of a wrapped driver error.
	InvalidUUID

	// Access means a bulk read or a transaction begin failed.
	Access

	// FromRow means a fetched row could not be mapped into its entity.
	FromRow

	// Deletion means the delete statement failed after the row was found.
	Deletion

	// Update means the write half of a read-modify-write failed.
	Update

	// Commit means every statement succeeded but the commit did not.
	Commit
)

// String returns the machine-friendly name of the kind, e.g. "NOT_FOUND".
func (k DbErrorKind) String() string {
	switch k {
	case Creation:
		return "CREATION"
	case NotFound:
		return "NOT_FOUND"
	case InvalidUUID:
		return "INVALID_UUID"
	case Access:
		return "ACCESS"
	case FromRow:
		return "FROM_ROW"
	case Deletion:
		return "DELETION"
	case Update:
		return "UPDATE"
	case Commit:
		return "COMMIT"
	default:
		return "UNKNOWN"
	}
}

// DbError is the error value returned by every repository operation.
//
// Fields:
//   - Kind: which failure class this is.
//   - Message: short human-readable description (static for InvalidUUID).
//   - Err: the underlying driver error, nil for InvalidUUID.
//   - Entity: the entity the operation targeted ("question", "answer"), if known.
type DbError struct {
	Kind    DbErrorKind
	Message string
	Err     error
	Entity  string
}

// Error formats as "<message>: <driver error>" when a driver error is wrapped.
func (e *DbError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the driver error so errors.As can reach *pgconn.PgError.
func (e *DbError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *DbError of the same kind.
//
// Unlike HTTPError.Is, this compares the kind, so the sentinels below can be
// used with errors.Is:
//
//	if errors.Is(err, errs.ErrNotFound) { ... }
func (e *DbError) Is(target error) bool {
	t, ok := target.(*DbError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons. Never returned directly.
var (
	ErrCreation    = &DbError{Kind: Creation}
	ErrNotFound    = &DbError{Kind: NotFound}
	ErrInvalidUUID = &DbError{Kind: InvalidUUID}
	ErrAccess      = &DbError{Kind: Access}
	ErrFromRow     = &DbError{Kind: FromRow}
	ErrDeletion    = &DbError{Kind: Deletion}
	ErrUpdate      = &DbError{Kind: Update}
	ErrCommit      = &DbError{Kind: Commit}
)

// NewDbError wraps a driver error under the given kind.
func NewDbError(kind DbErrorKind, message string, err error) *DbError {
	return &DbError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// ForEntity records which entity the failed operation targeted and returns e.
func (e *DbError) ForEntity(entity string) *DbError {
	e.Entity = entity
	return e
}

// NewInvalidUUIDError builds the InvalidUUID error with its static diagnostic.
func NewInvalidUUIDError() *DbError {
	return &DbError{
		Kind:    InvalidUUID,
		Message: "invalid uuid",
	}
}

// KindOf returns the kind of the first *DbError in err's chain.
// ok is false when err is not a repository error.
func KindOf(err error) (kind DbErrorKind, ok bool) {
	var dbErr *DbError
	if errors.As(err, &dbErr) {
		return dbErr.Kind, true
	}
	return 0, false
}
