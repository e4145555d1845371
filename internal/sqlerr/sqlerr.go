// Package sqlerr handles database driver errors at the HTTP boundary.
//
// It classifies Postgres errors by SQLSTATE and converts them, together with
// repository errors (errs.DbError), into user-friendly errs.HTTPError values
// (e.g. a foreign key violation on answers becomes a 400 ANSWER_NOT_FOUND).
package sqlerr
