// Package errs defines the error types shared across the service.
//
// Two families live here:
//   - DbError: the closed taxonomy every repository operation reports
//     (creation, not found, invalid uuid, access, row mapping, deletion,
//     update, commit).
//   - HTTPError: the JSON shape the API renders to clients.
//
// The sqlerr package converts the first into the second.
package errs
