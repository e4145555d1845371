// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"context"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/deppfellow/go-qna/internal/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// loggerFor returns the request-scoped logger stored in ctx, falling back
// to the server logger outside a request.
func loggerFor(ctx context.Context, s *server.Server) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	if s != nil && s.Logger != nil {
		return s.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

// failed logs a repository failure and returns it with a stack attached.
// The *errs.DbError stays reachable through errors.As.
func failed(ctx context.Context, s *server.Server, operation, id string, err error) error {
	event := loggerFor(ctx, s).Warn()

	kind, ok := errs.KindOf(err)
	if !ok || isServerFault(kind) {
		event = loggerFor(ctx, s).Error()
	}

	event = event.Err(err).Str("operation", operation)
	if ok {
		event = event.Stringer("kind", kind)
	}
	if id != "" {
		event = event.Str("id", id)
	}
	event.Msg("repository operation failed")

	return errors.WithStack(err)
}

// isServerFault reports whether a kind points at the database rather than
// at the caller's input.
func isServerFault(kind errs.DbErrorKind) bool {
	switch kind {
	case errs.InvalidUUID, errs.NotFound:
		return false
	default:
		return true
	}
}
