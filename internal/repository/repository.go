// Package repository handles all interactions with the database.
//
// It contains the raw SQL for questions and answers and maps rows into
// model types. Every failure is returned as an *errs.DbError so callers can
// branch on its kind without knowing anything about pgx.
//
// Repositories hold nothing but the shared pool and are safe for
// concurrent use. Multi-statement operations (Delete, IncrementLikes) run
// in a single transaction whose first statement locks the target row with
// SELECT ... FOR UPDATE, so concurrent increments on the same row never
// lose an update.
package repository

import (
	"context"

	"github.com/deppfellow/go-qna/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the statement surface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool is a DBTX that can also start transactions.
type Pool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ Pool = (*pgxpool.Pool)(nil)

// QuestionDao is the data access contract for questions.
type QuestionDao interface {
	// Create inserts a question and returns the id assigned by the database.
	Create(ctx context.Context, newQuestion model.NewQuestion) (uuid.UUID, error)

	// Get returns a single question.
	Get(ctx context.Context, id model.EntityID) (model.Question, error)

	// List returns every question. An empty table yields an empty slice.
	List(ctx context.Context) ([]model.Question, error)

	// Delete removes a question and returns its id.
	Delete(ctx context.Context, id model.EntityID) (uuid.UUID, error)

	// IncrementLikes adds one to the question's like counter.
	IncrementLikes(ctx context.Context, id model.EntityID) error
}

// AnswerDao is the data access contract for answers.
type AnswerDao interface {
	// Create resolves newAnswer.QuestionID, inserts the answer and returns its id.
	Create(ctx context.Context, newAnswer model.NewAnswer) (uuid.UUID, error)

	// Get returns a single answer.
	Get(ctx context.Context, id model.EntityID) (model.Answer, error)

	// ListByQuestion returns the answers of one question.
	ListByQuestion(ctx context.Context, questionID model.EntityID) ([]model.Answer, error)

	// ListAll returns every answer.
	ListAll(ctx context.Context) ([]model.Answer, error)

	// Delete removes an answer and returns its id.
	Delete(ctx context.Context, id model.EntityID) (uuid.UUID, error)

	// IncrementLikes adds one to the answer's like counter.
	IncrementLikes(ctx context.Context, id model.EntityID) error
}
