package repository

import (
	"context"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertAnswerQuery = `
	INSERT INTO answers (question_id, answer)
	VALUES ($1, $2)
	RETURNING id;
	`

	getAnswerQuery = `
	SELECT ` + answerColumns + `
	FROM answers
	WHERE id = $1;
	`

	listAnswersByQuestionQuery = `
	SELECT ` + answerColumns + `
	FROM answers
	WHERE question_id = $1
	ORDER BY created_at, id;
	`

	listAllAnswersQuery = `
	SELECT ` + answerColumns + `
	FROM answers
	ORDER BY created_at, id;
	`

	lockAnswerQuery = `
	SELECT id
	FROM answers
	WHERE id = $1
	FOR UPDATE;
	`

	deleteAnswerQuery = `
	DELETE FROM answers
	WHERE id = $1
	RETURNING id;
	`

	lockAnswerLikesQuery = `
	SELECT likes
	FROM answers
	WHERE id = $1
	FOR UPDATE;
	`

	updateAnswerLikesQuery = `
	UPDATE answers
	SET likes = $2
	WHERE id = $1;
	`
)

// AnswerRepository implements AnswerDao on PostgreSQL.
//
// The answers table references questions(id); the repository relies on
// that constraint instead of checking the question itself, so an unknown
// question id surfaces as a Creation error wrapping SQLSTATE 23503.
type AnswerRepository struct {
	pool Pool
}

var _ AnswerDao = (*AnswerRepository)(nil)

func NewAnswerRepository(pool Pool) *AnswerRepository {
	return &AnswerRepository{pool: pool}
}

func (r *AnswerRepository) Create(ctx context.Context, newAnswer model.NewAnswer) (uuid.UUID, error) {
	questionID, err := newAnswer.QuestionEntityID().Resolve()
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = r.pool.QueryRow(ctx, insertAnswerQuery, questionID, newAnswer.Answer).Scan(&id)
	if err != nil {
		return uuid.Nil, errs.NewDbError(errs.Creation, "failed to create answer", err)
	}
	return id, nil
}

func (r *AnswerRepository) Get(ctx context.Context, id model.EntityID) (model.Answer, error) {
	answerID, err := id.Resolve()
	if err != nil {
		return model.Answer{}, err
	}

	a, err := scanAnswer(r.pool.QueryRow(ctx, getAnswerQuery, answerID))
	if err != nil {
		return model.Answer{}, fetchError("answer", err)
	}
	return a, nil
}

func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID model.EntityID) ([]model.Answer, error) {
	resolved, err := questionID.Resolve()
	if err != nil {
		return nil, err
	}

	return r.list(ctx, listAnswersByQuestionQuery, resolved)
}

func (r *AnswerRepository) ListAll(ctx context.Context) ([]model.Answer, error) {
	return r.list(ctx, listAllAnswersQuery)
}

func (r *AnswerRepository) list(ctx context.Context, query string, args ...any) ([]model.Answer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.NewDbError(errs.Access, "failed to list answers", err)
	}
	defer rows.Close()

	answers := make([]model.Answer, 0)
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, errs.NewDbError(errs.FromRow, "failed to map answer row", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewDbError(errs.Access, "failed to list answers", err)
	}

	return answers, nil
}

func (r *AnswerRepository) Delete(ctx context.Context, id model.EntityID) (uuid.UUID, error) {
	answerID, err := id.Resolve()
	if err != nil {
		return uuid.Nil, err
	}

	var deleted uuid.UUID
	err = withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var existing uuid.UUID
		if err := tx.QueryRow(ctx, lockAnswerQuery, answerID).Scan(&existing); err != nil {
			return lockError("answer", err)
		}

		if err := tx.QueryRow(ctx, deleteAnswerQuery, answerID).Scan(&deleted); err != nil {
			return errs.NewDbError(errs.Deletion, "failed to delete answer", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return deleted, nil
}

func (r *AnswerRepository) IncrementLikes(ctx context.Context, id model.EntityID) error {
	answerID, err := id.Resolve()
	if err != nil {
		return err
	}

	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var likes int64
		if err := tx.QueryRow(ctx, lockAnswerLikesQuery, answerID).Scan(&likes); err != nil {
			return lockError("answer", err)
		}

		if _, err := tx.Exec(ctx, updateAnswerLikesQuery, answerID, likes+1); err != nil {
			return errs.NewDbError(errs.Update, "failed to update answer likes", err)
		}
		return nil
	})
}
