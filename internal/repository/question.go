package repository

import (
	"context"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertQuestionQuery = `
	INSERT INTO questions (title, question)
	VALUES ($1, $2)
	RETURNING id;
	`

	getQuestionQuery = `
	SELECT ` + questionColumns + `
	FROM questions
	WHERE id = $1;
	`

	listQuestionsQuery = `
	SELECT ` + questionColumns + `
	FROM questions
	ORDER BY created_at, id;
	`

	lockQuestionQuery = `
	SELECT id
	FROM questions
	WHERE id = $1
	FOR UPDATE;
	`

	deleteQuestionQuery = `
	DELETE FROM questions
	WHERE id = $1
	RETURNING id;
	`

	lockQuestionLikesQuery = `
	SELECT likes
	FROM questions
	WHERE id = $1
	FOR UPDATE;
	`

	updateQuestionLikesQuery = `
	UPDATE questions
	SET likes = $2
	WHERE id = $1;
	`
)

// QuestionRepository implements QuestionDao on PostgreSQL.
type QuestionRepository struct {
	pool Pool
}

var _ QuestionDao = (*QuestionRepository)(nil)

func NewQuestionRepository(pool Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func (r *QuestionRepository) Create(ctx context.Context, newQuestion model.NewQuestion) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, insertQuestionQuery, newQuestion.Title, newQuestion.Question).Scan(&id)
	if err != nil {
		return uuid.Nil, errs.NewDbError(errs.Creation, "failed to create question", err)
	}
	return id, nil
}

func (r *QuestionRepository) Get(ctx context.Context, id model.EntityID) (model.Question, error) {
	questionID, err := id.Resolve()
	if err != nil {
		return model.Question{}, err
	}

	q, err := scanQuestion(r.pool.QueryRow(ctx, getQuestionQuery, questionID))
	if err != nil {
		return model.Question{}, fetchError("question", err)
	}
	return q, nil
}

func (r *QuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx, listQuestionsQuery)
	if err != nil {
		return nil, errs.NewDbError(errs.Access, "failed to list questions", err)
	}
	defer rows.Close()

	questions := make([]model.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, errs.NewDbError(errs.FromRow, "failed to map question row", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewDbError(errs.Access, "failed to list questions", err)
	}

	return questions, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id model.EntityID) (uuid.UUID, error) {
	questionID, err := id.Resolve()
	if err != nil {
		return uuid.Nil, err
	}

	var deleted uuid.UUID
	err = withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var existing uuid.UUID
		if err := tx.QueryRow(ctx, lockQuestionQuery, questionID).Scan(&existing); err != nil {
			return lockError("question", err)
		}

		if err := tx.QueryRow(ctx, deleteQuestionQuery, questionID).Scan(&deleted); err != nil {
			return errs.NewDbError(errs.Deletion, "failed to delete question", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return deleted, nil
}

func (r *QuestionRepository) IncrementLikes(ctx context.Context, id model.EntityID) error {
	questionID, err := id.Resolve()
	if err != nil {
		return err
	}

	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var likes int64
		if err := tx.QueryRow(ctx, lockQuestionLikesQuery, questionID).Scan(&likes); err != nil {
			return lockError("question", err)
		}

		if _, err := tx.Exec(ctx, updateQuestionLikesQuery, questionID, likes+1); err != nil {
			return errs.NewDbError(errs.Update, "failed to update question likes", err)
		}
		return nil
	})
}
