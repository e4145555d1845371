package repository

import (
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/jackc/pgx/v5"
)

// Column lists must stay in the order the scan functions read them.
const (
	questionColumns = `id, title, question, likes, created_at`
	answerColumns   = `id, question_id, answer, likes, created_at`
)

func scanQuestion(row pgx.Row) (model.Question, error) {
	var q model.Question
	err := row.Scan(
		&q.ID,
		&q.Title,
		&q.Question,
		&q.Likes,
		&q.CreatedAt,
	)
	return q, err
}

func scanAnswer(row pgx.Row) (model.Answer, error) {
	var a model.Answer
	err := row.Scan(
		&a.ID,
		&a.QuestionID,
		&a.Answer,
		&a.Likes,
		&a.CreatedAt,
	)
	return a, err
}
