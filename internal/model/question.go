package model

import (
	"time"

	"github.com/google/uuid"
)

// NewQuestion is a question received from a request, not yet persisted.
type NewQuestion struct {
	Title    string `json:"title" validate:"required"`
	Question string `json:"question" validate:"required"`
}

func (q *NewQuestion) Validate() error {
	return validate.Struct(q)
}

// Question is a question that has been persisted.
//
// ID and CreatedAt are assigned by the database on insert. Likes only
// grows, through QuestionDao.IncrementLikes.
type Question struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Question  string    `json:"question"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}
