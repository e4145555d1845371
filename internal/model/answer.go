package model

import (
	"time"

	"github.com/google/uuid"
)

// NewAnswer is an answer received from a request.
//
// QuestionID is still the raw string from the payload; the repository
// resolves it before inserting.
type NewAnswer struct {
	QuestionID string `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

func (a *NewAnswer) Validate() error {
	return validate.Struct(a)
}

// QuestionEntityID wraps QuestionID for resolution.
func (a NewAnswer) QuestionEntityID() EntityID {
	return EntityID{Value: a.QuestionID}
}

// Answer is an answer that has been persisted.
type Answer struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	Answer     string    `json:"answer"`
	Likes      int64     `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
}
