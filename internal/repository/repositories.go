package repository

import (
	"github.com/deppfellow/go-qna/internal/server"
)

// Repositories groups every repository so services receive one object.
type Repositories struct {
	Questions *QuestionRepository
	Answers   *AnswerRepository
}

// NewRepositories builds all repositories on top of the shared pool in s.DB.
// The pool handle is only read, never reconfigured.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Questions: NewQuestionRepository(s.DB.Pool),
		Answers:   NewAnswerRepository(s.DB.Pool),
	}
}
