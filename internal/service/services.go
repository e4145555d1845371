// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/go-qna/internal/repository"
	"github.com/deppfellow/go-qna/internal/server"
)

type Services struct {
	Questions *QuestionService
	Answers   *AnswerService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Questions: NewQuestionService(s, repos.Questions),
		Answers:   NewAnswerService(s, repos.Answers),
	}, nil
}
