package handler

import (
	"github.com/deppfellow/go-qna/internal/server"
	"github.com/deppfellow/go-qna/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health    *HealthHandler
	Questions *QuestionHandler
	Answers   *AnswerHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		Questions: NewQuestionHandler(s, services.Questions, services.Answers),
		Answers:   NewAnswerHandler(s, services.Answers),
	}
}
