package service

import (
	"context"

	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/repository"
	"github.com/deppfellow/go-qna/internal/server"
	"github.com/google/uuid"
)

type QuestionService struct {
	server    *server.Server
	questions repository.QuestionDao
}

func NewQuestionService(s *server.Server, questions repository.QuestionDao) *QuestionService {
	return &QuestionService{
		server:    s,
		questions: questions,
	}
}

func (qs *QuestionService) Create(ctx context.Context, newQuestion model.NewQuestion) (uuid.UUID, error) {
	id, err := qs.questions.Create(ctx, newQuestion)
	if err != nil {
		return uuid.Nil, failed(ctx, qs.server, "create_question", "", err)
	}

	loggerFor(ctx, qs.server).Info().
		Str("operation", "create_question").
		Str("id", id.String()).
		Msg("question created")

	return id, nil
}

func (qs *QuestionService) Get(ctx context.Context, id string) (model.Question, error) {
	question, err := qs.questions.Get(ctx, model.NewEntityID(id))
	if err != nil {
		return model.Question{}, failed(ctx, qs.server, "get_question", id, err)
	}
	return question, nil
}

func (qs *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	questions, err := qs.questions.List(ctx)
	if err != nil {
		return nil, failed(ctx, qs.server, "list_questions", "", err)
	}
	return questions, nil
}

func (qs *QuestionService) Delete(ctx context.Context, id string) (uuid.UUID, error) {
	deleted, err := qs.questions.Delete(ctx, model.NewEntityID(id))
	if err != nil {
		return uuid.Nil, failed(ctx, qs.server, "delete_question", id, err)
	}

	loggerFor(ctx, qs.server).Info().
		Str("operation", "delete_question").
		Str("id", deleted.String()).
		Msg("question deleted")

	return deleted, nil
}

// Like adds one like to the question.
func (qs *QuestionService) Like(ctx context.Context, id string) error {
	if err := qs.questions.IncrementLikes(ctx, model.NewEntityID(id)); err != nil {
		return failed(ctx, qs.server, "like_question", id, err)
	}
	return nil
}
