package service

import (
	"context"

	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/repository"
	"github.com/deppfellow/go-qna/internal/server"
	"github.com/google/uuid"
)

type AnswerService struct {
	server  *server.Server
	answers repository.AnswerDao
}

func NewAnswerService(s *server.Server, answers repository.AnswerDao) *AnswerService {
	return &AnswerService{
		server:  s,
		answers: answers,
	}
}

// Create stores an answer. An unknown question id fails with a Creation
// error wrapping the foreign key violation.
func (as *AnswerService) Create(ctx context.Context, newAnswer model.NewAnswer) (uuid.UUID, error) {
	id, err := as.answers.Create(ctx, newAnswer)
	if err != nil {
		return uuid.Nil, failed(ctx, as.server, "create_answer", newAnswer.QuestionID, err)
	}

	loggerFor(ctx, as.server).Info().
		Str("operation", "create_answer").
		Str("id", id.String()).
		Str("question_id", newAnswer.QuestionID).
		Msg("answer created")

	return id, nil
}

func (as *AnswerService) Get(ctx context.Context, id string) (model.Answer, error) {
	answer, err := as.answers.Get(ctx, model.NewEntityID(id))
	if err != nil {
		return model.Answer{}, failed(ctx, as.server, "get_answer", id, err)
	}
	return answer, nil
}

// ListByQuestion returns the answers of one question; an unknown question
// has no answers.
func (as *AnswerService) ListByQuestion(ctx context.Context, questionID string) ([]model.Answer, error) {
	answers, err := as.answers.ListByQuestion(ctx, model.NewEntityID(questionID))
	if err != nil {
		return nil, failed(ctx, as.server, "list_answers_by_question", questionID, err)
	}
	return answers, nil
}

func (as *AnswerService) ListAll(ctx context.Context) ([]model.Answer, error) {
	answers, err := as.answers.ListAll(ctx)
	if err != nil {
		return nil, failed(ctx, as.server, "list_answers", "", err)
	}
	return answers, nil
}

func (as *AnswerService) Delete(ctx context.Context, id string) (uuid.UUID, error) {
	deleted, err := as.answers.Delete(ctx, model.NewEntityID(id))
	if err != nil {
		return uuid.Nil, failed(ctx, as.server, "delete_answer", id, err)
	}

	loggerFor(ctx, as.server).Info().
		Str("operation", "delete_answer").
		Str("id", deleted.String()).
		Msg("answer deleted")

	return deleted, nil
}

func (as *AnswerService) Like(ctx context.Context, id string) error {
	if err := as.answers.IncrementLikes(ctx, model.NewEntityID(id)); err != nil {
		return failed(ctx, as.server, "like_answer", id, err)
	}
	return nil
}
