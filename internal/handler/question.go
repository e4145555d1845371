package handler

import (
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/server"
	"github.com/deppfellow/go-qna/internal/service"
	"github.com/labstack/echo/v4"
)

type QuestionHandler struct {
	Handler
	questions *service.QuestionService
	answers   *service.AnswerService
}

func NewQuestionHandler(s *server.Server, questions *service.QuestionService, answers *service.AnswerService) *QuestionHandler {
	return &QuestionHandler{
		Handler:   NewHandler(s),
		questions: questions,
		answers:   answers,
	}
}

func (h *QuestionHandler) CreateQuestion(c echo.Context, req *model.NewQuestion) (IDResponse, error) {
	id, err := h.questions.Create(c.Request().Context(), *req)
	if err != nil {
		return IDResponse{}, err
	}
	return IDResponse{ID: id}, nil
}

func (h *QuestionHandler) GetQuestions(c echo.Context, _ *ListRequest) ([]model.Question, error) {
	return h.questions.List(c.Request().Context())
}

func (h *QuestionHandler) GetQuestion(c echo.Context, req *IDRequest) (model.Question, error) {
	return h.questions.Get(c.Request().Context(), req.ID)
}

func (h *QuestionHandler) DeleteQuestion(c echo.Context, req *IDRequest) (IDResponse, error) {
	id, err := h.questions.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return IDResponse{}, err
	}
	return IDResponse{ID: id}, nil
}

func (h *QuestionHandler) LikeQuestion(c echo.Context, req *IDRequest) error {
	return h.questions.Like(c.Request().Context(), req.ID)
}

// GetQuestionAnswers lists the answers of the question in :id.
func (h *QuestionHandler) GetQuestionAnswers(c echo.Context, req *IDRequest) ([]model.Answer, error) {
	return h.answers.ListByQuestion(c.Request().Context(), req.ID)
}
