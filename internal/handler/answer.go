package handler

import (
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/server"
	"github.com/deppfellow/go-qna/internal/service"
	"github.com/labstack/echo/v4"
)

type AnswerHandler struct {
	Handler
	answers *service.AnswerService
}

func NewAnswerHandler(s *server.Server, answers *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		Handler: NewHandler(s),
		answers: answers,
	}
}

func (h *AnswerHandler) CreateAnswer(c echo.Context, req *model.NewAnswer) (IDResponse, error) {
	id, err := h.answers.Create(c.Request().Context(), *req)
	if err != nil {
		return IDResponse{}, err
	}
	return IDResponse{ID: id}, nil
}

func (h *AnswerHandler) GetAnswers(c echo.Context, _ *ListRequest) ([]model.Answer, error) {
	return h.answers.ListAll(c.Request().Context())
}

func (h *AnswerHandler) GetAnswer(c echo.Context, req *IDRequest) (model.Answer, error) {
	return h.answers.Get(c.Request().Context(), req.ID)
}

func (h *AnswerHandler) DeleteAnswer(c echo.Context, req *IDRequest) (IDResponse, error) {
	id, err := h.answers.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return IDResponse{}, err
	}
	return IDResponse{ID: id}, nil
}

func (h *AnswerHandler) LikeAnswer(c echo.Context, req *IDRequest) error {
	return h.answers.Like(c.Request().Context(), req.ID)
}
