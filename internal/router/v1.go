package router

import (
	"net/http"

	"github.com/deppfellow/go-qna/internal/handler"
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/labstack/echo/v4"
)

func registerQuestionRoutes(g *echo.Group, h *handler.Handlers) {
	q := h.Questions
	questions := g.Group("/questions")

	questions.POST("", handler.Handle(q.Handler, q.CreateQuestion, http.StatusCreated, &model.NewQuestion{}))
	questions.GET("", handler.Handle(q.Handler, q.GetQuestions, http.StatusOK, &handler.ListRequest{}))
	questions.GET("/:id", handler.Handle(q.Handler, q.GetQuestion, http.StatusOK, &handler.IDRequest{}))
	questions.DELETE("/:id", handler.Handle(q.Handler, q.DeleteQuestion, http.StatusOK, &handler.IDRequest{}))
	questions.POST("/:id/likes", handler.HandleNoContent(q.Handler, q.LikeQuestion, http.StatusNoContent, &handler.IDRequest{}))
	questions.GET("/:id/answers", handler.Handle(q.Handler, q.GetQuestionAnswers, http.StatusOK, &handler.IDRequest{}))
}

func registerAnswerRoutes(g *echo.Group, h *handler.Handlers) {
	a := h.Answers
	answers := g.Group("/answers")

	answers.POST("", handler.Handle(a.Handler, a.CreateAnswer, http.StatusCreated, &model.NewAnswer{}))
	answers.GET("", handler.Handle(a.Handler, a.GetAnswers, http.StatusOK, &handler.ListRequest{}))
	answers.GET("/:id", handler.Handle(a.Handler, a.GetAnswer, http.StatusOK, &handler.IDRequest{}))
	answers.DELETE("/:id", handler.Handle(a.Handler, a.DeleteAnswer, http.StatusOK, &handler.IDRequest{}))
	answers.POST("/:id/likes", handler.HandleNoContent(a.Handler, a.LikeAnswer, http.StatusNoContent, &handler.IDRequest{}))
}
