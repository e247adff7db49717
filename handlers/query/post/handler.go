package post

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/contexthelp/answer"
	"github.com/a-h/contexthelp/models"
	"github.com/a-h/respond"
)

func New(log *slog.Logger, answerer answer.Answerer) Handler {
	return Handler{
		log:      log,
		answerer: answerer,
	}
}

type Handler struct {
	log      *slog.Logger
	answerer answer.Answerer
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.QuestionRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.log.Warn("failed to decode body", slog.Any("error", err))
		respond.WithJSON(w, models.ErrorResponse{
			Error:   models.ErrorCodeValidation,
			Message: "Request body must be a JSON object.",
		}, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respond.WithJSON(w, models.ErrorResponse{
			Error:   models.ErrorCodeValidation,
			Message: "The question field is required.",
		}, http.StatusBadRequest)
		return
	}

	a, err := h.answerer.Answer(r.Context(), req.Question, req.Context)
	if err != nil {
		h.logAnswerError(req, err)
		respond.WithJSON(w, models.ErrorResponse{
			Error:   models.ErrorCodeProcessing,
			Message: "An error occurred while processing your question.",
		}, http.StatusInternalServerError)
		return
	}

	respond.WithJSON(w, models.QuestionResponse{
		Question: req.Question,
		Answer:   a,
	}, http.StatusOK)
}

func (h Handler) logAnswerError(req models.QuestionRequest, err error) {
	attrs := []any{slog.String("context", req.Context), slog.Any("error", err)}
	switch {
	case errors.Is(err, answer.ErrTimeout):
		h.log.Error("answer timed out", attrs...)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.log.Warn("question cancelled by caller", attrs...)
	case errors.Is(err, answer.ErrConfiguration):
		h.log.Error("answerer is not configured", attrs...)
	default:
		h.log.Error("failed to generate answer", attrs...)
	}
}
