package get

import (
	"log/slog"
	"net/http"

	"github.com/a-h/contexthelp/content"
	"github.com/a-h/contexthelp/models"
	"github.com/a-h/respond"
)

// PathValue is the name of the wildcard in the route pattern that holds the
// context identifier, e.g. "GET /assistant/{contextInfo...}".
const PathValue = "contextInfo"

func New(log *slog.Logger, resolver content.Resolver) Handler {
	return Handler{
		log:      log,
		resolver: resolver,
	}
}

type Handler struct {
	log      *slog.Logger
	resolver content.Resolver
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	contextID := r.PathValue(PathValue)

	article, ok, err := h.resolver.Resolve(r.Context(), contextID)
	if err != nil {
		h.log.Error("failed to resolve article", slog.String("context", contextID), slog.Any("error", err))
		respond.WithJSON(w, models.ErrorResponse{
			Error:   models.ErrorCodeProcessing,
			Message: "An error occurred while processing your request.",
		}, http.StatusInternalServerError)
		return
	}
	if !ok {
		h.log.Debug("article not found", slog.String("context", contextID))
		respond.WithError(w, "not found", http.StatusNotFound)
		return
	}

	// The response is always an array, to allow multiple articles per context.
	respond.WithJSON(w, []models.Article{
		{
			Title:   article.Title,
			Content: article.Content,
		},
	}, http.StatusOK)
}
