package catalog

import (
	"errors"
	"net/http"

	"paperapi/internal/httpx"
	"paperapi/internal/paper"

	"github.com/rs/zerolog"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// List handles GET /api/papers
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, r, http.StatusOK, h.svc.List(r.Context()))
}

// Search handles GET /api/search-papers?query=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("query")

	papers, err := h.svc.Search(r.Context(), term)
	switch {
	case err == nil:
		httpx.JSON(w, r, http.StatusOK, papers)
	case errors.Is(err, paper.ErrValidation):
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "Query parameter is missing", nil)
	case errors.Is(err, paper.ErrNotFound):
		zerolog.Ctx(r.Context()).Debug().Str("query", term).Msg("search matched nothing")
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "No such article found", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, httpx.CodeInternal, "Internal server error", nil)
	}
}
