package saved

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"paperapi/internal/httpx"
	"paperapi/internal/paper"

	"github.com/rs/zerolog"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /api/saved-papers
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	papers, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSON(w, r, http.StatusOK, papers)
}

// Save handles POST /api/saved-papers
func (h *HTTPHandler) Save(w http.ResponseWriter, r *http.Request) {
	input, err := decodePaper(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, httpx.CodeTooLarge, "Request body too large", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "Invalid paper data", nil)
		return
	}

	papers, err := h.service.Save(r.Context(), input)
	if err != nil {
		if errors.Is(err, paper.ErrValidation) {
			httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeValidation, "Invalid paper data", paper.FieldsOf(err))
			return
		}
		h.internalError(w, r, err)
		return
	}

	httpx.JSON(w, r, http.StatusCreated, papers)
}

// Remove handles DELETE /api/saved-papers/{id}
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	papers, err := h.service.Remove(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, paper.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Paper not found", nil)
			return
		}
		h.internalError(w, r, err)
		return
	}

	httpx.JSON(w, r, http.StatusOK, papers)
}

// decodePaper reads exactly one JSON object from body. Anything after it,
// including a second object, is rejected.
func decodePaper(body io.Reader) (paper.Paper, error) {
	var p paper.Paper
	dec := json.NewDecoder(body)
	if err := dec.Decode(&p); err != nil {
		return paper.Paper{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after paper object")
		}
		return paper.Paper{}, err
	}
	return p, nil
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("saved papers backend failure")
	httpx.JSONError(w, r, http.StatusInternalServerError, httpx.CodeInternal, "Internal server error", nil)
}
