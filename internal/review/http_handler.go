package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bookreviews/internal/httpx"
	"bookreviews/internal/logging"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /books/{book_id}/reviews
// @Summary List reviews of a book
// @Tags reviews
// @Produce json
// @Param book_id path int true "Book ID"
// @Success 200 {array} Review
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{book_id}/reviews [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	bookID, ok := bookIDParam(w, r)
	if !ok {
		return
	}

	reviews, err := h.service.ListByBook(r.Context(), bookID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, reviews)
}

// Create handles POST /books/{book_id}/reviews
// @Summary Create a review for a book
// @Tags reviews
// @Accept json
// @Produce json
// @Param book_id path int true "Book ID"
// @Param request body CreateRequest true "Review"
// @Success 201 {object} Review
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Router /books/{book_id}/reviews [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	bookID, ok := bookIDParam(w, r)
	if !ok {
		return
	}

	var req CreateRequest
	if details := httpx.DecodeAndValidate(r, &req); len(details) > 0 {
		httpx.JSONValidationError(w, details)
		return
	}

	rv, err := h.service.Create(r.Context(), bookID, *req.Rating, *req.Comment)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, rv)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrBookNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "Book not found")
		return
	}
	logging.Error(r.Context(), "review request failed", logging.Err(err))
	httpx.InternalError(w)
}

func bookIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "book_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONValidationError(w, []httpx.ErrorDetail{{Field: "book_id", Message: "book_id must be an integer"}})
		return 0, false
	}
	return id, true
}
