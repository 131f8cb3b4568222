package book

import (
	"net/http"

	"bookreviews/internal/httpx"
	"bookreviews/internal/logging"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /books
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {array} Book
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.InternalError(w)
		return
	}
	httpx.JSONSuccess(w, books)
}

// Create handles POST /books
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Book"
// @Success 201 {object} Book
// @Failure 422 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if details := httpx.DecodeAndValidate(r, &req); len(details) > 0 {
		httpx.JSONValidationError(w, details)
		return
	}

	b, err := h.service.Create(r.Context(), *req.Title, *req.Author)
	if err != nil {
		logging.Error(r.Context(), "create book failed", logging.Err(err))
		httpx.InternalError(w)
		return
	}
	httpx.JSONCreated(w, b)
}
