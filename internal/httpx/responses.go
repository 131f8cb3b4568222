package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-2xx response. Detail is a string
// for simple errors and a list of ErrorDetail for validation errors.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes v with the given status. A nil slice should be normalized by
// the caller if an empty array is expected.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func JSONSuccess(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

func JSONCreated(w http.ResponseWriter, v any) {
	JSON(w, http.StatusCreated, v)
}

func JSONError(w http.ResponseWriter, statusCode int, detail string) {
	JSON(w, statusCode, ErrorResponse{Detail: detail})
}

func JSONValidationError(w http.ResponseWriter, details []ErrorDetail) {
	if details == nil {
		details = []ErrorDetail{}
	}
	JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: details})
}

func InternalError(w http.ResponseWriter) {
	JSONError(w, http.StatusInternalServerError, "Internal server error")
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	JSONError(w, http.StatusNotFound, "Not Found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	JSONError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
