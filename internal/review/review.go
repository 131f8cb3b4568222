package review

import (
	"errors"
)

// ErrBookNotFound is returned when the referenced book does not exist.
var ErrBookNotFound = errors.New("book not found")

// Review is the response shape of a stored review.
type Review struct {
	ID      int64   `json:"id"`
	BookID  int64   `json:"book_id"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// CreateRequest is the body of POST /books/{book_id}/reviews.
type CreateRequest struct {
	Rating  *float64 `json:"rating" validate:"required"`
	Comment *string  `json:"comment" validate:"required"`
}
