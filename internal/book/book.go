package book

import (
	"errors"
)

// BooksCacheKey holds the JSON snapshot of every book served by List.
const BooksCacheKey = "books_all"

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book is the response shape of a stored book.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// CreateRequest is the body of POST /books. Fields are pointers so that a
// missing field can be told apart from an empty string.
type CreateRequest struct {
	Title  *string `json:"title" validate:"required"`
	Author *string `json:"author" validate:"required"`
}
