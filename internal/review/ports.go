package review

import (
	"context"

	"bookreviews/internal/book"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=review

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	ListByBook(ctx context.Context, bookID int64) ([]Review, error)
}

// BookFinder looks up the book a review belongs to. book.Repository satisfies it.
type BookFinder interface {
	GetByID(ctx context.Context, id int64) (book.Book, error)
}
