package review

import (
	"context"
	"errors"
	"fmt"

	"bookreviews/internal/book"
	"bookreviews/internal/store"
)

type Service struct {
	repo  Repository
	books BookFinder
	tx    store.Transactor
}

func NewService(repo Repository, books BookFinder, tx store.Transactor) *Service {
	return &Service{repo: repo, books: books, tx: tx}
}

// ListByBook returns the reviews of bookID, or ErrBookNotFound.
func (s *Service) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	var reviews []Review
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.requireBook(ctx, bookID); err != nil {
			return err
		}
		var err error
		reviews, err = s.repo.ListByBook(ctx, bookID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []Review{}
	}
	return reviews, nil
}

// Create stores a review for bookID, or returns ErrBookNotFound.
func (s *Service) Create(ctx context.Context, bookID int64, rating float64, comment string) (Review, error) {
	rv := Review{BookID: bookID, Rating: rating, Comment: comment}
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.requireBook(ctx, bookID); err != nil {
			return err
		}
		return s.repo.Create(ctx, &rv)
	})
	if err != nil {
		return Review{}, err
	}
	return rv, nil
}

func (s *Service) requireBook(ctx context.Context, bookID int64) error {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return ErrBookNotFound
		}
		return fmt.Errorf("get book %d: %w", bookID, err)
	}
	return nil
}
