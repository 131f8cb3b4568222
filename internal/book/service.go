package book

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"bookreviews/internal/cache"
	"bookreviews/internal/logging"
	"bookreviews/internal/store"
)

// DefaultCacheTTL is passed to the cache when the books snapshot is written.
const DefaultCacheTTL = 60 * time.Second

// Service provides book-related business logic.
type Service struct {
	repo     Repository
	tx       store.Transactor
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewService creates a new book service. A zero ttl selects DefaultCacheTTL.
func NewService(repo Repository, tx store.Transactor, c cache.Cache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{repo: repo, tx: tx, cache: c, cacheTTL: ttl}
}

// List returns every book. The cached snapshot is served when present and
// non-empty; otherwise the database is read and the snapshot rewritten.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	ctx = logging.WithAttrs(ctx, slog.String("component", "book.service"))

	if cached, ok := s.cache.Get(ctx, BooksCacheKey); ok && cached != "" {
		var books []Book
		err := json.Unmarshal([]byte(cached), &books)
		if err == nil {
			logging.Info(ctx, "cache hit for books")
			return books, nil
		}
		logging.Warn(ctx, "cache unavailable or error, falling back to database", logging.Err(err))
	}

	var books []Book
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		books, err = s.repo.List(ctx)
		return err
	})
	if err != nil {
		logging.Error(ctx, "database query error", logging.Err(err))
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []Book{}
	}

	payload, err := json.Marshal(books)
	if err != nil {
		logging.Warn(ctx, "encode books snapshot", logging.Err(err))
		return books, nil
	}
	if !s.cache.Set(ctx, BooksCacheKey, string(payload), s.cacheTTL) {
		logging.Warn(ctx, "books cache not populated")
	}
	return books, nil
}

// Create stores a new book and then invalidates the books snapshot by
// overwriting it with "". The key itself is kept.
func (s *Service) Create(ctx context.Context, title, author string) (Book, error) {
	ctx = logging.WithAttrs(ctx, slog.String("component", "book.service"))

	b := Book{Title: title, Author: author}
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, &b)
	})
	if err != nil {
		return Book{}, fmt.Errorf("create book: %w", err)
	}

	if s.cache.Set(ctx, BooksCacheKey, "", s.cacheTTL) {
		logging.Info(ctx, "invalidated books cache after new book creation", slog.Int64("book_id", b.ID))
	} else {
		logging.Warn(ctx, "cache invalidation error", slog.Int64("book_id", b.ID))
	}
	return b, nil
}
