package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"bookreviews/internal/book"
	"bookreviews/internal/cache"
	"bookreviews/internal/config"
	"bookreviews/internal/logging"
	"bookreviews/internal/review"
	"bookreviews/internal/store"
)

var (
	titles   = []string{"Dune", "Emma", "Ulysses", "Beloved", "Solaris", "Hyperion", "Middlemarch", "Neuromancer"}
	authors  = []string{"Herbert", "Austen", "Joyce", "Morrison", "Lem", "Simmons", "Eliot", "Gibson"}
	comments = []string{"Classic", "Great book!", "Hard to put down", "Not for me", "Uneven but rewarding"}
)

func main() {
	var (
		count   = flag.Int("count", 20, "number of books to insert")
		reviews = flag.Int("reviews", 3, "maximum reviews per book")
	)
	flag.Parse()

	if err := run(*count, *reviews); err != nil {
		logging.Error(context.Background(), "seed failed", logging.Err(err))
		os.Exit(1)
	}
}

func run(count, maxReviews int) error {
	if count < 0 || maxReviews < 0 {
		return errors.New("-count and -reviews must not be negative")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFmt)
	ctx := logging.WithAttrs(context.Background(), slog.String("component", "seed"))

	db, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(db) }()

	// The shared cache must see the invalidation writes, so use the configured backend.
	c, closeCache, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer func() { _ = closeCache() }()

	uow := store.NewUnitOfWork(db)
	bookRepository := book.NewGormRepo(db)
	bookService := book.NewService(bookRepository, uow, c, cfg.Cache.TTL)
	reviewService := review.NewService(review.NewGormRepo(db), bookRepository, uow)

	inserted, err := seed(ctx, bookService, reviewService, count, maxReviews)
	if err != nil {
		return err
	}

	logging.Info(ctx, "seed complete", slog.Int("books", count), slog.Int("reviews", inserted))
	return nil
}

// seed inserts count books, each with between 0 and maxReviews reviews,
// and returns the number of reviews written.
func seed(ctx context.Context, books *book.Service, reviews *review.Service, count, maxReviews int) (int, error) {
	inserted := 0
	for i := 0; i < count; i++ {
		title := fmt.Sprintf("%s %d", titles[rand.Intn(len(titles))], i+1)
		b, err := books.Create(ctx, title, authors[rand.Intn(len(authors))])
		if err != nil {
			return inserted, err
		}
		n := rand.Intn(maxReviews + 1)
		for j := 0; j < n; j++ {
			rating := float64(rand.Intn(9)+2) / 2
			if _, err := reviews.Create(ctx, b.ID, rating, comments[rand.Intn(len(comments))]); err != nil {
				return inserted, err
			}
			inserted++
		}
	}
	return inserted, nil
}
