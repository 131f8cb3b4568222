package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"bookreviews/internal/book"
	"bookreviews/internal/cache"
	"bookreviews/internal/config"
	"bookreviews/internal/httpx"
	"bookreviews/internal/review"
	"bookreviews/internal/store"
)

type app struct {
	router      http.Handler
	rateLimiter *httpx.RateLimiter
}

func (a *app) Close() {
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
}

func newApp(cfg config.Config, db *gorm.DB, c cache.Cache) *app {
	uow := store.NewUnitOfWork(db)

	bookRepository := book.NewGormRepo(db)
	reviewRepository := review.NewGormRepo(db)

	bookService := book.NewService(bookRepository, uow, c, cfg.Cache.TTL)
	reviewService := review.NewService(reviewRepository, bookRepository, uow)

	bookHandler := book.NewHTTPHandler(bookService)
	reviewHandler := review.NewHTTPHandler(reviewService)

	a := &app{}

	router := chi.NewRouter()
	router.Use(
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
	)
	if cfg.RateLimitRPS > 0 {
		a.rateLimiter = httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		router.Use(a.rateLimiter.Middleware)
	}
	if cfg.MaxBodyBytes > 0 {
		router.Use(httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	}

	router.NotFound(httpx.NotFound)
	router.MethodNotAllowed(httpx.MethodNotAllowed)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := store.Ping(ctx, db); err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "db not ready")
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Get("/books", bookHandler.List)
	router.Post("/books", bookHandler.Create)
	router.Get("/books/{book_id}/reviews", reviewHandler.List)
	router.Post("/books/{book_id}/reviews", reviewHandler.Create)

	a.router = router
	return a
}
