package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookreviews/internal/book"
	"bookreviews/internal/store"
	"bookreviews/internal/testutil"
)

func TestGormRepo_CreateAndListByBook(t *testing.T) {
	db := testutil.OpenDB(t)

	ctx := context.Background()
	books := book.NewGormRepo(db)
	repo := NewGormRepo(db)

	dune := book.Book{Title: "Dune", Author: "Herbert"}
	require.NoError(t, books.Create(ctx, &dune))
	emma := book.Book{Title: "Emma", Author: "Austen"}
	require.NoError(t, books.Create(ctx, &emma))

	first := Review{BookID: dune.ID, Rating: 5, Comment: "Classic"}
	require.NoError(t, repo.Create(ctx, &first))
	other := Review{BookID: emma.ID, Rating: 3.5, Comment: "Fine"}
	require.NoError(t, repo.Create(ctx, &other))
	second := Review{BookID: dune.ID, Rating: 4.5, Comment: "Great book!"}
	require.NoError(t, repo.Create(ctx, &second))

	assert.Equal(t, int64(1), first.ID)

	reviews, err := repo.ListByBook(ctx, dune.ID)
	require.NoError(t, err)
	assert.Equal(t, []Review{first, second}, reviews)

	reviews, err = repo.ListByBook(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestService_WithUnitOfWork(t *testing.T) {
	db := testutil.OpenDB(t)

	ctx := context.Background()
	books := book.NewGormRepo(db)
	service := NewService(NewGormRepo(db), books, store.NewUnitOfWork(db))

	_, err := service.Create(ctx, 1, 4, "orphan")
	assert.ErrorIs(t, err, ErrBookNotFound)

	dune := book.Book{Title: "Dune", Author: "Herbert"}
	require.NoError(t, books.Create(ctx, &dune))

	rv, err := service.Create(ctx, dune.ID, 4, "ok")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rv.ID, "rejected review left no row behind")

	reviews, err := service.ListByBook(ctx, dune.ID)
	require.NoError(t, err)
	assert.Equal(t, []Review{rv}, reviews)
}
