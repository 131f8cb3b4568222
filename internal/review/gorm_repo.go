package review

import (
	"context"

	"gorm.io/gorm"

	"bookreviews/internal/store"
)

type GormRepo struct {
	db *gorm.DB
}

var _ Repository = (*GormRepo)(nil)

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

func (r *GormRepo) Create(ctx context.Context, rv *Review) error {
	rec := store.ReviewRecord{BookID: rv.BookID, Rating: rv.Rating, Comment: rv.Comment}
	if err := store.Conn(ctx, r.db).Create(&rec).Error; err != nil {
		return err
	}
	*rv = fromRecord(rec)
	return nil
}

func (r *GormRepo) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	var recs []store.ReviewRecord
	err := store.Conn(ctx, r.db).
		Where("book_id = ?", bookID).
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]Review, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

func fromRecord(rec store.ReviewRecord) Review {
	return Review{ID: rec.ID, BookID: rec.BookID, Rating: rec.Rating, Comment: rec.Comment}
}
