package book

import (
	"context"
	"errors"

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

func (r *GormRepo) Create(ctx context.Context, b *Book) error {
	rec := store.BookRecord{Title: b.Title, Author: b.Author}
	if err := store.Conn(ctx, r.db).Create(&rec).Error; err != nil {
		return err
	}
	*b = fromRecord(rec)
	return nil
}

func (r *GormRepo) List(ctx context.Context) ([]Book, error) {
	var recs []store.BookRecord
	if err := store.Conn(ctx, r.db).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]Book, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

func (r *GormRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	var rec store.BookRecord
	err := store.Conn(ctx, r.db).Where("id = ?", id).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return fromRecord(rec), nil
}

func fromRecord(rec store.BookRecord) Book {
	return Book{ID: rec.ID, Title: rec.Title, Author: rec.Author}
}
