package store

// BookRecord is the storage row for a book.
type BookRecord struct {
	ID     int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Title  string `gorm:"column:title;type:text;index"`
	Author string `gorm:"column:author;type:text"`
}

func (BookRecord) TableName() string {
	return "books"
}

// ReviewRecord is the storage row for a review. BookID references books.id;
// existence is checked by the caller, not by a storage constraint.
type ReviewRecord struct {
	ID      int64   `gorm:"column:id;primaryKey;autoIncrement"`
	BookID  int64   `gorm:"column:book_id;index:idx_book_id"`
	Rating  float64 `gorm:"column:rating"`
	Comment string  `gorm:"column:comment;type:text"`
}

func (ReviewRecord) TableName() string {
	return "reviews"
}
