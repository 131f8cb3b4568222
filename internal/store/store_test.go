package store

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bookreviews/internal/logging"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestOpen_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	assert.True(t, db.Migrator().HasTable("books"))
	assert.True(t, db.Migrator().HasTable("reviews"))
	assert.True(t, db.Migrator().HasIndex(&ReviewRecord{}, "idx_book_id"))
	assert.NoError(t, Ping(context.Background(), db))

	// Running the migration again on an existing schema is a no-op.
	assert.NoError(t, Migrate(db))
}

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	db := openTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	err := uow.WithTx(ctx, func(ctx context.Context) error {
		return Conn(ctx, db).Create(&BookRecord{Title: "Dune", Author: "Herbert"}).Error
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = uow.WithTx(ctx, func(ctx context.Context) error {
		if err := Conn(ctx, db).Create(&BookRecord{Title: "Lost", Author: "Nobody"}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var records []BookRecord
	require.NoError(t, db.Order("id").Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, "Dune", records[0].Title)
}

func TestUnitOfWork_NestedJoinsOuterTx(t *testing.T) {
	db := openTestDB(t)
	uow := NewUnitOfWork(db)

	err := uow.WithTx(context.Background(), func(outer context.Context) error {
		return uow.WithTx(outer, func(inner context.Context) error {
			assert.Same(t, Conn(outer, db), Conn(inner, db))
			return nil
		})
	})
	assert.NoError(t, err)
}

func TestEnsureDirectory_SkipsMemory(t *testing.T) {
	assert.NoError(t, ensureDirectory(":memory:"))
	assert.NoError(t, ensureDirectory("file:test?mode=memory&cache=shared"))
	assert.NoError(t, ensureDirectory("book_reviews.db"))
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := logging.Logger()
	t.Cleanup(func() { logging.SetLogger(prev) })

	var buf bytes.Buffer
	logging.Setup(&buf, "debug", "json")
	return &buf
}

func TestGormLogger_RecordNotFoundIsSilent(t *testing.T) {
	db := openTestDB(t)
	logs := captureLogs(t)

	var rec BookRecord
	err := Conn(context.Background(), db).Where("id = ?", -1).Take(&rec).Error

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, logs.String())
}

func TestGormLogger_FailureUsesRequestLogger(t *testing.T) {
	db := openTestDB(t)
	logs := captureLogs(t)

	ctx := logging.WithAttrs(context.Background(), slog.String("request_id", "req-42"))
	err := Conn(ctx, db).Exec("SELECT * FROM missing_table").Error

	require.Error(t, err)
	out := logs.String()
	assert.Contains(t, out, `"msg":"query failed"`)
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"component":"gorm"`)
	assert.NotContains(t, out, "\x1b[")
}

func TestGormLogger_LogModeSilent(t *testing.T) {
	l := newGormLogger().LogMode(gormlogger.Silent)
	logs := captureLogs(t)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	assert.Empty(t, logs.String())
}
