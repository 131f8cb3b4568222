package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bookreviews/internal/store"
)

// OpenDB opens a fresh sqlite database in a temp dir with the schema applied.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "book_reviews.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(db) })
	return db
}

// NewRequest creates a new HTTP request for testing. A string body is sent
// as-is; anything else is JSON encoded.
func NewRequest(method, path string, body any) *http.Request {
	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	default:
		raw, _ = json.Marshal(b)
	}

	if raw == nil {
		return httptest.NewRequest(method, path, nil)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// Serve runs r through h and returns the recorded response.
func Serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}
