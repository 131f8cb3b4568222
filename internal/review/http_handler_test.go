package review

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"bookreviews/internal/book"
)

func withBookID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("book_id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHTTPHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		bookID         string
		setupMock      func(repo *MockRepository, books *MockBookFinder)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "success",
			bookID: "1",
			setupMock: func(repo *MockRepository, books *MockBookFinder) {
				books.EXPECT().GetByID(gomock.Any(), int64(1)).Return(book.Book{ID: 1}, nil)
				repo.EXPECT().ListByBook(gomock.Any(), int64(1)).Return([]Review{{ID: 1, BookID: 1, Rating: 4.5, Comment: "Great book!"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":1,"book_id":1,"rating":4.5,"comment":"Great book!"}]`,
		},
		{
			name:   "book not found",
			bookID: "999",
			setupMock: func(repo *MockRepository, books *MockBookFinder) {
				books.EXPECT().GetByID(gomock.Any(), int64(999)).Return(book.Book{}, book.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"Book not found"}`,
		},
		{
			name:           "non-integer id",
			bookID:         "abc",
			setupMock:      func(repo *MockRepository, books *MockBookFinder) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "storage failure",
			bookID: "1",
			setupMock: func(repo *MockRepository, books *MockBookFinder) {
				books.EXPECT().GetByID(gomock.Any(), int64(1)).Return(book.Book{ID: 1}, nil)
				repo.EXPECT().ListByBook(gomock.Any(), int64(1)).Return(nil, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepository(ctrl)
			books := NewMockBookFinder(ctrl)
			tt.setupMock(repo, books)
			handler := NewHTTPHandler(NewService(repo, books, passthroughTx{}))

			w := httptest.NewRecorder()
			r := withBookID(httptest.NewRequest(http.MethodGet, "/books/"+tt.bookID+"/reviews", nil), tt.bookID)

			handler.List(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHTTPHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		bookID         string
		body           string
		setupMock      func(repo *MockRepository, books *MockBookFinder)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "created",
			bookID: "1",
			body:   `{"rating":5.0,"comment":"Classic"}`,
			setupMock: func(repo *MockRepository, books *MockBookFinder) {
				books.EXPECT().GetByID(gomock.Any(), int64(1)).Return(book.Book{ID: 1}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rv *Review) error {
					rv.ID = 1
					return nil
				})
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":1,"book_id":1,"rating":5.0,"comment":"Classic"}`,
		},
		{
			name:   "book not found",
			bookID: "999",
			body:   `{"rating":4.5,"comment":"Great book!"}`,
			setupMock: func(repo *MockRepository, books *MockBookFinder) {
				books.EXPECT().GetByID(gomock.Any(), int64(999)).Return(book.Book{}, book.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"Book not found"}`,
		},
		{
			name:           "rating is not a number",
			bookID:         "1",
			body:           `{"rating":"five","comment":"Classic"}`,
			setupMock:      func(repo *MockRepository, books *MockBookFinder) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "missing comment",
			bookID:         "1",
			body:           `{"rating":3}`,
			setupMock:      func(repo *MockRepository, books *MockBookFinder) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"detail":[{"field":"comment","message":"comment is required"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepository(ctrl)
			books := NewMockBookFinder(ctrl)
			tt.setupMock(repo, books)
			handler := NewHTTPHandler(NewService(repo, books, passthroughTx{}))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/books/"+tt.bookID+"/reviews", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			r = withBookID(r, tt.bookID)

			handler.Create(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
