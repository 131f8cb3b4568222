package book

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"bookreviews/internal/cache"
)

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)

	t.Run("success", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(mockRepo, passthroughTx{}, cache.NewMemory(), 0))
		mockRepo.EXPECT().List(gomock.Any()).Return([]Book{{ID: 1, Title: "Dune", Author: "Herbert"}}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"title":"Dune","author":"Herbert"}]`, w.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(mockRepo, passthroughTx{}, cache.NewMemory(), 0))
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(mockRepo, passthroughTx{}, cache.NewMemory(), 0))
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"detail":"Internal server error"}`, w.Body.String())
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockRepository)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "created",
			body: `{"title":"Dune","author":"Herbert"}`,
			setupMock: func(m *MockRepository) {
				m.EXPECT().Create(gomock.Any(), &Book{Title: "Dune", Author: "Herbert"}).DoAndReturn(func(_ context.Context, b *Book) error {
					b.ID = 1
					return nil
				})
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":1,"title":"Dune","author":"Herbert"}`,
		},
		{
			name:           "missing author",
			body:           `{"title":"Dune"}`,
			setupMock:      func(m *MockRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"detail":[{"field":"author","message":"author is required"}]}`,
		},
		{
			name:           "wrong type",
			body:           `{"title":42,"author":"Herbert"}`,
			setupMock:      func(m *MockRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"detail":[{"field":"title","message":"title must be of type string"}]}`,
		},
		{
			name:           "array body",
			body:           `[]`,
			setupMock:      func(m *MockRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"detail":[{"field":"body","message":"body must be of type object"}]}`,
		},
		{
			name:           "trailing data",
			body:           `{"title":"a","author":"b"} trailing`,
			setupMock:      func(m *MockRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"detail":[{"field":"body","message":"invalid JSON"}]}`,
		},
		{
			name: "storage failure",
			body: `{"title":"Dune","author":"Herbert"}`,
			setupMock: func(m *MockRepository) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(context.Canceled)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := NewMockRepository(ctrl)
			tt.setupMock(mockRepo)
			handler := NewHTTPHandler(NewService(mockRepo, passthroughTx{}, cache.NewMemory(), 0))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")

			handler.Create(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
