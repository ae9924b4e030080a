package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/todo-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/todo-service/internal/lib/policy"
	"github.com/magabrotheeeer/todo-service/internal/models"
	"github.com/magabrotheeeer/todo-service/internal/storage/repository"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, identity policy.Identity, id int) (*models.ToDo, error) {
	args := m.Called(ctx, identity, id)
	if res := args.Get(0); res != nil {
		return res.(*models.ToDo), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	identity := policy.Identity{UserID: 42, Username: "testuser", Role: "user"}

	tests := []struct {
		name           string
		urlID          string
		withAuth       bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное чтение задачи",
			urlID:    "123",
			withAuth: true,
			setupMock: func(m *MockService) {
				todo := &models.ToDo{
					ID:          123,
					Title:       "buy milk",
					Description: "two liters",
					Priority:    3,
					OwnerID:     42,
				}
				m.On("Read", mock.Anything, identity, 123).Return(todo, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"buy milk"`,
		},
		{
			name:           "некорректный id в URL",
			urlID:          "abc",
			withAuth:       true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `failed to decode id from url`,
		},
		{
			name:     "чужая или несуществующая задача",
			urlID:    "777",
			withAuth: true,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, identity, 777).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `todo not found`,
		},
		{
			name:           "нет identity в контексте",
			urlID:          "123",
			withAuth:       false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `unauthorized`,
		},
		{
			name:     "ошибка сервиса чтения",
			urlID:    "555",
			withAuth: true,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, identity, 555).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not read todo`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/todo/"+tt.urlID, nil)
			// Устанавливаем URL params с помощью роутера chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.urlID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			if tt.withAuth {
				ctx := context.WithValue(req.Context(), middlewarectx.User, identity.Username)
				ctx = context.WithValue(ctx, middlewarectx.UserID, identity.UserID)
				ctx = context.WithValue(ctx, middlewarectx.Role, identity.Role)
				req = req.WithContext(ctx)
			}

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
