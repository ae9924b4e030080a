package adminremove

import (
	"context"
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
	todoservice "github.com/magabrotheeeer/todo-service/internal/services/todo"
	"github.com/magabrotheeeer/todo-service/internal/storage/repository"
)

// MockService реализует интерфейс adminremove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AdminRemove(ctx context.Context, identity policy.Identity, id int) (int, error) {
	args := m.Called(ctx, identity, id)
	return args.Int(0), args.Error(1)
}

func TestAdminRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	admin := policy.Identity{UserID: 7, Username: "boss", Role: "admin"}
	user := policy.Identity{UserID: 42, Username: "testuser", Role: "user"}

	tests := []struct {
		name           string
		urlID          string
		identity       policy.Identity
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "админ удаляет чужую задачу",
			urlID:    "123",
			identity: admin,
			setupMock: func(m *MockService) {
				m.On("AdminRemove", mock.Anything, admin, 123).Return(1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"deleted_count":1`,
		},
		{
			name:     "обычный пользователь получает отказ",
			urlID:    "123",
			identity: user,
			setupMock: func(m *MockService) {
				m.On("AdminRemove", mock.Anything, user, 123).
					Return(0, todoservice.ErrAccessDenied)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `unauthorized`,
		},
		{
			name:     "задача не найдена",
			urlID:    "777",
			identity: admin,
			setupMock: func(m *MockService) {
				m.On("AdminRemove", mock.Anything, admin, 777).
					Return(0, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `todo not found`,
		},
		{
			name:           "некорректный id в URL",
			urlID:          "abc",
			identity:       admin,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid id`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/admin/todo/"+tt.urlID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.urlID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middlewarectx.User, tt.identity.Username)
			ctx = context.WithValue(ctx, middlewarectx.UserID, tt.identity.UserID)
			ctx = context.WithValue(ctx, middlewarectx.Role, tt.identity.Role)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
