package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	jwtlib "github.com/magabrotheeeer/todo-service/internal/lib/jwt"
	"github.com/magabrotheeeer/todo-service/internal/lib/password"
	"github.com/magabrotheeeer/todo-service/internal/models"
	"github.com/magabrotheeeer/todo-service/internal/storage/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) RegisterUser(ctx context.Context, user models.User) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockJWTMaker struct {
	mock.Mock
}

func (m *MockJWTMaker) GenerateToken(username string, userID int, role string) (string, error) {
	args := m.Called(username, userID, role)
	return args.String(0), args.Error(1)
}

func (m *MockJWTMaker) ParseToken(tokenStr string) (*jwtlib.CustomClaims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwtlib.CustomClaims), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	repo := new(MockUserRepository)
	maker := new(MockJWTMaker)
	service := NewAuthService(repo, maker)

	var stored models.User
	repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		stored = u
		return u.Username == "testuser"
	})).Return(1, nil)

	id, err := service.Register(context.Background(), models.DummyUser{
		Email:    "user@example.com",
		Username: "testuser",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, id)
	// Пароль хранится только как bcrypt-хэш
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, password.CompareHash(stored.PasswordHash, "secret123"))
	// Пустая роль в запросе означает роль по умолчанию
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.True(t, stored.IsActive)

	repo.AssertExpectations(t)
}

func TestAuthService_Register_KeepsRequestedRole(t *testing.T) {
	repo := new(MockUserRepository)
	maker := new(MockJWTMaker)
	service := NewAuthService(repo, maker)

	repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Role == models.RoleAdmin
	})).Return(2, nil)

	id, err := service.Register(context.Background(), models.DummyUser{
		Email:    "admin@example.com",
		Username: "boss",
		Password: "secret123",
		Role:     models.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, id)
	repo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	storedUser := &models.User{
		ID:           42,
		Username:     "testuser",
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	tests := []struct {
		name        string
		username    string
		rawPassword string
		setupMocks  func(*MockUserRepository, *MockJWTMaker)
		wantToken   string
		wantRole    string
		wantErr     error
	}{
		{
			name:        "успешный вход",
			username:    "testuser",
			rawPassword: "secret123",
			setupMocks: func(r *MockUserRepository, j *MockJWTMaker) {
				r.On("GetUserByUsername", mock.Anything, "testuser").Return(storedUser, nil)
				j.On("GenerateToken", "testuser", 42, models.RoleUser).Return("sometoken", nil)
			},
			wantToken: "sometoken",
			wantRole:  models.RoleUser,
		},
		{
			name:        "неверный пароль",
			username:    "testuser",
			rawPassword: "wrongpass",
			setupMocks: func(r *MockUserRepository, _ *MockJWTMaker) {
				r.On("GetUserByUsername", mock.Anything, "testuser").Return(storedUser, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:        "неизвестный пользователь",
			username:    "ghost",
			rawPassword: "secret123",
			setupMocks: func(r *MockUserRepository, _ *MockJWTMaker) {
				r.On("GetUserByUsername", mock.Anything, "ghost").
					Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:        "ошибка хранилища",
			username:    "testuser",
			rawPassword: "secret123",
			setupMocks: func(r *MockUserRepository, _ *MockJWTMaker) {
				r.On("GetUserByUsername", mock.Anything, "testuser").
					Return(nil, errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			maker := new(MockJWTMaker)
			tt.setupMocks(repo, maker)

			service := NewAuthService(repo, maker)

			token, role, err := service.Login(context.Background(), tt.username, tt.rawPassword)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidCredentials) {
					assert.ErrorIs(t, err, ErrInvalidCredentials)
				}
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantRole, role)

			repo.AssertExpectations(t)
			maker.AssertExpectations(t)
		})
	}
}
