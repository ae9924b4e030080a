// Package services содержит бизнес-логику операций над профилем пользователя.
package services

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/todo-service/internal/lib/password"
	"github.com/magabrotheeeer/todo-service/internal/models"
	authservice "github.com/magabrotheeeer/todo-service/internal/services/auth"
)

// UserRepository описывает контракт хранилища для операций над профилем.
type UserRepository interface {
	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, userID int) (*models.User, error)
	// GetUserProfile возвращает пользователя вместе с привязанным адресом.
	GetUserProfile(ctx context.Context, userID int) (*models.UserProfile, error)
	// UpdatePassword заменяет хэш пароля пользователя.
	UpdatePassword(ctx context.Context, userID int, newHash string) (int, error)
}

// UserService реализует чтение профиля и смену пароля.
type UserService struct {
	repo UserRepository
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Profile возвращает профиль вызывающего пользователя вместе с адресом.
func (s *UserService) Profile(ctx context.Context, userID int) (*models.UserProfile, error) {
	return s.repo.GetUserProfile(ctx, userID)
}

// ChangePassword проверяет старый пароль и сохраняет хэш нового.
// Неверный старый пароль даёт ErrInvalidCredentials.
func (s *UserService) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	const op = "user.ChangePassword"

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, oldPassword); err != nil {
		return authservice.ErrInvalidCredentials
	}

	newHash, err := password.GetHash(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.repo.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
