// Package services содержит бизнес-логику для управления задачами и кешированием.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/todo-service/internal/lib/policy"
	"github.com/magabrotheeeer/todo-service/internal/models"
	"github.com/magabrotheeeer/todo-service/internal/storage/repository"
)

// ErrAccessDenied возвращается, когда identity не проходит административную проверку.
var ErrAccessDenied = errors.New("access denied")

// ToDoRepository определяет методы для работы с задачами в хранилище.
type ToDoRepository interface {
	// CreateToDo добавляет новую задачу и возвращает её ID.
	CreateToDo(ctx context.Context, todo models.ToDo) (int, error)
	// ReadToDo возвращает задачу по ID независимо от владельца.
	ReadToDo(ctx context.Context, id int) (*models.ToDo, error)
	// UpdateToDo обновляет задачу владельца по ID.
	UpdateToDo(ctx context.Context, req models.ToDo, id, ownerID int) (int, error)
	// RemoveToDo удаляет задачу владельца по ID.
	RemoveToDo(ctx context.Context, id, ownerID int) (int, error)
	// RemoveAnyToDo удаляет задачу по ID без учёта владельца.
	RemoveAnyToDo(ctx context.Context, id int) (int, error)
	// ListToDos возвращает список задач пользователя с пагинацией.
	ListToDos(ctx context.Context, ownerID, limit, offset int) ([]*models.ToDo, error)
	// ListAllToDos возвращает список всех задач с пагинацией.
	ListAllToDos(ctx context.Context, limit, offset int) ([]*models.ToDo, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// ToDoService реализует бизнес-логику работы с задачами, включая
// проверку владения через policy и кеширование чтений.
type ToDoService struct {
	repo  ToDoRepository
	cache Cache
	log   *slog.Logger
}

// NewToDoService создает новый экземпляр ToDoService.
func NewToDoService(repo ToDoRepository, cache Cache, log *slog.Logger) *ToDoService {
	return &ToDoService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func cacheKey(id int) string {
	return fmt.Sprintf("todo:%d", id)
}

// Create создает новую задачу с вызывающим пользователем в качестве владельца.
func (s *ToDoService) Create(ctx context.Context, ownerID int, req models.DummyToDo) (int, error) {
	todo := models.ToDo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     ownerID,
	}

	id, err := s.repo.CreateToDo(ctx, todo)
	if err != nil {
		return 0, err
	}
	todo.ID = id

	s.log.Info("created new todo", slog.Int("id", id))

	if err := s.cache.Set(cacheKey(id), todo, time.Hour); err != nil {
		s.log.Warn("failed to cache todo", slog.String("key", cacheKey(id)), slog.Any("err", err))
	}

	return id, nil
}

// Read возвращает задачу по ID, используя кеш или репозиторий.
// Чужая задача неотличима от несуществующей: оба случая дают ErrNotFound.
func (s *ToDoService) Read(ctx context.Context, identity policy.Identity, id int) (*models.ToDo, error) {
	var result *models.ToDo
	found, err := s.cache.Get(cacheKey(id), &result)
	if err != nil {
		return nil, err
	}
	if !found {
		result, err = s.repo.ReadToDo(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(cacheKey(id), result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey(id)),
				slog.Any("err", err))
		}
	}

	if !policy.Authorize(identity, policy.ActionOwnerOrSelf, result.OwnerID) {
		return nil, repository.ErrNotFound
	}
	return result, nil
}

// List возвращает список задач вызывающего пользователя с пагинацией.
func (s *ToDoService) List(ctx context.Context, ownerID, limit, offset int) ([]*models.ToDo, error) {
	return s.repo.ListToDos(ctx, ownerID, limit, offset)
}

// Update обновляет задачу владельца и обновляет кеш.
func (s *ToDoService) Update(ctx context.Context, identity policy.Identity, req models.DummyToDo, id int) (int, error) {
	entry := models.ToDo{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     identity.UserID,
	}
	res, err := s.repo.UpdateToDo(ctx, entry, id, identity.UserID)
	if err != nil {
		return 0, err
	}
	if res == 0 {
		return 0, repository.ErrNotFound
	}
	s.log.Info("updated todo in storage", slog.Int("id", id))

	if err := s.cache.Set(cacheKey(id), entry, time.Hour); err != nil {
		s.log.Warn("failed to cache todo", slog.String("key", cacheKey(id)), slog.Any("err", err))
	}
	return res, nil
}

// Remove удаляет задачу владельца по ID и инвалидирует кеш.
func (s *ToDoService) Remove(ctx context.Context, identity policy.Identity, id int) (int, error) {
	if err := s.cache.Invalidate(cacheKey(id)); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey(id)), slog.Any("err", err))
	}

	count, err := s.repo.RemoveToDo(ctx, id, identity.UserID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}

// AdminList возвращает список всех задач. Требует роли admin.
func (s *ToDoService) AdminList(ctx context.Context, identity policy.Identity, limit, offset int) ([]*models.ToDo, error) {
	if !policy.Authorize(identity, policy.ActionAdminOnly, 0) {
		return nil, ErrAccessDenied
	}
	return s.repo.ListAllToDos(ctx, limit, offset)
}

// AdminRemove удаляет любую задачу по ID. Требует роли admin.
func (s *ToDoService) AdminRemove(ctx context.Context, identity policy.Identity, id int) (int, error) {
	if !policy.Authorize(identity, policy.ActionAdminOnly, 0) {
		return 0, ErrAccessDenied
	}

	if err := s.cache.Invalidate(cacheKey(id)); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey(id)), slog.Any("err", err))
	}

	count, err := s.repo.RemoveAnyToDo(ctx, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}
