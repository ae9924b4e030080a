// Package services содержит бизнес-логику создания адреса пользователя.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/todo-service/internal/models"
)

// AddressRepository описывает контракт хранилища для адресов.
type AddressRepository interface {
	// CreateAddressForUser вставляет адрес и привязывает его к пользователю атомарно.
	CreateAddressForUser(ctx context.Context, addr models.Address, userID int) (int, error)
	// ReadAddress возвращает адрес по его ID.
	ReadAddress(ctx context.Context, id int) (*models.Address, error)
}

// AddressService реализует создание адреса с привязкой к вызывающему пользователю.
type AddressService struct {
	repo AddressRepository
	log  *slog.Logger
}

// NewAddressService создает новый экземпляр AddressService.
func NewAddressService(repo AddressRepository, log *slog.Logger) *AddressService {
	return &AddressService{repo: repo, log: log}
}

// Create создает адрес, привязывает его к пользователю в одной транзакции
// и возвращает сохранённую запись.
func (s *AddressService) Create(ctx context.Context, userID int, req models.DummyAddress) (*models.Address, error) {
	addr := models.Address{
		Address1:   req.Address1,
		Address2:   req.Address2,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		ApartNum:   req.ApartNum,
	}

	id, err := s.repo.CreateAddressForUser(ctx, addr, userID)
	if err != nil {
		return nil, err
	}
	s.log.Info("created address for user", slog.Int("address_id", id), slog.Int("user_id", userID))

	return s.repo.ReadAddress(ctx, id)
}
