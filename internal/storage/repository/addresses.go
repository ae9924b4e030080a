package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/todo-service/internal/models"
)

// CreateAddressForUser вставляет адрес и привязывает его к пользователю
// в одной транзакции. Либо выполняются оба шага, либо ни одного.
func (s *Storage) CreateAddressForUser(ctx context.Context, addr models.Address, userID int) (int, error) {
	const op = "storage.CreateAddressForUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var addressID int
	insertQuery := `INSERT INTO address (address1, address2, city, state, country,
			    postal_code, apart_num)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	if err = tx.QueryRowContext(ctx, insertQuery,
		addr.Address1, addr.Address2, addr.City, addr.State, addr.Country,
		addr.PostalCode, addr.ApartNum).Scan(&addressID); err != nil {
		return 0, wrapRowError(op, err)
	}

	attachQuery := `UPDATE users SET address_id = $1 WHERE id = $2`
	result, err := tx.ExecContext(ctx, attachQuery, addressID, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return addressID, nil
}

// ReadAddress возвращает адрес по его ID.
func (s *Storage) ReadAddress(ctx context.Context, id int) (*models.Address, error) {
	const op = "storage.ReadAddress"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, address1, address2, city, state, country, postal_code, apart_num
			  FROM address WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Address
	if err := row.Scan(&result.ID, &result.Address1, &result.Address2, &result.City,
		&result.State, &result.Country, &result.PostalCode, &result.ApartNum); err != nil {
		return nil, wrapRowError(op, err)
	}
	return &result, nil
}
