package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/todo-service/internal/models"
)

// RegisterUser сохраняет нового пользователя в базу данных и возвращает его ID.
// Дубликат username или email даёт ErrUniqueViolation.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (int, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO users (email, username, first_name, second_name,
			      hashed_password, is_active, phone_number, role)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Username, user.FirstName, user.SecondName,
		user.PasswordHash, user.IsActive, user.PhoneNumber, user.Role).Scan(&newID); err != nil {
		return 0, wrapRowError(op, err)
	}
	return newID, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, username, first_name, second_name, hashed_password,
			      is_active, phone_number, role, address_id
			  FROM users
			  WHERE username = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, username)

	var addressID sql.NullInt64
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.SecondName,
		&u.PasswordHash, &u.IsActive, &u.PhoneNumber, &u.Role, &addressID); err != nil {
		return nil, wrapRowError(op, err)
	}

	if addressID.Valid {
		id := int(addressID.Int64)
		u.AddressID = &id
	}
	return u, nil
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, userID int) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, username, first_name, second_name, hashed_password,
			      is_active, phone_number, role, address_id
			  FROM users
			  WHERE id = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, userID)

	var addressID sql.NullInt64
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.SecondName,
		&u.PasswordHash, &u.IsActive, &u.PhoneNumber, &u.Role, &addressID); err != nil {
		return nil, wrapRowError(op, err)
	}

	if addressID.Valid {
		id := int(addressID.Int64)
		u.AddressID = &id
	}
	return u, nil
}

// GetUserProfile возвращает пользователя вместе с привязанным адресом, если он есть.
func (s *Storage) GetUserProfile(ctx context.Context, userID int) (*models.UserProfile, error) {
	const op = "storage.GetUserProfile"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT u.id, u.email, u.username, u.first_name, u.second_name,
			      u.is_active, u.phone_number, u.role,
			      a.id, a.address1, a.address2, a.city, a.state, a.country,
			      a.postal_code, a.apart_num
			  FROM users u
			  LEFT JOIN address a ON a.id = u.address_id
			  WHERE u.id = $1`
	row := s.DB.QueryRowContext(ctx, query, userID)

	p := &models.UserProfile{}
	var (
		addrID         sql.NullInt64
		address1       sql.NullString
		address2       sql.NullString
		city, state    sql.NullString
		country        sql.NullString
		postalCode     sql.NullString
		apartNum       sql.NullInt64
	)
	if err := row.Scan(&p.ID, &p.Email, &p.Username, &p.FirstName, &p.SecondName,
		&p.IsActive, &p.PhoneNumber, &p.Role,
		&addrID, &address1, &address2, &city, &state, &country,
		&postalCode, &apartNum); err != nil {
		return nil, wrapRowError(op, err)
	}

	if addrID.Valid {
		addr := &models.Address{
			ID:         int(addrID.Int64),
			Address1:   address1.String,
			City:       city.String,
			State:      state.String,
			Country:    country.String,
			PostalCode: postalCode.String,
			ApartNum:   int(apartNum.Int64),
		}
		if address2.Valid {
			addr.Address2 = &address2.String
		}
		p.Address = addr
	}
	return p, nil
}

// UpdatePassword заменяет хэш пароля пользователя.
func (s *Storage) UpdatePassword(ctx context.Context, userID int, newHash string) (int, error) {
	const op = "storage.UpdatePassword"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET hashed_password = $1
			  WHERE id = $2`
	result, err := s.DB.ExecContext(ctx, query, newHash, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
