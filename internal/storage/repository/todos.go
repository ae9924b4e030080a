package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/todo-service/internal/models"
)

// CreateToDo вставляет новую задачу и возвращает её ID.
func (s *Storage) CreateToDo(ctx context.Context, todo models.ToDo) (int, error) {
	const op = "storage.CreateToDo"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO todos (title, description, priority, complete, owner_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		todo.Title, todo.Description, todo.Priority, todo.Complete, todo.OwnerID).Scan(&newID)
	if err != nil {
		return 0, wrapRowError(op, err)
	}
	return newID, nil
}

// ReadToDo возвращает задачу по её ID независимо от владельца.
// Проверка владения выполняется на уровне сервиса через policy.
func (s *Storage) ReadToDo(ctx context.Context, id int) (*models.ToDo, error) {
	const op = "storage.ReadToDo"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, priority, complete, owner_id
			  FROM todos WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.ToDo
	if err := row.Scan(&result.ID, &result.Title, &result.Description,
		&result.Priority, &result.Complete, &result.OwnerID); err != nil {
		return nil, wrapRowError(op, err)
	}
	return &result, nil
}

// UpdateToDo обновляет задачу по ID в пределах задач владельца
// и возвращает количество изменённых строк. Чужая задача даёт 0 строк.
func (s *Storage) UpdateToDo(ctx context.Context, req models.ToDo, id, ownerID int) (int, error) {
	const op = "storage.UpdateToDo"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE todos
			  SET title = $1, description = $2, priority = $3, complete = $4
			  WHERE id = $5 AND owner_id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		req.Title, req.Description, req.Priority, req.Complete, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveToDo удаляет задачу по ID в пределах задач владельца
// и возвращает количество удалённых строк.
func (s *Storage) RemoveToDo(ctx context.Context, id, ownerID int) (int, error) {
	const op = "storage.RemoveToDo"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM todos WHERE id = $1 AND owner_id = $2`
	result, err := s.DB.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveAnyToDo удаляет задачу по ID без учёта владельца. Административная операция.
func (s *Storage) RemoveAnyToDo(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveAnyToDo"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM todos WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListToDos возвращает список задач пользователя с пагинацией.
func (s *Storage) ListToDos(ctx context.Context, ownerID, limit, offset int) ([]*models.ToDo, error) {
	const op = "storage.ListToDos"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, priority, complete, owner_id
			  FROM todos
			  WHERE owner_id = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ToDo
	for rows.Next() {
		var item models.ToDo
		if err := rows.Scan(&item.ID, &item.Title, &item.Description,
			&item.Priority, &item.Complete, &item.OwnerID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListAllToDos возвращает список всех задач с пагинацией. Административная операция.
func (s *Storage) ListAllToDos(ctx context.Context, limit, offset int) ([]*models.ToDo, error) {
	const op = "storage.ListAllToDos"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, priority, complete, owner_id
			  FROM todos
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ToDo
	for rows.Next() {
		var item models.ToDo
		if err := rows.Scan(&item.ID, &item.Title, &item.Description,
			&item.Priority, &item.Complete, &item.OwnerID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
