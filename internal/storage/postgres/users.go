package postgres

import (
	"context"
	"errors"

	"github.com/globallang/gla-backend/internal/models"
	"github.com/globallang/gla-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateUser inserts a user unless the email is already taken. The unique
// index makes the existence check atomic, so concurrent first sign-ins with
// the same email cannot double-insert.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, bool, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	const query = `
	INSERT INTO users (id, name, email, photo_url, role)
	VALUES ($1::uuid, $2, $3, $4, $5)
	ON CONFLICT (email) DO NOTHING
	RETURNING id::text, name, email, photo_url, role, created_at;
	`
	row := s.pool.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.PhotoURL, user.Role)
	created, err := scanUser(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, false, err
	}
	existing, err := s.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return models.User{}, false, err
	}
	return existing, false, nil
}

// ListUsers returns every user record.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	const query = `
	SELECT id::text, name, email, photo_url, role, created_at
	FROM users
	ORDER BY created_at;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

// ListUsersByRole returns users holding the given role.
func (s *Store) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	const query = `
	SELECT id::text, name, email, photo_url, role, created_at
	FROM users
	WHERE role = $1
	ORDER BY created_at;
	`
	rows, err := s.pool.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

// FindUserByEmail fetches a user by email address.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
	SELECT id::text, name, email, photo_url, role, created_at
	FROM users
	WHERE email = $1;
	`
	row := s.pool.QueryRow(ctx, query, email)
	return scanUser(row)
}

// UpdateUserRole sets the role on an existing user.
func (s *Store) UpdateUserRole(ctx context.Context, id, role string) (models.User, error) {
	const query = `
	UPDATE users SET role = $2
	WHERE id = $1::uuid
	RETURNING id::text, name, email, photo_url, role, created_at;
	`
	row := s.pool.QueryRow(ctx, query, id, role)
	return scanUser(row)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PhotoURL, &user.Role, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func collectUsers(rows pgx.Rows) ([]models.User, error) {
	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
