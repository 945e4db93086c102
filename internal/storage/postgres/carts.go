package postgres

import (
	"context"
	"errors"

	"github.com/globallang/gla-backend/internal/models"
	"github.com/globallang/gla-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateCartItem inserts a pending-purchase item for a learner.
func (s *Store) CreateCartItem(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	const query = `
	INSERT INTO carts (id, email, class_id, class_name, image, price_cents)
	VALUES ($1::uuid, $2, $3::uuid, $4, $5, $6)
	RETURNING id::text, email, class_id::text, class_name, image, price_cents, created_at;
	`
	row := s.pool.QueryRow(ctx, query, item.ID, item.Email, item.ClassID, item.ClassName, item.Image, item.PriceCents)
	return scanCartItem(row)
}

// ListCartItemsByEmail returns the learner's cart contents.
func (s *Store) ListCartItemsByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	const query = `
	SELECT id::text, email, class_id::text, class_name, image, price_cents, created_at
	FROM carts
	WHERE email = $1
	ORDER BY created_at;
	`
	rows, err := s.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteCartItem removes a single cart item, reporting how many rows went.
func (s *Store) DeleteCartItem(ctx context.Context, id string) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM carts WHERE id = $1::uuid;`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanCartItem(row pgx.Row) (models.CartItem, error) {
	var item models.CartItem
	err := row.Scan(&item.ID, &item.Email, &item.ClassID, &item.ClassName, &item.Image, &item.PriceCents, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.CartItem{}, storage.ErrNotFound
		}
		return models.CartItem{}, err
	}
	return item, nil
}
