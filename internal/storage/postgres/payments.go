package postgres

import (
	"context"
	"fmt"

	"github.com/globallang/gla-backend/internal/models"
	"github.com/google/uuid"
)

// RecordPayment inserts the payment and deletes the cart items it covers in
// one transaction, so a payment is never visible with its cart still intact.
func (s *Store) RecordPayment(ctx context.Context, payment models.Payment) (models.Payment, int64, error) {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if payment.CartItemIDs == nil {
		payment.CartItemIDs = []string{}
	}
	if payment.ClassIDs == nil {
		payment.ClassIDs = []string{}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.Payment{}, 0, fmt.Errorf("begin payment tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const insert = `
	INSERT INTO payments (id, email, transaction_id, amount_cents, cart_item_ids, class_ids)
	VALUES ($1::uuid, $2, $3, $4, $5::uuid[], $6::uuid[])
	RETURNING id::text, email, transaction_id, amount_cents, cart_item_ids::text[], class_ids::text[], created_at;
	`
	row := tx.QueryRow(ctx, insert,
		payment.ID, payment.Email, payment.TransactionID, payment.AmountCents,
		payment.CartItemIDs, payment.ClassIDs)

	var stored models.Payment
	err = row.Scan(&stored.ID, &stored.Email, &stored.TransactionID, &stored.AmountCents,
		&stored.CartItemIDs, &stored.ClassIDs, &stored.CreatedAt)
	if err != nil {
		return models.Payment{}, 0, fmt.Errorf("insert payment: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM carts WHERE id = ANY($1::uuid[]);`, payment.CartItemIDs)
	if err != nil {
		return models.Payment{}, 0, fmt.Errorf("clear paid cart items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Payment{}, 0, fmt.Errorf("commit payment tx: %w", err)
	}
	return stored, tag.RowsAffected(), nil
}
