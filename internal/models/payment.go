package models

import "time"

// Payment records a completed checkout. Immutable once inserted; the cart
// items it covers are removed in the same transaction.
type Payment struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	TransactionID string    `json:"transactionID,omitempty"`
	AmountCents   int64     `json:"amountCents"`
	CartItemIDs   []string  `json:"cartItemID"`
	ClassIDs      []string  `json:"classIDs,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
