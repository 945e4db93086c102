package models

import "time"

// CartItem links a learner (by email) to a class they intend to buy. Items
// are deleted individually or in bulk once a payment covers them.
type CartItem struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	ClassID    string    `json:"classID"`
	ClassName  string    `json:"className,omitempty"`
	Image      string    `json:"image,omitempty"`
	PriceCents int64     `json:"priceCents"`
	CreatedAt  time.Time `json:"created_at"`
}
