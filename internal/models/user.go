package models

import "time"

// User is a marketplace account created on first sign-in. Email is the join
// key for cart ownership and instructor attribution, so it is unique per user.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
