package storage

import (
	"context"
	"errors"

	"github.com/globallang/gla-backend/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// UserStore captures persistence operations for marketplace accounts.
type UserStore interface {
	// CreateUser inserts the user unless one with the same email already
	// exists. The bool reports whether a new row was inserted; on conflict
	// the existing record is returned instead.
	CreateUser(ctx context.Context, user models.User) (models.User, bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUserRole(ctx context.Context, id, role string) (models.User, error)
}

// ClassStore captures persistence operations for course listings.
type ClassStore interface {
	CreateClass(ctx context.Context, class models.Class) (models.Class, error)
	ListClasses(ctx context.Context) ([]models.Class, error)
	ListClassesByInstructor(ctx context.Context, email string) ([]models.Class, error)
	// UpdateClassStatus sets the approval status. Feedback is applied only
	// when the new status is denied; an approval leaves it untouched.
	UpdateClassStatus(ctx context.Context, id, status, feedback string) (models.Class, error)
}

// CartStore captures persistence operations for pending-purchase items.
type CartStore interface {
	CreateCartItem(ctx context.Context, item models.CartItem) (models.CartItem, error)
	ListCartItemsByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	DeleteCartItem(ctx context.Context, id string) (int64, error)
}

// PaymentStore records checkouts.
type PaymentStore interface {
	// RecordPayment inserts the payment and removes the cart items it covers
	// in a single transaction, returning the stored payment and the number of
	// cart items deleted.
	RecordPayment(ctx context.Context, payment models.Payment) (models.Payment, int64, error)
}
