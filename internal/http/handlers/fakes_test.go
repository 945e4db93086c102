package handlers

import (
	"context"
	"time"

	"github.com/globallang/gla-backend/internal/models"
	"github.com/globallang/gla-backend/internal/payments"
	"github.com/globallang/gla-backend/internal/storage"
	"github.com/google/uuid"
)

// In-memory stores mirroring the postgres accessors' behavior, including the
// conditional user insert and the pending default on new classes.

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user models.User) (models.User, bool, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return existing, false, nil
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	f.users = append(f.users, user)
	return user, true, nil
}

func (f *fakeUserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUserStore) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	out := []models.User{}
	for _, user := range f.users {
		if user.Role == role {
			out = append(out, user)
		}
	}
	return out, nil
}

func (f *fakeUserStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (f *fakeUserStore) UpdateUserRole(ctx context.Context, id, role string) (models.User, error) {
	for i, user := range f.users {
		if user.ID == id {
			f.users[i].Role = role
			return f.users[i], nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

type fakeClassStore struct {
	classes     []models.Class
	updateCalls int
}

func (f *fakeClassStore) CreateClass(ctx context.Context, class models.Class) (models.Class, error) {
	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	if class.Status == "" {
		class.Status = models.ClassPending
	}
	class.CreatedAt = time.Now()
	f.classes = append(f.classes, class)
	return class, nil
}

func (f *fakeClassStore) ListClasses(ctx context.Context) ([]models.Class, error) {
	return f.classes, nil
}

func (f *fakeClassStore) ListClassesByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	out := []models.Class{}
	for _, class := range f.classes {
		if class.InstructorEmail == email {
			out = append(out, class)
		}
	}
	return out, nil
}

func (f *fakeClassStore) UpdateClassStatus(ctx context.Context, id, status, feedback string) (models.Class, error) {
	f.updateCalls++
	for i, class := range f.classes {
		if class.ID == id {
			f.classes[i].Status = status
			if status == models.ClassDenied {
				f.classes[i].Feedback = feedback
			}
			return f.classes[i], nil
		}
	}
	return models.Class{}, storage.ErrNotFound
}

type fakeCartStore struct {
	items     []models.CartItem
	listCalls int
}

func (f *fakeCartStore) CreateCartItem(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.CreatedAt = time.Now()
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeCartStore) ListCartItemsByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	f.listCalls++
	out := []models.CartItem{}
	for _, item := range f.items {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCartStore) DeleteCartItem(ctx context.Context, id string) (int64, error) {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeCartStore) contains(id string) bool {
	for _, item := range f.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

type fakePaymentStore struct {
	carts    *fakeCartStore
	payments []models.Payment
}

func (f *fakePaymentStore) RecordPayment(ctx context.Context, payment models.Payment) (models.Payment, int64, error) {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	payment.CreatedAt = time.Now()
	f.payments = append(f.payments, payment)

	var deleted int64
	if f.carts != nil {
		for _, id := range payment.CartItemIDs {
			n, _ := f.carts.DeleteCartItem(ctx, id)
			deleted += n
		}
	}
	return payment, deleted, nil
}

type fakeIntentCreator struct {
	amount   int64
	currency string
	err      error
}

func (f *fakeIntentCreator) CreateIntent(ctx context.Context, amount int64, currency string) (payments.Intent, error) {
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return payments.Intent{}, f.err
	}
	return payments.Intent{ClientSecret: "pi_test_secret"}, nil
}
