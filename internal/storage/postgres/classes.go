package postgres

import (
	"context"
	"errors"

	"github.com/globallang/gla-backend/internal/models"
	"github.com/globallang/gla-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateClass inserts a new listing. A missing status defaults to pending.
func (s *Store) CreateClass(ctx context.Context, class models.Class) (models.Class, error) {
	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	if class.Status == "" {
		class.Status = models.ClassPending
	}
	const query = `
	INSERT INTO classes (id, name, image, instructor_name, instructor_email, price_cents, available_seats, status, feedback)
	VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id::text, name, image, instructor_name, instructor_email, price_cents, available_seats, status, feedback, created_at;
	`
	row := s.pool.QueryRow(ctx, query,
		class.ID, class.Name, class.Image, class.InstructorName, class.InstructorEmail,
		class.PriceCents, class.AvailableSeats, class.Status, class.Feedback)
	return scanClass(row)
}

// ListClasses returns every listing regardless of status.
func (s *Store) ListClasses(ctx context.Context) ([]models.Class, error) {
	const query = `
	SELECT id::text, name, image, instructor_name, instructor_email, price_cents, available_seats, status, feedback, created_at
	FROM classes
	ORDER BY created_at;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectClasses(rows)
}

// ListClassesByInstructor returns listings attributed to the instructor email.
func (s *Store) ListClassesByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	const query = `
	SELECT id::text, name, image, instructor_name, instructor_email, price_cents, available_seats, status, feedback, created_at
	FROM classes
	WHERE instructor_email = $1
	ORDER BY created_at;
	`
	rows, err := s.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectClasses(rows)
}

// UpdateClassStatus patches the approval status. Feedback is written only for
// a denial; approving leaves any earlier feedback in place.
func (s *Store) UpdateClassStatus(ctx context.Context, id, status, feedback string) (models.Class, error) {
	const query = `
	UPDATE classes
	SET status = $2,
	    feedback = CASE WHEN $2 = 'denied' THEN $3 ELSE feedback END
	WHERE id = $1::uuid
	RETURNING id::text, name, image, instructor_name, instructor_email, price_cents, available_seats, status, feedback, created_at;
	`
	row := s.pool.QueryRow(ctx, query, id, status, feedback)
	return scanClass(row)
}

func scanClass(row pgx.Row) (models.Class, error) {
	var class models.Class
	err := row.Scan(&class.ID, &class.Name, &class.Image, &class.InstructorName, &class.InstructorEmail,
		&class.PriceCents, &class.AvailableSeats, &class.Status, &class.Feedback, &class.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Class{}, storage.ErrNotFound
		}
		return models.Class{}, err
	}
	return class, nil
}

func collectClasses(rows pgx.Rows) ([]models.Class, error) {
	classes := []models.Class{}
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}
