package models

import "time"

// Class approval statuses. Feedback is only meaningful on a denied class.
const (
	ClassPending  = "pending"
	ClassApproved = "approved"
	ClassDenied   = "denied"
)

// Class is a course listing submitted by an instructor and reviewed by an
// admin before it shows up for learners.
type Class struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Image           string    `json:"image,omitempty"`
	InstructorName  string    `json:"instructorName,omitempty"`
	InstructorEmail string    `json:"instructorEmail"`
	PriceCents      int64     `json:"priceCents"`
	AvailableSeats  int       `json:"availableSeats"`
	Status          string    `json:"status"`
	Feedback        string    `json:"feedback,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
