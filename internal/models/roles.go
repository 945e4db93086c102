package models

// Roles assignable to a user. A user without a role is a learner; there is no
// hierarchy, so admin does not satisfy instructor checks.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)
