// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system. The password hash is carried for
// credential checks inside the service layer but is never serialized.
type User struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Unique, stored lower-cased.
	PasswordHash string    `json:"-"`
	Address      string    `json:"address,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserWithRating decorates a User with the average rating across the stores
// the user owns. Rating is nil for users that are not store owners.
type UserWithRating struct {
	User
	Rating *float64 `json:"rating,omitempty"`
}

// Principal is the authenticated identity attached to a request after token
// verification. It is resolved once per request and never mutated.
type Principal struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
