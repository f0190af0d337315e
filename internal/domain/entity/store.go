// Package entity contains the core business objects of the project.
package entity

import "time"

// Store represents a registered store. Every store belongs to exactly one
// owner, who must hold the store_owner role.
type Store struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // Unique per store.
	Address   string    `json:"address,omitempty"`
	OwnerID   uint      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreWithStats decorates a Store with its rating aggregates.
type StoreWithStats struct {
	Store
	OverallRating float64 `json:"overall_rating"` // Average of all ratings, 0 when unrated.
	TotalRatings  int64   `json:"total_ratings"`
}
