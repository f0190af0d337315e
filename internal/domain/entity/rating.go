// Package entity contains the core business objects of the project.
package entity

import "time"

// Rating is a single user's rating of a single store. At most one rating
// exists per (user, store) pair; resubmission overwrites the prior value.
type Rating struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	StoreID   uint      `json:"store_id"`
	Rating    int       `json:"rating"` // Integer in [1, 5].
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingDetail is a rating joined with the rater and the rated store,
// as presented on the admin ratings list.
type RatingDetail struct {
	ID         uint      `json:"id"`
	Rating     int       `json:"rating"`
	UserName   string    `json:"user_name"`
	UserEmail  string    `json:"user_email"`
	StoreName  string    `json:"store_name"`
	StoreEmail string    `json:"store_email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StoreRatingEntry is a rating as presented to the store's owner,
// carrying the rater's contact details.
type StoreRatingEntry struct {
	Rating      int       `json:"rating"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	UserAddress string    `json:"user_address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
