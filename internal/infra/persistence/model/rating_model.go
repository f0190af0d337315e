package model

import (
	"time"

	"ratehub/internal/domain/entity"
)

// RatingModel mirrors the 'ratings' table. The composite unique index keeps
// one rating per (user, store) pair and backs the upsert's conflict target.
type RatingModel struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_ratings_user_store"`
	StoreID   uint `gorm:"not null;uniqueIndex:idx_ratings_user_store"`
	Rating    int  `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// ToEntity converts the persistence model to a domain entity.
func (m *RatingModel) ToEntity() *entity.Rating {
	return &entity.Rating{
		ID:        m.ID,
		UserID:    m.UserID,
		StoreID:   m.StoreID,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// RatingModelFromEntity converts a domain entity to the persistence model.
func RatingModelFromEntity(rating *entity.Rating) *RatingModel {
	return &RatingModel{
		ID:        rating.ID,
		UserID:    rating.UserID,
		StoreID:   rating.StoreID,
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}
