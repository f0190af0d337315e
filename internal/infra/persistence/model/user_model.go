// Package model contains the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"ratehub/internal/domain/entity"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(60);not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Address      string `gorm:"type:varchar(400)"`
	Role         string `gorm:"type:varchar(20);not null;default:normal_user;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Stores  []StoreModel  `gorm:"foreignKey:OwnerID"`
	Ratings []RatingModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the persistence model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Address:      m.Address,
		Role:         entity.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserModelFromEntity converts a domain entity to the persistence model.
func UserModelFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Address:      user.Address,
		Role:         user.Role.String(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
