package model

import (
	"time"

	"ratehub/internal/domain/entity"
)

// StoreModel mirrors the 'stores' table.
type StoreModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(60);not null"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	Address   string `gorm:"type:varchar(400)"`
	OwnerID   uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Ratings []RatingModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// ToEntity converts the persistence model to a domain entity.
func (m *StoreModel) ToEntity() *entity.Store {
	return &entity.Store{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Address:   m.Address,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// StoreModelFromEntity converts a domain entity to the persistence model.
func StoreModelFromEntity(store *entity.Store) *StoreModel {
	return &StoreModel{
		ID:        store.ID,
		Name:      store.Name,
		Email:     store.Email,
		Address:   store.Address,
		OwnerID:   store.OwnerID,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
}
