package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// CartLine is one cart line as stored inside the carts.items JSON column.
type CartLine struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
}

// CartModel mirrors the 'carts' table, one row per user.
type CartModel struct {
	UserID    uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	Items     datatypes.JSONSlice[CartLine] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// FavoritesModel mirrors the 'favorites' table, one row per user.
type FavoritesModel struct {
	UserID     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ProductIDs pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoritesModel) TableName() string {
	return "favorites"
}
