package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FoodItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	Version   uint            `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"not null" json:"updatedAt"`
}
