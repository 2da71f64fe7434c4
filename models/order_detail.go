package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDetail struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	OrderMasterID uint `gorm:"not null;index" json:"orderMasterId"`
	FoodItemID    uint `gorm:"not null;index" json:"foodItemId"`
	// Restrict blocks deleting a food item while order details reference it.
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"foodItem,omitempty"`
	// Price captured at order time, never reloaded from the food item.
	FoodItemPrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"foodItemPrice"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Version       uint            `gorm:"not null;default:1" json:"version"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updatedAt"`
}
