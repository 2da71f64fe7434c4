package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderMaster struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"type:varchar(50)" json:"orderNumber"`
	PMethod     string `gorm:"type:varchar(50);not null" json:"paymentMethod"`
	GTotal      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"grandTotal"`
	CustomerID  uint            `gorm:"not null;index" json:"customerId"`
	// Cascade drops the details together with their order.
	OrderDetails []OrderDetail `gorm:"foreignKey:OrderMasterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"orderDetails,omitempty"`
	Version      uint          `gorm:"not null;default:1" json:"version"`
	CreatedAt    time.Time     `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time     `gorm:"not null" json:"updatedAt"`
}
