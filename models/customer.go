package models

import (
	"time"
)

type Customer struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	CustomerName string        `gorm:"type:varchar(100);not null" json:"customerName"`
	Version      uint          `gorm:"not null;default:1" json:"version"`
	CreatedAt    time.Time     `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time     `gorm:"not null" json:"updatedAt"`
	// Restrict blocks deleting a customer while orders still reference it.
	Orders []OrderMaster `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"orders,omitempty"`
}
