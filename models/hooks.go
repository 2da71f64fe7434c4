package models

import (
	"gorm.io/gorm"
)

// New rows start at version 1. Setting it in a hook keeps the in-memory
// record in step with the stored row, so a record returned from a create can
// be submitted back for a replace without a version round trip.

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.Version == 0 {
		c.Version = 1
	}
	return nil
}

func (o *OrderMaster) BeforeCreate(tx *gorm.DB) error {
	if o.Version == 0 {
		o.Version = 1
	}
	return nil
}

func (d *OrderDetail) BeforeCreate(tx *gorm.DB) error {
	if d.Version == 0 {
		d.Version = 1
	}
	return nil
}

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.Version == 0 {
		f.Version = 1
	}
	return nil
}
