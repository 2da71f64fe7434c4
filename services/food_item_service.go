package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
)

// FoodItemService maintains the catalog the order details reference. Orders
// snapshot the price at order time, so price changes here never rewrite
// existing order details.
type FoodItemService struct {
	DB *gorm.DB
}

func NewFoodItemService(db *gorm.DB) *FoodItemService {
	return &FoodItemService{DB: db}
}

func (s *FoodItemService) GetAll() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.DB.Find(&items).Error; err != nil {
		return nil, translateStorageError(err)
	}
	return items, nil
}

func (s *FoodItemService) GetByID(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.DB.First(&item, id).Error; err != nil {
		return nil, translateStorageError(err)
	}
	return &item, nil
}

func (s *FoodItemService) Exists(id uint) (bool, error) {
	return recordExists(s.DB, &models.FoodItem{}, id)
}

func (s *FoodItemService) Create(item *models.FoodItem) error {
	if err := validateFoodItem(item); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return translateStorageError(err)
		}
		return nil
	})
}

func (s *FoodItemService) Replace(id uint, item *models.FoodItem) error {
	if item.ID != id {
		return ErrIDMismatch
	}
	if err := validateFoodItem(item); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		expected := item.Version
		if expected == 0 {
			var current models.FoodItem
			if err := tx.First(&current, id).Error; err != nil {
				return translateStorageError(err)
			}
			expected = current.Version
		}

		res := tx.Model(&models.FoodItem{}).
			Where("id = ? AND version = ?", id, expected).
			Updates(map[string]interface{}{
				"name":    item.Name,
				"price":   item.Price,
				"version": expected + 1,
			})
		if res.Error != nil {
			return translateStorageError(res.Error)
		}
		if res.RowsAffected == 0 {
			exists, err := recordExists(tx, &models.FoodItem{}, id)
			if err != nil {
				return err
			}
			if !exists {
				return ErrNotFound
			}
			return ErrStaleRecord
		}

		item.Version = expected + 1
		return nil
	})
}

// Delete removes one food item. The restrict rule on
// order_details.food_item_id blocks the delete while any order detail still
// references the item.
func (s *FoodItemService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.FoodItem{}, id)
		if res.Error != nil {
			return translateStorageError(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func validateFoodItem(item *models.FoodItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return &ValidationError{"name is required"}
	}
	if item.Price.IsNegative() {
		return &ValidationError{"price must not be negative"}
	}
	return checkMoneyScale("price", item.Price)
}
