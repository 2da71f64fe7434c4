package services

import (
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
)

type OrderDetailService struct {
	DB *gorm.DB
}

func NewOrderDetailService(db *gorm.DB) *OrderDetailService {
	return &OrderDetailService{DB: db}
}

// ListByOrder returns the details of one order, or ErrNotFound when the
// order itself does not exist.
func (s *OrderDetailService) ListByOrder(orderID uint) ([]models.OrderDetail, error) {
	exists, err := recordExists(s.DB, &models.OrderMaster{}, orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	var details []models.OrderDetail
	if err := s.DB.Where("order_master_id = ?", orderID).Find(&details).Error; err != nil {
		return nil, translateStorageError(err)
	}
	return details, nil
}

func (s *OrderDetailService) GetByID(id uint) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	if err := s.DB.First(&detail, id).Error; err != nil {
		return nil, translateStorageError(err)
	}
	return &detail, nil
}

func (s *OrderDetailService) Exists(id uint) (bool, error) {
	return recordExists(s.DB, &models.OrderDetail{}, id)
}

func (s *OrderDetailService) Replace(id uint, detail *models.OrderDetail) error {
	if detail.ID != id {
		return ErrIDMismatch
	}
	if detail.FoodItemID == 0 {
		return &ValidationError{"foodItemId is required"}
	}
	if detail.FoodItemPrice.IsNegative() {
		return &ValidationError{"foodItemPrice must not be negative"}
	}
	if err := checkMoneyScale("foodItemPrice", detail.FoodItemPrice); err != nil {
		return err
	}
	if detail.Quantity <= 0 {
		return &ValidationError{"quantity must be a positive integer"}
	}
	if detail.OrderMasterID == 0 {
		return &ValidationError{"orderMasterId is required"}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		expected := detail.Version
		if expected == 0 {
			var current models.OrderDetail
			if err := tx.First(&current, id).Error; err != nil {
				return translateStorageError(err)
			}
			expected = current.Version
		}

		res := tx.Model(&models.OrderDetail{}).
			Where("id = ? AND version = ?", id, expected).
			Updates(map[string]interface{}{
				"order_master_id": detail.OrderMasterID,
				"food_item_id":    detail.FoodItemID,
				"food_item_price": detail.FoodItemPrice,
				"quantity":        detail.Quantity,
				"version":         expected + 1,
			})
		if res.Error != nil {
			return translateStorageError(res.Error)
		}
		if res.RowsAffected == 0 {
			exists, err := recordExists(tx, &models.OrderDetail{}, id)
			if err != nil {
				return err
			}
			if !exists {
				return ErrNotFound
			}
			return ErrStaleRecord
		}

		detail.Version = expected + 1
		return nil
	})
}

func (s *OrderDetailService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.OrderDetail{}, id)
		if res.Error != nil {
			return translateStorageError(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
