package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

func (s *OrderService) GetAll() ([]models.OrderMaster, error) {
	var orders []models.OrderMaster
	if err := s.DB.Preload("OrderDetails").Find(&orders).Error; err != nil {
		return nil, translateStorageError(err)
	}
	return orders, nil
}

func (s *OrderService) GetByID(id uint) (*models.OrderMaster, error) {
	var order models.OrderMaster
	if err := s.DB.Preload("OrderDetails").First(&order, id).Error; err != nil {
		return nil, translateStorageError(err)
	}
	return &order, nil
}

func (s *OrderService) Exists(id uint) (bool, error) {
	return recordExists(s.DB, &models.OrderMaster{}, id)
}

// Replace follows the same contract as CustomerService.Replace. Moving the
// order to another customer is allowed; an unknown customer id is stopped by
// the foreign key and reported as a ConstraintError.
func (s *OrderService) Replace(id uint, order *models.OrderMaster) error {
	if order.ID != id {
		return ErrIDMismatch
	}
	order.PMethod = strings.TrimSpace(order.PMethod)
	if order.PMethod == "" {
		return &ValidationError{"paymentMethod is required"}
	}
	if err := checkMoneyScale("grandTotal", order.GTotal); err != nil {
		return err
	}
	if order.CustomerID == 0 {
		return &ValidationError{"customerId is required"}
	}
	order.OrderNumber = strings.TrimSpace(order.OrderNumber)
	if order.OrderNumber == "" {
		order.OrderNumber = NextOrderNumber()
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		expected := order.Version
		if expected == 0 {
			var current models.OrderMaster
			if err := tx.First(&current, id).Error; err != nil {
				return translateStorageError(err)
			}
			expected = current.Version
		}

		res := tx.Model(&models.OrderMaster{}).
			Where("id = ? AND version = ?", id, expected).
			Updates(map[string]interface{}{
				"order_number": order.OrderNumber,
				"p_method":     order.PMethod,
				"g_total":      order.GTotal,
				"customer_id":  order.CustomerID,
				"version":      expected + 1,
			})
		if res.Error != nil {
			return translateStorageError(res.Error)
		}
		if res.RowsAffected == 0 {
			exists, err := recordExists(tx, &models.OrderMaster{}, id)
			if err != nil {
				return err
			}
			if !exists {
				return ErrNotFound
			}
			return ErrStaleRecord
		}

		order.Version = expected + 1
		return nil
	})
}

// Delete removes one order. The cascade rule on order_details.order_master_id
// drops its order details with it; referenced food items are untouched.
func (s *OrderService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.OrderMaster{}, id)
		if res.Error != nil {
			return translateStorageError(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
