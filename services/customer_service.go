package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// CreateGraph persists a built Customer -> Orders -> OrderDetails graph as
// one transaction. Any constraint violation (e.g. an order detail referencing
// a food item that does not exist) rolls back every row of the request. On
// success the graph carries all generated identifiers.
func (s *CustomerService) CreateGraph(customer *models.Customer) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(customer).Error; err != nil {
			return translateStorageError(err)
		}
		return nil
	})
}

// GetAll returns every customer with orders and order details nested.
// Traversal is parent-to-child only, back-references stay unserialized.
func (s *CustomerService) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Preload("Orders.OrderDetails").Find(&customers).Error; err != nil {
		return nil, translateStorageError(err)
	}
	return customers, nil
}

func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.Preload("Orders.OrderDetails").First(&customer, id).Error; err != nil {
		return nil, translateStorageError(err)
	}
	return &customer, nil
}

// Exists is a side-effect-free existence check, also used to tell a stale
// update apart from an update against a vanished row.
func (s *CustomerService) Exists(id uint) (bool, error) {
	return recordExists(s.DB, &models.Customer{}, id)
}

// Replace performs a whole-record update guarded by the version column.
// A zero incoming version adopts the current row's version. When the guarded
// update touches no row, a second existence check decides between ErrNotFound
// and ErrStaleRecord; the row may well have been deleted by another request
// between the write attempt and that recheck.
func (s *CustomerService) Replace(id uint, customer *models.Customer) error {
	if customer.ID != id {
		return ErrIDMismatch
	}
	customer.CustomerName = strings.TrimSpace(customer.CustomerName)
	if customer.CustomerName == "" {
		return &ValidationError{"customerName is required"}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		expected := customer.Version
		if expected == 0 {
			var current models.Customer
			if err := tx.First(&current, id).Error; err != nil {
				return translateStorageError(err)
			}
			expected = current.Version
		}

		res := tx.Model(&models.Customer{}).
			Where("id = ? AND version = ?", id, expected).
			Updates(map[string]interface{}{
				"customer_name": customer.CustomerName,
				"version":       expected + 1,
			})
		if res.Error != nil {
			return translateStorageError(res.Error)
		}
		if res.RowsAffected == 0 {
			exists, err := recordExists(tx, &models.Customer{}, id)
			if err != nil {
				return err
			}
			if !exists {
				return ErrNotFound
			}
			return ErrStaleRecord
		}

		customer.Version = expected + 1
		return nil
	})
}

// Delete removes one customer. The restrict rule on order_masters.customer_id
// blocks the delete at schema level while orders still reference the row,
// which surfaces as a ConstraintError.
func (s *CustomerService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Customer{}, id)
		if res.Error != nil {
			return translateStorageError(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func recordExists(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateStorageError(err)
	}
	return count > 0, nil
}
