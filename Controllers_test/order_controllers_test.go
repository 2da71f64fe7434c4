package Controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/controllers"
	"github.com/yeremiapane/restaurant-api/models"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	orderCtrl := controllers.NewOrderController(db)
	detailCtrl := controllers.NewOrderDetailController(db)
	router.GET("/orders", orderCtrl.GetAllOrders)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	router.PUT("/orders/:order_id", orderCtrl.ReplaceOrder)
	router.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
	router.GET("/orders/:order_id/details", detailCtrl.GetDetailsByOrder)
	return router
}

// seedGraph creates one customer owning one order with two details and
// returns the persisted graph.
func seedGraph(t *testing.T, db *gorm.DB, foodItemID uint) *models.Customer {
	customer := models.Customer{
		CustomerName: "Henry",
		Orders: []models.OrderMaster{
			{
				OrderNumber: "ORD-SEED-1",
				PMethod:     "card",
				GTotal:      decimal.RequireFromString("12.40"),
				OrderDetails: []models.OrderDetail{
					{
						FoodItemID:    foodItemID,
						FoodItemPrice: decimal.RequireFromString("4.20"),
						Quantity:      2,
					},
					{
						FoodItemID:    foodItemID,
						FoodItemPrice: decimal.RequireFromString("4.00"),
						Quantity:      1,
					},
				},
			},
		},
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed graph: %v", err)
	}
	return &customer
}

func TestGetOrders(t *testing.T) {
	db := setupTestDB(t, "orders_get")
	foodItemID := seedFoodItem(t, db, "Curry", "4.20")
	customer := seedGraph(t, db, foodItemID)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "GET", "/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	orderID := customer.Orders[0].ID
	w = doJSON(t, router, "GET", "/orders/"+strconv.Itoa(int(orderID)), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "ORD-SEED-1", data["orderNumber"])
	assert.Len(t, data["orderDetails"].([]interface{}), 2)

	w = doJSON(t, router, "GET", "/orders/987654", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReplaceOrder(t *testing.T) {
	db := setupTestDB(t, "orders_replace")
	foodItemID := seedFoodItem(t, db, "Stew", "4.20")
	customer := seedGraph(t, db, foodItemID)
	order := customer.Orders[0]
	router := setupOrderRouter(db)
	url := "/orders/" + strconv.Itoa(int(order.ID))

	// Payment method stays required on replace.
	w := doJSON(t, router, "PUT", url, map[string]interface{}{
		"id": order.ID, "paymentMethod": " ", "grandTotal": 12.40,
		"customerId": customer.ID, "version": order.Version,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "PUT", url, map[string]interface{}{
		"id": order.ID, "orderNumber": "ORD-REPLACED", "paymentMethod": "cash",
		"grandTotal": 13.00, "customerId": customer.ID, "version": order.Version,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	var updated models.OrderMaster
	assert.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, "ORD-REPLACED", updated.OrderNumber)
	assert.Equal(t, "cash", updated.PMethod)
	assert.True(t, updated.GTotal.Equal(decimal.RequireFromString("13.00")))
	assert.Equal(t, order.Version+1, updated.Version)

	// Stale version -> conflict.
	w = doJSON(t, router, "PUT", url, map[string]interface{}{
		"id": order.ID, "orderNumber": "ORD-STALE", "paymentMethod": "cash",
		"grandTotal": 13.00, "customerId": customer.ID, "version": order.Version,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Moving the order to a customer that does not exist hits the foreign key.
	w = doJSON(t, router, "PUT", url, map[string]interface{}{
		"id": order.ID, "orderNumber": "ORD-REPLACED", "paymentMethod": "cash",
		"grandTotal": 13.00, "customerId": 777777, "version": order.Version + 1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteOrderCascadesDetails(t *testing.T) {
	db := setupTestDB(t, "orders_delete_cascade")
	foodItemID := seedFoodItem(t, db, "Salad", "4.20")
	customer := seedGraph(t, db, foodItemID)
	router := setupOrderRouter(db)

	assert.Equal(t, int64(2), countRows(t, db, &models.OrderDetail{}))

	w := doJSON(t, router, "DELETE", "/orders/"+strconv.Itoa(int(customer.Orders[0].ID)), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Details go with the order, the referenced food item stays.
	assert.Equal(t, int64(0), countRows(t, db, &models.OrderMaster{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.OrderDetail{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.FoodItem{}))

	w = doJSON(t, router, "DELETE", "/orders/"+strconv.Itoa(int(customer.Orders[0].ID)), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
