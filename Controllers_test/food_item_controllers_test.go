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

func setupFoodItemRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	foodItemCtrl := controllers.NewFoodItemController(db)
	router.GET("/food-items", foodItemCtrl.GetAllFoodItems)
	router.POST("/food-items", foodItemCtrl.CreateFoodItem)
	router.GET("/food-items/:food_item_id", foodItemCtrl.GetFoodItemByID)
	router.PUT("/food-items/:food_item_id", foodItemCtrl.ReplaceFoodItem)
	router.DELETE("/food-items/:food_item_id", foodItemCtrl.DeleteFoodItem)
	return router
}

func TestFoodItemCRUD(t *testing.T) {
	db := setupTestDB(t, "fooditems_crud")
	router := setupFoodItemRouter(db)

	w := doJSON(t, router, "POST", "/food-items", map[string]interface{}{
		"name":  "Lemonade",
		"price": 2.50,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	id := int(data["id"].(float64))
	version := int(data["version"].(float64))
	url := "/food-items/" + strconv.Itoa(id)

	w = doJSON(t, router, "GET", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, "Lemonade", data["name"])

	w = doJSON(t, router, "PUT", url, map[string]interface{}{
		"id": id, "name": "Iced Lemonade", "price": 2.75, "version": version,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	var updated models.FoodItem
	assert.NoError(t, db.First(&updated, id).Error)
	assert.Equal(t, "Iced Lemonade", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("2.75")))

	w = doJSON(t, router, "DELETE", url, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, "GET", url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFoodItemValidation(t *testing.T) {
	db := setupTestDB(t, "fooditems_validation")
	router := setupFoodItemRouter(db)

	// Name is required.
	w := doJSON(t, router, "POST", "/food-items", map[string]interface{}{
		"name": "  ", "price": 1.00,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Monetary values carry at most 2 decimal places, never rounded.
	w = doJSON(t, router, "POST", "/food-items", map[string]interface{}{
		"name": "Espresso", "price": 1.999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, int64(0), countRows(t, db, &models.FoodItem{}))
}

func TestDeleteFoodItemRestrictedByOrderDetails(t *testing.T) {
	db := setupTestDB(t, "fooditems_delete_restrict")
	foodItemID := seedFoodItem(t, db, "Tea", "1.80")
	router := setupFoodItemRouter(db)

	// An order detail referencing the item blocks its delete.
	customer := models.Customer{
		CustomerName: "Grace",
		Orders: []models.OrderMaster{
			{
				OrderNumber: "ORD-TEST-1",
				PMethod:     "cash",
				GTotal:      decimal.RequireFromString("1.80"),
				OrderDetails: []models.OrderDetail{
					{
						FoodItemID:    foodItemID,
						FoodItemPrice: decimal.RequireFromString("1.80"),
						Quantity:      1,
					},
				},
			},
		},
	}
	assert.NoError(t, db.Create(&customer).Error)

	url := "/food-items/" + strconv.Itoa(int(foodItemID))
	w := doJSON(t, router, "DELETE", url, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1), countRows(t, db, &models.FoodItem{}))

	// After the referencing detail is gone the delete succeeds.
	assert.NoError(t, db.Delete(&models.OrderDetail{}, customer.Orders[0].OrderDetails[0].ID).Error)
	w = doJSON(t, router, "DELETE", url, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(0), countRows(t, db, &models.FoodItem{}))
}
