package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/services"
	"github.com/yeremiapane/restaurant-api/utils"
)

type FoodItemController struct {
	svc *services.FoodItemService
}

func NewFoodItemController(db *gorm.DB) *FoodItemController {
	return &FoodItemController{svc: services.NewFoodItemService(db)}
}

// GetAllFoodItems -> the catalog referenced by order details
func (fc *FoodItemController) GetAllFoodItems(c *gin.Context) {
	items, err := fc.svc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of food items", items)
}

// GetFoodItemByID -> detail of one food item
func (fc *FoodItemController) GetFoodItemByID(c *gin.Context) {
	id, ok := parseIDParam(c, "food_item_id")
	if !ok {
		return
	}

	item, err := fc.svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food item detail", item)
}

// CreateFoodItem -> add a catalog entry
func (fc *FoodItemController) CreateFoodItem(c *gin.Context) {
	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	item.ID = 0
	item.Version = 0

	if err := fc.svc.Create(&item); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Food item created", item)
}

// ReplaceFoodItem -> whole-record update, guarded by the version column
func (fc *FoodItemController) ReplaceFoodItem(c *gin.Context) {
	id, ok := parseIDParam(c, "food_item_id")
	if !ok {
		return
	}

	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := fc.svc.Replace(id, &item); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteFoodItem -> fails with 409 while order details still reference it
func (fc *FoodItemController) DeleteFoodItem(c *gin.Context) {
	id, ok := parseIDParam(c, "food_item_id")
	if !ok {
		return
	}

	if err := fc.svc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
