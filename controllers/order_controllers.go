package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/services"
	"github.com/yeremiapane/restaurant-api/utils"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{svc: services.NewOrderService(db)}
}

// GetAllOrders -> list orders with their order details
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.svc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// ReplaceOrder -> whole-record update, guarded by the version column
func (oc *OrderController) ReplaceOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}

	var order models.OrderMaster
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.svc.Replace(id, &order); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteOrder -> removes the order, the schema cascades its order details
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}

	if err := oc.svc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
