package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/services"
	"github.com/yeremiapane/restaurant-api/utils"
)

type OrderDetailController struct {
	svc *services.OrderDetailService
}

func NewOrderDetailController(db *gorm.DB) *OrderDetailController {
	return &OrderDetailController{svc: services.NewOrderDetailService(db)}
}

// GetDetailsByOrder -> all order details of one order
func (dc *OrderDetailController) GetDetailsByOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}

	details, err := dc.svc.ListByOrder(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of order details", details)
}

// GetOrderDetailByID -> one order detail
func (dc *OrderDetailController) GetOrderDetailByID(c *gin.Context) {
	id, ok := parseIDParam(c, "detail_id")
	if !ok {
		return
	}

	detail, err := dc.svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", detail)
}

// ReplaceOrderDetail -> whole-record update, guarded by the version column
func (dc *OrderDetailController) ReplaceOrderDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "detail_id")
	if !ok {
		return
	}

	var detail models.OrderDetail
	if err := c.ShouldBindJSON(&detail); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := dc.svc.Replace(id, &detail); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteOrderDetail
func (dc *OrderDetailController) DeleteOrderDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "detail_id")
	if !ok {
		return
	}

	if err := dc.svc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
