package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/services"
	"github.com/yeremiapane/restaurant-api/utils"
)

type CustomerController struct {
	svc *services.CustomerService
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{svc: services.NewCustomerService(db)}
}

// GetAllCustomers -> every customer with nested orders and order details
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.svc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// GetCustomerByID -> detail of one customer
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := parseIDParam(c, "customer_id")
	if !ok {
		return
	}

	customer, err := cc.svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// CreateCustomer -> create a customer together with its nested orders and
// order details in one transaction. Validation rejects the whole request
// before anything is written; a bad food item reference rolls everything
// back.
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req services.CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := services.BuildCustomerGraph(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := cc.svc.CreateGraph(customer); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d) with %d orders",
		customer.ID, len(customer.Orders))
	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// ReplaceCustomer -> whole-record update, guarded by the version column
func (cc *CustomerController) ReplaceCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "customer_id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.svc.Replace(id, &customer); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCustomer -> fails with 409 while orders still reference the customer
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "customer_id")
	if !ok {
		return
	}

	if err := cc.svc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
