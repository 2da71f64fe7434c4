package services

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yeremiapane/restaurant-api/models"
)

type OrderDetailCreateRequest struct {
	FoodItemID    uint             `json:"foodItemId"`
	FoodItemPrice *decimal.Decimal `json:"foodItemPrice"`
	Quantity      int              `json:"quantity"`
}

type OrderCreateRequest struct {
	OrderNumber  string                     `json:"orderNumber"`
	PMethod      string                     `json:"paymentMethod"`
	GTotal       *decimal.Decimal           `json:"grandTotal"`
	OrderDetails []OrderDetailCreateRequest `json:"orderDetails"`
}

type CustomerCreateRequest struct {
	CustomerName string               `json:"customerName"`
	Orders       []OrderCreateRequest `json:"orders"`
}

// BuildCustomerGraph validates a creation request and maps it to an unsaved
// Customer -> OrderMaster -> OrderDetail graph. Identifiers are left zero;
// the database assigns them on commit. Food items are referenced by id only,
// their existence is checked by the foreign key at commit time.
func BuildCustomerGraph(req CustomerCreateRequest) (*models.Customer, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, &ValidationError{"customerName is required"}
	}

	customer := &models.Customer{
		CustomerName: name,
		Orders:       make([]models.OrderMaster, 0, len(req.Orders)),
	}

	for i, o := range req.Orders {
		order, err := buildOrder(fmt.Sprintf("orders[%d]", i), o)
		if err != nil {
			return nil, err
		}
		customer.Orders = append(customer.Orders, *order)
	}

	return customer, nil
}

func buildOrder(field string, req OrderCreateRequest) (*models.OrderMaster, error) {
	pMethod := strings.TrimSpace(req.PMethod)
	if pMethod == "" {
		return nil, &ValidationError{field + ".paymentMethod is required"}
	}
	if req.GTotal == nil {
		return nil, &ValidationError{field + ".grandTotal is required"}
	}
	if err := checkMoneyScale(field+".grandTotal", *req.GTotal); err != nil {
		return nil, err
	}

	orderNumber := strings.TrimSpace(req.OrderNumber)
	if orderNumber == "" {
		orderNumber = NextOrderNumber()
	}

	order := &models.OrderMaster{
		OrderNumber:  orderNumber,
		PMethod:      pMethod,
		GTotal:       *req.GTotal,
		OrderDetails: make([]models.OrderDetail, 0, len(req.OrderDetails)),
	}

	for i, d := range req.OrderDetails {
		detail, err := buildOrderDetail(fmt.Sprintf("%s.orderDetails[%d]", field, i), d)
		if err != nil {
			return nil, err
		}
		order.OrderDetails = append(order.OrderDetails, *detail)
	}

	return order, nil
}

func buildOrderDetail(field string, req OrderDetailCreateRequest) (*models.OrderDetail, error) {
	if req.FoodItemID == 0 {
		return nil, &ValidationError{field + ".foodItemId is required"}
	}
	if req.FoodItemPrice == nil {
		return nil, &ValidationError{field + ".foodItemPrice is required"}
	}
	if req.FoodItemPrice.IsNegative() {
		return nil, &ValidationError{field + ".foodItemPrice must not be negative"}
	}
	if err := checkMoneyScale(field+".foodItemPrice", *req.FoodItemPrice); err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		return nil, &ValidationError{field + ".quantity must be a positive integer"}
	}

	return &models.OrderDetail{
		FoodItemID:    req.FoodItemID,
		FoodItemPrice: *req.FoodItemPrice,
		Quantity:      req.Quantity,
	}, nil
}

// checkMoneyScale rejects monetary values carrying more than 2 fractional
// digits instead of rounding them silently.
func checkMoneyScale(field string, d decimal.Decimal) error {
	if !d.Equal(d.Round(2)) {
		return &ValidationError{field + " must have at most 2 decimal places"}
	}
	return nil
}

var lastOrderTick atomic.Int64

// NextOrderNumber generates a default order number from the current clock
// tick. Ticks are forced strictly increasing within the process, so two
// defaults generated here never collide; there is no uniqueness guarantee
// across processes and the column carries no unique constraint.
func NextOrderNumber() string {
	for {
		last := lastOrderTick.Load()
		tick := time.Now().UnixNano()
		if tick <= last {
			tick = last + 1
		}
		if lastOrderTick.CompareAndSwap(last, tick) {
			return fmt.Sprintf("ORD-%d", tick)
		}
	}
}
