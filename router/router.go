package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/controllers"
	"github.com/yeremiapane/restaurant-api/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Middleware must be attached before the route groups; gin snapshots
	// each route's handler chain at registration time.
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(cors.New(corsConfig()))

	rateLimiter := middlewares.NewRateLimiter(50, 100)
	r.Use(rateLimiter.RateLimit())

	customerCtrl := controllers.NewCustomerController(db)
	orderCtrl := controllers.NewOrderController(db)
	detailCtrl := controllers.NewOrderDetailController(db)
	foodItemCtrl := controllers.NewFoodItemController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	customers := r.Group("/customers")
	{
		customers.GET("", customerCtrl.GetAllCustomers)
		customers.POST("", customerCtrl.CreateCustomer)
		customers.GET("/:customer_id", customerCtrl.GetCustomerByID)
		customers.PUT("/:customer_id", customerCtrl.ReplaceCustomer)
		customers.DELETE("/:customer_id", customerCtrl.DeleteCustomer)
	}

	orders := r.Group("/orders")
	{
		orders.GET("", orderCtrl.GetAllOrders)
		orders.GET("/:order_id", orderCtrl.GetOrderByID)
		orders.PUT("/:order_id", orderCtrl.ReplaceOrder)
		orders.DELETE("/:order_id", orderCtrl.DeleteOrder)
		orders.GET("/:order_id/details", detailCtrl.GetDetailsByOrder)
	}

	details := r.Group("/order-details")
	{
		details.GET("/:detail_id", detailCtrl.GetOrderDetailByID)
		details.PUT("/:detail_id", detailCtrl.ReplaceOrderDetail)
		details.DELETE("/:detail_id", detailCtrl.DeleteOrderDetail)
	}

	foodItems := r.Group("/food-items")
	{
		foodItems.GET("", foodItemCtrl.GetAllFoodItems)
		foodItems.POST("", foodItemCtrl.CreateFoodItem)
		foodItems.GET("/:food_item_id", foodItemCtrl.GetFoodItemByID)
		foodItems.PUT("/:food_item_id", foodItemCtrl.ReplaceFoodItem)
		foodItems.DELETE("/:food_item_id", foodItemCtrl.DeleteFoodItem)
	}

	return r
}

func corsConfig() cors.Config {
	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:3000"
	}

	return cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
