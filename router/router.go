package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food_delivery_admin/controllers"
	"food_delivery_admin/middlewares"
	"food_delivery_admin/services"
)

func SetupRouter(db *gorm.DB, statsCache *services.StatsCache) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	dashboardCtrl := controllers.NewDashboardController(db, statsCache)
	restaurantCtrl := controllers.NewRestaurantController(db)
	customerCtrl := controllers.NewCustomerController(db)
	foodItemCtrl := controllers.NewFoodItemController(db)
	orderCtrl := controllers.NewOrderController(db)
	couponCtrl := controllers.NewCouponController(db)
	agentCtrl := controllers.NewDeliveryAgentController(db)
	deliveryCtrl := controllers.NewDeliveryController(db)
	reviewCtrl := controllers.NewReviewController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	userCtrl := controllers.NewUserController(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/", dashboardCtrl.GetStats)

	// Rate limit login/register harder than the rest
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.POST("/restaurants", restaurantCtrl.CreateRestaurant)
	r.GET("/restaurants/delete/:id", restaurantCtrl.DeleteRestaurant)

	r.GET("/customers", customerCtrl.GetAllCustomers)
	r.POST("/customers", customerCtrl.CreateCustomer)
	r.GET("/customers/delete/:id", customerCtrl.DeleteCustomer)

	r.GET("/food_items", foodItemCtrl.GetAllFoodItems)
	r.POST("/food_items", foodItemCtrl.CreateFoodItem)
	r.GET("/food_items/delete/:id", foodItemCtrl.DeleteFoodItem)

	r.GET("/orders", orderCtrl.GetAllOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/delete/:id", orderCtrl.DeleteOrder)
	r.GET("/order_details/:id", orderCtrl.GetOrderDetails)
	r.POST("/order_details/:id", orderCtrl.AddOrderDetail)

	r.GET("/coupons", couponCtrl.GetAllCoupons)
	r.POST("/coupons", couponCtrl.CreateCoupon)
	r.GET("/coupons/delete/:id", couponCtrl.DeleteCoupon)

	r.GET("/delivery_agents", agentCtrl.GetAllAgents)
	r.POST("/delivery_agents", agentCtrl.CreateAgent)
	r.GET("/delivery_agents/delete/:id", agentCtrl.DeleteAgent)

	r.GET("/deliveries", deliveryCtrl.GetAllDeliveries)
	r.POST("/deliveries", deliveryCtrl.CreateDelivery)
	r.PATCH("/deliveries/:id/complete", deliveryCtrl.CompleteDelivery)
	r.GET("/deliveries/delete/:id", deliveryCtrl.DeleteDelivery)

	r.GET("/reviews", reviewCtrl.GetAllReviews)
	r.POST("/reviews", reviewCtrl.CreateReview)
	r.GET("/reviews/delete/:id", reviewCtrl.DeleteReview)

	r.GET("/payments", paymentCtrl.GetAllPayments)
	r.POST("/payments", paymentCtrl.CreatePayment)
	r.GET("/payments/delete/:id", paymentCtrl.DeletePayment)

	// Authenticated admin surface
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("admin"))
	{
		admin.GET("/stats", dashboardCtrl.GetStats)
	}

	return r
}
