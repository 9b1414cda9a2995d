package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/controllers"
	"github.com/dapurnina/catering-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	catalogCtrl := controllers.NewCatalogController()
	orderCtrl := controllers.NewOrderController(db)
	slotCtrl := controllers.NewSlotController(db)
	analyticsCtrl := controllers.NewAnalyticsController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	prefCtrl := controllers.NewPreferenceController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Form order publik: katalog, tipe order per tanggal, preview harga
	r.GET("/catalog", catalogCtrl.GetCatalog)
	r.GET("/order-types", catalogCtrl.GetOrderTypes)
	r.POST("/quote", catalogCtrl.Quote)
	r.GET("/slots/available", slotCtrl.GetAvailableSlots)

	// Membuat order dan tracking (customer tidak perlu login)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/track/:token", orderCtrl.TrackOrder)

	// Preferensi client (remembered email, recent lookups) - best effort
	r.GET("/preferences/:client_id/:key", prefCtrl.GetPreference)
	r.PUT("/preferences/:client_id/:key", prefCtrl.SetPreference)
	r.DELETE("/preferences/:client_id/:key", prefCtrl.RemovePreference)

	// ----------------------------------------------------------------
	//                      VENDOR DASHBOARD (auth)
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)
	auth.GET("/users", middlewares.RequireRole("admin"), userCtrl.GetAllUsers)
	auth.POST("/logout", userCtrl.Logout)

	// ORDERS
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.POST("/orders/:order_id/confirm-payment", orderCtrl.ConfirmPayment)
	auth.POST("/orders/:order_id/fail-payment", orderCtrl.FailPayment)
	auth.PATCH("/orders/:order_id/status", orderCtrl.UpdateStatus)
	auth.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)

	// SLOTS (mutasi khusus admin, staff cukup lihat)
	auth.GET("/slots", slotCtrl.GetAllSlots)
	auth.POST("/slots", middlewares.RequireRole("admin"), slotCtrl.CreateSlot)
	auth.PATCH("/slots/:slot_id", middlewares.RequireRole("admin"), slotCtrl.UpdateSlot)
	auth.DELETE("/slots/:slot_id", middlewares.RequireRole("admin"), slotCtrl.DeleteSlot)

	// ANALYTICS
	auth.GET("/dashboard/analytics", analyticsCtrl.GetDashboardAnalytics)

	// NOTIFICATIONS
	auth.GET("/notifications", notificationCtrl.GetAllNotifications)
	auth.POST("/notifications", notificationCtrl.CreateNotification)
	auth.DELETE("/notifications/:notif_id", notificationCtrl.DeleteNotification)

	// WebSocket feed untuk dashboard
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/dashboard", controllers.DashboardFeedHandler)
	}

	return r
}
