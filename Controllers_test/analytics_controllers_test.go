package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucsky/cuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/analytics"
	"github.com/dapurnina/catering-app/controllers"
	"github.com/dapurnina/catering-app/middlewares"
	"github.com/dapurnina/catering-app/models"
	"github.com/dapurnina/catering-app/utils"
)

func setupAnalyticsRouter(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	router := gin.Default()
	analyticsCtrl := controllers.NewAnalyticsController(db)

	auth := router.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())
	auth.GET("/dashboard/analytics", analyticsCtrl.GetDashboardAnalytics)

	token, err := utils.GenerateToken(1, "admin")
	assert.NoError(t, err)
	return router, db, token
}

func seedAnalyticsOrder(t *testing.T, db *gorm.DB, foodType string, packs int, total float64, method, status string, createdAt time.Time) {
	order := models.Order{
		TrackingToken:  cuid.New(),
		CustomerName:   "Test",
		FoodType:       foodType,
		PackCount:      packs,
		OrderType:      models.OrderTypePreOrder,
		DeliveryMethod: method,
		TargetDate:     createdAt,
		TotalAmount:    total,
		Status:         status,
		PaymentStatus:  models.PaymentPaid,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
}

func TestDashboardAnalytics(t *testing.T) {
	router, db, token := setupAnalyticsRouter(t)

	now := time.Now()
	seedAnalyticsOrder(t, db, "regular-pack", 2, 40.00, models.DeliveryMethodPickup, models.OrderStatusPending, now)
	seedAnalyticsOrder(t, db, "family-pack", 5, 125.00, models.DeliveryMethodDelivery, models.OrderStatusDelivered, now)
	// Order cancelled tidak ikut dihitung
	seedAnalyticsOrder(t, db, "party-tray", 1, 40.00, models.DeliveryMethodPickup, models.OrderStatusCancelled, now)

	w := authRequest(t, router, "GET", "/admin/dashboard/analytics?range=all", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Range   string            `json:"range"`
			Summary analytics.Summary `json:"summary"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	summary := resp.Data.Summary
	assert.Equal(t, "all", resp.Data.Range)
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 1, summary.PickupCount)
	assert.Equal(t, 1, summary.DeliveryCount)
	assert.Equal(t, 165.00, summary.TotalRevenue)
	assert.Equal(t, 82.50, summary.AvgOrderValue)
	assert.Len(t, summary.RevenueByDay, 7)
	assert.Len(t, summary.TopFoodItems, 2)
	assert.Equal(t, "Family Pack", summary.TopFoodItems[0].Name)
}

func TestDashboardAnalyticsRangeFilter(t *testing.T) {
	router, db, token := setupAnalyticsRouter(t)

	now := time.Now()
	seedAnalyticsOrder(t, db, "regular-pack", 2, 40.00, models.DeliveryMethodPickup, models.OrderStatusPending, now)
	// Order dua bulan lalu tidak masuk range today
	seedAnalyticsOrder(t, db, "family-pack", 3, 75.00, models.DeliveryMethodPickup, models.OrderStatusPending, now.AddDate(0, -2, 0))

	w := authRequest(t, router, "GET", "/admin/dashboard/analytics?range=today", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Summary analytics.Summary `json:"summary"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Summary.TotalOrders)
	assert.Equal(t, 40.00, resp.Data.Summary.TotalRevenue)
}
