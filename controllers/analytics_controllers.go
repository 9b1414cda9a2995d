package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/analytics"
	"github.com/dapurnina/catering-app/live"
	"github.com/dapurnina/catering-app/models"
	"github.com/dapurnina/catering-app/pricing"
	"github.com/dapurnina/catering-app/utils"
)

type AnalyticsController struct {
	DB      *gorm.DB
	Pricing pricing.Config
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db, Pricing: pricing.DefaultConfig()}
}

// GetDashboardAnalytics -> ambil order sesuai rentang lalu agregasi.
// Summary selalu dihitung ulang dari nol, tidak ada cache.
func (ac *AnalyticsController) GetDashboardAnalytics(c *gin.Context) {
	mode := analytics.RangeMode(c.DefaultQuery("range", "week"))
	customStart, customEnd, err := parseCustomRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	query := ac.DB.Model(&models.Order{}).Where("status <> ?", models.OrderStatusCancelled)
	if r, ok := analytics.ResolveRange(mode, time.Now(), customStart, customEnd); ok {
		query = query.Where("created_at >= ? AND created_at < ?", r.Start, r.End)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	summary := analytics.Aggregate(orders, ac.Pricing.Catalog)

	live.BroadcastMessage(live.Message{
		Event: live.EventDashboardUpdate,
		Data:  summary,
	})

	utils.RespondJSON(c, http.StatusOK, "Dashboard analytics", gin.H{
		"range":   string(mode),
		"summary": summary,
	})
}
