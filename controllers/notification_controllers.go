package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/models"
	"github.com/dapurnina/catering-app/services"
	"github.com/dapurnina/catering-app/utils"
)

type NotificationController struct {
	DB       *gorm.DB
	Notifier *services.Notifier
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{
		DB:       db,
		Notifier: services.NewNotifier(db),
	}
}

// GetAllNotifications -> terbaru dulu
func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	var notifs []models.Notification
	if err := nc.DB.Order("created_at desc").Limit(100).Find(&notifs).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All notifications", notifs)
}

// CreateNotification -> manual dari dashboard
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	type reqBody struct {
		Title    string `json:"title"`
		Message  string `json:"message" binding:"required"`
		Severity string `json:"severity" binding:"omitempty,oneof=info warning error"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	severity := body.Severity
	if severity == "" {
		severity = models.SeverityInfo
	}

	nc.Notifier.Notify(body.Title, body.Message, severity)

	utils.RespondJSON(c, http.StatusCreated, "Notification created", nil)
}

// DeleteNotification
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	idStr := c.Param("notif_id")
	id, _ := strconv.Atoi(idStr)

	if err := nc.DB.Delete(&models.Notification{}, id).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification deleted", gin.H{"notif_id": id})
}
