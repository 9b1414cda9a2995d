package services

import (
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/live"
	"github.com/dapurnina/catering-app/models"
	"github.com/dapurnina/catering-app/utils"
)

// Notifier adalah presenter notifikasi: simpan ke DB, siarkan ke
// dashboard, dan (opsional) teruskan ke webhook eksternal.
// Semuanya fire-and-forget: kegagalan dicatat, tidak pernah
// menggagalkan operasi pemanggil.
type Notifier struct {
	DB         *gorm.DB
	WebhookURL string
	client     *resty.Client
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{
		DB:         db,
		WebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
		client:     resty.New().SetTimeout(10 * time.Second),
	}
}

// Notify mencatat notifikasi dengan severity tertentu.
func (n *Notifier) Notify(title, message, severity string) {
	notif := models.Notification{
		EventID:   uuid.NewString(),
		Title:     &title,
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	if err := n.DB.Create(&notif).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to store notification: %v", err)
		return
	}

	live.BroadcastNotification(notif)

	if n.WebhookURL != "" {
		go n.forward(notif)
	}
}

// forward mengirim notifikasi ke webhook eksternal. Best-effort.
func (n *Notifier) forward(notif models.Notification) {
	resp, err := n.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(notif).
		Post(n.WebhookURL)
	if err != nil {
		utils.ErrorLogger.Printf("Webhook notify failed: %v", err)
		return
	}
	if resp.IsError() {
		utils.ErrorLogger.Printf("Webhook notify returned %d", resp.StatusCode())
	}
}
