package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucsky/cuid"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/analytics"
	"github.com/dapurnina/catering-app/live"
	"github.com/dapurnina/catering-app/models"
	"github.com/dapurnina/catering-app/pricing"
	"github.com/dapurnina/catering-app/services"
	"github.com/dapurnina/catering-app/utils"
)

type OrderController struct {
	DB       *gorm.DB
	Pricing  pricing.Config
	Notifier *services.Notifier
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:       db,
		Pricing:  pricing.DefaultConfig(),
		Notifier: services.NewNotifier(db),
	}
}

// CreateOrder -> order publik, tanpa login. Validasi dulu, cek slot,
// hitung harga, baru simpan.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type ReqBody struct {
		CustomerName    string `json:"customer_name" binding:"required"`
		CustomerEmail   string `json:"customer_email" binding:"omitempty,email"`
		CustomerPhone   string `json:"customer_phone"`
		FoodType        string `json:"food_type" binding:"required"`
		PackCount       int    `json:"pack_count" binding:"required,min=1,max=20"`
		OrderType       string `json:"order_type" binding:"required,oneof=same-day pre-order"`
		DeliveryMethod  string `json:"delivery_method" binding:"required,oneof=pickup delivery"`
		DeliveryAddress string `json:"delivery_address"`
		TargetDate      string `json:"target_date"` // YYYY-MM-DD, default hari ini
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if _, ok := models.FindFoodItem(oc.Pricing.Catalog, body.FoodType); !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("menu yang dipilih tidak dikenal"))
		return
	}

	withDelivery := body.DeliveryMethod == models.DeliveryMethodDelivery
	if withDelivery && body.DeliveryAddress == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("alamat pengiriman wajib diisi untuk delivery"))
		return
	}

	targetDate := time.Now()
	if body.TargetDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", body.TargetDate, time.Local)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("format tanggal tidak valid, pakai YYYY-MM-DD"))
			return
		}
		targetDate = parsed
	}
	targetDate = time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, time.Local)

	// Tipe order harus sesuai kalender: weekend same-day, weekday pre-order
	if !containsString(pricing.AvailableOrderTypes(targetDate), body.OrderType) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("tipe order %s tidak tersedia untuk tanggal itu", body.OrderType))
		return
	}

	breakdown := pricing.ComputePrice(pricing.OrderRequest{
		FoodType:     body.FoodType,
		PackCount:    body.PackCount,
		OrderType:    body.OrderType,
		WithDelivery: withDelivery,
	}, oc.Pricing)

	order := models.Order{
		TrackingToken:  cuid.New(),
		CustomerName:   body.CustomerName,
		CustomerEmail:  body.CustomerEmail,
		CustomerPhone:  body.CustomerPhone,
		FoodType:       body.FoodType,
		PackCount:      body.PackCount,
		OrderType:      body.OrderType,
		DeliveryMethod: body.DeliveryMethod,
		TargetDate:     targetDate,
		Subtotal:       breakdown.Subtotal,
		RushFee:        breakdown.RushFee,
		DeliveryFee:    breakdown.DeliveryFee,
		TotalAmount:    breakdown.Total,
		Status:         models.OrderStatusPending,
		PaymentStatus:  models.PaymentAwaitingConfirmation,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if withDelivery {
		order.DeliveryAddress = &body.DeliveryAddress
	}

	// Konsumsi slot + insert order dalam satu transaksi
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		var slot models.Slot
		if err := tx.Where("slot_date = ? AND is_active = ?", targetDate, true).First(&slot).Error; err != nil {
			return errors.New("belum ada slot untuk tanggal itu")
		}
		if slot.AvailableCount <= 0 {
			return errors.New("slot untuk tanggal itu sudah penuh")
		}

		slot.AvailableCount--
		slot.UpdatedAt = time.Now()
		if err := tx.Save(&slot).Error; err != nil {
			return err
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	live.BroadcastOrderUpdate(order)
	oc.Notifier.Notify("Order baru",
		fmt.Sprintf("Order #%d (%s, %d pack) masuk, total %s",
			order.ID, order.FoodType, order.PackCount, utils.FormatCurrency(order.TotalAmount)),
		models.SeverityInfo)

	utils.RespondJSON(c, http.StatusCreated, "Order created", gin.H{
		"order_id":       order.ID,
		"tracking_token": order.TrackingToken,
		"breakdown":      breakdown,
	})
}

// TrackOrder -> lookup publik berdasarkan tracking token.
// Token tak dikenal adalah kondisi input biasa, bukan failure.
func (oc *OrderController) TrackOrder(c *gin.Context) {
	token := c.Param("token")

	var order models.Order
	if err := oc.DB.Where("tracking_token = ?", token).First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order dengan kode tracking itu tidak ditemukan"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status", gin.H{
		"order": order,
	})
}

// GetAllOrders -> list untuk dashboard vendor, dengan filter status,
// payment status, dan rentang tanggal (mode today/week/month/custom/all).
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Model(&models.Order{}).Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if payment := c.Query("payment_status"); payment != "" {
		query = query.Where("payment_status = ?", payment)
	}

	mode := analytics.RangeMode(c.DefaultQuery("range", "all"))
	customStart, customEnd, err := parseCustomRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if r, ok := analytics.ResolveRange(mode, time.Now(), customStart, customEnd); ok {
		query = query.Where("created_at >= ? AND created_at < ?", r.Start, r.End)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail order plus aksi yang boleh ditawarkan dashboard.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", gin.H{
		"order":           order,
		"allowed_actions": models.AllowedActions(order.Status, order.PaymentStatus),
	})
}

// ConfirmPayment -> vendor menandai pembayaran diterima.
func (oc *OrderController) ConfirmPayment(c *gin.Context) {
	oc.updatePayment(c, models.PaymentPaid, "Pembayaran dikonfirmasi")
}

// FailPayment -> vendor menandai pembayaran gagal.
func (oc *OrderController) FailPayment(c *gin.Context) {
	oc.updatePayment(c, models.PaymentFailed, "Pembayaran ditandai gagal")
}

func (oc *OrderController) updatePayment(c *gin.Context, target, message string) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	if order.PaymentStatus != models.PaymentAwaitingConfirmation {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("payment status sudah %s", order.PaymentStatus))
		return
	}

	order.PaymentStatus = target
	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	live.BroadcastOrderUpdate(order)
	severity := models.SeverityInfo
	if target == models.PaymentFailed {
		severity = models.SeverityWarning
	}
	oc.Notifier.Notify("Pembayaran", fmt.Sprintf("Order #%d: %s", order.ID, message), severity)

	utils.RespondJSON(c, http.StatusOK, message, order)
}

// UpdateStatus -> vendor memajukan status order. Transisi divalidasi
// di server, tidak lagi percaya tombol di UI saja.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	type ReqBody struct {
		Status string `json:"status" binding:"required"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	if !models.CanTransition(order.Status, body.Status) {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("tidak bisa pindah dari %s ke %s", order.Status, body.Status))
		return
	}
	if body.Status == models.OrderStatusPreparing && order.PaymentStatus != models.PaymentPaid {
		utils.RespondError(c, http.StatusConflict,
			errors.New("order belum dibayar, konfirmasi pembayaran dulu"))
		return
	}

	order.Status = body.Status
	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	live.BroadcastOrderUpdate(order)

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// CancelOrder -> hanya dari pending/preparing. Slot dikembalikan.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	if !models.CanTransition(order.Status, models.OrderStatusCancelled) {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("order dengan status %s tidak bisa dibatalkan", order.Status))
		return
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		order.Status = models.OrderStatusCancelled
		order.UpdatedAt = time.Now()
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		// Kembalikan kapasitas slot kalau masih ada slotnya
		var slot models.Slot
		if err := tx.Where("slot_date = ?", order.TargetDate).First(&slot).Error; err == nil {
			if slot.AvailableCount < slot.TotalCount {
				slot.AvailableCount++
				slot.UpdatedAt = time.Now()
				return tx.Save(&slot).Error
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	live.BroadcastOrderUpdate(order)
	oc.Notifier.Notify("Order dibatalkan",
		fmt.Sprintf("Order #%d milik %s dibatalkan", order.ID, order.CustomerName),
		models.SeverityWarning)

	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

func parseCustomRange(c *gin.Context) (time.Time, time.Time, error) {
	var start, end time.Time
	if s := c.Query("start"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return start, end, errors.New("format start tidak valid, pakai YYYY-MM-DD")
		}
		start = parsed
	}
	if e := c.Query("end"); e != "" {
		parsed, err := time.ParseInLocation("2006-01-02", e, time.Local)
		if err != nil {
			return start, end, errors.New("format end tidak valid, pakai YYYY-MM-DD")
		}
		end = parsed
	}
	return start, end, nil
}

func containsString(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
