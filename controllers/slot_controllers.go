package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/live"
	"github.com/dapurnina/catering-app/models"
	"github.com/dapurnina/catering-app/utils"
)

type SlotController struct {
	DB *gorm.DB
}

func NewSlotController(db *gorm.DB) *SlotController {
	return &SlotController{DB: db}
}

// GetAvailableSlots -> publik, untuk date picker di form order.
// Hanya slot aktif mulai hari ini yang masih punya sisa.
func (sc *SlotController) GetAvailableSlots(c *gin.Context) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var slots []models.Slot
	if err := sc.DB.
		Where("is_active = ? AND slot_date >= ? AND available_count > 0", true, today).
		Order("slot_date asc").
		Find(&slots).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Available slots", slots)
}

// GetAllSlots -> list lengkap untuk dashboard vendor.
func (sc *SlotController) GetAllSlots(c *gin.Context) {
	var slots []models.Slot
	if err := sc.DB.Order("slot_date desc").Find(&slots).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of slots", slots)
}

// CreateSlot -> satu slot per tanggal.
func (sc *SlotController) CreateSlot(c *gin.Context) {
	type ReqBody struct {
		SlotDate   string `json:"slot_date" binding:"required"`
		TotalCount int    `json:"total_count" binding:"required,min=1"`
		IsActive   *bool  `json:"is_active"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", body.SlotDate, time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("format tanggal tidak valid, pakai YYYY-MM-DD"))
		return
	}

	var existing models.Slot
	if err := sc.DB.Where("slot_date = ?", date).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("slot untuk tanggal itu sudah ada"))
		return
	}

	slot := models.Slot{
		SlotDate:       date,
		TotalCount:     body.TotalCount,
		AvailableCount: body.TotalCount,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if body.IsActive != nil {
		slot.IsActive = *body.IsActive
	}

	if err := sc.DB.Create(&slot).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	live.BroadcastSlotUpdate(slot)

	utils.RespondJSON(c, http.StatusCreated, "Slot created", slot)
}

// UpdateSlot -> ubah kapasitas atau flag aktif. Menaikkan total juga
// menaikkan sisa dengan selisih yang sama; menurunkan tidak boleh
// membuat sisa jadi negatif.
func (sc *SlotController) UpdateSlot(c *gin.Context) {
	var slot models.Slot
	if err := sc.DB.First(&slot, c.Param("slot_id")).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	type ReqBody struct {
		TotalCount *int  `json:"total_count" binding:"omitempty,min=1"`
		IsActive   *bool `json:"is_active"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.TotalCount != nil {
		diff := *body.TotalCount - slot.TotalCount
		if slot.AvailableCount+diff < 0 {
			utils.RespondError(c, http.StatusConflict,
				errors.New("kapasitas baru lebih kecil dari jumlah yang sudah terpakai"))
			return
		}
		slot.TotalCount = *body.TotalCount
		slot.AvailableCount += diff
	}
	if body.IsActive != nil {
		slot.IsActive = *body.IsActive
	}
	slot.UpdatedAt = time.Now()

	if err := sc.DB.Save(&slot).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	live.BroadcastSlotUpdate(slot)

	utils.RespondJSON(c, http.StatusOK, "Slot updated", slot)
}

// DeleteSlot
func (sc *SlotController) DeleteSlot(c *gin.Context) {
	var slot models.Slot
	if err := sc.DB.First(&slot, c.Param("slot_id")).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	if err := sc.DB.Delete(&slot).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Slot deleted", gin.H{"slot_id": slot.ID})
}
