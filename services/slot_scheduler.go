package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/dapurnina/catering-app/models"
	"github.com/dapurnina/catering-app/utils"
)

// SlotScheduler menonaktifkan slot kapasitas yang tanggalnya sudah
// lewat, setiap tengah malam. Slot lama tidak dihapus, hanya
// dinonaktifkan supaya riwayat tetap ada.
type SlotScheduler struct {
	DB   *gorm.DB
	cron *cron.Cron
}

func NewSlotScheduler(db *gorm.DB) *SlotScheduler {
	return &SlotScheduler{
		DB:   db,
		cron: cron.New(),
	}
}

func (s *SlotScheduler) Start() {
	// Jalan saat boot sekali, lalu tiap tengah malam
	s.DeactivateExpired()

	if _, err := s.cron.AddFunc("5 0 * * *", s.DeactivateExpired); err != nil {
		utils.ErrorLogger.Printf("Failed to schedule slot cleanup: %v", err)
		return
	}
	s.cron.Start()
}

func (s *SlotScheduler) Stop() {
	s.cron.Stop()
}

// DeactivateExpired mematikan flag aktif untuk slot dengan tanggal < hari ini.
func (s *SlotScheduler) DeactivateExpired() {
	today := time.Now()
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	result := s.DB.Model(&models.Slot{}).
		Where("slot_date < ? AND is_active = ?", startOfToday, true).
		Update("is_active", false)
	if result.Error != nil {
		utils.ErrorLogger.Printf("Slot cleanup failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		utils.InfoLogger.Printf("Deactivated %d expired slot(s)", result.RowsAffected)
	}
}
