package models

import "time"

// Slot adalah kapasitas order harian yang dikelola vendor.
// Satu slot = satu tanggal dengan jumlah total dan sisa yang tersedia.
type Slot struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SlotDate       time.Time `gorm:"not null;index" json:"slot_date"`
	TotalCount     int       `gorm:"not null" json:"total_count"`
	AvailableCount int       `gorm:"not null" json:"available_count"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
