package models

import "time"

// Preference adalah baris key/value best-effort untuk preferensi client
// (remembered email, recent order lookups). Isinya tidak pernah dipakai
// sebagai sumber kebenaran untuk keputusan bisnis.
type Preference struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_client_pref" json:"client_id"`
	PrefKey   string    `gorm:"column:pref_key;type:varchar(100);not null;uniqueIndex:idx_client_pref" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
