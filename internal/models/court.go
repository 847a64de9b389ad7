package models

import "time"

// Quadra reservável. Preço e duração do slot ficam aqui;
// a agenda semanal vive em OperatingHour/SpecialDate/BlockedSlot.
type Court struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	SportType string `gorm:"size:50" json:"sport_type"`
	Location  string `gorm:"size:255" json:"location"`
	Timezone  string `gorm:"size:50" json:"timezone"`

	PricePerSlot float64 `json:"price_per_slot"`
	SlotDuration int     `gorm:"default:30" json:"slot_duration"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
