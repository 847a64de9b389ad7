package models

import "time"

// Trilha de auditoria append-only. Nunca atualizada nem apagada.
type BookingLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID string `gorm:"size:36;index" json:"booking_id"`
	CourtID   string `gorm:"size:36;index" json:"court_id"`
	UserID    string `gorm:"size:36" json:"user_id"`

	Action          string `gorm:"size:50;not null" json:"action"`
	PerformedBy     string `gorm:"size:36" json:"performed_by"`
	PerformedByRole string `gorm:"size:20" json:"performed_by_role"`

	OldData string `gorm:"type:text" json:"old_data"`
	NewData string `gorm:"type:text" json:"new_data"`

	CreatedAt time.Time `json:"created_at"`
}
