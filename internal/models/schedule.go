package models

import "time"

// Horário de funcionamento semanal da quadra (uma linha por dia).
// Weekday em minúsculo: monday..sunday.
type OperatingHour struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	CourtID string `gorm:"size:36;index:idx_operating_hours_court_day,unique" json:"court_id"`

	Weekday string `gorm:"size:10;index:idx_operating_hours_court_day,unique" json:"weekday"`
	Open    string `gorm:"size:5" json:"open"`
	Close   string `gorm:"size:5" json:"close"`
	IsOpen  bool   `json:"is_open"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Exceção pontual da agenda semanal (feriado, evento).
// Vale apenas para a data literal; no máximo uma por (quadra, data).
type SpecialDate struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	CourtID string `gorm:"size:36;index:idx_special_dates_court_date,unique" json:"court_id"`

	Date     string `gorm:"size:10;index:idx_special_dates_court_date,unique" json:"date"`
	IsClosed bool   `json:"is_closed"`
	Reason   string `gorm:"size:255" json:"reason"`

	// Horário alternativo quando aberto na data especial (opcional)
	Open  string `gorm:"size:5" json:"open"`
	Close string `gorm:"size:5" json:"close"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Faixa bloqueada pelo administrador (manutenção, evento).
// Independente de reservas de usuário.
type BlockedSlot struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	CourtID string `gorm:"size:36;index" json:"court_id"`

	Date      string `gorm:"size:10;index" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
