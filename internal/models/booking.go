package models

import "time"

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID    string `gorm:"size:36;index" json:"user_id"`
	UserName  string `gorm:"size:100" json:"user_name"`
	UserEmail string `gorm:"size:100" json:"user_email"`

	// Nome/esporte/preço copiados da quadra no momento da reserva.
	// Desnormalização proposital: o histórico não muda se a quadra mudar.
	CourtID   string `gorm:"size:36;index:idx_bookings_slot" json:"court_id"`
	CourtName string `gorm:"size:100" json:"court_name"`
	SportType string `gorm:"size:50" json:"sport_type"`

	Date      string `gorm:"size:10;index:idx_bookings_slot" json:"date"`
	StartTime string `gorm:"size:5;index:idx_bookings_slot" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Duration  int    `json:"duration"`

	Amount        float64 `json:"amount"`
	PaymentStatus string  `gorm:"size:20;default:'pending'" json:"payment_status"`
	BookingStatus string  `gorm:"size:20;default:'reserved';index" json:"booking_status"`

	PaymentID string `gorm:"size:100" json:"payment_id"`
	OrderID   string `gorm:"size:100" json:"order_id"`

	CancelReason string     `gorm:"size:255" json:"cancel_reason"`
	CancelledAt  *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
