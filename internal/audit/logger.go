package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {

	marshal := func(v any) string {
		if v == nil {
			return ""
		}
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
		return ""
	}

	log := models.BookingLog{
		BookingID:       ev.BookingID,
		CourtID:         ev.CourtID,
		UserID:          ev.UserID,
		Action:          ev.Action,
		PerformedBy:     ev.PerformedBy,
		PerformedByRole: ev.PerformedByRole,
		OldData:         marshal(ev.OldData),
		NewData:         marshal(ev.NewData),
	}

	return l.db.Create(&log).Error
}
