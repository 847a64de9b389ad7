package booking

import (
	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

// ===============================
// Agenda da quadra
// ===============================

type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}

type HourRange struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Schedule é o documento lógico da agenda de uma quadra: grade semanal,
// datas especiais e faixas bloqueadas pelo administrador.
type Schedule struct {
	OperatingHours map[string]DayHours
	SpecialDates   []models.SpecialDate
	BlockedSlots   []models.BlockedSlot
}

type DayAvailability struct {
	IsOpen bool
	Reason string
	Hours  *HourRange
}

// ResolveDayAvailability decide se a quadra abre na data e com que
// horário. Data especial governa sozinha a data literal — não é regra
// recorrente; sem especial, vale a grade semanal.
func ResolveDayAvailability(s *Schedule, date, weekday string) DayAvailability {
	for _, sd := range s.SpecialDates {
		if sd.Date != date {
			continue
		}

		av := DayAvailability{
			IsOpen: !sd.IsClosed,
			Reason: sd.Reason,
		}
		if av.Reason == "" {
			av.Reason = "Special date"
		}
		if av.IsOpen && sd.Open != "" && sd.Close != "" {
			av.Hours = &HourRange{Open: sd.Open, Close: sd.Close}
		}
		return av
	}

	day, ok := s.OperatingHours[weekday]
	if !ok || !day.IsOpen {
		return DayAvailability{
			IsOpen: false,
			Reason: "Court closed on this day",
		}
	}

	return DayAvailability{
		IsOpen: true,
		Reason: "Regular operating hours",
		Hours:  &HourRange{Open: day.Open, Close: day.Close},
	}
}

// BlockedFor devolve as faixas bloqueadas pelo admin para a data.
func (s *Schedule) BlockedFor(date string) []models.BlockedSlot {
	var out []models.BlockedSlot
	for _, bs := range s.BlockedSlots {
		if bs.Date == date {
			out = append(out, bs)
		}
	}
	return out
}

// DefaultOperatingHours é a grade aplicada a quadras sem agenda salva.
func DefaultOperatingHours() map[string]DayHours {
	return map[string]DayHours{
		"monday":    {Open: "06:00", Close: "22:00", IsOpen: true},
		"tuesday":   {Open: "06:00", Close: "22:00", IsOpen: true},
		"wednesday": {Open: "06:00", Close: "22:00", IsOpen: true},
		"thursday":  {Open: "06:00", Close: "22:00", IsOpen: true},
		"friday":    {Open: "06:00", Close: "22:00", IsOpen: true},
		"saturday":  {Open: "06:00", Close: "23:00", IsOpen: true},
		"sunday":    {Open: "07:00", Close: "23:00", IsOpen: true},
	}
}
