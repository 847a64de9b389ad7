package booking

import (
	"time"

	"github.com/BruksfildServices01/court-scheduler/internal/timeutil"
)

// Slot é uma visão derivada: recalculada a cada consulta, nunca persistida.
type Slot struct {
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Duration  int     `json:"duration"`
	Price     float64 `json:"price"`

	IsAvailable    bool   `json:"is_available"`
	BlockedByAdmin bool   `json:"blocked_by_admin,omitempty"`
	BlockReason    string `json:"block_reason,omitempty"`
	BookingID      string `json:"booking_id,omitempty"`
	BookingStatus  string `json:"booking_status,omitempty"`
}

// Antecedência fixa para o dia corrente: slots começando a menos de
// 30 minutos do horário atual não são ofertados.
const todayLeadMinutes = 30

// GenerateTimeSlots gera os horários de início entre open e close.
// O laço corta quando o início alcança o fechamento; um slot cujo
// início ainda precede o fechamento entra mesmo que o fim o ultrapasse.
func GenerateTimeSlots(open, close string, duration int) []string {
	var slots []string
	current := open

	for timeutil.CompareTime(current, close) < 0 {
		slots = append(slots, current)
		current = timeutil.AddMinutes(current, duration)
	}

	return slots
}

// BuildSlots monta a estrutura completa de cada slot, todos
// inicialmente disponíveis.
func BuildSlots(times []string, duration int, price float64) []Slot {
	out := make([]Slot, 0, len(times))
	for _, t := range times {
		out = append(out, Slot{
			StartTime:   t,
			EndTime:     timeutil.AddMinutes(t, duration),
			Duration:    duration,
			Price:       price,
			IsAvailable: true,
		})
	}
	return out
}

// FilterFutureSlots descarta, para o dia corrente, slots que começam
// a menos de 30 minutos de now.
func FilterFutureSlots(slots []Slot, now time.Time) []Slot {
	cutoff := timeutil.MinutesOfDay(now) + todayLeadMinutes

	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if timeutil.ToMinutes(s.StartTime) > cutoff {
			out = append(out, s)
		}
	}
	return out
}
