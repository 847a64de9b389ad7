package timeutil

import (
	"fmt"
	"time"
)

// Helpers puros para horários "HH:MM" e datas "YYYY-MM-DD".
// Nenhuma função aqui toca banco ou relógio de parede; quem precisa
// de "agora" recebe um time.Time de fora.

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var weekdays = [...]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// ToMinutes converte "HH:MM" em minutos desde a meia-noite.
func ToMinutes(t string) int {
	var h, m int
	fmt.Sscanf(t, "%d:%d", &h, &m)
	return h*60 + m
}

// AddMinutes soma minutos a um horário, dando a volta dentro do dia.
// Não avança a data: cruzamento de meia-noite é problema do chamador.
func AddMinutes(t string, minutes int) string {
	total := (ToMinutes(t) + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// CompareTime devolve negativo se a < b, zero se iguais, positivo se a > b.
func CompareTime(a, b string) int {
	return ToMinutes(a) - ToMinutes(b)
}

// IsTimeInRange verifica se t cai em [start, end).
func IsTimeInRange(t, start, end string) bool {
	m := ToMinutes(t)
	return m >= ToMinutes(start) && m < ToMinutes(end)
}

// DayOfWeek devolve o dia da semana em minúsculo (monday..sunday).
// Data inválida devolve "".
func DayOfWeek(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return weekdays[int(d.Weekday())]
}

// FormatDate formata uma data no layout YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsPastDate compara só a parte de data, no fuso de now.
func IsPastDate(date string, now time.Time) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	today, _ := time.Parse(DateLayout, FormatDate(now))
	return d.Before(today)
}

// IsToday verifica se a data é o dia corrente no fuso de now.
func IsToday(date string, now time.Time) bool {
	return date == FormatDate(now)
}

// MinutesOfDay devolve os minutos desde a meia-noite de now.
func MinutesOfDay(now time.Time) int {
	return now.Hour()*60 + now.Minute()
}

// ValidTime reporta se t está no formato HH:MM com valores válidos.
func ValidTime(t string) bool {
	_, err := time.Parse(TimeLayout, t)
	return err == nil && len(t) == 5
}

// ValidDate reporta se date está no formato YYYY-MM-DD.
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
