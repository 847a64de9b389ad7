package booking

type AvailabilityInput struct {
	CourtID string
	Date    string
}

// AvailabilityResult é a resposta da consulta de slots: lista anotada
// mais os agregados que o cliente exibe.
type AvailabilityResult struct {
	Slots   []Slot `json:"slots"`
	IsOpen  bool   `json:"is_open"`
	Message string `json:"message"`

	TotalSlots     int `json:"total_slots"`
	AvailableCount int `json:"available_count"`
	BookedCount    int `json:"booked_count"`
}
