package get_free_slots

import "time"

// Request модель запроса свободных слотов
type Request struct {
	ShiftID   int64
	ServiceID int64
}

// Response модель ответа со свободными слотами
type Response struct {
	ShiftID         int64
	ServiceID       int64
	DurationMinutes int
	ShiftStart      time.Time
	ShiftEnd        time.Time
	Slots           []time.Time // В хронологическом порядке
}
