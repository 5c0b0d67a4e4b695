package events

import "time"

// Ключи маршрутизации событий в topic-exchange
const (
	RoutingReservationCreated = "reservation.created"
	RoutingShiftsExpanded     = "shifts.expanded"
	RoutingEntitiesArchived   = "entities.archived"
)

// ReservationCreated событие создания брони
type ReservationCreated struct {
	ReservationID int64     `json:"reservationId"`
	ShiftID       int64     `json:"shiftId"`
	ServiceID     int64     `json:"serviceId"`
	RequesterID   int64     `json:"requesterId"`
	StartAt       time.Time `json:"startAt"`
	Code          string    `json:"code"`
}

// ShiftsExpanded событие разворачивания повторяющейся смены
type ShiftsExpanded struct {
	RootShiftID    int64   `json:"rootShiftId"`
	Rule           string  `json:"rule"`
	DerivedShiftID []int64 `json:"derivedShiftIds"`
}

// EntitiesArchived событие перевода записей в архив
type EntitiesArchived struct {
	EntityType string  `json:"entityType"`
	IDs        []int64 `json:"ids"`
}
