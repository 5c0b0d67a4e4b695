package domain

import (
	"fmt"
	"time"
)

// ReservationStatus is the review state of a reservation
type ReservationStatus string

const (
	StatusReview      ReservationStatus = "review"
	StatusAccepted    ReservationStatus = "accepted"
	StatusNotAccepted ReservationStatus = "not_accepted"
)

// ParseReservationStatus validates a status name
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case StatusReview, StatusAccepted, StatusNotAccepted:
		return ReservationStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Reservation is a booking of one service inside one shift
type Reservation struct {
	ID          int64
	RequesterID int64
	ShiftID     int64
	ServiceID   int64
	StartAt     time.Time
	Code        string
	Status      ReservationStatus
	IsArchived  bool

	// ServiceDurationMinutes is read from the booked service, not stored on the reservation
	ServiceDurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the duration of the booked service
func (r *Reservation) Duration() time.Duration {
	return time.Duration(r.ServiceDurationMinutes) * time.Minute
}

// EndAt returns the end of the occupied interval
func (r *Reservation) EndAt() time.Time {
	return r.StartAt.Add(r.Duration())
}

// OccupiesCalendar returns true if the reservation blocks its interval.
// A not-accepted reservation frees its slot.
func (r *Reservation) OccupiesCalendar() bool {
	return r.Status != StatusNotAccepted
}

// CanTransitionTo returns true if the status change is allowed (review -> accepted | not_accepted)
func (r *Reservation) CanTransitionTo(status ReservationStatus) bool {
	return r.Status == StatusReview && (status == StatusAccepted || status == StatusNotAccepted)
}

// TransitionTo applies a status change
func (r *Reservation) TransitionTo(status ReservationStatus) error {
	if !r.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, r.Status, status)
	}
	r.Status = status
	return nil
}

// Archive moves the reservation to the archived state. Returns false if it was already archived.
func (r *Reservation) Archive() bool {
	if r.IsArchived {
		return false
	}
	r.IsArchived = true
	return true
}

// ReservationFilter filters reservation listings
type ReservationFilter struct {
	View        View
	ShiftID     *int64
	RequesterID *int64
	Limit       uint64
	Offset      uint64
}
