package domain

import "fmt"

// View is one of two disjoint projections over archivable entities
type View string

const (
	ViewLive     View = "live"
	ViewArchived View = "archived"
)

// ParseView validates a projection name. An empty string means ViewLive.
func ParseView(s string) (View, error) {
	switch View(s) {
	case "", ViewLive:
		return ViewLive, nil
	case ViewArchived:
		return ViewArchived, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidView, s)
	}
}

// IsReadOnly returns true if entities cannot be created through the projection
func (v View) IsReadOnly() bool {
	return v == ViewArchived
}

// EnsureWritable rejects creation through a read-only projection
func (v View) EnsureWritable() error {
	if v.IsReadOnly() {
		return ErrReadOnlyView
	}
	return nil
}

// IsLiveShift reports whether the shift belongs to the live projection
func IsLiveShift(s *Shift) bool {
	return !s.IsArchived
}

// IsArchivedShift reports whether the shift belongs to the archived projection
func IsArchivedShift(s *Shift) bool {
	return s.IsArchived
}

// IsLiveReservation reports whether the reservation belongs to the live projection:
// not archived and not rejected.
func IsLiveReservation(r *Reservation) bool {
	return !r.IsArchived && r.Status != StatusNotAccepted
}

// IsArchivedReservation reports whether the reservation belongs to the archived projection:
// archived, or rejected even without an explicit archive action.
func IsArchivedReservation(r *Reservation) bool {
	return r.IsArchived || r.Status == StatusNotAccepted
}

// ShiftInView reports whether the shift is visible in the projection
func ShiftInView(s *Shift, v View) bool {
	if v == ViewArchived {
		return IsArchivedShift(s)
	}
	return IsLiveShift(s)
}

// ReservationInView reports whether the reservation is visible in the projection
func ReservationInView(r *Reservation, v View) bool {
	if v == ViewArchived {
		return IsArchivedReservation(r)
	}
	return IsLiveReservation(r)
}

// EntityType names an archivable entity
type EntityType string

const (
	EntityShift       EntityType = "shift"
	EntityReservation EntityType = "reservation"
)

// ParseEntityType validates an entity type name
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case EntityShift, EntityReservation:
		return EntityType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEntityType, s)
	}
}
