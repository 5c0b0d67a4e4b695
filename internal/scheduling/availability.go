package scheduling

import (
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// FreeSlots returns the ordered start instants inside [shiftStart, shiftEnd) where a service
// of the given duration fits without overlapping any reservation that occupies the calendar.
// Reservations may arrive unsorted and overlapping; not-accepted ones are ignored.
// Every reservation must belong to the shift and carry its own service duration.
func FreeSlots(shiftStart, shiftEnd time.Time, duration time.Duration, reservations []*domain.Reservation) ([]time.Time, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: service duration must be positive", domain.ErrInvalidWindow)
	}
	if err := domain.ValidateWindow(shiftStart, shiftEnd); err != nil {
		return nil, err
	}

	occupied := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.OccupiesCalendar() {
			occupied = append(occupied, r)
		}
	}
	slices.SortStableFunc(occupied, func(a, b *domain.Reservation) int {
		return a.StartAt.Compare(b.StartAt)
	})

	free := make([]time.Time, 0)
	cursor := shiftStart

	for _, r := range occupied {
		if r.StartAt.Sub(cursor) >= duration {
			for t := range Tile(cursor, r.StartAt, duration) {
				free = append(free, t)
			}
		}
		// the cursor never moves backward, so a reservation nested inside
		// an earlier, longer one does not reopen the covered gap
		if end := r.EndAt(); end.After(cursor) {
			cursor = end
		}
	}

	if cursor.Before(shiftEnd) {
		for t := range Tile(cursor, shiftEnd, duration) {
			free = append(free, t)
		}
	}

	return free, nil
}

// IsFree reports whether start is one of the instants FreeSlots would return.
func IsFree(start time.Time, slots []time.Time) bool {
	return slices.ContainsFunc(slots, func(t time.Time) bool { return t.Equal(start) })
}
