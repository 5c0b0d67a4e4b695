package domain

import (
	"fmt"
	"time"
)

// RecurrenceRule is the cadence at which a root shift repeats
type RecurrenceRule string

const (
	RecurrenceNone      RecurrenceRule = "none"
	RecurrenceWeekly    RecurrenceRule = "weekly"
	RecurrenceBiweekly  RecurrenceRule = "biweekly"
	RecurrenceMonthly   RecurrenceRule = "monthly"
	RecurrenceBimonthly RecurrenceRule = "bimonthly"
)

// ParseRecurrenceRule validates a rule name. An empty string means RecurrenceNone.
func ParseRecurrenceRule(s string) (RecurrenceRule, error) {
	switch RecurrenceRule(s) {
	case "":
		return RecurrenceNone, nil
	case RecurrenceNone, RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly, RecurrenceBimonthly:
		return RecurrenceRule(s), nil
	default:
		return "", fmt.Errorf("%w: unknown rule %q", ErrInvalidRecurrence, s)
	}
}

// Shift is a bookable time window of a provider
type Shift struct {
	ID            int64
	ProviderID    *int64
	StartAt       time.Time
	EndAt         time.Time
	Recurrence    RecurrenceRule
	RepeatCount   int
	IsAvailable   bool
	IsArchived    bool
	ParentShiftID *int64 // set on shifts produced by recurrence expansion
	ServiceIDs    []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewShift builds a root shift and enforces window and recurrence invariants.
// A rule of none always carries a zero repeat count.
func NewShift(providerID *int64, startAt, endAt time.Time, rule RecurrenceRule, repeatCount int, isAvailable bool) (*Shift, error) {
	if err := ValidateWindow(startAt, endAt); err != nil {
		return nil, err
	}
	if rule == "" {
		rule = RecurrenceNone
	}
	if _, err := ParseRecurrenceRule(string(rule)); err != nil {
		return nil, err
	}
	if repeatCount < 0 || repeatCount > MaxRepeatCount {
		return nil, fmt.Errorf("%w: repeat count must be within [0, %d]", ErrInvalidRecurrence, MaxRepeatCount)
	}
	if rule == RecurrenceNone {
		repeatCount = 0
	}

	return &Shift{
		ProviderID:  providerID,
		StartAt:     startAt,
		EndAt:       endAt,
		Recurrence:  rule,
		RepeatCount: repeatCount,
		IsAvailable: isAvailable,
	}, nil
}

// ValidateWindow checks that end is strictly after start
func ValidateWindow(startAt, endAt time.Time) error {
	if startAt.IsZero() || endAt.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidWindow)
	}
	if !endAt.After(startAt) {
		return fmt.Errorf("%w: end %s must be after start %s",
			ErrInvalidWindow, endAt.Format(time.RFC3339), startAt.Format(time.RFC3339))
	}
	return nil
}

// Length returns the duration of the shift window
func (s *Shift) Length() time.Duration {
	return s.EndAt.Sub(s.StartAt)
}

// IsRoot returns true if the shift was created directly, not by expansion
func (s *Shift) IsRoot() bool {
	return s.ParentShiftID == nil
}

// IsRecurring returns true if the shift should be expanded into derived shifts
func (s *Shift) IsRecurring() bool {
	return s.IsRoot() && s.Recurrence != RecurrenceNone && s.RepeatCount > 0
}

// IsBookable returns true if new reservations may be placed on the shift
func (s *Shift) IsBookable() bool {
	return s.IsAvailable && !s.IsArchived
}

// OffersService returns true if the service belongs to the shift's service set
func (s *Shift) OffersService(serviceID int64) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Archive moves the shift to the archived state. Returns false if it was already archived.
func (s *Shift) Archive() bool {
	if s.IsArchived {
		return false
	}
	s.IsArchived = true
	return true
}

// ShiftFilter filters shift listings
type ShiftFilter struct {
	View        View
	ProviderID  *int64
	ServiceID   *int64
	StartFrom   *time.Time // start_at >= StartFrom
	NewestFirst bool
	Limit       uint64
	Offset      uint64
}
