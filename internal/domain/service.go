package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable activity with a fixed duration and price
type Service struct {
	ID              int64
	Name            string
	Subtitle        *string
	DurationMinutes int
	Price           decimal.Decimal
	CreatedAt       time.Time
}

// Duration returns the service duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// Validate checks the service invariants
func (s *Service) Validate() error {
	if s.DurationMinutes < MinServiceDuration || s.DurationMinutes > MaxServiceDuration {
		return fmt.Errorf("%w: service duration must be within [%d, %d] minutes",
			ErrInvalidWindow, MinServiceDuration, MaxServiceDuration)
	}
	if s.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidPrice)
	}
	return nil
}

// FitsInto returns true if the service duration does not exceed the shift length
func (s *Service) FitsInto(shift *Shift) bool {
	return s.Duration() <= shift.Length()
}
