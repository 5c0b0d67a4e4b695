package scheduling

import (
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

const day = 24 * time.Hour

// StepFor returns the offset between consecutive instances of a rule.
// Monthly and bimonthly are fixed 30 and 60 day offsets, not calendar months.
func StepFor(rule domain.RecurrenceRule) (time.Duration, bool) {
	switch rule {
	case domain.RecurrenceWeekly:
		return 7 * day, true
	case domain.RecurrenceBiweekly:
		return 14 * day, true
	case domain.RecurrenceMonthly:
		return 30 * day, true
	case domain.RecurrenceBimonthly:
		return 60 * day, true
	default:
		return 0, false
	}
}

// Expand produces the derived instances of a recurring root shift in chronological order.
// The result has exactly root.RepeatCount shifts; a non-recurring shift yields nil.
// Derived shifts are non-recurring, point back to the root and carry a copy of its service set.
// The root must already have an ID.
func Expand(root *domain.Shift) ([]*domain.Shift, error) {
	if !root.IsRecurring() {
		return nil, nil
	}
	step, ok := StepFor(root.Recurrence)
	if !ok {
		return nil, fmt.Errorf("%w: no step for rule %q", domain.ErrInvalidRecurrence, root.Recurrence)
	}

	parentID := root.ID
	derived := make([]*domain.Shift, 0, root.RepeatCount)
	curStart, curEnd := root.StartAt, root.EndAt

	for range root.RepeatCount {
		curStart, curEnd = curStart.Add(step), curEnd.Add(step)

		var providerID *int64
		if root.ProviderID != nil {
			id := *root.ProviderID
			providerID = &id
		}

		derived = append(derived, &domain.Shift{
			ProviderID:    providerID,
			StartAt:       curStart,
			EndAt:         curEnd,
			Recurrence:    domain.RecurrenceNone,
			RepeatCount:   0,
			IsAvailable:   root.IsAvailable,
			ParentShiftID: &parentID,
			ServiceIDs:    slices.Clone(root.ServiceIDs),
		})
	}

	return derived, nil
}
