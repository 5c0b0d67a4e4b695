package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShift(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("valid weekly shift", func(t *testing.T) {
		s, err := NewShift(nil, start, end, RecurrenceWeekly, 3, true)
		require.NoError(t, err)
		assert.True(t, s.IsRecurring())
		assert.Equal(t, time.Hour, s.Length())
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewShift(nil, end, start, RecurrenceNone, 0, true)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := NewShift(nil, start, start, RecurrenceNone, 0, true)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("rule none drops repeat count", func(t *testing.T) {
		s, err := NewShift(nil, start, end, RecurrenceNone, 5, true)
		require.NoError(t, err)
		assert.Equal(t, 0, s.RepeatCount)
		assert.False(t, s.IsRecurring())
	})

	t.Run("negative repeat count", func(t *testing.T) {
		_, err := NewShift(nil, start, end, RecurrenceWeekly, -1, true)
		assert.ErrorIs(t, err, ErrInvalidRecurrence)
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := NewShift(nil, start, end, RecurrenceRule("daily"), 1, true)
		assert.ErrorIs(t, err, ErrInvalidRecurrence)
	})
}

func TestShift_DerivedIsNotRecurring(t *testing.T) {
	parent := int64(1)
	s := &Shift{ParentShiftID: &parent, Recurrence: RecurrenceWeekly, RepeatCount: 2}
	assert.False(t, s.IsRoot())
	assert.False(t, s.IsRecurring())
}

func TestService_FitsInto(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	shift := &Shift{StartAt: start, EndAt: start.Add(30 * time.Minute)}

	assert.True(t, (&Service{DurationMinutes: 30}).FitsInto(shift))
	assert.False(t, (&Service{DurationMinutes: 31}).FitsInto(shift))
}

func TestService_Validate(t *testing.T) {
	assert.NoError(t, (&Service{DurationMinutes: 15}).Validate())
	assert.ErrorIs(t, (&Service{DurationMinutes: 0}).Validate(), ErrInvalidWindow)
}

func TestReservation_TransitionTo(t *testing.T) {
	r := &Reservation{Status: StatusReview}
	require.NoError(t, r.TransitionTo(StatusAccepted))
	assert.Equal(t, StatusAccepted, r.Status)

	assert.ErrorIs(t, r.TransitionTo(StatusNotAccepted), ErrInvalidStatusTransition)
	assert.ErrorIs(t, (&Reservation{Status: StatusReview}).TransitionTo(StatusReview), ErrInvalidStatusTransition)
}
