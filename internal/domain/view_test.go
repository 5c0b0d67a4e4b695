package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationProjections(t *testing.T) {
	cases := []struct {
		name     string
		archived bool
		status   ReservationStatus
		live     bool
		archive  bool
	}{
		{"review", false, StatusReview, true, false},
		{"accepted", false, StatusAccepted, true, false},
		{"rejected without archive action", false, StatusNotAccepted, false, true},
		{"archived accepted", true, StatusAccepted, false, true},
		{"archived rejected", true, StatusNotAccepted, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &Reservation{IsArchived: tc.archived, Status: tc.status}

			assert.Equal(t, tc.live, IsLiveReservation(r))
			assert.Equal(t, tc.archive, IsArchivedReservation(r))
			// the two projections are disjoint and cover every reservation
			assert.NotEqual(t, IsLiveReservation(r), IsArchivedReservation(r))
			assert.Equal(t, tc.live, ReservationInView(r, ViewLive))
			assert.Equal(t, tc.archive, ReservationInView(r, ViewArchived))
		})
	}
}

func TestShiftProjections(t *testing.T) {
	live := &Shift{}
	archived := &Shift{IsArchived: true}

	assert.True(t, IsLiveShift(live))
	assert.False(t, IsArchivedShift(live))
	assert.True(t, IsArchivedShift(archived))
	assert.False(t, IsLiveShift(archived))
	assert.True(t, ShiftInView(archived, ViewArchived))
	assert.False(t, ShiftInView(archived, ViewLive))
}

func TestView(t *testing.T) {
	v, err := ParseView("")
	assert.NoError(t, err)
	assert.Equal(t, ViewLive, v)

	v, err = ParseView("archived")
	assert.NoError(t, err)
	assert.True(t, v.IsReadOnly())
	assert.ErrorIs(t, v.EnsureWritable(), ErrReadOnlyView)
	assert.NoError(t, ViewLive.EnsureWritable())

	_, err = ParseView("deleted")
	assert.ErrorIs(t, err, ErrInvalidView)
}

func TestArchiveIsIdempotent(t *testing.T) {
	s := &Shift{}
	assert.True(t, s.Archive())
	assert.False(t, s.Archive())
	assert.True(t, s.IsArchived)

	r := &Reservation{Status: StatusAccepted}
	assert.True(t, r.Archive())
	assert.False(t, r.Archive())
	assert.True(t, r.IsArchived)
	assert.Equal(t, StatusAccepted, r.Status)
}
