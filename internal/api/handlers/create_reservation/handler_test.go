package create_reservation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	"github.com/m04kA/SMC-ShiftService/internal/domain"
	createReservation "github.com/m04kA/SMC-ShiftService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ShiftService/pkg/logger"
)

type stubUseCase struct {
	got *createReservation.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &createReservation.Response{Reservation: &domain.Reservation{
		ID:                     10,
		RequesterID:            req.RequesterID,
		ShiftID:                req.ShiftID,
		ServiceID:              req.ServiceID,
		StartAt:                req.StartAt,
		Code:                   "Ab3dE5gH9",
		Status:                 domain.StatusReview,
		ServiceDurationMinutes: 15,
	}}, nil
}

func serve(t *testing.T, uc *stubUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := middleware.Auth(http.HandlerFunc(NewHandler(uc, logger.NewNop()).Handle))
	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	r.Header.Set(middleware.UserIDHeader, "5")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{}
	w := serve(t, uc, `{"shiftId":1,"serviceId":2,"startAt":"2024-01-01T08:30:00Z"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(5), uc.got.RequesterID)
	assert.True(t, uc.got.StartAt.Equal(time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)))
	assert.Contains(t, w.Body.String(), `"code":"Ab3dE5gH9"`)
	assert.Contains(t, w.Body.String(), `"endAt":"2024-01-01T08:45:00Z"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := map[error]int{
		createReservation.ErrSlotUnavailable:   http.StatusConflict,
		createReservation.ErrBookingConflict:   http.StatusConflict,
		createReservation.ErrShiftNotBookable:  http.StatusConflict,
		createReservation.ErrShiftNotFound:     http.StatusNotFound,
		createReservation.ErrServiceNotFound:   http.StatusNotFound,
		createReservation.ErrServiceNotOffered: http.StatusBadRequest,
		createReservation.ErrInternal:          http.StatusInternalServerError,
	}
	for err, status := range cases {
		t.Run(err.Error(), func(t *testing.T) {
			uc := &stubUseCase{err: fmt.Errorf("%w: details", err)}
			w := serve(t, uc, `{"shiftId":1,"serviceId":2,"startAt":"2024-01-01T08:30:00Z"}`)
			assert.Equal(t, status, w.Code)
		})
	}
}

func TestHandle_BadRequest(t *testing.T) {
	uc := &stubUseCase{}

	w := serve(t, uc, `{"shiftId":1,"serviceId":2,"startAt":"08:30"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, uc, `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.got)
}
