package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	"github.com/m04kA/SMC-ShiftService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-ShiftService/internal/usecase/create_reservation"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartAt     = "некорректный формат времени начала, ожидается RFC 3339"
	msgShiftNotFound      = "смена не найдена"
	msgServiceNotFound    = "услуга не найдена"
	msgShiftNotBookable   = "смена недоступна для записи"
	msgServiceNotOffered  = "услуга не оказывается в этой смене"
	msgSlotUnavailable    = "выбранный слот недоступен"
	msgBookingConflict    = "слот заняли параллельно, повторите попытку"
	msgInvalidInput       = "некорректные параметры брони"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /reservations - Slot unavailable: user_id=%d, shift_id=%d, start=%s",
				userID, req.ShiftID, req.StartAt)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createReservation.ErrBookingConflict):
			h.logger.Warn("POST /reservations - Booking conflict: user_id=%d, shift_id=%d", userID, req.ShiftID)
			handlers.RespondConflict(w, msgBookingConflict)

		case errors.Is(err, createReservation.ErrShiftNotFound):
			handlers.RespondNotFound(w, msgShiftNotFound)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrShiftNotBookable):
			handlers.RespondConflict(w, msgShiftNotBookable)

		case errors.Is(err, createReservation.ErrServiceNotOffered):
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, createReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, shift_id=%d, error=%v",
				userID, req.ShiftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, user_id=%d, shift_id=%d",
		result.Reservation.ID, userID, req.ShiftID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainReservation(result.Reservation))
}
