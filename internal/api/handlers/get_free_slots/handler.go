package get_free_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	getFreeSlots "github.com/m04kA/SMC-ShiftService/internal/usecase/get_free_slots"
)

const (
	msgInvalidShiftID    = "некорректный ID смены"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgMissingServiceID  = "ID услуги обязателен"
	msgShiftNotFound     = "смена не найдена"
	msgServiceNotFound   = "услуга не найдена"
	msgServiceNotOffered = "услуга не оказывается в этой смене"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shifts/{shiftId}/free-slots
// Query params: serviceId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shiftID, err := handlers.PathInt64(mux.Vars(r), "shiftId")
	if err != nil {
		h.logger.Warn("GET /shifts/{id}/free-slots - Invalid shift ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	serviceID, err := handlers.QueryInt64(r, "serviceId")
	if err != nil {
		h.logger.Warn("GET /shifts/{id}/free-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}
	if serviceID == nil {
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeSlots.Request{ShiftID: shiftID, ServiceID: *serviceID})
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrShiftNotFound):
			handlers.RespondNotFound(w, msgShiftNotFound)

		case errors.Is(err, getFreeSlots.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getFreeSlots.ErrServiceNotOffered):
			h.logger.Warn("GET /shifts/{id}/free-slots - Service not offered: shift_id=%d, service_id=%d", shiftID, *serviceID)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		default:
			h.logger.Error("GET /shifts/{id}/free-slots - Failed to get slots: shift_id=%d, service_id=%d, error=%v",
				shiftID, *serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shifts/{id}/free-slots - Slots retrieved: shift_id=%d, service_id=%d, slots_count=%d",
		shiftID, *serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
