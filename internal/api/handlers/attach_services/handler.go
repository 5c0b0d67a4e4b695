package attach_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	attachServices "github.com/m04kA/SMC-ShiftService/internal/usecase/attach_services"
)

const (
	msgInvalidShiftID         = "некорректный ID смены"
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgShiftNotFound          = "смена не найдена"
	msgShiftArchived          = "смена находится в архиве"
	msgServiceNotFound        = "услуга не найдена"
	msgServiceLongerThanShift = "услуга длиннее смены"
	msgInvalidInput           = "некорректный список услуг"
)

type Handler struct {
	useCase AttachServicesUseCase
	logger  Logger
}

func NewHandler(useCase AttachServicesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shifts/{shiftId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shiftID, err := handlers.PathInt64(mux.Vars(r), "shiftId")
	if err != nil {
		h.logger.Warn("POST /shifts/{id}/services - Invalid shift ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	var req AttachServicesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shifts/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &attachServices.Request{ShiftID: shiftID, ServiceIDs: req.ServiceIDs})
	if err != nil {
		switch {
		case errors.Is(err, attachServices.ErrShiftNotFound):
			handlers.RespondNotFound(w, msgShiftNotFound)

		case errors.Is(err, attachServices.ErrShiftArchived):
			h.logger.Warn("POST /shifts/{id}/services - Shift archived: shift_id=%d", shiftID)
			handlers.RespondConflict(w, msgShiftArchived)

		case errors.Is(err, attachServices.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, attachServices.ErrServiceLongerThanShift):
			handlers.RespondBadRequest(w, msgServiceLongerThanShift)

		case errors.Is(err, attachServices.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /shifts/{id}/services - Failed to attach services: shift_id=%d, error=%v", shiftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shifts/{id}/services - Services attached: shift_id=%d, derived=%d",
		shiftID, len(result.DerivedShiftIDs))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
