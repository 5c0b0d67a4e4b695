package create_shift

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	createShift "github.com/m04kA/SMC-ShiftService/internal/usecase/create_shift"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgReadOnlyView           = "архивные смены доступны только для чтения"
	msgInvalidDateTime        = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidWindow          = "конец смены должен быть позже начала"
	msgInvalidRecurrence      = "некорректное правило повторения или число повторов"
	msgProviderNotFound       = "исполнитель не найден"
	msgServiceNotFound        = "услуга не найдена"
	msgServiceLongerThanShift = "услуга длиннее смены"
	msgInvalidInput           = "некорректные параметры смены"
)

type Handler struct {
	useCase CreateShiftUseCase
	logger  Logger
}

func NewHandler(useCase CreateShiftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shifts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /shifts - Invalid datetime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createShift.ErrReadOnlyView):
			handlers.RespondError(w, http.StatusMethodNotAllowed, msgReadOnlyView)

		case errors.Is(err, createShift.ErrInvalidWindow):
			h.logger.Warn("POST /shifts - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, createShift.ErrInvalidRecurrence):
			h.logger.Warn("POST /shifts - Invalid recurrence: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, createShift.ErrProviderNotFound):
			h.logger.Warn("POST /shifts - Provider not found: provider_id=%v", req.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, createShift.ErrServiceNotFound):
			h.logger.Warn("POST /shifts - Service not found: service_ids=%v", req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createShift.ErrServiceLongerThanShift):
			h.logger.Warn("POST /shifts - %v", err)
			handlers.RespondBadRequest(w, msgServiceLongerThanShift)

		case errors.Is(err, createShift.ErrInvalidInput):
			h.logger.Warn("POST /shifts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /shifts - Failed to create shift: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shifts - Shift created successfully: shift_id=%d, derived=%d",
		result.Shift.ID, len(result.DerivedShiftIDs))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
