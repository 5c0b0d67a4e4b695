package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/service/reservations"
	"github.com/m04kA/SMC-ShiftService/internal/service/reservations/models"
)

const (
	msgInvalidShiftID = "некорректный ID смены"
	msgInvalidParams  = "некорректные параметры запроса"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: view (live|archived), shiftId, page, pageSize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shiftID, err := handlers.QueryInt64(r, "shiftId")
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid shift ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	page, pageSize, err := handlers.QueryPage(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListReservationsRequest{
		View:     r.URL.Query().Get("view"),
		ShiftID:  shiftID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			h.logger.Warn("GET /reservations - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /reservations - Failed to list reservations: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
