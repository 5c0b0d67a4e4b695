package list_shifts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/service/shifts"
	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
)

const (
	msgInvalidProviderID = "некорректный ID исполнителя"
	msgInvalidParams     = "некорректные параметры запроса"
)

type Handler struct {
	service ShiftService
	logger  Logger
}

func NewHandler(service ShiftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shifts
// Query params: view (live|archived), providerId, page, pageSize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.QueryInt64(r, "providerId")
	if err != nil {
		h.logger.Warn("GET /shifts - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	page, pageSize, err := handlers.QueryPage(r)
	if err != nil {
		h.logger.Warn("GET /shifts - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListShiftsRequest{
		View:       r.URL.Query().Get("view"),
		ProviderID: providerID,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		if errors.Is(err, shifts.ErrInvalidInput) {
			h.logger.Warn("GET /shifts - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /shifts - Failed to list shifts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
