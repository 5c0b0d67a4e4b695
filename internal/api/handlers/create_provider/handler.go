package create_provider

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/service/catalog"
	"github.com/m04kA/SMC-ShiftService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные исполнителя"
	msgCategoryNotFound   = "категория не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateProvider(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, catalog.ErrCategoryNotFound):
			handlers.RespondNotFound(w, msgCategoryNotFound)
		default:
			h.logger.Error("POST /providers - Failed to create provider: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers - Provider created: provider_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
