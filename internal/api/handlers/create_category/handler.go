package create_category

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/service/catalog"
	"github.com/m04kA/SMC-ShiftService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "некорректное название категории"
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

// Handle POST /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidName)
			return
		}
		h.logger.Error("POST /categories - Failed to create category: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
