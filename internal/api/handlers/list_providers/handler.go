package list_providers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/service/catalog"
	"github.com/m04kA/SMC-ShiftService/internal/service/catalog/models"
)

const (
	msgInvalidCategoryID = "некорректный ID категории"
	msgInvalidParams     = "некорректные параметры запроса"
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

// Handle GET /api/v1/providers
// Query params: categoryId, page, pageSize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categoryID, err := handlers.QueryInt64(r, "categoryId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	page, pageSize, err := handlers.QueryPage(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListProviders(r.Context(), &models.ListProvidersRequest{
		CategoryID: categoryID,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /providers - Failed to list providers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
