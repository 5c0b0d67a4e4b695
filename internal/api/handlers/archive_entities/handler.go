package archive_entities

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	archiveEntities "github.com/m04kA/SMC-ShiftService/internal/usecase/archive_entities"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEntityType  = "некорректный тип записи, ожидается shift или reservation"
	msgInvalidIDs         = "список ID должен быть непустым и содержать положительные значения"
)

type Handler struct {
	useCase ArchiveUseCase
	logger  Logger
}

func NewHandler(useCase ArchiveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/archive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ArchiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /archive - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &archiveEntities.Request{EntityType: req.EntityType, IDs: req.IDs})
	if err != nil {
		switch {
		case errors.Is(err, archiveEntities.ErrInvalidEntityType):
			handlers.RespondBadRequest(w, msgInvalidEntityType)

		case errors.Is(err, archiveEntities.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidIDs)

		default:
			h.logger.Error("POST /archive - Failed to archive: type=%s, error=%v", req.EntityType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /archive - Archived %d of %d %s records", len(result.Archived), result.Requested, result.EntityType)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
