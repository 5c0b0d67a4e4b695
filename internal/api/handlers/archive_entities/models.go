package archive_entities

import archiveEntities "github.com/m04kA/SMC-ShiftService/internal/usecase/archive_entities"

// ArchiveRequest HTTP request model
type ArchiveRequest struct {
	EntityType string  `json:"entityType"` // shift | reservation
	IDs        []int64 `json:"ids"`
}

// ArchiveResponse HTTP response model
type ArchiveResponse struct {
	EntityType string  `json:"entityType"`
	Requested  int     `json:"requested"`
	Archived   []int64 `json:"archived"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *archiveEntities.Response) *ArchiveResponse {
	archived := resp.Archived
	if archived == nil {
		archived = []int64{}
	}
	return &ArchiveResponse{
		EntityType: resp.EntityType,
		Requested:  resp.Requested,
		Archived:   archived,
	}
}
