package archive_entities

import (
	"context"

	archiveEntities "github.com/m04kA/SMC-ShiftService/internal/usecase/archive_entities"
)

type ArchiveUseCase interface {
	Execute(ctx context.Context, req *archiveEntities.Request) (*archiveEntities.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
