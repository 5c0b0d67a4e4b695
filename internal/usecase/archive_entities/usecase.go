package archive_entities

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/integrations/events"
)

// UseCase массовая архивация смен или броней
type UseCase struct {
	archivers map[domain.EntityType]Archiver
	publisher EventPublisher
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftArchiver Archiver,
	reservationArchiver Archiver,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		archivers: map[domain.EntityType]Archiver{
			domain.EntityShift:       shiftArchiver,
			domain.EntityReservation: reservationArchiver,
		},
		publisher: publisher,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute ставит флаг архива на выбранные записи.
// Переход односторонний и идемпотентный: уже архивные и несуществующие ID пропускаются без ошибки.
// Связанные записи (брони архивной смены) не меняются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ArchiveEntities: type=%s, ids=%v", req.EntityType, req.IDs)

	entityType, err := domain.ParseEntityType(req.EntityType)
	if err != nil {
		uc.logger.Warn("ArchiveEntities: %v", err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidEntityType, req.EntityType)
	}

	if len(req.IDs) == 0 {
		return nil, fmt.Errorf("%w: ids must not be empty", ErrInvalidInput)
	}
	for _, id := range req.IDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
		}
	}

	var archived []int64
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		archived, err = uc.archivers[entityType].ArchiveByIDs(txCtx, req.IDs)
		return err
	})
	if err != nil {
		uc.logger.Error("ArchiveEntities: failed to archive %s %v: %v", entityType, req.IDs, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if len(archived) > 0 {
		event := events.EntitiesArchived{EntityType: string(entityType), IDs: archived}
		if err := uc.publisher.EntitiesArchived(ctx, event); err != nil {
			uc.logger.Warn("ArchiveEntities: failed to publish event: %v", err)
		}
	}

	uc.logger.Info("ArchiveEntities: %d of %d %s records archived", len(archived), len(req.IDs), entityType)

	return &Response{EntityType: string(entityType), Requested: len(req.IDs), Archived: archived}, nil
}
