package create_shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	providerRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-ShiftService/internal/integrations/events"
	"github.com/m04kA/SMC-ShiftService/pkg/ptr"
)

// UseCase use case для создания смены вместе с набором услуг
type UseCase struct {
	shiftRepo    ShiftRepository
	serviceRepo  ServiceRepository
	providerRepo ProviderRepository
	expander     Expander
	publisher    EventPublisher
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftRepo ShiftRepository,
	serviceRepo ServiceRepository,
	providerRepo ProviderRepository,
	expander Expander,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		shiftRepo:    shiftRepo,
		serviceRepo:  serviceRepo,
		providerRepo: providerRepo,
		expander:     expander,
		publisher:    publisher,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute создаёт корневую смену и её набор услуг в одной транзакции.
// Если набор услуг непустой и задано правило повторения, в той же транзакции
// создаются производные смены: параллельный запрос не увидит смену без услуг.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateShift: provider=%v, start=%s, end=%s, rule=%s x%d, services=%v",
		ptr.Deref(req.ProviderID, 0), req.StartAt.Format(domain.DateTimeFormat), req.EndAt.Format(domain.DateTimeFormat),
		req.Recurrence, req.RepeatCount, req.ServiceIDs)

	// 1. Архивная проекция только для чтения
	if err := req.View.EnsureWritable(); err != nil {
		uc.logger.Warn("CreateShift: rejected, view %s is read-only", req.View)
		return nil, ErrReadOnlyView
	}

	// 2. Валидация входных данных и инвариантов смены
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateShift: validation failed: %v", err)
		return nil, err
	}

	rule, err := domain.ParseRecurrenceRule(req.Recurrence)
	if err != nil {
		uc.logger.Warn("CreateShift: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)
	}

	shift, err := domain.NewShift(req.ProviderID, req.StartAt, req.EndAt, rule, req.RepeatCount, ptr.Deref(req.IsAvailable, true))
	if err != nil {
		uc.logger.Warn("CreateShift: %v", err)
		if errors.Is(err, domain.ErrInvalidWindow) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)
	}

	// 3. Проверяем исполнителя
	if req.ProviderID != nil {
		if _, err := uc.providerRepo.GetByID(ctx, *req.ProviderID); err != nil {
			if errors.Is(err, providerRepo.ErrProviderNotFound) {
				uc.logger.Warn("CreateShift: provider id=%d not found", *req.ProviderID)
				return nil, ErrProviderNotFound
			}
			uc.logger.Error("CreateShift: failed to get provider id=%d: %v", *req.ProviderID, err)
			return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
		}
	}

	// 4. Проверяем услуги: все существуют и каждая помещается в смену
	serviceIDs := uniqueIDs(req.ServiceIDs)
	if len(serviceIDs) > 0 {
		services, err := uc.serviceRepo.GetByIDs(ctx, serviceIDs)
		if err != nil {
			uc.logger.Error("CreateShift: failed to get services: %v", err)
			return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}
		if err := validateServicesFit(shift, serviceIDs, services); err != nil {
			uc.logger.Warn("CreateShift: %v", err)
			return nil, err
		}
	}

	// 5. Смена, набор услуг и разворачивание - атомарно
	var derivedIDs []int64
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.shiftRepo.Create(txCtx, shift)
		if err != nil {
			return fmt.Errorf("%w: failed to create shift: %v", ErrInternal, err)
		}

		if len(serviceIDs) == 0 {
			return nil
		}

		if _, err := uc.shiftRepo.AttachServices(txCtx, created.ID, serviceIDs); err != nil {
			return fmt.Errorf("%w: failed to attach services: %v", ErrInternal, err)
		}
		created.ServiceIDs = serviceIDs

		// Набор услуг стал непустым - единственная точка запуска разворачивания для новой смены
		derivedIDs, err = uc.expander.Execute(txCtx, created)
		if err != nil {
			return fmt.Errorf("%w: failed to expand recurrence: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("CreateShift: transaction failed: %v", err)
		return nil, err
	}

	if len(derivedIDs) > 0 {
		event := events.ShiftsExpanded{RootShiftID: shift.ID, Rule: string(shift.Recurrence), DerivedShiftID: derivedIDs}
		if err := uc.publisher.ShiftsExpanded(ctx, event); err != nil {
			uc.logger.Warn("CreateShift: failed to publish expansion of shift id=%d: %v", shift.ID, err)
		}
	}

	uc.logger.Info("CreateShift: created shift id=%d with %d derived shifts", shift.ID, len(derivedIDs))

	if derivedIDs == nil {
		derivedIDs = []int64{}
	}
	return &Response{Shift: shift, DerivedShiftIDs: derivedIDs}, nil
}
