package attach_services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-ShiftService/internal/integrations/events"
)

// UseCase use case для добавления услуг в существующую смену
type UseCase struct {
	shiftRepo   ShiftRepository
	serviceRepo ServiceRepository
	expander    Expander
	publisher   EventPublisher
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftRepo ShiftRepository,
	serviceRepo ServiceRepository,
	expander Expander,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		shiftRepo:   shiftRepo,
		serviceRepo: serviceRepo,
		expander:    expander,
		publisher:   publisher,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute добавляет услуги в набор смены.
// Когда набор корневой повторяющейся смены переходит из пустого в непустой,
// в той же транзакции ровно один раз запускается разворачивание.
// Строка смены блокируется, поэтому два параллельных вызова не развернут её дважды.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AttachServices: shift=%d, services=%v", req.ShiftID, req.ServiceIDs)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AttachServices: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{ShiftID: req.ShiftID}
	var root *domain.Shift

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Смена с блокировкой строки
		shift, err := uc.shiftRepo.GetByID(txCtx, req.ShiftID)
		if err != nil {
			if errors.Is(err, shiftRepo.ErrShiftNotFound) {
				return ErrShiftNotFound
			}
			return fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
		}
		if shift.IsArchived {
			return ErrShiftArchived
		}

		// 2. Все услуги существуют и помещаются в смену
		services, err := uc.serviceRepo.GetByIDs(txCtx, req.ServiceIDs)
		if err != nil {
			return fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}
		if err := validateServicesFit(shift, req.ServiceIDs, services); err != nil {
			return err
		}

		// 3. Добавляем связи
		wasEmpty := len(shift.ServiceIDs) == 0
		added, err := uc.shiftRepo.AttachServices(txCtx, shift.ID, req.ServiceIDs)
		if err != nil {
			return fmt.Errorf("%w: failed to attach services: %v", ErrInternal, err)
		}

		for _, id := range req.ServiceIDs {
			if !slices.Contains(shift.ServiceIDs, id) {
				shift.ServiceIDs = append(shift.ServiceIDs, id)
			}
		}
		slices.Sort(shift.ServiceIDs)
		resp.ServiceIDs = shift.ServiceIDs

		// 4. Первое наполнение набора - запуск разворачивания
		if wasEmpty && added > 0 && shift.IsRecurring() {
			resp.DerivedShiftIDs, err = uc.expander.Execute(txCtx, shift)
			if err != nil {
				return fmt.Errorf("%w: failed to expand recurrence: %v", ErrInternal, err)
			}
			root = shift
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("AttachServices: shift=%d: %v", req.ShiftID, err)
		} else {
			uc.logger.Warn("AttachServices: shift=%d: %v", req.ShiftID, err)
		}
		return nil, err
	}

	if root != nil && len(resp.DerivedShiftIDs) > 0 {
		event := events.ShiftsExpanded{RootShiftID: root.ID, Rule: string(root.Recurrence), DerivedShiftID: resp.DerivedShiftIDs}
		if err := uc.publisher.ShiftsExpanded(ctx, event); err != nil {
			uc.logger.Warn("AttachServices: failed to publish expansion of shift id=%d: %v", root.ID, err)
		}
	}

	if resp.DerivedShiftIDs == nil {
		resp.DerivedShiftIDs = []int64{}
	}

	uc.logger.Info("AttachServices: shift=%d now offers %v, derived=%v", req.ShiftID, resp.ServiceIDs, resp.DerivedShiftIDs)
	return resp, nil
}
