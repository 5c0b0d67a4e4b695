package expand_recurrence

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/scheduling"
)

// UseCase разворачивает повторяющуюся корневую смену в производные смены
type UseCase struct {
	shiftRepo ShiftRepository
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(shiftRepo ShiftRepository, txManager TransactionManager, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		shiftRepo: shiftRepo,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute создаёт root.RepeatCount производных смен с копией набора услуг корня
// и возвращает их ID в хронологическом порядке.
// Для правила none или нулевого числа повторов ничего не делает.
//
// Вызывается ровно один раз - когда набор услуг корневой смены становится непустым.
// Повторный вызов для того же корня создаст дубликаты: дедупликации здесь нет.
// Если в контексте уже есть транзакция, работа выполняется в ней.
func (uc *UseCase) Execute(ctx context.Context, root *domain.Shift) ([]int64, error) {
	if root == nil || root.ID <= 0 {
		return nil, fmt.Errorf("%w: root shift must be persisted", ErrInvalidInput)
	}

	if !root.IsRecurring() {
		uc.logger.Info("ExpandRecurrence: shift id=%d is not recurring, nothing to do", root.ID)
		return []int64{}, nil
	}

	if len(root.ServiceIDs) == 0 {
		return nil, fmt.Errorf("%w: shift id=%d has no services to copy", ErrInvalidInput, root.ID)
	}

	derived, err := scheduling.Expand(root)
	if err != nil {
		uc.logger.Warn("ExpandRecurrence: shift id=%d: %v", root.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	ids := make([]int64, 0, len(derived))
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, shift := range derived {
			created, err := uc.shiftRepo.Create(txCtx, shift)
			if err != nil {
				return fmt.Errorf("%w: create derived shift: %w", ErrInternal, err)
			}
			if _, err := uc.shiftRepo.AttachServices(txCtx, created.ID, shift.ServiceIDs); err != nil {
				return fmt.Errorf("%w: attach services to derived shift id=%d: %w", ErrInternal, created.ID, err)
			}
			ids = append(ids, created.ID)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("ExpandRecurrence: failed to expand shift id=%d: %v", root.ID, err)
		return nil, err
	}

	uc.metrics.AddShiftsExpanded(string(root.Recurrence), len(ids))
	uc.logger.Info("ExpandRecurrence: shift id=%d (%s x%d) expanded into %v",
		root.ID, root.Recurrence, root.RepeatCount, ids)

	return ids, nil
}
