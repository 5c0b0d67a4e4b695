package expand_recurrence

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	AttachServices(ctx context.Context, shiftID int64, serviceIDs []int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчик созданных разворачиванием смен
type Metrics interface {
	AddShiftsExpanded(rule string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
