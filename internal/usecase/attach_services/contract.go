package attach_services

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/integrations/events"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	// GetByID внутри транзакции блокирует строку смены
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	AttachServices(ctx context.Context, shiftID int64, serviceIDs []int64) (int64, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// Expander разворачивает повторяющуюся смену (usecase expand_recurrence)
type Expander interface {
	Execute(ctx context.Context, root *domain.Shift) ([]int64, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	ShiftsExpanded(ctx context.Context, event events.ShiftsExpanded) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
