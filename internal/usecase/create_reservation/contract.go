package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/integrations/events"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	// GetByID внутри транзакции блокирует строку смены (FOR UPDATE)
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	ListByShift(ctx context.Context, shiftID int64) ([]*domain.Reservation, error)
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	// IsConflict сообщает, что транзакция проиграла конкурентной записи
	IsConflict(err error) bool
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	ReservationCreated(ctx context.Context, event events.ReservationCreated) error
}

// Metrics бизнес-метрики бронирования
type Metrics interface {
	IncReservationCreated(serviceID string)
	IncBookingRejected(reason string)
}

// CodeGenerator генератор кодов подтверждения (для тестирования)
type CodeGenerator interface {
	Generate() (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
