package get_free_slots

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	// ListByShift возвращает все брони смены с длительностью их услуг
	ListByShift(ctx context.Context, shiftID int64) ([]*domain.Reservation, error)
}

// Metrics метрики ответа калькулятора
type Metrics interface {
	ObserveFreeSlots(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
