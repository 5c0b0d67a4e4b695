package shifts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	List(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Clock источник текущего времени
type Clock func() time.Time

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
