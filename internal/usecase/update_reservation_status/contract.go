package update_reservation_status

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней.
// UpdateStatus меняет статус только если он всё ещё равен from.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error
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
