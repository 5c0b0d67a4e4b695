package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// Request модель запроса на бронирование
type Request struct {
	RequesterID int64     // ID пользователя (из X-User-ID)
	ShiftID     int64     // ID смены
	ServiceID   int64     // ID услуги
	StartAt     time.Time // Желаемое время начала
}

// Response модель ответа с созданной бронью
type Response struct {
	Reservation *domain.Reservation
}
