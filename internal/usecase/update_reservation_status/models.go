package update_reservation_status

import "github.com/m04kA/SMC-ShiftService/internal/domain"

// Request модель запроса смены статуса
type Request struct {
	ReservationID int64
	Status        string // accepted или not_accepted
}

// Response модель ответа с обновлённой бронью
type Response struct {
	Reservation *domain.Reservation
}
