package update_reservation_status

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("update_reservation_status: reservation not found")

	// ErrInvalidStatus возвращается для неизвестного статуса
	ErrInvalidStatus = errors.New("update_reservation_status: invalid status")

	// ErrInvalidTransition возвращается, если переход статуса запрещён
	ErrInvalidTransition = errors.New("update_reservation_status: status transition not allowed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation_status: internal error")
)
