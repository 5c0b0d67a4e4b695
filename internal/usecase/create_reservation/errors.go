package create_reservation

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("create_reservation: shift not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrShiftNotBookable возвращается для архивной или недоступной смены
	ErrShiftNotBookable = errors.New("create_reservation: shift is not bookable")

	// ErrServiceNotOffered возвращается, когда услуга не входит в набор смены
	ErrServiceNotOffered = errors.New("create_reservation: service is not offered by the shift")

	// ErrSlotUnavailable возвращается, когда время начала не входит в текущий список свободных слотов
	ErrSlotUnavailable = errors.New("create_reservation: slot is not available")

	// ErrBookingConflict возвращается, когда конкурентная запись помешала транзакции.
	// Клиенту стоит заново запросить свободные слоты и повторить попытку.
	ErrBookingConflict = errors.New("create_reservation: concurrent booking conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
