package get_free_slots

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("get_free_slots: shift not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_free_slots: service not found")

	// ErrServiceNotOffered возвращается, когда услуга не входит в набор смены
	ErrServiceNotOffered = errors.New("get_free_slots: service is not offered by the shift")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_slots: internal error")
)
