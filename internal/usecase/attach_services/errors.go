package attach_services

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("attach_services: shift not found")

	// ErrShiftArchived возвращается при изменении архивной смены
	ErrShiftArchived = errors.New("attach_services: shift is archived")

	// ErrServiceNotFound возвращается, когда одна из услуг не найдена
	ErrServiceNotFound = errors.New("attach_services: service not found")

	// ErrServiceLongerThanShift возвращается, когда услуга длиннее смены
	ErrServiceLongerThanShift = errors.New("attach_services: service duration exceeds shift length")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("attach_services: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("attach_services: internal error")
)
