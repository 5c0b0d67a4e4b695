package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrStatusChanged возвращается, когда статус брони изменился после чтения
	ErrStatusChanged = errors.New("reservation.repository: reservation status has changed")

	// ErrDuplicateCode возвращается при совпадении кода подтверждения
	ErrDuplicateCode = errors.New("reservation.repository: confirmation code already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
