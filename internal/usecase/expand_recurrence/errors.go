package expand_recurrence

import "errors"

var (
	// ErrInvalidInput возвращается, если корневая смена не подходит для разворачивания
	ErrInvalidInput = errors.New("expand_recurrence: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("expand_recurrence: internal error")
)
