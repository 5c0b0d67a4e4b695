package create_shift

import "errors"

var (
	// ErrReadOnlyView возвращается при создании смены через архивную проекцию
	ErrReadOnlyView = errors.New("create_shift: archived shifts are read-only")

	// ErrInvalidWindow возвращается, если конец смены не позже начала
	ErrInvalidWindow = errors.New("create_shift: invalid shift window")

	// ErrInvalidRecurrence возвращается при неизвестном правиле или недопустимом числе повторов
	ErrInvalidRecurrence = errors.New("create_shift: invalid recurrence")

	// ErrProviderNotFound возвращается, когда исполнитель не найден
	ErrProviderNotFound = errors.New("create_shift: provider not found")

	// ErrServiceNotFound возвращается, когда одна из услуг не найдена
	ErrServiceNotFound = errors.New("create_shift: service not found")

	// ErrServiceLongerThanShift возвращается, когда услуга длиннее смены
	ErrServiceLongerThanShift = errors.New("create_shift: service duration exceeds shift length")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_shift: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_shift: internal error")
)
