package archive_entities

import "errors"

var (
	// ErrInvalidEntityType возвращается для неизвестного типа записи
	ErrInvalidEntityType = errors.New("archive_entities: invalid entity type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("archive_entities: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("archive_entities: internal error")
)
