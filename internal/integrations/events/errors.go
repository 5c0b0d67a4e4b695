package events

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру
	ErrConnect = errors.New("events publisher: failed to connect to broker")

	// ErrPublish возвращается, когда сообщение не удалось отправить
	ErrPublish = errors.New("events publisher: failed to publish message")

	// ErrMarshal возвращается при ошибке сериализации события
	ErrMarshal = errors.New("events publisher: failed to marshal event")

	// ErrClosed возвращается при публикации через закрытый publisher
	ErrClosed = errors.New("events publisher: closed")
)
