package archive_entities

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/integrations/events"
)

// Archiver переводит записи одного типа в архив и возвращает ID реально изменённых
type Archiver interface {
	ArchiveByIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	EntitiesArchived(ctx context.Context, event events.EntitiesArchived) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
