package catalog

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// CategoryRepository интерфейс репозитория категорий
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}

// ProviderRepository интерфейс репозитория исполнителей
type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.Provider) (*domain.Provider, error)
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	List(ctx context.Context, filter domain.ProviderFilter) ([]*domain.Provider, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, limit, offset uint64) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
