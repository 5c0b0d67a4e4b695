package create_provider

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateProvider(ctx context.Context, req *models.CreateProviderRequest) (*models.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
