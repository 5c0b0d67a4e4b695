package create_category

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.CategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
