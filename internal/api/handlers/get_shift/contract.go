package get_shift

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
)

type ShiftService interface {
	GetByID(ctx context.Context, id int64) (*models.ShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
