package list_shifts

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
)

type ShiftService interface {
	List(ctx context.Context, req *models.ListShiftsRequest) (*models.ShiftListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
