package list_upcoming_shifts

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
)

type ShiftService interface {
	Upcoming(ctx context.Context, req *models.UpcomingShiftsRequest) (*models.ShiftListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
