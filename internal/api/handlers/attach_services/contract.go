package attach_services

import (
	"context"

	attachServices "github.com/m04kA/SMC-ShiftService/internal/usecase/attach_services"
)

type AttachServicesUseCase interface {
	Execute(ctx context.Context, req *attachServices.Request) (*attachServices.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
