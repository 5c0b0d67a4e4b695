package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	createReservation "github.com/m04kA/SMC-ShiftService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ShiftID   int64  `json:"shiftId"`
	ServiceID int64  `json:"serviceId"`
	StartAt   string `json:"startAt"` // RFC 3339, должен совпадать с одним из свободных слотов
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(requesterID int64) (*createReservation.Request, error) {
	startAt, err := time.Parse(domain.DateTimeFormat, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		RequesterID: requesterID,
		ShiftID:     r.ShiftID,
		ServiceID:   r.ServiceID,
		StartAt:     startAt,
	}, nil
}
