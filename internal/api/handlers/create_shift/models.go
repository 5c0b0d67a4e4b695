package create_shift

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	shiftModels "github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
	createShift "github.com/m04kA/SMC-ShiftService/internal/usecase/create_shift"
)

// CreateShiftRequest HTTP request model
type CreateShiftRequest struct {
	ProviderID  *int64  `json:"providerId,omitempty"`
	StartAt     string  `json:"startAt"` // RFC 3339
	EndAt       string  `json:"endAt"`
	Recurrence  string  `json:"recurrence,omitempty"`
	RepeatCount int     `json:"repeatCount,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
	ServiceIDs  []int64 `json:"serviceIds,omitempty"`
}

// CreateShiftResponse HTTP response model
type CreateShiftResponse struct {
	shiftModels.ShiftResponse
	DerivedShiftIDs []int64 `json:"derivedShiftIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateShiftRequest) ToUseCaseRequest() (*createShift.Request, error) {
	startAt, err := time.Parse(domain.DateTimeFormat, r.StartAt)
	if err != nil {
		return nil, err
	}
	endAt, err := time.Parse(domain.DateTimeFormat, r.EndAt)
	if err != nil {
		return nil, err
	}

	return &createShift.Request{
		View:        domain.ViewLive,
		ProviderID:  r.ProviderID,
		StartAt:     startAt,
		EndAt:       endAt,
		Recurrence:  r.Recurrence,
		RepeatCount: r.RepeatCount,
		IsAvailable: r.IsAvailable,
		ServiceIDs:  r.ServiceIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createShift.Response) *CreateShiftResponse {
	derived := resp.DerivedShiftIDs
	if derived == nil {
		derived = []int64{}
	}
	return &CreateShiftResponse{
		ShiftResponse:   shiftModels.FromDomainShift(resp.Shift),
		DerivedShiftIDs: derived,
	}
}
