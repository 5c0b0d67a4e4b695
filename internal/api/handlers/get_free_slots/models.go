package get_free_slots

import (
	"github.com/m04kA/SMC-ShiftService/internal/domain"
	getFreeSlots "github.com/m04kA/SMC-ShiftService/internal/usecase/get_free_slots"
)

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	ShiftID         int64    `json:"shiftId"`
	ServiceID       int64    `json:"serviceId"`
	DurationMinutes int      `json:"durationMinutes"`
	ShiftStart      string   `json:"shiftStart"`
	ShiftEnd        string   `json:"shiftEnd"`
	Slots           []string `json:"slots"` // RFC 3339, по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.Format(domain.DateTimeFormat))
	}

	return &FreeSlotsResponse{
		ShiftID:         resp.ShiftID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		ShiftStart:      resp.ShiftStart.Format(domain.DateTimeFormat),
		ShiftEnd:        resp.ShiftEnd.Format(domain.DateTimeFormat),
		Slots:           slots,
	}
}
