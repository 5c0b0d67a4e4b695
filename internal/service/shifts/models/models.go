package models

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ListShiftsRequest запрос списка смен
type ListShiftsRequest struct {
	View       string // live (по умолчанию) или archived
	ProviderID *int64
	Page       int
	PageSize   int
}

// UpcomingShiftsRequest запрос предстоящих смен для услуги
type UpcomingShiftsRequest struct {
	ServiceID int64
	Page      int
	PageSize  int
}

// ShiftResponse ответ с данными смены
type ShiftResponse struct {
	ID            int64   `json:"id"`
	ProviderID    *int64  `json:"providerId,omitempty"`
	StartAt       string  `json:"startAt"` // RFC 3339
	EndAt         string  `json:"endAt"`
	Recurrence    string  `json:"recurrence"`
	RepeatCount   int     `json:"repeatCount"`
	IsAvailable   bool    `json:"isAvailable"`
	IsArchived    bool    `json:"isArchived"`
	ParentShiftID *int64  `json:"parentShiftId,omitempty"`
	ServiceIDs    []int64 `json:"serviceIds"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ShiftListResponse ответ со списком смен
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}

// FromDomainShift конвертирует domain модель в DTO
func FromDomainShift(s *domain.Shift) ShiftResponse {
	serviceIDs := s.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	return ShiftResponse{
		ID:            s.ID,
		ProviderID:    s.ProviderID,
		StartAt:       s.StartAt.Format(domain.DateTimeFormat),
		EndAt:         s.EndAt.Format(domain.DateTimeFormat),
		Recurrence:    string(s.Recurrence),
		RepeatCount:   s.RepeatCount,
		IsAvailable:   s.IsAvailable,
		IsArchived:    s.IsArchived,
		ParentShiftID: s.ParentShiftID,
		ServiceIDs:    serviceIDs,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainShiftList конвертирует список смен в DTO
func FromDomainShiftList(shifts []*domain.Shift) *ShiftListResponse {
	resp := &ShiftListResponse{Shifts: make([]ShiftResponse, 0, len(shifts))}
	for _, s := range shifts {
		resp.Shifts = append(resp.Shifts, FromDomainShift(s))
	}
	return resp
}
