package models

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ListReservationsRequest запрос броней для оператора
type ListReservationsRequest struct {
	View     string // live (по умолчанию) или archived
	ShiftID  *int64
	Page     int
	PageSize int
}

// ListUserReservationsRequest запрос собственных броней пользователя
type ListUserReservationsRequest struct {
	RequesterID int64
	View        string
	Page        int
	PageSize    int
}

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID              int64  `json:"id"`
	RequesterID     int64  `json:"requesterId"`
	ShiftID         int64  `json:"shiftId"`
	ServiceID       int64  `json:"serviceId"`
	StartAt         string `json:"startAt"` // RFC 3339
	EndAt           string `json:"endAt"`
	DurationMinutes int    `json:"durationMinutes"`
	Code            string `json:"code"`
	Status          string `json:"status"`
	IsArchived      bool   `json:"isArchived"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		RequesterID:     r.RequesterID,
		ShiftID:         r.ShiftID,
		ServiceID:       r.ServiceID,
		StartAt:         r.StartAt.Format(domain.DateTimeFormat),
		EndAt:           r.EndAt().Format(domain.DateTimeFormat),
		DurationMinutes: r.ServiceDurationMinutes,
		Code:            r.Code,
		Status:          string(r.Status),
		IsArchived:      r.IsArchived,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список броней в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{Reservations: make([]ReservationResponse, 0, len(reservations))}
	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(r))
	}
	return resp
}
