package create_shift

import (
	"fmt"
	"slices"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID != nil && *req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerId must be positive", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceIds must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// uniqueIDs убирает повторы, сохраняя порядок
func uniqueIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// validateServicesFit проверяет, что все услуги найдены и каждая помещается в смену
func validateServicesFit(shift *domain.Shift, requested []int64, found []*domain.Service) error {
	if len(found) != len(requested) {
		for _, id := range requested {
			if !slices.ContainsFunc(found, func(s *domain.Service) bool { return s.ID == id }) {
				return fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
			}
		}
	}

	for _, service := range found {
		if !service.FitsInto(shift) {
			return fmt.Errorf("%w: service id=%d lasts %d minutes, shift lasts %s",
				ErrServiceLongerThanShift, service.ID, service.DurationMinutes, shift.Length())
		}
	}

	return nil
}
