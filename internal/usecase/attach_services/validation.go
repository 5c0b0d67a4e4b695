package attach_services

import (
	"fmt"
	"slices"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// validateRequest валидирует входные данные и убирает повторяющиеся ID
func validateRequest(req *Request) error {
	if req.ShiftID <= 0 {
		return fmt.Errorf("%w: shiftId must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: serviceIds must not be empty", ErrInvalidInput)
	}

	unique := make([]int64, 0, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceIds must be positive", ErrInvalidInput)
		}
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	req.ServiceIDs = unique

	return nil
}

// validateServicesFit проверяет, что все услуги найдены и каждая помещается в смену
func validateServicesFit(shift *domain.Shift, requested []int64, found []*domain.Service) error {
	for _, id := range requested {
		idx := slices.IndexFunc(found, func(s *domain.Service) bool { return s.ID == id })
		if idx < 0 {
			return fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
		if service := found[idx]; !service.FitsInto(shift) {
			return fmt.Errorf("%w: service id=%d lasts %d minutes, shift lasts %s",
				ErrServiceLongerThanShift, service.ID, service.DurationMinutes, shift.Length())
		}
	}
	return nil
}
