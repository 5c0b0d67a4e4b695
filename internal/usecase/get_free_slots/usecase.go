package get_free_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	serviceRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/service"
	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-ShiftService/internal/scheduling"
)

// UseCase use case для расчёта свободных слотов смены
type UseCase struct {
	shiftRepo       ShiftRepository
	serviceRepo     ServiceRepository
	reservationRepo ReservationRepository
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftRepo ShiftRepository,
	serviceRepo ServiceRepository,
	reservationRepo ReservationRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		shiftRepo:       shiftRepo,
		serviceRepo:     serviceRepo,
		reservationRepo: reservationRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute возвращает моменты начала, с которых услугу ещё можно забронировать.
// Только чтение, без побочных эффектов. Для архивной или недоступной смены список пуст.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: shift=%d, service=%d", req.ShiftID, req.ServiceID)

	if req.ShiftID <= 0 || req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: shiftId and serviceId must be positive", ErrInvalidInput)
	}

	// 1. Смена
	shift, err := uc.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			uc.logger.Warn("GetFreeSlots: shift id=%d not found", req.ShiftID)
			return nil, ErrShiftNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get shift id=%d: %v", req.ShiftID, err)
		return nil, fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
	}

	// 2. Услуга и её принадлежность смене
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetFreeSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !shift.OffersService(service.ID) {
		uc.logger.Warn("GetFreeSlots: service id=%d is not offered by shift id=%d", service.ID, shift.ID)
		return nil, ErrServiceNotOffered
	}

	resp := &Response{
		ShiftID:         shift.ID,
		ServiceID:       service.ID,
		DurationMinutes: service.DurationMinutes,
		ShiftStart:      shift.StartAt,
		ShiftEnd:        shift.EndAt,
		Slots:           []time.Time{},
	}

	if !shift.IsBookable() {
		uc.logger.Info("GetFreeSlots: shift id=%d is not bookable (available=%t, archived=%t)",
			shift.ID, shift.IsAvailable, shift.IsArchived)
		uc.metrics.ObserveFreeSlots(0)
		return resp, nil
	}

	// 3. Брони смены и расчёт
	reservations, err := uc.reservationRepo.ListByShift(ctx, shift.ID)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get reservations of shift id=%d: %v", shift.ID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	slots, err := scheduling.FreeSlots(shift.StartAt, shift.EndAt, service.Duration(), reservations)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to compute slots for shift id=%d: %v", shift.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	resp.Slots = slots

	uc.metrics.ObserveFreeSlots(len(slots))
	uc.logger.Info("GetFreeSlots: shift=%d, service=%d: %d free slots (%d reservations)",
		shift.ID, service.ID, len(slots), len(reservations))

	return resp, nil
}
