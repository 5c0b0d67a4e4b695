package update_reservation_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/reservation"
)

// UseCase use case для рассмотрения брони оператором
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute переводит бронь из review в accepted или not_accepted.
// Отклонённая бронь освобождает слот и попадает в архивную проекцию.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservationStatus: reservation=%d, status=%s", req.ReservationID, req.Status)

	status, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		uc.logger.Warn("UpdateReservationStatus: %v", err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	var result *domain.Reservation
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		from := reservation.Status
		if err := reservation.TransitionTo(status); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		// Статус мог смениться параллельным решением между чтением и записью
		err = uc.reservationRepo.UpdateStatus(txCtx, reservation.ID, from, reservation.Status)
		if errors.Is(err, reservationRepo.ErrStatusChanged) {
			return fmt.Errorf("%w: reservation %d is no longer %s", ErrInvalidTransition, reservation.ID, from)
		}
		if err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		result = reservation
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("UpdateReservationStatus: reservation=%d: %v", req.ReservationID, err)
		} else {
			uc.logger.Warn("UpdateReservationStatus: reservation=%d: %v", req.ReservationID, err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateReservationStatus: reservation=%d is now %s", result.ID, result.Status)
	return &Response{Reservation: result}, nil
}
