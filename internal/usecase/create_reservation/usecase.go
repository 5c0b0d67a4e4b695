package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/reservation"
	serviceRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/service"
	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-ShiftService/internal/integrations/events"
	"github.com/m04kA/SMC-ShiftService/internal/scheduling"
)

// Причины отказа для метрики booking_rejections_total
const (
	reasonSlotUnavailable = "slot_unavailable"
	reasonConflict        = "conflict"
	reasonNotBookable     = "not_bookable"
)

// UseCase use case для бронирования слота смены
type UseCase struct {
	shiftRepo       ShiftRepository
	serviceRepo     ServiceRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	codeGenerator   CodeGenerator
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftRepo ShiftRepository,
	serviceRepo ServiceRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		shiftRepo:       shiftRepo,
		serviceRepo:     serviceRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		codeGenerator:   RandomCodeGenerator{},
		logger:          logger,
	}
}

// Execute бронирует слот.
// Проверка свободного слота и вставка выполняются в одной SERIALIZABLE транзакции,
// строка смены блокируется: два параллельных запроса на один слот дадут ровно одну бронь.
// Повторов при конфликте нет - вызывающая сторона получает ErrBookingConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: requester=%d, shift=%d, service=%d, start=%s",
		req.RequesterID, req.ShiftID, req.ServiceID, req.StartAt.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Код генерируем до транзакции: после ошибки вставки транзакцию уже не продолжить
	code, err := uc.codeGenerator.Generate()
	if err != nil {
		uc.logger.Error("CreateReservation: failed to generate code: %v", err)
		return nil, fmt.Errorf("%w: failed to generate code: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 3. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Смена с блокировкой строки
		shift, err := uc.shiftRepo.GetByID(txCtx, req.ShiftID)
		if err != nil {
			if errors.Is(err, shiftRepo.ErrShiftNotFound) {
				return ErrShiftNotFound
			}
			return fmt.Errorf("%w: failed to get shift: %w", ErrInternal, err)
		}
		if !shift.IsBookable() {
			return ErrShiftNotBookable
		}

		// 3.2. Услуга
		service, err := uc.serviceRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
		}
		if !shift.OffersService(service.ID) {
			return ErrServiceNotOffered
		}

		// 3.3. Текущие брони смены и свободные слоты на момент транзакции
		reservations, err := uc.reservationRepo.ListByShift(txCtx, shift.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		slots, err := scheduling.FreeSlots(shift.StartAt, shift.EndAt, service.Duration(), reservations)
		if err != nil {
			return fmt.Errorf("%w: failed to compute free slots: %v", ErrInternal, err)
		}

		if !scheduling.IsFree(req.StartAt, slots) {
			uc.logger.Warn("CreateReservation: start %s is not among %d free slots of shift id=%d",
				req.StartAt.Format(domain.DateTimeFormat), len(slots), shift.ID)
			return ErrSlotUnavailable
		}

		// 3.4. Создаём бронь
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			RequesterID:            req.RequesterID,
			ShiftID:                shift.ID,
			ServiceID:              service.ID,
			StartAt:                req.StartAt,
			Code:                   code,
			Status:                 domain.StatusReview,
			ServiceDurationMinutes: service.DurationMinutes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.handleError(req, err)
	}

	uc.metrics.IncReservationCreated(strconv.FormatInt(result.ServiceID, 10))
	uc.logger.Info("CreateReservation: created reservation id=%d, code=%s", result.ID, result.Code)

	// 4. Событие публикуется после коммита, ошибка брокера бронь не отменяет
	event := events.ReservationCreated{
		ReservationID: result.ID,
		ShiftID:       result.ShiftID,
		ServiceID:     result.ServiceID,
		RequesterID:   result.RequesterID,
		StartAt:       result.StartAt,
		Code:          result.Code,
	}
	if err := uc.publisher.ReservationCreated(ctx, event); err != nil {
		uc.logger.Warn("CreateReservation: failed to publish reservation id=%d: %v", result.ID, err)
	}

	return &Response{Reservation: result}, nil
}

// handleError приводит ошибку транзакции к ошибкам usecase и учитывает отказ в метриках
func (uc *UseCase) handleError(req *Request, err error) error {
	switch {
	case uc.txManager.IsConflict(err), errors.Is(err, reservationRepo.ErrDuplicateCode):
		uc.metrics.IncBookingRejected(reasonConflict)
		uc.logger.Warn("CreateReservation: conflict on shift id=%d: %v", req.ShiftID, err)
		return fmt.Errorf("%w: %v", ErrBookingConflict, err)

	case errors.Is(err, ErrSlotUnavailable):
		uc.metrics.IncBookingRejected(reasonSlotUnavailable)
		return err

	case errors.Is(err, ErrShiftNotBookable), errors.Is(err, ErrServiceNotOffered):
		uc.metrics.IncBookingRejected(reasonNotBookable)
		uc.logger.Warn("CreateReservation: shift id=%d, service id=%d: %v", req.ShiftID, req.ServiceID, err)
		return err

	case errors.Is(err, ErrShiftNotFound), errors.Is(err, ErrServiceNotFound):
		uc.logger.Warn("CreateReservation: %v", err)
		return err

	default:
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
