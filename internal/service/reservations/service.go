package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ShiftService/internal/service/reservations/models"
)

// Service сервис чтения броней
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронь по ID.
// Пользователь видит только свои брони.
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if reservation.RequesterID != requesterID {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	resp := models.FromDomainReservation(reservation)
	return &resp, nil
}

// List возвращает брони проекции, опционально в рамках смены.
// Отклонённые брони всегда попадают в архивную проекцию.
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: view=%q, shift=%v, page=%d", req.View, req.ShiftID, req.Page)

	filter, err := buildFilter(req.View, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	filter.ShiftID = req.ShiftID

	return s.list(ctx, "List", filter)
}

// ListForUser возвращает брони, сделанные пользователем
func (s *Service) ListForUser(ctx context.Context, req *models.ListUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListForUser: user=%d, view=%q", req.RequesterID, req.View)

	filter, err := buildFilter(req.View, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	filter.RequesterID = &req.RequesterID

	return s.list(ctx, "ListForUser", filter)
}

func (s *Service) list(ctx context.Context, op string, filter domain.ReservationFilter) (*models.ReservationListResponse, error) {
	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: fetched %d %s reservations", op, len(reservations), filter.View)
	return models.FromDomainReservationList(reservations), nil
}

func buildFilter(rawView string, page, pageSize int) (domain.ReservationFilter, error) {
	view, err := domain.ParseView(rawView)
	if err != nil {
		return domain.ReservationFilter{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	limit, offset, err := domain.Page(page, pageSize)
	if err != nil {
		return domain.ReservationFilter{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return domain.ReservationFilter{View: view, Limit: limit, Offset: offset}, nil
}
