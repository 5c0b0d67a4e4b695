package shifts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/service"
	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
)

// Service сервис чтения смен
type Service struct {
	shiftRepo   ShiftRepository
	serviceRepo ServiceRepository
	now         Clock
	logger      Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(shiftRepo ShiftRepository, serviceRepo ServiceRepository, now Clock, logger Logger) *Service {
	return &Service{
		shiftRepo:   shiftRepo,
		serviceRepo: serviceRepo,
		now:         now,
		logger:      logger,
	}
}

// GetByID получает смену по ID в любой проекции
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ShiftResponse, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("GetByID: shift id=%d not found", id)
			return nil, ErrShiftNotFound
		}
		s.logger.Error("GetByID: repository error for shift id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainShift(shift)
	return &resp, nil
}

// List возвращает смены живой или архивной проекции, опционально по исполнителю
func (s *Service) List(ctx context.Context, req *models.ListShiftsRequest) (*models.ShiftListResponse, error) {
	s.logger.Info("List: view=%q, provider=%v, page=%d", req.View, req.ProviderID, req.Page)

	view, err := domain.ParseView(req.View)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	limit, offset, err := domain.Page(req.Page, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	shifts, err := s.shiftRepo.List(ctx, domain.ShiftFilter{
		View:       view,
		ProviderID: req.ProviderID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d %s shifts", len(shifts), view)
	return models.FromDomainShiftList(shifts), nil
}

// Upcoming возвращает живые смены, которые предлагают услугу и начинаются не раньше текущего момента.
// Сортировка от самых поздних к ранним.
func (s *Service) Upcoming(ctx context.Context, req *models.UpcomingShiftsRequest) (*models.ShiftListResponse, error) {
	s.logger.Info("Upcoming: service=%d, page=%d", req.ServiceID, req.Page)

	limit, offset, err := domain.Page(req.Page, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Upcoming: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Upcoming: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Upcoming - failed to get service: %v", ErrInternal, err)
	}

	now := s.now()
	shifts, err := s.shiftRepo.List(ctx, domain.ShiftFilter{
		View:        domain.ViewLive,
		ServiceID:   &req.ServiceID,
		StartFrom:   &now,
		NewestFirst: true,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		s.logger.Error("Upcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upcoming - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShiftList(shifts), nil
}
