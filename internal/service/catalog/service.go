package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/category"
	providerRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/provider"
	serviceRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/service"
	"github.com/m04kA/SMC-ShiftService/internal/service/catalog/models"
)

// Service сервис справочников: категории, исполнители, услуги
type Service struct {
	categoryRepo CategoryRepository
	providerRepo ProviderRepository
	serviceRepo  ServiceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	categoryRepo CategoryRepository,
	providerRepo ProviderRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		providerRepo: providerRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

// CreateCategory создает категорию исполнителей
func (s *Service) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.CategoryResponse, error) {
	s.logger.Info("CreateCategory: name=%q", req.Name)

	name := strings.TrimSpace(req.Name)
	if err := validateName(name, domain.MaxNameLength); err != nil {
		s.logger.Warn("CreateCategory: validation failed: %v", err)
		return nil, err
	}

	created, err := s.categoryRepo.Create(ctx, &domain.Category{Name: name})
	if err != nil {
		s.logger.Error("CreateCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCategory: successfully created category id=%d", created.ID)
	resp := models.FromDomainCategory(created)
	return &resp, nil
}

// ListCategories возвращает все категории
func (s *Service) ListCategories(ctx context.Context) (*models.CategoryListResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCategoryList(categories), nil
}

// CreateProvider создает исполнителя. Если указана категория, она должна существовать.
func (s *Service) CreateProvider(ctx context.Context, req *models.CreateProviderRequest) (*models.ProviderResponse, error) {
	s.logger.Info("CreateProvider: name=%q, category=%v", req.Name, req.CategoryID)

	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name, domain.MaxNameLength); err != nil {
		s.logger.Warn("CreateProvider: validation failed: %v", err)
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
				s.logger.Warn("CreateProvider: category id=%d not found", *req.CategoryID)
				return nil, ErrCategoryNotFound
			}
			s.logger.Error("CreateProvider: failed to get category id=%d: %v", *req.CategoryID, err)
			return nil, fmt.Errorf("%w: CreateProvider - failed to get category: %v", ErrInternal, err)
		}
	}

	created, err := s.providerRepo.Create(ctx, req.ToDomainProvider())
	if err != nil {
		s.logger.Error("CreateProvider: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateProvider - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateProvider: successfully created provider id=%d", created.ID)
	resp := models.FromDomainProvider(created)
	return &resp, nil
}

// GetProvider получает исполнителя по ID
func (s *Service) GetProvider(ctx context.Context, id int64) (*models.ProviderResponse, error) {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("GetProvider: provider id=%d not found", id)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetProvider: repository error for provider id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetProvider - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainProvider(provider)
	return &resp, nil
}

// ListProviders возвращает исполнителей, опционально в рамках категории
func (s *Service) ListProviders(ctx context.Context, req *models.ListProvidersRequest) (*models.ProviderListResponse, error) {
	limit, offset, err := domain.Page(req.Page, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	providers, err := s.providerRepo.List(ctx, domain.ProviderFilter{
		CategoryID: req.CategoryID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		s.logger.Error("ListProviders: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProviders - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListProviders: fetched %d providers, category=%v", len(providers), req.CategoryID)
	return models.FromDomainProviderList(providers), nil
}

// CreateService создает услугу. Длительность в минутах должна быть положительной, цена неотрицательной.
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%q, duration=%d, price=%s", req.Name, req.DurationMinutes, req.Price)

	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name, domain.MaxNameLength); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}
	if req.Subtitle != nil && utf8.RuneCountInString(*req.Subtitle) > domain.MaxSubtitleLength {
		return nil, fmt.Errorf("%w: subtitle must be at most %d characters", ErrInvalidInput, domain.MaxSubtitleLength)
	}

	service := req.ToDomainService()
	if err := service.Validate(); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d", created.ID)
	resp := models.FromDomainService(created)
	return &resp, nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainService(service)
	return &resp, nil
}

// ListServices возвращает каталог услуг постранично
func (s *Service) ListServices(ctx context.Context, req *models.ListServicesRequest) (*models.ServiceListResponse, error) {
	limit, offset, err := domain.Page(req.Page, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	services, err := s.serviceRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// validateName проверяет обязательное название с ограничением длины
func validateName(name string, maxLen int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxLen {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, maxLen)
	}
	return nil
}
