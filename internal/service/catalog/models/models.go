package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// Request модели

// CreateCategoryRequest запрос на создание категории
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CreateProviderRequest запрос на создание исполнителя
type CreateProviderRequest struct {
	Name        string  `json:"name"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
	Description string  `json:"description"`
	Experience  *string `json:"experience,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
}

// ToDomainProvider конвертирует запрос в domain модель
func (r *CreateProviderRequest) ToDomainProvider() *domain.Provider {
	return &domain.Provider{
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		Experience:  r.Experience,
		PhoneNumber: r.PhoneNumber,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
	}
}

// ListProvidersRequest запрос списка исполнителей
type ListProvidersRequest struct {
	CategoryID *int64
	Page       int
	PageSize   int
}

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string          `json:"name"`
	Subtitle        *string         `json:"subtitle,omitempty"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
}

// ToDomainService конвертирует запрос в domain модель
func (r *CreateServiceRequest) ToDomainService() *domain.Service {
	return &domain.Service{
		Name:            r.Name,
		Subtitle:        r.Subtitle,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
	}
}

// ListServicesRequest запрос каталога услуг
type ListServicesRequest struct {
	Page     int
	PageSize int
}

// Response модели

// CategoryResponse ответ с данными категории
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryListResponse ответ со списком категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ProviderResponse ответ с данными исполнителя
type ProviderResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CategoryID  *int64    `json:"categoryId,omitempty"`
	Description string    `json:"description"`
	Experience  *string   `json:"experience,omitempty"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	FirstName   *string   `json:"firstName,omitempty"`
	LastName    *string   `json:"lastName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProviderListResponse ответ со списком исполнителей
type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Subtitle        *string         `json:"subtitle,omitempty"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainCategory конвертирует domain модель в DTO
func FromDomainCategory(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

// FromDomainCategoryList конвертирует список категорий в DTO
func FromDomainCategoryList(categories []*domain.Category) *CategoryListResponse {
	resp := &CategoryListResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, FromDomainCategory(c))
	}
	return resp
}

// FromDomainProvider конвертирует domain модель в DTO
func FromDomainProvider(p *domain.Provider) ProviderResponse {
	return ProviderResponse{
		ID:          p.ID,
		Name:        p.Name,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Experience:  p.Experience,
		PhoneNumber: p.PhoneNumber,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromDomainProviderList конвертирует список исполнителей в DTO
func FromDomainProviderList(providers []*domain.Provider) *ProviderListResponse {
	resp := &ProviderListResponse{Providers: make([]ProviderResponse, 0, len(providers))}
	for _, p := range providers {
		resp.Providers = append(resp.Providers, FromDomainProvider(p))
	}
	return resp
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Subtitle:        s.Subtitle,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		CreatedAt:       s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, FromDomainService(s))
	}
	return resp
}
