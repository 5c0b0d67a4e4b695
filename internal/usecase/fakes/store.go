// Package fakes содержит in-memory реализации репозиториев и менеджера транзакций для тестов usecase-слоя
package fakes

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/category"
	providerRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/provider"
	reservationRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/reservation"
	serviceRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/service"
	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
)

// ErrConflict имитирует ошибку сериализации при коммите
var ErrConflict = errors.New("fakes: serialization failure")

// Store общее in-memory хранилище
type Store struct {
	mu           sync.Mutex
	nextID       int64
	shifts       map[int64]*domain.Shift
	services     map[int64]*domain.Service
	providers    map[int64]*domain.Provider
	categories   map[int64]*domain.Category
	reservations map[int64]*domain.Reservation
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		shifts:       map[int64]*domain.Shift{},
		services:     map[int64]*domain.Service{},
		providers:    map[int64]*domain.Provider{},
		categories:   map[int64]*domain.Category{},
		reservations: map[int64]*domain.Reservation{},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// AddService кладёт услугу в хранилище и возвращает её ID
func (s *Store) AddService(svc domain.Service) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc.ID = s.id()
	s.services[svc.ID] = &svc
	return svc.ID
}

// AddProvider кладёт исполнителя в хранилище и возвращает его ID
func (s *Store) AddProvider(p domain.Provider) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	s.providers[p.ID] = &p
	return p.ID
}

// AddShift кладёт смену в хранилище и возвращает её ID
func (s *Store) AddShift(sh domain.Shift) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh.ID = s.id()
	sh.ServiceIDs = slices.Clone(sh.ServiceIDs)
	s.shifts[sh.ID] = &sh
	return sh.ID
}

// AddReservation кладёт бронь в хранилище и возвращает её ID
func (s *Store) AddReservation(r domain.Reservation) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.id()
	s.reservations[r.ID] = &r
	return r.ID
}

// Shifts возвращает копии всех смен в порядке ID
func (s *Store) Shifts() []*domain.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Shift, 0, len(s.shifts))
	for _, id := range slices.Sorted(maps.Keys(s.shifts)) {
		out = append(out, copyShift(s.shifts[id]))
	}
	return out
}

// Reservations возвращает копии всех броней в порядке ID
func (s *Store) Reservations() []*domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Reservation, 0, len(s.reservations))
	for _, id := range slices.Sorted(maps.Keys(s.reservations)) {
		out = append(out, s.withDuration(s.reservations[id]))
	}
	return out
}

func (s *Store) withDuration(r *domain.Reservation) *domain.Reservation {
	c := *r
	if svc, ok := s.services[r.ServiceID]; ok {
		c.ServiceDurationMinutes = svc.DurationMinutes
	}
	return &c
}

type snapshot struct {
	nextID       int64
	shifts       map[int64]*domain.Shift
	services     map[int64]*domain.Service
	providers    map[int64]*domain.Provider
	categories   map[int64]*domain.Category
	reservations map[int64]*domain.Reservation
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	shifts := make(map[int64]*domain.Shift, len(s.shifts))
	for id, sh := range s.shifts {
		shifts[id] = copyShift(sh)
	}
	reservations := make(map[int64]*domain.Reservation, len(s.reservations))
	for id, r := range s.reservations {
		c := *r
		reservations[id] = &c
	}

	return snapshot{
		nextID:       s.nextID,
		shifts:       shifts,
		services:     maps.Clone(s.services),
		providers:    maps.Clone(s.providers),
		categories:   maps.Clone(s.categories),
		reservations: reservations,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = snap.nextID
	s.shifts = snap.shifts
	s.services = snap.services
	s.providers = snap.providers
	s.categories = snap.categories
	s.reservations = snap.reservations
}

func copyShift(sh *domain.Shift) *domain.Shift {
	c := *sh
	c.ServiceIDs = slices.Clone(sh.ServiceIDs)
	if c.ServiceIDs == nil {
		c.ServiceIDs = []int64{}
	}
	return &c
}

// ShiftRepository in-memory репозиторий смен
type ShiftRepository struct{ *Store }

// Create сохраняет смену
func (r ShiftRepository) Create(_ context.Context, shift *domain.Shift) (*domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shift.ID = r.id()
	r.shifts[shift.ID] = copyShift(shift)
	r.shifts[shift.ID].ServiceIDs = []int64{}
	return shift, nil
}

// AttachServices добавляет услуги в набор смены, пропуская уже привязанные
func (r ShiftRepository) AttachServices(_ context.Context, shiftID int64, serviceIDs []int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sh, ok := r.shifts[shiftID]
	if !ok {
		return 0, shiftRepo.ErrShiftNotFound
	}
	var added int64
	for _, id := range serviceIDs {
		if !slices.Contains(sh.ServiceIDs, id) {
			sh.ServiceIDs = append(sh.ServiceIDs, id)
			added++
		}
	}
	slices.Sort(sh.ServiceIDs)
	return added, nil
}

// GetByID получает смену
func (r ShiftRepository) GetByID(_ context.Context, id int64) (*domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sh, ok := r.shifts[id]
	if !ok {
		return nil, shiftRepo.ErrShiftNotFound
	}
	return copyShift(sh), nil
}

// List возвращает смены проекции с фильтрами
func (r ShiftRepository) List(_ context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Shift, 0)
	for _, id := range slices.Sorted(maps.Keys(r.shifts)) {
		sh := r.shifts[id]
		if !domain.ShiftInView(sh, filter.View) {
			continue
		}
		if filter.ProviderID != nil && (sh.ProviderID == nil || *sh.ProviderID != *filter.ProviderID) {
			continue
		}
		if filter.ServiceID != nil && !sh.OffersService(*filter.ServiceID) {
			continue
		}
		if filter.StartFrom != nil && sh.StartAt.Before(*filter.StartFrom) {
			continue
		}
		out = append(out, copyShift(sh))
	}

	slices.SortStableFunc(out, func(a, b *domain.Shift) int {
		if filter.NewestFirst {
			return b.StartAt.Compare(a.StartAt)
		}
		return a.StartAt.Compare(b.StartAt)
	})

	return paginate(out, filter.Limit, filter.Offset), nil
}

// ArchiveByIDs архивирует живые смены
func (r ShiftRepository) ArchiveByIDs(_ context.Context, ids []int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	archived := make([]int64, 0)
	for _, id := range ids {
		if sh, ok := r.shifts[id]; ok && sh.Archive() {
			archived = append(archived, id)
		}
	}
	return archived, nil
}

// ServiceRepository in-memory репозиторий услуг
type ServiceRepository struct{ *Store }

// Create сохраняет услугу
func (r ServiceRepository) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	svc.ID = r.id()
	c := *svc
	r.services[svc.ID] = &c
	return svc, nil
}

// GetByID получает услугу
func (r ServiceRepository) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	svc, ok := r.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	c := *svc
	return &c, nil
}

// GetByIDs получает существующие услуги из списка
func (r ServiceRepository) GetByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		if svc, ok := r.services[id]; ok {
			c := *svc
			out = append(out, &c)
		}
	}
	return out, nil
}

// List возвращает каталог услуг
func (r ServiceRepository) List(_ context.Context, limit, offset uint64) ([]*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Service, 0, len(r.services))
	for _, id := range slices.Sorted(maps.Keys(r.services)) {
		c := *r.services[id]
		out = append(out, &c)
	}
	return paginate(out, limit, offset), nil
}

// ProviderRepository in-memory репозиторий исполнителей
type ProviderRepository struct{ *Store }

// Create сохраняет исполнителя
func (r ProviderRepository) Create(_ context.Context, p *domain.Provider) (*domain.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.id()
	c := *p
	r.providers[p.ID] = &c
	return p, nil
}

// GetByID получает исполнителя
func (r ProviderRepository) GetByID(_ context.Context, id int64) (*domain.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, providerRepo.ErrProviderNotFound
	}
	c := *p
	return &c, nil
}

// List возвращает исполнителей
func (r ProviderRepository) List(_ context.Context, filter domain.ProviderFilter) ([]*domain.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Provider, 0, len(r.providers))
	for _, id := range slices.Sorted(maps.Keys(r.providers)) {
		p := r.providers[id]
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		c := *p
		out = append(out, &c)
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

// CategoryRepository in-memory репозиторий категорий
type CategoryRepository struct{ *Store }

// Create сохраняет категорию
func (r CategoryRepository) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.id()
	cp := *c
	r.categories[c.ID] = &cp
	return c, nil
}

// GetByID получает категорию
func (r CategoryRepository) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, categoryRepo.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

// List возвращает категории, отсортированные по имени
func (r CategoryRepository) List(_ context.Context) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *domain.Category) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

// ReservationRepository in-memory репозиторий броней
type ReservationRepository struct{ *Store }

// Create сохраняет бронь
func (r ReservationRepository) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reservations {
		if existing.Code == res.Code {
			return nil, reservationRepo.ErrDuplicateCode
		}
	}
	res.ID = r.id()
	c := *res
	r.reservations[res.ID] = &c
	return res, nil
}

// GetByID получает бронь
func (r ReservationRepository) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r.withDuration(res), nil
}

// ListByShift возвращает все брони смены
func (r ReservationRepository) ListByShift(_ context.Context, shiftID int64) ([]*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Reservation, 0)
	for _, id := range slices.Sorted(maps.Keys(r.reservations)) {
		if res := r.reservations[id]; res.ShiftID == shiftID {
			out = append(out, r.withDuration(res))
		}
	}
	return out, nil
}

// List возвращает брони проекции с фильтрами
func (r ReservationRepository) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Reservation, 0)
	for _, id := range slices.Sorted(maps.Keys(r.reservations)) {
		res := r.reservations[id]
		if !domain.ReservationInView(res, filter.View) {
			continue
		}
		if filter.ShiftID != nil && res.ShiftID != *filter.ShiftID {
			continue
		}
		if filter.RequesterID != nil && res.RequesterID != *filter.RequesterID {
			continue
		}
		out = append(out, r.withDuration(res))
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

// UpdateStatus переводит бронь из from в to, если её статус всё ещё from
func (r ReservationRepository) UpdateStatus(_ context.Context, id int64, from, to domain.ReservationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok || res.Status != from {
		return reservationRepo.ErrStatusChanged
	}
	res.Status = to
	return nil
}

// ArchiveByIDs архивирует брони без флага архива
func (r ReservationRepository) ArchiveByIDs(_ context.Context, ids []int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	archived := make([]int64, 0)
	for _, id := range ids {
		if res, ok := r.reservations[id]; ok && res.Archive() {
			archived = append(archived, id)
		}
	}
	return archived, nil
}

func paginate[T any](items []T, limit, offset uint64) []T {
	if offset >= uint64(len(items)) {
		return items[:0]
	}
	items = items[offset:]
	if limit > 0 && limit < uint64(len(items)) {
		items = items[:limit]
	}
	return items
}
