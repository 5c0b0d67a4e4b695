package attach_services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/usecase/expand_recurrence"
	"github.com/m04kA/SMC-ShiftService/internal/usecase/fakes"
	"github.com/m04kA/SMC-ShiftService/pkg/logger"
	"github.com/m04kA/SMC-ShiftService/pkg/metrics"
)

var start = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*UseCase, *fakes.Store, *fakes.Publisher) {
	t.Helper()
	store := fakes.NewStore()
	tx := fakes.NewTxManager(store)
	log := logger.NewNop()
	publisher := &fakes.Publisher{}

	expander := expand_recurrence.NewUseCase(fakes.ShiftRepository{Store: store}, tx,
		metrics.NewWithRegistry("test", prometheus.NewRegistry()), log)

	uc := NewUseCase(fakes.ShiftRepository{Store: store}, fakes.ServiceRepository{Store: store},
		expander, publisher, tx, log)
	return uc, store, publisher
}

func recurringRoot(store *fakes.Store, serviceIDs ...int64) int64 {
	return store.AddShift(domain.Shift{
		StartAt:     start,
		EndAt:       start.Add(time.Hour),
		Recurrence:  domain.RecurrenceBiweekly,
		RepeatCount: 2,
		IsAvailable: true,
		ServiceIDs:  serviceIDs,
	})
}

func TestExecute_FirstPopulationExpandsOnce(t *testing.T) {
	uc, store, publisher := setup(t)
	a := store.AddService(domain.Service{DurationMinutes: 30})
	b := store.AddService(domain.Service{DurationMinutes: 15})
	root := recurringRoot(store)

	resp, err := uc.Execute(context.Background(), &Request{ShiftID: root, ServiceIDs: []int64{a}})
	require.NoError(t, err)
	assert.Len(t, resp.DerivedShiftIDs, 2)
	assert.Len(t, store.Shifts(), 3)

	// набор уже непустой - повторного разворачивания нет
	resp, err = uc.Execute(context.Background(), &Request{ShiftID: root, ServiceIDs: []int64{b}})
	require.NoError(t, err)
	assert.Empty(t, resp.DerivedShiftIDs)
	assert.Equal(t, []int64{a, b}, resp.ServiceIDs)
	assert.Len(t, store.Shifts(), 3)

	assert.Len(t, publisher.Expansions, 1)
}

func TestExecute_ConcurrentFirstPopulation(t *testing.T) {
	uc, store, _ := setup(t)
	a := store.AddService(domain.Service{DurationMinutes: 30})
	root := recurringRoot(store)

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{ShiftID: root, ServiceIDs: []int64{a}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, store.Shifts(), 3)
}

func TestExecute_AlreadyPopulatedRootDoesNotExpand(t *testing.T) {
	uc, store, _ := setup(t)
	a := store.AddService(domain.Service{DurationMinutes: 30})
	root := recurringRoot(store, a)

	resp, err := uc.Execute(context.Background(), &Request{ShiftID: root, ServiceIDs: []int64{a}})
	require.NoError(t, err)
	assert.Empty(t, resp.DerivedShiftIDs)
	assert.Len(t, store.Shifts(), 1)
}

func TestExecute_Rejections(t *testing.T) {
	uc, store, _ := setup(t)
	long := store.AddService(domain.Service{DurationMinutes: 61})
	root := recurringRoot(store)
	archived := store.AddShift(domain.Shift{StartAt: start, EndAt: start.Add(time.Hour), IsArchived: true})

	_, err := uc.Execute(context.Background(), &Request{ShiftID: 999, ServiceIDs: []int64{long}})
	assert.ErrorIs(t, err, ErrShiftNotFound)

	_, err = uc.Execute(context.Background(), &Request{ShiftID: archived, ServiceIDs: []int64{long}})
	assert.ErrorIs(t, err, ErrShiftArchived)

	_, err = uc.Execute(context.Background(), &Request{ShiftID: root, ServiceIDs: []int64{long}})
	assert.ErrorIs(t, err, ErrServiceLongerThanShift)

	_, err = uc.Execute(context.Background(), &Request{ShiftID: root, ServiceIDs: []int64{999}})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{ShiftID: root})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Len(t, store.Shifts(), 2)
}
