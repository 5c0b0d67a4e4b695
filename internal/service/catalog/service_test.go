package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/service/catalog/models"
	"github.com/m04kA/SMC-ShiftService/internal/usecase/fakes"
	"github.com/m04kA/SMC-ShiftService/pkg/logger"
	"github.com/m04kA/SMC-ShiftService/pkg/ptr"
)

func newService() *Service {
	store := fakes.NewStore()
	return NewService(
		fakes.CategoryRepository{Store: store},
		fakes.ProviderRepository{Store: store},
		fakes.ServiceRepository{Store: store},
		logger.NewNop(),
	)
}

func TestProviders(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	massage, err := svc.CreateCategory(ctx, &models.CreateCategoryRequest{Name: "  Massage "})
	require.NoError(t, err)
	assert.Equal(t, "Massage", massage.Name)

	_, err = svc.CreateProvider(ctx, &models.CreateProviderRequest{Name: "Room A", CategoryID: ptr.Ptr(int64(999))})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	p, err := svc.CreateProvider(ctx, &models.CreateProviderRequest{Name: "Anna", CategoryID: &massage.ID})
	require.NoError(t, err)
	_, err = svc.CreateProvider(ctx, &models.CreateProviderRequest{Name: "Room B"})
	require.NoError(t, err)

	list, err := svc.ListProviders(ctx, &models.ListProvidersRequest{CategoryID: &massage.ID})
	require.NoError(t, err)
	require.Len(t, list.Providers, 1)
	assert.Equal(t, p.ID, list.Providers[0].ID)

	all, err := svc.ListProviders(ctx, &models.ListProvidersRequest{Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Len(t, all.Providers, 1)

	_, err = svc.GetProvider(ctx, 12345)
	assert.ErrorIs(t, err, ErrProviderNotFound)

	_, err = svc.ListProviders(ctx, &models.ListProvidersRequest{PageSize: 1000})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateService_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	cases := map[string]*models.CreateServiceRequest{
		"empty name":     {Name: " ", DurationMinutes: 30},
		"zero duration":  {Name: "Cut", DurationMinutes: 0},
		"negative price": {Name: "Cut", DurationMinutes: 30, Price: decimal.NewFromInt(-1)},
		"long subtitle":  {Name: "Cut", DurationMinutes: 30, Subtitle: ptr.Ptr(string(make([]byte, 51)))},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateService(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	created, err := svc.CreateService(ctx, &models.CreateServiceRequest{
		Name:            "Cut",
		DurationMinutes: 45,
		Price:           decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(created.Price))

	got, err := svc.GetService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, got.DurationMinutes)

	_, err = svc.GetService(ctx, 999)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
