package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShiftService/pkg/psqlbuilder"
)

const tableProviders = "providers"

var providerColumns = []string{
	"id",
	"name",
	"category_id",
	"description",
	"experience",
	"phone_number",
	"first_name",
	"last_name",
	"created_at",
	"updated_at",
}

// Repository репозиторий исполнителей (ресурсов, которым принадлежат смены)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исполнителей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает исполнителя
func (r *Repository) Create(ctx context.Context, provider *domain.Provider) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableProviders).
		Columns(
			"name",
			"category_id",
			"description",
			"experience",
			"phone_number",
			"first_name",
			"last_name",
		).
		Values(
			provider.Name,
			provider.CategoryID,
			provider.Description,
			provider.Experience,
			provider.PhoneNumber,
			provider.FirstName,
			provider.LastName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&provider.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	provider.CreatedAt = createdAt.Time
	provider.UpdatedAt = updatedAt.Time

	return provider, nil
}

// GetByID получает исполнителя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(providerColumns...).
		From(tableProviders).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	provider, err := scanProvider(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan provider: %w", ErrScanRow, err)
	}

	return provider, nil
}

// List возвращает исполнителей, опционально только одной категории
func (r *Repository) List(ctx context.Context, filter domain.ProviderFilter) ([]*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(providerColumns...).
		From(tableProviders).
		OrderBy("id ASC")

	if filter.CategoryID != nil {
		builder = builder.Where(squirrel.Eq{"category_id": *filter.CategoryID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	providers := make([]*domain.Provider, 0)
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		providers = append(providers, provider)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return providers, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProvider(row rowScanner) (*domain.Provider, error) {
	var provider domain.Provider
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&provider.ID,
		&provider.Name,
		&provider.CategoryID,
		&provider.Description,
		&provider.Experience,
		&provider.PhoneNumber,
		&provider.FirstName,
		&provider.LastName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	provider.CreatedAt = createdAt.Time
	provider.UpdatedAt = updatedAt.Time

	return &provider, nil
}
