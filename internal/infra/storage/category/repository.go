package category

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

const tableCategories = "categories"

// Repository репозиторий категорий исполнителей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория категорий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает категорию
func (r *Repository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableCategories).
		Columns("name").
		Values(category.Name).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&category.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	category.CreatedAt = createdAt.Time

	return category, nil
}

// GetByID получает категорию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at").
		From(tableCategories).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var category domain.Category
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&category.ID, &category.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan category: %w", ErrScanRow, err)
	}
	category.CreatedAt = createdAt.Time

	return &category, nil
}

// List возвращает все категории по алфавиту
func (r *Repository) List(ctx context.Context) ([]*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at").
		From(tableCategories).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		var createdAt sql.NullTime
		if err := rows.Scan(&category.ID, &category.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		category.CreatedAt = createdAt.Time
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return categories, nil
}
