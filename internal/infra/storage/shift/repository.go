package shift

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

const (
	tableShifts        = "shifts"
	tableShiftServices = "shift_services"
)

var shiftColumns = []string{
	"id",
	"provider_id",
	"start_at",
	"end_at",
	"recurrence",
	"repeat_count",
	"is_available",
	"is_archived",
	"parent_shift_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий смен и их связей с услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает смену. Набор услуг сохраняется отдельно через AttachServices,
// поэтому вызывать оба метода нужно в одной транзакции.
func (r *Repository) Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableShifts).
		Columns(
			"provider_id",
			"start_at",
			"end_at",
			"recurrence",
			"repeat_count",
			"is_available",
			"is_archived",
			"parent_shift_id",
		).
		Values(
			shift.ProviderID,
			shift.StartAt,
			shift.EndAt,
			shift.Recurrence,
			shift.RepeatCount,
			shift.IsAvailable,
			shift.IsArchived,
			shift.ParentShiftID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	shift.CreatedAt = createdAt.Time
	shift.UpdatedAt = updatedAt.Time

	return shift, nil
}

// AttachServices добавляет услуги в набор смены. Уже привязанные услуги пропускаются.
// Возвращает число реально добавленных связей.
func (r *Repository) AttachServices(ctx context.Context, shiftID int64, serviceIDs []int64) (int64, error) {
	if len(serviceIDs) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(tableShiftServices).Columns("shift_id", "service_id")
	for _, serviceID := range serviceIDs {
		builder = builder.Values(shiftID, serviceID)
	}

	query, args, err := builder.Suffix("ON CONFLICT (shift_id, service_id) DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: AttachServices - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: AttachServices - execute insert: %w", ErrExecQuery, err)
	}

	added, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: AttachServices - get rows affected: %v", ErrExecQuery, err)
	}

	return added, nil
}

// CountServices возвращает размер набора услуг смены
func (r *Repository) CountServices(ctx context.Context, shiftID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableShiftServices).
		Where(squirrel.Eq{"shift_id": shiftID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountServices - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountServices - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// GetByID получает смену вместе с набором услуг.
// Внутри транзакции строка смены блокируется (FOR UPDATE): так сериализуются
// параллельные бронирования одной смены и изменения её набора услуг.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(shiftColumns...).
		From(tableShifts).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	shift, err := scanShift(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shift: %w", ErrScanRow, err)
	}

	services, err := r.loadServiceIDs(ctx, []int64{shift.ID})
	if err != nil {
		return nil, err
	}
	if ids, ok := services[shift.ID]; ok {
		shift.ServiceIDs = ids
	}

	return shift, nil
}

// List возвращает смены одной проекции (живые или архивные) с фильтрами и пагинацией
func (r *Repository) List(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(shiftColumns...).
		From(tableShifts).
		Where(viewPredicate(filter.View))

	if filter.ProviderID != nil {
		builder = builder.Where(squirrel.Eq{"provider_id": *filter.ProviderID})
	}
	if filter.ServiceID != nil {
		builder = builder.Where(squirrel.Expr(
			"id IN (SELECT shift_id FROM "+tableShiftServices+" WHERE service_id = ?)", *filter.ServiceID))
	}
	if filter.StartFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"start_at": *filter.StartFrom})
	}

	if filter.NewestFirst {
		builder = builder.OrderBy("start_at DESC", "id DESC")
	} else {
		builder = builder.OrderBy("start_at ASC", "id ASC")
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

	shifts := make([]*domain.Shift, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		shifts = append(shifts, shift)
		ids = append(ids, shift.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	services, err := r.loadServiceIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, shift := range shifts {
		if ids, ok := services[shift.ID]; ok {
			shift.ServiceIDs = ids
		}
	}

	return shifts, nil
}

// ArchiveByIDs переводит живые смены в архив. Уже архивные смены не меняются.
// Возвращает ID реально переведённых смен.
func (r *Repository) ArchiveByIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableShifts).
		Set("is_archived", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids, "is_archived": false}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ArchiveByIDs - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ArchiveByIDs - execute update: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanIDs(rows, "ArchiveByIDs")
}

// loadServiceIDs загружает наборы услуг для нескольких смен одним запросом
func (r *Repository) loadServiceIDs(ctx context.Context, shiftIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(shiftIDs))
	if len(shiftIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("shift_id", "service_id").
		From(tableShiftServices).
		Where(squirrel.Eq{"shift_id": shiftIDs}).
		OrderBy("shift_id ASC", "service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadServiceIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var shiftID, serviceID int64
		if err := rows.Scan(&shiftID, &serviceID); err != nil {
			return nil, fmt.Errorf("%w: loadServiceIDs - scan row: %w", ErrScanRow, err)
		}
		result[shiftID] = append(result[shiftID], serviceID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadServiceIDs - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// viewPredicate условие проекции: живые смены не архивированы, архивные - архивированы
func viewPredicate(view domain.View) squirrel.Sqlizer {
	return squirrel.Eq{"is_archived": view == domain.ViewArchived}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShift(row rowScanner) (*domain.Shift, error) {
	var shift domain.Shift
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&shift.ID,
		&shift.ProviderID,
		&shift.StartAt,
		&shift.EndAt,
		&shift.Recurrence,
		&shift.RepeatCount,
		&shift.IsAvailable,
		&shift.IsArchived,
		&shift.ParentShiftID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	shift.CreatedAt = createdAt.Time
	shift.UpdatedAt = updatedAt.Time
	shift.ServiceIDs = []int64{}

	return &shift, nil
}

func scanIDs(rows *sql.Rows, op string) ([]int64, error) {
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %s - scan id: %w", ErrScanRow, op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}
	return ids, nil
}
