package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShiftService/pkg/psqlbuilder"
)

const (
	tableReservations = "reservations"

	// codeUniqueViolation SQLSTATE нарушения уникального индекса
	codeUniqueViolation = "23505"
)

// Длительность брони не хранится в reservations: она берётся из услуги через JOIN
var reservationColumns = []string{
	"r.id",
	"r.requester_id",
	"r.shift_id",
	"r.service_id",
	"r.start_at",
	"r.code",
	"r.status",
	"r.is_archived",
	"s.duration_minutes",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий броней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронь. Проверка свободного слота выполняется вызывающей стороной
// в той же сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableReservations).
		Columns(
			"requester_id",
			"shift_id",
			"service_id",
			"start_at",
			"code",
			"status",
			"is_archived",
		).
		Values(
			reservation.RequesterID,
			reservation.ShiftID,
			reservation.ServiceID,
			reservation.StartAt,
			reservation.Code,
			reservation.Status,
			reservation.IsArchived,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reservation.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation && pqErr.Constraint == "reservations_code_key" {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронь по ID.
// Внутри транзакции строка брони блокируется (FOR UPDATE OF r), чтобы параллельные
// решения оператора по одной брони выполнялись по очереди.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectReservations().Where(squirrel.Eq{"r.id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return reservation, nil
}

// ListByShift возвращает все брони смены независимо от статуса и архива.
// Отбор броней, занимающих календарь, выполняет калькулятор свободных слотов.
func (r *Repository) ListByShift(ctx context.Context, shiftID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"r.shift_id": shiftID}).
		OrderBy("r.start_at ASC", "r.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByShift - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShift - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows, "ListByShift")
}

// List возвращает брони одной проекции (живые или архивные) с фильтрами и пагинацией
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectReservations().Where(viewPredicate(filter.View))

	if filter.ShiftID != nil {
		builder = builder.Where(squirrel.Eq{"r.shift_id": *filter.ShiftID})
	}
	if filter.RequesterID != nil {
		builder = builder.Where(squirrel.Eq{"r.requester_id": *filter.RequesterID})
	}

	builder = builder.OrderBy("r.start_at DESC", "r.id DESC")

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

	return scanReservations(rows, "List")
}

// UpdateStatus переводит бронь из статуса from в статус to.
// Если бронь уже не в статусе from (или её нет), возвращается ErrStatusChanged.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableReservations).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

// ArchiveByIDs ставит флаг архива на брони, у которых он ещё не стоит.
// Возвращает ID реально изменённых броней.
func (r *Repository) ArchiveByIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableReservations).
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

// viewPredicate условие проекции броней.
// Живые: не в архиве и не отклонены. Архивные: в архиве или отклонены.
func viewPredicate(view domain.View) squirrel.Sqlizer {
	if view == domain.ViewArchived {
		return squirrel.Or{
			squirrel.Eq{"r.is_archived": true},
			squirrel.Eq{"r.status": domain.StatusNotAccepted},
		}
	}
	return squirrel.And{
		squirrel.Eq{"r.is_archived": false},
		squirrel.NotEq{"r.status": domain.StatusNotAccepted},
	}
}

func selectReservations() squirrel.SelectBuilder {
	return psqlbuilder.Select(reservationColumns...).
		From(tableReservations + " r").
		Join("services s ON s.id = r.service_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.RequesterID,
		&reservation.ShiftID,
		&reservation.ServiceID,
		&reservation.StartAt,
		&reservation.Code,
		&reservation.Status,
		&reservation.IsArchived,
		&reservation.ServiceDurationMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

func scanReservations(rows *sql.Rows, op string) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return reservations, nil
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
