package reservation

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
)

var rowColumns = []string{
	"id", "requester_id", "shift_id", "service_id", "start_at", "code",
	"status", "is_archived", "duration_minutes", "created_at", "updated_at",
}

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), db, mock
}

func TestListByShift_ReadsDurationFromService(t *testing.T) {
	repo, _, mock := newRepo(t)
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM reservations r JOIN services s ON s.id = r.service_id WHERE r.shift_id = \$1 ORDER BY r.start_at ASC`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(int64(1), int64(100), int64(5), int64(2), start, "abcDEF123", "accepted", false, int64(15), start, start).
			AddRow(int64(2), int64(101), int64(5), int64(2), start, "xyzXYZ789", "not_accepted", false, int64(15), start, start))

	reservations, err := repo.ListByShift(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, 15*time.Minute, reservations[0].Duration())
	assert.Equal(t, start.Add(15*time.Minute), reservations[0].EndAt())
	assert.Equal(t, domain.StatusNotAccepted, reservations[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_LivePredicate(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`WHERE \(r.is_archived = \$1 AND r.status <> \$2\) ORDER BY`).
		WithArgs(false, domain.StatusNotAccepted).
		WillReturnRows(sqlmock.NewRows(rowColumns))

	_, err := repo.List(context.Background(), domain.ReservationFilter{View: domain.ViewLive})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ArchivedPredicate(t *testing.T) {
	repo, _, mock := newRepo(t)
	requester := int64(100)

	mock.ExpectQuery(`WHERE \(r.is_archived = \$1 OR r.status = \$2\) AND r.requester_id = \$3 ORDER BY`).
		WithArgs(true, domain.StatusNotAccepted, requester).
		WillReturnRows(sqlmock.NewRows(rowColumns))

	_, err := repo.List(context.Background(), domain.ReservationFilter{View: domain.ViewArchived, RequesterID: &requester})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateCode(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO reservations`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "reservations_code_key"})

	_, err := repo.Create(context.Background(), &domain.Reservation{Code: "abcDEF123", Status: domain.StatusReview})
	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestCreate_KeepsDriverErrorInChain(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO reservations`).
		WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.Create(context.Background(), &domain.Reservation{Code: "abcDEF123", Status: domain.StatusReview})
	require.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestUpdateStatus_OnlyFromExpectedStatus(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(`UPDATE reservations SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3`).
		WithArgs(domain.StatusAccepted, int64(7), domain.StatusReview).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 7, domain.StatusReview, domain.StatusAccepted)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_StatusChanged(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(`UPDATE reservations SET status = \$1`).
		WithArgs(domain.StatusNotAccepted, int64(7), domain.StatusReview).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 7, domain.StatusReview, domain.StatusNotAccepted)
	assert.ErrorIs(t, err, ErrStatusChanged)
}

func TestGetByID_LocksRowInTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE r.id = \$1 FOR UPDATE OF r`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(int64(7), int64(100), int64(5), int64(2), start, "abcDEF123", "review", false, int64(15), start, start))
	mock.ExpectRollback()

	tx, err := dbmetrics.Wrap(db, nil, "test").BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	reservation, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReview, reservation.Status)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NoLockOutsideTransaction(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`WHERE r.id = \$1$`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(rowColumns))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveByIDs_Idempotent(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE reservations SET is_archived = \$1, updated_at = NOW\(\) WHERE id IN \(\$2\) AND is_archived = \$3 RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	archived, err := repo.ArchiveByIDs(context.Background(), []int64{1})
	require.NoError(t, err)
	assert.Empty(t, archived)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveByIDs_ReturnsChangedRows(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE reservations SET is_archived = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)).AddRow(int64(3)))

	archived, err := repo.ArchiveByIDs(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, archived)
	assert.NoError(t, mock.ExpectationsWereMet())
}
