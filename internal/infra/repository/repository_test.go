package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

var at = time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

func TestCancelIfUpcoming(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectExec(`UPDATE "appointments" SET .*status <> .*appointment_date >= `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	ok, err := repo.CancelIfUpcoming(context.Background(), 7, 3, at)
	require.NoError(t, err)
	require.True(t, ok)

	mock.ExpectExec(`UPDATE "appointments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	ok, err = repo.CancelIfUpcoming(context.Background(), 7, 3, at)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsTrainerAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WithArgs(uint(2), at, string(appointment.StatusCancelled)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.IsTrainerAvailable(context.Background(), 2, at)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAvailableRejectsHeldSlot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "?id"? FROM "trainers" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.CreateIfAvailable(context.Background(), &models.Appointment{
		TraineeID:       1,
		TrainerID:       2,
		AppointmentDate: at,
		Status:          string(appointment.StatusPending),
	})
	require.ErrorIs(t, err, appointment.ErrTrainerUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAvailableMapsUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "?id"? FROM "trainers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreateIfAvailable(context.Background(), &models.Appointment{
		TraineeID:       1,
		TrainerID:       2,
		AppointmentDate: at,
		Status:          string(appointment.StatusPending),
	})
	require.ErrorIs(t, err, appointment.ErrTrainerUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAvailableUnknownTrainer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "?id"? FROM "trainers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.CreateIfAvailable(context.Background(), &models.Appointment{TrainerID: 99, AppointmentDate: at})
	require.ErrorIs(t, err, httperr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaidTwice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments" SET "payment_status"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	ap := &models.Appointment{ID: 5}
	err := repo.MarkPaid(context.Background(), ap, &models.Billing{AppointmentID: 5, Amount: 100, IsPaid: true})
	require.ErrorIs(t, err, appointment.ErrAlreadyPaid)
	require.False(t, ap.PaymentStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveWithoutMembership(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMembershipGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE .*trainee_id = \$1 AND is_active`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	m, err := repo.GetActive(context.Background(), 4)
	require.NoError(t, err)
	require.Nil(t, m)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateEnded(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMembershipGormRepository(db)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE "memberships" SET "is_active"=\$1.*end_date < \$`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeactivateEnded(context.Background(), day)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaidRevenue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportGormRepository(db)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "billings" WHERE .*is_paid AND billing_date >= \$1 AND billing_date < \$2`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(350.5))

	total, err := repo.PaidRevenue(context.Background(), from, to)
	require.NoError(t, err)
	require.Equal(t, 350.5, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTraineeDuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"})
	mock.ExpectRollback()

	err := repo.CreateTrainee(context.Background(), &models.User{Username: "tina"}, &models.Trainee{})
	require.True(t, httperr.IsUniqueViolation(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailExistsIgnoresCase(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountGormRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE LOWER\(email\) = LOWER\(\$1\)`).
		WithArgs("Tina@Example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.EmailExists(context.Background(), "Tina@Example.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}
