package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/infra/repository/memory"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

var testNow = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func fixture(t *testing.T) (*memory.Store, timezone.Clock, *recorder) {
	t.Helper()
	return memory.NewStore(), timezone.FixedClock{At: testNow}, &recorder{}
}

func TestBookingTogglesAvailability(t *testing.T) {
	store, clock, rec := fixture(t)
	ctx := context.Background()
	repo := store.Appointments()

	trainee := store.SeedTrainee("tina")
	trainer := store.SeedTrainer("tom", "strength")
	other := store.SeedTrainer("olga", "yoga")

	avail := NewGetAvailability(repo, clock)
	got, err := avail.Execute(ctx, "2026-03-12", "10:00")
	require.NoError(t, err)
	require.Len(t, got.Trainers, 2)

	ap, err := NewBook(repo, rec, clock).Execute(ctx, BookInput{
		ActorID:   trainee.UserID,
		TraineeID: trainee.ID,
		TrainerID: trainer.ID,
		Date:      "2026-03-12",
		Time:      "10:00",
	})
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusPending), ap.Status)
	require.Equal(t, 100.0, ap.ConsultationFee)
	require.False(t, ap.PaymentStatus)

	free, err := repo.IsTrainerAvailable(ctx, trainer.ID, ap.AppointmentDate)
	require.NoError(t, err)
	require.False(t, free)

	got, err = avail.Execute(ctx, "2026-03-12", "10:00")
	require.NoError(t, err)
	require.Len(t, got.Trainers, 1)
	require.Equal(t, other.ID, got.Trainers[0].ID)

	_, err = NewCancelAppointment(repo, rec, clock).Execute(ctx, trainee.UserID, trainee.ID, ap.ID)
	require.NoError(t, err)

	free, err = repo.IsTrainerAvailable(ctx, trainer.ID, ap.AppointmentDate)
	require.NoError(t, err)
	require.True(t, free)

	require.Equal(t, []string{"appointment_booked", "appointment_cancelled"}, rec.actions())
}

func TestBookRejectsTakenSlot(t *testing.T) {
	store, clock, rec := fixture(t)
	ctx := context.Background()
	book := NewBook(store.Appointments(), rec, clock)

	a := store.SeedTrainee("a")
	b := store.SeedTrainee("b")
	trainer := store.SeedTrainer("tom", "")

	in := BookInput{TraineeID: a.ID, TrainerID: trainer.ID, Date: "2026-03-12", Time: "10:00"}
	_, err := book.Execute(ctx, in)
	require.NoError(t, err)

	in.TraineeID = b.ID
	_, err = book.Execute(ctx, in)
	require.ErrorIs(t, err, domain.ErrTrainerUnavailable)
	require.Len(t, store.AllAppointments(), 1)
}

func TestBookWithBadInputCreatesNothing(t *testing.T) {
	store, clock, rec := fixture(t)
	ctx := context.Background()
	book := NewBook(store.Appointments(), rec, clock)

	trainee := store.SeedTrainee("tina")
	trainer := store.SeedTrainer("tom", "")

	_, err := book.Execute(ctx, BookInput{TraineeID: trainee.ID, TrainerID: trainer.ID, Date: "12/03/2026", Time: "10:00"})
	require.ErrorIs(t, err, domain.ErrInvalidSlot)

	_, err = book.Execute(ctx, BookInput{TraineeID: trainee.ID, TrainerID: trainer.ID, Date: "2026-03-12"})
	require.ErrorIs(t, err, domain.ErrMissingSlot)

	_, err = book.Execute(ctx, BookInput{TraineeID: trainee.ID, Date: "2026-03-12", Time: "10:00"})
	require.ErrorIs(t, err, ErrNoTrainerSelected)

	_, err = book.Execute(ctx, BookInput{TraineeID: trainee.ID, TrainerID: 999, Date: "2026-03-12", Time: "10:00"})
	require.True(t, httperr.IsNotFound(err))

	require.Empty(t, store.AllAppointments())
	require.Empty(t, rec.actions())
}

func TestSlotIsReadInGymZone(t *testing.T) {
	store := memory.NewStore()
	loc := time.FixedZone("gym", -3*3600)
	clock := timezone.FixedClock{At: testNow.In(loc)}

	trainee := store.SeedTrainee("tina")
	trainer := store.SeedTrainer("tom", "")

	ap, err := NewBook(store.Appointments(), audit.Discard, clock).Execute(context.Background(), BookInput{
		TraineeID: trainee.ID, TrainerID: trainer.ID, Date: "2026-03-12", Time: "10:00",
	})
	require.NoError(t, err)
	require.True(t, ap.AppointmentDate.Equal(time.Date(2026, 3, 12, 13, 0, 0, 0, time.UTC)))
}

func TestCancelRejectsPastAndCancelled(t *testing.T) {
	store, clock, rec := fixture(t)
	ctx := context.Background()
	cancel := NewCancelAppointment(store.Appointments(), rec, clock)

	trainee := store.SeedTrainee("tina")
	trainer := store.SeedTrainer("tom", "")

	past := store.SeedAppointment(models.Appointment{
		TraineeID: trainee.ID, TrainerID: trainer.ID,
		AppointmentDate: testNow.Add(-time.Hour), Status: string(domain.StatusConfirmed),
	})
	cancelled := store.SeedAppointment(models.Appointment{
		TraineeID: trainee.ID, TrainerID: trainer.ID,
		AppointmentDate: testNow.Add(time.Hour), Status: string(domain.StatusCancelled),
	})

	_, err := cancel.Execute(ctx, trainee.UserID, trainee.ID, past.ID)
	require.ErrorIs(t, err, domain.ErrCannotCancel)

	_, err = cancel.Execute(ctx, trainee.UserID, trainee.ID, cancelled.ID)
	require.ErrorIs(t, err, domain.ErrCannotCancel)

	all := store.AllAppointments()
	require.Equal(t, string(domain.StatusConfirmed), all[0].Status)
	require.Equal(t, string(domain.StatusCancelled), all[1].Status)
	require.Empty(t, rec.actions())
}

func TestCancelOtherTraineesAppointmentIsNotFound(t *testing.T) {
	store, clock, rec := fixture(t)
	owner := store.SeedTrainee("owner")
	intruder := store.SeedTrainee("intruder")
	trainer := store.SeedTrainer("tom", "")

	ap := store.SeedAppointment(models.Appointment{
		TraineeID: owner.ID, TrainerID: trainer.ID,
		AppointmentDate: testNow.Add(time.Hour), Status: string(domain.StatusPending),
	})

	_, err := NewCancelAppointment(store.Appointments(), rec, clock).Execute(context.Background(), intruder.UserID, intruder.ID, ap.ID)
	require.True(t, httperr.IsNotFound(err))
}

func TestUpdateByTrainer(t *testing.T) {
	store, clock, rec := fixture(t)
	ctx := context.Background()
	update := NewUpdateByTrainer(store.Appointments(), rec, clock)

	trainee := store.SeedTrainee("tina")
	trainer := store.SeedTrainer("tom", "")
	other := store.SeedTrainer("olga", "")

	at := testNow.Add(48 * time.Hour)
	ap := store.SeedAppointment(models.Appointment{
		TraineeID: trainee.ID, TrainerID: trainer.ID, AppointmentDate: at, Status: string(domain.StatusPending),
	})
	busy := store.SeedAppointment(models.Appointment{
		TraineeID: trainee.ID, TrainerID: trainer.ID, AppointmentDate: at.Add(time.Hour), Status: string(domain.StatusPending),
	})

	t.Run("other trainer gets not found", func(t *testing.T) {
		_, err := update.Execute(ctx, UpdateByTrainerInput{TrainerID: other.ID, AppointmentID: ap.ID, Status: "Confirmed"})
		require.True(t, httperr.IsNotFound(err))
	})

	t.Run("bad date keeps status change", func(t *testing.T) {
		res, err := update.Execute(ctx, UpdateByTrainerInput{
			TrainerID: trainer.ID, AppointmentID: ap.ID, Status: "Confirmed", DateTimeRaw: "soon",
		})
		require.NoError(t, err)
		require.ErrorIs(t, res.RescheduleError, domain.ErrInvalidReschedule)
		require.Equal(t, string(domain.StatusConfirmed), store.AllAppointments()[0].Status)
		require.True(t, store.AllAppointments()[0].AppointmentDate.Equal(at))
	})

	t.Run("reschedule onto a held slot keeps status change", func(t *testing.T) {
		res, err := update.Execute(ctx, UpdateByTrainerInput{
			TrainerID: trainer.ID, AppointmentID: ap.ID, Status: "Rescheduled",
			DateTimeRaw: busy.AppointmentDate.Format("2006-01-02T15:04"),
		})
		require.NoError(t, err)
		require.ErrorIs(t, res.RescheduleError, domain.ErrTrainerUnavailable)
		require.Equal(t, string(domain.StatusRescheduled), store.AllAppointments()[0].Status)
		require.True(t, store.AllAppointments()[0].AppointmentDate.Equal(at))
		require.True(t, res.Appointment.AppointmentDate.Equal(at))
	})

	t.Run("reschedule to a free slot", func(t *testing.T) {
		res, err := update.Execute(ctx, UpdateByTrainerInput{
			TrainerID: trainer.ID, AppointmentID: ap.ID, Status: "Rescheduled", DateTimeRaw: "2026-03-20T09:00",
		})
		require.NoError(t, err)
		require.NoError(t, res.RescheduleError)
		require.True(t, store.AllAppointments()[0].AppointmentDate.Equal(time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)))
	})
}

func TestRecordPayment(t *testing.T) {
	store, clock, rec := fixture(t)
	ctx := context.Background()
	pay := NewRecordPayment(store.Appointments(), rec, clock)

	trainee := store.SeedTrainee("tina")
	trainer := store.SeedTrainer("tom", "")
	ap := store.SeedAppointment(models.Appointment{
		TraineeID: trainee.ID, TrainerID: trainer.ID, AppointmentDate: testNow,
		Status: string(domain.StatusCompleted), ConsultationFee: 100,
	})

	bill, err := pay.Execute(ctx, trainer.UserID, trainer.ID, ap.ID)
	require.NoError(t, err)
	require.Equal(t, 100.0, bill.Amount)
	require.True(t, bill.IsPaid)
	require.True(t, store.AllAppointments()[0].PaymentStatus)

	_, err = pay.Execute(ctx, trainer.UserID, trainer.ID, ap.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyPaid)
	require.Len(t, store.AllBillings(), 1)
}

func TestListForTraineeSplitsTimeline(t *testing.T) {
	store, clock, _ := fixture(t)
	trainee := store.SeedTrainee("tina")
	trainer := store.SeedTrainer("tom", "")

	for _, d := range []time.Duration{-2 * time.Hour, -time.Hour, time.Hour, 2 * time.Hour} {
		store.SeedAppointment(models.Appointment{
			TraineeID: trainee.ID, TrainerID: trainer.ID,
			AppointmentDate: testNow.Add(d), Status: string(domain.StatusPending),
		})
	}

	got, err := NewListForTrainee(store.Appointments(), clock).Execute(context.Background(), trainee.ID)
	require.NoError(t, err)
	require.Len(t, got.Upcoming, 2)
	require.Len(t, got.Past, 2)
	require.True(t, got.Upcoming[0].AppointmentDate.Before(got.Upcoming[1].AppointmentDate))
	require.True(t, got.Past[0].AppointmentDate.After(got.Past[1].AppointmentDate))
	require.Equal(t, "tom", got.Upcoming[0].Trainer.User.Username)
}
