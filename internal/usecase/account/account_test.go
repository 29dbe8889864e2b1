package account

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/infra/repository/memory"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/storage"
	"github.com/BruksfildServices01/gym-scheduler/internal/throttle"
	"github.com/BruksfildServices01/gym-scheduler/internal/validators"
)

func creds(username, email string) Credentials {
	return Credentials{
		Username:        username,
		Email:           email,
		Password:        "s3cret!",
		PasswordConfirm: "s3cret!",
	}
}

func newRegister(t *testing.T, store *memory.Store) (*Register, *storage.LocalStore, string) {
	t.Helper()
	root := t.TempDir()
	photos := storage.NewLocalStore(root, "/media")
	return NewRegister(store.Accounts(), photos, validators.EmailChecker{}, audit.Discard), photos, root
}

func TestRegisterTrainee(t *testing.T) {
	store := memory.NewStore()
	reg, _, _ := newRegister(t, store)

	trainee, err := reg.Trainee(context.Background(), RegisterTraineeInput{
		Credentials:      creds("tina", "tina@example.com"),
		PhoneNumber:      " 555-0101 ",
		HealthConditions: true,
		HealthDetails:    "asthma",
	})
	require.NoError(t, err)
	require.Equal(t, "555-0101", trainee.PhoneNumber)

	users := store.AllUsers()
	require.Len(t, users, 1)
	require.False(t, users[0].IsStaff)
	require.NotEqual(t, "s3cret!", users[0].PasswordHash)
	require.Equal(t, domain.RoleTrainee, domain.RoleOf(&users[0]))
}

func TestRegisterDuplicateUsernameCreatesNothing(t *testing.T) {
	store := memory.NewStore()
	reg, _, _ := newRegister(t, store)
	ctx := context.Background()

	_, err := reg.Trainee(ctx, RegisterTraineeInput{Credentials: creds("tina", "tina@example.com")})
	require.NoError(t, err)

	_, err = reg.Trainee(ctx, RegisterTraineeInput{Credentials: creds("tina", "other@example.com")})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = reg.Trainee(ctx, RegisterTraineeInput{Credentials: creds("tina2", "TINA@example.com")})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	require.Len(t, store.AllUsers(), 1)
	require.Len(t, store.AllTrainees(), 1)
}

func TestRegisterValidationOrder(t *testing.T) {
	store := memory.NewStore()
	reg, _, _ := newRegister(t, store)
	ctx := context.Background()

	in := creds("tina", "tina@example.com")
	in.PasswordConfirm = "nope"
	_, err := reg.Trainee(ctx, RegisterTraineeInput{Credentials: in})
	require.ErrorIs(t, err, domain.ErrPasswordMismatch)

	_, err = reg.Trainee(ctx, RegisterTraineeInput{Credentials: creds(" ", "x@example.com")})
	require.ErrorIs(t, err, ErrMissingUsername)

	_, err = reg.Trainee(ctx, RegisterTraineeInput{Credentials: creds("tina", "not-an-email")})
	require.ErrorIs(t, err, ErrInvalidEmail)

	require.Empty(t, store.AllUsers())
}

func TestRegisterTrainerStoresPhoto(t *testing.T) {
	store := memory.NewStore()
	reg, photos, root := newRegister(t, store)
	ctx := context.Background()

	img := image.NewRGBA(image.Rect(0, 0, 800, 400))
	img.Set(10, 10, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	trainer, err := reg.Trainer(ctx, RegisterTrainerInput{
		Credentials:    creds("tom", "tom@example.com"),
		Specialization: "strength",
		Photo:          &buf,
	})
	require.NoError(t, err)
	require.NotEmpty(t, trainer.PhotoKey)

	_, err = os.Stat(filepath.Join(root, trainer.PhotoKey))
	require.NoError(t, err)

	cards, err := NewProfiles(store.Accounts(), photos).Trainers(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	require.Equal(t, "/media/"+trainer.PhotoKey, cards[0].PhotoURL)

	users := store.AllUsers()
	require.True(t, users[0].IsStaff)
	require.False(t, users[0].IsSuperuser)
}

func TestRegisterTrainerRejectsBadPhoto(t *testing.T) {
	store := memory.NewStore()
	reg, _, _ := newRegister(t, store)

	_, err := reg.Trainer(context.Background(), RegisterTrainerInput{
		Credentials: creds("tom", "tom@example.com"),
		Photo:       bytes.NewReader([]byte("definitely not an image")),
	})
	require.ErrorIs(t, err, ErrInvalidPhoto)
	require.Empty(t, store.AllUsers())
}

func TestLogin(t *testing.T) {
	store := memory.NewStore()
	reg, _, _ := newRegister(t, store)
	ctx := context.Background()

	_, err := reg.Trainee(ctx, RegisterTraineeInput{Credentials: creds("tina", "tina@example.com")})
	require.NoError(t, err)

	login := NewLogin(store.Accounts(), throttle.NewMemoryLimiter(3, time.Minute), audit.Discard)

	u, err := login.Execute(ctx, "tina", "s3cret!", "10.0.0.1")
	require.NoError(t, err)
	require.Equal(t, "tina", u.Username)

	_, err = login.Execute(ctx, "tina", "wrong", "10.0.0.1")
	require.ErrorIs(t, err, domain.ErrInvalidLogin)

	_, err = login.Execute(ctx, "nobody", "s3cret!", "10.0.0.1")
	require.ErrorIs(t, err, domain.ErrInvalidLogin)
}

func TestLoginThrottlesRepeatedFailures(t *testing.T) {
	store := memory.NewStore()
	reg, _, _ := newRegister(t, store)
	ctx := context.Background()

	_, err := reg.Trainee(ctx, RegisterTraineeInput{Credentials: creds("tina", "tina@example.com")})
	require.NoError(t, err)

	login := NewLogin(store.Accounts(), throttle.NewMemoryLimiter(2, time.Minute), audit.Discard)

	for i := 0; i < 2; i++ {
		_, err = login.Execute(ctx, "tina", "wrong", "10.0.0.1")
		require.ErrorIs(t, err, domain.ErrInvalidLogin)
	}

	_, err = login.Execute(ctx, "tina", "s3cret!", "10.0.0.1")
	require.ErrorIs(t, err, domain.ErrTooManyAttempts)

	_, err = login.Execute(ctx, "tina", "s3cret!", "10.0.0.2")
	require.NoError(t, err)
}

func TestCreateAdmin(t *testing.T) {
	store := memory.NewStore()
	uc := NewCreateAdmin(store.Accounts())

	u, err := uc.Execute(context.Background(), CreateAdminInput{Username: "root", Email: "root@example.com", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, domain.RoleOf(u))

	_, err = uc.Execute(context.Background(), CreateAdminInput{Username: "root", Password: "pw"})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

// staleEmailCheck answers the first email lookup from before a concurrent
// registration committed.
type staleEmailCheck struct {
	*memory.AccountRepository
	stale bool
}

func (r *staleEmailCheck) EmailExists(ctx context.Context, email string) (bool, error) {
	if r.stale {
		r.stale = false
		return false, nil
	}
	return r.AccountRepository.EmailExists(ctx, email)
}

func TestRegisterLostEmailRaceReportsEmail(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	photos := storage.NewLocalStore(t.TempDir(), "/media")

	_, err := NewRegister(store.Accounts(), photos, validators.EmailChecker{}, audit.Discard).
		Trainee(ctx, RegisterTraineeInput{Credentials: creds("tina", "tina@example.com")})
	require.NoError(t, err)

	repo := &staleEmailCheck{AccountRepository: store.Accounts(), stale: true}
	_, err = NewRegister(repo, photos, validators.EmailChecker{}, audit.Discard).
		Trainee(ctx, RegisterTraineeInput{Credentials: creds("tess", "tina@example.com")})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	require.Len(t, store.AllUsers(), 1)
}

func TestDuplicateUsesConstraintName(t *testing.T) {
	repo := memory.NewStore().Accounts()
	user := &models.User{Username: "tina", Email: "tina@example.com"}
	ctx := context.Background()

	err := duplicate(ctx, repo, user, &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	err = duplicate(ctx, repo, user, &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)

	other := &pgconn.PgError{Code: "23503"}
	require.Same(t, other, duplicate(ctx, repo, user, other))
}
