package account

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/storage"
	"github.com/BruksfildServices01/gym-scheduler/internal/validators"
)

var (
	ErrInvalidEmail    = httperr.Validation("Please enter a valid email address.")
	ErrMissingUsername = httperr.Validation("Username is required.")
	ErrMissingPassword = httperr.Validation("Password is required.")
	ErrInvalidPhoto    = httperr.Validation("Profile picture must be a JPEG, PNG, GIF or WebP image under 5 MB.")
)

// ======================================================
// INPUT
// ======================================================

type Credentials struct {
	Username        string
	FirstName       string
	LastName        string
	Email           string
	Password        string
	PasswordConfirm string
}

type RegisterTraineeInput struct {
	Credentials

	PhoneNumber      string
	DOB              string
	Gender           string
	HealthConditions bool
	HealthDetails    string
}

type RegisterTrainerInput struct {
	Credentials

	PhoneNumber    string
	DOB            string
	Gender         string
	Specialization string

	// Photo is the uploaded profile picture, nil when none was sent.
	Photo io.Reader
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo   domain.Repository
	photos storage.PhotoStore
	emails validators.EmailChecker
	audit  audit.Sink
}

func NewRegister(
	repo domain.Repository,
	photos storage.PhotoStore,
	emails validators.EmailChecker,
	audit audit.Sink,
) *Register {
	return &Register{
		repo:   repo,
		photos: photos,
		emails: emails,
		audit:  audit,
	}
}

func (uc *Register) Trainee(
	ctx context.Context,
	in RegisterTraineeInput,
) (*models.Trainee, error) {

	user, err := uc.newUser(ctx, in.Credentials, false)
	if err != nil {
		return nil, err
	}

	trainee := &models.Trainee{
		PhoneNumber:      strings.TrimSpace(in.PhoneNumber),
		DOB:              strings.TrimSpace(in.DOB),
		Gender:           strings.TrimSpace(in.Gender),
		HealthConditions: in.HealthConditions,
		HealthDetails:    strings.TrimSpace(in.HealthDetails),
	}

	if err := uc.repo.CreateTrainee(ctx, user, trainee); err != nil {
		return nil, duplicate(ctx, uc.repo, user, err)
	}

	uc.dispatch(user, "trainee_registered", "trainee", trainee.ID)
	return trainee, nil
}

func (uc *Register) Trainer(
	ctx context.Context,
	in RegisterTrainerInput,
) (*models.Trainer, error) {

	user, err := uc.newUser(ctx, in.Credentials, true)
	if err != nil {
		return nil, err
	}

	trainer := &models.Trainer{
		PhoneNumber:    strings.TrimSpace(in.PhoneNumber),
		DOB:            strings.TrimSpace(in.DOB),
		Gender:         strings.TrimSpace(in.Gender),
		Specialization: strings.TrimSpace(in.Specialization),
	}

	if in.Photo != nil {
		key, err := uc.savePhoto(ctx, in.Photo)
		if err != nil {
			return nil, err
		}
		trainer.PhotoKey = key
	}

	if err := uc.repo.CreateTrainer(ctx, user, trainer); err != nil {
		if trainer.PhotoKey != "" {
			if derr := uc.photos.Delete(ctx, trainer.PhotoKey); derr != nil {
				slog.WarnContext(ctx, "orphan trainer photo", "key", trainer.PhotoKey, "err", derr)
			}
		}
		return nil, duplicate(ctx, uc.repo, user, err)
	}

	uc.dispatch(user, "trainer_registered", "trainer", trainer.ID)
	return trainer, nil
}

// newUser validates the shared identity fields in the order the form reports them.
func (uc *Register) newUser(ctx context.Context, in Credentials, staff bool) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if in.Password != in.PasswordConfirm {
		return nil, domain.ErrPasswordMismatch
	}
	if username == "" {
		return nil, ErrMissingUsername
	}
	if in.Password == "" {
		return nil, ErrMissingPassword
	}

	taken, err := uc.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	taken, err = uc.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	if !uc.emails.Valid(email) {
		return nil, ErrInvalidEmail
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Username:     username,
		Email:        email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PasswordHash: hash,
		IsStaff:      staff,
	}, nil
}

func (uc *Register) savePhoto(ctx context.Context, r io.Reader) (string, error) {
	body, err := storage.NormalizePhoto(r)
	if err != nil {
		slog.InfoContext(ctx, "rejected trainer photo", "err", err)
		return "", ErrInvalidPhoto
	}

	key := storage.NewPhotoKey()
	if err := uc.photos.Save(ctx, key, storage.PhotoContentType, body); err != nil {
		return "", err
	}
	return key, nil
}

func (uc *Register) dispatch(user *models.User, action, entity string, id uint) {
	uc.audit.Dispatch(audit.Event{
		ActorID:  &user.ID,
		Action:   action,
		Entity:   entity,
		EntityID: &id,
	})
}

const (
	usernameIndex = "idx_users_username"
	emailIndex    = "idx_users_email"
)

// duplicate turns a lost race on the unique indexes into the form message for the
// field that clashed.
func duplicate(ctx context.Context, repo domain.Repository, user *models.User, err error) error {
	if !httperr.IsUniqueViolation(err) {
		return err
	}

	switch httperr.UniqueConstraint(err) {
	case usernameIndex:
		return domain.ErrUsernameTaken
	case emailIndex:
		return domain.ErrEmailTaken
	}

	if taken, lerr := repo.UsernameExists(ctx, user.Username); lerr == nil && taken {
		return domain.ErrUsernameTaken
	}
	if taken, lerr := repo.EmailExists(ctx, user.Email); lerr == nil && taken {
		return domain.ErrEmailTaken
	}
	return domain.ErrUsernameTaken
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
