package careplan

import (
	"strings"

	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type Kind string

const (
	KindDiet    Kind = "diet"
	KindWorkout Kind = "workout"
)

func (k Kind) Label() string {
	switch k {
	case KindDiet:
		return "Diet"
	case KindWorkout:
		return "Workout"
	}
	return string(k)
}

var ErrUnknownKind = httperr.ErrBusiness("unknown_plan_kind")

func ParseKind(raw string) (Kind, error) {
	switch k := Kind(raw); k {
	case KindDiet, KindWorkout:
		return k, nil
	}
	return "", ErrUnknownKind
}

// New trims the details and refuses blank plans.
func New(kind Kind, traineeID uint, trainerID *uint, details string) (*models.CarePlan, error) {
	details = strings.TrimSpace(details)
	if details == "" {
		return nil, httperr.Validation(kind.Label() + " plan details cannot be empty.")
	}
	return &models.CarePlan{
		Kind:        string(kind),
		TraineeID:   traineeID,
		TrainerID:   trainerID,
		PlanDetails: details,
	}, nil
}
