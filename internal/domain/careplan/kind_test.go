package careplan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
)

func TestNewRejectsBlankDetails(t *testing.T) {
	_, err := New(KindDiet, 1, nil, "   ")
	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	require.Equal(t, "Diet plan details cannot be empty.", ve.Message)

	_, err = New(KindWorkout, 1, nil, "")
	ve, ok = httperr.AsValidation(err)
	require.True(t, ok)
	require.Equal(t, "Workout plan details cannot be empty.", ve.Message)
}

func TestNewTrimsDetails(t *testing.T) {
	trainer := uint(3)
	p, err := New(KindWorkout, 2, &trainer, "  squats 5x5 \n")
	require.NoError(t, err)
	require.Equal(t, "squats 5x5", p.PlanDetails)
	require.Equal(t, "workout", p.Kind)
	require.Equal(t, &trainer, p.TrainerID)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("diet")
	require.NoError(t, err)
	require.Equal(t, KindDiet, k)

	_, err = ParseKind("cardio")
	require.ErrorIs(t, err, ErrUnknownKind)
}
