package careplan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/careplan"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/infra/repository/memory"
)

func TestAddPlanStoresTrimmedDetails(t *testing.T) {
	store := memory.NewStore()
	trainee := store.SeedTrainee("tina")
	trainer := store.SeedTrainer("tom", "strength")

	uc := NewAddPlan(store.CarePlans(), store.Accounts(), audit.Discard)

	plan, err := uc.Execute(context.Background(), AddPlanInput{
		ActorID:   trainer.UserID,
		TrainerID: trainer.ID,
		TraineeID: trainee.ID,
		Kind:      domain.KindDiet,
		Details:   "  oats and eggs  ",
	})
	require.NoError(t, err)
	require.Equal(t, "oats and eggs", plan.PlanDetails)
	require.NotNil(t, plan.TrainerID)
	require.Equal(t, trainer.ID, *plan.TrainerID)

	latest, err := store.CarePlans().Latest(context.Background(), trainee.ID, domain.KindDiet)
	require.NoError(t, err)
	require.Equal(t, plan.ID, latest.ID)

	none, err := store.CarePlans().Latest(context.Background(), trainee.ID, domain.KindWorkout)
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestAddPlanRejects(t *testing.T) {
	store := memory.NewStore()
	trainee := store.SeedTrainee("tina")
	trainer := store.SeedTrainer("tom", "strength")
	uc := NewAddPlan(store.CarePlans(), store.Accounts(), audit.Discard)

	t.Run("unknown trainee", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), AddPlanInput{
			TrainerID: trainer.ID,
			TraineeID: 999,
			Kind:      domain.KindWorkout,
			Details:   "squats",
		})
		require.True(t, httperr.IsNotFound(err))
	})

	t.Run("blank details", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), AddPlanInput{
			TrainerID: trainer.ID,
			TraineeID: trainee.ID,
			Kind:      domain.KindWorkout,
			Details:   "   ",
		})
		_, ok := httperr.AsValidation(err)
		require.True(t, ok)
	})

	require.Empty(t, store.AllCarePlans())
}
