package careplan

import (
	"context"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	"github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/careplan"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type AddPlanInput struct {
	ActorID   uint
	TrainerID uint
	TraineeID uint

	Kind    domain.Kind
	Details string
}

type AddPlan struct {
	plans    domain.Repository
	accounts account.Repository
	audit    audit.Sink
}

func NewAddPlan(
	plans domain.Repository,
	accounts account.Repository,
	audit audit.Sink,
) *AddPlan {
	return &AddPlan{
		plans:    plans,
		accounts: accounts,
		audit:    audit,
	}
}

func (uc *AddPlan) Execute(
	ctx context.Context,
	in AddPlanInput,
) (*models.CarePlan, error) {

	if _, err := uc.accounts.GetTrainee(ctx, in.TraineeID); err != nil {
		return nil, err
	}

	trainerID := in.TrainerID
	plan, err := domain.New(in.Kind, in.TraineeID, &trainerID, in.Details)
	if err != nil {
		return nil, err
	}

	if err := uc.plans.Create(ctx, plan); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   string(in.Kind) + "_plan_added",
		Entity:   "care_plan",
		EntityID: &plan.ID,
		Metadata: map[string]any{"trainee_id": in.TraineeID},
	})

	return plan, nil
}
