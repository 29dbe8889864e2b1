package membership

import (
	"context"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/membership"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

type SelectPlanInput struct {
	ActorID   uint
	TraineeID uint

	PlanType       string
	DurationMonths string
}

type SelectPlan struct {
	repo  domain.Repository
	audit audit.Sink
	clock timezone.Clock
}

func NewSelectPlan(
	repo domain.Repository,
	audit audit.Sink,
	clock timezone.Clock,
) *SelectPlan {
	return &SelectPlan{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// Execute replaces the trainee's active membership with one priced from the
// per-month table.
func (uc *SelectPlan) Execute(
	ctx context.Context,
	in SelectPlanInput,
) (*models.Membership, error) {

	plan, err := domain.ParsePlanType(in.PlanType)
	if err != nil {
		return nil, err
	}

	months, err := domain.ParseDuration(in.DurationMonths)
	if err != nil {
		return nil, err
	}

	quote := domain.QuoteSelection(plan, months, timezone.Today(uc.clock.Now()))
	m := domain.New(in.TraineeID, quote)
	if err := uc.repo.Activate(ctx, m); err != nil {
		return nil, err
	}

	dispatchActivated(uc.audit, in.ActorID, m, "membership_selected")
	return m, nil
}

func dispatchActivated(sink audit.Sink, actorID uint, m *models.Membership, action string) {
	sink.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   action,
		Entity:   "membership",
		EntityID: &m.ID,
		Metadata: map[string]any{
			"type":   m.MembershipType,
			"amount": m.Amount,
			"end":    m.EndDate.Format("2006-01-02"),
		},
	})
}
