package membership

import (
	"context"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/membership"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

// CheckoutSummary is what the payment page shows before the purchase.
type CheckoutSummary struct {
	Offer domain.CheckoutOffer
	Quote domain.Quote
}

// Checkout sells the fixed one-month packages. Payment is simulated: confirming the
// form is treated as a successful charge.
type Checkout struct {
	repo  domain.Repository
	audit audit.Sink
	clock timezone.Clock
}

func NewCheckout(
	repo domain.Repository,
	audit audit.Sink,
	clock timezone.Clock,
) *Checkout {
	return &Checkout{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// ParsePlan maps an unknown plan key to not found, as it comes from the URL path.
func ParsePlan(raw string) (domain.PlanType, error) {
	plan, err := domain.ParsePlanType(raw)
	if err != nil {
		return "", httperr.ErrNotFound
	}
	return plan, nil
}

func (uc *Checkout) Quote(rawPlan string) (*CheckoutSummary, error) {
	plan, err := ParsePlan(rawPlan)
	if err != nil {
		return nil, err
	}

	return &CheckoutSummary{
		Offer: plan.CheckoutOffer(),
		Quote: domain.QuoteCheckout(plan, timezone.Today(uc.clock.Now())),
	}, nil
}

func (uc *Checkout) Execute(
	ctx context.Context,
	actorID uint,
	traineeID uint,
	rawPlan string,
) (*models.Membership, error) {

	summary, err := uc.Quote(rawPlan)
	if err != nil {
		return nil, err
	}

	m := domain.New(traineeID, summary.Quote)
	if err := uc.repo.Activate(ctx, m); err != nil {
		return nil, err
	}

	dispatchActivated(uc.audit, actorID, m, "membership_purchased")
	return m, nil
}

type GetForUser struct {
	repo domain.Repository
}

func NewGetForUser(repo domain.Repository) *GetForUser {
	return &GetForUser{repo: repo}
}

func (uc *GetForUser) Execute(ctx context.Context, membershipID, userID uint) (*models.Membership, error) {
	return uc.repo.GetForUser(ctx, membershipID, userID)
}
