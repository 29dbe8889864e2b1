package memory

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/careplan"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type CarePlanRepository struct {
	s *Store
}

func (r *CarePlanRepository) Create(_ context.Context, plan *models.CarePlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	plan.ID = r.s.nextID()
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = r.s.now()
	}
	r.s.plans[plan.ID] = *plan
	return nil
}

func (r *CarePlanRepository) Latest(ctx context.Context, traineeID uint, kind domain.Kind) (*models.CarePlan, error) {
	plans, _ := r.List(ctx, traineeID, kind)
	if len(plans) == 0 {
		return nil, nil
	}
	return &plans[0], nil
}

func (r *CarePlanRepository) List(_ context.Context, traineeID uint, kind domain.Kind) ([]models.CarePlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.CarePlan
	for _, p := range r.s.plans {
		if p.TraineeID == traineeID && p.Kind == string(kind) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

var _ domain.Repository = (*CarePlanRepository)(nil)
