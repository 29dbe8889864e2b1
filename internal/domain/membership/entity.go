package membership

import "github.com/BruksfildServices01/gym-scheduler/internal/models"

func New(traineeID uint, q Quote) *models.Membership {
	return &models.Membership{
		TraineeID:      traineeID,
		MembershipType: string(q.Plan),
		StartDate:      q.StartDate,
		EndDate:        q.EndDate,
		IsActive:       true,
		Amount:         q.Amount,
	}
}
