package models

import "time"

// CarePlan is a diet or workout note written for a trainee.
type CarePlan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Kind string `gorm:"size:10;not null;index:idx_care_plans_trainee_kind,priority:2" json:"kind"`

	TraineeID uint    `gorm:"not null;index:idx_care_plans_trainee_kind,priority:1" json:"trainee_id"`
	Trainee   Trainee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"trainee"`

	TrainerID *uint    `json:"trainer_id"`
	Trainer   *Trainer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"trainer,omitempty"`

	PlanDetails string    `gorm:"type:text;not null" json:"plan_details"`
	CreatedAt   time.Time `json:"created_at"`
}
