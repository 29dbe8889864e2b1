package models

import "time"

type Membership struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TraineeID uint    `gorm:"index;not null" json:"trainee_id"`
	Trainee   Trainee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"trainee"`

	MembershipType string    `gorm:"size:20;not null" json:"membership_type"`
	StartDate      time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate        time.Time `gorm:"type:date;not null" json:"end_date"`
	IsActive       bool      `gorm:"not null" json:"is_active"`

	TrainerID *uint    `json:"trainer_id"`
	Trainer   *Trainer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"trainer,omitempty"`

	// AppointmentID links the first session booked when the trainee picked a trainer.
	AppointmentID *uint        `json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment,omitempty"`

	Amount      float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	BillingDate time.Time `gorm:"autoCreateTime" json:"billing_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
