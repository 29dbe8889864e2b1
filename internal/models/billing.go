package models

import "time"

type Billing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TraineeID uint    `gorm:"index;not null" json:"trainee_id"`
	Trainee   Trainee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"trainee"`

	AppointmentID uint        `gorm:"index;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"appointment"`

	Amount      float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	BillingDate time.Time `gorm:"index;autoCreateTime" json:"billing_date"`
	IsPaid      bool      `gorm:"not null;default:false" json:"is_paid"`
}
