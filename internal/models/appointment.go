package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TraineeID uint    `gorm:"index;not null" json:"trainee_id"`
	Trainee   Trainee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"trainee"`

	TrainerID uint    `gorm:"index;not null" json:"trainer_id"`
	Trainer   Trainer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"trainer"`

	AppointmentDate time.Time `gorm:"index;not null" json:"appointment_date"`
	Status          string    `gorm:"size:30;not null;default:'Pending'" json:"status"`

	ConsultationFee float64 `gorm:"type:numeric(10,2);not null;default:100" json:"consultation_fee"`
	PaymentStatus   bool    `gorm:"not null;default:false" json:"payment_status"`
	Notes           string  `gorm:"type:text" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
