package models

import "time"

type Trainee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	PhoneNumber      string `gorm:"size:250" json:"phone_number"`
	DOB              string `gorm:"size:250" json:"dob"`
	Gender           string `gorm:"size:10" json:"gender"`
	HealthConditions bool   `gorm:"not null;default:false" json:"health_conditions"`
	HealthDetails    string `gorm:"type:text" json:"health_details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
