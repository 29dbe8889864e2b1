package models

import "time"

type Trainer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	PhoneNumber    string `gorm:"size:250" json:"phone_number"`
	Specialization string `gorm:"size:250" json:"specialization"`
	Gender         string `gorm:"size:10" json:"gender"`
	DOB            string `gorm:"size:250" json:"dob"`

	// PhotoKey is the object key of the profile picture in the photo store, empty if none.
	PhotoKey string `gorm:"size:255" json:"photo_key"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
