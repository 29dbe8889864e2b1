package appointment

import (
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending     Status = "Pending"
	StatusConfirmed   Status = "Confirmed"
	StatusRescheduled Status = "Rescheduled"
	StatusCancelled   Status = "Cancelled"
	StatusCompleted   Status = "Completed"
)

// Statuses lists every status in the order the trainer form offers them.
var Statuses = []Status{
	StatusCancelled,
	StatusPending,
	StatusRescheduled,
	StatusConfirmed,
	StatusCompleted,
}

var ErrInvalidStatus = httperr.ErrBusiness("invalid_status")

func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusPending, StatusConfirmed, StatusRescheduled, StatusCancelled, StatusCompleted:
		return s, nil
	}
	return "", ErrInvalidStatus
}

// InitialStatus is the status every new booking starts in.
func InitialStatus() Status {
	return StatusPending
}

// HoldsSlot reports whether an appointment in this status occupies its trainer's slot.
func (s Status) HoldsSlot() bool {
	switch s {
	case StatusCancelled:
		return false
	case StatusPending, StatusConfirmed, StatusRescheduled, StatusCompleted:
		return true
	}
	// unknown values keep the slot
	return true
}

// ===============================
// Validations
// ===============================

var (
	ErrCannotCancel = httperr.ErrBusiness("cannot_cancel")
	ErrAlreadyPaid  = httperr.ErrBusiness("already_paid")
)

// CanTraineeCancel allows cancelling only upcoming, not already cancelled appointments.
func CanTraineeCancel(current Status, at, now time.Time) error {
	if current == StatusCancelled {
		return ErrCannotCancel
	}
	if at.Before(now) {
		return ErrCannotCancel
	}
	return nil
}
