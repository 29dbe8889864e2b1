package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func New(traineeID, trainerID uint, at time.Time, fee float64) *models.Appointment {
	return &models.Appointment{
		TraineeID:       traineeID,
		TrainerID:       trainerID,
		AppointmentDate: at,
		Status:          string(InitialStatus()),
		ConsultationFee: fee,
		PaymentStatus:   false,
	}
}

func CancelByTrainee(ap *models.Appointment, now time.Time) error {
	if err := CanTraineeCancel(Status(ap.Status), ap.AppointmentDate, now); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// ApplyTrainerUpdate sets the status when rawStatus is a known one and moves the
// appointment when rawDateTime is given. A bad date leaves the status change in place
// and is reported back so the caller can still persist it.
func ApplyTrainerUpdate(
	ap *models.Appointment,
	rawStatus string,
	rawDateTime string,
	loc *time.Location,
	now time.Time,
) error {

	if s, err := ParseStatus(rawStatus); err == nil {
		ap.Status = string(s)
		if s == StatusCancelled {
			if ap.CancelledAt == nil {
				ap.CancelledAt = &now
			}
		} else {
			ap.CancelledAt = nil
		}
	}

	if strings.TrimSpace(rawDateTime) == "" {
		return nil
	}

	at, err := ParseDateTime(rawDateTime, loc)
	if err != nil {
		return err
	}
	ap.AppointmentDate = at
	return nil
}

// NewPayment builds the paid billing row for an appointment's consultation fee.
func NewPayment(ap *models.Appointment, now time.Time) *models.Billing {
	return &models.Billing{
		TraineeID:     ap.TraineeID,
		AppointmentID: ap.ID,
		Amount:        ap.ConsultationFee,
		BillingDate:   now,
		IsPaid:        true,
	}
}
