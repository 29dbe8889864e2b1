package dto

import (
	"time"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// AppointmentRow is an appointment as listed to its trainee.
type AppointmentRow struct {
	Appointment models.Appointment
	Cancellable bool
}

func AppointmentRows(list []models.Appointment, now time.Time) []AppointmentRow {
	rows := make([]AppointmentRow, 0, len(list))
	for _, ap := range list {
		rows = append(rows, AppointmentRow{
			Appointment: ap,
			Cancellable: domain.CanTraineeCancel(domain.Status(ap.Status), ap.AppointmentDate, now) == nil,
		})
	}
	return rows
}
