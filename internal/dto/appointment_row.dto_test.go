package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

func TestAppointmentRowsMarksOnlyUpcomingOpenOnesCancellable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	rows := AppointmentRows([]models.Appointment{
		{ID: 1, Status: "Pending", AppointmentDate: now.Add(time.Hour)},
		{ID: 2, Status: "Cancelled", AppointmentDate: now.Add(time.Hour)},
		{ID: 3, Status: "Confirmed", AppointmentDate: now.Add(-time.Hour)},
	}, now)

	require.Len(t, rows, 3)
	require.True(t, rows[0].Cancellable)
	require.False(t, rows[1].Cancellable)
	require.False(t, rows[2].Cancellable)
}
