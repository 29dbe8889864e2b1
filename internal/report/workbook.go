// Package report renders the admin summary as an Excel workbook.
package report

import (
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/BruksfildServices01/gym-scheduler/internal/usecase/admin"
)

const (
	SummarySheet      = "Summary"
	AppointmentsSheet = "Recent appointments"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// appointmentHeaders fill row 1 of the appointments sheet from column A.
var appointmentHeaders = []string{"Date", "Trainee", "Trainer", "Status", "Fee", "Paid"}

func SummaryWorkbook(s *admin.Summary) *excelize.File {
	file := excelize.NewFile()
	file.NewSheet(SummarySheet)
	file.NewSheet(AppointmentsSheet)
	file.DeleteSheet("Sheet1")

	rows := [][2]any{
		{"Generated at", s.GeneratedAt.Format("2006-01-02 15:04")},
		{"Trainees", s.Trainees},
		{"Trainers", s.Trainers},
		{"Active memberships", s.ActiveMemberships},
		{"Pending appointments", s.PendingAppointments},
		{"Revenue " + s.MonthStart.Format("January 2006"), s.MonthlyRevenue},
	}
	for i, r := range rows {
		file.SetCellValue(SummarySheet, fmt.Sprintf("A%d", i+1), r[0])
		file.SetCellValue(SummarySheet, fmt.Sprintf("B%d", i+1), r[1])
	}

	for i, h := range appointmentHeaders {
		file.SetCellValue(AppointmentsSheet, fmt.Sprintf("%c1", 'A'+i), h)
	}

	for i, ap := range s.RecentAppointments {
		row := i + 2
		file.SetCellValue(AppointmentsSheet, fmt.Sprintf("A%d", row), ap.AppointmentDate.Format("2006-01-02 15:04"))
		file.SetCellValue(AppointmentsSheet, fmt.Sprintf("B%d", row), ap.Trainee.User.DisplayName())
		file.SetCellValue(AppointmentsSheet, fmt.Sprintf("C%d", row), ap.Trainer.User.DisplayName())
		file.SetCellValue(AppointmentsSheet, fmt.Sprintf("D%d", row), ap.Status)
		file.SetCellValue(AppointmentsSheet, fmt.Sprintf("E%d", row), ap.ConsultationFee)
		file.SetCellValue(AppointmentsSheet, fmt.Sprintf("F%d", row), ap.PaymentStatus)
	}

	file.SetActiveSheet(file.GetSheetIndex(SummarySheet))
	return file
}

func WriteSummary(w io.Writer, s *admin.Summary) error {
	return SummaryWorkbook(s).Write(w)
}
