package handler

import (
	"github.com/medicall/telehealth-api/internal/core/domain"
	"github.com/medicall/telehealth-api/internal/core/service"
)

// presentDashboard applies display formatting to the rendered payload. Only
// the patient view carries dates shown long-form; other views pass through.
// Works on copies so the session payload stays as stored.
func presentDashboard(data domain.DashboardData) domain.DashboardData {
	p, ok := data.(*domain.PatientData)
	if !ok {
		return data
	}

	out := *p
	out.PersonalInfo.DOB = service.FormatLongDate(p.PersonalInfo.DOB)
	if p.UpcomingAppointment != nil {
		appt := *p.UpcomingAppointment
		appt.Date = service.FormatLongDate(appt.Date)
		out.UpcomingAppointment = &appt
	}
	if len(p.Prescriptions) > 0 {
		out.Prescriptions = make([]domain.PatientPrescription, len(p.Prescriptions))
		copy(out.Prescriptions, p.Prescriptions)
		for i := range out.Prescriptions {
			out.Prescriptions[i].RenewalDate = service.FormatLongDate(out.Prescriptions[i].RenewalDate)
		}
	}
	return &out
}
