package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicall/telehealth-api/internal/core/domain"
	"github.com/medicall/telehealth-api/internal/core/ports"
)

// DashboardService renders the role view for a session: payload from the
// record store when present, the bundled fallback dataset otherwise, with
// per-section substring filters applied on the way out.
type DashboardService struct {
	fallback map[domain.UserType]domain.DashboardData
	log      zerolog.Logger
}

// NewDashboardService builds a DashboardService. fallback maps each user type
// to its bundled static dataset; a missing entry simply means that view
// renders empty when the session has no payload.
func NewDashboardService(fallback map[domain.UserType]domain.DashboardData, log zerolog.Logger) *DashboardService {
	return &DashboardService{fallback: fallback, log: log}
}

// Render selects the view for session.UserType. Unknown types render nothing
// rather than failing. Filtering never mutates the session payload.
func (s *DashboardService) Render(_ context.Context, session *domain.Session, query ports.DashboardQuery) (*ports.DashboardResult, error) {
	view := domain.ViewFor(session.UserType)
	if view == domain.ViewNone {
		s.log.Warn().Str("user_type", string(session.UserType)).Msg("no dashboard for user type")
		return &ports.DashboardResult{View: domain.ViewNone}, nil
	}

	data := session.Data
	fallback := false
	if data == nil {
		data = s.fallback[session.UserType]
		fallback = true
	}

	switch d := data.(type) {
	case *domain.HospitalData:
		data = filterHospital(d, query)
	case *domain.InsuranceData:
		data = filterInsurance(d, query)
	}

	return &ports.DashboardResult{View: view, Data: data, Fallback: fallback}, nil
}

func filterHospital(d *domain.HospitalData, q ports.DashboardQuery) *domain.HospitalData {
	out := *d
	if q.Patients != "" {
		out.Patients = filter(d.Patients, func(p domain.HospitalPatient) bool {
			return containsFold(p.Name, q.Patients) || containsFold(p.PatientID, q.Patients)
		})
	}
	if q.Doctors != "" {
		out.Doctors = filter(d.Doctors, func(doc domain.HospitalDoctor) bool {
			return containsFold(doc.Name, q.Doctors) || containsFold(doc.MedicalLicense, q.Doctors)
		})
	}
	if q.Appointments != "" {
		out.Appointments = filter(d.Appointments, func(a domain.HospitalAppointment) bool {
			return containsFold(a.Patient, q.Appointments) ||
				containsFold(a.Doctor, q.Appointments) ||
				containsFold(a.Reason, q.Appointments)
		})
	}
	if q.Prescriptions != "" {
		out.Prescriptions = filter(d.Prescriptions, func(p domain.HospitalPrescription) bool {
			return containsFold(p.Patient, q.Prescriptions) || containsFold(p.Medication, q.Prescriptions)
		})
	}
	if q.Performance != "" {
		perf := d.Performance
		perf.DoctorPerformance = filter(d.Performance.DoctorPerformance, func(p domain.DoctorPerformance) bool {
			return containsFold(p.Doctor, q.Performance)
		})
		out.Performance = perf
	}
	return &out
}

func filterInsurance(d *domain.InsuranceData, q ports.DashboardQuery) *domain.InsuranceData {
	out := *d
	if q.Members != "" {
		out.ActiveMembers = filter(d.ActiveMembers, func(m domain.InsuranceMember) bool {
			return containsFold(m.Name, q.Members) || containsFold(m.PolicyNumber, q.Members)
		})
	}
	if q.Hospitals != "" {
		out.HospitalUsage = filter(d.HospitalUsage, func(h domain.HospitalUsage) bool {
			return containsFold(h.Hospital, q.Hospitals)
		})
	}
	return &out
}

// filter returns the elements of in satisfying keep, always in a fresh slice.
func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

// dateLayouts are the formats dashboard dates arrive in.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// FormatLongDate renders a stored date as e.g. "15 March 2025". Values that
// parse under none of the known layouts are returned unchanged, matching how
// the dashboards tolerate free-form dates.
func FormatLongDate(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2 January 2006")
		}
	}
	return value
}
