package ports

import (
	"context"

	"github.com/medicall/telehealth-api/internal/core/domain"
)

// DashboardQuery carries the per-section search terms. Each dashboard applies
// only the terms that exist on its view; the rest are ignored. Matching is
// case-insensitive substring.
type DashboardQuery struct {
	Patients      string // hospital: name or patient id
	Doctors       string // hospital: name or medical license
	Appointments  string // hospital: patient, doctor or reason
	Prescriptions string // hospital: patient or medication
	Performance   string // hospital: doctor name
	Members       string // insurance: name or policy number
	Hospitals     string // insurance: hospital name
}

// DashboardResult is the rendered role view.
type DashboardResult struct {
	View domain.DashboardView
	// Data is nil when View is ViewNone ("render nothing").
	Data domain.DashboardData
	// Fallback is true when the bundled sample dataset was served because the
	// session record carried no payload.
	Fallback bool
}

// DashboardService selects and filters the role dashboard for a session.
type DashboardService interface {
	Render(ctx context.Context, session *domain.Session, query DashboardQuery) (*DashboardResult, error)
}
