package handler

import "github.com/medicall/telehealth-api/internal/core/domain"

// dashboardQuery binds the per-section search boxes. Terms that do not apply
// to the session's view are ignored.
type dashboardQuery struct {
	Patients      string `query:"patients"`
	Doctors       string `query:"doctors"`
	Appointments  string `query:"appointments"`
	Prescriptions string `query:"prescriptions"`
	Performance   string `query:"performance"`
	Members       string `query:"members"`
	Hospitals     string `query:"hospitals"`
}

type dashboardResponse struct {
	View string `json:"view"`
	// Fallback marks a render served from the bundled sample dataset.
	Fallback bool `json:"fallback,omitempty"`
	// Data is the role-shaped payload; omitted when the view renders nothing.
	Data domain.DashboardData `json:"data,omitempty"`
}
