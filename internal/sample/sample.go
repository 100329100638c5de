// Package sample bundles the static per-role dashboard datasets served when a
// user record carries no payload of its own.
package sample

import (
	"embed"
	"fmt"

	"github.com/medicall/telehealth-api/internal/core/domain"
)

//go:embed patient.json doctor.json hospital.json insurance.json
var files embed.FS

var datasets = map[domain.UserType]string{
	domain.UserTypePatient:   "patient.json",
	domain.UserTypeDoctor:    "doctor.json",
	domain.UserTypeHospital:  "hospital.json",
	domain.UserTypeInsurance: "insurance.json",
}

// Datasets decodes every bundled dataset into its role-shaped payload type.
func Datasets() (map[domain.UserType]domain.DashboardData, error) {
	out := make(map[domain.UserType]domain.DashboardData, len(datasets))
	for userType, name := range datasets {
		raw, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", name, err)
		}
		data, err := domain.DecodeDashboardJSON(userType, raw)
		if err != nil {
			return nil, fmt.Errorf("decode dataset %s: %w", name, err)
		}
		out[userType] = data
	}
	return out, nil
}
