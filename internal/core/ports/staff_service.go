package ports

import (
	"context"

	"github.com/medicall/telehealth-api/internal/core/domain"
)

// RegisterDoctorInput mirrors the hospital settings form.
type RegisterDoctorInput struct {
	FullName  string
	Specialty string
	License   string
	Username  string
	Password  string
	// Hospital is stamped from the registering hospital's session.
	Hospital string
}

// BlockScheduleInput describes a slot range a doctor wants to mark
// unavailable. When FullDay is set, From and To are ignored and the whole
// slot list is blocked.
type BlockScheduleInput struct {
	Date    string
	FullDay bool
	From    string
	To      string
}

// ScheduleBlock is the recorded block.
type ScheduleBlock struct {
	ID      string
	Date    string
	From    string
	To      string
	FullDay bool
}

// StaffService covers the staff-management operations exposed to hospitals
// and doctors.
type StaffService interface {
	// RegisterDoctor creates a doctor account whose credentials satisfy the
	// doctor gate rules. The new record starts with an empty day sheet and the
	// default slot list.
	RegisterDoctor(ctx context.Context, in RegisterDoctorInput) (*UserRecord, error)

	// BlockSchedule validates the block against the doctor's slot ordering:
	// From must precede To unless FullDay is set, and both must be known slots.
	BlockSchedule(ctx context.Context, session *domain.Session, in BlockScheduleInput) (*ScheduleBlock, error)
}
