package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medicall/telehealth-api/internal/core/domain"
	"github.com/medicall/telehealth-api/internal/core/ports"
)

// defaultTimeSlots is the slot grid assigned to newly registered doctors.
var defaultTimeSlots = []string{
	"8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// StaffService implements the staff-management operations: hospitals
// provisioning doctor accounts and doctors blocking out schedule slots.
type StaffService struct {
	repo ports.AuthRepository
	log  zerolog.Logger
}

func NewStaffService(repo ports.AuthRepository, log zerolog.Logger) *StaffService {
	return &StaffService{repo: repo, log: log}
}

// RegisterDoctor creates a doctor user record. The credentials must satisfy
// the same gate rules the doctor will later sign in under, and the profile
// fields must be non-blank. Duplicates surface as ErrDoctorExists.
func (s *StaffService) RegisterDoctor(ctx context.Context, in ports.RegisterDoctorInput) (*ports.UserRecord, error) {
	if strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.Specialty) == "" ||
		strings.TrimSpace(in.License) == "" {
		return nil, domain.ErrValidation
	}
	if !domain.ValidCredentials(domain.UserTypeDoctor, in.Username, in.Password) {
		return nil, domain.ErrValidation
	}

	role, err := domain.UserTypeDoctor.RoleIndex()
	if err != nil {
		return nil, err
	}

	data := &domain.DoctorData{
		PersonalInfo: domain.DoctorPersonalInfo{
			Name:      in.FullName,
			Specialty: in.Specialty,
			Hospital:  in.Hospital,
			License:   in.License,
		},
		TodaysAppointments: []domain.DoctorAppointment{},
		TimeSlots:          append([]string(nil), defaultTimeSlots...),
	}

	rec, err := s.repo.CreateUser(ctx, in.Username, in.Password, role, data)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("user_id", rec.ID).
		Str("license", in.License).
		Msg("doctor account registered")

	return rec, nil
}

// BlockSchedule validates a block request against the doctor's slot grid.
// From must come strictly before To unless FullDay is set; unknown slots are
// rejected. Only doctors may block their own schedule.
func (s *StaffService) BlockSchedule(_ context.Context, session *domain.Session, in ports.BlockScheduleInput) (*ports.ScheduleBlock, error) {
	if session.UserType != domain.UserTypeDoctor {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Date) == "" {
		return nil, domain.ErrValidation
	}

	slots := defaultTimeSlots
	if data, ok := session.Data.(*domain.DoctorData); ok && len(data.TimeSlots) > 0 {
		slots = data.TimeSlots
	}

	from, to := in.From, in.To
	if in.FullDay {
		from, to = slots[0], slots[len(slots)-1]
	} else {
		fromIdx := slotIndex(slots, from)
		toIdx := slotIndex(slots, to)
		if fromIdx < 0 || toIdx < 0 || fromIdx >= toIdx {
			return nil, domain.ErrValidation
		}
	}

	block := &ports.ScheduleBlock{
		ID:      uuid.NewString(),
		Date:    in.Date,
		From:    from,
		To:      to,
		FullDay: in.FullDay,
	}

	s.log.Info().
		Int64("user_id", session.ID).
		Str("block_id", block.ID).
		Str("date", block.Date).
		Bool("full_day", block.FullDay).
		Msg("schedule blocked")

	return block, nil
}

func slotIndex(slots []string, slot string) int {
	for i, s := range slots {
		if s == slot {
			return i
		}
	}
	return -1
}
