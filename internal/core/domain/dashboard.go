package domain

import (
	"encoding/json"
	"fmt"
)

// DashboardView identifies which of the four role dashboards to render.
type DashboardView string

const (
	ViewPatient   DashboardView = "patient"
	ViewDoctor    DashboardView = "doctor"
	ViewHospital  DashboardView = "hospital"
	ViewInsurance DashboardView = "insurance"
	// ViewNone means "render nothing": the defensive result for a session
	// whose user type is not one of the four known values.
	ViewNone DashboardView = ""
)

// ViewFor maps a user type to its dashboard view. Total: unknown types
// resolve to ViewNone rather than failing.
func ViewFor(t UserType) DashboardView {
	switch t {
	case UserTypePatient:
		return ViewPatient
	case UserTypeDoctor:
		return ViewDoctor
	case UserTypeHospital:
		return ViewHospital
	case UserTypeInsurance:
		return ViewInsurance
	default:
		return ViewNone
	}
}

// DashboardData is the role-shaped payload attached to a session, a closed
// union keyed by UserType. Concrete types mirror the document stored in the
// record store's `data` column.
type DashboardData interface {
	View() DashboardView
}

// DecodeDashboardJSON decodes a raw payload into the concrete type for t.
func DecodeDashboardJSON(t UserType, raw []byte) (DashboardData, error) {
	var (
		data DashboardData
		err  error
	)
	switch t {
	case UserTypePatient:
		v := &PatientData{}
		err = json.Unmarshal(raw, v)
		data = v
	case UserTypeDoctor:
		v := &DoctorData{}
		err = json.Unmarshal(raw, v)
		data = v
	case UserTypeHospital:
		v := &HospitalData{}
		err = json.Unmarshal(raw, v)
		data = v
	case UserTypeInsurance:
		v := &InsuranceData{}
		err = json.Unmarshal(raw, v)
		data = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownUserType, string(t))
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ── Patient ──────────────────────────────────────────────────────────────────

// PatientPersonalInfo is the patient's demographic and coverage summary.
type PatientPersonalInfo struct {
	FullName  string `json:"fullName" bson:"fullName"`
	DOB       string `json:"dob" bson:"dob"`
	Sex       string `json:"sex" bson:"sex"`
	Zip       string `json:"zip" bson:"zip"`
	Insurance string `json:"insurance" bson:"insurance"`
	Policy    string `json:"policy" bson:"policy"`
	Allergies string `json:"allergies" bson:"allergies"`
}

// PatientAppointment is the patient's next scheduled visit.
type PatientAppointment struct {
	Doctor    string `json:"doctor" bson:"doctor"`
	Specialty string `json:"specialty" bson:"specialty"`
	Hospital  string `json:"hospital" bson:"hospital"`
	Date      string `json:"date" bson:"date"`
	Time      string `json:"time" bson:"time"`
	Reason    string `json:"reason" bson:"reason"`
}

// PatientPrescription is one row of the patient's active prescriptions.
type PatientPrescription struct {
	ID          int64  `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Dosage      string `json:"dosage" bson:"dosage"`
	Frequency   string `json:"frequency" bson:"frequency"`
	RenewalDate string `json:"renewalDate" bson:"renewalDate"`
}

type PatientData struct {
	PersonalInfo        PatientPersonalInfo   `json:"personalInfo" bson:"personalInfo"`
	UpcomingAppointment *PatientAppointment   `json:"upcomingAppointment,omitempty" bson:"upcomingAppointment,omitempty"`
	Prescriptions       []PatientPrescription `json:"prescriptions" bson:"prescriptions"`
}

func (*PatientData) View() DashboardView { return ViewPatient }

// ── Doctor ───────────────────────────────────────────────────────────────────

type DoctorPersonalInfo struct {
	Name      string `json:"name" bson:"name"`
	Specialty string `json:"specialty" bson:"specialty"`
	Hospital  string `json:"hospital" bson:"hospital"`
	License   string `json:"license" bson:"license"`
}

// DoctorAppointment is one entry in the doctor's day sheet. Risk is one of
// "High", "Moderate", "Low".
type DoctorAppointment struct {
	ID      int64  `json:"id" bson:"id"`
	Time    string `json:"time" bson:"time"`
	Patient string `json:"patient" bson:"patient"`
	Reason  string `json:"reason" bson:"reason"`
	Risk    string `json:"risk" bson:"risk"`
}

type DoctorData struct {
	PersonalInfo       DoctorPersonalInfo  `json:"personalInfo" bson:"personalInfo"`
	TodaysAppointments []DoctorAppointment `json:"todaysAppointments" bson:"todaysAppointments"`
	// TimeSlots is the ordered list of bookable slots, e.g. "8:00 AM".
	// Schedule blocks are validated against this ordering.
	TimeSlots []string `json:"timeSlots" bson:"timeSlots"`
}

func (*DoctorData) View() DashboardView { return ViewDoctor }

// ── Hospital ─────────────────────────────────────────────────────────────────

type HospitalOverview struct {
	TotalPatients        int            `json:"totalPatients" bson:"totalPatients"`
	TotalDoctors         int            `json:"totalDoctors" bson:"totalDoctors"`
	TodayAppointments    int            `json:"todayAppointments" bson:"todayAppointments"`
	PrescriptionsToRenew int            `json:"prescriptionsToRenew" bson:"prescriptionsToRenew"`
	TriageCallsWeek      int            `json:"triageCallsWeek" bson:"triageCallsWeek"`
	TopSymptoms          []SymptomShare `json:"topSymptoms" bson:"topSymptoms"`
}

type HospitalPatient struct {
	ID                int64  `json:"id" bson:"id"`
	PatientID         string `json:"patientId" bson:"patientId"`
	Name              string `json:"name" bson:"name"`
	DOB               string `json:"dob" bson:"dob"`
	InsuranceProvider string `json:"insuranceProvider" bson:"insuranceProvider"`
	LastVisit         string `json:"lastVisit" bson:"lastVisit"`
}

type HospitalAppointment struct {
	ID      int64  `json:"id" bson:"id"`
	Patient string `json:"patient" bson:"patient"`
	Doctor  string `json:"doctor" bson:"doctor"`
	Date    string `json:"date" bson:"date"`
	Time    string `json:"time" bson:"time"`
	Reason  string `json:"reason" bson:"reason"`
}

type HospitalPrescription struct {
	ID         int64  `json:"id" bson:"id"`
	Patient    string `json:"patient" bson:"patient"`
	Medication string `json:"medication" bson:"medication"`
	Dosage     string `json:"dosage" bson:"dosage"`
	Duration   string `json:"duration" bson:"duration"`
	IssueDate  string `json:"issueDate" bson:"issueDate"`
	RefillDate string `json:"refillDate" bson:"refillDate"`
}

type HospitalDoctor struct {
	ID             int64  `json:"id" bson:"id"`
	Name           string `json:"name" bson:"name"`
	Specialty      string `json:"specialty" bson:"specialty"`
	MedicalLicense string `json:"medicalLicense" bson:"medicalLicense"`
	Schedule       string `json:"schedule" bson:"schedule"`
}

// ChangeMetric is a delta with direction, e.g. "12% more than last week".
type ChangeMetric struct {
	Percentage  float64 `json:"percentage" bson:"percentage"`
	Description string  `json:"description" bson:"description"`
	IsPositive  bool    `json:"isPositive" bson:"isPositive"`
}

type SatisfactionMetric struct {
	Percentage  float64 `json:"percentage" bson:"percentage"`
	Description string  `json:"description" bson:"description"`
}

type DoctorPerformance struct {
	ID                  int64        `json:"id" bson:"id"`
	Doctor              string       `json:"doctor" bson:"doctor"`
	AppointmentsPerWeek int          `json:"appointmentsPerWeek" bson:"appointmentsPerWeek"`
	Change              ChangeMetric `json:"change" bson:"change"`
}

type HospitalPerformance struct {
	PatientSatisfaction    SatisfactionMetric  `json:"patientSatisfaction" bson:"patientSatisfaction"`
	AppointmentImprovement ChangeMetric        `json:"appointmentImprovement" bson:"appointmentImprovement"`
	DoctorPerformance      []DoctorPerformance `json:"doctorPerformance" bson:"doctorPerformance"`
}

type SymptomShare struct {
	Symptom    string  `json:"symptom" bson:"symptom"`
	Percentage float64 `json:"percentage" bson:"percentage"`
}

type RiskShare struct {
	Risk       string  `json:"risk" bson:"risk"`
	Percentage float64 `json:"percentage" bson:"percentage"`
}

type AgeGroup struct {
	Range      string  `json:"range" bson:"range"`
	Count      int     `json:"count" bson:"count"`
	Percentage float64 `json:"percentage" bson:"percentage"`
}

type SexShare struct {
	Sex        string  `json:"sex" bson:"sex"`
	Count      int     `json:"count" bson:"count"`
	Percentage float64 `json:"percentage" bson:"percentage"`
}

type DurationShare struct {
	Duration   string  `json:"duration" bson:"duration"`
	Count      int     `json:"count" bson:"count"`
	Percentage float64 `json:"percentage" bson:"percentage"`
}

type SymptomTrendPoint struct {
	Month string `json:"month" bson:"month"`
	Count int    `json:"count" bson:"count"`
}

type HospitalHealthTrends struct {
	TopSymptoms         []SymptomShare      `json:"topSymptoms" bson:"topSymptoms"`
	AgeGroups           []AgeGroup          `json:"ageGroups" bson:"ageGroups"`
	SexComposition      []SexShare          `json:"sexComposition" bson:"sexComposition"`
	RiskDistribution    []RiskShare         `json:"riskDistribution" bson:"riskDistribution"`
	DurationComposition []DurationShare     `json:"durationComposition" bson:"durationComposition"`
	SymptomsOverTime    []SymptomTrendPoint `json:"symptomsOverTime" bson:"symptomsOverTime"`
}

type HospitalData struct {
	Overview      HospitalOverview       `json:"overviewData" bson:"overviewData"`
	Patients      []HospitalPatient      `json:"patientsData" bson:"patientsData"`
	Appointments  []HospitalAppointment  `json:"appointmentsData" bson:"appointmentsData"`
	Prescriptions []HospitalPrescription `json:"prescriptionsData" bson:"prescriptionsData"`
	Doctors       []HospitalDoctor       `json:"doctorsData" bson:"doctorsData"`
	Performance   HospitalPerformance    `json:"performanceData" bson:"performanceData"`
	HealthTrends  HospitalHealthTrends   `json:"healthTrendsData" bson:"healthTrendsData"`
}

func (*HospitalData) View() DashboardView { return ViewHospital }

// ── Insurance ────────────────────────────────────────────────────────────────

type InsuranceMember struct {
	ID              int64  `json:"id" bson:"id"`
	Name            string `json:"name" bson:"name"`
	PolicyNumber    string `json:"policyNumber" bson:"policyNumber"`
	PlanType        string `json:"planType" bson:"planType"`
	LastInteraction string `json:"lastInteraction" bson:"lastInteraction"`
}

type HospitalUsage struct {
	ID              int64   `json:"id" bson:"id"`
	Hospital        string  `json:"hospital" bson:"hospital"`
	Location        string  `json:"location" bson:"location"`
	TotalVisits     int     `json:"totalVisits" bson:"totalVisits"`
	AvgCostPerVisit float64 `json:"avgCostPerVisit" bson:"avgCostPerVisit"`
	MostCommon      string  `json:"mostCommon" bson:"mostCommon"`
}

type LocationShare struct {
	State   string  `json:"state" bson:"state"`
	Members int     `json:"members" bson:"members"`
	Density float64 `json:"density" bson:"density"`
}

type InsuranceTypeShare struct {
	Type       string  `json:"type" bson:"type"`
	Percentage float64 `json:"percentage" bson:"percentage"`
}

type InsuranceDemographics struct {
	TotalActiveMembers    int                  `json:"totalActiveMembers" bson:"totalActiveMembers"`
	TotalHospitalsCovered int                  `json:"totalHospitalsCovered" bson:"totalHospitalsCovered"`
	AgeGroups             []AgeGroup           `json:"ageGroups" bson:"ageGroups"`
	SexComposition        []SexShare           `json:"sexComposition" bson:"sexComposition"`
	LocationData          []LocationShare      `json:"locationData" bson:"locationData"`
	InsuranceTypes        []InsuranceTypeShare `json:"insuranceTypes" bson:"insuranceTypes"`
	TopSymptoms           []SymptomShare       `json:"topSymptoms" bson:"topSymptoms"`
}

type InsuranceData struct {
	ActiveMembers []InsuranceMember     `json:"activeMembers" bson:"activeMembers"`
	HospitalUsage []HospitalUsage       `json:"hospitalUsage" bson:"hospitalUsage"`
	Demographics  InsuranceDemographics `json:"demographicsData" bson:"demographicsData"`
}

func (*InsuranceData) View() DashboardView { return ViewInsurance }
