package domain

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestRoleIndex_Bijection(t *testing.T) {
	types := []UserType{UserTypePatient, UserTypeDoctor, UserTypeHospital, UserTypeInsurance}
	want := []int{0, 1, 2, 3}

	for i, userType := range types {
		idx, err := userType.RoleIndex()
		if err != nil {
			t.Fatalf("RoleIndex(%s) returned error: %v", userType, err)
		}
		if idx != want[i] {
			t.Fatalf("RoleIndex(%s) = %d, want %d", userType, idx, want[i])
		}

		back, err := UserTypeForRole(idx)
		if err != nil {
			t.Fatalf("UserTypeForRole(%d) returned error: %v", idx, err)
		}
		if back != userType {
			t.Fatalf("UserTypeForRole(%d) = %s, want %s", idx, back, userType)
		}
	}
}

func TestRoleIndex_Unknown(t *testing.T) {
	if _, err := UserType("Admin").RoleIndex(); !errors.Is(err, ErrUnknownUserType) {
		t.Fatalf("expected ErrUnknownUserType, got %v", err)
	}
	if _, err := UserTypeForRole(4); !errors.Is(err, ErrUnknownUserType) {
		t.Fatalf("expected ErrUnknownUserType, got %v", err)
	}
}

func TestParseUserType(t *testing.T) {
	got, err := ParseUserType("Doctor")
	if err != nil {
		t.Fatalf("ParseUserType returned error: %v", err)
	}
	if got != UserTypeDoctor {
		t.Fatalf("ParseUserType = %s, want Doctor", got)
	}

	// Case matters: the wire value is the exact label.
	if _, err := ParseUserType("doctor"); !errors.Is(err, ErrUnknownUserType) {
		t.Fatalf("expected ErrUnknownUserType for lowercase, got %v", err)
	}
	if _, err := ParseUserType(""); !errors.Is(err, ErrUnknownUserType) {
		t.Fatalf("expected ErrUnknownUserType for empty, got %v", err)
	}
}

func TestSession_JSONRoundTrip(t *testing.T) {
	original := Session{
		ID:       42,
		Field1:   "5551234567",
		Field2:   "1234",
		Role:     0,
		UserType: UserTypePatient,
		Data: &PatientData{
			PersonalInfo: PatientPersonalInfo{
				FullName:  "Sarah Mitchell",
				DOB:       "1991-03-15",
				Sex:       "Female",
				Zip:       "94110",
				Insurance: "Blue Shield",
				Policy:    "BS-2291834",
				Allergies: "Penicillin",
			},
			UpcomingAppointment: &PatientAppointment{
				Doctor:   "Dr. James Carter",
				Date:     "2025-04-22",
				Time:     "10:30 AM",
				Hospital: "St. Mary's Medical Center",
			},
			Prescriptions: []PatientPrescription{
				{ID: 1, Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", RenewalDate: "2025-05-01"},
			},
		},
	}

	snapshot, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}

	var restored Session
	if err := json.Unmarshal(snapshot, &restored); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if !reflect.DeepEqual(original, restored) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", restored, original)
	}
}

func TestSession_JSONRoundTrip_NoData(t *testing.T) {
	original := Session{ID: 7, Field1: "drhouse", Field2: "vicodin", Role: 1, UserType: UserTypeDoctor}

	snapshot, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}

	var restored Session
	if err := json.Unmarshal(snapshot, &restored); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if restored.Data != nil {
		t.Fatalf("expected nil data, got %+v", restored.Data)
	}
	if !reflect.DeepEqual(original, restored) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", restored, original)
	}
}

func TestSession_Unmarshal_UnknownUserType(t *testing.T) {
	snapshot := []byte(`{"id":1,"field1":"a","field2":"b","role":9,"userType":"Admin"}`)

	var s Session
	err := json.Unmarshal(snapshot, &s)
	if !errors.Is(err, ErrUnknownUserType) {
		t.Fatalf("expected ErrUnknownUserType, got %v", err)
	}
}

func TestSession_Unmarshal_CorruptPayload(t *testing.T) {
	// The payload shape must decode under the session's own user type;
	// a prescriptions list that is not an array rejects the whole snapshot.
	snapshot := []byte(`{"id":1,"field1":"5551234567","field2":"1234","role":0,"userType":"Patient","data":{"prescriptions":"gone"}}`)

	var s Session
	if err := json.Unmarshal(snapshot, &s); err == nil {
		t.Fatalf("expected error for corrupt payload, got nil")
	}
}
