package domain

import (
	"regexp"
	"strings"
)

// Per-type credential field lengths.
const (
	patientPhoneDigits = 10
	patientCodeDigits  = 4
	doctorUsernameMin  = 3
	passwordMin        = 6
)

// emailPattern is the address shape accepted for hospital and insurance
// sign-in: non-empty local part, "@", non-empty domain with a dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SanitizeField1 normalizes raw input for the first credential field as it is
// typed. Patient phone numbers are digit-filtered and capped at ten digits;
// all other types pass through unchanged.
func SanitizeField1(t UserType, raw string) string {
	if t == UserTypePatient {
		return capDigits(raw, patientPhoneDigits)
	}
	return raw
}

// SanitizeField2 normalizes raw input for the second credential field.
// Patient codes are digit-filtered and capped at four digits; all other types
// pass through unchanged.
func SanitizeField2(t UserType, raw string) string {
	if t == UserTypePatient {
		return capDigits(raw, patientCodeDigits)
	}
	return raw
}

// ValidCredentials reports whether the sanitized pair is well formed for t.
// It is a pure function of its arguments: the submit gate re-derives it on
// every change of type or field.
//
//	Patient:            field1 exactly 10 digits, field2 exactly 4 digits
//	Doctor:             field1 ≥ 3 chars, field2 ≥ 6 chars
//	Hospital/Insurance: field1 email-shaped, field2 ≥ 6 chars
//
// Unknown types are never valid.
func ValidCredentials(t UserType, field1, field2 string) bool {
	if strings.TrimSpace(field1) == "" || strings.TrimSpace(field2) == "" {
		return false
	}

	switch t {
	case UserTypePatient:
		return len(field1) == patientPhoneDigits && allDigits(field1) &&
			len(field2) == patientCodeDigits && allDigits(field2)
	case UserTypeDoctor:
		return len(field1) >= doctorUsernameMin && len(field2) >= passwordMin
	case UserTypeHospital, UserTypeInsurance:
		return emailPattern.MatchString(field1) && len(field2) >= passwordMin
	default:
		return false
	}
}

// capDigits strips every non-digit rune and truncates the result to max.
func capDigits(raw string, max int) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
