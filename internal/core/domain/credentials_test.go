package domain

import "testing"

func TestSanitizeField1_Patient(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(555) 123-4567", "5551234567"},
		{"555123456789", "5551234567"}, // capped at ten digits
		{"abc", ""},
		{"", ""},
		{"555 123", "555123"},
	}
	for _, tc := range cases {
		if got := SanitizeField1(UserTypePatient, tc.in); got != tc.want {
			t.Errorf("SanitizeField1(Patient, %q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeField2_Patient(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12-34", "1234"},
		{"123456", "1234"}, // capped at four digits
		{"x9y8", "98"},
	}
	for _, tc := range cases {
		if got := SanitizeField2(UserTypePatient, tc.in); got != tc.want {
			t.Errorf("SanitizeField2(Patient, %q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitize_OtherTypesPassThrough(t *testing.T) {
	for _, userType := range []UserType{UserTypeDoctor, UserTypeHospital, UserTypeInsurance} {
		if got := SanitizeField1(userType, " raw (value) "); got != " raw (value) " {
			t.Errorf("SanitizeField1(%s) altered input: %q", userType, got)
		}
		if got := SanitizeField2(userType, "p@ss w0rd!"); got != "p@ss w0rd!" {
			t.Errorf("SanitizeField2(%s) altered input: %q", userType, got)
		}
	}
}

func TestValidCredentials(t *testing.T) {
	cases := []struct {
		name     string
		userType UserType
		field1   string
		field2   string
		want     bool
	}{
		{"patient ok", UserTypePatient, "5551234567", "1234", true},
		{"patient short phone", UserTypePatient, "555123456", "1234", false},
		{"patient long phone", UserTypePatient, "55512345678", "1234", false},
		{"patient short code", UserTypePatient, "5551234567", "123", false},
		{"patient letters in phone", UserTypePatient, "555123456a", "1234", false},
		{"doctor ok", UserTypeDoctor, "drh", "secret", true},
		{"doctor short username", UserTypeDoctor, "dr", "secret", false},
		{"doctor short password", UserTypeDoctor, "drhouse", "12345", false},
		{"hospital ok", UserTypeHospital, "admin@stmarys.org", "secret", true},
		{"hospital bad email", UserTypeHospital, "admin.stmarys.org", "secret", false},
		{"hospital no tld", UserTypeHospital, "admin@stmarys", "secret", false},
		{"hospital email with space", UserTypeHospital, "ad min@stmarys.org", "secret", false},
		{"hospital short password", UserTypeHospital, "admin@stmarys.org", "12345", false},
		{"insurance ok", UserTypeInsurance, "claims@blueshield.com", "secret1", true},
		{"insurance bad email", UserTypeInsurance, "@blueshield.com", "secret1", false},
		{"unknown type", UserType("Admin"), "admin@host.com", "secret", false},
		{"blank field1", UserTypeDoctor, "   ", "secret", false},
		{"blank field2", UserTypeDoctor, "drhouse", "   ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidCredentials(tc.userType, tc.field1, tc.field2); got != tc.want {
				t.Fatalf("ValidCredentials(%s, %q, %q) = %v, want %v",
					tc.userType, tc.field1, tc.field2, got, tc.want)
			}
		})
	}
}
