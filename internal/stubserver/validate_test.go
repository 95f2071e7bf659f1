package stubserver

import (
	"testing"
	"time"

	"github.com/wlabs/patient-console/internal/patient"
)

var validationNow = time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

func validPatient() patient.Patient {
	return patient.Patient{
		FirstName:         "Ann",
		LastName:          "Lee",
		Email:             "ann@example.com",
		PhoneNumber:       "(714) 555-0100",
		HeightCm:          "170",
		WeightKg:          "65",
		DateOfBirth:       "1990-04-12",
		Ethnicity:         "Asian",
		TypeOfDiabetes:    "Type 1",
		DateOfDiagnosis:   "2015-06-01",
		BiologicalSex:     "Female",
		AssignedPhysician: "Jane Doe",
		MedicalHistory:    patient.HistoryList{"Asthma"},
		Address: patient.Address{
			Country:        "USA",
			Zipcode:        "92868",
			MailingAddress: "1 Main St",
			State:          "CA",
			County:         "Orange County",
		},
	}
}

func TestValidatePatient_ValidRecordPasses(t *testing.T) {
	if errs := validatePatient(validPatient(), validationNow); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidatePatient_FieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*patient.Patient)
		field   string
		message string
	}{
		{"missing first name", func(p *patient.Patient) { p.FirstName = "" }, "firstName", "First name is required."},
		{"missing email", func(p *patient.Patient) { p.Email = "" }, "email", "Email is required."},
		{"bad email", func(p *patient.Patient) { p.Email = "not-an-email" }, "email", "Email should be a valid format."},
		{"bad phone", func(p *patient.Patient) { p.PhoneNumber = "12345" }, "phoneNumber", "Invalid phone number format."},
		{"missing height", func(p *patient.Patient) { p.HeightCm = "" }, "heightCm", "Height is required."},
		{"negative height", func(p *patient.Patient) { p.HeightCm = "-3" }, "heightCm", "Height must be positive."},
		{"zero weight", func(p *patient.Patient) { p.WeightKg = "0" }, "weightKg", "Weight must be positive."},
		{"missing dob", func(p *patient.Patient) { p.DateOfBirth = "" }, "dateOfBirth", "Date of birth is required."},
		{"future dob", func(p *patient.Patient) { p.DateOfBirth = "2030-01-01" }, "dateOfBirth", "Date of birth must be in the past."},
		{"future diagnosis", func(p *patient.Patient) { p.DateOfDiagnosis = "2030-01-01" }, "dateOfDiagnosis", "Date of diagnosis cannot be in the future."},
		{"missing ethnicity", func(p *patient.Patient) { p.Ethnicity = "" }, "ethnicity", "Ethnicity is required."},
		{"missing physician", func(p *patient.Patient) { p.AssignedPhysician = "" }, "assignedPhysician", "Assigned physician is required."},
		{"empty history", func(p *patient.Patient) { p.MedicalHistory = nil }, "medicalHistory", "Medical History cannot be blank."},
		{"missing zipcode", func(p *patient.Patient) { p.Address.Zipcode = "" }, "address.zipcode", "Zipcode is required."},
		{"missing mailing address", func(p *patient.Patient) { p.Address.MailingAddress = "" }, "address.mailingAddress", "Mailing address is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPatient()
			tt.mutate(&p)
			errs := validatePatient(p, validationNow)
			if errs[tt.field] != tt.message {
				t.Errorf("expected %q, got %q (all: %v)", tt.message, errs[tt.field], errs)
			}
		})
	}
}

func TestValidatePatient_PhoneFormats(t *testing.T) {
	valid := []string{"(714) 555-0100", "714-555-0100", "714.555.0100", "714 555 0100", "7145550100"}
	for _, phone := range valid {
		p := validPatient()
		p.PhoneNumber = phone
		if errs := validatePatient(p, validationNow); errs["phoneNumber"] != "" {
			t.Errorf("expected %q to be accepted: %v", phone, errs["phoneNumber"])
		}
	}
}

func TestValidatePatient_CaregiverFields(t *testing.T) {
	p := validPatient()
	p.Caregivers = []patient.Caregiver{{
		FirstName:   "Bob",
		Email:       "bad",
		PhoneNumber: "555-020-0200",
	}}
	errs := validatePatient(p, validationNow)
	if errs["caregivers.lastName"] != "Last name is required." {
		t.Errorf("unexpected caregiver lastName error: %q", errs["caregivers.lastName"])
	}
	if errs["caregivers.email"] != "Email should be valid." {
		t.Errorf("unexpected caregiver email error: %q", errs["caregivers.email"])
	}
	if errs["caregivers.relationshipToPatient"] != "Relationship to patient is required." {
		t.Errorf("unexpected caregiver relationship error: %q", errs["caregivers.relationshipToPatient"])
	}
}
