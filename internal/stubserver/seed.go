package stubserver

import "github.com/wlabs/patient-console/internal/patient"

// Seed loads a couple of demo records so a fresh stub has something to
// search for.
func Seed(store *Store) {
	store.Create(patient.Patient{
		FirstName:         "Ann",
		LastName:          "Lee",
		Email:             "ann.lee@example.com",
		PhoneNumber:       "555-010-0100",
		HeightCm:          "170",
		WeightKg:          "65",
		DateOfBirth:       "1990-04-12",
		Ethnicity:         "Asian",
		TypeOfDiabetes:    "Type 1",
		DateOfDiagnosis:   "2015-06-01",
		BiologicalSex:     "Female",
		AssignedPhysician: "Jane Doe",
		MedicalHistory:    patient.HistoryList{"Asthma", "Anxiety"},
		Address: patient.Address{
			Country:        "USA",
			Zipcode:        "92868",
			MailingAddress: "1 Main St",
			State:          "CA",
			County:         "Orange County",
		},
		Caregivers: []patient.Caregiver{{
			FirstName:             "Bob",
			LastName:              "Lee",
			Email:                 "bob.lee@example.com",
			PhoneNumber:           "555-020-0200",
			RelationshipToPatient: "Spouse",
		}},
	})
	store.Create(patient.Patient{
		FirstName:         "Carlos",
		LastName:          "Diaz",
		Email:             "carlos.diaz@example.com",
		PhoneNumber:       "555-030-0300",
		HeightCm:          "182",
		WeightKg:          "88",
		DateOfBirth:       "1978-11-02",
		Ethnicity:         "Hispanic",
		TypeOfDiabetes:    "Type 2",
		DateOfDiagnosis:   "2019-02-20",
		BiologicalSex:     "Male",
		AssignedPhysician: "John Smith",
		MedicalHistory:    patient.HistoryList{"Hypertension"},
		Address: patient.Address{
			Country:        "USA",
			Zipcode:        "90012",
			MailingAddress: "22 Oak Ave",
			State:          "CA",
			County:         "Los Angeles County",
		},
	})
}
