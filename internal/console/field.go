package console

// Field identifies one editable leaf of the patient record, including the
// nested address leaves. Using identifiers instead of dotted string paths
// keeps field routing checked at compile time.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldEmail
	FieldPhoneNumber
	FieldHeightCm
	FieldWeightKg
	FieldDateOfBirth
	FieldEthnicity
	FieldTypeOfDiabetes
	FieldDateOfDiagnosis
	FieldBiologicalSex
	FieldAssignedPhysician
	FieldNotes
	FieldAddressCountry
	FieldAddressZipcode
	FieldAddressMailingAddress
	FieldAddressState
	FieldAddressCounty
)

var fieldNames = map[Field]string{
	FieldFirstName:             "firstName",
	FieldLastName:              "lastName",
	FieldEmail:                 "email",
	FieldPhoneNumber:           "phoneNumber",
	FieldHeightCm:              "heightCm",
	FieldWeightKg:              "weightKg",
	FieldDateOfBirth:           "dateOfBirth",
	FieldEthnicity:             "ethnicity",
	FieldTypeOfDiabetes:        "typeOfDiabetes",
	FieldDateOfDiagnosis:       "dateOfDiagnosis",
	FieldBiologicalSex:         "biologicalSex",
	FieldAssignedPhysician:     "assignedPhysician",
	FieldNotes:                 "notes",
	FieldAddressCountry:        "address.country",
	FieldAddressZipcode:        "address.zipcode",
	FieldAddressMailingAddress: "address.mailingAddress",
	FieldAddressState:          "address.state",
	FieldAddressCounty:         "address.county",
}

// String returns the wire name of the field, matching the keys of the
// service's validation error map.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// FieldByName resolves a wire name back to its identifier.
func FieldByName(name string) (Field, bool) {
	for f, n := range fieldNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// Fields lists every editable field in display order.
func Fields() []Field {
	return []Field{
		FieldFirstName, FieldLastName, FieldEmail, FieldPhoneNumber,
		FieldHeightCm, FieldWeightKg, FieldDateOfBirth, FieldEthnicity,
		FieldTypeOfDiabetes, FieldDateOfDiagnosis, FieldBiologicalSex,
		FieldAssignedPhysician, FieldNotes,
		FieldAddressCountry, FieldAddressZipcode, FieldAddressMailingAddress,
		FieldAddressState, FieldAddressCounty,
	}
}

// CaregiverField identifies one editable leaf of a caregiver sub-record.
type CaregiverField int

const (
	CaregiverFirstName CaregiverField = iota
	CaregiverLastName
	CaregiverEmail
	CaregiverPhoneNumber
	CaregiverRelationship
)

var caregiverFieldNames = map[CaregiverField]string{
	CaregiverFirstName:    "firstName",
	CaregiverLastName:     "lastName",
	CaregiverEmail:        "email",
	CaregiverPhoneNumber:  "phoneNumber",
	CaregiverRelationship: "relationshipToPatient",
}

func (f CaregiverField) String() string {
	if name, ok := caregiverFieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// CaregiverFieldByName resolves a wire name back to its identifier.
func CaregiverFieldByName(name string) (CaregiverField, bool) {
	for f, n := range caregiverFieldNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// CaregiverFields lists every editable caregiver field in display order.
func CaregiverFields() []CaregiverField {
	return []CaregiverField{
		CaregiverFirstName, CaregiverLastName, CaregiverEmail,
		CaregiverPhoneNumber, CaregiverRelationship,
	}
}
