package stubserver

import (
	"regexp"
	"time"

	"github.com/wlabs/patient-console/internal/patient"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\(?(\d{3})\)?[-.\s]?(\d{3})[-.\s]?(\d{4})$`)
)

const dateLayout = "2006-01-02"

// validatePatient applies the service's field constraints. A non-empty
// result becomes the JSON field→message map of a 400 response; messages
// match the production service verbatim.
func validatePatient(p patient.Patient, now time.Time) map[string]string {
	errs := map[string]string{}

	if p.FirstName == "" {
		errs["firstName"] = "First name is required."
	}
	if p.LastName == "" {
		errs["lastName"] = "Last name is required."
	}
	switch {
	case p.Email == "":
		errs["email"] = "Email is required."
	case !emailPattern.MatchString(p.Email):
		errs["email"] = "Email should be a valid format."
	}
	switch {
	case p.PhoneNumber == "":
		errs["phoneNumber"] = "Phone number is required."
	case !phonePattern.MatchString(p.PhoneNumber):
		errs["phoneNumber"] = "Invalid phone number format."
	}

	if h, ok := p.HeightCm.Float(); !ok {
		errs["heightCm"] = "Height is required."
	} else if h <= 0 {
		errs["heightCm"] = "Height must be positive."
	}
	if w, ok := p.WeightKg.Float(); !ok {
		errs["weightKg"] = "Weight is required."
	} else if w <= 0 {
		errs["weightKg"] = "Weight must be positive."
	}

	if p.DateOfBirth == "" {
		errs["dateOfBirth"] = "Date of birth is required."
	} else if dob, err := time.Parse(dateLayout, p.DateOfBirth); err != nil || !dob.Before(now) {
		errs["dateOfBirth"] = "Date of birth must be in the past."
	}
	if p.DateOfDiagnosis == "" {
		errs["dateOfDiagnosis"] = "Date of diagnosis is required."
	} else if diag, err := time.Parse(dateLayout, p.DateOfDiagnosis); err != nil || diag.After(now) {
		errs["dateOfDiagnosis"] = "Date of diagnosis cannot be in the future."
	}

	if p.Ethnicity == "" {
		errs["ethnicity"] = "Ethnicity is required."
	}
	if p.TypeOfDiabetes == "" {
		errs["typeOfDiabetes"] = "Type of Diabetes is required."
	}
	if p.BiologicalSex == "" {
		errs["biologicalSex"] = "Biological sex is required."
	}
	if p.AssignedPhysician == "" {
		errs["assignedPhysician"] = "Assigned physician is required."
	}
	if len(p.MedicalHistory) == 0 {
		errs["medicalHistory"] = "Medical History cannot be blank."
	}

	if p.Address.MailingAddress == "" {
		errs["address.mailingAddress"] = "Mailing address is required."
	}
	if p.Address.Zipcode == "" {
		errs["address.zipcode"] = "Zipcode is required."
	}
	if p.Address.County == "" {
		errs["address.county"] = "County is required."
	}
	if p.Address.State == "" {
		errs["address.state"] = "State is required."
	}
	if p.Address.Country == "" {
		errs["address.country"] = "Country is required."
	}

	for _, cg := range p.Caregivers {
		if cg.FirstName == "" {
			errs["caregivers.firstName"] = "First name is required."
		}
		if cg.LastName == "" {
			errs["caregivers.lastName"] = "Last name is required."
		}
		switch {
		case cg.Email == "":
			errs["caregivers.email"] = "Email is required."
		case !emailPattern.MatchString(cg.Email):
			errs["caregivers.email"] = "Email should be valid."
		}
		switch {
		case cg.PhoneNumber == "":
			errs["caregivers.phoneNumber"] = "Phone number is required."
		case !phonePattern.MatchString(cg.PhoneNumber):
			errs["caregivers.phoneNumber"] = "Invalid phone number format."
		}
		if cg.RelationshipToPatient == "" {
			errs["caregivers.relationshipToPatient"] = "Relationship to patient is required."
		}
	}

	return errs
}
