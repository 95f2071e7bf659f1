package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wlabs/patient-console/internal/api"
	"github.com/wlabs/patient-console/internal/patient"
)

// ErrNoChanges aborts a submit whose working record still equals the
// snapshot taken at load time. No network call is made.
var ErrNoChanges = errors.New("no changes detected")

// Service is the slice of the remote service the form needs.
type Service interface {
	Create(ctx context.Context, p patient.Patient) (patient.Patient, error)
	Update(ctx context.Context, p patient.Patient) (patient.Patient, error)
}

// Form collects a patient record for create or update. It holds the working
// record, an independent snapshot of the loaded state for no-op detection,
// and the field errors returned by the service on a rejected submit.
type Form struct {
	working     patient.Patient
	snapshot    patient.Patient
	editing     bool
	fieldErrors map[string]string
	pending     bool
	logger      zerolog.Logger
}

// NewForm builds a form over an existing record, or over the defaults when
// existing is nil. The record is normalized (medicalHistory and caregivers
// become sequences) before the snapshot is taken.
func NewForm(existing *patient.Patient, logger zerolog.Logger) *Form {
	f := &Form{fieldErrors: map[string]string{}, logger: logger}
	if existing != nil {
		working := existing.Clone()
		working.Normalize()
		f.working = working
		f.snapshot = working.Clone()
		f.editing = true
		return f
	}
	f.working = patient.Default()
	f.snapshot = patient.Default()
	return f
}

// Editing reports whether the form updates an existing record.
func (f *Form) Editing() bool { return f.editing }

// Working returns a copy of the in-progress record.
func (f *Form) Working() patient.Patient { return f.working.Clone() }

// FieldErrors returns the service's field→message map from the last
// rejected submit, keyed by wire field name.
func (f *Form) FieldErrors() map[string]string { return f.fieldErrors }

// ErrorFor returns the inline error for one field, if any.
func (f *Form) ErrorFor(field Field) string { return f.fieldErrors[field.String()] }

// Dirty reports whether the working record differs from the snapshot.
func (f *Form) Dirty() bool { return !f.working.Equal(f.snapshot) }

// SetField replaces one leaf of the working record, leaving every sibling
// untouched.
func (f *Form) SetField(field Field, value string) error {
	switch field {
	case FieldFirstName:
		f.working.FirstName = value
	case FieldLastName:
		f.working.LastName = value
	case FieldEmail:
		f.working.Email = value
	case FieldPhoneNumber:
		f.working.PhoneNumber = value
	case FieldHeightCm:
		f.working.HeightCm = patient.Numeric(value)
	case FieldWeightKg:
		f.working.WeightKg = patient.Numeric(value)
	case FieldDateOfBirth:
		f.working.DateOfBirth = value
	case FieldEthnicity:
		f.working.Ethnicity = value
	case FieldTypeOfDiabetes:
		f.working.TypeOfDiabetes = value
	case FieldDateOfDiagnosis:
		f.working.DateOfDiagnosis = value
	case FieldBiologicalSex:
		f.working.BiologicalSex = value
	case FieldAssignedPhysician:
		f.working.AssignedPhysician = value
	case FieldNotes:
		f.working.Notes = value
	case FieldAddressCountry:
		f.working.Address.Country = value
	case FieldAddressZipcode:
		f.working.Address.Zipcode = value
	case FieldAddressMailingAddress:
		f.working.Address.MailingAddress = value
	case FieldAddressState:
		f.working.Address.State = value
	case FieldAddressCounty:
		f.working.Address.County = value
	default:
		return fmt.Errorf("unknown field %d", field)
	}
	return nil
}

// FieldValue reads one leaf of the working record.
func (f *Form) FieldValue(field Field) string {
	switch field {
	case FieldFirstName:
		return f.working.FirstName
	case FieldLastName:
		return f.working.LastName
	case FieldEmail:
		return f.working.Email
	case FieldPhoneNumber:
		return f.working.PhoneNumber
	case FieldHeightCm:
		return string(f.working.HeightCm)
	case FieldWeightKg:
		return string(f.working.WeightKg)
	case FieldDateOfBirth:
		return f.working.DateOfBirth
	case FieldEthnicity:
		return f.working.Ethnicity
	case FieldTypeOfDiabetes:
		return f.working.TypeOfDiabetes
	case FieldDateOfDiagnosis:
		return f.working.DateOfDiagnosis
	case FieldBiologicalSex:
		return f.working.BiologicalSex
	case FieldAssignedPhysician:
		return f.working.AssignedPhysician
	case FieldNotes:
		return f.working.Notes
	case FieldAddressCountry:
		return f.working.Address.Country
	case FieldAddressZipcode:
		return f.working.Address.Zipcode
	case FieldAddressMailingAddress:
		return f.working.Address.MailingAddress
	case FieldAddressState:
		return f.working.Address.State
	case FieldAddressCounty:
		return f.working.Address.County
	}
	return ""
}

// ToggleCondition adds the condition to medicalHistory, or removes it when
// already selected. Selection order is preserved.
func (f *Form) ToggleCondition(condition string) {
	if f.working.MedicalHistory.Contains(condition) {
		kept := patient.HistoryList{}
		for _, c := range f.working.MedicalHistory {
			if c != condition {
				kept = append(kept, c)
			}
		}
		f.working.MedicalHistory = kept
		return
	}
	f.working.MedicalHistory = append(f.working.MedicalHistory, condition)
}

// AddCaregiver appends an empty caregiver to the end of the list.
func (f *Form) AddCaregiver() {
	f.working.Caregivers = append(f.working.Caregivers, patient.Caregiver{
		RelationshipToPatient: patient.DefaultRelationship,
	})
}

// UpdateCaregiver replaces one field of the caregiver at index; out-of-range
// indices are ignored.
func (f *Form) UpdateCaregiver(index int, field CaregiverField, value string) {
	if index < 0 || index >= len(f.working.Caregivers) {
		return
	}
	cg := &f.working.Caregivers[index]
	switch field {
	case CaregiverFirstName:
		cg.FirstName = value
	case CaregiverLastName:
		cg.LastName = value
	case CaregiverEmail:
		cg.Email = value
	case CaregiverPhoneNumber:
		cg.PhoneNumber = value
	case CaregiverRelationship:
		cg.RelationshipToPatient = value
	}
}

// RemoveCaregiver removes the element at index, shifting later caregivers
// down. Display labels are positional and recomputed by the renderer.
func (f *Form) RemoveCaregiver(index int) {
	if index < 0 || index >= len(f.working.Caregivers) {
		return
	}
	f.working.Caregivers = append(f.working.Caregivers[:index], f.working.Caregivers[index+1:]...)
}

// Submit sends the working record as a create or update. The returned Status
// is the completion message for the console banner. Validation-shaped
// rejections populate FieldErrors AND return the generic duplicate banner;
// plain-text rejections surface verbatim; transport failures surface a
// generic network message. Nothing is retried.
func (f *Form) Submit(ctx context.Context, svc Service) (Status, error) {
	if f.pending {
		return Status{}, ErrRequestInFlight
	}
	f.pending = true
	defer func() { f.pending = false }()

	f.fieldErrors = map[string]string{}

	if f.editing && f.working.Equal(f.snapshot) {
		return Status{}, ErrNoChanges
	}

	payload := f.working.Clone()
	payload.Normalize()

	var (
		saved patient.Patient
		err   error
		verb  = "created"
	)
	if f.editing {
		verb = "updated"
		saved, err = svc.Update(ctx, payload)
	} else {
		saved, err = svc.Create(ctx, payload)
	}
	if err != nil {
		return f.failure(err), err
	}

	f.logger.Info().
		Str("patient_id", saved.ID).
		Str("operation", verb).
		Msg("patient record saved")
	return Status{
		Severity: SeveritySuccess,
		Text:     fmt.Sprintf("Patient %q %s successfully.", payload.DisplayName(), verb),
	}, nil
}

func (f *Form) failure(err error) Status {
	var vErr *api.ValidationError
	var sErr *api.ServerError
	switch {
	case errors.As(err, &vErr):
		f.fieldErrors = vErr.Fields
		return Status{Severity: SeverityError, Text: "A record already exists with same details"}
	case errors.As(err, &sErr):
		if sErr.Message == "" {
			return Status{Severity: SeverityError, Text: "An unexpected error occurred."}
		}
		return Status{Severity: SeverityError, Text: sErr.Message}
	default:
		f.logger.Error().Err(err).Msg("patient submit failed without a response")
		return Status{Severity: SeverityError, Text: "A network error occurred. Please check your connection."}
	}
}
