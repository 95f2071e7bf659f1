// Package console holds the client-side state model of the patient
// management console: the top-level view/search/delete workflow and the
// add/edit form. The model is UI-toolkit free; a front-end translates user
// input into operations and renders the resulting state.
package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wlabs/patient-console/internal/patient"
)

// View is the console's top-level navigation state.
type View int

const (
	ViewHome View = iota
	ViewAdd
	ViewEdit
)

func (v View) String() string {
	switch v {
	case ViewAdd:
		return "add"
	case ViewEdit:
		return "edit"
	default:
		return "home"
	}
}

// Severity classifies the status banner.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityInfo
	SeveritySuccess
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return ""
	}
}

// Status is the single transient, dismissible notification surface. A new
// status replaces the previous one; nothing is queued.
type Status struct {
	Severity Severity
	Text     string
}

// ErrRequestInFlight is returned when an operation that would issue a network
// call is invoked while an earlier one is still outstanding. Controls are
// expected to stay disabled until the pending call resolves.
var ErrRequestInFlight = errors.New("a request is already in flight")

// API is the slice of the remote service the console itself needs. The form
// owns create/update.
type API interface {
	Search(ctx context.Context, term string) ([]patient.Patient, error)
	Delete(ctx context.Context, id string) error
}

// Console owns navigation, search results, the status banner and the delete
// confirmation workflow. All state is explicit; there are no ambient globals.
type Console struct {
	api    API
	logger zerolog.Logger

	view             View
	patients         []patient.Patient
	searchTerm       string
	editing          *patient.Patient
	status           Status
	deleteTarget     *patient.Patient
	deleteDialogOpen bool
	pending          bool
}

func New(api API, logger zerolog.Logger) *Console {
	return &Console{api: api, logger: logger}
}

func (c *Console) View() View                  { return c.view }
func (c *Console) Patients() []patient.Patient { return c.patients }
func (c *Console) SearchTerm() string          { return c.searchTerm }
func (c *Console) Status() Status              { return c.status }
func (c *Console) DeleteDialogOpen() bool      { return c.deleteDialogOpen }

// Editing returns the record the edit view was opened with, or nil on the
// add view.
func (c *Console) Editing() *patient.Patient { return c.editing }

// DeleteTarget returns the candidate held by the confirmation dialog.
func (c *Console) DeleteTarget() *patient.Patient { return c.deleteTarget }

// DismissStatus clears the banner.
func (c *Console) DismissStatus() { c.status = Status{} }

// Search runs a lookup by name/email/phone substring. A blank term clears
// the results without touching the network. On failure the previous results
// are kept and the banner reports the error.
func (c *Console) Search(ctx context.Context, term string) error {
	c.searchTerm = term
	if strings.TrimSpace(term) == "" {
		c.patients = nil
		return nil
	}
	if c.pending {
		return ErrRequestInFlight
	}
	c.pending = true
	defer func() { c.pending = false }()

	c.status = Status{}
	results, err := c.api.Search(ctx, term)
	if err != nil {
		c.logger.Error().Err(err).Str("term", term).Msg("patient search failed")
		c.status = Status{Severity: SeverityError, Text: "Failed to search for patients."}
		return err
	}
	c.patients = results
	if len(results) == 0 {
		c.status = Status{Severity: SeverityInfo, Text: "No patients found matching your search term."}
	}
	return nil
}

// RequestDelete opens the confirmation dialog holding the candidate. No
// network call happens until ConfirmDelete.
func (c *Console) RequestDelete(p patient.Patient) {
	target := p.Clone()
	c.deleteTarget = &target
	c.deleteDialogOpen = true
}

// CancelDelete dismisses the dialog; everything else stays untouched.
func (c *Console) CancelDelete() {
	c.deleteTarget = nil
	c.deleteDialogOpen = false
}

// ConfirmDelete issues the delete call. The dialog closes regardless of the
// outcome; success returns to home with a success banner and clears the
// search state, failure only stamps an error banner.
func (c *Console) ConfirmDelete(ctx context.Context) error {
	if c.deleteTarget == nil {
		return nil
	}
	if c.pending {
		return ErrRequestInFlight
	}
	c.pending = true
	defer func() { c.pending = false }()

	target := *c.deleteTarget
	err := c.api.Delete(ctx, target.ID)
	c.deleteTarget = nil
	c.deleteDialogOpen = false
	if err != nil {
		c.logger.Error().Err(err).Str("patient_id", target.ID).Msg("patient delete failed")
		c.status = Status{Severity: SeverityError, Text: "Failed to delete patient."}
		return err
	}
	c.logger.Info().Str("patient_id", target.ID).Msg("patient deleted")
	c.ReturnHome(&Status{
		Severity: SeveritySuccess,
		Text:     fmt.Sprintf("Patient %q deleted successfully.", target.DisplayName()),
	})
	return nil
}

// OpenAdd switches to the add view with a fresh record.
func (c *Console) OpenAdd() {
	c.status = Status{}
	c.editing = nil
	c.view = ViewAdd
}

// OpenEdit switches to the edit view for the selected patient. The console
// keeps its own copy so later list mutations cannot leak into the form.
func (c *Console) OpenEdit(p patient.Patient) {
	c.status = Status{}
	edit := p.Clone()
	c.editing = &edit
	c.view = ViewEdit
}

// ReturnHome is the single exit path from the form views. It resets
// navigation and search state and optionally stamps a new banner.
func (c *Console) ReturnHome(status *Status) {
	c.view = ViewHome
	c.editing = nil
	c.searchTerm = ""
	c.patients = nil
	if status != nil {
		c.status = *status
	}
}
