package console

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wlabs/patient-console/internal/patient"
)

// -- Fake remote service --

type fakeAPI struct {
	searchResults []patient.Patient
	searchErr     error
	searchCalls   int
	lastTerm      string

	deleteErr   error
	deleteCalls int
	deletedID   string
}

func (f *fakeAPI) Search(_ context.Context, term string) ([]patient.Patient, error) {
	f.searchCalls++
	f.lastTerm = term
	return f.searchResults, f.searchErr
}

func (f *fakeAPI) Delete(_ context.Context, id string) error {
	f.deleteCalls++
	f.deletedID = id
	return f.deleteErr
}

func annLee() patient.Patient {
	p := patient.Default()
	p.ID = "42"
	p.FirstName = "Ann"
	p.LastName = "Lee"
	p.Email = "ann@x.com"
	p.PhoneNumber = "555-0100"
	return p
}

func newTestConsole(api *fakeAPI) *Console {
	return New(api, zerolog.Nop())
}

func TestSearch_BlankTermClearsWithoutNetwork(t *testing.T) {
	api := &fakeAPI{}
	c := newTestConsole(api)
	c.patients = []patient.Patient{annLee()}

	for _, term := range []string{"", "   ", "\t"} {
		if err := c.Search(context.Background(), term); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if api.searchCalls != 0 {
			t.Errorf("blank term %q must not hit the network", term)
		}
		if len(c.Patients()) != 0 {
			t.Errorf("blank term %q must clear results", term)
		}
	}
}

func TestSearch_ZeroResultsSetsInfoBanner(t *testing.T) {
	api := &fakeAPI{searchResults: []patient.Patient{}}
	c := newTestConsole(api)

	if err := c.Search(context.Background(), "nobody"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Status(); got.Severity != SeverityInfo {
		t.Errorf("expected info banner, got %v", got)
	}
	if len(c.Patients()) != 0 {
		t.Error("expected empty result list")
	}
}

func TestSearch_ResultsReplaceListAndClearBanner(t *testing.T) {
	api := &fakeAPI{searchResults: []patient.Patient{annLee()}}
	c := newTestConsole(api)
	c.status = Status{Severity: SeverityError, Text: "stale"}

	if err := c.Search(context.Background(), "Lee"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.lastTerm != "Lee" {
		t.Errorf("expected term Lee, got %q", api.lastTerm)
	}
	if len(c.Patients()) != 1 || c.Patients()[0].ID != "42" {
		t.Errorf("unexpected results: %v", c.Patients())
	}
	if c.Status().Severity != SeverityNone {
		t.Errorf("expected cleared banner, got %v", c.Status())
	}
}

func TestSearch_FailureKeepsResults(t *testing.T) {
	api := &fakeAPI{searchResults: []patient.Patient{annLee()}}
	c := newTestConsole(api)
	if err := c.Search(context.Background(), "Lee"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	api.searchErr = fmt.Errorf("boom")
	if err := c.Search(context.Background(), "Lee again"); err == nil {
		t.Fatal("expected search error")
	}
	if len(c.Patients()) != 1 {
		t.Error("failed search must leave previous results unchanged")
	}
	if got := c.Status(); got.Severity != SeverityError || got.Text != "Failed to search for patients." {
		t.Errorf("unexpected banner: %v", got)
	}
}

func TestDelete_TwoStepConfirmation(t *testing.T) {
	api := &fakeAPI{}
	c := newTestConsole(api)
	c.patients = []patient.Patient{annLee()}
	c.searchTerm = "Lee"

	c.RequestDelete(annLee())
	if !c.DeleteDialogOpen() {
		t.Fatal("expected dialog to open")
	}
	if api.deleteCalls != 0 {
		t.Fatal("requesting delete must not hit the network")
	}
	if c.DeleteTarget() == nil || c.DeleteTarget().ID != "42" {
		t.Fatalf("unexpected delete target: %v", c.DeleteTarget())
	}

	if err := c.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.deletedID != "42" {
		t.Errorf("expected delete of id 42, got %q", api.deletedID)
	}
	if c.View() != ViewHome {
		t.Error("expected return to home view")
	}
	if c.SearchTerm() != "" || len(c.Patients()) != 0 {
		t.Error("expected search state cleared after successful delete")
	}
	got := c.Status()
	if got.Severity != SeveritySuccess {
		t.Errorf("expected success banner, got %v", got)
	}
	if want := `Patient "Ann Lee" deleted successfully.`; got.Text != want {
		t.Errorf("expected %q, got %q", want, got.Text)
	}
	if c.DeleteDialogOpen() || c.DeleteTarget() != nil {
		t.Error("expected dialog closed and target cleared")
	}
}

func TestCancelDelete_LeavesEverythingElseUnchanged(t *testing.T) {
	api := &fakeAPI{}
	c := newTestConsole(api)
	c.patients = []patient.Patient{annLee()}
	c.searchTerm = "Lee"
	c.status = Status{Severity: SeverityInfo, Text: "hello"}

	c.RequestDelete(annLee())
	c.CancelDelete()

	if api.deleteCalls != 0 {
		t.Error("cancel must not hit the network")
	}
	if c.DeleteDialogOpen() || c.DeleteTarget() != nil {
		t.Error("expected dialog dismissed")
	}
	if c.View() != ViewHome || c.SearchTerm() != "Lee" || len(c.Patients()) != 1 {
		t.Error("cancel must leave view and search state unchanged")
	}
	if got := c.Status(); got.Text != "hello" {
		t.Errorf("cancel must leave the banner unchanged, got %v", got)
	}
}

func TestConfirmDelete_FailureClosesDialogAndSetsError(t *testing.T) {
	api := &fakeAPI{deleteErr: fmt.Errorf("boom")}
	c := newTestConsole(api)
	c.patients = []patient.Patient{annLee()}

	c.RequestDelete(annLee())
	if err := c.ConfirmDelete(context.Background()); err == nil {
		t.Fatal("expected delete error")
	}
	if c.DeleteDialogOpen() {
		t.Error("dialog must close regardless of outcome")
	}
	if c.View() != ViewHome {
		t.Error("failed delete stays on home")
	}
	if len(c.Patients()) != 1 {
		t.Error("failed delete must not clear results")
	}
	if got := c.Status(); got.Severity != SeverityError || got.Text != "Failed to delete patient." {
		t.Errorf("unexpected banner: %v", got)
	}
}

func TestConfirmDelete_NoTargetIsNoOp(t *testing.T) {
	api := &fakeAPI{}
	c := newTestConsole(api)
	if err := c.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.deleteCalls != 0 {
		t.Error("confirm without a target must not hit the network")
	}
}

func TestNavigation_StateMachine(t *testing.T) {
	c := newTestConsole(&fakeAPI{})
	c.status = Status{Severity: SeverityError, Text: "stale"}

	c.OpenAdd()
	if c.View() != ViewAdd || c.Editing() != nil {
		t.Errorf("unexpected add state: view=%v editing=%v", c.View(), c.Editing())
	}
	if c.Status().Severity != SeverityNone {
		t.Error("opening add must clear the banner")
	}

	c.ReturnHome(nil)
	if c.View() != ViewHome {
		t.Error("expected home after cancel")
	}

	p := annLee()
	c.OpenEdit(p)
	if c.View() != ViewEdit {
		t.Error("expected edit view")
	}
	if c.Editing() == nil || c.Editing().ID != "42" {
		t.Errorf("unexpected editing record: %v", c.Editing())
	}
	// the console's copy must not alias the caller's record
	p.FirstName = "Mutated"
	if c.Editing().FirstName != "Ann" {
		t.Error("OpenEdit must deep-copy the selected patient")
	}

	done := Status{Severity: SeveritySuccess, Text: `Patient "Ann Lee" updated successfully.`}
	c.ReturnHome(&done)
	if c.View() != ViewHome || c.Editing() != nil {
		t.Error("expected reset to home")
	}
	if c.Status() != done {
		t.Errorf("expected stamped status, got %v", c.Status())
	}
}

func TestSearch_BusyGuard(t *testing.T) {
	c := newTestConsole(&fakeAPI{})
	c.pending = true
	if err := c.Search(context.Background(), "Lee"); err != ErrRequestInFlight {
		t.Errorf("expected ErrRequestInFlight, got %v", err)
	}
	c.RequestDelete(annLee())
	if err := c.ConfirmDelete(context.Background()); err != ErrRequestInFlight {
		t.Errorf("expected ErrRequestInFlight, got %v", err)
	}
}

func TestDismissStatus(t *testing.T) {
	c := newTestConsole(&fakeAPI{})
	c.status = Status{Severity: SeverityInfo, Text: "hello"}
	c.DismissStatus()
	if c.Status() != (Status{}) {
		t.Errorf("expected empty status, got %v", c.Status())
	}
}
