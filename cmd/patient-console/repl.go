package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wlabs/patient-console/internal/api"
	"github.com/wlabs/patient-console/internal/console"
	"github.com/wlabs/patient-console/internal/patient"
)

// repl is the line-oriented front-end over the console state model. It only
// translates input lines into model operations and prints the resulting
// state; all workflow rules live in internal/console.
type repl struct {
	ui     *console.Console
	client *api.Client
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger
}

func newREPL(ui *console.Console, client *api.Client, in io.Reader, out io.Writer, logger zerolog.Logger) *repl {
	return &repl{
		ui:     ui,
		client: client,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

func (r *repl) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Patient Management Console")
	for {
		r.printStatus()
		if r.ui.View() == console.ViewHome {
			done, err := r.homeStep(ctx)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			continue
		}
		if err := r.formSession(ctx); err != nil {
			return err
		}
	}
}

func (r *repl) printStatus() {
	status := r.ui.Status()
	if status.Severity == console.SeverityNone {
		return
	}
	fmt.Fprintf(r.out, "[%s] %s\n", status.Severity, status.Text)
}

func (r *repl) readLine(prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

// -- Home view --

func (r *repl) homeStep(ctx context.Context) (done bool, err error) {
	r.printPatients()
	fmt.Fprintln(r.out, "commands: add | search <term> | edit <n> | delete <n> | dismiss | quit")
	line, ok := r.readLine("> ")
	if !ok {
		return true, r.in.Err()
	}

	cmd, arg := splitCommand(line)
	switch cmd {
	case "":
	case "add":
		r.ui.OpenAdd()
	case "search":
		if err := r.ui.Search(ctx, arg); errors.Is(err, console.ErrRequestInFlight) {
			fmt.Fprintln(r.out, "please wait for the current request to finish")
		}
	case "edit":
		if p, ok := r.selectPatient(arg); ok {
			r.ui.OpenEdit(r.freshCopy(ctx, p))
		}
	case "delete":
		if p, ok := r.selectPatient(arg); ok {
			r.ui.RequestDelete(p)
			r.confirmDelete(ctx)
		}
	case "dismiss":
		r.ui.DismissStatus()
	case "quit", "exit":
		return true, nil
	default:
		fmt.Fprintf(r.out, "unknown command %q\n", cmd)
	}
	return false, nil
}

func (r *repl) printPatients() {
	patients := r.ui.Patients()
	if len(patients) == 0 {
		return
	}
	fmt.Fprintf(r.out, "results for %q:\n", r.ui.SearchTerm())
	for i, p := range patients {
		fmt.Fprintf(r.out, "  %d. %s  (%s | %s)\n", i+1, p.DisplayName(), p.Email, p.PhoneNumber)
	}
}

func (r *repl) selectPatient(arg string) (patient.Patient, bool) {
	n, err := strconv.Atoi(arg)
	patients := r.ui.Patients()
	if err != nil || n < 1 || n > len(patients) {
		fmt.Fprintln(r.out, "pick a result number from the list")
		return patient.Patient{}, false
	}
	return patients[n-1], true
}

// freshCopy refetches the selected record so the edit form starts from the
// service's current state; the listed copy is kept on any failure.
func (r *repl) freshCopy(ctx context.Context, p patient.Patient) patient.Patient {
	fresh, err := r.client.Get(ctx, p.ID)
	if err != nil {
		r.logger.Warn().Err(err).Str("patient_id", p.ID).Msg("refetch before edit failed, using listed copy")
		return p
	}
	return fresh
}

func (r *repl) confirmDelete(ctx context.Context) {
	target := r.ui.DeleteTarget()
	if target == nil {
		return
	}
	line, ok := r.readLine(fmt.Sprintf("Are you sure you want to delete patient %q? [y/N] ", target.DisplayName()))
	if ok && strings.EqualFold(line, "y") {
		if err := r.ui.ConfirmDelete(ctx); errors.Is(err, console.ErrRequestInFlight) {
			fmt.Fprintln(r.out, "please wait for the current request to finish")
		}
		return
	}
	r.ui.CancelDelete()
}

// -- Form views --

func (r *repl) formSession(ctx context.Context) error {
	form := console.NewForm(r.ui.Editing(), r.logger)
	title := "Add Patient Details"
	if form.Editing() {
		title = "Edit Patient Details"
	}
	fmt.Fprintln(r.out, title)
	r.printForm(form)

	for {
		fmt.Fprintln(r.out, "commands: set <field> <value> | toggle <condition> | cg add | cg set <n> <field> <value> | cg rm <n> | show | submit | cancel")
		line, ok := r.readLine("form> ")
		if !ok {
			r.ui.ReturnHome(nil)
			return r.in.Err()
		}

		cmd, arg := splitCommand(line)
		switch cmd {
		case "":
		case "show":
			r.printForm(form)
		case "set":
			r.setField(form, arg)
		case "toggle":
			r.toggleCondition(form, arg)
		case "cg":
			r.caregiverCommand(form, arg)
		case "submit":
			if r.submit(ctx, form) {
				return nil
			}
		case "cancel":
			r.ui.ReturnHome(nil)
			return nil
		default:
			fmt.Fprintf(r.out, "unknown command %q\n", cmd)
		}
	}
}

func (r *repl) printForm(form *console.Form) {
	for _, field := range console.Fields() {
		fmt.Fprintf(r.out, "  %-24s %s", field, form.FieldValue(field))
		if msg := form.ErrorFor(field); msg != "" {
			fmt.Fprintf(r.out, "   !! %s", msg)
		}
		fmt.Fprintln(r.out)
	}
	w := form.Working()
	fmt.Fprintf(r.out, "  %-24s %s\n", "medicalHistory", strings.Join(w.MedicalHistory, ", "))
	for i, cg := range w.Caregivers {
		fmt.Fprintf(r.out, "  Caregiver %d: %s %s  %s  %s  (%s)\n",
			i+1, cg.FirstName, cg.LastName, cg.Email, cg.PhoneNumber, cg.RelationshipToPatient)
	}
}

func (r *repl) setField(form *console.Form, arg string) {
	name, value := splitCommand(arg)
	field, ok := console.FieldByName(name)
	if !ok {
		fmt.Fprintf(r.out, "unknown field %q\n", name)
		return
	}
	if err := form.SetField(field, value); err != nil {
		fmt.Fprintln(r.out, err)
	}
}

func (r *repl) toggleCondition(form *console.Form, arg string) {
	if !patient.IsOneOf(arg, patient.MedicalConditions) {
		fmt.Fprintf(r.out, "unknown condition %q (one of: %s)\n", arg, strings.Join(patient.MedicalConditions, ", "))
		return
	}
	form.ToggleCondition(arg)
}

func (r *repl) caregiverCommand(form *console.Form, arg string) {
	sub, rest := splitCommand(arg)
	switch sub {
	case "add":
		form.AddCaregiver()
	case "rm":
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			fmt.Fprintln(r.out, "usage: cg rm <n>")
			return
		}
		form.RemoveCaregiver(n - 1)
	case "set":
		idx, fieldAndValue := splitCommand(rest)
		name, value := splitCommand(fieldAndValue)
		n, err := strconv.Atoi(idx)
		field, ok := console.CaregiverFieldByName(name)
		if err != nil || n < 1 || !ok {
			fmt.Fprintln(r.out, "usage: cg set <n> <field> <value>")
			return
		}
		form.UpdateCaregiver(n-1, field, value)
	default:
		fmt.Fprintln(r.out, "usage: cg add | cg set <n> <field> <value> | cg rm <n>")
	}
}

// submit runs the form submit and reports whether the session ended.
func (r *repl) submit(ctx context.Context, form *console.Form) bool {
	status, err := form.Submit(ctx, r.client)
	switch {
	case errors.Is(err, console.ErrNoChanges):
		fmt.Fprintln(r.out, "No changes detected.")
		return false
	case errors.Is(err, console.ErrRequestInFlight):
		fmt.Fprintln(r.out, "please wait for the current request to finish")
		return false
	case err != nil:
		// rejected submits keep the form open: the summary banner prints in
		// place and the field errors render inline on the next show
		fmt.Fprintf(r.out, "[%s] %s\n", status.Severity, status.Text)
		for key, msg := range form.FieldErrors() {
			fmt.Fprintf(r.out, "  %s: %s\n", key, msg)
		}
		return false
	default:
		r.ui.ReturnHome(&status)
		return true
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
