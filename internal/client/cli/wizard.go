package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// accountFields are the submission field names collected in step 1. Errors on
// any other field send the user back to step 2.
var accountFields = map[string]bool{
	"first_name":            true,
	"last_name":             true,
	"email":                 true,
	"username":              true,
	"password":              true,
	"password_confirmation": true,
	"participation_type":    true,
}

// promptField asks for one field, offering the current value as the default.
// Pressing Enter keeps it.
func (a *App) promptField(label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// printErrors shows the stored field errors relevant to the given step.
func (a *App) printErrors(step int) {
	errs := a.store.State().UI.Errors
	if len(errs) == 0 {
		return
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		if stepForField(field) == step {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return
	}
	sort.Strings(fields)

	fmt.Fprintln(a.out, "Please fix the following:")
	for _, field := range fields {
		for _, msg := range errs[field] {
			fmt.Fprintf(a.out, "  - %s: %s\n", field, msg)
		}
	}
}

func stepForField(field string) int {
	if accountFields[field] {
		return 1
	}
	return 2
}

// earliestErrorStep returns the first wizard step that carries an error, or 0
// when the map is empty.
func earliestErrorStep(errs map[string][]string) int {
	step := 0
	for field := range errs {
		s := stepForField(field)
		if step == 0 || s < step {
			step = s
		}
	}
	return step
}

func (a *App) stepAccount(ctx context.Context) error {

	fmt.Fprintln(a.out, "\nStep 1 of 3: account")
	a.printErrors(1)

	account := a.store.State().Account

	prompts := []struct {
		field   string
		label   string
		current string
	}{
		{"first_name", "First name", account.FirstName},
		{"last_name", "Last name", account.LastName},
		{"email", "Email", account.Email},
		{"username", "Username (letters and digits only)", account.UserName},
		{"participation_type", "Participation type (exhibitor|buyer)", account.ParticipationType},
	}
	for _, p := range prompts {
		v, err := a.promptField(p.label, p.current)
		if err != nil {
			return err
		}
		if err := a.store.SetAccountField(ctx, p.field, v); err != nil {
			return err
		}
	}

	password, err := GetPassword("Password (Enter keeps current)", a.out)
	if err != nil {
		return err
	}
	if password != "" {
		confirmation, err := GetPassword("Confirm password", a.out)
		if err != nil {
			return err
		}
		if err := a.store.SetAccountField(ctx, "password", password); err != nil {
			return err
		}
		if err := a.store.SetAccountField(ctx, "password_confirmation", confirmation); err != nil {
			return err
		}
	}

	return a.store.SetCurrentStep(ctx, 2)
}

func (a *App) stepCompany(ctx context.Context) error {

	fmt.Fprintln(a.out, "\nStep 2 of 3: company")
	a.printErrors(2)

	if countries, err := a.api.Countries(ctx); err == nil {
		codes := make([]string, 0, len(countries))
		for _, c := range countries {
			codes = append(codes, c.Code)
		}
		fmt.Fprintf(a.out, "Countries: %s\n", strings.Join(codes, ", "))
	}

	company := a.store.State().Company

	prompts := []struct {
		field   string
		label   string
		current string
	}{
		{"company_name", "Company name", company.CompanyName},
		{"address_line", "Address line", company.AddressLine},
		{"city", "City", company.City},
		{"region", "Region", company.Region},
		{"country", "Country code", company.Country},
		{"year_established", "Year established (YYYY)", company.YearEstablished},
		{"website", "Website (optional)", company.Website},
	}
	for _, p := range prompts {
		v, err := a.promptField(p.label, p.current)
		if err != nil {
			return err
		}
		if err := a.store.SetCompanyField(ctx, p.field, v); err != nil {
			return err
		}
	}

	path, err := a.promptField("Brochure file path (optional, PDF up to 2 MB)", company.BrochurePath)
	if err != nil {
		return err
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(a.out, "warning: cannot read %s, continuing without a brochure\n", path)
			path = ""
		}
	}
	if err := a.store.AttachBrochure(ctx, path); err != nil {
		return err
	}

	return a.store.SetCurrentStep(ctx, 3)
}

// stepReview shows the staged data and waits for a command. It returns true
// when the wizard is finished, either by a successful submission or a quit.
func (a *App) stepReview(ctx context.Context) (bool, error) {

	state := a.store.State()

	fmt.Fprintln(a.out, "\nStep 3 of 3: review")
	fmt.Fprintf(a.out, "  %s %s <%s> as %s (%s)\n",
		state.Account.FirstName, state.Account.LastName, state.Account.Email,
		state.Account.UserName, state.Account.ParticipationType)
	fmt.Fprintf(a.out, "  %s, %s, %s, %s (%s), est. %s\n",
		state.Company.CompanyName, state.Company.AddressLine, state.Company.City,
		state.Company.Region, state.Company.Country, state.Company.YearEstablished)
	if state.Company.Website != "" {
		fmt.Fprintf(a.out, "  website: %s\n", state.Company.Website)
	}
	if state.Company.BrochurePath != "" {
		fmt.Fprintf(a.out, "  brochure: %s\n", state.Company.BrochurePath)
	}

	cmd, err := GetSimpleText(a.reader, "Type 'submit', 'account', 'company' or 'quit'", a.out)
	if err != nil {
		return false, err
	}

	switch cmd {
	case "submit":
		return a.submit(ctx)
	case "account":
		return false, a.store.SetCurrentStep(ctx, 1)
	case "company":
		return false, a.store.SetCurrentStep(ctx, 2)
	case "quit", "exit":
		fmt.Fprintln(a.out, "Your progress is saved. Bye!")
		return true, nil
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return false, nil
	}
}

// submit sends the staged form. Validation failures are mapped back onto the
// wizard: the errors are stored and the user is returned to the earliest step
// that carries one.
func (a *App) submit(ctx context.Context) (bool, error) {

	if err := a.store.ClearErrors(ctx); err != nil {
		return false, err
	}
	if err := a.store.SetLoading(ctx, true); err != nil {
		return false, err
	}

	res, err := a.api.Register(ctx, a.store.State())

	if lerr := a.store.SetLoading(ctx, false); lerr != nil {
		return false, lerr
	}
	if err != nil {
		fmt.Fprintf(a.out, "submission failed: %v\n", err)
		return false, nil
	}

	if len(res.FieldErrors) > 0 {
		if err := a.store.SetErrors(ctx, res.FieldErrors); err != nil {
			return false, err
		}
		return false, a.store.SetCurrentStep(ctx, earliestErrorStep(res.FieldErrors))
	}

	if err := a.store.SetSuccess(ctx, true); err != nil {
		return false, err
	}
	fmt.Fprintln(a.out, res.Message)

	// The staged form has served its purpose.
	if err := a.store.Reset(ctx); err != nil {
		return false, err
	}
	return true, nil
}
