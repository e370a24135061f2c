// Package models defines the client-side staged registration form.
package models

// AccountForm holds the step-1 fields of the wizard.
type AccountForm struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Email                string `json:"email"`
	UserName             string `json:"username"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	ParticipationType    string `json:"participation_type"`
}

// CompanyForm holds the step-2 fields of the wizard.
//
// BrochurePath is the local path of a selected-but-not-yet-uploaded file. It
// is deliberately excluded from the persisted snapshot: a path may dangle
// after a restart, so attachments must be re-selected (the wizard says so
// when it notices).
type CompanyForm struct {
	CompanyName     string `json:"company_name"`
	AddressLine     string `json:"address_line"`
	City            string `json:"city"`
	Region          string `json:"region"`
	Country         string `json:"country"`
	YearEstablished string `json:"year_established"`
	Website         string `json:"website"`
	BrochurePath    string `json:"-"`
}

// UIState tracks wizard progress and submission status.
type UIState struct {
	CurrentStep int                 `json:"current_step"`
	Errors      map[string][]string `json:"errors"`
	Loading     bool                `json:"loading"`
	Success     bool                `json:"success"`
}

// FormState is the full staged registration snapshot persisted between runs.
type FormState struct {
	Account AccountForm `json:"account"`
	Company CompanyForm `json:"company"`
	UI      UIState     `json:"ui"`
}

// DefaultFormState returns the documented initial state: buyer participation,
// step 1, no errors, both flags off.
func DefaultFormState() FormState {
	return FormState{
		Account: AccountForm{ParticipationType: "buyer"},
		UI: UIState{
			CurrentStep: 1,
			Errors:      map[string][]string{},
		},
	}
}
