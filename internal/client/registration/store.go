// Package registration holds the client's staged registration state: the
// wizard form fields, progress and submission status, persisted locally
// between runs so an interrupted registration can be resumed.
package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/XVDel0Saint/fameconnect/internal/client/models"
	"github.com/XVDel0Saint/fameconnect/internal/client/repositories/formstate"
	"github.com/XVDel0Saint/fameconnect/internal/common"
)

// StorageKey is the fixed key the snapshot is persisted under. There is only
// ever one staged registration per local database.
const StorageKey = "registration"

const (
	// FirstStep and LastStep bound the wizard. Steps outside the range are
	// clamped rather than rejected.
	FirstStep = 1
	LastStep  = 3
)

// Store owns the staged registration snapshot. Every mutation is written
// through to the repository immediately, so the snapshot on disk always
// matches the one in memory.
type Store struct {
	repo       formstate.Repository
	state      models.FormState
	rehydrated bool
}

// NewStore loads the snapshot stored under StorageKey, falling back to the
// documented initial state when none exists. Rehydrated reports which of the
// two happened.
func NewStore(ctx context.Context, repo formstate.Repository) (*Store, error) {
	s := &Store{repo: repo}

	data, err := repo.Load(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.state = models.DefaultFormState()
			return s, nil
		}
		return nil, fmt.Errorf("failed to restore registration state: %w", err)
	}

	var state models.FormState
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt snapshot is not worth failing over. Start fresh.
		s.state = models.DefaultFormState()
		return s, nil
	}
	if state.UI.Errors == nil {
		state.UI.Errors = map[string][]string{}
	}

	s.state = state
	s.rehydrated = true
	return s, nil
}

// State returns a copy of the current snapshot.
func (s *Store) State() models.FormState {
	return s.state
}

// Rehydrated reports whether the snapshot was restored from a previous run.
// Restored snapshots never carry a brochure attachment, so the wizard should
// prompt for re-selection.
func (s *Store) Rehydrated() bool {
	return s.rehydrated
}

// SetAccountField sets one step-1 field by its submission name and persists
// the snapshot. Unknown names are an error.
func (s *Store) SetAccountField(ctx context.Context, name, value string) error {
	switch name {
	case "first_name":
		s.state.Account.FirstName = value
	case "last_name":
		s.state.Account.LastName = value
	case "email":
		s.state.Account.Email = value
	case "username":
		s.state.Account.UserName = value
	case "password":
		s.state.Account.Password = value
	case "password_confirmation":
		s.state.Account.PasswordConfirmation = value
	case "participation_type":
		s.state.Account.ParticipationType = value
	default:
		return fmt.Errorf("unknown account field %q", name)
	}
	return s.persist(ctx)
}

// SetCompanyField sets one step-2 field by its submission name and persists
// the snapshot. The brochure attachment has its own operation.
func (s *Store) SetCompanyField(ctx context.Context, name, value string) error {
	switch name {
	case "company_name":
		s.state.Company.CompanyName = value
	case "address_line":
		s.state.Company.AddressLine = value
	case "city":
		s.state.Company.City = value
	case "region":
		s.state.Company.Region = value
	case "country":
		s.state.Company.Country = value
	case "year_established":
		s.state.Company.YearEstablished = value
	case "website":
		s.state.Company.Website = value
	default:
		return fmt.Errorf("unknown company field %q", name)
	}
	return s.persist(ctx)
}

// AttachBrochure records the local path of the selected brochure file. An
// empty path clears the attachment. The path itself is not persisted.
func (s *Store) AttachBrochure(ctx context.Context, path string) error {
	s.state.Company.BrochurePath = path
	return s.persist(ctx)
}

// SetCurrentStep moves the wizard to the given step, clamped to the valid
// range, and persists the snapshot.
func (s *Store) SetCurrentStep(ctx context.Context, step int) error {
	if step < FirstStep {
		step = FirstStep
	}
	if step > LastStep {
		step = LastStep
	}
	s.state.UI.CurrentStep = step
	return s.persist(ctx)
}

// SetErrors replaces the field error map and persists the snapshot. A nil map
// is stored as an empty one.
func (s *Store) SetErrors(ctx context.Context, errs map[string][]string) error {
	if errs == nil {
		errs = map[string][]string{}
	}
	s.state.UI.Errors = errs
	return s.persist(ctx)
}

// ClearErrors drops all field errors and persists the snapshot.
func (s *Store) ClearErrors(ctx context.Context) error {
	s.state.UI.Errors = map[string][]string{}
	return s.persist(ctx)
}

// SetLoading flips the submission-in-flight flag and persists the snapshot.
func (s *Store) SetLoading(ctx context.Context, loading bool) error {
	s.state.UI.Loading = loading
	return s.persist(ctx)
}

// SetSuccess flips the submitted flag and persists the snapshot.
func (s *Store) SetSuccess(ctx context.Context, success bool) error {
	s.state.UI.Success = success
	return s.persist(ctx)
}

// Reset returns the snapshot to the documented initial state and persists it.
// The store no longer counts as rehydrated afterwards.
func (s *Store) Reset(ctx context.Context) error {
	s.state = models.DefaultFormState()
	s.rehydrated = false
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to serialize registration state: %w", err)
	}
	if err := s.repo.Save(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to persist registration state: %w", err)
	}
	return nil
}
