// Package registration implements the registration submission flow: payload
// validation, password hashing, optional brochure storage, and the atomic
// user+company insert.
package registration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/XVDel0Saint/fameconnect/internal/common"
	"github.com/XVDel0Saint/fameconnect/internal/dbx"
	"github.com/XVDel0Saint/fameconnect/internal/logging"
	"github.com/XVDel0Saint/fameconnect/internal/server/models"
	"github.com/XVDel0Saint/fameconnect/internal/server/repositories/repomanager"
	usersrepo "github.com/XVDel0Saint/fameconnect/internal/server/repositories/users"
	"github.com/XVDel0Saint/fameconnect/internal/server/storage"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.BlobStore
	logger      logging.Logger
}

func NewService(db *sql.DB, m repomanager.RepositoryManager, store storage.BlobStore, l logging.Logger) *Service {
	return &Service{
		db:          db,
		repomanager: m,
		store:       store,
		logger:      l.With("module", "registration"),
	}
}

// hashPassword is a seam for tests; bcrypt is deliberately slow.
var hashPassword = func(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Register validates in, and on success creates one User and one Company row
// inside a single transaction, storing the brochure (if any) first and
// deleting it again if the transaction does not commit.
//
// Validation failures (including uniqueness conflicts) are returned as
// FieldErrors; any other error is a system failure with no field detail.
func (s *Service) Register(ctx context.Context, in *Input) (*models.User, error) {

	ve := validate(in)
	if err := s.checkUnique(ctx, in, ve); err != nil {
		return nil, err
	}
	if len(ve) > 0 {
		return nil, ve
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	// The file write precedes the row transaction; on rollback it is
	// compensated by a delete so no orphaned object keeps a path alive
	// that never committed.
	var brochureKey *string
	if in.Brochure != nil {
		key := storage.NewStorageKey(strings.ToLower(filepath.Ext(in.Brochure.FileName)))
		if err := s.store.Put(ctx, key, in.Brochure.Content); err != nil {
			return nil, fmt.Errorf("storing brochure: %w", err)
		}
		brochureKey = &key
	}

	user := &models.User{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		UserName:          in.UserName,
		PasswordHash:      hash,
		ParticipationType: models.ParticipationType(in.ParticipationType),
	}

	year, _ := strconv.Atoi(in.YearEstablished)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}

		company := &models.Company{
			UserID:          created.ID,
			CompanyName:     in.CompanyName,
			AddressLine:     in.AddressLine,
			City:            in.City,
			Region:          in.Region,
			Country:         in.Country,
			YearEstablished: year,
			BrochurePath:    brochureKey,
		}
		if in.Website != "" {
			company.Website = &in.Website
		}

		_, err = s.repomanager.Companies(tx).Create(ctx, company)
		return err
	})

	if err != nil {
		s.compensateBrochure(ctx, brochureKey)
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, uniqueViolationErrors(err)
		}
		return nil, fmt.Errorf("registration transaction: %w", err)
	}

	s.logger.Info(ctx, "registration stored", "user_id", user.ID, "username", user.UserName)
	return user, nil
}

// checkUnique adds uniqueness violations to ve. These same conflicts can
// still surface from the insert when two attempts race; uniqueViolationErrors
// handles that path.
func (s *Service) checkUnique(ctx context.Context, in *Input, ve FieldErrors) error {
	repo := s.repomanager.Users(s.db)

	if _, taken := ve["email"]; !taken && in.Email != "" {
		exists, err := repo.EmailExists(ctx, in.Email)
		if err != nil {
			return fmt.Errorf("checking email: %w", err)
		}
		if exists {
			ve.Add("email", "email has already been taken")
		}
	}

	if _, taken := ve["username"]; !taken && in.UserName != "" {
		exists, err := repo.UserNameExists(ctx, in.UserName)
		if err != nil {
			return fmt.Errorf("checking username: %w", err)
		}
		if exists {
			ve.Add("username", "username has already been taken")
		}
	}

	return nil
}

func (s *Service) compensateBrochure(ctx context.Context, key *string) {
	if key == nil {
		return
	}
	if err := s.store.Delete(ctx, *key); err != nil {
		s.logger.Error(ctx, "orphaned brochure cleanup failed", "key", *key, "error", err.Error())
	}
}

// uniqueViolationErrors maps a constraint-violation error from the insert to
// the field error the client expects.
func uniqueViolationErrors(err error) FieldErrors {
	ve := FieldErrors{}
	msg := err.Error()
	switch {
	case strings.Contains(msg, usersrepo.EmailConstraint):
		ve.Add("email", "email has already been taken")
	case strings.Contains(msg, usersrepo.UserNameConstraint):
		ve.Add("username", "username has already been taken")
	default:
		ve.Add("email", "email or username has already been taken")
	}
	return ve
}
