package registration

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/XVDel0Saint/fameconnect/internal/server/models"
)

const (
	maxFieldLength    = 255
	minPasswordLength = 8

	// MaxBrochureBytes caps brochure uploads at 2048 KB.
	MaxBrochureBytes = 2048 << 10
)

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	userNamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	yearPattern     = regexp.MustCompile(`^[0-9]{4}$`)

	brochureExtensions = map[string]struct{}{
		".pdf":  {},
		".doc":  {},
		".docx": {},
	}
)

// nowFunc is a seam so tests can pin the current year.
var nowFunc = time.Now

// validate applies every static constraint and returns the accumulated
// violations. Uniqueness checks need the database and live in the service.
func validate(in *Input) FieldErrors {
	ve := FieldErrors{}

	requireBounded(ve, "first_name", in.FirstName)
	requireBounded(ve, "last_name", in.LastName)

	switch {
	case in.Email == "":
		ve.Add("email", "email is required")
	case !emailPattern.MatchString(in.Email):
		ve.Add("email", "email must be a valid email address")
	}

	switch {
	case in.UserName == "":
		ve.Add("username", "username is required")
	case !userNamePattern.MatchString(in.UserName):
		ve.Add("username", "username may only contain letters and numbers")
	}

	if in.Password == "" {
		ve.Add("password", "password is required")
	} else {
		if len(in.Password) < minPasswordLength {
			ve.Add("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
		}
		if in.Password != in.PasswordConfirmation {
			ve.Add("password", "password confirmation does not match")
		}
	}

	switch {
	case in.ParticipationType == "":
		ve.Add("participation_type", "participation type is required")
	case !models.ValidParticipationType(in.ParticipationType):
		ve.Add("participation_type", "participation type must be buyer, exhibitor or visitor")
	}

	requireBounded(ve, "company_name", in.CompanyName)
	requireBounded(ve, "address_line", in.AddressLine)
	requireBounded(ve, "city", in.City)
	requireBounded(ve, "region", in.Region)
	requireBounded(ve, "country", in.Country)

	validateYear(ve, in.YearEstablished)

	if in.Website != "" {
		u, err := url.Parse(in.Website)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			ve.Add("website", "website must be a valid URL")
		}
	}

	if in.Brochure != nil {
		validateBrochure(ve, in.Brochure)
	}

	return ve
}

func requireBounded(ve FieldErrors, field, value string) {
	name := strings.ReplaceAll(field, "_", " ")
	if value == "" {
		ve.Add(field, name+" is required")
		return
	}
	if len(value) > maxFieldLength {
		ve.Add(field, fmt.Sprintf("%s must not exceed %d characters", name, maxFieldLength))
	}
}

func validateYear(ve FieldErrors, year string) {
	if year == "" {
		ve.Add("year_established", "year established is required")
		return
	}
	if !yearPattern.MatchString(year) {
		ve.Add("year_established", "year established must be a 4-digit year")
		return
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		ve.Add("year_established", "year established must be a 4-digit year")
		return
	}
	if current := nowFunc().Year(); n > current {
		ve.Add("year_established", fmt.Sprintf("year established must not be later than %d", current))
	}
}

func validateBrochure(ve FieldErrors, up *Upload) {
	ext := strings.ToLower(filepath.Ext(up.FileName))
	if _, ok := brochureExtensions[ext]; !ok {
		ve.Add("brochure", "brochure must be a pdf, doc or docx file")
	}
	if up.Size > MaxBrochureBytes {
		ve.Add("brochure", "brochure may not be larger than 2048 kilobytes")
	}
}
