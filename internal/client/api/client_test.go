package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/XVDel0Saint/fameconnect/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stagedState() models.FormState {
	state := models.DefaultFormState()
	state.Account = models.AccountForm{
		FirstName:            "Ana",
		LastName:             "Reyes",
		Email:                "ana@example.com",
		UserName:             "anareyes",
		Password:             "sup3rsecret",
		PasswordConfirmation: "sup3rsecret",
		ParticipationType:    "exhibitor",
	}
	state.Company = models.CompanyForm{
		CompanyName:     "Acme Exhibits",
		AddressLine:     "12 Fair St",
		City:            "Pasay",
		Region:          "NCR",
		Country:         "PH",
		YearEstablished: "2001",
	}
	return state
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/register", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(4<<20))
		assert.Equal(t, "ana@example.com", r.FormValue("email"))
		assert.Equal(t, "anareyes", r.FormValue("username"))
		assert.Equal(t, "Acme Exhibits", r.FormValue("company_name"))
		assert.Equal(t, "2001", r.FormValue("year_established"))
		_, _, err := r.FormFile("brochure")
		assert.ErrorIs(t, err, http.ErrMissingFile)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"Registration completed successfully"}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, 5*time.Second).Register(context.Background(), stagedState())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Registration completed successfully", res.Message)
	assert.Empty(t, res.FieldErrors)
}

func TestRegister_ForwardsBrochure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brochure.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 demo"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(4<<20))
		_, header, err := r.FormFile("brochure")
		require.NoError(t, err)
		assert.Equal(t, "brochure.pdf", header.Filename)
		assert.Equal(t, int64(len("%PDF-1.4 demo")), header.Size)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"Registration completed successfully"}`))
	}))
	defer srv.Close()

	state := stagedState()
	state.Company.BrochurePath = path

	res, err := NewClient(srv.URL, 5*time.Second).Register(context.Background(), state)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestRegister_MissingBrochureFile(t *testing.T) {
	state := stagedState()
	state.Company.BrochurePath = filepath.Join(t.TempDir(), "gone.pdf")

	_, err := NewClient("http://localhost:0", 5*time.Second).Register(context.Background(), state)
	assert.ErrorContains(t, err, "failed to open brochure file")
}

func TestRegister_ValidationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"The given data was invalid.","errors":{"email":["The email has already been taken."]}}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, 5*time.Second).Register(context.Background(), stagedState())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "The given data was invalid.", res.Message)
	assert.Equal(t, []string{"The email has already been taken."}, res.FieldErrors["email"])
}

func TestRegister_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 5*time.Second).Register(context.Background(), stagedState())
	assert.ErrorContains(t, err, "unexpected status 500")
}

func TestCountries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/countries", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"code":"PH","name":"Philippines"},{"code":"US","name":"United States"}]`))
	}))
	defer srv.Close()

	countries, err := NewClient(srv.URL, 5*time.Second).Countries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, Country{Code: "PH", Name: "Philippines"}, countries[0])
}
