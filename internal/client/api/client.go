// Package api implements the HTTP client for the registration service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/XVDel0Saint/fameconnect/internal/client/models"
)

// Country is one (code, display name) pair from the reference list.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RegisterResult reports the server's verdict on one submission attempt.
// Exactly one of Success or FieldErrors is meaningful.
type RegisterResult struct {
	Success     bool
	Message     string
	FieldErrors map[string][]string
}

// Client talks to the registration HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the given base URL, e.g.
// "http://localhost:8080". A non-positive timeout disables the per-request
// deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout < 0 {
		timeout = 0
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Register submits the staged form as one multipart payload. Validation
// failures are returned inside the result, not as an error; errors are
// reserved for transport and unexpected server failures.
func (c *Client) Register(ctx context.Context, state models.FormState) (*RegisterResult, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := map[string]string{
		"first_name":            state.Account.FirstName,
		"last_name":             state.Account.LastName,
		"email":                 state.Account.Email,
		"username":              state.Account.UserName,
		"password":              state.Account.Password,
		"password_confirmation": state.Account.PasswordConfirmation,
		"participation_type":    state.Account.ParticipationType,
		"company_name":          state.Company.CompanyName,
		"address_line":          state.Company.AddressLine,
		"city":                  state.Company.City,
		"region":                state.Company.Region,
		"country":               state.Company.Country,
		"year_established":      state.Company.YearEstablished,
		"website":               state.Company.Website,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write form field: %w", err)
		}
	}

	if state.Company.BrochurePath != "" {
		if err := attachFile(w, "brochure", state.Company.BrochurePath); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/register", body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var ok struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &RegisterResult{Success: true, Message: ok.Message}, nil

	case http.StatusUnprocessableEntity:
		var invalid struct {
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&invalid); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &RegisterResult{Message: invalid.Message, FieldErrors: invalid.Errors}, nil

	default:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}

// Countries fetches the reference country list.
func (c *Client) Countries(ctx context.Context) ([]Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/countries", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var countries []Country
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return countries, nil
}

func attachFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open brochure file: %w", err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to attach brochure file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to attach brochure file: %w", err)
	}
	return nil
}
