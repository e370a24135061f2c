package httpapi

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/XVDel0Saint/fameconnect/internal/logging"
	"github.com/XVDel0Saint/fameconnect/internal/server/countries"
	"github.com/XVDel0Saint/fameconnect/internal/server/registration"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	svc    Registrar
	logger logging.Logger
}

// registerForm mirrors the multipart field names of the registration payload.
type registerForm struct {
	FirstName            string                `form:"first_name"`
	LastName             string                `form:"last_name"`
	Email                string                `form:"email"`
	UserName             string                `form:"username"`
	Password             string                `form:"password"`
	PasswordConfirmation string                `form:"password_confirmation"`
	ParticipationType    string                `form:"participation_type"`
	CompanyName          string                `form:"company_name"`
	AddressLine          string                `form:"address_line"`
	City                 string                `form:"city"`
	Region               string                `form:"region"`
	Country              string                `form:"country"`
	YearEstablished      string                `form:"year_established"`
	Website              string                `form:"website"`
	Brochure             *multipart.FileHeader `form:"brochure"`
}

// register handles POST /register: one combined multipart payload, one
// transactional write. 201 on success, 422 with per-field messages on
// validation failure, 500 otherwise.
func (h *handlers) register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid form payload"})
		return
	}

	in := &registration.Input{
		FirstName:            form.FirstName,
		LastName:             form.LastName,
		Email:                form.Email,
		UserName:             form.UserName,
		Password:             form.Password,
		PasswordConfirmation: form.PasswordConfirmation,
		ParticipationType:    form.ParticipationType,
		CompanyName:          form.CompanyName,
		AddressLine:          form.AddressLine,
		City:                 form.City,
		Region:               form.Region,
		Country:              form.Country,
		YearEstablished:      form.YearEstablished,
		Website:              form.Website,
	}

	if form.Brochure != nil {
		f, err := form.Brochure.Open()
		if err != nil {
			h.logger.Error(c.Request.Context(), "opening brochure upload", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"message": "registration failed"})
			return
		}
		defer f.Close()

		in.Brochure = &registration.Upload{
			FileName: form.Brochure.Filename,
			Size:     form.Brochure.Size,
			Content:  f,
		}
	}

	if _, err := h.svc.Register(c.Request.Context(), in); err != nil {
		var ve registration.FieldErrors
		if errors.As(err, &ve) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "The given data was invalid.",
				"errors":  ve,
			})
			return
		}

		h.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration completed successfully",
	})
}

// countries handles GET /countries: the fixed reference list.
func (h *handlers) countries(c *gin.Context) {
	c.JSON(http.StatusOK, countries.All())
}
