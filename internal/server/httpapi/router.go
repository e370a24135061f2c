// Package httpapi exposes the public HTTP surface: the registration endpoint
// and the static country list.
package httpapi

import (
	"context"
	"net/http"

	"github.com/XVDel0Saint/fameconnect/internal/logging"
	"github.com/XVDel0Saint/fameconnect/internal/server/models"
	"github.com/XVDel0Saint/fameconnect/internal/server/registration"
	"github.com/gin-gonic/gin"
)

// Registrar is the slice of the registration service the handlers need.
type Registrar interface {
	Register(ctx context.Context, in *registration.Input) (*models.User, error)
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(svc Registrar, logger logging.Logger, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(corsOrigin))

	h := &handlers{svc: svc, logger: logger.With("module", "httpapi")}

	r.POST("/register", h.register)
	r.GET("/countries", h.countries)

	return r
}

// corsMiddleware allows the registration front-end origin to call the API.
func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
