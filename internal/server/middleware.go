package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	handler "plate-auction/services/auction/handler"
	"plate-auction/services/auction/helpers"
	"plate-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequired validates the bearer token and stores the principal on the
// request context. Requests without a valid token are rejected with 401.
func AuthRequired(verifier handler.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("missing bearer token"), "authentication required")
			c.Abort()
			return
		}

		principal, err := verifier.PrincipalFromBearer(strings.TrimPrefix(header, prefix))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid token")
			c.Abort()
			return
		}

		helpers.SetPrincipal(c, principal)
		c.Next()
	}
}

// StaffOnly rejects requests whose principal lacks the staff capability.
func StaffOnly(c *gin.Context) {
	principal, ok := helpers.GetPrincipal(c)
	if !ok || !principal.IsStaff {
		utils.JSONError(c, http.StatusForbidden, errors.New("staff capability required"), "you are not allowed to do this")
		c.Abort()
		return
	}
	c.Next()
}

// NonStaffOnly rejects staff principals: staff manage listings and never bid.
func NonStaffOnly(c *gin.Context) {
	principal, ok := helpers.GetPrincipal(c)
	if !ok || principal.IsStaff {
		utils.JSONError(c, http.StatusForbidden, errors.New("bidder capability required"), "you are not allowed to do this")
		c.Abort()
		return
	}
	c.Next()
}
