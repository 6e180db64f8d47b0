package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"plate-auction/internal/auctionerrors"
	"plate-auction/internal/auth"
	"plate-auction/utils"

	"github.com/gin-gonic/gin"
)

// principalKey is the gin context key the auth middleware stores the
// authenticated principal under.
const principalKey = "principal"

// SetPrincipal stores the authenticated principal on the request context.
func SetPrincipal(c *gin.Context, p auth.Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns the authenticated principal, if any.
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrPlateNotFound):
		return http.StatusNotFound, "plate not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "operation not permitted"
	case errors.Is(err, auctionerrors.ErrBadCredentials):
		return http.StatusUnauthorized, "incorrect username or password"
	case errors.Is(err, auctionerrors.ErrPlateNumberTaken):
		return http.StatusConflict, "plate number already exists"
	case errors.Is(err, auctionerrors.ErrDuplicateBid):
		return http.StatusConflict, "you already have a bid on this plate"
	case errors.Is(err, auctionerrors.ErrUsernameTaken):
		return http.StatusConflict, "username already registered"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid must exceed current highest bid"
	case errors.Is(err, auctionerrors.ErrBiddingClosed):
		return http.StatusConflict, "bidding is closed"
	case errors.Is(err, auctionerrors.ErrPlateHasBids):
		return http.StatusConflict, "cannot delete plate with bids"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
