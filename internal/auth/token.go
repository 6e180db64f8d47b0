package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Principal is the authenticated identity the rest of the system consumes.
type Principal struct {
	UserID  int64
	IsStaff bool
}

// Claims carries the principal inside an HS256 JWT.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int64 `json:"user_id"`
	IsStaff bool  `json:"is_staff"`
}

// GenerateToken mints a signed token for the principal.
func GenerateToken(p Principal, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID:  p.UserID,
		IsStaff: p.IsStaff,
	})

	return token.SignedString(secretKey)
}

// PrincipalFromToken validates the token string and extracts the principal.
func PrincipalFromToken(tokenString string, secretKey []byte) (Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return Principal{}, ErrInvalidToken
	}
	if !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	return Principal{UserID: claims.UserID, IsStaff: claims.IsStaff}, nil
}
