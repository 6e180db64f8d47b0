package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"plate-auction/internal/auctionerrors"
	model "plate-auction/internal/models"
	"plate-auction/internal/repository"
)

// AuthService handles registration and credential exchange.
type AuthService struct {
	repo      repository.AuctionDB
	secretKey []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService instance
func NewAuthService(repo repository.AuctionDB, secretKey []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, secretKey: secretKey, tokenTTL: tokenTTL}
}

// Register creates a new user account. Usernames and emails are unique.
func (s *AuthService) Register(ctx context.Context, username, email, password string, isStaff bool) (model.User, error) {
	if username == "" || email == "" || password == "" {
		return model.User{}, fmt.Errorf("service: %w - missing username, email or password", auctionerrors.ErrInvalidInput)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, model.User{
		Username:       username,
		Email:          email,
		HashedPassword: hash,
		IsStaff:        isStaff,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to register user %s: %w", username, err)
	}
	return user, nil
}

// Login verifies credentials and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrUserNotFound) {
			return "", fmt.Errorf("service: %w", auctionerrors.ErrBadCredentials)
		}
		return "", fmt.Errorf("service: failed to look up user %s: %w", username, err)
	}

	if !CheckPassword(password, user.HashedPassword) {
		return "", fmt.Errorf("service: %w", auctionerrors.ErrBadCredentials)
	}

	token, err := GenerateToken(Principal{UserID: user.ID, IsStaff: user.IsStaff}, s.secretKey, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("service: failed to sign token: %w", err)
	}
	return token, nil
}

// PrincipalFromBearer validates a bearer token against the service secret.
func (s *AuthService) PrincipalFromBearer(token string) (Principal, error) {
	return PrincipalFromToken(token, s.secretKey)
}
