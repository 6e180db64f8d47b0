package helpers

import "time"

// Request/Response DTOs

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	IsStaff  bool   `json:"is_staff"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

type CreatePlateRequest struct {
	PlateNumber string    `json:"plate_number" binding:"required,max=10"`
	Description string    `json:"description" binding:"required"`
	Deadline    time.Time `json:"deadline" binding:"required"`
}

// UpdatePlateRequest uses pointers for partial-update semantics: absent
// fields stay unchanged, and is_active distinguishes false from absent.
type UpdatePlateRequest struct {
	PlateNumber *string    `json:"plate_number" binding:"omitempty,max=10"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	IsActive    *bool      `json:"is_active"`
}

type PlateResponse struct {
	ID          int64    `json:"id"`
	PlateNumber string   `json:"plate_number"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline"`
	IsActive    bool     `json:"is_active"`
	CreatedByID int64    `json:"created_by_id"`
	HighestBid  *float64 `json:"highest_bid"`
}

type PlateDetailResponse struct {
	PlateResponse
	Bids []BidResponse `json:"bids"`
}

type PlaceBidRequest struct {
	PlateID int64   `json:"plate_id" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
}

type ReviseBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	ID        int64   `json:"id"`
	Amount    float64 `json:"amount"`
	UserID    int64   `json:"user_id"`
	PlateID   int64   `json:"plate_id"`
	CreatedAt string  `json:"created_at"`
}
