package models

import "time"

// User is a registered account. Staff users manage plate listings;
// non-staff users place bids. The two capability classes are disjoint.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"`
	IsStaff        bool   `json:"is_staff"`
}

// Plate is an auctionable license-plate listing
type Plate struct {
	ID          int64     `json:"id"`
	PlateNumber string    `json:"plate_number"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	IsActive    bool      `json:"is_active"`
	CreatedByID int64     `json:"created_by_id"`
}

// Bid is a user's single offer on a plate. A user holds at most one bid
// per plate and raises it in place instead of stacking new ones.
type Bid struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	UserID    int64     `json:"user_id"`
	PlateID   int64     `json:"plate_id"`
	CreatedAt time.Time `json:"created_at"`
}
