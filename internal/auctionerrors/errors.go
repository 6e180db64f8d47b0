package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrPlateNotFound = errors.New("plate not found")
	ErrBidNotFound   = errors.New("bid not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNoBids        = errors.New("no bids found for plate")
)

// Uniqueness violations
var (
	ErrPlateNumberTaken = errors.New("plate number already exists")
	ErrDuplicateBid     = errors.New("user already has a bid on this plate")
	ErrUsernameTaken    = errors.New("username already registered")
)

// business logic errors
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrBidTooLow      = errors.New("bid must exceed current highest bid")
	ErrBiddingClosed  = errors.New("bidding is closed")
	ErrPlateHasBids   = errors.New("cannot delete plate with bids")
	ErrForbidden      = errors.New("operation not permitted")
	ErrBadCredentials = errors.New("incorrect username or password")
)
