package repository

import (
	"context"

	model "plate-auction/internal/models"
)

// Plate list ordering values accepted by ListPlates. The empty string
// leaves ordering up to the store and must not be relied upon.
const (
	OrderNone         = ""
	OrderDeadlineAsc  = "deadline"
	OrderDeadlineDesc = "-deadline"
)

// PlateFilter narrows and pages a plate listing.
type PlateFilter struct {
	Skip                int
	Limit               int
	Ordering            string
	PlateNumberContains string
}

// AuctionDB defines the ledger storage interface for the auction system.
//
// Every mutating business operation runs inside WithTx: the closure receives
// a transactional handle, and validation reads made through that handle
// observe the exact state the closing writes commit against. GetPlateForUpdate
// additionally locks the plate so concurrent bids on one plate serialize.
type AuctionDB interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx AuctionDB) error) error

	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	CreatePlate(ctx context.Context, plate model.Plate) (model.Plate, error)
	GetPlate(ctx context.Context, id int64) (model.Plate, error)
	GetPlateForUpdate(ctx context.Context, id int64) (model.Plate, error)
	GetPlateByNumber(ctx context.Context, plateNumber string) (model.Plate, error)
	UpdatePlate(ctx context.Context, plate model.Plate) (model.Plate, error)
	DeletePlate(ctx context.Context, id int64) error
	ListPlates(ctx context.Context, filter PlateFilter) ([]model.Plate, error)

	CreateBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	GetBid(ctx context.Context, id int64) (model.Bid, error)
	GetBidByUserAndPlate(ctx context.Context, userID, plateID int64) (model.Bid, error)
	UpdateBidAmount(ctx context.Context, id int64, amount float64) (model.Bid, error)
	DeleteBid(ctx context.Context, id int64) error
	ListBidsByPlate(ctx context.Context, plateID int64) ([]model.Bid, error)
	ListBidsByUser(ctx context.Context, userID int64, skip, limit int) ([]model.Bid, error)

	// HighestBid returns the maximum bid amount on a plate, skipping the bid
	// with id excludeBidID when it is non-zero. Returns ErrNoBids when no
	// qualifying bid exists.
	HighestBid(ctx context.Context, plateID, excludeBidID int64) (float64, error)
	CountBidsByPlate(ctx context.Context, plateID int64) (int, error)
}
