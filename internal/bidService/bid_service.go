package bids

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"plate-auction/internal/auctionerrors"
	model "plate-auction/internal/models"
	"plate-auction/internal/repository"
)

// Notifier receives committed bid mutations for fan-out. Implementations
// must not block and must never surface delivery errors to the caller.
type Notifier interface {
	BidChanged(action string, bid model.Bid)
}

// BidService defines the business logic for bidding on plates.
//
// Every mutation runs its read-validate-write sequence inside one WithTx
// section whose first read locks the target plate, so two concurrent bids
// can never both pass the highest-bid check against stale state.
type BidService struct {
	repo     repository.AuctionDB
	notifier Notifier
	now      func() time.Time
}

// NewBidService creates a new BidService instance
func NewBidService(repo repository.AuctionDB, notifier Notifier) *BidService {
	return &BidService{repo: repo, notifier: notifier, now: time.Now}
}

// PlaceBid validates and records a user's first bid on a plate.
func (s *BidService) PlaceBid(ctx context.Context, plateID, userID int64, amount float64) (model.Bid, error) {
	amount, err := normalizeAmount(amount)
	if err != nil {
		return model.Bid{}, err
	}

	var bid model.Bid
	err = s.repo.WithTx(ctx, func(ctx context.Context, tx repository.AuctionDB) error {
		plate, err := tx.GetPlateForUpdate(ctx, plateID)
		if err != nil {
			return err
		}
		if err := s.checkOpen(plate); err != nil {
			return err
		}

		if _, err := tx.GetBidByUserAndPlate(ctx, userID, plateID); err == nil {
			return fmt.Errorf("place bid on plate %d: %w", plateID, auctionerrors.ErrDuplicateBid)
		} else if !errors.Is(err, auctionerrors.ErrBidNotFound) {
			return err
		}

		if err := s.checkExceedsHighest(ctx, tx, plateID, 0, amount); err != nil {
			return err
		}

		bid, err = tx.CreateBid(ctx, model.Bid{
			Amount:    amount,
			UserID:    userID,
			PlateID:   plateID,
			CreatedAt: s.now().UTC(),
		})
		return err
	})
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to place bid on plate %d by user %d: %w", plateID, userID, err)
	}

	s.notifier.BidChanged("create", bid)
	return bid, nil
}

// ReviseBid raises (or lowers, within the highest-bid rule) the user's
// existing bid in place. The creation timestamp is unchanged.
func (s *BidService) ReviseBid(ctx context.Context, bidID, userID int64, amount float64) (model.Bid, error) {
	amount, err := normalizeAmount(amount)
	if err != nil {
		return model.Bid{}, err
	}

	var bid model.Bid
	err = s.repo.WithTx(ctx, func(ctx context.Context, tx repository.AuctionDB) error {
		current, err := tx.GetBid(ctx, bidID)
		if err != nil {
			return err
		}
		if current.UserID != userID {
			return fmt.Errorf("revise bid %d: %w", bidID, auctionerrors.ErrForbidden)
		}

		plate, err := tx.GetPlateForUpdate(ctx, current.PlateID)
		if err != nil {
			return err
		}
		if err := s.checkOpen(plate); err != nil {
			return err
		}

		// The user's own bid is excluded: revising down to just above the
		// runner-up is allowed.
		if err := s.checkExceedsHighest(ctx, tx, current.PlateID, bidID, amount); err != nil {
			return err
		}

		bid, err = tx.UpdateBidAmount(ctx, bidID, amount)
		return err
	})
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to revise bid %d by user %d: %w", bidID, userID, err)
	}

	s.notifier.BidChanged("update", bid)
	return bid, nil
}

// WithdrawBid deletes the user's bid while the plate is still open.
func (s *BidService) WithdrawBid(ctx context.Context, bidID, userID int64) error {
	var bid model.Bid
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.AuctionDB) error {
		current, err := tx.GetBid(ctx, bidID)
		if err != nil {
			return err
		}
		if current.UserID != userID {
			return fmt.Errorf("withdraw bid %d: %w", bidID, auctionerrors.ErrForbidden)
		}

		plate, err := tx.GetPlateForUpdate(ctx, current.PlateID)
		if err != nil {
			return err
		}
		if err := s.checkOpen(plate); err != nil {
			return err
		}

		bid = current
		return tx.DeleteBid(ctx, bidID)
	})
	if err != nil {
		return fmt.Errorf("service: failed to withdraw bid %d by user %d: %w", bidID, userID, err)
	}

	s.notifier.BidChanged("delete", bid)
	return nil
}

// GetBid returns a single bid, restricted to its owner.
func (s *BidService) GetBid(ctx context.Context, bidID, userID int64) (model.Bid, error) {
	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get bid %d: %w", bidID, err)
	}
	if bid.UserID != userID {
		return model.Bid{}, fmt.Errorf("service: get bid %d: %w", bidID, auctionerrors.ErrForbidden)
	}
	return bid, nil
}

// ListUserBids returns every bid placed by the given user. Order is
// storage-defined.
func (s *BidService) ListUserBids(ctx context.Context, userID int64, skip, limit int) ([]model.Bid, error) {
	bids, err := s.repo.ListBidsByUser(ctx, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for user %d: %w", userID, err)
	}
	return bids, nil
}

// checkOpen rejects mutations on inactive plates or plates whose deadline
// has passed. Freshness is evaluated against wall clock at mutation time.
func (s *BidService) checkOpen(plate model.Plate) error {
	if !plate.IsActive || !plate.Deadline.After(s.now()) {
		return fmt.Errorf("plate %d: %w", plate.ID, auctionerrors.ErrBiddingClosed)
	}
	return nil
}

// checkExceedsHighest enforces the strictly-greater-than rule: equal amounts
// lose, which makes ties impossible. Having no prior bid always passes.
func (s *BidService) checkExceedsHighest(ctx context.Context, tx repository.AuctionDB, plateID, excludeBidID int64, amount float64) error {
	highest, err := tx.HighestBid(ctx, plateID, excludeBidID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			return nil
		}
		return err
	}
	if amount <= highest {
		return fmt.Errorf("%w - current highest bid is %.2f", auctionerrors.ErrBidTooLow, highest)
	}
	return nil
}

// normalizeAmount validates a bid amount and rounds it to cents, matching
// the ledger's two-decimal precision.
func normalizeAmount(amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}
	return math.Round(amount*100) / 100, nil
}
