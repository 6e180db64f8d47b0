package plates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"plate-auction/internal/auctionerrors"
	model "plate-auction/internal/models"
	"plate-auction/internal/repository"
)

// Notifier receives committed plate mutations for fan-out. Implementations
// must not block and must never surface delivery errors to the caller.
type Notifier interface {
	PlateChanged(action string, plate model.Plate)
}

// PlateUpdate carries partial-update fields. Nil means "leave unchanged";
// IsActive in particular distinguishes present-false from absent.
type PlateUpdate struct {
	PlateNumber *string
	Description *string
	Deadline    *time.Time
	IsActive    *bool
}

// PlateWithHighestBid annotates a plate with its derived highest bid,
// nil when the plate has no bids. The value is computed at read time and
// never cached.
type PlateWithHighestBid struct {
	model.Plate
	HighestBid *float64 `json:"highest_bid"`
}

// PlateDetail is a plate with its full bid list and highest bid.
type PlateDetail struct {
	model.Plate
	HighestBid *float64    `json:"highest_bid"`
	Bids       []model.Bid `json:"bids"`
}

// ListQuery narrows and pages a plate listing.
type ListQuery struct {
	Skip                int
	Limit               int
	Ordering            string
	PlateNumberContains string
}

const maxPlateNumberLen = 10

// PlateService defines the plate lifecycle and read-aggregation logic.
type PlateService struct {
	repo     repository.AuctionDB
	notifier Notifier
	now      func() time.Time
}

// NewPlateService creates a new PlateService instance
func NewPlateService(repo repository.AuctionDB, notifier Notifier) *PlateService {
	return &PlateService{repo: repo, notifier: notifier, now: time.Now}
}

// CreatePlate registers a new listing owned by the given staff user. The
// deadline is re-validated here even though the transport layer checks it.
func (s *PlateService) CreatePlate(ctx context.Context, plateNumber, description string, deadline time.Time, staffID int64) (model.Plate, error) {
	if err := s.validatePlateNumber(plateNumber); err != nil {
		return model.Plate{}, err
	}
	if !deadline.After(s.now()) {
		return model.Plate{}, fmt.Errorf("service: %w - deadline must be in the future", auctionerrors.ErrInvalidInput)
	}

	plate, err := s.repo.CreatePlate(ctx, model.Plate{
		PlateNumber: plateNumber,
		Description: description,
		Deadline:    deadline,
		IsActive:    true,
		CreatedByID: staffID,
	})
	if err != nil {
		return model.Plate{}, fmt.Errorf("service: failed to create plate %s: %w", plateNumber, err)
	}

	s.notifier.PlateChanged("create", plate)
	return plate, nil
}

// UpdatePlate applies the provided fields to an existing plate.
func (s *PlateService) UpdatePlate(ctx context.Context, plateID int64, upd PlateUpdate) (model.Plate, error) {
	var plate model.Plate
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.AuctionDB) error {
		current, err := tx.GetPlateForUpdate(ctx, plateID)
		if err != nil {
			return err
		}

		if upd.PlateNumber != nil && *upd.PlateNumber != current.PlateNumber {
			if err := s.validatePlateNumber(*upd.PlateNumber); err != nil {
				return err
			}
			if _, err := tx.GetPlateByNumber(ctx, *upd.PlateNumber); err == nil {
				return fmt.Errorf("update plate %d: %w", plateID, auctionerrors.ErrPlateNumberTaken)
			} else if !errors.Is(err, auctionerrors.ErrPlateNotFound) {
				return err
			}
			current.PlateNumber = *upd.PlateNumber
		}
		if upd.Description != nil {
			current.Description = *upd.Description
		}
		if upd.Deadline != nil {
			if !upd.Deadline.After(s.now()) {
				return fmt.Errorf("service: %w - deadline must be in the future", auctionerrors.ErrInvalidInput)
			}
			current.Deadline = *upd.Deadline
		}
		if upd.IsActive != nil {
			current.IsActive = *upd.IsActive
		}

		plate, err = tx.UpdatePlate(ctx, current)
		return err
	})
	if err != nil {
		return model.Plate{}, fmt.Errorf("service: failed to update plate %d: %w", plateID, err)
	}

	s.notifier.PlateChanged("update", plate)
	return plate, nil
}

// DeletePlate removes a listing. The guard is absolute: a plate with any
// bids cannot be deleted, preserving bid history.
func (s *PlateService) DeletePlate(ctx context.Context, plateID int64) error {
	var plate model.Plate
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.AuctionDB) error {
		current, err := tx.GetPlateForUpdate(ctx, plateID)
		if err != nil {
			return err
		}

		count, err := tx.CountBidsByPlate(ctx, plateID)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("delete plate %d: %w", plateID, auctionerrors.ErrPlateHasBids)
		}

		plate = current
		return tx.DeletePlate(ctx, plateID)
	})
	if err != nil {
		return fmt.Errorf("service: failed to delete plate %d: %w", plateID, err)
	}

	s.notifier.PlateChanged("delete", plate)
	return nil
}

// ListPlates returns listings annotated with their current highest bid.
func (s *PlateService) ListPlates(ctx context.Context, q ListQuery) ([]PlateWithHighestBid, error) {
	list, err := s.repo.ListPlates(ctx, repository.PlateFilter{
		Skip:                q.Skip,
		Limit:               q.Limit,
		Ordering:            q.Ordering,
		PlateNumberContains: q.PlateNumberContains,
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list plates: %w", err)
	}

	result := make([]PlateWithHighestBid, 0, len(list))
	for _, p := range list {
		highest, err := s.highestBid(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, PlateWithHighestBid{Plate: p, HighestBid: highest})
	}
	return result, nil
}

// GetPlateDetail returns the plate, its bid list and the highest bid.
func (s *PlateService) GetPlateDetail(ctx context.Context, plateID int64) (PlateDetail, error) {
	plate, err := s.repo.GetPlate(ctx, plateID)
	if err != nil {
		return PlateDetail{}, fmt.Errorf("service: failed to get plate %d: %w", plateID, err)
	}

	bidList, err := s.repo.ListBidsByPlate(ctx, plateID)
	if err != nil {
		return PlateDetail{}, fmt.Errorf("service: failed to list bids for plate %d: %w", plateID, err)
	}

	highest, err := s.highestBid(ctx, plateID)
	if err != nil {
		return PlateDetail{}, err
	}

	return PlateDetail{Plate: plate, HighestBid: highest, Bids: bidList}, nil
}

func (s *PlateService) highestBid(ctx context.Context, plateID int64) (*float64, error) {
	highest, err := s.repo.HighestBid(ctx, plateID, 0)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			return nil, nil
		}
		return nil, fmt.Errorf("service: failed to get highest bid for plate %d: %w", plateID, err)
	}
	return &highest, nil
}

func (s *PlateService) validatePlateNumber(plateNumber string) error {
	if plateNumber == "" || len(plateNumber) > maxPlateNumberLen {
		return fmt.Errorf("service: %w - plate number must be 1-%d characters", auctionerrors.ErrInvalidInput, maxPlateNumberLen)
	}
	return nil
}
