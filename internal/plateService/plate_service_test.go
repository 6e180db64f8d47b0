package plates

import (
	"context"
	"sync"
	"testing"
	"time"

	"plate-auction/internal/auctionerrors"
	model "plate-auction/internal/models"
	"plate-auction/internal/repository"

	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	action string
	plate  model.Plate
}

func (r *recordingNotifier) PlateChanged(action string, plate model.Plate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{action: action, plate: plate})
}

func (r *recordingNotifier) recorded() []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedEvent(nil), r.events...)
}

func newTestService(t *testing.T) (*PlateService, *repository.MemoryRepo, *recordingNotifier) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	notifier := &recordingNotifier{}
	return NewPlateService(repo, notifier), repo, notifier
}

// Tests CreatePlate
func TestPlateService_CreatePlate(t *testing.T) {
	ctx := context.Background()
	deadline := time.Now().Add(time.Hour)

	tests := []struct {
		name          string
		plateNumber   string
		deadline      time.Time
		seed          func(t *testing.T, svc *PlateService)
		expectedError error
	}{
		{
			name:        "valid_plate",
			plateNumber: "AB123",
			deadline:    deadline,
		},
		{
			name:        "code_at_max_length",
			plateNumber: "ABCDEFGHIJ",
			deadline:    deadline,
		},
		{
			name:          "code_too_long",
			plateNumber:   "ABCDEFGHIJK",
			deadline:      deadline,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "empty_code",
			plateNumber:   "",
			deadline:      deadline,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "past_deadline",
			plateNumber:   "AB123",
			deadline:      time.Now().Add(-time.Hour),
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:        "duplicate_code_fails_conflict",
			plateNumber: "AB123",
			deadline:    deadline,
			seed: func(t *testing.T, svc *PlateService) {
				_, err := svc.CreatePlate(ctx, "AB123", "taken", deadline, 1)
				require.NoError(t, err)
			},
			expectedError: auctionerrors.ErrPlateNumberTaken,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)
			if tc.seed != nil {
				tc.seed(t, svc)
			}

			plate, err := svc.CreatePlate(ctx, tc.plateNumber, "a nice plate", tc.deadline, 7)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.plateNumber, plate.PlateNumber)
			require.True(t, plate.IsActive, "new plates start active")
			require.Equal(t, int64(7), plate.CreatedByID)
		})
	}
}

// Tests UpdatePlate
func TestPlateService_UpdatePlate(t *testing.T) {
	ctx := context.Background()
	deadline := time.Now().Add(time.Hour)

	strptr := func(s string) *string { return &s }
	boolptr := func(b bool) *bool { return &b }

	t.Run("partial_update_keeps_absent_fields", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		plate, err := svc.CreatePlate(ctx, "AB123", "original", deadline, 1)
		require.NoError(t, err)

		updated, err := svc.UpdatePlate(ctx, plate.ID, PlateUpdate{Description: strptr("changed")})
		require.NoError(t, err)
		require.Equal(t, "changed", updated.Description)
		require.Equal(t, "AB123", updated.PlateNumber)
		require.True(t, updated.IsActive)
		require.Equal(t, plate.Deadline, updated.Deadline)
	})

	t.Run("is_active_false_is_applied", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		plate, err := svc.CreatePlate(ctx, "AB123", "original", deadline, 1)
		require.NoError(t, err)

		updated, err := svc.UpdatePlate(ctx, plate.ID, PlateUpdate{IsActive: boolptr(false)})
		require.NoError(t, err)
		require.False(t, updated.IsActive)
	})

	t.Run("code_collision_fails_conflict", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.CreatePlate(ctx, "AB123", "first", deadline, 1)
		require.NoError(t, err)
		other, err := svc.CreatePlate(ctx, "CD456", "second", deadline, 1)
		require.NoError(t, err)

		_, err = svc.UpdatePlate(ctx, other.ID, PlateUpdate{PlateNumber: strptr("AB123")})
		require.ErrorIs(t, err, auctionerrors.ErrPlateNumberTaken)
	})

	t.Run("same_code_is_not_a_collision", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		plate, err := svc.CreatePlate(ctx, "AB123", "first", deadline, 1)
		require.NoError(t, err)

		updated, err := svc.UpdatePlate(ctx, plate.ID, PlateUpdate{PlateNumber: strptr("AB123")})
		require.NoError(t, err)
		require.Equal(t, "AB123", updated.PlateNumber)
	})

	t.Run("past_deadline_fails_invalid", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		plate, err := svc.CreatePlate(ctx, "AB123", "first", deadline, 1)
		require.NoError(t, err)

		past := time.Now().Add(-time.Minute)
		_, err = svc.UpdatePlate(ctx, plate.ID, PlateUpdate{Deadline: &past})
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})

	t.Run("missing_plate_fails_not_found", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.UpdatePlate(ctx, 4242, PlateUpdate{Description: strptr("x")})
		require.ErrorIs(t, err, auctionerrors.ErrPlateNotFound)
	})
}

// Tests DeletePlate, in particular the has-bids guard.
func TestPlateService_DeletePlate(t *testing.T) {
	ctx := context.Background()
	deadline := time.Now().Add(time.Hour)

	t.Run("bidless_plate_is_deleted", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		plate, err := svc.CreatePlate(ctx, "AB123", "test", deadline, 1)
		require.NoError(t, err)

		require.NoError(t, svc.DeletePlate(ctx, plate.ID))

		_, err = repo.GetPlate(ctx, plate.ID)
		require.ErrorIs(t, err, auctionerrors.ErrPlateNotFound)
	})

	t.Run("plate_with_bid_fails_has_bids", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		plate, err := svc.CreatePlate(ctx, "AB123", "test", deadline, 1)
		require.NoError(t, err)

		_, err = repo.CreateBid(ctx, model.Bid{Amount: 100, UserID: 2, PlateID: plate.ID, CreatedAt: time.Now()})
		require.NoError(t, err)

		err = svc.DeletePlate(ctx, plate.ID)
		require.ErrorIs(t, err, auctionerrors.ErrPlateHasBids)

		// The guard is absolute and the plate survives.
		_, err = repo.GetPlate(ctx, plate.ID)
		require.NoError(t, err)
	})

	t.Run("guard_lifts_once_bids_are_gone", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		plate, err := svc.CreatePlate(ctx, "AB123", "test", deadline, 1)
		require.NoError(t, err)

		bid, err := repo.CreateBid(ctx, model.Bid{Amount: 100, UserID: 2, PlateID: plate.ID, CreatedAt: time.Now()})
		require.NoError(t, err)
		require.ErrorIs(t, svc.DeletePlate(ctx, plate.ID), auctionerrors.ErrPlateHasBids)

		require.NoError(t, repo.DeleteBid(ctx, bid.ID))
		require.NoError(t, svc.DeletePlate(ctx, plate.ID))
	})

	t.Run("missing_plate_fails_not_found", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		require.ErrorIs(t, svc.DeletePlate(ctx, 4242), auctionerrors.ErrPlateNotFound)
	})
}

// Tests the read aggregation: listing with highest bids and plate detail.
func TestPlateService_ListPlates(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	early := time.Now().Add(time.Hour)
	late := time.Now().Add(48 * time.Hour)

	first, err := svc.CreatePlate(ctx, "AA111", "first", late, 1)
	require.NoError(t, err)
	second, err := svc.CreatePlate(ctx, "BB222", "second", early, 1)
	require.NoError(t, err)
	_, err = svc.CreatePlate(ctx, "CC333", "third", late.Add(time.Hour), 1)
	require.NoError(t, err)

	_, err = repo.CreateBid(ctx, model.Bid{Amount: 120, UserID: 2, PlateID: first.ID, CreatedAt: time.Now()})
	require.NoError(t, err)
	_, err = repo.CreateBid(ctx, model.Bid{Amount: 90, UserID: 3, PlateID: first.ID, CreatedAt: time.Now()})
	require.NoError(t, err)

	t.Run("highest_bid_annotation", func(t *testing.T) {
		list, err := svc.ListPlates(ctx, ListQuery{Limit: 100})
		require.NoError(t, err)
		require.Len(t, list, 3)

		byID := map[int64]PlateWithHighestBid{}
		for _, p := range list {
			byID[p.ID] = p
		}
		require.NotNil(t, byID[first.ID].HighestBid)
		require.Equal(t, 120.0, *byID[first.ID].HighestBid)
		require.Nil(t, byID[second.ID].HighestBid, "plate without bids has null highest bid")
	})

	t.Run("deadline_ordering", func(t *testing.T) {
		asc, err := svc.ListPlates(ctx, ListQuery{Limit: 100, Ordering: repository.OrderDeadlineAsc})
		require.NoError(t, err)
		require.Equal(t, second.ID, asc[0].ID)

		desc, err := svc.ListPlates(ctx, ListQuery{Limit: 100, Ordering: repository.OrderDeadlineDesc})
		require.NoError(t, err)
		require.Equal(t, second.ID, desc[len(desc)-1].ID)
	})

	t.Run("code_filter", func(t *testing.T) {
		list, err := svc.ListPlates(ctx, ListQuery{Limit: 100, PlateNumberContains: "B2"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "BB222", list[0].PlateNumber)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := svc.ListPlates(ctx, ListQuery{Skip: 1, Limit: 1, Ordering: repository.OrderDeadlineAsc})
		require.NoError(t, err)
		require.Len(t, page, 1)
		require.Equal(t, first.ID, page[0].ID)
	})
}

func TestPlateService_GetPlateDetail(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	plate, err := svc.CreatePlate(ctx, "AB123", "test", time.Now().Add(time.Hour), 1)
	require.NoError(t, err)
	_, err = repo.CreateBid(ctx, model.Bid{Amount: 100, UserID: 2, PlateID: plate.ID, CreatedAt: time.Now()})
	require.NoError(t, err)
	_, err = repo.CreateBid(ctx, model.Bid{Amount: 150, UserID: 3, PlateID: plate.ID, CreatedAt: time.Now()})
	require.NoError(t, err)

	detail, err := svc.GetPlateDetail(ctx, plate.ID)
	require.NoError(t, err)
	require.Equal(t, plate.ID, detail.ID)
	require.Len(t, detail.Bids, 2)
	require.NotNil(t, detail.HighestBid)
	require.Equal(t, 150.0, *detail.HighestBid)

	_, err = svc.GetPlateDetail(ctx, 4242)
	require.ErrorIs(t, err, auctionerrors.ErrPlateNotFound)
}

func TestPlateService_Notifications(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestService(t)

	plate, err := svc.CreatePlate(ctx, "AB123", "test", time.Now().Add(time.Hour), 1)
	require.NoError(t, err)

	active := false
	_, err = svc.UpdatePlate(ctx, plate.ID, PlateUpdate{IsActive: &active})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlate(ctx, plate.ID))

	events := notifier.recorded()
	require.Len(t, events, 3)
	require.Equal(t, "create", events[0].action)
	require.Equal(t, "update", events[1].action)
	require.Equal(t, "delete", events[2].action)
	require.Equal(t, plate.ID, events[2].plate.ID)
}
