package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"plate-auction/internal/auctionerrors"
	model "plate-auction/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// It backs the test suites and the DSN-less development mode.
type MemoryRepo struct {
	mu    sync.RWMutex
	state *memoryState
}

type memoryState struct {
	users  map[int64]model.User
	plates map[int64]model.Plate
	bids   map[int64]model.Bid

	plateOrder []int64 // insertion order, the store's default listing order
	bidOrder   []int64

	nextUserID  int64
	nextPlateID int64
	nextBidID   int64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{state: &memoryState{
		users:  make(map[int64]model.User),
		plates: make(map[int64]model.Plate),
		bids:   make(map[int64]model.Bid),
	}}
}

// WithTx runs fn while holding the store's write lock, so the reads fn makes
// through the handle and the writes it commits form one atomic section.
func (r *MemoryRepo) WithTx(ctx context.Context, fn func(ctx context.Context, tx AuctionDB) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(ctx, &memoryTx{state: r.state})
}

func (r *MemoryRepo) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (&memoryTx{r.state}).CreateUser(ctx, user)
}

func (r *MemoryRepo) GetUser(ctx context.Context, id int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).GetUser(ctx, id)
}

func (r *MemoryRepo) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).GetUserByUsername(ctx, username)
}

func (r *MemoryRepo) CreatePlate(ctx context.Context, plate model.Plate) (model.Plate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (&memoryTx{r.state}).CreatePlate(ctx, plate)
}

func (r *MemoryRepo) GetPlate(ctx context.Context, id int64) (model.Plate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).GetPlate(ctx, id)
}

func (r *MemoryRepo) GetPlateForUpdate(ctx context.Context, id int64) (model.Plate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).GetPlateForUpdate(ctx, id)
}

func (r *MemoryRepo) GetPlateByNumber(ctx context.Context, plateNumber string) (model.Plate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).GetPlateByNumber(ctx, plateNumber)
}

func (r *MemoryRepo) UpdatePlate(ctx context.Context, plate model.Plate) (model.Plate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (&memoryTx{r.state}).UpdatePlate(ctx, plate)
}

func (r *MemoryRepo) DeletePlate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (&memoryTx{r.state}).DeletePlate(ctx, id)
}

func (r *MemoryRepo) ListPlates(ctx context.Context, filter PlateFilter) ([]model.Plate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).ListPlates(ctx, filter)
}

func (r *MemoryRepo) CreateBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (&memoryTx{r.state}).CreateBid(ctx, bid)
}

func (r *MemoryRepo) GetBid(ctx context.Context, id int64) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).GetBid(ctx, id)
}

func (r *MemoryRepo) GetBidByUserAndPlate(ctx context.Context, userID, plateID int64) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).GetBidByUserAndPlate(ctx, userID, plateID)
}

func (r *MemoryRepo) UpdateBidAmount(ctx context.Context, id int64, amount float64) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (&memoryTx{r.state}).UpdateBidAmount(ctx, id, amount)
}

func (r *MemoryRepo) DeleteBid(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (&memoryTx{r.state}).DeleteBid(ctx, id)
}

func (r *MemoryRepo) ListBidsByPlate(ctx context.Context, plateID int64) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).ListBidsByPlate(ctx, plateID)
}

func (r *MemoryRepo) ListBidsByUser(ctx context.Context, userID int64, skip, limit int) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).ListBidsByUser(ctx, userID, skip, limit)
}

func (r *MemoryRepo) HighestBid(ctx context.Context, plateID, excludeBidID int64) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).HighestBid(ctx, plateID, excludeBidID)
}

func (r *MemoryRepo) CountBidsByPlate(ctx context.Context, plateID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return (&memoryTx{r.state}).CountBidsByPlate(ctx, plateID)
}

// memoryTx operates on the shared state without locking; the owning
// MemoryRepo holds the lock for the duration of the call.
type memoryTx struct {
	state *memoryState
}

// WithTx on a transactional handle just reuses the current section.
func (t *memoryTx) WithTx(ctx context.Context, fn func(ctx context.Context, tx AuctionDB) error) error {
	return fn(ctx, t)
}

func (t *memoryTx) CreateUser(_ context.Context, user model.User) (model.User, error) {
	for _, u := range t.state.users {
		if u.Username == user.Username || u.Email == user.Email {
			return model.User{}, fmt.Errorf("create user %q: %w", user.Username, auctionerrors.ErrUsernameTaken)
		}
	}
	t.state.nextUserID++
	user.ID = t.state.nextUserID
	t.state.users[user.ID] = user
	return user, nil
}

func (t *memoryTx) GetUser(_ context.Context, id int64) (model.User, error) {
	user, ok := t.state.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("get user %d: %w", id, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

func (t *memoryTx) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range t.state.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user %q: %w", username, auctionerrors.ErrUserNotFound)
}

func (t *memoryTx) CreatePlate(_ context.Context, plate model.Plate) (model.Plate, error) {
	for _, p := range t.state.plates {
		if p.PlateNumber == plate.PlateNumber {
			return model.Plate{}, fmt.Errorf("create plate %q: %w", plate.PlateNumber, auctionerrors.ErrPlateNumberTaken)
		}
	}
	t.state.nextPlateID++
	plate.ID = t.state.nextPlateID
	t.state.plates[plate.ID] = plate
	t.state.plateOrder = append(t.state.plateOrder, plate.ID)
	return plate, nil
}

func (t *memoryTx) GetPlate(_ context.Context, id int64) (model.Plate, error) {
	plate, ok := t.state.plates[id]
	if !ok {
		return model.Plate{}, fmt.Errorf("get plate %d: %w", id, auctionerrors.ErrPlateNotFound)
	}
	return plate, nil
}

// GetPlateForUpdate is identical to GetPlate here: the caller already holds
// the store-wide write lock through WithTx.
func (t *memoryTx) GetPlateForUpdate(ctx context.Context, id int64) (model.Plate, error) {
	return t.GetPlate(ctx, id)
}

func (t *memoryTx) GetPlateByNumber(_ context.Context, plateNumber string) (model.Plate, error) {
	for _, p := range t.state.plates {
		if p.PlateNumber == plateNumber {
			return p, nil
		}
	}
	return model.Plate{}, fmt.Errorf("get plate %q: %w", plateNumber, auctionerrors.ErrPlateNotFound)
}

func (t *memoryTx) UpdatePlate(_ context.Context, plate model.Plate) (model.Plate, error) {
	if _, ok := t.state.plates[plate.ID]; !ok {
		return model.Plate{}, fmt.Errorf("update plate %d: %w", plate.ID, auctionerrors.ErrPlateNotFound)
	}
	for _, p := range t.state.plates {
		if p.ID != plate.ID && p.PlateNumber == plate.PlateNumber {
			return model.Plate{}, fmt.Errorf("update plate %d: %w", plate.ID, auctionerrors.ErrPlateNumberTaken)
		}
	}
	t.state.plates[plate.ID] = plate
	return plate, nil
}

func (t *memoryTx) DeletePlate(_ context.Context, id int64) error {
	if _, ok := t.state.plates[id]; !ok {
		return fmt.Errorf("delete plate %d: %w", id, auctionerrors.ErrPlateNotFound)
	}
	delete(t.state.plates, id)
	for i, pid := range t.state.plateOrder {
		if pid == id {
			t.state.plateOrder = append(t.state.plateOrder[:i], t.state.plateOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (t *memoryTx) ListPlates(_ context.Context, filter PlateFilter) ([]model.Plate, error) {
	plates := make([]model.Plate, 0, len(t.state.plateOrder))
	for _, id := range t.state.plateOrder {
		p := t.state.plates[id]
		if filter.PlateNumberContains != "" && !strings.Contains(p.PlateNumber, filter.PlateNumberContains) {
			continue
		}
		plates = append(plates, p)
	}

	switch filter.Ordering {
	case OrderDeadlineAsc:
		sort.SliceStable(plates, func(i, j int) bool { return plates[i].Deadline.Before(plates[j].Deadline) })
	case OrderDeadlineDesc:
		sort.SliceStable(plates, func(i, j int) bool { return plates[j].Deadline.Before(plates[i].Deadline) })
	}

	return page(plates, filter.Skip, filter.Limit), nil
}

func (t *memoryTx) CreateBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	if _, ok := t.state.plates[bid.PlateID]; !ok {
		return model.Bid{}, fmt.Errorf("create bid on plate %d: %w", bid.PlateID, auctionerrors.ErrPlateNotFound)
	}
	for _, b := range t.state.bids {
		if b.UserID == bid.UserID && b.PlateID == bid.PlateID {
			return model.Bid{}, fmt.Errorf("create bid on plate %d: %w", bid.PlateID, auctionerrors.ErrDuplicateBid)
		}
	}
	t.state.nextBidID++
	bid.ID = t.state.nextBidID
	t.state.bids[bid.ID] = bid
	t.state.bidOrder = append(t.state.bidOrder, bid.ID)
	return bid, nil
}

func (t *memoryTx) GetBid(_ context.Context, id int64) (model.Bid, error) {
	bid, ok := t.state.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %d: %w", id, auctionerrors.ErrBidNotFound)
	}
	return bid, nil
}

func (t *memoryTx) GetBidByUserAndPlate(_ context.Context, userID, plateID int64) (model.Bid, error) {
	for _, b := range t.state.bids {
		if b.UserID == userID && b.PlateID == plateID {
			return b, nil
		}
	}
	return model.Bid{}, fmt.Errorf("get bid by user %d on plate %d: %w", userID, plateID, auctionerrors.ErrBidNotFound)
}

func (t *memoryTx) UpdateBidAmount(_ context.Context, id int64, amount float64) (model.Bid, error) {
	bid, ok := t.state.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("update bid %d: %w", id, auctionerrors.ErrBidNotFound)
	}
	bid.Amount = amount
	t.state.bids[id] = bid
	return bid, nil
}

func (t *memoryTx) DeleteBid(_ context.Context, id int64) error {
	if _, ok := t.state.bids[id]; !ok {
		return fmt.Errorf("delete bid %d: %w", id, auctionerrors.ErrBidNotFound)
	}
	delete(t.state.bids, id)
	for i, bid := range t.state.bidOrder {
		if bid == id {
			t.state.bidOrder = append(t.state.bidOrder[:i], t.state.bidOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (t *memoryTx) ListBidsByPlate(_ context.Context, plateID int64) ([]model.Bid, error) {
	bids := make([]model.Bid, 0)
	for _, id := range t.state.bidOrder {
		if b := t.state.bids[id]; b.PlateID == plateID {
			bids = append(bids, b)
		}
	}
	return bids, nil
}

func (t *memoryTx) ListBidsByUser(_ context.Context, userID int64, skip, limit int) ([]model.Bid, error) {
	bids := make([]model.Bid, 0)
	for _, id := range t.state.bidOrder {
		if b := t.state.bids[id]; b.UserID == userID {
			bids = append(bids, b)
		}
	}
	return page(bids, skip, limit), nil
}

func (t *memoryTx) HighestBid(_ context.Context, plateID, excludeBidID int64) (float64, error) {
	var highest float64
	found := false
	for _, b := range t.state.bids {
		if b.PlateID != plateID || b.ID == excludeBidID {
			continue
		}
		if !found || b.Amount > highest {
			highest = b.Amount
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("highest bid for plate %d: %w", plateID, auctionerrors.ErrNoBids)
	}
	return highest, nil
}

func (t *memoryTx) CountBidsByPlate(_ context.Context, plateID int64) (int, error) {
	count := 0
	for _, b := range t.state.bids {
		if b.PlateID == plateID {
			count++
		}
	}
	return count, nil
}

// page applies offset pagination. A non-positive limit means no limit.
func page[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return append([]T(nil), items...)
}
