package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"plate-auction/internal/auctionerrors"
	"plate-auction/internal/dbx"
	model "plate-auction/internal/models"
	"plate-auction/internal/repository/migrations"
)

// PostgresRepo is the SQL implementation of AuctionDB backed by pgx.
type PostgresRepo struct {
	db *sql.DB // nil on transactional handles
	q  dbx.DBTX
}

// NewPostgresRepo wraps an open database handle.
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db, q: db}
}

// OpenPostgres connects to the DSN, verifies the connection and applies the
// embedded goose migrations.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

// WithTx runs fn inside a database transaction. Nested calls on an already
// transactional handle reuse the current transaction.
func (r *PostgresRepo) WithTx(ctx context.Context, fn func(ctx context.Context, tx AuctionDB) error) error {
	if r.db == nil {
		return fn(ctx, r)
	}
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &PostgresRepo{q: tx})
	})
}

func (r *PostgresRepo) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (username, email, hashed_password, is_staff)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	err := r.q.QueryRowContext(ctx, query,
		user.Username, user.Email, user.HashedPassword, user.IsStaff).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, fmt.Errorf("create user %q: %w", user.Username, auctionerrors.ErrUsernameTaken)
		}
		return model.User{}, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepo) GetUser(ctx context.Context, id int64) (model.User, error) {
	query := `SELECT id, username, email, hashed_password, is_staff FROM users WHERE id = $1`
	return r.scanUser(r.q.QueryRowContext(ctx, query, id), fmt.Sprintf("get user %d", id))
}

func (r *PostgresRepo) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT id, username, email, hashed_password, is_staff FROM users WHERE username = $1`
	return r.scanUser(r.q.QueryRowContext(ctx, query, username), fmt.Sprintf("get user %q", username))
}

func (r *PostgresRepo) scanUser(row *sql.Row, op string) (model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.HashedPassword, &user.IsStaff)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, fmt.Errorf("%s: %w", op, auctionerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepo) CreatePlate(ctx context.Context, plate model.Plate) (model.Plate, error) {
	query := `INSERT INTO auto_plates (plate_number, description, deadline, is_active, created_by_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	err := r.q.QueryRowContext(ctx, query,
		plate.PlateNumber, plate.Description, plate.Deadline, plate.IsActive, plate.CreatedByID).Scan(&plate.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Plate{}, fmt.Errorf("create plate %q: %w", plate.PlateNumber, auctionerrors.ErrPlateNumberTaken)
		}
		return model.Plate{}, fmt.Errorf("db error: %w", err)
	}
	return plate, nil
}

const plateColumns = `id, plate_number, description, deadline, is_active, created_by_id`

func (r *PostgresRepo) GetPlate(ctx context.Context, id int64) (model.Plate, error) {
	query := `SELECT ` + plateColumns + ` FROM auto_plates WHERE id = $1`
	return r.scanPlate(r.q.QueryRowContext(ctx, query, id), fmt.Sprintf("get plate %d", id))
}

// GetPlateForUpdate locks the plate row for the rest of the transaction, so
// concurrent bid mutations on the same plate serialize and the highest-bid
// check always runs against committed state.
func (r *PostgresRepo) GetPlateForUpdate(ctx context.Context, id int64) (model.Plate, error) {
	query := `SELECT ` + plateColumns + ` FROM auto_plates WHERE id = $1 FOR UPDATE`
	return r.scanPlate(r.q.QueryRowContext(ctx, query, id), fmt.Sprintf("lock plate %d", id))
}

func (r *PostgresRepo) GetPlateByNumber(ctx context.Context, plateNumber string) (model.Plate, error) {
	query := `SELECT ` + plateColumns + ` FROM auto_plates WHERE plate_number = $1`
	return r.scanPlate(r.q.QueryRowContext(ctx, query, plateNumber), fmt.Sprintf("get plate %q", plateNumber))
}

func (r *PostgresRepo) scanPlate(row *sql.Row, op string) (model.Plate, error) {
	var plate model.Plate
	err := row.Scan(&plate.ID, &plate.PlateNumber, &plate.Description,
		&plate.Deadline, &plate.IsActive, &plate.CreatedByID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Plate{}, fmt.Errorf("%s: %w", op, auctionerrors.ErrPlateNotFound)
		}
		return model.Plate{}, fmt.Errorf("db error: %w", err)
	}
	return plate, nil
}

func (r *PostgresRepo) UpdatePlate(ctx context.Context, plate model.Plate) (model.Plate, error) {
	query := `UPDATE auto_plates
	          SET plate_number = $2, description = $3, deadline = $4, is_active = $5
	          WHERE id = $1`
	res, err := r.q.ExecContext(ctx, query,
		plate.ID, plate.PlateNumber, plate.Description, plate.Deadline, plate.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Plate{}, fmt.Errorf("update plate %d: %w", plate.ID, auctionerrors.ErrPlateNumberTaken)
		}
		return model.Plate{}, fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Plate{}, fmt.Errorf("update plate %d: %w", plate.ID, auctionerrors.ErrPlateNotFound)
	}
	return plate, nil
}

func (r *PostgresRepo) DeletePlate(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM auto_plates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete plate %d: %w", id, auctionerrors.ErrPlateNotFound)
	}
	return nil
}

func (r *PostgresRepo) ListPlates(ctx context.Context, filter PlateFilter) ([]model.Plate, error) {
	query := `SELECT ` + plateColumns + ` FROM auto_plates
	          WHERE ($1 = '' OR plate_number LIKE '%' || $1 || '%')`
	switch filter.Ordering {
	case OrderDeadlineAsc:
		query += ` ORDER BY deadline`
	case OrderDeadlineDesc:
		query += ` ORDER BY deadline DESC`
	}
	query += ` LIMIT NULLIF($2, 0) OFFSET $3`

	limit := filter.Limit
	if limit < 0 {
		limit = 0
	}
	skip := filter.Skip
	if skip < 0 {
		skip = 0
	}

	rows, err := r.q.QueryContext(ctx, query, filter.PlateNumberContains, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	plates := make([]model.Plate, 0)
	for rows.Next() {
		var p model.Plate
		if err := rows.Scan(&p.ID, &p.PlateNumber, &p.Description, &p.Deadline, &p.IsActive, &p.CreatedByID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		plates = append(plates, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return plates, nil
}

func (r *PostgresRepo) CreateBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	query := `INSERT INTO bids (amount, user_id, plate_id, created_at)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	err := r.q.QueryRowContext(ctx, query,
		bid.Amount, bid.UserID, bid.PlateID, bid.CreatedAt).Scan(&bid.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Bid{}, fmt.Errorf("create bid on plate %d: %w", bid.PlateID, auctionerrors.ErrDuplicateBid)
		}
		return model.Bid{}, fmt.Errorf("db error: %w", err)
	}
	return bid, nil
}

const bidColumns = `id, amount, user_id, plate_id, created_at`

func (r *PostgresRepo) GetBid(ctx context.Context, id int64) (model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE id = $1`
	return r.scanBid(r.q.QueryRowContext(ctx, query, id), fmt.Sprintf("get bid %d", id))
}

func (r *PostgresRepo) GetBidByUserAndPlate(ctx context.Context, userID, plateID int64) (model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE user_id = $1 AND plate_id = $2`
	return r.scanBid(r.q.QueryRowContext(ctx, query, userID, plateID),
		fmt.Sprintf("get bid by user %d on plate %d", userID, plateID))
}

func (r *PostgresRepo) scanBid(row *sql.Row, op string) (model.Bid, error) {
	var bid model.Bid
	err := row.Scan(&bid.ID, &bid.Amount, &bid.UserID, &bid.PlateID, &bid.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bid{}, fmt.Errorf("%s: %w", op, auctionerrors.ErrBidNotFound)
		}
		return model.Bid{}, fmt.Errorf("db error: %w", err)
	}
	return bid, nil
}

func (r *PostgresRepo) UpdateBidAmount(ctx context.Context, id int64, amount float64) (model.Bid, error) {
	query := `UPDATE bids SET amount = $2 WHERE id = $1
	          RETURNING ` + bidColumns
	return r.scanBid(r.q.QueryRowContext(ctx, query, id, amount), fmt.Sprintf("update bid %d", id))
}

func (r *PostgresRepo) DeleteBid(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM bids WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete bid %d: %w", id, auctionerrors.ErrBidNotFound)
	}
	return nil
}

func (r *PostgresRepo) ListBidsByPlate(ctx context.Context, plateID int64) ([]model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE plate_id = $1 ORDER BY id`
	return r.queryBids(ctx, query, plateID)
}

func (r *PostgresRepo) ListBidsByUser(ctx context.Context, userID int64, skip, limit int) ([]model.Bid, error) {
	if limit < 0 {
		limit = 0
	}
	if skip < 0 {
		skip = 0
	}
	query := `SELECT ` + bidColumns + ` FROM bids WHERE user_id = $1
	          ORDER BY id LIMIT NULLIF($2, 0) OFFSET $3`
	return r.queryBids(ctx, query, userID, limit, skip)
}

func (r *PostgresRepo) queryBids(ctx context.Context, query string, args ...any) ([]model.Bid, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.ID, &b.Amount, &b.UserID, &b.PlateID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return bids, nil
}

func (r *PostgresRepo) HighestBid(ctx context.Context, plateID, excludeBidID int64) (float64, error) {
	query := `SELECT MAX(amount) FROM bids WHERE plate_id = $1 AND ($2 = 0 OR id <> $2)`
	var highest sql.NullFloat64
	if err := r.q.QueryRowContext(ctx, query, plateID, excludeBidID).Scan(&highest); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	if !highest.Valid {
		return 0, fmt.Errorf("highest bid for plate %d: %w", plateID, auctionerrors.ErrNoBids)
	}
	return highest.Float64, nil
}

func (r *PostgresRepo) CountBidsByPlate(ctx context.Context, plateID int64) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM bids WHERE plate_id = $1`, plateID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
