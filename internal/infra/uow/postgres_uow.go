package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"parkhub/internal/infra/db"
	"parkhub/internal/infra/readstore"
	"parkhub/internal/infra/repository"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	lotRepo          shared.LotRepository
	reservationRepo  shared.ReservationRepository
	sessionRepo      shared.SessionRepository
	subscriptionRepo shared.SubscriptionRepository
	userRepo         shared.UserRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Lots() shared.LotRepository {
	if t.lotRepo == nil {
		t.lotRepo = repository.NewLotRepository()
	}
	return t.lotRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository()
	}
	return t.reservationRepo
}

func (t *pgTx) Sessions() shared.SessionRepository {
	if t.sessionRepo == nil {
		t.sessionRepo = repository.NewSessionRepository()
	}
	return t.sessionRepo
}

func (t *pgTx) Subscriptions() shared.SubscriptionRepository {
	if t.subscriptionRepo == nil {
		t.subscriptionRepo = repository.NewSubscriptionRepository()
	}
	return t.subscriptionRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	userStore         *readstore.UserReadStore
	parkingStore      *readstore.ParkingReadStore
	reservationStore  *readstore.ReservationReadStore
	subscriptionStore *readstore.SubscriptionReadStore
	sessionStore      *readstore.SessionReadStore
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}

	view, err := r.userStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.UserSnapshot{
		ID:       view.ID,
		Email:    view.Email,
		Role:     view.Role,
		IsActive: view.IsActive,
	}, nil
}

func (r *commandReads) LotByID(ctx context.Context, id uuid.UUID) (*shared.LotSnapshot, error) {
	if r.parkingStore == nil {
		r.parkingStore = readstore.NewParkingReadStore(r.dbtx)
	}

	view, err := r.parkingStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.LotSnapshot{
		ID:         view.ID,
		OwnerID:    view.OwnerID,
		Name:       view.Name,
		Address:    view.Address,
		Latitude:   view.Latitude,
		Longitude:  view.Longitude,
		TotalSpots: view.TotalSpots,
		Tariffs:    view.Tariffs,
		Schedule:   view.Schedule,
		IsActive:   view.IsActive,
		CreatedAt:  view.CreatedAt,
		UpdatedAt:  view.UpdatedAt,
	}, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.dbtx)
	}

	view, err := r.reservationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ReservationSnapshot{
		ID:             view.ID,
		UserID:         view.UserID,
		LotID:          view.LotID,
		StartTime:      view.StartTime,
		EndTime:        view.EndTime,
		Status:         view.Status,
		EstimatedPrice: view.EstimatedPrice,
	}, nil
}

func (r *commandReads) SubscriptionByID(ctx context.Context, id uuid.UUID) (*shared.SubscriptionSnapshot, error) {
	if r.subscriptionStore == nil {
		r.subscriptionStore = readstore.NewSubscriptionReadStore(r.dbtx)
	}

	view, err := r.subscriptionStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.SubscriptionSnapshot{
		ID:        view.ID,
		UserID:    view.UserID,
		LotID:     view.LotID,
		Plan:      view.Plan,
		Price:     view.Price,
		StartDate: view.StartDate,
		EndDate:   view.EndDate,
		IsActive:  view.IsActive,
	}, nil
}

func (r *commandReads) SessionByID(ctx context.Context, id uuid.UUID) (*shared.SessionSnapshot, error) {
	if r.sessionStore == nil {
		r.sessionStore = readstore.NewSessionReadStore(r.dbtx)
	}

	view, err := r.sessionStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.SessionSnapshot{
		ID:             view.ID,
		UserID:         view.UserID,
		LotID:          view.LotID,
		ReservationID:  view.ReservationID,
		SubscriptionID: view.SubscriptionID,
		EntryTime:      view.EntryTime,
		Status:         view.Status,
	}, nil
}

func (r *commandReads) HasActiveSession(ctx context.Context, userID, lotID uuid.UUID) (bool, error) {
	if r.sessionStore == nil {
		r.sessionStore = readstore.NewSessionReadStore(r.dbtx)
	}
	return r.sessionStore.HasActiveSession(ctx, userID, lotID)
}

func (r *commandReads) CountActiveReservationsOverlapping(ctx context.Context, lotID uuid.UUID, start, end time.Time) (int, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.dbtx)
	}
	return r.reservationStore.CountActiveOverlapping(ctx, lotID, start, end)
}
