package shared

import (
	"context"
	"time"

	"parkhub/internal/domain/parking"
	"parkhub/internal/domain/reservation"
	"parkhub/internal/domain/session"
	"parkhub/internal/domain/subscription"
	"parkhub/internal/domain/user"
	"parkhub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Lots() LotRepository
	Reservations() ReservationRepository
	Sessions() SessionRepository
	Subscriptions() SubscriptionRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal lookups the write side needs for
// validation. Inside a transaction they observe uncommitted writes.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	LotByID(ctx context.Context, id uuid.UUID) (*LotSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	SubscriptionByID(ctx context.Context, id uuid.UUID) (*SubscriptionSnapshot, error)
	SessionByID(ctx context.Context, id uuid.UUID) (*SessionSnapshot, error)
	HasActiveSession(ctx context.Context, userID, lotID uuid.UUID) (bool, error)
	CountActiveReservationsOverlapping(ctx context.Context, lotID uuid.UUID, start, end time.Time) (int, error)
}

type LotRepository interface {
	Create(ctx context.Context, tx db.DBTX, lot *parking.Lot) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, lot *parking.Lot) error
	// LockByID takes a row lock on the lot, serializing capacity checks
	// and session-entry checks per lot for the rest of the transaction.
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error
}

type SessionRepository interface {
	Create(ctx context.Context, tx db.DBTX, sess *session.Session) (uuid.UUID, error)
	Complete(ctx context.Context, tx db.DBTX, id uuid.UUID, exitTime time.Time, finalPrice, penaltyAmount float64) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, tx db.DBTX, sub *subscription.Subscription) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
