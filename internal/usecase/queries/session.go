package queries

import (
	"context"
	"time"

	"parkhub/internal/domain/user"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound     = errs.New("parking session not found")
	ErrSessionAccessDenied = errs.New("not allowed to view this session")
)

type SessionQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*SessionView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]SessionView, error)
	// ListOverstaying reports active reservation-backed sessions whose
	// reservation window already ended. Subscription sessions never
	// overstay: the pass covers the whole validity period.
	ListOverstaying(ctx context.Context, lotID uuid.UUID, now time.Time) ([]OverstayView, error)
}

// ActiveReservationSessionRow joins an active session to its backing
// reservation for overstay detection.
type ActiveReservationSessionRow struct {
	SessionID      uuid.UUID
	UserID         uuid.UUID
	ReservationID  uuid.UUID
	ReservationEnd time.Time
}

type SessionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]SessionView, error)
	ListActiveWithReservation(ctx context.Context, lotID uuid.UUID) ([]ActiveReservationSessionRow, error)
}

type sessionQueriesImpl struct {
	reads SessionReadStore
}

func NewSessionQueries(reads SessionReadStore) SessionQueries {
	return &sessionQueriesImpl{reads: reads}
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*SessionView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSessionNotFound)
		}
		return nil, errs.Wrap(err, "failed to load session")
	}
	if actorRole != user.RoleAdmin && view.UserID != actorID {
		return nil, ErrSessionAccessDenied
	}
	return view, nil
}

func (q *sessionQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]SessionView, error) {
	views, err := q.reads.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list sessions")
	}
	return views, nil
}

func (q *sessionQueriesImpl) ListOverstaying(ctx context.Context, lotID uuid.UUID, now time.Time) ([]OverstayView, error) {
	rows, err := q.reads.ListActiveWithReservation(ctx, lotID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active sessions")
	}

	overstays := make([]OverstayView, 0, len(rows))
	for _, r := range rows {
		if !now.After(r.ReservationEnd) {
			continue
		}
		overstays = append(overstays, OverstayView{
			SessionID:       r.SessionID,
			UserID:          r.UserID,
			ReservationID:   r.ReservationID,
			ReservationEnd:  r.ReservationEnd,
			OverstayMinutes: int64(now.Sub(r.ReservationEnd).Minutes()),
		})
	}
	return overstays, nil
}
