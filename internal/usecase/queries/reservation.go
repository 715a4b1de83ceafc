package queries

import (
	"context"

	"parkhub/internal/domain/user"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationAccessDenied = errs.New("not allowed to view this reservation")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationView, error)
}

type reservationQueriesImpl struct {
	reads ReservationReadStore
}

func NewReservationQueries(reads ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{reads: reads}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Wrap(err, "failed to load reservation")
	}
	if actorRole != user.RoleAdmin && view.UserID != actorID {
		return nil, ErrReservationAccessDenied
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationView, error) {
	views, err := q.reads.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return views, nil
}
