package queries

import (
	"context"

	"parkhub/internal/domain/user"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSubscriptionNotFound     = errs.New("subscription not found")
	ErrSubscriptionAccessDenied = errs.New("not allowed to view this subscription")
)

type SubscriptionQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*SubscriptionView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]SubscriptionView, error)
}

type SubscriptionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SubscriptionView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]SubscriptionView, error)
}

type subscriptionQueriesImpl struct {
	reads SubscriptionReadStore
}

func NewSubscriptionQueries(reads SubscriptionReadStore) SubscriptionQueries {
	return &subscriptionQueriesImpl{reads: reads}
}

func (q *subscriptionQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*SubscriptionView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSubscriptionNotFound)
		}
		return nil, errs.Wrap(err, "failed to load subscription")
	}
	if actorRole != user.RoleAdmin && view.UserID != actorID {
		return nil, ErrSubscriptionAccessDenied
	}
	return view, nil
}

func (q *subscriptionQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]SubscriptionView, error) {
	views, err := q.reads.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list subscriptions")
	}
	return views, nil
}
