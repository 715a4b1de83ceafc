package repository

import (
	"context"

	"parkhub/internal/domain/subscription"
	"parkhub/internal/infra/db"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscriptionRepository struct{}

func NewSubscriptionRepository() shared.SubscriptionRepository {
	return &SubscriptionRepository{}
}

func (r *SubscriptionRepository) Create(ctx context.Context, tx db.DBTX, sub *subscription.Subscription) (uuid.UUID, error) {
	const query = `
		INSERT INTO subscriptions (
			id, user_id, lot_id, plan, price, start_date, end_date, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		sub.ID(), sub.UserID(), sub.LotID(),
		sub.Plan().String(), sub.Price(),
		sub.StartDate(), sub.EndDate(), sub.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert subscription", err)
	}
	return id, nil
}
