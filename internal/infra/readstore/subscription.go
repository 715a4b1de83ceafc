package readstore

import (
	"context"
	"time"

	"parkhub/internal/infra/db"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const subscriptionColumns = `
	id, user_id, lot_id, plan, price, start_date, end_date, is_active, created_at`

type SubscriptionReadStore struct {
	dbtx db.DBTX
}

func NewSubscriptionReadStore(dbtx db.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{dbtx: dbtx}
}

func (s *SubscriptionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SubscriptionView, error) {
	query := `SELECT` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`

	view, err := scanSubscriptionView(s.dbtx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapReadErr("failed to find subscription", err)
	}
	return view, nil
}

func (s *SubscriptionReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.SubscriptionView, error) {
	query := `SELECT` + subscriptionColumns + ` FROM subscriptions WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := s.dbtx.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapReadErr("failed to list subscriptions", err)
	}
	defer rows.Close()

	var views []queries.SubscriptionView
	for rows.Next() {
		view, scanErr := scanSubscriptionView(rows)
		if scanErr != nil {
			return nil, wrapReadErr("failed to scan subscription", scanErr)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate subscriptions", err)
	}
	return views, nil
}

// CountValidAt uses inclusive boundaries on both dates.
func (s *SubscriptionReadStore) CountValidAt(ctx context.Context, lotID uuid.UUID, at time.Time) (int, error) {
	const query = `
		SELECT count(*)
		FROM subscriptions
		WHERE lot_id = $1
		  AND is_active
		  AND start_date <= $2
		  AND end_date >= $2`

	var count int
	if err := s.dbtx.QueryRow(ctx, query, lotID, at).Scan(&count); err != nil {
		return 0, wrapReadErr("failed to count valid subscriptions", err)
	}
	return count, nil
}

func scanSubscriptionView(row pgx.Row) (*queries.SubscriptionView, error) {
	var view queries.SubscriptionView
	err := row.Scan(
		&view.ID, &view.UserID, &view.LotID,
		&view.Plan, &view.Price,
		&view.StartDate, &view.EndDate,
		&view.IsActive, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
