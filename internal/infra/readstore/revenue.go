package readstore

import (
	"context"
	"time"

	"parkhub/internal/infra/db"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

// RevenueReadStore collects the raw amounts summed by the monthly revenue
// report. Ranges are half-open [from, to).
type RevenueReadStore struct {
	dbtx db.DBTX
}

var _ queries.RevenueReadStore = (*RevenueReadStore)(nil)

func NewRevenueReadStore(dbtx db.DBTX) *RevenueReadStore {
	return &RevenueReadStore{dbtx: dbtx}
}

func (s *RevenueReadStore) LotOwner(ctx context.Context, lotID uuid.UUID) (uuid.UUID, error) {
	const query = `SELECT owner_id FROM parking_lots WHERE id = $1`

	var ownerID uuid.UUID
	if err := s.dbtx.QueryRow(ctx, query, lotID).Scan(&ownerID); err != nil {
		return uuid.Nil, wrapReadErr("failed to load lot owner", err)
	}
	return ownerID, nil
}

func (s *RevenueReadStore) CompletedReservationPrices(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]float64, error) {
	const query = `
		SELECT estimated_price
		FROM reservations
		WHERE lot_id = $1
		  AND status = 'completed'
		  AND created_at >= $2 AND created_at < $3`

	return s.collectAmounts(ctx, query, lotID, from, to)
}

func (s *RevenueReadStore) CompletedSessionCharges(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]queries.SessionCharge, error) {
	const query = `
		SELECT final_price, penalty_amount
		FROM parking_sessions
		WHERE lot_id = $1
		  AND status = 'completed'
		  AND exit_time >= $2 AND exit_time < $3`

	rows, err := s.dbtx.Query(ctx, query, lotID, from, to)
	if err != nil {
		return nil, wrapReadErr("failed to collect session charges", err)
	}
	defer rows.Close()

	var charges []queries.SessionCharge
	for rows.Next() {
		var c queries.SessionCharge
		if err := rows.Scan(&c.FinalPrice, &c.PenaltyAmount); err != nil {
			return nil, wrapReadErr("failed to scan session charge", err)
		}
		charges = append(charges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate session charges", err)
	}
	return charges, nil
}

func (s *RevenueReadStore) SubscriptionPrices(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]float64, error) {
	const query = `
		SELECT price
		FROM subscriptions
		WHERE lot_id = $1
		  AND created_at >= $2 AND created_at < $3`

	return s.collectAmounts(ctx, query, lotID, from, to)
}

func (s *RevenueReadStore) collectAmounts(ctx context.Context, query string, lotID uuid.UUID, from, to time.Time) ([]float64, error) {
	rows, err := s.dbtx.Query(ctx, query, lotID, from, to)
	if err != nil {
		return nil, wrapReadErr("failed to collect amounts", err)
	}
	defer rows.Close()

	var amounts []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, wrapReadErr("failed to scan amount", err)
		}
		amounts = append(amounts, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate amounts", err)
	}
	return amounts, nil
}
