package readstore

import (
	"context"
	"time"

	"parkhub/internal/infra/db"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

// AvailabilityReadStore bundles the three lookups behind spot counting.
type AvailabilityReadStore struct {
	dbtx          db.DBTX
	reservations  *ReservationReadStore
	subscriptions *SubscriptionReadStore
}

var _ queries.AvailabilityReadStore = (*AvailabilityReadStore)(nil)

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		dbtx:          dbtx,
		reservations:  NewReservationReadStore(dbtx),
		subscriptions: NewSubscriptionReadStore(dbtx),
	}
}

func (s *AvailabilityReadStore) LotCapacity(ctx context.Context, lotID uuid.UUID) (int, error) {
	const query = `SELECT total_spots FROM parking_lots WHERE id = $1`

	var total int
	if err := s.dbtx.QueryRow(ctx, query, lotID).Scan(&total); err != nil {
		return 0, wrapReadErr("failed to load lot capacity", err)
	}
	return total, nil
}

func (s *AvailabilityReadStore) CountActiveReservationsOverlapping(ctx context.Context, lotID uuid.UUID, start, end time.Time) (int, error) {
	return s.reservations.CountActiveOverlapping(ctx, lotID, start, end)
}

func (s *AvailabilityReadStore) CountSubscriptionsValidAt(ctx context.Context, lotID uuid.UUID, at time.Time) (int, error) {
	return s.subscriptions.CountValidAt(ctx, lotID, at)
}
