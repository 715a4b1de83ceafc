package queries

import (
	"context"
	"time"

	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// AvailabilityWindow is the lookahead applied when counting reservations
// against capacity. A lot is considered occupied by any reservation that
// overlaps [at, at+window): arrivals within the next hour already claim
// a spot.
const AvailabilityWindow = time.Hour

var ErrAvailabilityLotNotFound = errs.New("parking lot not found")

type AvailabilityQueries interface {
	ComputeAvailability(ctx context.Context, lotID uuid.UUID, at time.Time) (*AvailabilityView, error)
}

type AvailabilityReadStore interface {
	LotCapacity(ctx context.Context, lotID uuid.UUID) (int, error)
	CountActiveReservationsOverlapping(ctx context.Context, lotID uuid.UUID, start, end time.Time) (int, error)
	CountSubscriptionsValidAt(ctx context.Context, lotID uuid.UUID, at time.Time) (int, error)
}

type availabilityQueriesImpl struct {
	reads  AvailabilityReadStore
	window time.Duration
}

func NewAvailabilityQueries(reads AvailabilityReadStore, window time.Duration) AvailabilityQueries {
	if window <= 0 {
		window = AvailabilityWindow
	}
	return &availabilityQueriesImpl{reads: reads, window: window}
}

func (q *availabilityQueriesImpl) ComputeAvailability(ctx context.Context, lotID uuid.UUID, at time.Time) (*AvailabilityView, error) {
	total, err := q.reads.LotCapacity(ctx, lotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAvailabilityLotNotFound)
		}
		return nil, errs.Wrap(err, "failed to load lot capacity")
	}

	reserved, err := q.reads.CountActiveReservationsOverlapping(ctx, lotID, at, at.Add(q.window))
	if err != nil {
		return nil, errs.Wrap(err, "failed to count overlapping reservations")
	}

	subscribed, err := q.reads.CountSubscriptionsValidAt(ctx, lotID, at)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count valid subscriptions")
	}

	occupied := reserved + subscribed
	available := total - occupied
	if available < 0 {
		available = 0
	}

	return &AvailabilityView{
		LotID:          lotID,
		At:             at,
		TotalSpots:     total,
		OccupiedSpots:  occupied,
		AvailableSpots: available,
	}, nil
}
