package queries

import (
	"context"
	"sort"

	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/pkg/geo"

	"github.com/google/uuid"
)

var ErrParkingNotFound = errs.New("parking lot not found")

type ParkingQueries interface {
	GetByID(ctx context.Context, lotID uuid.UUID) (*ParkingView, error)
	ListActive(ctx context.Context) ([]ParkingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]ParkingView, error)
	Nearby(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]NearbyParkingView, error)
}

type ParkingReadStore interface {
	FindByID(ctx context.Context, lotID uuid.UUID) (*ParkingView, error)
	ListActive(ctx context.Context) ([]ParkingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]ParkingView, error)
}

type parkingQueriesImpl struct {
	reads ParkingReadStore
}

func NewParkingQueries(reads ParkingReadStore) ParkingQueries {
	return &parkingQueriesImpl{reads: reads}
}

func (q *parkingQueriesImpl) GetByID(ctx context.Context, lotID uuid.UUID) (*ParkingView, error) {
	view, err := q.reads.FindByID(ctx, lotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrParkingNotFound)
		}
		return nil, errs.Wrap(err, "failed to load parking lot")
	}
	return view, nil
}

func (q *parkingQueriesImpl) ListActive(ctx context.Context) ([]ParkingView, error) {
	views, err := q.reads.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list parking lots")
	}
	return views, nil
}

func (q *parkingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]ParkingView, error) {
	views, err := q.reads.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list owned parking lots")
	}
	return views, nil
}

// Nearby ranks active lots by great-circle distance. The fleet is small
// enough that filtering in memory beats shipping a PostGIS dependency.
func (q *parkingQueriesImpl) Nearby(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]NearbyParkingView, error) {
	views, err := q.reads.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list parking lots")
	}

	nearby := make([]NearbyParkingView, 0, len(views))
	for _, v := range views {
		d := geo.DistanceKm(lat, lon, v.Latitude, v.Longitude)
		if radiusKm > 0 && d > radiusKm {
			continue
		}
		nearby = append(nearby, NearbyParkingView{ParkingView: v, DistanceKm: d})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}
