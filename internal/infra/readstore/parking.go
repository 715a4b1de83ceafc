package readstore

import (
	"context"

	"parkhub/internal/infra/converter"
	"parkhub/internal/infra/db"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const parkingColumns = `
	id, owner_id, name, address, latitude, longitude,
	total_spots, tariffs, schedule, is_active, created_at, updated_at`

type ParkingReadStore struct {
	dbtx db.DBTX
}

func NewParkingReadStore(dbtx db.DBTX) *ParkingReadStore {
	return &ParkingReadStore{dbtx: dbtx}
}

func (s *ParkingReadStore) FindByID(ctx context.Context, lotID uuid.UUID) (*queries.ParkingView, error) {
	query := `SELECT` + parkingColumns + ` FROM parking_lots WHERE id = $1`

	row := s.dbtx.QueryRow(ctx, query, lotID)
	view, err := scanParkingView(row)
	if err != nil {
		return nil, wrapReadErr("failed to find parking lot", err)
	}
	return view, nil
}

func (s *ParkingReadStore) ListActive(ctx context.Context) ([]queries.ParkingView, error) {
	query := `SELECT` + parkingColumns + ` FROM parking_lots WHERE is_active ORDER BY created_at`

	rows, err := s.dbtx.Query(ctx, query)
	if err != nil {
		return nil, wrapReadErr("failed to list parking lots", err)
	}
	defer rows.Close()

	return collectParkingViews(rows)
}

func (s *ParkingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]queries.ParkingView, error) {
	query := `SELECT` + parkingColumns + ` FROM parking_lots WHERE owner_id = $1 ORDER BY created_at`

	rows, err := s.dbtx.Query(ctx, query, ownerID)
	if err != nil {
		return nil, wrapReadErr("failed to list owned parking lots", err)
	}
	defer rows.Close()

	return collectParkingViews(rows)
}

func scanParkingView(row pgx.Row) (*queries.ParkingView, error) {
	var (
		view          queries.ParkingView
		tariffsJSON   []byte
		scheduleJSON  []byte
	)
	err := row.Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.Address,
		&view.Latitude, &view.Longitude, &view.TotalSpots,
		&tariffsJSON, &scheduleJSON, &view.IsActive,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if view.Tariffs, err = converter.UnmarshalTariffs(tariffsJSON); err != nil {
		return nil, err
	}
	if view.Schedule, err = converter.UnmarshalSchedule(scheduleJSON); err != nil {
		return nil, err
	}
	return &view, nil
}

func collectParkingViews(rows pgx.Rows) ([]queries.ParkingView, error) {
	var views []queries.ParkingView
	for rows.Next() {
		view, err := scanParkingView(rows)
		if err != nil {
			return nil, wrapReadErr("failed to scan parking lot", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate parking lots", err)
	}
	return views, nil
}
