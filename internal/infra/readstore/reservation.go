package readstore

import (
	"context"
	"time"

	"parkhub/internal/infra/db"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = `
	r.id, r.user_id, r.lot_id, l.name, r.start_time, r.end_time,
	r.status, r.estimated_price, r.created_at, r.updated_at`

type ReservationReadStore struct {
	dbtx db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{dbtx: dbtx}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `
		SELECT` + reservationColumns + `
		FROM reservations r
		JOIN parking_lots l ON l.id = r.lot_id
		WHERE r.id = $1`

	view, err := scanReservationView(s.dbtx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapReadErr("failed to find reservation", err)
	}
	return view, nil
}

func (s *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.ReservationView, error) {
	query := `
		SELECT` + reservationColumns + `
		FROM reservations r
		JOIN parking_lots l ON l.id = r.lot_id
		WHERE r.user_id = $1
		ORDER BY r.start_time DESC`

	rows, err := s.dbtx.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapReadErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []queries.ReservationView
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, wrapReadErr("failed to scan reservation", scanErr)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate reservations", err)
	}
	return views, nil
}

// CountActiveOverlapping applies the half-open overlap test
// NOT (end <= start OR start >= end) against active reservations.
func (s *ReservationReadStore) CountActiveOverlapping(ctx context.Context, lotID uuid.UUID, start, end time.Time) (int, error) {
	const query = `
		SELECT count(*)
		FROM reservations
		WHERE lot_id = $1
		  AND status = 'active'
		  AND NOT (end_time <= $2 OR start_time >= $3)`

	var count int
	if err := s.dbtx.QueryRow(ctx, query, lotID, start, end).Scan(&count); err != nil {
		return 0, wrapReadErr("failed to count overlapping reservations", err)
	}
	return count, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := row.Scan(
		&view.ID, &view.UserID, &view.LotID, &view.LotName,
		&view.StartTime, &view.EndTime, &view.Status,
		&view.EstimatedPrice, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
