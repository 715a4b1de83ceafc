package readstore

import (
	"context"

	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const sessionColumns = `
	id, user_id, lot_id, reservation_id, subscription_id,
	entry_time, exit_time, final_price, penalty_amount, status, created_at`

type SessionReadStore struct {
	dbtx db.DBTX
}

func NewSessionReadStore(dbtx db.DBTX) *SessionReadStore {
	return &SessionReadStore{dbtx: dbtx}
}

func (s *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	query := `SELECT` + sessionColumns + ` FROM parking_sessions WHERE id = $1`

	view, err := scanSessionView(s.dbtx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapReadErr("failed to find session", err)
	}
	return view, nil
}

func (s *SessionReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.SessionView, error) {
	query := `SELECT` + sessionColumns + ` FROM parking_sessions WHERE user_id = $1 ORDER BY entry_time DESC`

	rows, err := s.dbtx.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapReadErr("failed to list sessions", err)
	}
	defer rows.Close()

	var views []queries.SessionView
	for rows.Next() {
		view, scanErr := scanSessionView(rows)
		if scanErr != nil {
			return nil, wrapReadErr("failed to scan session", scanErr)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate sessions", err)
	}
	return views, nil
}

func (s *SessionReadStore) ListActiveWithReservation(ctx context.Context, lotID uuid.UUID) ([]queries.ActiveReservationSessionRow, error) {
	const query = `
		SELECT s.id, s.user_id, s.reservation_id, r.end_time
		FROM parking_sessions s
		JOIN reservations r ON r.id = s.reservation_id
		WHERE s.lot_id = $1
		  AND s.status = 'active'
		  AND s.reservation_id IS NOT NULL`

	rows, err := s.dbtx.Query(ctx, query, lotID)
	if err != nil {
		return nil, wrapReadErr("failed to list active sessions", err)
	}
	defer rows.Close()

	var result []queries.ActiveReservationSessionRow
	for rows.Next() {
		var row queries.ActiveReservationSessionRow
		if err := rows.Scan(&row.SessionID, &row.UserID, &row.ReservationID, &row.ReservationEnd); err != nil {
			return nil, wrapReadErr("failed to scan active session", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate active sessions", err)
	}
	return result, nil
}

func (s *SessionReadStore) HasActiveSession(ctx context.Context, userID, lotID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM parking_sessions
			WHERE user_id = $1 AND lot_id = $2 AND status = 'active'
		)`

	var exists bool
	if err := s.dbtx.QueryRow(ctx, query, userID, lotID).Scan(&exists); err != nil {
		return false, wrapReadErr("failed to check active session", err)
	}
	return exists, nil
}

func scanSessionView(row pgx.Row) (*queries.SessionView, error) {
	var (
		view           queries.SessionView
		reservationID  pgtype.UUID
		subscriptionID pgtype.UUID
		exitTime       pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.UserID, &view.LotID,
		&reservationID, &subscriptionID,
		&view.EntryTime, &exitTime,
		&view.FinalPrice, &view.PenaltyAmount,
		&view.Status, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.ReservationID = pgconv.UUIDPtrFromPgtype(reservationID)
	view.SubscriptionID = pgconv.UUIDPtrFromPgtype(subscriptionID)
	view.ExitTime = pgconv.TimePtrFromPgtype(exitTime)
	return &view, nil
}
