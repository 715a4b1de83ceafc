package repository

import (
	"context"
	"time"

	"parkhub/internal/domain/session"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionRepository struct{}

func NewSessionRepository() shared.SessionRepository {
	return &SessionRepository{}
}

func (r *SessionRepository) Create(ctx context.Context, tx db.DBTX, sess *session.Session) (uuid.UUID, error) {
	const query = `
		INSERT INTO parking_sessions (
			id, user_id, lot_id, reservation_id, subscription_id,
			entry_time, final_price, penalty_amount, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		sess.ID(), sess.UserID(), sess.LotID(),
		pgconv.UUIDPtrToPgtype(sess.ReservationID()),
		pgconv.UUIDPtrToPgtype(sess.SubscriptionID()),
		sess.EntryTime(), sess.FinalPrice(), sess.PenaltyAmount(),
		sess.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert session", err)
	}
	return id, nil
}

func (r *SessionRepository) Complete(ctx context.Context, tx db.DBTX, id uuid.UUID, exitTime time.Time, finalPrice, penaltyAmount float64) error {
	// Guarding on status makes the transition one-way even under races.
	const query = `
		UPDATE parking_sessions
		SET exit_time = $2, final_price = $3, penalty_amount = $4,
		    status = 'completed', updated_at = now()
		WHERE id = $1 AND status = 'active'`

	tag, err := tx.Exec(ctx, query, id, exitTime, finalPrice, penaltyAmount)
	if err != nil {
		return wrapWriteErr("failed to complete session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("active session not found", nil, infra.KindNotFound)
	}
	return nil
}
