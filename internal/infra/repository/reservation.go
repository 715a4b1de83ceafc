package repository

import (
	"context"

	"parkhub/internal/domain/reservation"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() shared.ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (
			id, user_id, lot_id, start_time, end_time, status, estimated_price
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		res.ID(), res.UserID(), res.LotID(),
		res.TimeSlot().Start(), res.TimeSlot().End(),
		res.Status().String(), res.EstimatedPrice(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error {
	const query = `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String())
	if err != nil {
		return wrapWriteErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
