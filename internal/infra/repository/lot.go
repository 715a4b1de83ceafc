package repository

import (
	"context"

	"parkhub/internal/domain/parking"
	"parkhub/internal/infra"
	"parkhub/internal/infra/converter"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type LotRepository struct{}

func NewLotRepository() shared.LotRepository {
	return &LotRepository{}
}

func (r *LotRepository) Create(ctx context.Context, tx db.DBTX, lot *parking.Lot) (uuid.UUID, error) {
	tariffs, err := converter.MarshalTariffs(lot.Tariffs())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode tariffs", err)
	}
	schedule, err := converter.MarshalSchedule(lot.Schedule())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode schedule", err)
	}

	const query = `
		INSERT INTO parking_lots (
			id, owner_id, name, address, latitude, longitude,
			total_spots, tariffs, schedule, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err = tx.QueryRow(ctx, query,
		lot.ID(), lot.OwnerID(), lot.Name(), lot.Address(),
		lot.Latitude(), lot.Longitude(), lot.TotalSpots(),
		tariffs, schedule, lot.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert parking lot", err)
	}
	return id, nil
}

func (r *LotRepository) Update(ctx context.Context, tx db.DBTX, lot *parking.Lot) error {
	tariffs, err := converter.MarshalTariffs(lot.Tariffs())
	if err != nil {
		return infra.WrapRepoErr("failed to encode tariffs", err)
	}
	schedule, err := converter.MarshalSchedule(lot.Schedule())
	if err != nil {
		return infra.WrapRepoErr("failed to encode schedule", err)
	}

	const query = `
		UPDATE parking_lots
		SET name = $2, address = $3, latitude = $4, longitude = $5,
		    total_spots = $6, tariffs = $7, schedule = $8, is_active = $9,
		    updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		lot.ID(), lot.Name(), lot.Address(),
		lot.Latitude(), lot.Longitude(), lot.TotalSpots(),
		tariffs, schedule, lot.IsActive(),
	)
	if err != nil {
		return wrapWriteErr("failed to update parking lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `SELECT id FROM parking_lots WHERE id = $1 FOR UPDATE`

	var got uuid.UUID
	if err := tx.QueryRow(ctx, query, id).Scan(&got); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("parking lot not found", err, infra.KindNotFound)
		}
		return wrapWriteErr("failed to lock parking lot", err)
	}
	return nil
}
