package commands

import (
	"context"

	"github.com/google/uuid"

	"parkhub/internal/domain/parking"
	"parkhub/internal/domain/user"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/pkg/patch"
	"parkhub/internal/usecase/shared"
)

var (
	ErrParkingNotFound     = errs.New("parking lot not found")
	ErrParkingAccessDenied = errs.New("not allowed to manage this lot")
	ErrInvalidParking      = errs.New("invalid parking lot")
)

type ParkingCommands interface {
	CreateParking(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateParkingRequest) (uuid.UUID, error)
	UpdateParking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, lotID uuid.UUID, req reqdto.UpdateParkingRequest) error
	DeactivateParking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, lotID uuid.UUID) error
}

type parkingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewParkingCommands(uow shared.UnitOfWork) ParkingCommands {
	return &parkingCommandsImpl{uow: uow}
}

func (p *parkingCommandsImpl) CreateParking(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateParkingRequest) (uuid.UUID, error) {
	tariffs, schedule, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidParking)
	}

	lot, err := parking.NewLot(ownerID, req.Name, req.Address, req.Latitude, req.Longitude, req.TotalSpots, tariffs, schedule)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidParking)
	}

	var id uuid.UUID
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Lots().Create(ctx, tx.DB(), lot)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create parking lot")
	}
	return id, nil
}

func (p *parkingCommandsImpl) UpdateParking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, lotID uuid.UUID, req reqdto.UpdateParkingRequest) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lot, err := p.loadOwnedLot(ctx, tx, actorID, actorRole, lotID)
		if err != nil {
			return err
		}

		if err := applyParkingPatch(lot, req); err != nil {
			return errs.Mark(err, ErrInvalidParking)
		}

		if err := tx.Lots().Update(ctx, tx.DB(), lot); err != nil {
			return errs.Wrap(err, "failed to update parking lot")
		}
		return nil
	})
}

func (p *parkingCommandsImpl) DeactivateParking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, lotID uuid.UUID) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lot, err := p.loadOwnedLot(ctx, tx, actorID, actorRole, lotID)
		if err != nil {
			return err
		}

		lot.Deactivate()

		if err := tx.Lots().Update(ctx, tx.DB(), lot); err != nil {
			return errs.Wrap(err, "failed to deactivate parking lot")
		}
		return nil
	})
}

func (p *parkingCommandsImpl) loadOwnedLot(ctx context.Context, tx shared.Tx, actorID uuid.UUID, actorRole user.Role, lotID uuid.UUID) (*parking.Lot, error) {
	snap, err := tx.Reads().LotByID(ctx, lotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrParkingNotFound)
		}
		return nil, errs.Wrap(err, "failed to load parking lot")
	}
	if actorRole != user.RoleAdmin && snap.OwnerID != actorID {
		return nil, ErrParkingAccessDenied
	}
	return snap.Entity(), nil
}

func applyParkingPatch(lot *parking.Lot, req reqdto.UpdateParkingRequest) error {
	if req.Name != nil {
		if err := lot.Rename(*req.Name); err != nil {
			return err
		}
	}
	if req.Address != nil || req.Latitude != nil || req.Longitude != nil {
		address := patch.Coalesce(req.Address, lot.Address())
		lat := patch.Coalesce(req.Latitude, lot.Latitude())
		lon := patch.Coalesce(req.Longitude, lot.Longitude())
		if err := lot.Relocate(address, lat, lon); err != nil {
			return err
		}
	}
	if req.TotalSpots != nil {
		if err := lot.Resize(*req.TotalSpots); err != nil {
			return err
		}
	}
	if req.Tariffs != nil {
		tariffs, err := reqdto.TariffsToDomain(*req.Tariffs)
		if err != nil {
			return err
		}
		if err := lot.UpdateTariffs(tariffs); err != nil {
			return err
		}
	}
	if req.Schedule != nil {
		schedule := reqdto.ScheduleToDomain(*req.Schedule)
		if err := lot.UpdateSchedule(schedule); err != nil {
			return err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			lot.Activate()
		} else {
			lot.Deactivate()
		}
	}
	return nil
}
