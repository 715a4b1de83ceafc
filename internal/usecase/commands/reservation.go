package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"parkhub/internal/domain/parking"
	"parkhub/internal/domain/reservation"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"
)

var (
	ErrInvalidTimeSlot    = errs.New("invalid time slot")
	ErrTariffNotPriceable = errs.New("lot tariffs cannot price the requested slot")
	ErrParkingClosed      = errs.New("parking lot closed for the requested slot")
	ErrParkingFull        = errs.New("parking lot is full")
	ErrUnauthorized       = errs.New("unauthorized")
	ErrInvalidState       = errs.New("invalid state transition")
	ErrReservationMissing = errs.New("reservation not found")
)

type ReservationResult struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	LotID          uuid.UUID
	StartTime      time.Time
	EndTime        time.Time
	EstimatedPrice float64
	Status         string
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, userID uuid.UUID, req reqdto.CreateReservationRequest) (*ReservationResult, error)
	CancelReservation(ctx context.Context, reservationID, userID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	clock   clock.Clock
	loc     *time.Location
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory, clk clock.Clock, loc *time.Location) ReservationCommands {
	if loc == nil {
		loc = time.UTC
	}
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		clock:   clk,
		loc:     loc,
	}
}

func (r *reservationCommandsImpl) CreateReservation(ctx context.Context, userID uuid.UUID, req reqdto.CreateReservationRequest) (*ReservationResult, error) {
	slot, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	var created *reservation.Reservation
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, userErr := tx.Reads().UserByID(ctx, userID); userErr != nil {
			if infra.IsKind(userErr, infra.KindNotFound) {
				return errs.Mark(userErr, ErrUserNotFound)
			}
			return errs.Wrap(userErr, "failed to load user")
		}

		lotSnap, lotErr := tx.Reads().LotByID(ctx, req.LotID)
		if lotErr != nil {
			if infra.IsKind(lotErr, infra.KindNotFound) {
				return errs.Mark(lotErr, ErrParkingNotFound)
			}
			return errs.Wrap(lotErr, "failed to load parking lot")
		}
		lot := lotSnap.Entity()

		if !lot.Schedule().OpenAt(slot.Start(), r.loc) || !lot.Schedule().OpenAt(slot.End(), r.loc) {
			return ErrParkingClosed
		}

		// Serialize capacity checks per lot for the rest of the transaction.
		if lockErr := tx.Lots().LockByID(ctx, tx.DB(), lot.ID()); lockErr != nil {
			return errs.Wrap(lockErr, "failed to lock parking lot")
		}

		overlapping, countErr := tx.Reads().CountActiveReservationsOverlapping(ctx, lot.ID(), slot.Start(), slot.End())
		if countErr != nil {
			return errs.Wrap(countErr, "failed to count overlapping reservations")
		}
		if overlapping >= lot.TotalSpots() {
			return ErrParkingFull
		}

		entity, buildErr := r.factory.CreateReservation(lot, userID, slot)
		if buildErr != nil {
			switch {
			case errors.Is(buildErr, parking.ErrLotInactive):
				return errs.Mark(buildErr, ErrParkingClosed)
			case errors.Is(buildErr, parking.ErrInvalidTariffConfiguration):
				// The lot's configuration is at fault, not the slot.
				return errs.Mark(buildErr, ErrTariffNotPriceable)
			default:
				return errs.Mark(buildErr, ErrInvalidTimeSlot)
			}
		}

		if _, createErr := tx.Reservations().Create(ctx, tx.DB(), entity); createErr != nil {
			return errs.Wrap(createErr, "failed to persist reservation")
		}
		created = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ReservationResult{
		ID:             created.ID(),
		UserID:         created.UserID(),
		LotID:          created.LotID(),
		StartTime:      created.TimeSlot().Start(),
		EndTime:        created.TimeSlot().End(),
		EstimatedPrice: created.EstimatedPrice(),
		Status:         created.Status().String(),
	}, nil
}

func (r *reservationCommandsImpl) CancelReservation(ctx context.Context, reservationID, userID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationMissing)
			}
			return errs.Wrap(err, "failed to load reservation")
		}

		if snap.UserID != userID {
			return ErrUnauthorized
		}
		if snap.Status != reservation.StatusActive.String() {
			return ErrInvalidState
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), reservationID, reservation.StatusCancelled); err != nil {
			return errs.Wrap(err, "failed to cancel reservation")
		}
		return nil
	})
}
