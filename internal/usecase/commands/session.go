package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"parkhub/internal/domain/reservation"
	"parkhub/internal/domain/session"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"
)

var (
	ErrSessionNotFound      = errs.New("parking session not found")
	ErrSessionAlreadyActive = errs.New("an active session already exists for this lot")
	ErrInvalidRequest       = errs.New("exactly one of reservation or subscription is required")
	ErrInvalidReservation   = errs.New("reservation cannot back this session")
	ErrInvalidSubscription  = errs.New("subscription cannot back this session")
)

type SessionResult struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	LotID          uuid.UUID
	ReservationID  *uuid.UUID
	SubscriptionID *uuid.UUID
	EntryTime      time.Time
	ExitTime       *time.Time
	FinalPrice     float64
	PenaltyAmount  float64
	Status         string
}

type SessionCommands interface {
	EnterParking(ctx context.Context, userID uuid.UUID, req reqdto.EnterParkingRequest) (*SessionResult, error)
	ExitParking(ctx context.Context, sessionID, userID uuid.UUID) (*SessionResult, error)
}

type sessionCommandsImpl struct {
	uow            shared.UnitOfWork
	clock          clock.Clock
	penaltyPerHour float64
}

func NewSessionCommands(uow shared.UnitOfWork, clk clock.Clock, penaltyPerHour float64) SessionCommands {
	return &sessionCommandsImpl{
		uow:            uow,
		clock:          clk,
		penaltyPerHour: penaltyPerHour,
	}
}

func (s *sessionCommandsImpl) EnterParking(ctx context.Context, userID uuid.UUID, req reqdto.EnterParkingRequest) (*SessionResult, error) {
	if (req.ReservationID == nil) == (req.SubscriptionID == nil) {
		return nil, ErrInvalidRequest
	}

	now := s.clock.Now()

	var created *session.Session
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
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

		// Lock serializes the one-active-session check per lot; the
		// partial unique index on active sessions is the backstop.
		if lockErr := tx.Lots().LockByID(ctx, tx.DB(), lotSnap.ID); lockErr != nil {
			return errs.Wrap(lockErr, "failed to lock parking lot")
		}

		active, activeErr := tx.Reads().HasActiveSession(ctx, userID, lotSnap.ID)
		if activeErr != nil {
			return errs.Wrap(activeErr, "failed to check active sessions")
		}
		if active {
			return ErrSessionAlreadyActive
		}

		if req.ReservationID != nil {
			if err := s.validateReservation(ctx, tx, *req.ReservationID, userID, lotSnap.ID, now); err != nil {
				return err
			}
		} else {
			if err := s.validateSubscription(ctx, tx, *req.SubscriptionID, userID, lotSnap.ID, now); err != nil {
				return err
			}
		}

		entity, buildErr := session.NewSession(userID, lotSnap.ID, req.ReservationID, req.SubscriptionID, now)
		if buildErr != nil {
			return errs.Mark(buildErr, ErrInvalidRequest)
		}

		if _, createErr := tx.Sessions().Create(ctx, tx.DB(), entity); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.Mark(createErr, ErrSessionAlreadyActive)
			}
			return errs.Wrap(createErr, "failed to persist session")
		}
		created = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sessionResultFrom(created), nil
}

func (s *sessionCommandsImpl) ExitParking(ctx context.Context, sessionID, userID uuid.UUID) (*SessionResult, error) {
	now := s.clock.Now()

	var result *SessionResult
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sessSnap, err := tx.Reads().SessionByID(ctx, sessionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSessionNotFound)
			}
			return errs.Wrap(err, "failed to load session")
		}
		if sessSnap.UserID != userID {
			return ErrUnauthorized
		}
		// A completed session is no longer exitable.
		if sessSnap.Status != session.StatusActive.String() {
			return ErrSessionNotFound
		}

		lotSnap, err := tx.Reads().LotByID(ctx, sessSnap.LotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrParkingNotFound)
			}
			return errs.Wrap(err, "failed to load parking lot")
		}

		if lockErr := tx.Lots().LockByID(ctx, tx.DB(), lotSnap.ID); lockErr != nil {
			return errs.Wrap(lockErr, "failed to lock parking lot")
		}

		entity := session.ReconstructSession(
			sessSnap.ID, sessSnap.UserID, sessSnap.LotID,
			sessSnap.ReservationID, sessSnap.SubscriptionID,
			sessSnap.EntryTime, nil,
			0, 0,
			session.StatusActive,
			time.Time{}, time.Time{},
		)

		finalPrice, priceErr := lotSnap.Tariffs.PriceFor(entity.ElapsedMinutes(now))
		if priceErr != nil {
			return errs.Wrap(priceErr, "failed to price session")
		}

		penalty := 0.0
		if sessSnap.ReservationID != nil {
			resSnap, resErr := tx.Reads().ReservationByID(ctx, *sessSnap.ReservationID)
			if resErr != nil {
				return errs.Wrap(resErr, "failed to load backing reservation")
			}
			penalty = session.Penalty(now, resSnap.EndTime, s.penaltyPerHour)
		}

		if completeErr := entity.Complete(now, finalPrice, penalty); completeErr != nil {
			return errs.Mark(completeErr, ErrInvalidState)
		}

		if err := tx.Sessions().Complete(ctx, tx.DB(), entity.ID(), now, finalPrice, penalty); err != nil {
			return errs.Wrap(err, "failed to complete session")
		}

		result = sessionResultFrom(entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sessionCommandsImpl) validateReservation(ctx context.Context, tx shared.Tx, reservationID, userID, lotID uuid.UUID, now time.Time) error {
	snap, err := tx.Reads().ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrInvalidReservation)
		}
		return errs.Wrap(err, "failed to load reservation")
	}
	if snap.UserID != userID || snap.LotID != lotID {
		return ErrInvalidReservation
	}
	if snap.Status != reservation.StatusActive.String() {
		return ErrInvalidReservation
	}
	if now.Before(snap.StartTime) || now.After(snap.EndTime) {
		return ErrInvalidReservation
	}
	return nil
}

func (s *sessionCommandsImpl) validateSubscription(ctx context.Context, tx shared.Tx, subscriptionID, userID, lotID uuid.UUID, now time.Time) error {
	snap, err := tx.Reads().SubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrInvalidSubscription)
		}
		return errs.Wrap(err, "failed to load subscription")
	}
	if snap.UserID != userID || snap.LotID != lotID {
		return ErrInvalidSubscription
	}
	if !snap.IsActive || now.Before(snap.StartDate) || now.After(snap.EndDate) {
		return ErrInvalidSubscription
	}
	return nil
}

func sessionResultFrom(entity *session.Session) *SessionResult {
	return &SessionResult{
		ID:             entity.ID(),
		UserID:         entity.UserID(),
		LotID:          entity.LotID(),
		ReservationID:  entity.ReservationID(),
		SubscriptionID: entity.SubscriptionID(),
		EntryTime:      entity.EntryTime(),
		ExitTime:       entity.ExitTime(),
		FinalPrice:     entity.FinalPrice(),
		PenaltyAmount:  entity.PenaltyAmount(),
		Status:         entity.Status().String(),
	}
}
