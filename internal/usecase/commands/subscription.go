package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"parkhub/internal/domain/subscription"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"
)

var ErrInvalidPlan = errs.New("invalid subscription plan")

type SubscriptionResult struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	LotID     uuid.UUID
	Plan      string
	Price     float64
	StartDate time.Time
	EndDate   time.Time
}

type SubscriptionCommands interface {
	Subscribe(ctx context.Context, userID uuid.UUID, req reqdto.SubscribeRequest) (*SubscriptionResult, error)
}

type subscriptionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSubscriptionCommands(uow shared.UnitOfWork, clk clock.Clock) SubscriptionCommands {
	return &subscriptionCommandsImpl{uow: uow, clock: clk}
}

func (s *subscriptionCommandsImpl) Subscribe(ctx context.Context, userID uuid.UUID, req reqdto.SubscribeRequest) (*SubscriptionResult, error) {
	plan, err := subscription.NewPlan(req.Plan)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlan)
	}

	startDate := s.clock.Now()
	if req.StartDate != nil {
		startDate = time.Unix(*req.StartDate, 0).UTC()
	}

	var created *subscription.Subscription
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
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
		if !lotSnap.IsActive {
			return ErrParkingClosed
		}

		entity, buildErr := subscription.NewSubscription(userID, lotSnap.ID, plan, req.Price, startDate)
		if buildErr != nil {
			return errs.Mark(buildErr, ErrInvalidPlan)
		}

		if _, createErr := tx.Subscriptions().Create(ctx, tx.DB(), entity); createErr != nil {
			return errs.Wrap(createErr, "failed to persist subscription")
		}
		created = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SubscriptionResult{
		ID:        created.ID(),
		UserID:    created.UserID(),
		LotID:     created.LotID(),
		Plan:      created.Plan().String(),
		Price:     created.Price(),
		StartDate: created.StartDate(),
		EndDate:   created.EndDate(),
	}, nil
}
