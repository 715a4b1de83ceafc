//go:build unit || e2e

package builder

import (
	"time"

	"parkhub/internal/domain/subscription"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscriptionBuilder struct {
	UserID    uuid.UUID
	LotID     uuid.UUID
	Plan      string
	Price     float64
	StartDate time.Time
	IsActive  bool
}

func NewSubscriptionBuilder() *SubscriptionBuilder {
	return &SubscriptionBuilder{
		UserID:    uuid.New(),
		LotID:     uuid.New(),
		Plan:      "monthly",
		Price:     50.0,
		StartDate: time.Now().Truncate(time.Minute),
		IsActive:  true,
	}
}

func (s *SubscriptionBuilder) With(mutate func(*SubscriptionBuilder)) *SubscriptionBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *SubscriptionBuilder) BuildDomain() (*subscription.Subscription, error) {
	plan, err := subscription.NewPlan(s.Plan)
	if err != nil {
		return nil, err
	}
	return subscription.NewSubscription(s.UserID, s.LotID, plan, s.Price, s.StartDate)
}

func (s *SubscriptionBuilder) endDate() time.Time {
	plan := subscription.Plan(s.Plan)
	return s.StartDate.Add(time.Duration(plan.DurationDays()) * 24 * time.Hour)
}

func (s *SubscriptionBuilder) BuildView() *queries.SubscriptionView {
	return &queries.SubscriptionView{
		ID:        uuid.New(),
		UserID:    s.UserID,
		LotID:     s.LotID,
		Plan:      s.Plan,
		Price:     s.Price,
		StartDate: s.StartDate,
		EndDate:   s.endDate(),
		IsActive:  s.IsActive,
		CreatedAt: s.StartDate,
	}
}

func (s *SubscriptionBuilder) BuildSnapshot() *shared.SubscriptionSnapshot {
	return &shared.SubscriptionSnapshot{
		ID:        uuid.New(),
		UserID:    s.UserID,
		LotID:     s.LotID,
		Plan:      s.Plan,
		Price:     s.Price,
		StartDate: s.StartDate,
		EndDate:   s.endDate(),
		IsActive:  s.IsActive,
	}
}

func (s *SubscriptionBuilder) BuildSubscribeRequestDTO() reqdto.SubscribeRequest {
	start := s.StartDate.Unix()
	return reqdto.SubscribeRequest{
		LotID:     s.LotID,
		Plan:      s.Plan,
		Price:     s.Price,
		StartDate: &start,
	}
}

// Fluent builder methods
func (s *SubscriptionBuilder) WithUserID(userID uuid.UUID) *SubscriptionBuilder {
	s.UserID = userID
	return s
}

func (s *SubscriptionBuilder) WithLotID(lotID uuid.UUID) *SubscriptionBuilder {
	s.LotID = lotID
	return s
}

func (s *SubscriptionBuilder) WithPlan(plan string) *SubscriptionBuilder {
	s.Plan = plan
	return s
}

func (s *SubscriptionBuilder) WithPrice(price float64) *SubscriptionBuilder {
	s.Price = price
	return s
}

func (s *SubscriptionBuilder) WithStartDate(start time.Time) *SubscriptionBuilder {
	s.StartDate = start
	return s
}

func (s *SubscriptionBuilder) AsInactive() *SubscriptionBuilder {
	s.IsActive = false
	return s
}
