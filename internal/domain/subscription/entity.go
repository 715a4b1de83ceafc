package subscription

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNegativePrice = errors.New("subscription price cannot be negative")

// Subscription is a date-ranged parking entitlement independent of time
// slots. Immutable after creation except for the active flag.
type Subscription struct {
	id        uuid.UUID
	userID    uuid.UUID
	lotID     uuid.UUID
	plan      Plan
	price     float64
	startDate time.Time
	endDate   time.Time
	isActive  bool
	createdAt time.Time
}

func NewSubscription(userID, lotID uuid.UUID, plan Plan, price float64, startDate time.Time) (*Subscription, error) {
	if !plan.IsValid() {
		return nil, ErrInvalidPlan
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	endDate := startDate.Add(time.Duration(plan.DurationDays()) * 24 * time.Hour)

	return &Subscription{
		id:        uuid.New(),
		userID:    userID,
		lotID:     lotID,
		plan:      plan,
		price:     price,
		startDate: startDate,
		endDate:   endDate,
		isActive:  true,
	}, nil
}

func ReconstructSubscription(
	id, userID, lotID uuid.UUID,
	plan Plan,
	price float64,
	startDate, endDate time.Time,
	isActive bool,
	createdAt time.Time,
) *Subscription {
	return &Subscription{
		id:        id,
		userID:    userID,
		lotID:     lotID,
		plan:      plan,
		price:     price,
		startDate: startDate,
		endDate:   endDate,
		isActive:  isActive,
		createdAt: createdAt,
	}
}

// ValidAt reports whether the subscription covers the instant t,
// boundaries included.
func (s *Subscription) ValidAt(t time.Time) bool {
	return s.isActive && !t.Before(s.startDate) && !t.After(s.endDate)
}

func (s *Subscription) BelongsTo(userID uuid.UUID) bool {
	return s.userID == userID
}

func (s *Subscription) Deactivate() { s.isActive = false }

func (s *Subscription) ID() uuid.UUID        { return s.id }
func (s *Subscription) UserID() uuid.UUID    { return s.userID }
func (s *Subscription) LotID() uuid.UUID     { return s.lotID }
func (s *Subscription) Plan() Plan           { return s.plan }
func (s *Subscription) Price() float64       { return s.price }
func (s *Subscription) StartDate() time.Time { return s.startDate }
func (s *Subscription) EndDate() time.Time   { return s.endDate }
func (s *Subscription) IsActive() bool       { return s.isActive }
func (s *Subscription) CreatedAt() time.Time { return s.createdAt }
