//go:build unit || e2e

package builder

import (
	"time"

	"parkhub/internal/domain/session"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	UserID         uuid.UUID
	LotID          uuid.UUID
	ReservationID  *uuid.UUID
	SubscriptionID *uuid.UUID
	EntryTime      time.Time
	Status         string
}

func NewSessionBuilder() *SessionBuilder {
	reservationID := uuid.New()
	return &SessionBuilder{
		UserID:        uuid.New(),
		LotID:         uuid.New(),
		ReservationID: &reservationID,
		EntryTime:     time.Now().Truncate(time.Minute),
		Status:        "active",
	}
}

func (s *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *SessionBuilder) BuildDomain() (*session.Session, error) {
	return session.NewSession(s.UserID, s.LotID, s.ReservationID, s.SubscriptionID, s.EntryTime)
}

func (s *SessionBuilder) BuildView() *queries.SessionView {
	return &queries.SessionView{
		ID:             uuid.New(),
		UserID:         s.UserID,
		LotID:          s.LotID,
		ReservationID:  s.ReservationID,
		SubscriptionID: s.SubscriptionID,
		EntryTime:      s.EntryTime,
		Status:         s.Status,
		CreatedAt:      s.EntryTime,
	}
}

func (s *SessionBuilder) BuildSnapshot() *shared.SessionSnapshot {
	return &shared.SessionSnapshot{
		ID:             uuid.New(),
		UserID:         s.UserID,
		LotID:          s.LotID,
		ReservationID:  s.ReservationID,
		SubscriptionID: s.SubscriptionID,
		EntryTime:      s.EntryTime,
		Status:         s.Status,
	}
}

func (s *SessionBuilder) BuildEnterRequestDTO() reqdto.EnterParkingRequest {
	return reqdto.EnterParkingRequest{
		LotID:          s.LotID,
		ReservationID:  s.ReservationID,
		SubscriptionID: s.SubscriptionID,
	}
}

// Fluent builder methods
func (s *SessionBuilder) WithUserID(userID uuid.UUID) *SessionBuilder {
	s.UserID = userID
	return s
}

func (s *SessionBuilder) WithLotID(lotID uuid.UUID) *SessionBuilder {
	s.LotID = lotID
	return s
}

func (s *SessionBuilder) WithEntryTime(entry time.Time) *SessionBuilder {
	s.EntryTime = entry
	return s
}

func (s *SessionBuilder) BackedByReservation(reservationID uuid.UUID) *SessionBuilder {
	s.ReservationID = &reservationID
	s.SubscriptionID = nil
	return s
}

func (s *SessionBuilder) BackedBySubscription(subscriptionID uuid.UUID) *SessionBuilder {
	s.ReservationID = nil
	s.SubscriptionID = &subscriptionID
	return s
}

func (s *SessionBuilder) WithoutBacking() *SessionBuilder {
	s.ReservationID = nil
	s.SubscriptionID = nil
	return s
}
