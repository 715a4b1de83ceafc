package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCredentialRequired = errors.New("exactly one of reservation or subscription must back a session")
	ErrAlreadyCompleted   = errors.New("session is already completed")
	ErrNegativeAmount     = errors.New("session amounts cannot be negative")
)

// Session is one physical park-in-to-park-out occupancy event, backed by
// exactly one reservation or one subscription. The transition to completed
// is one-way.
type Session struct {
	id             uuid.UUID
	userID         uuid.UUID
	lotID          uuid.UUID
	reservationID  *uuid.UUID
	subscriptionID *uuid.UUID
	entryTime      time.Time
	exitTime       *time.Time
	finalPrice     float64
	penaltyAmount  float64
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewSession(userID, lotID uuid.UUID, reservationID, subscriptionID *uuid.UUID, entryTime time.Time) (*Session, error) {
	if (reservationID == nil) == (subscriptionID == nil) {
		return nil, ErrCredentialRequired
	}

	return &Session{
		id:             uuid.New(),
		userID:         userID,
		lotID:          lotID,
		reservationID:  reservationID,
		subscriptionID: subscriptionID,
		entryTime:      entryTime,
		status:         StatusActive,
	}, nil
}

func ReconstructSession(
	id, userID, lotID uuid.UUID,
	reservationID, subscriptionID *uuid.UUID,
	entryTime time.Time,
	exitTime *time.Time,
	finalPrice, penaltyAmount float64,
	status Status,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:             id,
		userID:         userID,
		lotID:          lotID,
		reservationID:  reservationID,
		subscriptionID: subscriptionID,
		entryTime:      entryTime,
		exitTime:       exitTime,
		finalPrice:     finalPrice,
		penaltyAmount:  penaltyAmount,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Complete closes the session with the priced outcome. Completing an
// already-completed session fails: the transition is irreversible.
func (s *Session) Complete(exitTime time.Time, finalPrice, penaltyAmount float64) error {
	if s.status != StatusActive {
		return ErrAlreadyCompleted
	}
	if finalPrice < 0 || penaltyAmount < 0 {
		return ErrNegativeAmount
	}

	s.exitTime = &exitTime
	s.finalPrice = finalPrice
	s.penaltyAmount = penaltyAmount
	s.status = StatusCompleted
	return nil
}

// ElapsedMinutes is the whole-minute parked duration at instant now,
// truncated.
func (s *Session) ElapsedMinutes(now time.Time) int64 {
	return (now.Unix() - s.entryTime.Unix()) / 60
}

func (s *Session) IsActive() bool {
	return s.status == StatusActive
}

func (s *Session) BelongsTo(userID uuid.UUID) bool {
	return s.userID == userID
}

func (s *Session) ID() uuid.UUID              { return s.id }
func (s *Session) UserID() uuid.UUID          { return s.userID }
func (s *Session) LotID() uuid.UUID           { return s.lotID }
func (s *Session) ReservationID() *uuid.UUID  { return s.reservationID }
func (s *Session) SubscriptionID() *uuid.UUID { return s.subscriptionID }
func (s *Session) EntryTime() time.Time       { return s.entryTime }
func (s *Session) ExitTime() *time.Time       { return s.exitTime }
func (s *Session) FinalPrice() float64        { return s.finalPrice }
func (s *Session) PenaltyAmount() float64     { return s.penaltyAmount }
func (s *Session) Status() Status             { return s.status }
func (s *Session) CreatedAt() time.Time       { return s.createdAt }
func (s *Session) UpdatedAt() time.Time       { return s.updatedAt }
