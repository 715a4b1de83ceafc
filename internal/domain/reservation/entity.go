package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot = errors.New("invalid time slot")
	ErrNotActive       = errors.New("reservation is not active")
	ErrNegativePrice   = errors.New("price cannot be negative")
)

type Reservation struct {
	id             uuid.UUID
	userID         uuid.UUID
	lotID          uuid.UUID
	timeSlot       TimeSlot
	status         Status
	estimatedPrice float64
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReservation(userID, lotID uuid.UUID, slot TimeSlot, estimatedPrice float64) (*Reservation, error) {
	if estimatedPrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:             uuid.New(),
		userID:         userID,
		lotID:          lotID,
		timeSlot:       slot,
		status:         StatusActive,
		estimatedPrice: estimatedPrice,
	}, nil
}

func ReconstructReservation(
	id, userID, lotID uuid.UUID,
	timeSlot TimeSlot,
	status Status,
	estimatedPrice float64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		userID:         userID,
		lotID:          lotID,
		timeSlot:       timeSlot,
		status:         status,
		estimatedPrice: estimatedPrice,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Cancel is only legal while the reservation is active; completed and
// already-cancelled reservations are read-only.
func (r *Reservation) Cancel() error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) BelongsTo(userID uuid.UUID) bool {
	return r.userID == userID
}

// CoversInstant reports whether t lies within the reserved window,
// boundaries included. Used to gate session entry.
func (r *Reservation) CoversInstant(t time.Time) bool {
	return r.timeSlot.Contains(t)
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) UserID() uuid.UUID      { return r.userID }
func (r *Reservation) LotID() uuid.UUID       { return r.lotID }
func (r *Reservation) TimeSlot() TimeSlot     { return r.timeSlot }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) EstimatedPrice() float64 { return r.estimatedPrice }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
