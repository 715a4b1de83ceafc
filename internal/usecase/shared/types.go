package shared

import (
	"time"

	"parkhub/internal/domain/parking"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}

type LotSnapshot struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	Address    string
	Latitude   float64
	Longitude  float64
	TotalSpots int
	Tariffs    parking.TariffTable
	Schedule   parking.Schedule
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Entity rebuilds the domain aggregate from the snapshot for mutation.
func (s *LotSnapshot) Entity() *parking.Lot {
	return parking.ReconstructLot(
		s.ID, s.OwnerID,
		s.Name, s.Address,
		s.Latitude, s.Longitude,
		s.TotalSpots,
		s.Tariffs, s.Schedule,
		s.IsActive,
		s.CreatedAt, s.UpdatedAt,
	)
}

type ReservationSnapshot struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	LotID          uuid.UUID
	StartTime      time.Time
	EndTime        time.Time
	Status         string
	EstimatedPrice float64
}

type SubscriptionSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	LotID     uuid.UUID
	Plan      string
	Price     float64
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
}

type SessionSnapshot struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	LotID          uuid.UUID
	ReservationID  *uuid.UUID
	SubscriptionID *uuid.UUID
	EntryTime      time.Time
	Status         string
}
