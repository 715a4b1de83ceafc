package queries

import (
	"time"

	"parkhub/internal/domain/parking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AvailabilityView struct {
	LotID          uuid.UUID `json:"lot_id"`
	At             time.Time `json:"at"`
	TotalSpots     int       `json:"total_spots"`
	OccupiedSpots  int       `json:"occupied_spots"`
	AvailableSpots int       `json:"available_spots"`
}

type ParkingView struct {
	ID         uuid.UUID           `json:"id"`
	OwnerID    uuid.UUID           `json:"owner_id"`
	Name       string              `json:"name"`
	Address    string              `json:"address"`
	Latitude   float64             `json:"latitude"`
	Longitude  float64             `json:"longitude"`
	TotalSpots int                 `json:"total_spots"`
	Tariffs    parking.TariffTable `json:"tariffs"`
	Schedule   parking.Schedule    `json:"schedule"`
	IsActive   bool                `json:"is_active"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type NearbyParkingView struct {
	ParkingView
	DistanceKm float64 `json:"distance_km"`
}

type ReservationView struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	LotID          uuid.UUID `json:"lot_id"`
	LotName        string    `json:"lot_name"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Status         string    `json:"status"`
	EstimatedPrice float64   `json:"estimated_price"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SessionView struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	LotID          uuid.UUID  `json:"lot_id"`
	ReservationID  *uuid.UUID `json:"reservation_id,omitempty"`
	SubscriptionID *uuid.UUID `json:"subscription_id,omitempty"`
	EntryTime      time.Time  `json:"entry_time"`
	ExitTime       *time.Time `json:"exit_time,omitempty"`
	FinalPrice     float64    `json:"final_price"`
	PenaltyAmount  float64    `json:"penalty_amount"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

type OverstayView struct {
	SessionID       uuid.UUID `json:"session_id"`
	UserID          uuid.UUID `json:"user_id"`
	ReservationID   uuid.UUID `json:"reservation_id"`
	ReservationEnd  time.Time `json:"reservation_end"`
	OverstayMinutes int64     `json:"overstay_minutes"`
}

type SubscriptionView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	LotID     uuid.UUID `json:"lot_id"`
	Plan      string    `json:"plan"`
	Price     float64   `json:"price"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type RevenueView struct {
	LotID               uuid.UUID `json:"lot_id"`
	Year                int       `json:"year"`
	Month               int       `json:"month"`
	ReservationRevenue  float64   `json:"reservation_revenue"`
	SessionRevenue      float64   `json:"session_revenue"`
	SubscriptionRevenue float64   `json:"subscription_revenue"`
	Total               float64   `json:"total"`
}

// SessionCharge is one completed session's contribution to revenue.
type SessionCharge struct {
	FinalPrice    float64
	PenaltyAmount float64
}
