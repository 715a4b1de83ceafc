//go:build unit || e2e

package builder

import (
	"time"

	"parkhub/internal/domain/reservation"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	UserID         uuid.UUID
	LotID          uuid.UUID
	LotName        string
	StartTime      time.Time
	EndTime        time.Time
	Status         string
	EstimatedPrice float64
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Now().Add(time.Hour).Truncate(time.Minute)
	return &ReservationBuilder{
		UserID:         uuid.New(),
		LotID:          uuid.New(),
		LotName:        "Central Garage",
		StartTime:      start,
		EndTime:        start.Add(2 * time.Hour),
		Status:         "active",
		EstimatedPrice: 5.0,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildSlot() (reservation.TimeSlot, error) {
	return reservation.NewTimeSlot(r.StartTime, r.EndTime)
}

func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := r.BuildSlot()
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(r.UserID, r.LotID, slot, r.EstimatedPrice)
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:             uuid.New(),
		UserID:         r.UserID,
		LotID:          r.LotID,
		LotName:        r.LotName,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Status:         r.Status,
		EstimatedPrice: r.EstimatedPrice,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (r *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:             uuid.New(),
		UserID:         r.UserID,
		LotID:          r.LotID,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Status:         r.Status,
		EstimatedPrice: r.EstimatedPrice,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		LotID:     r.LotID,
		StartTime: r.StartTime.Unix(),
		EndTime:   r.EndTime.Unix(),
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) WithLotID(lotID uuid.UUID) *ReservationBuilder {
	r.LotID = lotID
	return r
}

func (r *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = end
	return r
}

func (r *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithEstimatedPrice(price float64) *ReservationBuilder {
	r.EstimatedPrice = price
	return r
}
