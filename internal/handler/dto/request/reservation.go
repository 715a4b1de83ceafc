package request

import (
	"time"

	"parkhub/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	LotID     uuid.UUID `json:"lot_id" binding:"required"`
	StartTime int64     `json:"start_time" binding:"required"`
	EndTime   int64     `json:"end_time" binding:"required"`
}

// Timestamps travel as unix seconds; boundary rules live in the domain.
func (r *CreateReservationRequest) ToDomain() (reservation.TimeSlot, error) {
	return reservation.NewTimeSlot(
		time.Unix(r.StartTime, 0).UTC(),
		time.Unix(r.EndTime, 0).UTC(),
	)
}
