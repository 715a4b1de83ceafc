package request

import (
	"github.com/google/uuid"
)

type EnterParkingRequest struct {
	LotID          uuid.UUID  `json:"lot_id" binding:"required"`
	ReservationID  *uuid.UUID `json:"reservation_id,omitempty"`
	SubscriptionID *uuid.UUID `json:"subscription_id,omitempty"`
}
