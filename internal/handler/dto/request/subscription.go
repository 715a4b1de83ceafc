package request

import (
	"github.com/google/uuid"
)

type SubscribeRequest struct {
	LotID uuid.UUID `json:"lot_id" binding:"required"`
	Plan  string    `json:"plan" binding:"required,oneof=daily weekly monthly yearly"`
	Price float64   `json:"price" binding:"min=0"`
	// Unix seconds; defaults to the current time when omitted.
	StartDate *int64 `json:"start_date,omitempty"`
}
