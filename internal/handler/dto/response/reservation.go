package response

import (
	"time"

	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	LotID          uuid.UUID `json:"lot_id"`
	LotName        string    `json:"lot_name,omitempty"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Status         string    `json:"status"`
	EstimatedPrice float64   `json:"estimated_price"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

func FromReservationResult(result *commands.ReservationResult) ReservationResponse {
	return ReservationResponse{
		ID:             result.ID,
		UserID:         result.UserID,
		LotID:          result.LotID,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Status:         result.Status,
		EstimatedPrice: result.EstimatedPrice,
	}
}

func FromReservationView(view *queries.ReservationView) ReservationResponse {
	return ReservationResponse{
		ID:             view.ID,
		UserID:         view.UserID,
		LotID:          view.LotID,
		LotName:        view.LotName,
		StartTime:      view.StartTime,
		EndTime:        view.EndTime,
		Status:         view.Status,
		EstimatedPrice: view.EstimatedPrice,
		CreatedAt:      view.CreatedAt,
	}
}

func FromReservationViews(views []queries.ReservationView) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(views))
	for i := range views {
		out = append(out, FromReservationView(&views[i]))
	}
	return out
}
