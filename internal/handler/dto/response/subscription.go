package response

import (
	"time"

	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	LotID     uuid.UUID `json:"lot_id"`
	Plan      string    `json:"plan"`
	Price     float64   `json:"price"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
}

func FromSubscriptionResult(result *commands.SubscriptionResult) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        result.ID,
		UserID:    result.UserID,
		LotID:     result.LotID,
		Plan:      result.Plan,
		Price:     result.Price,
		StartDate: result.StartDate,
		EndDate:   result.EndDate,
		IsActive:  true,
	}
}

func FromSubscriptionView(view *queries.SubscriptionView) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        view.ID,
		UserID:    view.UserID,
		LotID:     view.LotID,
		Plan:      view.Plan,
		Price:     view.Price,
		StartDate: view.StartDate,
		EndDate:   view.EndDate,
		IsActive:  view.IsActive,
	}
}

func FromSubscriptionViews(views []queries.SubscriptionView) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(views))
	for i := range views {
		out = append(out, FromSubscriptionView(&views[i]))
	}
	return out
}
