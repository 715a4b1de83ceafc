package response

import (
	"time"

	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionResponse struct {
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
}

func FromSessionResult(result *commands.SessionResult) SessionResponse {
	return SessionResponse{
		ID:             result.ID,
		UserID:         result.UserID,
		LotID:          result.LotID,
		ReservationID:  result.ReservationID,
		SubscriptionID: result.SubscriptionID,
		EntryTime:      result.EntryTime,
		ExitTime:       result.ExitTime,
		FinalPrice:     result.FinalPrice,
		PenaltyAmount:  result.PenaltyAmount,
		Status:         result.Status,
	}
}

func FromSessionView(view *queries.SessionView) SessionResponse {
	return SessionResponse{
		ID:             view.ID,
		UserID:         view.UserID,
		LotID:          view.LotID,
		ReservationID:  view.ReservationID,
		SubscriptionID: view.SubscriptionID,
		EntryTime:      view.EntryTime,
		ExitTime:       view.ExitTime,
		FinalPrice:     view.FinalPrice,
		PenaltyAmount:  view.PenaltyAmount,
		Status:         view.Status,
	}
}

func FromSessionViews(views []queries.SessionView) []SessionResponse {
	out := make([]SessionResponse, 0, len(views))
	for i := range views {
		out = append(out, FromSessionView(&views[i]))
	}
	return out
}

type OverstayResponse struct {
	SessionID       uuid.UUID `json:"session_id"`
	UserID          uuid.UUID `json:"user_id"`
	ReservationID   uuid.UUID `json:"reservation_id"`
	ReservationEnd  time.Time `json:"reservation_end"`
	OverstayMinutes int64     `json:"overstay_minutes"`
}

func FromOverstayViews(views []queries.OverstayView) []OverstayResponse {
	out := make([]OverstayResponse, 0, len(views))
	for _, v := range views {
		out = append(out, OverstayResponse{
			SessionID:       v.SessionID,
			UserID:          v.UserID,
			ReservationID:   v.ReservationID,
			ReservationEnd:  v.ReservationEnd,
			OverstayMinutes: v.OverstayMinutes,
		})
	}
	return out
}
