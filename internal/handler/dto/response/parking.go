package response

import (
	"time"

	"parkhub/internal/domain/parking"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ParkingResponse struct {
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
}

func FromParkingView(view *queries.ParkingView) ParkingResponse {
	return ParkingResponse{
		ID:         view.ID,
		OwnerID:    view.OwnerID,
		Name:       view.Name,
		Address:    view.Address,
		Latitude:   view.Latitude,
		Longitude:  view.Longitude,
		TotalSpots: view.TotalSpots,
		Tariffs:    view.Tariffs,
		Schedule:   view.Schedule,
		IsActive:   view.IsActive,
		CreatedAt:  view.CreatedAt,
	}
}

func FromParkingViews(views []queries.ParkingView) []ParkingResponse {
	out := make([]ParkingResponse, 0, len(views))
	for i := range views {
		out = append(out, FromParkingView(&views[i]))
	}
	return out
}

type NearbyParkingResponse struct {
	ParkingResponse
	DistanceKm float64 `json:"distance_km"`
}

func FromNearbyParkingViews(views []queries.NearbyParkingView) []NearbyParkingResponse {
	out := make([]NearbyParkingResponse, 0, len(views))
	for i := range views {
		out = append(out, NearbyParkingResponse{
			ParkingResponse: FromParkingView(&views[i].ParkingView),
			DistanceKm:      views[i].DistanceKm,
		})
	}
	return out
}

type AvailabilityResponse struct {
	LotID          uuid.UUID `json:"lot_id"`
	At             time.Time `json:"at"`
	TotalSpots     int       `json:"total_spots"`
	OccupiedSpots  int       `json:"occupied_spots"`
	AvailableSpots int       `json:"available_spots"`
}

func FromAvailabilityView(view *queries.AvailabilityView) AvailabilityResponse {
	return AvailabilityResponse{
		LotID:          view.LotID,
		At:             view.At,
		TotalSpots:     view.TotalSpots,
		OccupiedSpots:  view.OccupiedSpots,
		AvailableSpots: view.AvailableSpots,
	}
}

type RevenueResponse struct {
	LotID               uuid.UUID `json:"lot_id"`
	Year                int       `json:"year"`
	Month               int       `json:"month"`
	ReservationRevenue  float64   `json:"reservation_revenue"`
	SessionRevenue      float64   `json:"session_revenue"`
	SubscriptionRevenue float64   `json:"subscription_revenue"`
	Total               float64   `json:"total"`
}

func FromRevenueView(view *queries.RevenueView) RevenueResponse {
	return RevenueResponse{
		LotID:               view.LotID,
		Year:                view.Year,
		Month:               view.Month,
		ReservationRevenue:  view.ReservationRevenue,
		SessionRevenue:      view.SessionRevenue,
		SubscriptionRevenue: view.SubscriptionRevenue,
		Total:               view.Total,
	}
}
