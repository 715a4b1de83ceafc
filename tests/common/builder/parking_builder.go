//go:build unit || e2e

package builder

import (
	"time"

	"parkhub/internal/domain/parking"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ParkingBuilder struct {
	OwnerID    uuid.UUID
	Name       string
	Address    string
	Latitude   float64
	Longitude  float64
	TotalSpots int
	Tariffs    parking.TariffTable
	Schedule   parking.Schedule
	IsActive   bool
}

func NewParkingBuilder() *ParkingBuilder {
	return &ParkingBuilder{
		OwnerID:    uuid.New(),
		Name:       "Central Garage",
		Address:    "1 Main St",
		Latitude:   35.6812,
		Longitude:  139.7671,
		TotalSpots: 10,
		Tariffs: parking.TariffTable{
			{UpToMinutes: 60, PricePerHour: 2.5},
			{UpToMinutes: 0, PricePerHour: 2.0},
		},
		Schedule: parking.Schedule{},
		IsActive: true,
	}
}

func (p *ParkingBuilder) With(mutate func(*ParkingBuilder)) *ParkingBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ParkingBuilder) BuildDomain() (*parking.Lot, error) {
	return parking.NewLot(
		p.OwnerID, p.Name, p.Address,
		p.Latitude, p.Longitude,
		p.TotalSpots, p.Tariffs, p.Schedule,
	)
}

func (p *ParkingBuilder) BuildView() *queries.ParkingView {
	now := time.Now()
	return &queries.ParkingView{
		ID:         uuid.New(),
		OwnerID:    p.OwnerID,
		Name:       p.Name,
		Address:    p.Address,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		TotalSpots: p.TotalSpots,
		Tariffs:    p.Tariffs,
		Schedule:   p.Schedule,
		IsActive:   p.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (p *ParkingBuilder) BuildSnapshot() *shared.LotSnapshot {
	now := time.Now()
	return &shared.LotSnapshot{
		ID:         uuid.New(),
		OwnerID:    p.OwnerID,
		Name:       p.Name,
		Address:    p.Address,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		TotalSpots: p.TotalSpots,
		Tariffs:    p.Tariffs,
		Schedule:   p.Schedule,
		IsActive:   p.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (p *ParkingBuilder) BuildCreateRequestDTO() reqdto.CreateParkingRequest {
	tariffs := make([]reqdto.TariffInput, 0, len(p.Tariffs))
	for _, t := range p.Tariffs {
		tariffs = append(tariffs, reqdto.TariffInput{
			UpToMinutes:  t.UpToMinutes,
			PricePerHour: t.PricePerHour,
		})
	}
	schedule := make(map[string]reqdto.DayHoursInput, len(p.Schedule))
	for day, hours := range p.Schedule {
		schedule[day] = reqdto.DayHoursInput{Open: hours.Open, Close: hours.Close}
	}
	return reqdto.CreateParkingRequest{
		Name:       p.Name,
		Address:    p.Address,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		TotalSpots: p.TotalSpots,
		Tariffs:    tariffs,
		Schedule:   schedule,
	}
}

// Fluent builder methods
func (p *ParkingBuilder) WithOwnerID(ownerID uuid.UUID) *ParkingBuilder {
	p.OwnerID = ownerID
	return p
}

func (p *ParkingBuilder) WithName(name string) *ParkingBuilder {
	p.Name = name
	return p
}

func (p *ParkingBuilder) WithTotalSpots(spots int) *ParkingBuilder {
	p.TotalSpots = spots
	return p
}

func (p *ParkingBuilder) WithCoordinates(lat, lon float64) *ParkingBuilder {
	p.Latitude = lat
	p.Longitude = lon
	return p
}

func (p *ParkingBuilder) WithTariffs(tariffs parking.TariffTable) *ParkingBuilder {
	p.Tariffs = tariffs
	return p
}

func (p *ParkingBuilder) WithSchedule(schedule parking.Schedule) *ParkingBuilder {
	p.Schedule = schedule
	return p
}

func (p *ParkingBuilder) AsInactive() *ParkingBuilder {
	p.IsActive = false
	return p
}
