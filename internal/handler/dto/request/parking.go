package request

import (
	"parkhub/internal/domain/parking"
)

type TariffInput struct {
	UpToMinutes  int     `json:"up_to_minutes" binding:"min=0"`
	PricePerHour float64 `json:"price_per_hour" binding:"min=0"`
}

type DayHoursInput struct {
	Open  string `json:"open" binding:"required"`
	Close string `json:"close" binding:"required"`
}

type CreateParkingRequest struct {
	Name       string                   `json:"name" binding:"required"`
	Address    string                   `json:"address" binding:"required"`
	Latitude   float64                  `json:"latitude" binding:"min=-90,max=90"`
	Longitude  float64                  `json:"longitude" binding:"min=-180,max=180"`
	TotalSpots int                      `json:"total_spots" binding:"required,min=1"`
	Tariffs    []TariffInput            `json:"tariffs" binding:"required,min=1"`
	Schedule   map[string]DayHoursInput `json:"schedule"`
}

func (r *CreateParkingRequest) ToDomain() (parking.TariffTable, parking.Schedule, error) {
	tariffs, err := TariffsToDomain(r.Tariffs)
	if err != nil {
		return nil, nil, err
	}
	schedule := ScheduleToDomain(r.Schedule)
	if err := schedule.Validate(); err != nil {
		return nil, nil, err
	}
	return tariffs, schedule, nil
}

type UpdateParkingRequest struct {
	Name       *string                   `json:"name,omitempty"`
	Address    *string                   `json:"address,omitempty"`
	Latitude   *float64                  `json:"latitude,omitempty"`
	Longitude  *float64                  `json:"longitude,omitempty"`
	TotalSpots *int                      `json:"total_spots,omitempty"`
	Tariffs    *[]TariffInput            `json:"tariffs,omitempty"`
	Schedule   *map[string]DayHoursInput `json:"schedule,omitempty"`
	IsActive   *bool                     `json:"is_active,omitempty"`
}

func TariffsToDomain(inputs []TariffInput) (parking.TariffTable, error) {
	table := make(parking.TariffTable, 0, len(inputs))
	for _, in := range inputs {
		table = append(table, parking.Tariff{
			UpToMinutes:  in.UpToMinutes,
			PricePerHour: in.PricePerHour,
		})
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func ScheduleToDomain(inputs map[string]DayHoursInput) parking.Schedule {
	schedule := make(parking.Schedule, len(inputs))
	for day, hours := range inputs {
		schedule[day] = parking.DayHours{Open: hours.Open, Close: hours.Close}
	}
	return schedule
}
