package parking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSpotCount   = errors.New("total spots must be positive")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrEmptyName          = errors.New("lot name cannot be empty")
	ErrLotInactive        = errors.New("lot is inactive")
)

// Lot is a parking facility with a fixed spot count, an ordered tariff
// table and per-weekday opening hours.
type Lot struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	name       string
	address    string
	latitude   float64
	longitude  float64
	totalSpots int
	tariffs    TariffTable
	schedule   Schedule
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewLot(
	ownerID uuid.UUID,
	name, address string,
	latitude, longitude float64,
	totalSpots int,
	tariffs TariffTable,
	schedule Schedule,
) (*Lot, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if totalSpots <= 0 {
		return nil, ErrInvalidSpotCount
	}
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, ErrInvalidCoordinates
	}
	if err := tariffs.Validate(); err != nil {
		return nil, err
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	return &Lot{
		id:         uuid.New(),
		ownerID:    ownerID,
		name:       name,
		address:    address,
		latitude:   latitude,
		longitude:  longitude,
		totalSpots: totalSpots,
		tariffs:    tariffs,
		schedule:   schedule,
		isActive:   true,
	}, nil
}

func ReconstructLot(
	id, ownerID uuid.UUID,
	name, address string,
	latitude, longitude float64,
	totalSpots int,
	tariffs TariffTable,
	schedule Schedule,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Lot {
	return &Lot{
		id:         id,
		ownerID:    ownerID,
		name:       name,
		address:    address,
		latitude:   latitude,
		longitude:  longitude,
		totalSpots: totalSpots,
		tariffs:    tariffs,
		schedule:   schedule,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (l *Lot) Rename(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	l.name = name
	return nil
}

func (l *Lot) Relocate(address string, latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return ErrInvalidCoordinates
	}
	l.address = address
	l.latitude = latitude
	l.longitude = longitude
	return nil
}

func (l *Lot) Resize(totalSpots int) error {
	if totalSpots <= 0 {
		return ErrInvalidSpotCount
	}
	l.totalSpots = totalSpots
	return nil
}

func (l *Lot) UpdateTariffs(tariffs TariffTable) error {
	if err := tariffs.Validate(); err != nil {
		return err
	}
	l.tariffs = tariffs
	return nil
}

func (l *Lot) UpdateSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	l.schedule = schedule
	return nil
}

func (l *Lot) Deactivate() { l.isActive = false }
func (l *Lot) Activate()   { l.isActive = true }

func (l *Lot) OwnedBy(userID uuid.UUID) bool {
	return l.ownerID == userID
}

func (l *Lot) ID() uuid.UUID        { return l.id }
func (l *Lot) OwnerID() uuid.UUID   { return l.ownerID }
func (l *Lot) Name() string         { return l.name }
func (l *Lot) Address() string      { return l.address }
func (l *Lot) Latitude() float64    { return l.latitude }
func (l *Lot) Longitude() float64   { return l.longitude }
func (l *Lot) TotalSpots() int      { return l.totalSpots }
func (l *Lot) Tariffs() TariffTable { return l.tariffs }
func (l *Lot) Schedule() Schedule   { return l.schedule }
func (l *Lot) IsActive() bool       { return l.isActive }
func (l *Lot) CreatedAt() time.Time { return l.createdAt }
func (l *Lot) UpdatedAt() time.Time { return l.updatedAt }
