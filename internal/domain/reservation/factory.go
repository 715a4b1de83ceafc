package reservation

import (
	"parkhub/internal/domain/parking"

	"github.com/google/uuid"
)

// Factory builds priced reservations from a lot's tariff table. Pricing
// uses the truncated whole-minute duration of the slot.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) CreateReservation(
	lot *parking.Lot,
	userID uuid.UUID,
	slot TimeSlot,
) (*Reservation, error) {
	if !lot.IsActive() {
		return nil, parking.ErrLotInactive
	}

	estimatedPrice, err := lot.Tariffs().PriceFor(slot.Minutes())
	if err != nil {
		return nil, err
	}

	return NewReservation(userID, lot.ID(), slot, estimatedPrice)
}
