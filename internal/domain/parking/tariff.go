package parking

import "errors"

var (
	ErrInvalidTariffConfiguration = errors.New("invalid tariff configuration")
	ErrNegativeDuration           = errors.New("parked duration cannot be negative")
)

// Tariff prices one duration bracket. UpToMinutes is the inclusive upper
// bound of the bracket; zero marks an unbounded catch-all bracket.
// PricePerHour is applied to the elapsed time as a continuous quantity,
// with no rounding until revenue aggregation.
type Tariff struct {
	UpToMinutes  int     `json:"up_to_minutes"`
	PricePerHour float64 `json:"price_per_hour"`
}

func (t Tariff) covers(elapsedMinutes int64) bool {
	return t.UpToMinutes == 0 || elapsedMinutes <= int64(t.UpToMinutes)
}

// TariffTable is consulted in order; the first bracket covering the elapsed
// duration wins, so entries must be sorted most-specific-first.
type TariffTable []Tariff

func (tt TariffTable) Validate() error {
	if len(tt) == 0 {
		return ErrInvalidTariffConfiguration
	}

	prevBound := 0
	for i, t := range tt {
		if t.PricePerHour < 0 || t.UpToMinutes < 0 {
			return ErrInvalidTariffConfiguration
		}
		if t.UpToMinutes == 0 {
			// The unbounded bracket swallows everything after it.
			if i != len(tt)-1 {
				return ErrInvalidTariffConfiguration
			}
			continue
		}
		if t.UpToMinutes <= prevBound {
			return ErrInvalidTariffConfiguration
		}
		prevBound = t.UpToMinutes
	}
	return nil
}

// PriceFor returns the price for a stay of elapsedMinutes. A duration not
// covered by any bracket is a configuration error, never a free stay.
func (tt TariffTable) PriceFor(elapsedMinutes int64) (float64, error) {
	if elapsedMinutes < 0 {
		return 0, ErrNegativeDuration
	}
	if len(tt) == 0 {
		return 0, ErrInvalidTariffConfiguration
	}

	for _, t := range tt {
		if t.covers(elapsedMinutes) {
			return t.PricePerHour * float64(elapsedMinutes) / 60.0, nil
		}
	}
	return 0, ErrInvalidTariffConfiguration
}
