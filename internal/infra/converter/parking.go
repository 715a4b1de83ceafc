package converter

import (
	"encoding/json"

	"parkhub/internal/domain/parking"
	"parkhub/internal/pkg/errs"
)

// Tariff tables and schedules live in JSONB columns; the wire shape is the
// domain value objects' JSON form.

func MarshalTariffs(tt parking.TariffTable) ([]byte, error) {
	data, err := json.Marshal(tt)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode tariff table")
	}
	return data, nil
}

func UnmarshalTariffs(data []byte) (parking.TariffTable, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var tt parking.TariffTable
	if err := json.Unmarshal(data, &tt); err != nil {
		return nil, errs.Wrap(err, "failed to decode tariff table")
	}
	return tt, nil
}

func MarshalSchedule(s parking.Schedule) ([]byte, error) {
	if s == nil {
		s = parking.Schedule{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode schedule")
	}
	return data, nil
}

func UnmarshalSchedule(data []byte) (parking.Schedule, error) {
	if len(data) == 0 {
		return parking.Schedule{}, nil
	}
	var s parking.Schedule
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errs.Wrap(err, "failed to decode schedule")
	}
	return s, nil
}
