package models

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// Price is a monetary amount in hryvnias. Documents imported from the
// legacy catalog sometimes carry prices as numeric strings ("49999"),
// so it accepts both forms when decoding.
type Price float64

// UnmarshalJSON accepts a JSON number or a numeric string.
func (p *Price) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return err
	}
	*p = Price(value)
	return nil
}

// Float64 returns the amount as a plain float64.
func (p Price) Float64() float64 {
	return float64(p)
}
