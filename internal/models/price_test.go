package models_test

import (
	"encoding/json"
	"testing"

	"github.com/davidparhut/iBoss/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPriceUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected float64
	}{
		{"number", `49999`, 49999},
		{"float", `49999.5`, 49999.5},
		{"numeric string", `"49999"`, 49999},
		{"numeric string float", `"6500.0"`, 6500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p models.Price
			err := json.Unmarshal([]byte(tc.input), &p)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, p.Float64())
		})
	}

	var p models.Price
	err := json.Unmarshal([]byte(`"not a number"`), &p)
	assert.Error(t, err)
}

func TestCartTotalsWithStringPrices(t *testing.T) {
	// Legacy persisted carts carry prices as numeric strings; totals
	// must still come out numeric.
	raw := `{
		"userId": "user-1",
		"lines": [
			{"productId": "p1", "name": "iPhone 15", "storage": "128GB", "price": "35999", "quantity": 2},
			{"productId": "p2", "name": "iPhone 16 Pro", "storage": "128GB", "price": 47999, "quantity": 1}
		]
	}`

	var cart models.Cart
	err := json.Unmarshal([]byte(raw), &cart)
	assert.NoError(t, err)

	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, 35999.0*2+47999.0, cart.TotalPrice())
}
