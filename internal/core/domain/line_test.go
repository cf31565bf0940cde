package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLine_Validate(t *testing.T) {
	tests := []struct {
		name    string
		line    OrderLine
		wantErr error
	}{
		{"valid", OrderLine{ServiceID: 1, Quantity: 1, UnitPrice: decimal.MustParse("10.50")}, nil},
		{"free line", OrderLine{ServiceID: 1, Quantity: 3, UnitPrice: decimal.Zero}, nil},
		{"no service", OrderLine{Quantity: 1}, ErrMissingField},
		{"zero quantity", OrderLine{ServiceID: 1}, ErrInvalidQuantity},
		{"negative quantity", OrderLine{ServiceID: 1, Quantity: -2}, ErrInvalidQuantity},
		{"negative price", OrderLine{ServiceID: 1, Quantity: 1, UnitPrice: decimal.MustParse("-1")}, ErrInvalidPrice},
		{"trailing zeros", OrderLine{ServiceID: 1, Quantity: 1, UnitPrice: decimal.MustParse("10.5000")}, nil},
		{"sub-cent price", OrderLine{ServiceID: 1, Quantity: 1, UnitPrice: decimal.MustParse("10.555")}, ErrPricePrecision},
		{"largest price", OrderLine{ServiceID: 1, Quantity: 1, UnitPrice: MaxUnitPrice}, nil},
		{"price out of range", OrderLine{ServiceID: 1, Quantity: 1, UnitPrice: decimal.MustParse("10000000000000000")}, ErrPriceTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
			if errors.Is(tt.wantErr, ErrInvalidPrice) {
				assert.ErrorIs(t, err, ErrInvalidPrice)
			}
		})
	}
}

func TestOrderLine_Amount(t *testing.T) {
	line := OrderLine{ServiceID: 1, Quantity: 3, UnitPrice: decimal.MustParse("0.10")}

	amount, err := line.Amount()
	require.NoError(t, err)
	assert.Equal(t, "0.30", amount.String())
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2025, 6, 1, 23, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Day(in))
	assert.True(t, Day(time.Time{}).IsZero())
}
